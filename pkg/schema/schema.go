package schema

import (
	"fmt"

	"github.com/timberline-data/timber/pkg/dtype"
	"github.com/timberline-data/timber/pkg/frame"
	"github.com/timberline-data/timber/pkg/inference"
	"github.com/timberline-data/timber/pkg/logical"
)

// TableSchema is the captured typing information of a whole table. It is an
// immutable snapshot: structural changes to the underlying table invalidate
// it and require a fresh capture.
type TableSchema struct {
	Name      string
	Index     string
	TimeIndex string
	Columns   []*ColumnSchema
	Metadata  map[string]any
	Family    dtype.Family
	// Version is the schema format version the snapshot was captured or
	// loaded with.
	Version string
}

// Column returns the typing information for the named column.
func (s *TableSchema) Column(name string) (*ColumnSchema, bool) {
	for _, cs := range s.Columns {
		if cs.Name == name {
			return cs, true
		}
	}
	return nil, false
}

// ColumnNames returns the column names in ordinal order.
func (s *TableSchema) ColumnNames() []string {
	names := make([]string, len(s.Columns))
	for i, cs := range s.Columns {
		names[i] = cs.Name
	}
	return names
}

// Equal compares two schemas attribute for attribute.
func (s *TableSchema) Equal(other *TableSchema) bool {
	if other == nil {
		return false
	}
	if s.Name != other.Name ||
		s.Index != other.Index ||
		s.TimeIndex != other.TimeIndex ||
		s.Family != other.Family ||
		s.Version != other.Version ||
		len(s.Columns) != len(other.Columns) {
		return false
	}
	for i, cs := range s.Columns {
		if !cs.Equal(other.Columns[i]) {
			return false
		}
	}
	return equalMetadata(s.Metadata, other.Metadata)
}

// CaptureOptions controls schema capture. All fields are optional.
type CaptureOptions struct {
	// Name identifies the table.
	Name string
	// Index designates the index column. It must exist and be unique.
	Index string
	// TimeIndex designates the time index column.
	TimeIndex string
	// LogicalTypes overrides inference per column: values may be a type
	// name string or a *logical.Type (Ordinal requires an instance).
	LogicalTypes map[string]any
	// SemanticTags supplies custom tags per column: a string, a slice of
	// strings, or a set.
	SemanticTags map[string]any
	// Descriptions supplies free-text column descriptions.
	Descriptions map[string]string
	// ColumnMetadata supplies per-column metadata.
	ColumnMetadata map[string]map[string]any
	// Metadata is table-level metadata.
	Metadata map[string]any
	// NoStandardTags disables the standard tags implied by logical types.
	NoStandardTags bool
}

// Capture initializes typing information for a DataFrame: every column gets
// a logical type (supplied or inferred), is coerced to the canonical
// physical dtype for that type, and receives its semantic tags. The
// DataFrame's columns are replaced by their coerced versions and, when an
// index is designated, its underlying index is aligned to the index column.
//
// A nil Inferrer uses default heuristics.
func Capture(df *frame.DataFrame, opts CaptureOptions, inf *inference.Inferrer) (*TableSchema, error) {
	if inf == nil {
		inf = inference.New(inference.Config{}, nil)
	}
	if err := validateCaptureOptions(df, opts); err != nil {
		return nil, err
	}

	s := &TableSchema{
		Name:      opts.Name,
		Index:     opts.Index,
		TimeIndex: opts.TimeIndex,
		Metadata:  opts.Metadata,
		Family:    df.Family(),
		Version:   Version,
	}

	// Coerce into a staging slice first so an error on a later column
	// never leaves the caller's table half-converted.
	coerced := make([]*frame.Column, 0, df.NumCols())
	for ordinal, name := range df.ColumnNames() {
		col, _ := df.Column(name)

		lt, err := columnLogicalType(col, opts.LogicalTypes[name], inf, df.Family())
		if err != nil {
			return nil, err
		}

		converted, err := frame.Coerce(col, lt, df.Family())
		if err != nil {
			return nil, err
		}
		coerced = append(coerced, converted)

		custom, err := logical.NormalizeTags(opts.SemanticTags[name])
		if err != nil {
			return nil, fmt.Errorf("invalid semantic tags for column %s: %w", name, err)
		}

		s.Columns = append(s.Columns, &ColumnSchema{
			Name:            name,
			Ordinal:         ordinal,
			LogicalType:     lt,
			PhysicalType:    converted.Dtype(),
			SemanticTags:    deriveTags(lt, custom, !opts.NoStandardTags, name == opts.Index, name == opts.TimeIndex),
			UseStandardTags: !opts.NoStandardTags,
			Description:     opts.Descriptions[name],
			Metadata:        opts.ColumnMetadata[name],
		})
	}

	if opts.Index != "" {
		indexCol := coerced[columnOrdinal(s, opts.Index)]
		if !indexValuesUnique(indexCol.Values()) {
			return nil, fmt.Errorf("index column %s must be unique", opts.Index)
		}
	}

	for _, col := range coerced {
		if err := df.SetColumn(col); err != nil {
			return nil, err
		}
	}

	if opts.Index != "" && df.Family().SupportsIndexInspection() {
		indexCol, _ := df.Column(opts.Index)
		if err := df.SetIndex(indexCol.Values()); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// columnOrdinal returns the position of a named column in a schema under
// construction. The caller has already checked the name exists.
func columnOrdinal(s *TableSchema, name string) int {
	for i, cs := range s.Columns {
		if cs.Name == name {
			return i
		}
	}
	return -1
}

func validateCaptureOptions(df *frame.DataFrame, opts CaptureOptions) error {
	checkColumn := func(kind, name string) error {
		if name == "" {
			return nil
		}
		if _, ok := df.Column(name); !ok {
			return fmt.Errorf("specified %s column %s not found in the DataFrame", kind, name)
		}
		return nil
	}
	if err := checkColumn("index", opts.Index); err != nil {
		return err
	}
	if err := checkColumn("time index", opts.TimeIndex); err != nil {
		return err
	}
	for name := range opts.LogicalTypes {
		if _, ok := df.Column(name); !ok {
			return fmt.Errorf("logical type specified for column %s not found in the DataFrame", name)
		}
	}
	for name := range opts.SemanticTags {
		if _, ok := df.Column(name); !ok {
			return fmt.Errorf("semantic tags specified for column %s not found in the DataFrame", name)
		}
	}
	return nil
}

// columnLogicalType resolves the override for a column or infers a type
// when none is supplied.
func columnLogicalType(col *frame.Column, override any, inf *inference.Inferrer, family dtype.Family) (*logical.Type, error) {
	if override == nil {
		return inf.Infer(col, family), nil
	}
	lt, err := parseLogicalType(override, col.Name())
	if err != nil {
		return nil, err
	}
	return lt, nil
}

// parseLogicalType normalizes a string name or a descriptor to a registered
// logical type. Ordinal must arrive as an instance with an order.
func parseLogicalType(v any, column string) (*logical.Type, error) {
	var lt *logical.Type
	switch val := v.(type) {
	case string:
		resolved, err := logical.Resolve(val)
		if err != nil {
			return nil, err
		}
		lt = resolved
	case *logical.Type:
		lt = val
	default:
		return nil, fmt.Errorf("invalid logical type specified for %s: %T", column, v)
	}
	if err := logical.ValidateParams(lt); err != nil {
		return nil, err
	}
	return lt, nil
}

// indexValuesUnique checks uniqueness of index values. Null values are
// tolerated only insofar as uniqueness still holds: two nulls collide.
func indexValuesUnique(values []any) bool {
	seen := make(map[string]bool, len(values))
	sawNull := false
	for _, v := range values {
		if frame.IsNull(v) {
			if sawNull {
				return false
			}
			sawNull = true
			continue
		}
		key := frame.ValueKey(v)
		if seen[key] {
			return false
		}
		seen[key] = true
	}
	return true
}
