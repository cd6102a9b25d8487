package schema

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/timberline-data/timber/pkg/dtype"
	"github.com/timberline-data/timber/pkg/frame"
	"github.com/timberline-data/timber/pkg/logical"
)

// Description is the versioned, persistable form of a TableSchema.
type Description struct {
	SchemaVersion    string              `json:"schema_version" yaml:"schema_version"`
	Name             string              `json:"name,omitempty" yaml:"name,omitempty"`
	Index            string              `json:"index,omitempty" yaml:"index,omitempty"`
	TimeIndex        string              `json:"time_index,omitempty" yaml:"time_index,omitempty"`
	ColumnTypingInfo []ColumnDescription `json:"column_typing_info" yaml:"column_typing_info"`
	LoadingInfo      LoadingInfo         `json:"loading_info" yaml:"loading_info"`
	TableMetadata    map[string]any      `json:"table_metadata,omitempty" yaml:"table_metadata,omitempty"`
}

// ColumnDescription is one column's record within a Description.
type ColumnDescription struct {
	Name            string          `json:"name" yaml:"name"`
	Ordinal         int             `json:"ordinal" yaml:"ordinal"`
	UseStandardTags bool            `json:"use_standard_tags" yaml:"use_standard_tags"`
	LogicalType     LogicalTypeInfo `json:"logical_type" yaml:"logical_type"`
	PhysicalType    PhysicalType    `json:"physical_type" yaml:"physical_type"`
	SemanticTags    []string        `json:"semantic_tags" yaml:"semantic_tags"`
	Description     string          `json:"description,omitempty" yaml:"description,omitempty"`
	Metadata        map[string]any  `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// LogicalTypeInfo names a logical type and its instance parameters.
type LogicalTypeInfo struct {
	Type       string         `json:"type" yaml:"type"`
	Parameters map[string]any `json:"parameters" yaml:"parameters"`
}

// PhysicalType names a storage dtype. For categorical storage the distinct
// category values observed at serialization time are captured as well.
type PhysicalType struct {
	Type      string `json:"type" yaml:"type"`
	CatValues []any  `json:"cat_values,omitempty" yaml:"cat_values,omitempty"`
}

// LoadingInfo tags the description with the storage family it was captured
// from, so a reader can resolve dtypes under the right family.
type LoadingInfo struct {
	TableType string `json:"table_type" yaml:"table_type"`
}

// ToDescription converts a schema to its persistable form. When df is
// non-nil, distinct category values of categorical columns are captured
// from the live data; with a nil df they are omitted.
func ToDescription(df *frame.DataFrame, s *TableSchema) *Description {
	d := &Description{
		SchemaVersion: s.Version,
		Name:          s.Name,
		Index:         s.Index,
		TimeIndex:     s.TimeIndex,
		LoadingInfo:   LoadingInfo{TableType: s.Family.String()},
		TableMetadata: s.Metadata,
	}
	if d.SchemaVersion == "" {
		d.SchemaVersion = Version
	}

	for _, cs := range s.Columns {
		cd := ColumnDescription{
			Name:            cs.Name,
			Ordinal:         cs.Ordinal,
			UseStandardTags: cs.UseStandardTags,
			LogicalType: LogicalTypeInfo{
				Type:       cs.LogicalType.Name(),
				Parameters: cs.LogicalType.Parameters(),
			},
			PhysicalType: PhysicalType{Type: string(cs.PhysicalType)},
			SemanticTags: cs.Tags(),
			Description:  cs.Description,
			Metadata:     cs.Metadata,
		}
		if cs.PhysicalType.IsCategorical() && df != nil {
			if col, ok := df.Column(cs.Name); ok {
				cd.PhysicalType.CatValues = distinctValues(col)
			}
		}
		d.ColumnTypingInfo = append(d.ColumnTypingInfo, cd)
	}
	return d
}

// FromDescription rebuilds a schema from its persistable form. A version
// mismatch produces an advisory warning and the load proceeds best-effort;
// the warning is never an error.
func FromDescription(d *Description) (*TableSchema, *VersionWarning, error) {
	warning, err := CheckVersion(d.SchemaVersion)
	if err != nil {
		return nil, nil, err
	}

	family, _ := dtype.ParseFamily(d.LoadingInfo.TableType)
	s := &TableSchema{
		Name:      d.Name,
		Index:     d.Index,
		TimeIndex: d.TimeIndex,
		Metadata:  d.TableMetadata,
		Family:    family,
		Version:   d.SchemaVersion,
	}

	for _, cd := range d.ColumnTypingInfo {
		lt, err := typeFromInfo(cd.LogicalType)
		if err != nil {
			return nil, warning, fmt.Errorf("column %s: %w", cd.Name, err)
		}
		tags := make(map[string]struct{}, len(cd.SemanticTags))
		for _, tag := range cd.SemanticTags {
			tags[tag] = struct{}{}
		}
		s.Columns = append(s.Columns, &ColumnSchema{
			Name:            cd.Name,
			Ordinal:         cd.Ordinal,
			LogicalType:     lt,
			PhysicalType:    dtype.Dtype(cd.PhysicalType.Type),
			SemanticTags:    tags,
			UseStandardTags: cd.UseStandardTags,
			Description:     cd.Description,
			Metadata:        cd.Metadata,
		})
	}

	sort.Slice(s.Columns, func(i, j int) bool { return s.Columns[i].Ordinal < s.Columns[j].Ordinal })
	return s, warning, nil
}

func typeFromInfo(info LogicalTypeInfo) (*logical.Type, error) {
	lt, err := logical.Resolve(info.Type)
	if err != nil {
		return nil, err
	}
	if lt.Is(logical.Ordinal) {
		order, ok := info.Parameters["order"].([]any)
		if !ok {
			return nil, &logical.ParameterError{Type: "Ordinal", Reason: "serialized Ordinal is missing its order parameter"}
		}
		return logical.NewOrdinal(order)
	}
	return lt, nil
}

// distinctValues returns the distinct non-null values of a column. Numeric
// values sort by magnitude, everything else by its comparison key.
func distinctValues(col *frame.Column) []any {
	seen := make(map[string]any)
	for _, v := range col.Values() {
		if frame.IsNull(v) {
			continue
		}
		seen[frame.ValueKey(v)] = v
	}
	keys := make([]string, 0, len(seen))
	for k := range seen {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		a, aNum := numericKeyValue(keys[i])
		b, bNum := numericKeyValue(keys[j])
		if aNum && bNum {
			return a < b
		}
		if aNum != bNum {
			return aNum
		}
		return keys[i] < keys[j]
	})
	values := make([]any, len(keys))
	for i, k := range keys {
		values[i] = seen[k]
	}
	return values
}

// numericKeyValue recovers the magnitude from a numeric comparison key.
func numericKeyValue(key string) (float64, bool) {
	rest, ok := strings.CutPrefix(key, "n:")
	if !ok {
		return 0, false
	}
	f, err := strconv.ParseFloat(rest, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// WriteDescription encodes a description to w in the given format
// ("json" or "yaml"). Metadata values must be serializable.
func WriteDescription(w io.Writer, d *Description, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(d); err != nil {
			return fmt.Errorf("typing information is not serializable, check table and column metadata for unserializable values: %w", err)
		}
		return nil
	case "yaml", "yml":
		enc := yaml.NewEncoder(w)
		defer func() { _ = enc.Close() }()
		if err := enc.Encode(d); err != nil {
			return fmt.Errorf("typing information is not serializable, check table and column metadata for unserializable values: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unknown description format %q: must be one of the following formats: json, yaml", format)
	}
}

// ReadDescription decodes a description from r in the given format.
func ReadDescription(r io.Reader, format string) (*Description, error) {
	var d Description
	switch format {
	case "json":
		if err := json.NewDecoder(r).Decode(&d); err != nil {
			return nil, fmt.Errorf("failed to decode typing information: %w", err)
		}
	case "yaml", "yml":
		if err := yaml.NewDecoder(r).Decode(&d); err != nil {
			return nil, fmt.Errorf("failed to decode typing information: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown description format %q: must be one of the following formats: json, yaml", format)
	}
	return &d, nil
}
