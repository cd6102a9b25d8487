package schema

import (
	"fmt"

	"github.com/timberline-data/timber/pkg/dtype"
	"github.com/timberline-data/timber/pkg/frame"
	"github.com/timberline-data/timber/pkg/inference"
	"github.com/timberline-data/timber/pkg/logical"
)

// ColumnOptions controls single-column initialization.
type ColumnOptions struct {
	// LogicalType is a type name string or *logical.Type. Nil infers.
	LogicalType any
	// SemanticTags supplies custom tags: a string, slice, or set.
	SemanticTags any
	// NoStandardTags disables the tags implied by the logical type.
	NoStandardTags bool
	// Description is free-text documentation for the column.
	Description string
	// Metadata is arbitrary serializable column metadata.
	Metadata map[string]any
}

// InitColumn types a standalone column: the logical type is applied or
// inferred, the column is coerced to the canonical physical dtype, and the
// typing information is returned alongside the new column. The source
// column is never modified.
//
// A nil Inferrer uses default heuristics.
func InitColumn(col *frame.Column, family dtype.Family, opts ColumnOptions, inf *inference.Inferrer) (*frame.Column, *ColumnSchema, error) {
	if inf == nil {
		inf = inference.New(inference.Config{}, nil)
	}

	lt, err := columnLogicalType(col, opts.LogicalType, inf, family)
	if err != nil {
		return nil, nil, err
	}

	coerced, err := frame.Coerce(col, lt, family)
	if err != nil {
		return nil, nil, err
	}

	custom, err := logical.NormalizeTags(opts.SemanticTags)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid semantic tags for column %s: %w", col.Name(), err)
	}

	cs := &ColumnSchema{
		Name:            col.Name(),
		LogicalType:     lt,
		PhysicalType:    coerced.Dtype(),
		SemanticTags:    deriveTags(lt, custom, !opts.NoStandardTags, false, false),
		UseStandardTags: !opts.NoStandardTags,
		Description:     opts.Description,
		Metadata:        opts.Metadata,
	}
	return coerced, cs, nil
}
