// Package logical defines the catalog of logical column types and the
// process-wide registry used to resolve type names.
//
// A logical type describes the semantic meaning of a column (Integer,
// Categorical, NaturalLanguage, ...) independently of its physical storage
// representation. Each descriptor carries the standard semantic tags implied
// by the type and the physical dtype it requires per storage family.
package logical

import (
	"fmt"

	"github.com/timberline-data/timber/pkg/dtype"
)

// Type is a logical type descriptor. Descriptors are stateless singletons
// registered at process start, with the exception of Ordinal, which must be
// instantiated with an explicit value order via NewOrdinal.
type Type struct {
	name         string
	standardTags []string
	primary      dtype.Dtype
	// overrides maps storage families whose physical dtype differs from
	// the primary (e.g. categorical types degrade to string on columnar
	// backends).
	overrides map[dtype.Family]dtype.Dtype

	// order holds the fully-ordered category values for Ordinal instances.
	// nil for every other type and for the bare Ordinal descriptor.
	order []any
}

// Name returns the canonical CamelCase name, e.g. "NaturalLanguage".
func (t *Type) Name() string { return t.name }

// SnakeName returns the snake_case form of the name, e.g. "natural_language".
func (t *Type) SnakeName() string { return CamelToSnake(t.name) }

// StandardTags returns the semantic tags implied by this type.
// The returned slice is a copy.
func (t *Type) StandardTags() []string {
	tags := make([]string, len(t.standardTags))
	copy(tags, t.standardTags)
	return tags
}

// HasStandardTag reports whether tag is one of the type's standard tags.
func (t *Type) HasStandardTag(tag string) bool {
	for _, st := range t.standardTags {
		if st == tag {
			return true
		}
	}
	return false
}

// Physical returns the physical storage dtype this type requires under the
// given storage family.
func (t *Type) Physical(f dtype.Family) dtype.Dtype {
	if d, ok := t.overrides[f]; ok {
		return d
	}
	return t.primary
}

// Parameters returns the serializable parameters of this type instance.
// Stateless types return an empty map; Ordinal returns its value order.
func (t *Type) Parameters() map[string]any {
	params := map[string]any{}
	if t.order != nil {
		params["order"] = append([]any{}, t.order...)
	}
	return params
}

// Order returns the category value order of an Ordinal instance, or nil.
func (t *Type) Order() []any {
	if t.order == nil {
		return nil
	}
	return append([]any{}, t.order...)
}

// Is reports whether two descriptors describe the same logical type,
// ignoring instance parameters. An Ordinal instance Is() the bare Ordinal
// descriptor, but Equal() distinguishes them.
func (t *Type) Is(other *Type) bool {
	return other != nil && t.name == other.name
}

// Equal reports whether two descriptors are interchangeable: same type and
// same parameters.
func (t *Type) Equal(other *Type) bool {
	if other == nil || t.name != other.name || len(t.order) != len(other.order) {
		return false
	}
	for i := range t.order {
		if fmt.Sprint(t.order[i]) != fmt.Sprint(other.order[i]) {
			return false
		}
	}
	return true
}

// String returns the canonical name.
func (t *Type) String() string { return t.name }
