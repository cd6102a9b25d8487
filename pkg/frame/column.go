// Package frame provides the minimal tabular collaborator the typing core
// works against: ordered columns of values, a per-column physical dtype,
// and an optional underlying index. Inference and validation only read
// from it; the single write operation is replacing a column with its
// coerced version.
package frame

import (
	"math"

	"github.com/timberline-data/timber/pkg/dtype"
)

// Column is an immutable named column of values. A nil value is a null.
// Coercion never mutates a column; it returns a new one.
type Column struct {
	name   string
	dtype  dtype.Dtype
	values []any

	// deferred holds a type-conversion error that was not raised eagerly
	// because the column belongs to a deferred-execution family. It
	// surfaces when the caller materializes the column.
	deferred error
}

// NewColumn creates a column. The values slice is copied.
func NewColumn(name string, d dtype.Dtype, values []any) *Column {
	return &Column{
		name:   name,
		dtype:  d,
		values: append([]any{}, values...),
	}
}

// Name returns the column name.
func (c *Column) Name() string { return c.name }

// Dtype returns the physical storage type.
func (c *Column) Dtype() dtype.Dtype { return c.dtype }

// Len returns the number of values, including nulls.
func (c *Column) Len() int { return len(c.values) }

// At returns the value at position i. Nulls are nil.
func (c *Column) At(i int) any { return c.values[i] }

// Values returns a copy of the column values.
func (c *Column) Values() []any {
	return append([]any{}, c.values...)
}

// Materialize forces evaluation of the column and returns its values.
// For columns coerced under a deferred-execution family, a conversion
// failure that was not raised at coercion time is returned here.
func (c *Column) Materialize() ([]any, error) {
	if c.deferred != nil {
		return nil, c.deferred
	}
	return c.Values(), nil
}

// Rename returns a copy of the column under a new name.
func (c *Column) Rename(name string) *Column {
	return &Column{name: name, dtype: c.dtype, values: c.values, deferred: c.deferred}
}

// IsNull reports whether v represents a null value.
func IsNull(v any) bool {
	switch val := v.(type) {
	case nil:
		return true
	case float64:
		return math.IsNaN(val)
	case float32:
		return math.IsNaN(float64(val))
	}
	return false
}

// NullCount returns the number of null values in the column.
func (c *Column) NullCount() int {
	n := 0
	for _, v := range c.values {
		if IsNull(v) {
			n++
		}
	}
	return n
}
