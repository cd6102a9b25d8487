package frame

import (
	"fmt"

	"github.com/timberline-data/timber/pkg/dtype"
)

// TypeConversionError is returned when a column's values cannot be
// represented in the physical dtype its logical type requires.
//
// The message format is load-bearing: downstream tooling that consumed the
// original typing system matches on it.
type TypeConversionError struct {
	Column      string
	From        dtype.Dtype
	To          dtype.Dtype
	LogicalType string
}

func (e *TypeConversionError) Error() string {
	return fmt.Sprintf(
		"Error converting datatype for %s from type %s to type %s. "+
			"Please confirm the underlying data is consistent with logical type %s.",
		e.Column, e.From, e.To, e.LogicalType)
}
