package logical

import "fmt"

// UnknownTypeError is returned when a type name cannot be resolved against
// the registered type set.
type UnknownTypeError struct {
	Name string
}

func (e *UnknownTypeError) Error() string {
	return fmt.Sprintf("string %s is not a valid logical type", e.Name)
}

// ParameterError is returned when a logical type is used without a required
// parameter, e.g. Ordinal without an order.
type ParameterError struct {
	Type   string
	Reason string
}

func (e *ParameterError) Error() string {
	return fmt.Sprintf("invalid parameters for logical type %s: %s", e.Type, e.Reason)
}
