package logical

import "fmt"

// NewOrdinal returns an Ordinal instance carrying an explicit, fully-ordered
// list of category values. The bare Ordinal descriptor is never valid for
// typing a column: an order must always be supplied.
func NewOrdinal(order []any) (*Type, error) {
	if len(order) == 0 {
		return nil, &ParameterError{Type: "Ordinal", Reason: "an order with at least one value must be defined"}
	}
	seen := make(map[string]bool, len(order))
	for _, v := range order {
		key := fmt.Sprintf("%T:%v", v, v)
		if seen[key] {
			return nil, &ParameterError{Type: "Ordinal", Reason: "order values cannot contain duplicates"}
		}
		seen[key] = true
	}
	return &Type{
		name:         Ordinal.name,
		standardTags: Ordinal.standardTags,
		primary:      Ordinal.primary,
		overrides:    Ordinal.overrides,
		order:        append([]any{}, order...),
	}, nil
}

// ValidateParams checks that a type instance carries every parameter it
// requires. Ordinal used without an order is rejected.
func ValidateParams(t *Type) error {
	if t.Is(Ordinal) && t.order == nil {
		return &ParameterError{Type: "Ordinal", Reason: "must use an Ordinal instance with order values defined"}
	}
	return nil
}
