package logical

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	camelBoundary = regexp.MustCompile(`(.)([A-Z][a-z]+)`)
	lowerToUpper  = regexp.MustCompile(`([a-z0-9])([A-Z])`)
)

// CamelToSnake converts a CamelCase type name to snake_case.
// Acronym runs are kept together: "IPAddress" becomes "ip_address".
func CamelToSnake(s string) string {
	s = camelBoundary.ReplaceAllString(s, "${1}_${2}")
	s = lowerToUpper.ReplaceAllString(s, "${1}_${2}")
	return strings.ToLower(s)
}

// NormalizeTags converts user-supplied semantic tags to a set. A single
// string, a slice of strings, or an existing set are accepted; anything
// else is rejected. Empty input returns an empty set.
func NormalizeTags(tags any) (map[string]struct{}, error) {
	set := make(map[string]struct{})
	if tags == nil {
		return set, nil
	}

	add := func(tag string) error {
		if tag == "" {
			return fmt.Errorf("semantic tags cannot contain empty strings")
		}
		set[tag] = struct{}{}
		return nil
	}

	switch v := tags.(type) {
	case string:
		if v == "" {
			return set, nil
		}
		return set, add(v)
	case []string:
		for _, tag := range v {
			if err := add(tag); err != nil {
				return nil, err
			}
		}
	case []any:
		for _, raw := range v {
			tag, ok := raw.(string)
			if !ok {
				return nil, fmt.Errorf("semantic tags must contain only strings, got %T", raw)
			}
			if err := add(tag); err != nil {
				return nil, err
			}
		}
	case map[string]struct{}:
		for tag := range v {
			if err := add(tag); err != nil {
				return nil, err
			}
		}
	default:
		return nil, fmt.Errorf("semantic tags must be a string, a slice of strings, or a set, got %T", tags)
	}
	return set, nil
}
