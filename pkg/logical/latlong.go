package logical

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// LatLong is a pair of floating-point degrees. The null sentinel for a
// lat-long column value is a nil *LatLong, never a pair of nulls: a pair
// whose components are both null collapses to nil during normalization.
type LatLong struct {
	Lat  float64
	Long float64
}

// String formats the pair in the serialized form NormalizeLatLong accepts.
func (ll *LatLong) String() string {
	if ll == nil {
		return "None"
	}
	return "(" + formatDegrees(ll.Lat) + ", " + formatDegrees(ll.Long) + ")"
}

func formatDegrees(f float64) string {
	if math.IsNaN(f) {
		return "nan"
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// NormalizeLatLong converts raw input to a canonical *LatLong value.
// Accepted forms: nil, an existing LatLong, a two-element slice or array of
// numeric values, and string-serialized pairs such as "(1.0, 2.0)" or
// "[1.0, 2.0]". Serialized columns read back from text formats carry null
// components as "nan", "NaN" or "None"; those are folded back to nulls.
func NormalizeLatLong(v any) (*LatLong, error) {
	if isNullLatLong(v) {
		return nil, nil
	}

	switch val := v.(type) {
	case *LatLong:
		return normalizePair(val.Lat, val.Long), nil
	case LatLong:
		return normalizePair(val.Lat, val.Long), nil
	case [2]float64:
		return normalizePair(val[0], val[1]), nil
	case []float64:
		if len(val) != 2 {
			return nil, fmt.Errorf("lat-long values must have exactly two values, got %v", val)
		}
		return normalizePair(val[0], val[1]), nil
	case []any:
		if len(val) != 2 {
			return nil, fmt.Errorf("lat-long values must have exactly two values, got %v", val)
		}
		lat, err := toDegrees(val[0])
		if err != nil {
			return nil, err
		}
		long, err := toDegrees(val[1])
		if err != nil {
			return nil, err
		}
		return normalizePair(lat, long), nil
	case string:
		return parseLatLongString(val)
	}
	return nil, fmt.Errorf("lat-long values must be a two-element pair or a string representation of one, got %v", v)
}

// normalizePair collapses a pair of two nulls to the single null sentinel.
func normalizePair(lat, long float64) *LatLong {
	if math.IsNaN(lat) && math.IsNaN(long) {
		return nil
	}
	return &LatLong{Lat: lat, Long: long}
}

func parseLatLongString(s string) (*LatLong, error) {
	trimmed := strings.TrimSpace(s)
	if len(trimmed) < 2 {
		return nil, fmt.Errorf("lat-long values must be a two-element pair or a string representation of one, got %q", s)
	}
	first, last := trimmed[0], trimmed[len(trimmed)-1]
	if !(first == '(' && last == ')') && !(first == '[' && last == ']') {
		return nil, fmt.Errorf("lat-long values must be a two-element pair or a string representation of one, got %q", s)
	}
	parts := strings.Split(trimmed[1:len(trimmed)-1], ",")
	if len(parts) != 2 {
		return nil, fmt.Errorf("lat-long values must have exactly two values, got %q", s)
	}
	lat, err := toDegrees(strings.TrimSpace(parts[0]))
	if err != nil {
		return nil, err
	}
	long, err := toDegrees(strings.TrimSpace(parts[1]))
	if err != nil {
		return nil, err
	}
	return normalizePair(lat, long), nil
}

// toDegrees converts a component to a float, propagating null values as NaN.
func toDegrees(v any) (float64, error) {
	if isNullLatLong(v) {
		return math.NaN(), nil
	}
	switch val := v.(type) {
	case float64:
		return val, nil
	case float32:
		return float64(val), nil
	case int:
		return float64(val), nil
	case int32:
		return float64(val), nil
	case int64:
		return float64(val), nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		if err == nil {
			return f, nil
		}
	}
	return 0, fmt.Errorf("latitude and longitude values must be in decimal degrees, cannot convert %v to a float", v)
}

// isNullLatLong reports whether v is a null value in any of the forms null
// lat-longs take after a round trip through text serialization.
func isNullLatLong(v any) bool {
	switch val := v.(type) {
	case nil:
		return true
	case *LatLong:
		return val == nil
	case float64:
		return math.IsNaN(val)
	case float32:
		return math.IsNaN(float64(val))
	case string:
		switch strings.TrimSpace(val) {
		case "", "None", "nan", "NaN", "<NA>", "null":
			return true
		}
	}
	return false
}
