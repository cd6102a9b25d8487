package frame

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/timberline-data/timber/pkg/dtype"
	"github.com/timberline-data/timber/pkg/logical"
)

// datetimeLayouts are tried in order when parsing string timestamps.
var datetimeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"01/02/2006 15:04:05",
	"01/02/2006",
}

// Coerce converts a column to the canonical physical dtype for the given
// logical type under the given storage family. The source column is never
// modified.
//
// For families with eager validation, values that cannot be represented in
// the target dtype fail immediately with a *TypeConversionError. For
// deferred-execution families the error is recorded on the returned column
// and surfaces at Materialize.
func Coerce(col *Column, lt *logical.Type, family dtype.Family) (*Column, error) {
	if err := logical.ValidateParams(lt); err != nil {
		return nil, err
	}

	target := lt.Physical(family)
	out := make([]any, col.Len())
	var convErr error
	for i, v := range col.values {
		converted, err := convertValue(v, target, lt)
		if err != nil {
			convErr = &TypeConversionError{
				Column:      col.name,
				From:        col.dtype,
				To:          target,
				LogicalType: lt.Name(),
			}
			break
		}
		out[i] = converted
	}

	if convErr != nil {
		if family.SupportsEagerValidation() {
			return nil, convErr
		}
		// Deferred family: hand back a column of the target dtype whose
		// materialization reports the failure.
		return &Column{name: col.name, dtype: target, values: col.Values(), deferred: convErr}, nil
	}

	if order := lt.Order(); order != nil {
		if err := checkOrdinalValues(col.name, out, order); err != nil {
			return nil, err
		}
	}

	return &Column{name: col.name, dtype: target, values: out}, nil
}

// checkOrdinalValues ensures every non-null value appears in the supplied
// ordinal order.
func checkOrdinalValues(name string, values, order []any) error {
	allowed := make(map[string]bool, len(order))
	for _, v := range order {
		allowed[ValueKey(v)] = true
	}
	var missing []any
	seen := make(map[string]bool)
	for _, v := range values {
		if IsNull(v) {
			continue
		}
		if key := ValueKey(v); !allowed[key] && !seen[key] {
			seen[key] = true
			missing = append(missing, v)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("ordinal column %s contains values that are not present in the order values provided: %v", name, missing)
	}
	return nil
}

// ValueKey produces a comparison key for arbitrary scalar values.
// Numeric values compare by magnitude regardless of Go type, so an int 3
// and a float64 3.0 are the same key.
func ValueKey(v any) string {
	switch val := v.(type) {
	case int:
		return "n:" + strconv.FormatInt(int64(val), 10)
	case int32:
		return "n:" + strconv.FormatInt(int64(val), 10)
	case int64:
		return "n:" + strconv.FormatInt(val, 10)
	case float64:
		if val == math.Trunc(val) && !math.IsInf(val, 0) {
			return "n:" + strconv.FormatInt(int64(val), 10)
		}
		return "n:" + strconv.FormatFloat(val, 'g', -1, 64)
	default:
		return fmt.Sprintf("%T:%v", v, v)
	}
}

func convertValue(v any, target dtype.Dtype, lt *logical.Type) (any, error) {
	if lt.Is(logical.LatLongType) {
		ll, err := logical.NormalizeLatLong(v)
		if err != nil || ll == nil {
			// A nil pointer must not leak into the column as a typed nil:
			// the frame's null model only recognizes the untyped nil.
			return nil, err
		}
		return ll, nil
	}
	if IsNull(v) {
		if !target.IsNullable() {
			return nil, fmt.Errorf("null value not representable in %s", target)
		}
		return nil, nil
	}

	switch target {
	case dtype.Int64, dtype.Int64Nullable:
		return toInt64(v)
	case dtype.Float64:
		return toFloat64(v)
	case dtype.Bool, dtype.BoolNullable:
		return toBool(v)
	case dtype.String:
		return toString(v), nil
	case dtype.Category:
		return v, nil
	case dtype.Object:
		return v, nil
	case dtype.Datetime:
		return toDatetime(v)
	case dtype.Timedelta:
		return toTimedelta(v)
	}
	return nil, fmt.Errorf("unsupported target dtype %s", target)
}

func toInt64(v any) (int64, error) {
	switch val := v.(type) {
	case int:
		return int64(val), nil
	case int8:
		return int64(val), nil
	case int16:
		return int64(val), nil
	case int32:
		return int64(val), nil
	case int64:
		return val, nil
	case uint:
		return int64(val), nil
	case uint32:
		return int64(val), nil
	case uint64:
		return int64(val), nil
	case float32:
		return floatToInt64(float64(val))
	case float64:
		return floatToInt64(val)
	case bool:
		if val {
			return 1, nil
		}
		return 0, nil
	case string:
		if i, err := strconv.ParseInt(strings.TrimSpace(val), 10, 64); err == nil {
			return i, nil
		}
		if f, err := strconv.ParseFloat(strings.TrimSpace(val), 64); err == nil {
			return floatToInt64(f)
		}
	}
	return 0, fmt.Errorf("cannot convert %v to int64", v)
}

func floatToInt64(f float64) (int64, error) {
	if f != math.Trunc(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("non-integer value %v", f)
	}
	return int64(f), nil
}

func toFloat64(v any) (float64, error) {
	switch val := v.(type) {
	case float64:
		return val, nil
	case float32:
		return float64(val), nil
	case int:
		return float64(val), nil
	case int8:
		return float64(val), nil
	case int16:
		return float64(val), nil
	case int32:
		return float64(val), nil
	case int64:
		return float64(val), nil
	case uint:
		return float64(val), nil
	case uint32:
		return float64(val), nil
	case uint64:
		return float64(val), nil
	case bool:
		if val {
			return 1, nil
		}
		return 0, nil
	case string:
		if f, err := strconv.ParseFloat(strings.TrimSpace(val), 64); err == nil {
			return f, nil
		}
	}
	return 0, fmt.Errorf("cannot convert %v to float64", v)
}

func toBool(v any) (bool, error) {
	switch val := v.(type) {
	case bool:
		return val, nil
	case string:
		switch strings.ToLower(strings.TrimSpace(val)) {
		case "true", "t", "yes":
			return true, nil
		case "false", "f", "no":
			return false, nil
		}
	case int:
		if val == 0 || val == 1 {
			return val == 1, nil
		}
	case int64:
		if val == 0 || val == 1 {
			return val == 1, nil
		}
	case float64:
		if val == 0 || val == 1 {
			return val == 1, nil
		}
	}
	return false, fmt.Errorf("cannot convert %v to bool", v)
}

func toString(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'g', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(val), 'g', -1, 32)
	case time.Time:
		return val.Format(time.RFC3339)
	default:
		return fmt.Sprint(v)
	}
}

func toDatetime(v any) (time.Time, error) {
	switch val := v.(type) {
	case time.Time:
		return val, nil
	case string:
		s := strings.TrimSpace(val)
		for _, layout := range datetimeLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return t, nil
			}
		}
	}
	return time.Time{}, fmt.Errorf("cannot convert %v to datetime", v)
}

func toTimedelta(v any) (time.Duration, error) {
	switch val := v.(type) {
	case time.Duration:
		return val, nil
	case int64:
		return time.Duration(val), nil
	case string:
		if d, err := time.ParseDuration(strings.TrimSpace(val)); err == nil {
			return d, nil
		}
	}
	return 0, fmt.Errorf("cannot convert %v to timedelta", v)
}
