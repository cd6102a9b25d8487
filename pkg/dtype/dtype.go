// Package dtype defines the physical storage types and storage families
// that logical types resolve against.
package dtype

// Dtype identifies the physical storage type of a column.
//
// The names follow the conventions of the columnar ecosystems Timber
// interoperates with, so serialized typing information stays portable
// (e.g. "int64" vs nullable "Int64", "datetime64[ns]").
type Dtype string

// Physical storage types.
const (
	// Int64 is a non-nullable 64-bit integer.
	Int64 Dtype = "int64"
	// Int64Nullable is a 64-bit integer that permits nulls.
	Int64Nullable Dtype = "Int64"
	// Float64 is a 64-bit float.
	Float64 Dtype = "float64"
	// Bool is a non-nullable boolean.
	Bool Dtype = "bool"
	// BoolNullable is a boolean that permits nulls.
	BoolNullable Dtype = "boolean"
	// Category is a dictionary-encoded categorical type.
	Category Dtype = "category"
	// String is a dedicated string type.
	String Dtype = "string"
	// Object holds arbitrary values (used for compound values like lat-long pairs).
	Object Dtype = "object"
	// Datetime is a nanosecond-resolution timestamp.
	Datetime Dtype = "datetime64[ns]"
	// Timedelta is a nanosecond-resolution duration.
	Timedelta Dtype = "timedelta64[ns]"
)

// IsNumeric returns true for integer and float storage types.
func (d Dtype) IsNumeric() bool {
	switch d {
	case Int64, Int64Nullable, Float64:
		return true
	default:
		return false
	}
}

// IsNullable returns true if the storage type can represent nulls natively.
func (d Dtype) IsNullable() bool {
	switch d {
	case Int64, Bool:
		return false
	default:
		return true
	}
}

// IsCategorical returns true for dictionary-encoded storage.
func (d Dtype) IsCategorical() bool {
	return d == Category
}
