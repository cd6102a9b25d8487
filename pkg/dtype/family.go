package dtype

import "strings"

// Family identifies the execution model of the table backing a column.
// It is a closed set: resolvers and validators switch on the tag rather
// than on a polymorphic hierarchy.
type Family string

// Storage families.
const (
	// FamilyNative is an in-memory, eagerly evaluated table.
	FamilyNative Family = "native"
	// FamilyDistributed is a partitioned table with deferred execution.
	// Type-conversion failures may only surface at materialization.
	FamilyDistributed Family = "distributed"
	// FamilyColumnar is a lazy columnar table with a constrained type
	// system: categorical types degrade to plain string storage.
	FamilyColumnar Family = "columnar"
)

// Families lists all storage families.
func Families() []Family {
	return []Family{FamilyNative, FamilyDistributed, FamilyColumnar}
}

// ParseFamily converts a string to a Family value.
// Returns the family and true if valid, or FamilyNative and false if invalid.
func ParseFamily(s string) (Family, bool) {
	switch strings.ToLower(s) {
	case "native":
		return FamilyNative, true
	case "distributed":
		return FamilyDistributed, true
	case "columnar":
		return FamilyColumnar, true
	default:
		return FamilyNative, false
	}
}

// SupportsEagerValidation reports whether type-conversion errors surface
// at coercion time. For deferred families the error is only raised when
// the caller materializes the column.
func (f Family) SupportsEagerValidation() bool {
	return f != FamilyDistributed
}

// SupportsIndexInspection reports whether the underlying index of a table
// can be read without forcing a full materialization. Index integrity
// checks are skipped for families that return false.
func (f Family) SupportsIndexInspection() bool {
	return f == FamilyNative
}

// SamplesForInference reports whether type inference should operate on a
// sampled subset of the column instead of the full data. This trades
// exactness for tractability on large partitioned tables.
func (f Family) SamplesForInference() bool {
	return f != FamilyNative
}

// String returns the family tag.
func (f Family) String() string {
	return string(f)
}
