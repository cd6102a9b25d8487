package logical

import (
	"sort"
	"strings"

	"github.com/timberline-data/timber/pkg/dtype"
)

// The registered type set is built once at process start and is read-only
// afterwards: no locking is required because no writer exists after init.
var registry = make(map[string]*Type)

// Registered logical type descriptors.
var (
	Address         = newType("Address", nil, dtype.String)
	Boolean         = newType("Boolean", nil, dtype.Bool)
	BooleanNullable = newType("BooleanNullable", nil, dtype.BoolNullable)
	Categorical     = newCategoryType("Categorical")
	CountryCode     = newCategoryType("CountryCode")
	Datetime        = newType("Datetime", nil, dtype.Datetime)
	Double          = newType("Double", []string{"numeric"}, dtype.Float64)
	EmailAddress    = newType("EmailAddress", nil, dtype.String)
	Filepath        = newType("Filepath", nil, dtype.String)
	Integer         = newType("Integer", []string{"numeric"}, dtype.Int64)
	IntegerNullable = newType("IntegerNullable", []string{"numeric"}, dtype.Int64Nullable)
	IPAddress       = newType("IPAddress", nil, dtype.String)
	LatLongType     = newType("LatLong", nil, dtype.Object)
	NaturalLanguage = newType("NaturalLanguage", nil, dtype.String)
	Ordinal         = newCategoryType("Ordinal")
	PersonFullName  = newType("PersonFullName", nil, dtype.String)
	PhoneNumber     = newType("PhoneNumber", nil, dtype.String)
	PostalCode      = newCategoryType("PostalCode")
	SubRegionCode   = newCategoryType("SubRegionCode")
	Timedelta       = newType("Timedelta", []string{"numeric"}, dtype.Timedelta)
	URL             = newType("URL", nil, dtype.String)
)

func newType(name string, standardTags []string, primary dtype.Dtype) *Type {
	t := &Type{name: name, standardTags: standardTags, primary: primary}
	register(t)
	return t
}

// newCategoryType builds a category-tagged descriptor. Columnar backends
// have no native categorical storage, so the physical type degrades to
// plain string there.
func newCategoryType(name string) *Type {
	t := &Type{
		name:         name,
		standardTags: []string{"category"},
		primary:      dtype.Category,
		overrides: map[dtype.Family]dtype.Dtype{
			dtype.FamilyColumnar: dtype.String,
		},
	}
	register(t)
	return t
}

func register(t *Type) {
	registry[normalizeTypeName(t.name)] = t
}

// normalizeTypeName folds CamelCase, snake_case, and mixed-case spellings
// of a type name onto a single key.
func normalizeTypeName(name string) string {
	s := strings.ToLower(name)
	s = strings.ReplaceAll(s, "_", "")
	return strings.ReplaceAll(s, " ", "")
}

// Resolve looks up a logical type descriptor by name. Matching is
// case-insensitive and accepts both CamelCase and snake_case forms
// ("natural_language" resolves to NaturalLanguage).
func Resolve(name string) (*Type, error) {
	if t, ok := registry[normalizeTypeName(name)]; ok {
		return t, nil
	}
	return nil, &UnknownTypeError{Name: name}
}

// Registered returns all registered logical type descriptors, sorted by name.
func Registered() []*Type {
	types := make([]*Type, 0, len(registry))
	for _, t := range registry {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool { return types[i].name < types[j].name })
	return types
}

// ValidMutualInfoTypes returns the logical types whose columns are valid
// inputs for mutual information: category- or numeric-tagged types plus
// Datetime and the boolean types. Index columns are excluded by callers,
// not by type.
func ValidMutualInfoTypes() []*Type {
	var valid []*Type
	for _, t := range Registered() {
		switch {
		case t.HasStandardTag("category"), t.HasStandardTag("numeric"):
			valid = append(valid, t)
		case t.Is(Datetime), t.Is(Boolean), t.Is(BooleanNullable):
			valid = append(valid, t)
		}
	}
	return valid
}
