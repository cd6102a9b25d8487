package logical

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/timberline-data/timber/pkg/dtype"
)

func TestResolve_RoundTripsAllSpellings(t *testing.T) {
	for _, lt := range Registered() {
		for _, spelling := range []string{lt.Name(), lt.SnakeName()} {
			resolved, err := Resolve(spelling)
			require.NoError(t, err, "Resolve(%q)", spelling)
			assert.Same(t, lt, resolved, "Resolve(%q) should return the registered descriptor", spelling)
		}
	}
}

func TestResolve_CaseInsensitive(t *testing.T) {
	tests := []struct {
		input string
		want  *Type
	}{
		{"natural_language", NaturalLanguage},
		{"NaturalLanguage", NaturalLanguage},
		{"NATURAL_LANGUAGE", NaturalLanguage},
		{"boolean_nullable", BooleanNullable},
		{"latlong", LatLongType},
		{"LatLong", LatLongType},
		{"ip_address", IPAddress},
		{"IPAddress", IPAddress},
		{"categorical", Categorical},
	}
	for _, tt := range tests {
		resolved, err := Resolve(tt.input)
		require.NoError(t, err, "Resolve(%q)", tt.input)
		assert.Same(t, tt.want, resolved, "Resolve(%q)", tt.input)
	}
}

func TestResolve_Unknown(t *testing.T) {
	_, err := Resolve("fake_type")
	require.Error(t, err)

	var unknownErr *UnknownTypeError
	require.ErrorAs(t, err, &unknownErr)
	assert.Equal(t, "fake_type", unknownErr.Name)
	assert.Equal(t, "string fake_type is not a valid logical type", err.Error())
}

func TestStandardTags(t *testing.T) {
	assert.Equal(t, []string{"numeric"}, Integer.StandardTags())
	assert.Equal(t, []string{"numeric"}, IntegerNullable.StandardTags())
	assert.Equal(t, []string{"numeric"}, Double.StandardTags())
	assert.Equal(t, []string{"category"}, Categorical.StandardTags())
	assert.Equal(t, []string{"category"}, Ordinal.StandardTags())
	assert.Empty(t, Boolean.StandardTags())
	assert.Empty(t, Datetime.StandardTags())
	assert.Empty(t, NaturalLanguage.StandardTags())
}

func TestPhysical_PerFamily(t *testing.T) {
	tests := []struct {
		lt     *Type
		family dtype.Family
		want   dtype.Dtype
	}{
		{Integer, dtype.FamilyNative, dtype.Int64},
		{Integer, dtype.FamilyDistributed, dtype.Int64},
		{Integer, dtype.FamilyColumnar, dtype.Int64},
		{Double, dtype.FamilyNative, dtype.Float64},
		{Boolean, dtype.FamilyNative, dtype.Bool},
		{BooleanNullable, dtype.FamilyNative, dtype.BoolNullable},
		{Categorical, dtype.FamilyNative, dtype.Category},
		{Categorical, dtype.FamilyDistributed, dtype.Category},
		{Categorical, dtype.FamilyColumnar, dtype.String},
		{Ordinal, dtype.FamilyColumnar, dtype.String},
		{NaturalLanguage, dtype.FamilyNative, dtype.String},
		{Datetime, dtype.FamilyNative, dtype.Datetime},
		{LatLongType, dtype.FamilyNative, dtype.Object},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.lt.Physical(tt.family),
			"%s under %s", tt.lt.Name(), tt.family)
	}
}

func TestRegistered_SortedAndComplete(t *testing.T) {
	types := Registered()
	require.Len(t, types, 21)
	for i := 1; i < len(types); i++ {
		assert.Less(t, types[i-1].Name(), types[i].Name(), "Registered() should be sorted")
	}
}

func TestValidMutualInfoTypes(t *testing.T) {
	valid := ValidMutualInfoTypes()

	byName := make(map[string]bool, len(valid))
	for _, lt := range valid {
		byName[lt.Name()] = true
	}

	// category- and numeric-tagged types plus Datetime and the booleans
	for _, want := range []string{"Integer", "Double", "Categorical", "Ordinal", "Datetime", "Boolean", "BooleanNullable"} {
		assert.True(t, byName[want], "%s should be valid for mutual information", want)
	}
	for _, excluded := range []string{"NaturalLanguage", "LatLong", "EmailAddress", "URL"} {
		assert.False(t, byName[excluded], "%s should not be valid for mutual information", excluded)
	}
}
