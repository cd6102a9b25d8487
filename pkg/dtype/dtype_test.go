package dtype

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDtype_IsNumeric(t *testing.T) {
	assert.True(t, Int64.IsNumeric())
	assert.True(t, Int64Nullable.IsNumeric())
	assert.True(t, Float64.IsNumeric())
	assert.False(t, Bool.IsNumeric())
	assert.False(t, Category.IsNumeric())
	assert.False(t, Datetime.IsNumeric())
	assert.False(t, Timedelta.IsNumeric())
}

func TestDtype_IsNullable(t *testing.T) {
	assert.False(t, Int64.IsNullable())
	assert.False(t, Bool.IsNullable())
	assert.True(t, Int64Nullable.IsNullable())
	assert.True(t, BoolNullable.IsNullable())
	assert.True(t, Float64.IsNullable())
	assert.True(t, Category.IsNullable())
	assert.True(t, String.IsNullable())
	assert.True(t, Object.IsNullable())
	assert.True(t, Datetime.IsNullable())
}

func TestDtype_IsCategorical(t *testing.T) {
	assert.True(t, Category.IsCategorical())
	assert.False(t, String.IsCategorical())
}

func TestParseFamily(t *testing.T) {
	tests := []struct {
		in     string
		want   Family
		wantOK bool
	}{
		{"native", FamilyNative, true},
		{"distributed", FamilyDistributed, true},
		{"columnar", FamilyColumnar, true},
		{"Native", FamilyNative, true},
		{"DISTRIBUTED", FamilyDistributed, true},
		{"", FamilyNative, false},
		{"sqlite", FamilyNative, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseFamily(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFamily_Capabilities(t *testing.T) {
	tests := []struct {
		family      Family
		eager       bool
		indexChecks bool
		samples     bool
	}{
		{FamilyNative, true, true, false},
		{FamilyDistributed, false, false, true},
		{FamilyColumnar, true, false, true},
	}
	for _, tt := range tests {
		t.Run(tt.family.String(), func(t *testing.T) {
			assert.Equal(t, tt.eager, tt.family.SupportsEagerValidation())
			assert.Equal(t, tt.indexChecks, tt.family.SupportsIndexInspection())
			assert.Equal(t, tt.samples, tt.family.SamplesForInference())
		})
	}
}

func TestFamilies_Complete(t *testing.T) {
	families := Families()
	assert.Len(t, families, 3)
	for _, f := range families {
		_, ok := ParseFamily(string(f))
		assert.True(t, ok)
	}
}
