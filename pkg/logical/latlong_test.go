package logical

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeLatLong_Pairs(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  *LatLong
	}{
		{"float slice", []float64{1.0, 2.0}, &LatLong{1.0, 2.0}},
		{"float array", [2]float64{1.0, 2.0}, &LatLong{1.0, 2.0}},
		{"any slice", []any{1.0, 2.0}, &LatLong{1.0, 2.0}},
		{"int components", []any{1, 2}, &LatLong{1.0, 2.0}},
		{"string components", []any{"1.0", "2.0"}, &LatLong{1.0, 2.0}},
		{"existing value", LatLong{3.5, -7.2}, &LatLong{3.5, -7.2}},
		{"existing pointer", &LatLong{3.5, -7.2}, &LatLong{3.5, -7.2}},
		{"paren string", "(1.0, 2.0)", &LatLong{1.0, 2.0}},
		{"bracket string", "[1.0, 2.0]", &LatLong{1.0, 2.0}},
		{"negative degrees", "(-33.87, 151.21)", &LatLong{-33.87, 151.21}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeLatLong(tt.input)
			require.NoError(t, err)
			require.NotNil(t, got)
			assert.Equal(t, tt.want.Lat, got.Lat)
			assert.Equal(t, tt.want.Long, got.Long)
		})
	}
}

func TestNormalizeLatLong_Nulls(t *testing.T) {
	nan := math.NaN()
	tests := []struct {
		name  string
		input any
	}{
		{"nil", nil},
		{"nan float", nan},
		{"nan string", "nan"},
		{"NaN string", "NaN"},
		{"None string", "None"},
		{"empty string", ""},
		// A pair of two nulls collapses to the single null sentinel.
		{"pair of nans", []float64{nan, nan}},
		{"pair of nan strings", "(nan, nan)"},
		{"pair of None strings", "(None, None)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeLatLong(tt.input)
			require.NoError(t, err)
			assert.Nil(t, got, "null input should normalize to the nil sentinel")
		})
	}
}

func TestNormalizeLatLong_PartialNull(t *testing.T) {
	got, err := NormalizeLatLong([]any{nil, 2.0})
	require.NoError(t, err)
	require.NotNil(t, got, "a pair with one null component is not null")
	assert.True(t, math.IsNaN(got.Lat))
	assert.Equal(t, 2.0, got.Long)
}

func TestNormalizeLatLong_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input any
	}{
		{"too many values", []float64{1, 2, 3}},
		{"too few values", []float64{1}},
		{"bare number", 4.5},
		{"non-numeric component", []any{"north", 2.0}},
		{"unbracketed string", "1.0, 2.0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NormalizeLatLong(tt.input)
			assert.Error(t, err)
		})
	}
}

func TestLatLong_String(t *testing.T) {
	assert.Equal(t, "(1.5, -2.25)", (&LatLong{1.5, -2.25}).String())
	assert.Equal(t, "None", (*LatLong)(nil).String())

	// String form round-trips through normalization.
	ll := &LatLong{40.7128, -74.006}
	got, err := NormalizeLatLong(ll.String())
	require.NoError(t, err)
	assert.Equal(t, ll.Lat, got.Lat)
	assert.Equal(t, ll.Long, got.Long)
}
