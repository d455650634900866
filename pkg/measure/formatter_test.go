package measure

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatResult(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		unit  Unit
		want  string
	}{
		{name: "grouped integer", value: 1000, unit: Meters, want: "1,000 meters"},
		{name: "fraction kept", value: 0.1, unit: Kilometers, want: "0.1 kilometers"},
		{name: "rounded to three digits", value: 1609.3444, unit: Meters, want: "1,609.344 meters"},
		{name: "singular", value: 1, unit: Kilometers, want: "1 kilometer"},
		{name: "rounds to singular", value: 1.0000001, unit: Miles, want: "1 mile"},
		{name: "negative singular", value: -1, unit: Celsius, want: "-1 degree Celsius"},
		{name: "zero is plural", value: 0, unit: Celsius, want: "0 degrees Celsius"},
		{name: "negative zero", value: math.Copysign(0, -1), unit: Seconds, want: "0 seconds"},
		{name: "tiny negative rounds to zero", value: -0.0001, unit: Seconds, want: "0 seconds"},
		{name: "fahrenheit long name", value: 212, unit: Fahrenheit, want: "212 degrees Fahrenheit"},
		{name: "kelvin plural", value: 273.15, unit: Kelvin, want: "273.15 kelvins"},
		{name: "irregular plural", value: 3, unit: Feet, want: "3 feet"},
		{name: "singular foot", value: 1, unit: Feet, want: "1 foot"},
		{name: "large negative", value: -1234567.5, unit: Grams, want: "-1,234,567.5 grams"},
		{name: "hours", value: 1.5, unit: Hours, want: "1.5 hours"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatResult(tt.value, tt.unit))
		})
	}
}

func TestFormatResult_NeverUsesSymbol(t *testing.T) {
	for _, c := range ListCategories() {
		for _, u := range ListUnits(c) {
			got := FormatResult(2, u)
			assert.Contains(t, got, u.Plural)
			assert.NotEqual(t, "2 "+u.Symbol, got)
		}
	}
}

func TestFormatter_Precision(t *testing.T) {
	tests := []struct {
		name      string
		precision int
		value     float64
		want      string
	}{
		{name: "zero digits", precision: 0, value: 1234.56, want: "1,235"},
		{name: "one digit", precision: 1, value: 781.26, want: "781.3"},
		{name: "two digits", precision: 2, value: 1234.5678, want: "1,234.57"},
		{name: "six digits", precision: 6, value: 0.45359237, want: "0.453592"},
		{name: "trailing zeros trimmed", precision: 4, value: 2.5, want: "2.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := NewFormatter(WithPrecision(tt.precision))
			require.NoError(t, err)
			assert.Equal(t, tt.precision, f.Precision())
			assert.Equal(t, tt.want, f.FormatNumber(tt.value))
		})
	}
}

func TestFormatter_NonFinite(t *testing.T) {
	f, err := NewFormatter()
	require.NoError(t, err)
	assert.Equal(t, "NaN", f.FormatNumber(math.NaN()))
	assert.Equal(t, "∞", f.FormatNumber(math.Inf(1)))
	assert.Equal(t, "-∞", f.FormatNumber(math.Inf(-1)))
}

func TestFormatter_HugeValueUngrouped(t *testing.T) {
	f, err := NewFormatter(WithPrecision(0))
	require.NoError(t, err)
	assert.Equal(t, "100000000000000000000", f.FormatNumber(1e20))
}

func TestNewFormatter_InvalidPrecision(t *testing.T) {
	f, err := NewFormatter(WithPrecision(-1))
	assert.Nil(t, f)
	assert.ErrorIs(t, err, ErrInvalidPrecision)
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "Kilometers", DisplayName(Kilometers))
	assert.Equal(t, "Degrees Fahrenheit", DisplayName(Fahrenheit))
	assert.Equal(t, "Kelvins", DisplayName(Kelvin))
	assert.Equal(t, "Feet", DisplayName(Feet))
}
