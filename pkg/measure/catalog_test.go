package measure

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListCategories(t *testing.T) {
	assert.Equal(t, []Category{Distance, Mass, Temperature, Time}, ListCategories())
}

func TestListUnits(t *testing.T) {
	tests := []struct {
		category Category
		want     []Unit
	}{
		{Distance, []Unit{Feet, Kilometers, Meters, Miles, Yards}},
		{Mass, []Unit{Grams, Kilograms, Ounces, Pounds}},
		{Temperature, []Unit{Celsius, Fahrenheit, Kelvin}},
		{Time, []Unit{Hours, Minutes, Seconds}},
	}

	for _, tt := range tests {
		t.Run(tt.category.String(), func(t *testing.T) {
			got := ListUnits(tt.category)
			assert.Equal(t, tt.want, got)
			for _, u := range got {
				assert.Equal(t, tt.category, u.Category)
			}
		})
	}
}

func TestListUnits_ReturnsCopy(t *testing.T) {
	units := ListUnits(Distance)
	units[0] = Grams
	assert.Equal(t, Feet, ListUnits(Distance)[0])
}

func TestListUnits_InvalidCategory(t *testing.T) {
	assert.Nil(t, ListUnits(Category(42)))
	assert.Nil(t, ListUnits(Category(-1)))
}

func TestUnitKinds(t *testing.T) {
	for _, c := range ListCategories() {
		for _, u := range ListUnits(c) {
			if c == Temperature {
				assert.Equal(t, KindAffine, u.Kind(), u.ID)
			} else {
				assert.Equal(t, KindLinear, u.Kind(), u.ID)
			}
		}
	}
}

func TestParseCategory(t *testing.T) {
	tests := []struct {
		input   string
		want    Category
		wantErr bool
	}{
		{input: "distance", want: Distance},
		{input: "MASS", want: Mass},
		{input: "  Temperature ", want: Temperature},
		{input: "time", want: Time},
		{input: "volume", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseCategory(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownCategory)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLookupUnit(t *testing.T) {
	tests := []struct {
		name     string
		category Category
		input    string
		want     Unit
		wantErr  error
	}{
		{name: "by id", category: Distance, input: "kilometers", want: Kilometers},
		{name: "by singular", category: Distance, input: "Mile", want: Miles},
		{name: "by symbol", category: Mass, input: "lb", want: Pounds},
		{name: "symbol ignores case", category: Temperature, input: "k", want: Kelvin},
		{name: "degree symbol", category: Temperature, input: "°F", want: Fahrenheit},
		{name: "degree symbol optional", category: Temperature, input: "c", want: Celsius},
		{name: "long temperature name", category: Temperature, input: "degrees fahrenheit", want: Fahrenheit},
		{name: "by symbol minutes", category: Time, input: "min", want: Minutes},
		{name: "wrong category", category: Mass, input: "meters", wantErr: ErrUnknownUnit},
		{name: "empty", category: Time, input: " ", wantErr: ErrUnknownUnit},
		{name: "invalid category", category: Category(9), input: "meters", wantErr: ErrUnknownCategory},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := LookupUnit(tt.category, tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFindUnit(t *testing.T) {
	u, err := FindUnit("oz")
	require.NoError(t, err)
	assert.Equal(t, Ounces, u)

	u, err = FindUnit("Celsius")
	require.NoError(t, err)
	assert.Equal(t, Celsius, u)

	_, err = FindUnit("furlong")
	assert.ErrorIs(t, err, ErrUnknownUnit)
}

func TestCategory_Text(t *testing.T) {
	data, err := json.Marshal(map[string]Category{"c": Temperature})
	require.NoError(t, err)
	assert.JSONEq(t, `{"c":"temperature"}`, string(data))

	var decoded struct {
		C Category `json:"c"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"c":"Time"}`), &decoded))
	assert.Equal(t, Time, decoded.C)

	_, err = Category(7).MarshalText()
	assert.ErrorIs(t, err, ErrUnknownCategory)
	assert.Equal(t, "Category(7)", Category(7).String())
}
