package measure

import (
	"fmt"
	"slices"
	"strings"
)

// Distance units.
//
//nolint:gochecknoglobals // Fixed unit catalog.
var (
	Feet       = linear(Distance, "feet", "ft", "foot", "feet", MetersPerFoot)
	Kilometers = linear(Distance, "kilometers", "km", "kilometer", "kilometers", MetersPerKilometer)
	Meters     = linear(Distance, "meters", "m", "meter", "meters", MetersPerMeter)
	Miles      = linear(Distance, "miles", "mi", "mile", "miles", MetersPerMile)
	Yards      = linear(Distance, "yards", "yd", "yard", "yards", MetersPerYard)
)

// Mass units.
//
//nolint:gochecknoglobals // Fixed unit catalog.
var (
	Grams     = linear(Mass, "grams", "g", "gram", "grams", GramsPerGram)
	Kilograms = linear(Mass, "kilograms", "kg", "kilogram", "kilograms", GramsPerKilogram)
	Ounces    = linear(Mass, "ounces", "oz", "ounce", "ounces", GramsPerOunce)
	Pounds    = linear(Mass, "pounds", "lb", "pound", "pounds", GramsPerPound)
)

// Temperature units.
//
//nolint:gochecknoglobals // Fixed unit catalog.
var (
	Celsius = affine(Temperature, "celsius", "°C", "degree Celsius", "degrees Celsius",
		0, 1, KelvinOffset)
	Fahrenheit = affine(Temperature, "fahrenheit", "°F", "degree Fahrenheit", "degrees Fahrenheit",
		FahrenheitFreezing, FahrenheitScale, KelvinOffset)
	Kelvin = affine(Temperature, "kelvin", "K", "kelvin", "kelvins",
		0, 1, 0)
)

// Time units.
//
//nolint:gochecknoglobals // Fixed unit catalog.
var (
	Hours   = linear(Time, "hours", "h", "hour", "hours", SecondsPerHour)
	Minutes = linear(Time, "minutes", "min", "minute", "minutes", SecondsPerMinute)
	Seconds = linear(Time, "seconds", "s", "second", "seconds", SecondsPerSecond)
)

// catalog lists the units of each category in picker order.
//
//nolint:gochecknoglobals // Fixed unit catalog.
var catalog = [...][]Unit{
	Distance:    {Feet, Kilometers, Meters, Miles, Yards},
	Mass:        {Grams, Kilograms, Ounces, Pounds},
	Temperature: {Celsius, Fahrenheit, Kelvin},
	Time:        {Hours, Minutes, Seconds},
}

// ListCategories returns every category in display order.
func ListCategories() []Category {
	return []Category{Distance, Mass, Temperature, Time}
}

// ListUnits returns the units of c in display order.
// The returned slice is a copy; it is nil for an invalid category.
func ListUnits(c Category) []Unit {
	if !c.Valid() {
		return nil
	}
	return slices.Clone(catalog[c])
}

// ParseCategory looks up a category by name, ignoring case and surrounding space.
func ParseCategory(name string) (Category, error) {
	name = strings.TrimSpace(name)
	for _, c := range ListCategories() {
		if strings.EqualFold(name, c.String()) {
			return c, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownCategory, name)
}

// LookupUnit finds a unit of c by identifier, singular name, plural name or
// symbol. Matching ignores case and surrounding space.
func LookupUnit(c Category, name string) (Unit, error) {
	if !c.Valid() {
		return Unit{}, fmt.Errorf("%w: %d", ErrUnknownCategory, int(c))
	}
	if u, ok := matchUnit(catalog[c], name); ok {
		return u, nil
	}
	return Unit{}, fmt.Errorf("%w: %q in %s", ErrUnknownUnit, name, c)
}

// FindUnit finds a unit by name across all categories.
func FindUnit(name string) (Unit, error) {
	for _, c := range ListCategories() {
		if u, ok := matchUnit(catalog[c], name); ok {
			return u, nil
		}
	}
	return Unit{}, fmt.Errorf("%w: %q", ErrUnknownUnit, name)
}

// matchUnit compares name against each unit's names and symbol. A leading
// degree sign is optional, so "C" and "°C" both find Celsius.
func matchUnit(units []Unit, name string) (Unit, bool) {
	name = strings.TrimPrefix(strings.TrimSpace(name), "°")
	if name == "" {
		return Unit{}, false
	}
	for _, u := range units {
		if strings.EqualFold(name, u.ID) ||
			strings.EqualFold(name, u.Singular) ||
			strings.EqualFold(name, u.Plural) ||
			strings.EqualFold(name, strings.TrimPrefix(u.Symbol, "°")) {
			return u, true
		}
	}
	return Unit{}, false
}
