package measure

// Distance factors, in meters per unit.
const (
	MetersPerFoot      = 0.3048
	MetersPerKilometer = 1000.0
	MetersPerMeter     = 1.0
	MetersPerMile      = 1609.344
	MetersPerYard      = 0.9144
)

// Mass factors, in grams per unit.
//
// Grams are the base so that the metric pair converts without rounding.
const (
	GramsPerGram     = 1.0
	GramsPerKilogram = 1000.0
	GramsPerOunce    = 28.349523125
	GramsPerPound    = 453.59237
)

// Time factors, in seconds per unit.
const (
	SecondsPerHour   = 3600.0
	SecondsPerMinute = 60.0
	SecondsPerSecond = 1.0
)

// Temperature constants for the affine transforms through kelvin.
const (
	// KelvinOffset is the kelvin value of 0 °C.
	KelvinOffset = 273.15

	// FahrenheitFreezing is the Fahrenheit value of 0 °C.
	FahrenheitFreezing = 32.0

	// FahrenheitScale is the size of one Fahrenheit degree in kelvins.
	FahrenheitScale = 5.0 / 9.0
)

// DefaultPrecision is the maximum number of fraction digits FormatResult renders.
const DefaultPrecision = 3
