// Package measure converts amounts between units of distance, mass,
// temperature and time and formats the result with the unit's full name.
//
// Every unit belongs to exactly one Category. Distance, mass and time units
// are linear: they carry a fixed factor to their category's base unit.
// Temperature units are affine and convert through kelvin, so Celsius and
// Fahrenheit keep their own zero points.
//
// Basic usage:
//
//	v, err := measure.Convert(1, measure.Kilometers, measure.Meters)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(measure.FormatResult(v, measure.Meters)) // "1,000 meters"
//
// A Session models the conversion form: it holds the amount and the selected
// units, and resets the units whenever the category changes.
package measure
