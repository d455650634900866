package measure

import (
	"fmt"
	"strings"
)

// Category is a measurement domain with its own ordered set of units.
type Category int

const (
	// Distance covers lengths; its base unit is the meter.
	Distance Category = iota

	// Mass covers weights; its base unit is the gram.
	Mass

	// Temperature covers temperature scales; its base unit is the kelvin.
	Temperature

	// Time covers durations; its base unit is the second.
	Time
)

// String returns the category's display name ("Distance", "Mass", ...).
func (c Category) String() string {
	switch c {
	case Distance:
		return "Distance"
	case Mass:
		return "Mass"
	case Temperature:
		return "Temperature"
	case Time:
		return "Time"
	default:
		return fmt.Sprintf("Category(%d)", int(c))
	}
}

// Valid reports whether c is one of the four catalog categories.
func (c Category) Valid() bool {
	return c >= Distance && c <= Time
}

// MarshalText encodes the category as its lower-case name.
func (c Category) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownCategory, int(c))
	}
	return []byte(strings.ToLower(c.String())), nil
}

// UnmarshalText decodes a category name, case-insensitively.
func (c *Category) UnmarshalText(text []byte) error {
	parsed, err := ParseCategory(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Kind tags how a unit relates to its category's base unit.
type Kind int

const (
	// KindLinear units convert with a single multiplicative factor.
	KindLinear Kind = iota

	// KindAffine units convert with a scale and an offset.
	KindAffine
)

// String returns "linear" or "affine".
func (k Kind) String() string {
	switch k {
	case KindLinear:
		return "linear"
	case KindAffine:
		return "affine"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Unit is a named measurement unit within one category.
//
// Units are comparable values; the catalog variables (Meters, Kelvin, ...)
// are the only instances the package produces.
type Unit struct {
	// ID is the stable lower-case identifier, e.g. "kilometers".
	ID string

	// Symbol is the abbreviation accepted by lookups. It is never rendered
	// in formatted results.
	Symbol string

	// Singular is the long name used for a value of exactly one.
	Singular string

	// Plural is the long name used for every other value.
	Plural string

	// Category is the category the unit belongs to.
	Category Category

	kind   Kind
	factor float64 // linear: base units per unit; affine: base units per degree
	offset float64 // affine: value subtracted before scaling
	shift  float64 // affine: base value added after scaling
}

// Kind reports whether the unit is linear or affine.
func (u Unit) Kind() Kind { return u.kind }

// IsZero reports whether u is the zero Unit.
func (u Unit) IsZero() bool { return u == Unit{} }

// String returns the unit's identifier.
func (u Unit) String() string { return u.ID }

// toBase expresses v in the category's base unit.
func (u Unit) toBase(v float64) float64 {
	if u.kind == KindAffine {
		return (v-u.offset)*u.factor + u.shift
	}
	return v * u.factor
}

// fromBase expresses a base-unit value in u.
func (u Unit) fromBase(v float64) float64 {
	if u.kind == KindAffine {
		return (v-u.shift)/u.factor + u.offset
	}
	return v / u.factor
}

// linear builds a KindLinear unit.
func linear(c Category, id, symbol, singular, plural string, factor float64) Unit {
	return Unit{
		ID:       id,
		Symbol:   symbol,
		Singular: singular,
		Plural:   plural,
		Category: c,
		kind:     KindLinear,
		factor:   factor,
	}
}

// affine builds a KindAffine unit: base = (v - offset) * scale + shift.
func affine(c Category, id, symbol, singular, plural string, offset, scale, shift float64) Unit {
	return Unit{
		ID:       id,
		Symbol:   symbol,
		Singular: singular,
		Plural:   plural,
		Category: c,
		kind:     KindAffine,
		factor:   scale,
		offset:   offset,
		shift:    shift,
	}
}

// Request is one evaluation of the conversion form.
type Request struct {
	Amount      float64
	Category    Category
	Source      Unit
	Destination Unit
}

// Result is the outcome of a Request.
type Result struct {
	// Value is the converted amount in the destination unit.
	Value float64

	// Unit is the destination unit.
	Unit Unit

	// Formatted is Value rendered with the destination unit's long name.
	Formatted string
}
