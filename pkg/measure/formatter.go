package measure

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// printer groups integer digits with English thousand separators.
//
//nolint:gochecknoglobals // Global printer is idiomatic for x/text/message usage.
var printer = message.NewPrinter(language.English)

// titler capitalizes unit names for picker labels.
//
//nolint:gochecknoglobals // Stateless after construction.
var titler = cases.Title(language.English, cases.NoLower)

//nolint:gochecknoglobals // Shared default used by FormatResult.
var defaultFormatter = &Formatter{precision: DefaultPrecision}

// Formatter renders converted values with a unit's long name.
// The zero value renders integers only; use NewFormatter.
type Formatter struct {
	precision int
}

// FormatterOption configures a Formatter.
type FormatterOption func(*Formatter) error

// WithPrecision sets the maximum number of fraction digits.
func WithPrecision(n int) FormatterOption {
	return func(f *Formatter) error {
		if n < 0 {
			return fmt.Errorf("%w: %d", ErrInvalidPrecision, n)
		}
		f.precision = n
		return nil
	}
}

// NewFormatter returns a Formatter with DefaultPrecision, adjusted by opts.
func NewFormatter(opts ...FormatterOption) (*Formatter, error) {
	f := &Formatter{precision: DefaultPrecision}
	for _, opt := range opts {
		if err := opt(f); err != nil {
			return nil, err
		}
	}
	return f, nil
}

// Precision returns the maximum number of fraction digits.
func (f *Formatter) Precision() int { return f.precision }

// Format renders value followed by the long name of unit, e.g.
// "1,609.344 meters" or "1 kilometer". The unit is always the one given;
// it is never abbreviated or replaced by a locale preference.
func (f *Formatter) Format(value float64, unit Unit) string {
	number := f.FormatNumber(value)
	name := unit.Plural
	if number == "1" || number == "-1" {
		name = unit.Singular
	}
	return number + " " + name
}

// FormatNumber renders value with at most Precision fraction digits,
// trailing zeros trimmed and the integer part grouped by thousands.
func (f *Formatter) FormatNumber(value float64) string {
	switch {
	case math.IsNaN(value):
		return "NaN"
	case math.IsInf(value, 1):
		return "∞"
	case math.IsInf(value, -1):
		return "-∞"
	}

	s := strconv.FormatFloat(value, 'f', f.precision, 64)
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}

	negative := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")
	if s == "0" {
		return s
	}

	intPart, fracPart, hasFrac := strings.Cut(s, ".")
	grouped := groupDigits(intPart)
	if hasFrac {
		grouped += "." + fracPart
	}
	if negative {
		return "-" + grouped
	}
	return grouped
}

// groupDigits inserts thousand separators into a string of decimal digits.
// Values beyond int64 are returned unchanged.
func groupDigits(digits string) string {
	n, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return digits
	}
	return printer.Sprintf("%d", n)
}

// FormatResult renders value in unit with DefaultPrecision.
func FormatResult(value float64, unit Unit) string {
	return defaultFormatter.Format(value, unit)
}

// DisplayName returns the capitalized plural name of unit, as used to label
// it in a unit picker ("Kilometers", "Degrees Fahrenheit").
func DisplayName(unit Unit) string {
	return titler.String(unit.Plural)
}
