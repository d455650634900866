package measure

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// DefaultAmount is the amount a new Session starts with.
const DefaultAmount = 100.0

// Session holds the state of one conversion form: the amount, the selected
// category and the two selected units. It is not safe for concurrent use.
type Session struct {
	amount      float64
	category    Category
	source      Unit
	destination Unit
	formatter   *Formatter
}

// NewSession returns a session converting DefaultAmount meters to kilometers.
func NewSession() *Session {
	return &Session{
		amount:      DefaultAmount,
		category:    Distance,
		source:      Meters,
		destination: Kilometers,
		formatter:   defaultFormatter,
	}
}

// SetFormatter replaces the formatter used by Result. Nil restores the default.
func (s *Session) SetFormatter(f *Formatter) {
	if f == nil {
		f = defaultFormatter
	}
	s.formatter = f
}

// Amount returns the current amount.
func (s *Session) Amount() float64 { return s.amount }

// Category returns the selected category.
func (s *Session) Category() Category { return s.category }

// Source returns the selected source unit.
func (s *Session) Source() Unit { return s.source }

// Destination returns the selected destination unit.
func (s *Session) Destination() Unit { return s.destination }

// SetAmount replaces the amount.
func (s *Session) SetAmount(amount float64) { s.amount = amount }

// SelectCategory switches to c and resets the source and destination to the
// first and second units of c. The previous selection is not carried over,
// even when the same unit exists in c.
func (s *Session) SelectCategory(c Category) error {
	units := ListUnits(c)
	if units == nil {
		return fmt.Errorf("%w: %d", ErrUnknownCategory, int(c))
	}
	if len(units) < 2 {
		return fmt.Errorf("%w: %s", ErrTooFewUnits, c)
	}
	s.category = c
	s.source = units[0]
	s.destination = units[1]
	return nil
}

// SetSource selects the unit to convert from. It must belong to the
// session's category.
func (s *Session) SetSource(u Unit) error {
	if err := s.checkUnit(u); err != nil {
		return err
	}
	s.source = u
	return nil
}

// SetDestination selects the unit to convert to. It must belong to the
// session's category.
func (s *Session) SetDestination(u Unit) error {
	if err := s.checkUnit(u); err != nil {
		return err
	}
	s.destination = u
	return nil
}

func (s *Session) checkUnit(u Unit) error {
	if u.IsZero() || u.Category != s.category {
		return &IncompatibleUnitsError{From: s.source, To: u}
	}
	return nil
}

// Request snapshots the current state.
func (s *Session) Request() Request {
	return Request{
		Amount:      s.amount,
		Category:    s.category,
		Source:      s.source,
		Destination: s.destination,
	}
}

// Result converts the current amount and formats it in the destination unit.
func (s *Session) Result() (Result, error) {
	return Evaluate(s.Request(), s.formatter)
}

// ParseAmount parses user input into an amount. Surrounding space and
// English thousand separators are accepted; empty, non-numeric and
// non-finite input is rejected with ErrInvalidAmount.
func ParseAmount(input string) (float64, error) {
	trimmed := strings.ReplaceAll(strings.TrimSpace(input), ",", "")
	if trimmed == "" {
		return 0, fmt.Errorf("%w: empty input", ErrInvalidAmount)
	}
	v, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, input)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %q is not finite", ErrInvalidAmount, input)
	}
	return v, nil
}
