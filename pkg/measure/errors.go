package measure

import "fmt"

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// Sentinel errors, compared with errors.Is().
var (
	// ErrIncompatibleUnits indicates a conversion between units of different categories.
	ErrIncompatibleUnits = constError("incompatible units")

	// ErrUnknownCategory indicates a category name that is not in the catalog.
	ErrUnknownCategory = constError("unknown category")

	// ErrUnknownUnit indicates a unit name or symbol that is not in the catalog.
	ErrUnknownUnit = constError("unknown unit")

	// ErrInvalidAmount indicates an amount that is empty, non-numeric or not finite.
	ErrInvalidAmount = constError("invalid amount")

	// ErrTooFewUnits indicates a category that cannot supply a source and a destination unit.
	ErrTooFewUnits = constError("category has fewer than two units")

	// ErrInvalidPrecision indicates a negative formatting precision.
	ErrInvalidPrecision = constError("invalid precision")
)

// IncompatibleUnitsError reports the two units of a cross-category conversion.
// It unwraps to ErrIncompatibleUnits.
type IncompatibleUnitsError struct {
	From Unit
	To   Unit
}

func (e *IncompatibleUnitsError) Error() string {
	return fmt.Sprintf("%s: %s (%s) and %s (%s)",
		ErrIncompatibleUnits, e.From.ID, e.From.Category, e.To.ID, e.To.Category)
}

// Unwrap returns ErrIncompatibleUnits.
func (e *IncompatibleUnitsError) Unwrap() error { return ErrIncompatibleUnits }
