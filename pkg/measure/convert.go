package measure

// Convert expresses amount, given in from, in the unit to.
//
// Both units must belong to the same category, otherwise Convert returns an
// *IncompatibleUnitsError. Linear units go through the category's base unit
// by factor; temperature units go through kelvin with their affine transform.
// Converting a unit to itself returns amount unchanged.
func Convert(amount float64, from, to Unit) (float64, error) {
	if from.Category != to.Category || from.IsZero() || to.IsZero() {
		return 0, &IncompatibleUnitsError{From: from, To: to}
	}
	if from == to {
		return amount, nil
	}
	return to.fromBase(from.toBase(amount)), nil
}

// Evaluate converts r.Amount from r.Source to r.Destination and formats the
// result with f. A nil formatter uses the package default.
func Evaluate(r Request, f *Formatter) (Result, error) {
	if r.Source.Category != r.Category {
		return Result{}, &IncompatibleUnitsError{From: r.Source, To: r.Destination}
	}
	value, err := Convert(r.Amount, r.Source, r.Destination)
	if err != nil {
		return Result{}, err
	}
	if f == nil {
		f = defaultFormatter
	}
	return Result{
		Value:     value,
		Unit:      r.Destination,
		Formatted: f.Format(value, r.Destination),
	}, nil
}
