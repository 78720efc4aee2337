package galscale

import (
	"errors"
	"fmt"
)

// ErrFreeFreeIncomplete reports that the free-free luminosity relation
// cannot be evaluated: the governing reference leaves the Gaunt factor
// unset and its exponential cutoff mixes GHz frequencies with SI h and
// k_B. Returning a number here would silently be wrong, so the function
// refuses instead. Detect with errors.Is.
var ErrFreeFreeIncomplete = errors.New("free-free relation incomplete")

// DomainError reports an input outside the physical validity of a
// relation. These are rejected eagerly so that NaN or Inf never leaks
// out of a formula.
type DomainError struct {
	Quantity   string  // input name: "sfr", "nu", "z", "mstar", ...
	Value      float64 // the offending value
	Constraint string  // human-readable constraint, e.g. "must be > 0 (GHz)"
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("galscale: %s = %g outside physical domain: %s",
		e.Quantity, e.Value, e.Constraint)
}

// checkNonNegative rejects negative values (SFR, redshift).
func checkNonNegative(quantity string, v float64, unit string) error {
	if v < 0 || v != v { // v != v catches NaN
		return &DomainError{
			Quantity:   quantity,
			Value:      v,
			Constraint: "must be >= 0 (" + unit + ")",
		}
	}
	return nil
}

// checkPositive rejects non-positive values (frequency, stellar mass,
// temperature). Zero is excluded because these quantities sit inside
// negative powers or denominators.
func checkPositive(quantity string, v float64, unit string) error {
	if !(v > 0) { // also catches NaN
		return &DomainError{
			Quantity:   quantity,
			Value:      v,
			Constraint: "must be > 0 (" + unit + ")",
		}
	}
	return nil
}
