// Package gas: sentinel and typed errors shared by the calculators.
// Algorithms return these values and tests match them via errors.Is /
// errors.As. No function in this module panics on user input.

package gas

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyComposition reports a composition with no entries at all.
	ErrEmptyComposition = errors.New("gas: empty composition")

	// ErrZeroTotal reports a composition whose fraction total is not
	// positive, so it cannot be normalized.
	ErrZeroTotal = errors.New("gas: composition total must be positive")
)

// FractionError reports a mole fraction that is negative or not
// finite. It carries the offending component for error messages.
type FractionError struct {
	Species  Species
	Fraction float64
}

// Error implements the error interface.
func (e *FractionError) Error() string {
	return fmt.Sprintf("gas: fraction %v of %s must be finite and >= 0", e.Fraction, e.Species)
}

// MissingWeightError reports a species absent from a molar-mass table.
type MissingWeightError struct {
	Species Species
}

// Error implements the error interface.
func (e *MissingWeightError) Error() string {
	return fmt.Sprintf("gas: no molar mass for %s", e.Species)
}
