package energy

import "errors"

// ErrBadDensity reports a relative density that is zero, negative, or
// NaN, for which the Wobbe quotient is undefined.
var ErrBadDensity = errors.New("energy: relative density must be positive")
