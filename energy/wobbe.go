package energy

import "math"

// Wobbe returns the upper and lower Wobbe index: heating value divided
// by the square root of the relative density. Output units follow the
// input heating values.
//
// Errors: ErrBadDensity when relDensity is not strictly positive.
func Wobbe(hv HeatingValue, relDensity float64) (upper, lower float64, err error) {
	if !(relDensity > 0) {
		return 0, 0, ErrBadDensity
	}
	sqrtD := math.Sqrt(relDensity)
	return hv.HHV / sqrtD, hv.LHV / sqrtD, nil
}
