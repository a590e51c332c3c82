// SPDX-License-Identifier: MIT

// Package methane: inert correction. The A20 system (methane-CO2-N2)
// polynomial maps the combustible and CO2 percentages, both taken on
// the nitrogen-free basis, to a correction term for the final
// combination.

package methane

import "github.com/katalvlaran/gasq/gas"

// a20Coefficients is the published A20 fit: row i holds the
// coefficients of x^i, column j those of y^j. Rows shorten as i
// grows. The table is kept verbatim; the trailing row-2 entry lies
// outside the triangular evaluation bound and is never evaluated.
var a20Coefficients = [][]float64{
	{2.9917430e+02, -1.5119580e+01, -3.1156360e-01, 7.6359480e-01, 4.5480690e-02, 1.1230410e-02},
	{-2.3762630e-02, -7.1562940e-04, 6.5557090e-04, -2.1468550e-03, 4.3554940e-04, 3.8606680e-06},
	{1.3816990e-06, -7.9339020e-06, 6.6993640e-05, -4.6077260e-06, 2.6105700e-08, -6.1439140e-11},
	{-8.3693870e-07, 3.9280730e-09},
}

// a20MaxDegree bounds the total polynomial degree: the x^i·y^j term
// is evaluated only when j < a20MaxDegree - i.
const a20MaxDegree = 7

// evalA20 evaluates a triangular bivariate polynomial: every supplied
// coefficient with j < maxDegree-i contributes c[i][j]·x^i·y^j.
// Parameterized so the truncation rule can be pinned by tests on
// synthetic matrices.
func evalA20(coeffs [][]float64, maxDegree int, x, y float64) float64 {
	var sum float64
	xi := 1.0
	for i := 0; i < len(coeffs); i++ {
		yj := 1.0
		for j := 0; j < maxDegree-i && j < len(coeffs[i]); j++ {
			sum += coeffs[i][j] * xi * yj
			yj *= y
		}
		xi *= x
	}
	return sum
}

// inertCorrection computes the A20 term from the original, unfolded
// composition: x is the combustible percentage and y the CO2
// percentage on the nitrogen-free basis. Oxygen and unknown tokens
// stay out of every sum; water counts into the denominator only. A
// vanishing nitrogen-free total (the all-nitrogen degenerate case)
// fixes the term at 100.
func inertCorrection(c gas.Composition) float64 {
	var combustible, n2, co2, total float64
	for _, sp := range c.Keys() {
		f := c[sp]
		if f <= 0 {
			continue
		}
		canon := gas.Canonical(sp)
		switch gas.GroupOf(canon) {
		case gas.GroupUnknown, gas.GroupIgnored:
			continue
		}
		total += f
		switch canon {
		case gas.N2:
			n2 += f
		case gas.CO2:
			co2 += f
		case gas.H2O:
			// inert, denominator only
		default:
			combustible += f
		}
	}

	free := total - n2
	if free <= inertEpsilon {
		return 100.0
	}

	x := 100 * combustible / free
	y := 100 * co2 / free

	return evalA20(a20Coefficients, a20MaxDegree, x, y)
}
