// SPDX-License-Identifier: MIT

package methane

import (
	"math"

	"github.com/katalvlaran/gasq/gas"
)

// Estimate computes the methane number of c per EN 16726:2015 Annex A.
//
// Description:
//
//	The AVL approximation reduces the mixture to a ternary system and
//	reads a methane-number grid, then corrects for inerts via the A20
//	(methane-CO2-N2) polynomial on the nitrogen-free basis.
//
// Algorithm Outline:
//  1. Validate; drop unknown tokens (diagnostic) and oxygen (silent);
//     fold isomer spellings; normalize over the recognized share.
//  2. Convert butane-like and heavier combustibles into C4H10
//     equivalents (C4 olefins ×1.0, C5 ×2.3, C6 and heavier ×5.3);
//     no re-normalization.
//  3. Group into A/B/C and compute the carbon-weighted means MnemoB
//     and MnemoC.
//  4. Nearly pure methane (no B, no C, CH4 above threshold): return
//     100 exactly.
//  5. Table term: nearest grid cell × sumB × sumC; a missing group
//     substitutes the base 100 instead.
//  6. Inert correction from the original composition; all-nitrogen
//     input fixes the term at 100.
//  7. Combine: raw = term + correction − 100.0003. A raw value
//     outside [0,105] appends DiagOutOfRange. Clamp to [0,100] and
//     round to opts.Precision decimals.
//
// Determinism: sorted iteration everywhere; identical inputs yield
// identical Results.
//
// Complexity: O(n log n) in the number of components.
//
// Errors:
//   - ErrBadOptions           — options outside their domain.
//   - gas.ErrEmptyComposition — no entries at all.
//   - *gas.FractionError      — negative or non-finite fraction.
//   - ErrNoRecognized         — nothing recognized with positive share.
func Estimate(c gas.Composition, opts Options) (Result, error) {
	var res Result
	if err := opts.validate(); err != nil {
		return res, err
	}

	red, diags, err := reduce(c, true)
	if err != nil {
		return res, err
	}
	res.Diagnostics = diags
	res.MnemoB, res.MnemoC = red.mnemoB, red.mnemoC
	res.SumA, res.SumB, res.SumC = red.sumA, red.sumB, red.sumC

	// Pure-methane short-circuit: nothing to look up, nothing to
	// correct.
	if red.sumB <= opts.Epsilon && red.sumC <= opts.Epsilon && red.ch4 > opts.PureMethaneThreshold {
		res.PureMethane = true
		res.Raw = 100.0
		res.MN = 100.0
		return res, nil
	}

	// Table term; a missing group substitutes the base 100.
	if red.sumB > opts.Epsilon && red.sumC > opts.Epsilon {
		res.TMN = lookupTMN(red.mnemoB, red.mnemoC)
		res.MNPrime = res.TMN * red.sumB * red.sumC
	} else {
		res.MNPrime = 100.0
	}

	// Inert correction always runs on the original composition.
	res.InertCorrection = inertCorrection(c)

	res.Raw = res.MNPrime + res.InertCorrection - methaneReference
	if res.Raw < rawLow || res.Raw > rawHigh {
		res.Diagnostics = append(res.Diagnostics, Diagnostic{Code: DiagOutOfRange, Value: res.Raw})
	}

	clamped := math.Min(100.0, math.Max(0.0, res.Raw))
	res.MN = roundTo(clamped, opts.Precision)

	return res, nil
}

// EstimateTMN is the strict table-only estimator kept for callers
// that need the historical behavior: isomer folding and normalization
// apply, but there is no butane-equivalence conversion and no inert
// correction. The returned value is TMN·sumB·sumC, unrounded; nearly
// pure methane (normalized CH4 > 0.99 with empty B and C) returns 100
// exactly.
//
// Unlike Estimate it cannot substitute a base term: an empty group B
// or C yields ErrMissingGroup.
//
// Errors: gas.ErrEmptyComposition, *gas.FractionError,
// ErrNoRecognized, ErrMissingGroup.
func EstimateTMN(c gas.Composition) (float64, []Diagnostic, error) {
	red, diags, err := reduce(c, false)
	if err != nil {
		return 0, diags, err
	}

	if red.sumB <= DefaultEpsilon && red.sumC <= DefaultEpsilon && red.ch4 > DefaultPureMethaneThreshold {
		return 100.0, diags, nil
	}
	if red.sumB <= DefaultEpsilon || red.sumC <= DefaultEpsilon {
		return 0, diags, ErrMissingGroup
	}

	return lookupTMN(red.mnemoB, red.mnemoC) * red.sumB * red.sumC, diags, nil
}

// roundTo rounds half away from zero at prec decimal places.
func roundTo(v float64, prec int) float64 {
	scale := math.Pow(10, float64(prec))
	return math.Round(v*scale) / scale
}
