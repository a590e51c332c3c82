// SPDX-License-Identifier: MIT

// Package methane: composition reduction. The reducer turns a raw
// Composition into the standard's ternary view in four stages:
// filter+fold, normalize, simplify, group. Stage order is fixed:
// folding before normalization keeps isomer spellings bit-identical
// to their canonical sum, and nothing is re-normalized after the
// butane-equivalence conversion.

package methane

import (
	"github.com/katalvlaran/gasq/gas"
)

// butaneEquivalents converts butane-like and heavier combustibles
// into an equivalent C4H10 share (EN 16726:2015 Annex A). Inerts are
// never converted.
var butaneEquivalents = map[gas.Species]float64{
	gas.C4H6:   1.0,
	gas.C4H8:   1.0,
	gas.C5H12:  2.3,
	gas.C6H14:  5.3,
	gas.C7Plus: 5.3,
}

// reduced is the grouped view of a filtered, folded, normalized and
// optionally simplified composition.
type reduced struct {
	groupA, groupB, groupC gas.Composition

	sumA, sumB, sumC float64
	mnemoB, mnemoC   float64

	// ch4 is the normalized methane share, used by the pure-methane
	// short-circuit.
	ch4 float64
}

// reduce runs the reduction pipeline. Unknown tokens are dropped with
// a DiagUnknownComponent; oxygen is dropped silently. The strict
// estimator passes simplify=false to skip the butane-equivalence
// stage.
//
// Errors: gas.ErrEmptyComposition, *gas.FractionError,
// ErrNoRecognized.
func reduce(c gas.Composition, simplify bool) (reduced, []Diagnostic, error) {
	var red reduced
	if err := c.Validate(); err != nil {
		return red, nil, err
	}

	// Stage 1: filter to the recognized, non-oxygen share, folding
	// isomer and overflow spellings as we go.
	var (
		diags  []Diagnostic
		total  float64
		folded = make(gas.Composition, len(c))
	)
	for _, sp := range c.Keys() {
		f := c[sp]
		if f == 0 {
			continue
		}
		switch gas.GroupOf(sp) {
		case gas.GroupUnknown:
			diags = append(diags, Diagnostic{Code: DiagUnknownComponent, Species: sp, Value: f})
			continue
		case gas.GroupIgnored:
			continue
		}
		folded[gas.Canonical(sp)] += f
		total += f
	}
	if total <= 0 {
		return red, diags, ErrNoRecognized
	}

	// Stage 2: normalize over the recognized share.
	for sp, f := range folded {
		folded[sp] = f / total
	}

	// Stage 3: butane-equivalence conversion. Accumulates into C4H10
	// and removes the source keys; no re-normalization afterwards.
	if simplify {
		for _, sp := range folded.Keys() {
			mult, ok := butaneEquivalents[sp]
			if !ok {
				continue
			}
			folded[gas.C4H10] += folded[sp] * mult
			delete(folded, sp)
		}
	}

	// Stage 4: group and accumulate the carbon-weighted mnemonics.
	red.groupA = make(gas.Composition)
	red.groupB = make(gas.Composition)
	red.groupC = make(gas.Composition)
	var weightedB, weightedC float64
	for _, sp := range folded.Keys() {
		f := folded[sp]
		switch gas.GroupOf(sp) {
		case gas.GroupA:
			red.groupA[sp] = f
			red.sumA += f
		case gas.GroupB:
			red.groupB[sp] = f
			red.sumB += f
			weightedB += f * float64(gas.CarbonAtoms(sp))
		case gas.GroupC:
			red.groupC[sp] = f
			red.sumC += f
			weightedC += f * float64(gas.CarbonAtoms(sp))
		}
	}
	if red.sumB > 0 {
		red.mnemoB = weightedB / red.sumB
	}
	if red.sumC > 0 {
		red.mnemoC = weightedC / red.sumC
	}
	red.ch4 = folded[gas.CH4]

	return red, diags, nil
}
