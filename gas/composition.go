package gas

import (
	"math"
	"sort"
)

// MAir is the reference molar mass of dry air, g/mol.
const MAir = 28.96

// DefaultMolarMass lists component molar masses in g/mol (GPA 2145 /
// ISO 6976 rounding; C7plus uses the heptane value). Keyed by
// canonical species; lookups fold isomer spellings onto these keys.
var DefaultMolarMass = map[Species]float64{
	CH4:    16.043,
	C2H6:   30.070,
	C3H8:   44.097,
	C4H10:  58.123,
	C5H12:  72.150,
	C6H14:  86.177,
	C7Plus: 100.204,
	N2:     28.014,
	CO2:    44.010,
	H2S:    34.081,
	H2O:    18.015,
	H2:     2.016,
	CO:     28.010,
	C2H4:   28.054,
	C3H6:   42.081,
	C4H6:   54.092,
	C4H8:   56.108,
	O2:     31.999,
}

// Composition maps species to mole (volume) fractions. Fractions need
// not sum to one: Normalize rescales, and each calculator documents
// whether it expects unit-sum input.
type Composition map[Species]float64

// Keys returns the species in lexical order. Every summation in the
// module iterates this order so floating-point results are
// reproducible across runs.
func (c Composition) Keys() []Species {
	keys := make([]Species, 0, len(c))
	for sp := range c {
		keys = append(keys, sp)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// Total returns the sum of all fractions in deterministic key order.
func (c Composition) Total() float64 {
	var total float64
	for _, sp := range c.Keys() {
		total += c[sp]
	}
	return total
}

// Validate checks structural sanity only: at least one entry, every
// fraction finite and non-negative. Vocabulary membership is the
// consumers' concern (unknown species are dropped with a diagnostic,
// not an error).
//
// Errors: ErrEmptyComposition, *FractionError.
func (c Composition) Validate() error {
	if len(c) == 0 {
		return ErrEmptyComposition
	}
	for _, sp := range c.Keys() {
		if f := c[sp]; f < 0 || math.IsNaN(f) || math.IsInf(f, 0) {
			return &FractionError{Species: sp, Fraction: f}
		}
	}
	return nil
}

// Normalize returns a copy scaled to unit sum; the receiver is never
// modified. Zero-valued entries are dropped.
//
// Errors: ErrEmptyComposition, *FractionError, ErrZeroTotal.
func (c Composition) Normalize() (Composition, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	total := c.Total()
	if total <= 0 {
		return nil, ErrZeroTotal
	}
	out := make(Composition, len(c))
	for sp, f := range c {
		if f > 0 {
			out[sp] = f / total
		}
	}
	return out, nil
}

// MolarMass mixes component molar masses linearly over the given table
// (g/mol). A nil table selects DefaultMolarMass. Isomer spellings fold
// onto canonical table keys. Fractions are used as-is; normalize first
// when the composition does not sum to one.
//
// Errors: ErrEmptyComposition, *FractionError, *MissingWeightError.
func (c Composition) MolarMass(weights map[Species]float64) (float64, error) {
	if err := c.Validate(); err != nil {
		return 0, err
	}
	if weights == nil {
		weights = DefaultMolarMass
	}
	var m float64
	for _, sp := range c.Keys() {
		f := c[sp]
		if f == 0 {
			continue
		}
		w, ok := weights[sp]
		if !ok {
			w, ok = weights[Canonical(sp)]
		}
		if !ok {
			return 0, &MissingWeightError{Species: sp}
		}
		m += f * w
	}
	return m, nil
}

// RelativeDensity returns the mixture molar mass divided by MAir.
// The weights table follows the MolarMass conventions.
func (c Composition) RelativeDensity(weights map[Species]float64) (float64, error) {
	m, err := c.MolarMass(weights)
	if err != nil {
		return 0, err
	}
	return m / MAir, nil
}
