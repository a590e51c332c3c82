package energy

import "github.com/katalvlaran/gasq/gas"

// MJPerKWh converts between the two volumetric energy units used in
// gas-quality reporting: 1 kWh/m3 = 3.6 MJ/m3.
const MJPerKWh = 3.6

// HeatingValue bundles the superior (HHV) and inferior (LHV) heating
// value of a gas. Units are MJ/m3 unless a caller converts. Tags keep
// the conventional uppercase keys in override files.
type HeatingValue struct {
	HHV float64 `json:"HHV" yaml:"HHV"`
	LHV float64 `json:"LHV" yaml:"LHV"`
}

// Table maps species to volumetric heating values at a common
// reference condition.
type Table map[gas.Species]HeatingValue

// DefaultTable lists reference volumetric heating values, MJ/m3, for
// the combustible components of pipeline gas. Inerts carry no entry
// and therefore mix as zero. Site-specific tables load via gasio.
var DefaultTable = Table{
	gas.CH4:    {HHV: 53.28, LHV: 47.91},
	gas.C2H6:   {HHV: 68.19, LHV: 62.47},
	gas.C3H8:   {HHV: 81.07, LHV: 74.54},
	gas.IC4H10: {HHV: 91.96, LHV: 84.71},
	gas.NC4H10: {HHV: 92.32, LHV: 85.08},
}

// Mix blends per-species heating values linearly by mole fraction. A
// nil table selects DefaultTable. Lookups fall back to the canonical
// species key, so iC4H10 finds a C4H10 entry when no isomer-specific
// one exists. Species missing from the table contribute zero.
//
// Mixing is only meaningful on a unit-sum composition; Mix does not
// rescale.
//
// Errors: gas.ErrEmptyComposition, *gas.FractionError.
func Mix(c gas.Composition, t Table) (HeatingValue, error) {
	if err := c.Validate(); err != nil {
		return HeatingValue{}, err
	}
	if t == nil {
		t = DefaultTable
	}
	var hv HeatingValue
	for _, sp := range c.Keys() {
		f := c[sp]
		if f == 0 {
			continue
		}
		v, ok := t[sp]
		if !ok {
			v, ok = t[gas.Canonical(sp)]
		}
		if !ok {
			continue
		}
		hv.HHV += f * v.HHV
		hv.LHV += f * v.LHV
	}
	return hv, nil
}

// MJm3ToKWhm3 converts a volumetric energy value from MJ/m3 to kWh/m3.
func MJm3ToKWhm3(v float64) float64 { return v / MJPerKWh }

// KWhm3ToMJm3 converts a volumetric energy value from kWh/m3 to MJ/m3.
func KWhm3ToMJm3(v float64) float64 { return v * MJPerKWh }
