package quality

import (
	"github.com/hashicorp/go-multierror"

	"github.com/katalvlaran/gasq/gas"
)

// Summary carries every computed metric for one gas. Composition must
// be unit-sum; energetic values and both Wobbe indices are kWh/m3.
type Summary struct {
	Composition     gas.Composition
	HHV             float64
	LHV             float64
	WobbeUpper      float64
	WobbeLower      float64
	RelativeDensity float64
	MethaneNumber   float64
}

// CheckComposition checks inert and oxygen content against the
// CO2_mol_pct, N2_mol_pct and O2_mol_pct limits, in that order.
// Fractions are scaled to mol% for comparison; a species absent from
// the composition checks as zero.
func CheckComposition(c gas.Composition, limits Limits) []Result {
	var results []Result
	for _, p := range [...]struct {
		name    string
		species gas.Species
	}{
		{ParamCO2MolPct, gas.CO2},
		{ParamN2MolPct, gas.N2},
		{ParamO2MolPct, gas.O2},
	} {
		if r, ok := Check(p.name, c[p.species]*100.0, limits); ok {
			results = append(results, r)
		}
	}
	return results
}

// CheckEnergy checks heating values, Wobbe indices (all kWh/m3) and
// relative density, in the fixed order HHV, LHV, Wobbe upper, Wobbe
// lower, density.
func CheckEnergy(hhv, lhv, wobbeUpper, wobbeLower, relDensity float64, limits Limits) []Result {
	var results []Result
	for _, p := range [...]struct {
		name  string
		value float64
	}{
		{ParamHHV, hhv},
		{ParamLHV, lhv},
		{ParamWobbeHHV, wobbeUpper},
		{ParamWobbeLHV, wobbeLower},
		{ParamRelativeDensity, relDensity},
	} {
		if r, ok := Check(p.name, p.value, limits); ok {
			results = append(results, r)
		}
	}
	return results
}

// CheckMethaneNumber checks the estimated methane number.
func CheckMethaneNumber(mn float64, limits Limits) []Result {
	var results []Result
	if r, ok := Check(ParamMethaneNumber, mn, limits); ok {
		results = append(results, r)
	}
	return results
}

// Evaluate runs every check over the summary in a fixed order:
// composition, energetics, methane number. The result order is
// deterministic for a given limits table.
func Evaluate(s Summary, limits Limits) []Result {
	results := CheckComposition(s.Composition, limits)
	results = append(results, CheckEnergy(s.HHV, s.LHV, s.WobbeUpper, s.WobbeLower, s.RelativeDensity, limits)...)
	results = append(results, CheckMethaneNumber(s.MethaneNumber, limits)...)
	return results
}

// Violations folds every non-OK result into one error, a
// *ViolationError per parameter. Nil when all results are OK.
func Violations(results []Result) error {
	var mulErr *multierror.Error
	for _, r := range results {
		if r.Status == StatusOK {
			continue
		}
		mulErr = multierror.Append(mulErr, &ViolationError{Result: r})
	}
	return mulErr.ErrorOrNil()
}
