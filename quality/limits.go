package quality

import "fmt"

// Parameter names recognized by the check functions. Limits tables are
// keyed by these strings; loaders pass file keys through unchanged.
const (
	ParamCO2MolPct       = "CO2_mol_pct"
	ParamN2MolPct        = "N2_mol_pct"
	ParamO2MolPct        = "O2_mol_pct"
	ParamHHV             = "HHV_kWhm3"
	ParamLHV             = "LHV_kWhm3"
	ParamWobbeHHV        = "Wobbe_HHV_kWhm3"
	ParamWobbeLHV        = "Wobbe_LHV_kWhm3"
	ParamRelativeDensity = "relative_density"
	ParamMethaneNumber   = "methane_number"
)

// Limit bounds one parameter. A nil side is unbounded.
type Limit struct {
	Min *float64 `json:"min" yaml:"min"`
	Max *float64 `json:"max" yaml:"max"`
}

// Limits maps parameter names to their bounds.
type Limits map[string]Limit

// Status classifies a checked value relative to its bounds.
type Status string

const (
	StatusOK   Status = "OK"
	StatusLow  Status = "LOW"
	StatusHigh Status = "HIGH"
)

// Result is the outcome of checking one parameter.
type Result struct {
	Name   string
	Value  float64
	Limit  Limit
	Status Status
}

// Classify places v against the bounds. Equality with a bound is in
// range; when both sides fail (inverted bounds) the max side wins.
func (l Limit) Classify(v float64) Status {
	s := StatusOK
	if l.Min != nil && v < *l.Min {
		s = StatusLow
	}
	if l.Max != nil && v > *l.Max {
		s = StatusHigh
	}
	return s
}

// Check evaluates value against the named entry in limits. The boolean
// reports whether limits carries that entry; absent parameters are
// never checked.
func Check(name string, value float64, limits Limits) (Result, bool) {
	l, ok := limits[name]
	if !ok {
		return Result{}, false
	}
	return Result{Name: name, Value: value, Limit: l, Status: l.Classify(value)}, true
}

// ViolationError reports one parameter outside its bounds.
type ViolationError struct {
	Result Result
}

func (e *ViolationError) Error() string {
	r := e.Result
	return fmt.Sprintf("quality: %s = %.4f (min=%s, max=%s) -> %s",
		r.Name, r.Value, fmtBound(r.Limit.Min), fmtBound(r.Limit.Max), r.Status)
}
