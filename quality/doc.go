// Package quality checks computed gas metrics against regulatory
// limits and renders the compliance report.
//
// A Limits table maps parameter names (ParamCO2MolPct, ParamHHV, ...)
// to min/max bounds; a nil bound leaves that side unbounded, and a
// value equal to a bound is in range. Parameters absent from the
// table are not checked. Check results are plain values; Violations
// folds the non-OK ones into a single error for exit-code style
// handling.
package quality
