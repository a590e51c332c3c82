// SPDX-License-Identifier: MIT

// Package methane: estimator configuration, diagnostics and result
// types. The numeric policy constants are the single source of truth
// for defaults; DefaultOptions mirrors the published method.

package methane

import (
	"fmt"
	"math"

	"github.com/katalvlaran/gasq/gas"
)

// Numeric policy of the estimator. Override via Options only when
// reproducing another tool's behavior.
const (
	// DefaultEpsilon is the smallest group share treated as present.
	DefaultEpsilon = 1e-6

	// DefaultPureMethaneThreshold is the normalized methane share
	// above which a mixture without B and C components short-circuits
	// to MN 100.
	DefaultPureMethaneThreshold = 0.99

	// DefaultPrecision rounds the final MN to a whole number.
	DefaultPrecision = 0

	// inertEpsilon guards the nitrogen-free denominator of the inert
	// correction against the all-nitrogen degenerate case.
	inertEpsilon = 1e-9

	// methaneReference is the pure-methane MN subtracted in the
	// terminal combination.
	methaneReference = 100.0003

	// rawLow and rawHigh bound the plausible pre-clamp combination;
	// values outside are reported via DiagOutOfRange.
	rawLow  = 0.0
	rawHigh = 105.0
)

// Options configures Estimate.
//
// Fields:
//   - Epsilon: group shares at or below this do not form a table
//     term. Must be > 0.
//   - PureMethaneThreshold: normalized CH4 share required for the
//     pure-methane short-circuit. Must lie in (0, 1].
//   - Precision: decimal places kept in Result.MN. Must be >= 0.
//     0 reproduces the normative whole-number rounding; 2 matches
//     tooling that reports hundredths.
type Options struct {
	Epsilon              float64
	PureMethaneThreshold float64
	Precision            int
}

// DefaultOptions returns the published-method configuration:
// epsilon 1e-6, pure-methane threshold 0.99, whole-number rounding.
func DefaultOptions() Options {
	return Options{
		Epsilon:              DefaultEpsilon,
		PureMethaneThreshold: DefaultPureMethaneThreshold,
		Precision:            DefaultPrecision,
	}
}

// validate rejects option values outside their documented domain.
func (o Options) validate() error {
	if !(o.Epsilon > 0) || math.IsInf(o.Epsilon, 0) {
		return ErrBadOptions
	}
	if !(o.PureMethaneThreshold > 0 && o.PureMethaneThreshold <= 1) {
		return ErrBadOptions
	}
	if o.Precision < 0 {
		return ErrBadOptions
	}
	return nil
}

// DiagCode enumerates non-fatal findings collected during estimation.
type DiagCode int

const (
	// DiagUnknownComponent marks a token outside the vocabulary,
	// dropped from the calculation.
	DiagUnknownComponent DiagCode = iota + 1

	// DiagOutOfRange marks a pre-clamp combination outside [0,105],
	// typically a composition far from the method's fitted range.
	DiagOutOfRange
)

// Diagnostic is a single non-fatal finding. Estimators collect them
// in Result.Diagnostics instead of logging; callers decide what to
// surface.
type Diagnostic struct {
	// Code identifies the finding.
	Code DiagCode

	// Species names the component for component-scoped findings.
	Species gas.Species

	// Value carries the offending quantity: the dropped fraction for
	// DiagUnknownComponent, the raw combination for DiagOutOfRange.
	Value float64
}

// String renders a compact human-readable form for logs.
func (d Diagnostic) String() string {
	switch d.Code {
	case DiagUnknownComponent:
		return fmt.Sprintf("unknown component %s (fraction %v) dropped", d.Species, d.Value)
	case DiagOutOfRange:
		return fmt.Sprintf("raw methane number %.4f outside [%v, %v]", d.Value, rawLow, rawHigh)
	default:
		return fmt.Sprintf("diagnostic code %d", int(d.Code))
	}
}

// Result carries the final estimate plus the intermediates the method
// defines, so callers can audit the reduction step by step.
type Result struct {
	// MN is the final estimate: combined, clamped to [0,100], rounded
	// to Options.Precision decimals.
	MN float64

	// Raw is the pre-clamp, pre-rounding combination.
	Raw float64

	// MNPrime is the table term scaled by the B and C group shares,
	// or the substituted base 100 when a group is missing.
	MNPrime float64

	// InertCorrection is the A20 polynomial term (100.0 in the
	// degenerate all-nitrogen case).
	InertCorrection float64

	// TMN is the grid cell used for the table term; zero when no
	// table term was formed.
	TMN float64

	// MnemoB and MnemoC are the carbon-weighted group means.
	MnemoB, MnemoC float64

	// SumA, SumB and SumC are the normalized group shares after the
	// butane-equivalence conversion.
	SumA, SumB, SumC float64

	// PureMethane reports the short-circuit for nearly pure methane.
	PureMethane bool

	// Diagnostics lists non-fatal findings in encounter order.
	Diagnostics []Diagnostic
}
