package methane_test

import (
	"testing"

	"github.com/katalvlaran/gasq/gas"
	"github.com/katalvlaran/gasq/methane"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// refMixture is the pipeline-quality regression composition used
// across the estimator tests.
func refMixture() gas.Composition {
	return gas.Composition{
		gas.CH4:   0.85,
		gas.C2H6:  0.06,
		gas.C3H8:  0.03,
		gas.C4H10: 0.012,
		gas.N2:    0.03,
		gas.CO2:   0.012,
	}
}

// hasDiag reports whether diags contains a finding with the code.
func hasDiag(diags []methane.Diagnostic, code methane.DiagCode) bool {
	for _, d := range diags {
		if d.Code == code {
			return true
		}
	}
	return false
}

// TestEstimate_PureMethane short-circuits to exactly 100 without
// touching the table or the inert correction.
func TestEstimate_PureMethane(t *testing.T) {
	res, err := methane.Estimate(gas.Composition{gas.CH4: 1.0}, methane.DefaultOptions())
	require.NoError(t, err)

	assert.True(t, res.PureMethane)
	assert.Equal(t, 100.0, res.MN)
	assert.Equal(t, 100.0, res.Raw)
	assert.Empty(t, res.Diagnostics)
}

// TestEstimate_PureMethane_Traces: group shares below epsilon do not
// defeat the short-circuit.
func TestEstimate_PureMethane_Traces(t *testing.T) {
	c := gas.Composition{gas.CH4: 1.0, gas.C3H8: 1e-9, gas.N2: 1e-9}
	res, err := methane.Estimate(c, methane.DefaultOptions())
	require.NoError(t, err)

	assert.True(t, res.PureMethane)
	assert.Equal(t, 100.0, res.MN)
}

// TestEstimate_MissingGroup substitutes the base term 100 and still
// applies the inert correction; the raw combination lands far above
// the plausible band and is flagged, then clamped.
func TestEstimate_MissingGroup(t *testing.T) {
	res, err := methane.Estimate(gas.Composition{gas.CH4: 0.5, gas.C2H6: 0.5}, methane.DefaultOptions())
	require.NoError(t, err)

	assert.False(t, res.PureMethane)
	assert.Equal(t, 100.0, res.MNPrime)
	assert.Zero(t, res.TMN)
	assert.InDelta(t, 295.97461529, res.Raw, 1e-6)
	assert.True(t, hasDiag(res.Diagnostics, methane.DiagOutOfRange))
	assert.Equal(t, 100.0, res.MN)
}

// TestEstimate_ReferenceMixture audits every intermediate of the
// regression composition: group shares, mnemonic means, grid cell,
// table term, raw combination and the clamped result.
func TestEstimate_ReferenceMixture(t *testing.T) {
	res, err := methane.Estimate(refMixture(), methane.DefaultOptions())
	require.NoError(t, err)

	share := 0.042 / 0.994 // recognized total is 0.994
	assert.InDelta(t, share, res.SumB, 1e-12)
	assert.InDelta(t, share, res.SumC, 1e-12)
	assert.InDelta(t, (0.03*3+0.012*4)/0.042, res.MnemoB, 1e-9)
	assert.InDelta(t, 0.012/0.042, res.MnemoC, 1e-9)

	assert.Equal(t, 92.8554, res.TMN)
	assert.InDelta(t, 92.8554*share*share, res.MNPrime, 1e-9)

	assert.InDelta(t, 278.889, res.InertCorrection, 2e-2)
	assert.InDelta(t, 179.055, res.Raw, 2e-2)
	assert.True(t, hasDiag(res.Diagnostics, methane.DiagOutOfRange))
	assert.False(t, hasDiag(res.Diagnostics, methane.DiagUnknownComponent))
	assert.Equal(t, 100.0, res.MN)
}

// TestEstimate_PipelineMixture runs a distribution-grade analysis
// with pentane, exercising the butane-equivalence conversion inside a
// full estimate.
func TestEstimate_PipelineMixture(t *testing.T) {
	c := gas.Composition{
		gas.CH4:   0.8243,
		gas.C2H6:  0.03,
		gas.C3H8:  0.002,
		gas.C4H10: 0.0027,
		gas.C5H12: 0.001,
		gas.N2:    0.13,
		gas.CO2:   0.01,
	}
	res, err := methane.Estimate(c, methane.DefaultOptions())
	require.NoError(t, err)

	c4 := 0.0027 + 0.001*2.3
	assert.InDelta(t, 0.002+c4, res.SumB, 1e-9)
	assert.InDelta(t, 0.14, res.SumC, 1e-9)
	assert.InDelta(t, (0.002*3+c4*4)/(0.002+c4), res.MnemoB, 1e-9)
	assert.InDelta(t, 0.01/0.14, res.MnemoC, 1e-9)

	// MnemoB rounds up to the 4.0 row, MnemoC to the 0.1 column.
	assert.Equal(t, 100.0, res.TMN)
	assert.InDelta(t, 100.0*res.SumB*res.SumC, res.MNPrime, 1e-9)
	assert.Equal(t, 100.0, res.MN)
}

// TestEstimate_AllNitrogen combines the substituted base with the
// degenerate inert term: raw 99.9997 sits inside the plausible band,
// so no diagnostic fires and rounding lands on 100.
func TestEstimate_AllNitrogen(t *testing.T) {
	res, err := methane.Estimate(gas.Composition{gas.N2: 1.0}, methane.DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, 100.0, res.MNPrime)
	assert.Equal(t, 100.0, res.InertCorrection)
	assert.InDelta(t, 99.9997, res.Raw, 1e-9)
	assert.Empty(t, res.Diagnostics)
	assert.Equal(t, 100.0, res.MN)
}

// TestEstimate_Precision keeps hundredths (or finer) on request while
// the default reports whole numbers.
func TestEstimate_Precision(t *testing.T) {
	opts := methane.DefaultOptions()
	opts.Precision = 4

	res, err := methane.Estimate(gas.Composition{gas.N2: 1.0}, opts)
	require.NoError(t, err)
	assert.InDelta(t, 99.9997, res.MN, 1e-9)

	res, err = methane.Estimate(gas.Composition{gas.N2: 1.0}, methane.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, 100.0, res.MN)
}

// TestEstimate_UnknownComponent drops the token, reports it and keeps
// going on the recognized share.
func TestEstimate_UnknownComponent(t *testing.T) {
	c := gas.Composition{gas.CH4: 0.9, gas.Species("He"): 0.1}
	res, err := methane.Estimate(c, methane.DefaultOptions())
	require.NoError(t, err)

	require.Len(t, res.Diagnostics, 1)
	assert.Equal(t, methane.DiagUnknownComponent, res.Diagnostics[0].Code)
	assert.Equal(t, gas.Species("He"), res.Diagnostics[0].Species)
	assert.Equal(t, 0.1, res.Diagnostics[0].Value)
	assert.True(t, res.PureMethane, "the recognized share is pure methane")
	assert.Equal(t, 100.0, res.MN)
}

// TestEstimate_InertDilution: adding inerts while holding the
// hydrocarbon ratios fixed never raises the final MN.
func TestEstimate_InertDilution(t *testing.T) {
	base := gas.Composition{gas.CH4: 0.90, gas.C3H8: 0.05, gas.CO2: 0.05}
	diluted := gas.Composition{gas.CH4: 0.72, gas.C3H8: 0.04, gas.CO2: 0.24}

	rb, err := methane.Estimate(base, methane.DefaultOptions())
	require.NoError(t, err)
	rd, err := methane.Estimate(diluted, methane.DefaultOptions())
	require.NoError(t, err)

	assert.GreaterOrEqual(t, rb.MN, rd.MN)
}

// TestEstimate_Errors covers every fatal path with its sentinel.
func TestEstimate_Errors(t *testing.T) {
	opts := methane.DefaultOptions()

	_, err := methane.Estimate(gas.Composition{}, opts)
	assert.ErrorIs(t, err, gas.ErrEmptyComposition)

	_, err = methane.Estimate(gas.Composition{gas.CH4: -0.1}, opts)
	var fe *gas.FractionError
	assert.ErrorAs(t, err, &fe)

	_, err = methane.Estimate(gas.Composition{gas.Species("Ar"): 1.0}, opts)
	assert.ErrorIs(t, err, methane.ErrNoRecognized)

	_, err = methane.Estimate(gas.Composition{gas.O2: 1.0}, opts)
	assert.ErrorIs(t, err, methane.ErrNoRecognized)

	bad := opts
	bad.Epsilon = 0
	_, err = methane.Estimate(refMixture(), bad)
	assert.ErrorIs(t, err, methane.ErrBadOptions)

	bad = opts
	bad.PureMethaneThreshold = 1.5
	_, err = methane.Estimate(refMixture(), bad)
	assert.ErrorIs(t, err, methane.ErrBadOptions)

	bad = opts
	bad.Precision = -1
	_, err = methane.Estimate(refMixture(), bad)
	assert.ErrorIs(t, err, methane.ErrBadOptions)
}

// TestEstimate_Deterministic: identical inputs produce identical
// Results, diagnostics included.
func TestEstimate_Deterministic(t *testing.T) {
	a, err := methane.Estimate(refMixture(), methane.DefaultOptions())
	require.NoError(t, err)
	b, err := methane.Estimate(refMixture(), methane.DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

// TestEstimateTMN_Strict pins the historical variant: folding and
// normalization apply, heavies stay in group C, missing groups are
// fatal and the result is the bare scaled grid value.
func TestEstimateTMN_Strict(t *testing.T) {
	v, diags, err := methane.EstimateTMN(gas.Composition{gas.CH4: 1.0})
	require.NoError(t, err)
	assert.Empty(t, diags)
	assert.Equal(t, 100.0, v)

	share := 0.042 / 0.994
	v, _, err = methane.EstimateTMN(refMixture())
	require.NoError(t, err)
	assert.InDelta(t, 92.8554*share*share, v, 1e-9)

	_, _, err = methane.EstimateTMN(gas.Composition{gas.CH4: 0.5, gas.C2H6: 0.5})
	assert.ErrorIs(t, err, methane.ErrMissingGroup)

	_, _, err = methane.EstimateTMN(gas.Composition{gas.CH4: 0.9, gas.C3H8: 0.1})
	assert.ErrorIs(t, err, methane.ErrMissingGroup, "no group C in the strict variant")

	// Pentane lands in group C here, so group B stays empty; the
	// normative estimator simplifies it into C4H10 instead.
	strictOnly := gas.Composition{gas.CH4: 0.8, gas.C5H12: 0.1, gas.N2: 0.1}
	_, _, err = methane.EstimateTMN(strictOnly)
	assert.ErrorIs(t, err, methane.ErrMissingGroup)

	res, err := methane.Estimate(strictOnly, methane.DefaultOptions())
	require.NoError(t, err)
	assert.Positive(t, res.SumB)
}
