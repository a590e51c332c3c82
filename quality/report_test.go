package quality_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gasq/gas"
	"github.com/katalvlaran/gasq/quality"
)

func TestWriteReport_Layout(t *testing.T) {
	s := quality.Summary{
		Composition:     gas.Composition{gas.CH4: 0.94, gas.CO2: 0.06},
		HHV:             10.5,
		LHV:             9.45,
		WobbeUpper:      14.0,
		WobbeLower:      12.6,
		RelativeDensity: 0.5625,
		MethaneNumber:   80,
	}
	limits := quality.Limits{
		quality.ParamCO2MolPct:     {Max: fptr(2.5)},
		quality.ParamMethaneNumber: {Min: fptr(65)},
	}
	results := quality.Evaluate(s, limits)

	var buf bytes.Buffer
	require.NoError(t, quality.WriteReport(&buf, s, results))

	want := strings.Join([]string{
		"=== Natural Gas Mixture Summary ===",
		"Composition (mol %):",
		"  CH4     :  94.000",
		"  CO2     :   6.000",
		"",
		"Energetics and Wobbe:",
		"  HHV: 10.500 kWh/m3",
		"  LHV: 9.450 kWh/m3",
		"  Wg : 14.000 kWh/m3",
		"  Wd : 12.600 kWh/m3",
		"  d  : 0.5625",
		"  Methane number (est.): 80.0",
		"",
		"Compliance check:",
		"  CO2_mol_pct         : 6.0000 (min=none, max=2.5) -> HIGH",
		"  methane_number      : 80.0000 (min=65, max=none) -> OK",
		"",
		"Result: gas violates one or more checked limits.",
		"",
	}, "\n")
	assert.Equal(t, want, buf.String())
}

func TestWriteReport_CompliantVerdict(t *testing.T) {
	s := quality.Summary{
		Composition:   gas.Composition{gas.CH4: 1.0},
		MethaneNumber: 100,
	}
	limits := quality.Limits{quality.ParamMethaneNumber: {Min: fptr(65)}}

	var buf bytes.Buffer
	require.NoError(t, quality.WriteReport(&buf, s, quality.Evaluate(s, limits)))

	assert.Contains(t, buf.String(), "Result: gas within all checked limits.")
	assert.NotContains(t, buf.String(), "violates")
}

func TestWriteReport_NoLimitsConfigured(t *testing.T) {
	s := quality.Summary{Composition: gas.Composition{gas.CH4: 1.0}}

	var buf bytes.Buffer
	require.NoError(t, quality.WriteReport(&buf, s, nil))

	assert.Contains(t, buf.String(), "(no limits configured)")
	assert.Contains(t, buf.String(), "Result: gas within all checked limits.")
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("sink closed")
}

func TestWriteReport_WriterError(t *testing.T) {
	s := quality.Summary{Composition: gas.Composition{gas.CH4: 1.0}}
	err := quality.WriteReport(failingWriter{}, s, nil)
	assert.EqualError(t, err, "sink closed")
}
