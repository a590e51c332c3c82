// Command gasq evaluates a natural-gas composition file: molar mass,
// relative density, heating values, Wobbe indices, methane number, and
// compliance against an optional limits table.
//
// Exit codes: 0 gas compliant (or no limits configured), 1 usage or
// computation failure, 2 gas violates at least one limit.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/powerman/structlog"

	"github.com/katalvlaran/gasq/energy"
	"github.com/katalvlaran/gasq/gas"
	"github.com/katalvlaran/gasq/gasio"
	"github.com/katalvlaran/gasq/methane"
	"github.com/katalvlaran/gasq/quality"
)

const (
	exitOK           = 0
	exitErr          = 1
	exitNonCompliant = 2
)

var log = structlog.New()

func main() {
	var (
		inputPath  = flag.String("input", "", "composition file (.json or .csv), required")
		limitsPath = flag.String("limits", "", "limits table (.json, .yaml, .yml)")
		hvPath     = flag.String("hv", "", "heating-value table override (.yaml, .json)")
		mwPath     = flag.String("mw", "", "molar-mass table override (.yaml, .json)")
		precision  = flag.Int("precision", 0, "decimal places for the methane number")
		verbose    = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	initLog(*verbose)

	if *inputPath == "" {
		fmt.Fprintln(flag.CommandLine.Output(), "gasq: -input is required")
		flag.Usage()
		os.Exit(exitErr)
	}

	compliant, err := run(*inputPath, *limitsPath, *hvPath, *mwPath, *precision)
	switch {
	case err != nil:
		log.PrintErr(err)
		os.Exit(exitErr)
	case !compliant:
		os.Exit(exitNonCompliant)
	}
	os.Exit(exitOK)
}

func initLog(verbose bool) {
	structlog.DefaultLogger.
		SetPrefixKeys(
			structlog.KeyApp, structlog.KeyLevel, structlog.KeyTime,
		).
		SetDefaultKeyvals(
			structlog.KeyApp, filepath.Base(os.Args[0]),
			structlog.KeySource, structlog.Auto,
		).
		SetSuffixKeys(structlog.KeySource).
		SetKeysFormat(map[string]string{
			structlog.KeyTime:   " %[2]s",
			structlog.KeySource: " %6[2]s",
		})
	if verbose {
		structlog.DefaultLogger.SetLogLevel(structlog.DBG)
		log.SetLogLevel(structlog.DBG)
	}
}

func run(inputPath, limitsPath, hvPath, mwPath string, precision int) (bool, error) {
	raw, err := gasio.LoadComposition(inputPath)
	if err != nil {
		return false, err
	}
	log.Debug("loaded composition", "file", inputPath, "species", len(raw))

	var limits quality.Limits
	if limitsPath != "" {
		if limits, err = gasio.LoadLimits(limitsPath); err != nil {
			return false, err
		}
		log.Debug("loaded limits", "file", limitsPath, "params", len(limits))
	}

	var hvTable energy.Table
	if hvPath != "" {
		if hvTable, err = gasio.LoadHeatingValues(hvPath); err != nil {
			return false, err
		}
	}

	var weights map[gas.Species]float64
	if mwPath != "" {
		if weights, err = gasio.LoadMolarMass(mwPath); err != nil {
			return false, err
		}
	}

	comp, err := raw.Normalize()
	if err != nil {
		return false, err
	}

	relDensity, err := comp.RelativeDensity(weights)
	if err != nil {
		return false, err
	}

	hv, err := energy.Mix(comp, hvTable)
	if err != nil {
		return false, err
	}
	wobbeUpper, wobbeLower, err := energy.Wobbe(hv, relDensity)
	if err != nil {
		return false, err
	}

	opts := methane.DefaultOptions()
	opts.Precision = precision
	res, err := methane.Estimate(comp, opts)
	if err != nil {
		return false, err
	}
	for _, diag := range res.Diagnostics {
		log.Warn("methane number", "diag", diag.String())
	}
	log.Debug("methane number estimated",
		"mn", res.MN, "raw", res.Raw, "tmn", res.TMN,
		"mnemoB", res.MnemoB, "mnemoC", res.MnemoC)

	summary := quality.Summary{
		Composition:     comp,
		HHV:             energy.MJm3ToKWhm3(hv.HHV),
		LHV:             energy.MJm3ToKWhm3(hv.LHV),
		WobbeUpper:      energy.MJm3ToKWhm3(wobbeUpper),
		WobbeLower:      energy.MJm3ToKWhm3(wobbeLower),
		RelativeDensity: relDensity,
		MethaneNumber:   res.MN,
	}
	results := quality.Evaluate(summary, limits)
	if err := quality.WriteReport(os.Stdout, summary, results); err != nil {
		return false, err
	}

	if err := quality.Violations(results); err != nil {
		log.Warn("gas out of limits", "err", err)
		return false, nil
	}
	return true, nil
}
