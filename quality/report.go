package quality

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// WriteReport renders the summary and check results as a plain-text
// report: composition in mol%, energetics, one compliance line per
// checked parameter, and a verdict line. Species print in lexical
// order so the report is reproducible.
func WriteReport(w io.Writer, s Summary, results []Result) error {
	var b strings.Builder

	b.WriteString("=== Natural Gas Mixture Summary ===\n")
	b.WriteString("Composition (mol %):\n")
	for _, sp := range s.Composition.Keys() {
		fmt.Fprintf(&b, "  %-8s: %7.3f\n", string(sp), s.Composition[sp]*100.0)
	}

	b.WriteString("\nEnergetics and Wobbe:\n")
	fmt.Fprintf(&b, "  HHV: %.3f kWh/m3\n", s.HHV)
	fmt.Fprintf(&b, "  LHV: %.3f kWh/m3\n", s.LHV)
	fmt.Fprintf(&b, "  Wg : %.3f kWh/m3\n", s.WobbeUpper)
	fmt.Fprintf(&b, "  Wd : %.3f kWh/m3\n", s.WobbeLower)
	fmt.Fprintf(&b, "  d  : %.4f\n", s.RelativeDensity)
	fmt.Fprintf(&b, "  Methane number (est.): %.1f\n", s.MethaneNumber)

	b.WriteString("\nCompliance check:\n")
	failed := false
	for _, r := range results {
		fmt.Fprintf(&b, "  %-20s: %.4f (min=%s, max=%s) -> %s\n",
			r.Name, r.Value, fmtBound(r.Limit.Min), fmtBound(r.Limit.Max), r.Status)
		if r.Status != StatusOK {
			failed = true
		}
	}
	if len(results) == 0 {
		b.WriteString("  (no limits configured)\n")
	}

	if failed {
		b.WriteString("\nResult: gas violates one or more checked limits.\n")
	} else {
		b.WriteString("\nResult: gas within all checked limits.\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// fmtBound renders one side of a limit; "none" marks an unbounded side.
func fmtBound(p *float64) string {
	if p == nil {
		return "none"
	}
	return strconv.FormatFloat(*p, 'g', -1, 64)
}
