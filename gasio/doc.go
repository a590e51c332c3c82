// Package gasio loads gas-quality input files: compositions from JSON
// or CSV, and limits, heating-value and molar-mass tables from YAML or
// JSON.
//
// Loaders dispatch on the file extension and return plain values from
// the gas, energy and quality packages. Species tokens pass through
// unvalidated; the calculators decide what is recognized. Errors are
// wrapped with merry so call sites keep file context.
package gasio
