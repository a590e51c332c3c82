// Package gasq estimates natural-gas quality from a molar composition:
// methane number per EN 16726:2015 Annex A, heating values, Wobbe
// indices, relative density, and compliance against regulatory limits.
//
// 🚀 What is gasq?
//
//	A small, deterministic gas-quality toolkit that brings together:
//		• Species registry: alias folding, A/B/C grouping, carbon counts
//		• Methane number: TMN grid lookup + A20 inert correction (AVL method)
//		• Energetics: heating-value mixing, MJ/m3 ↔ kWh/m3, Wobbe index
//		• Compliance: min/max limit checks with a plain-text report
//		• Loaders: compositions from JSON/CSV, tables from YAML/JSON
//
// ✨ Why choose gasq?
//
//   - Predictable numerics – fixed iteration order, pinned regression fixtures
//   - Explicit failure modes – sentinel errors, diagnostics as values
//   - Pure calculation core – calculators never log, never touch files
//   - Small API – compositions in, scalars and reports out
//
// Under the hood, everything is organized under five subpackages:
//
//	gas/      — species vocabulary, Composition, molar mass & density
//	methane/  — the methane-number estimator and its reduction pipeline
//	energy/   — heating values, unit conversion, Wobbe index
//	quality/  — limits, checks, violations, text report
//	gasio/    — JSON/CSV/YAML loaders for compositions and tables
//
// Quick pipeline sketch:
//
//	composition ──► normalize ──► {density, heating values, Wobbe, MN}
//	                                   │
//	                              limits check ──► report + exit code
//
// The cmd/gasq binary wires the whole chain behind a handful of flags.
//
//	go get github.com/katalvlaran/gasq
package gasq
