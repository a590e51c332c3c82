// SPDX-License-Identifier: MIT

// Package methane estimates the methane number (MN) of a natural-gas
// mixture following EN 16726:2015 Annex A (AVL method).
//
// The estimator reduces a composition to the standard's ternary view
// and combines two terms:
//
//  1. A table term. The mixture is reduced to groups A (methane,
//     ethane), B (propane, butanes) and C (heavier hydrocarbons and
//     inerts). Carbon-weighted mnemonic means locate the nearest cell
//     of the ternary methane-number grid (Table A.2); the cell value
//     is scaled by the B and C group shares.
//  2. An inert correction. The A20 system polynomial (methane-CO2-N2)
//     is evaluated on the nitrogen-free basis of the original
//     composition.
//
// The terminal combination subtracts the pure-methane reference
// 100.0003, clamps into [0,100] and rounds. A pre-clamp value outside
// [0,105] is reported as a Diagnostic, not an error: it signals a
// composition outside the method's fitted range rather than a defect.
//
// Pipeline of Estimate:
//
//	validate -> fold isomer aliases -> normalize over the recognized,
//	non-oxygen share -> convert butane-like and heavier combustibles
//	into C4H10 equivalents -> group -> table term -> inert correction
//	-> combine, clamp, round
//
// Contract:
//   - Pure functions over immutable package tables; no internal
//     state, no logging, no panics on user input. Safe for concurrent
//     use.
//   - Non-fatal findings (unknown components, out-of-range raw
//     result) are collected in Result.Diagnostics. Fatal conditions
//     return sentinel or typed errors matchable with errors.Is and
//     errors.As.
//   - Determinism: every map iteration is sorted, so identical inputs
//     yield identical results across runs.
//
// EstimateTMN preserves the earlier strict table-only calculation (no
// butane-equivalence conversion, no inert correction) for callers
// that depend on its historical behavior.
package methane
