// Package gas defines the shared vocabulary for natural-gas mixtures:
// the component Species set, the Composition map, and the plain-data
// molar-mass table every calculator in the module consumes.
//
// Core concepts:
//
//   - Species: a component token such as "CH4" or "iC4H10". The
//     vocabulary is fixed. Canonical folds isomer and overflow
//     spellings (iC4H10/nC4H10 into C4H10, C6+/hexanes+ into C6H14)
//     onto canonical keys.
//   - Group: the three-component classification used by the methane
//     number reduction of EN 16726:2015 Annex A (A = methane/ethane,
//     B = propane/butanes, C = heavier hydrocarbons and inerts).
//     Oxygen is recognized but ignored by every combustion sum.
//   - Composition: Species to mole (volume) fraction. Fractions need
//     not sum to one; Normalize rescales, Validate rejects negative
//     or non-finite entries.
//
// Registry lookups are pure reads of immutable package-level tables
// and are safe for concurrent use. Composition values are plain maps:
// callers own synchronization if they mutate shared instances.
//
// Every summation iterates species in lexical order, so floating-point
// results are reproducible across runs and platforms.
package gas
