// Package energy computes volumetric energetics for natural-gas
// mixtures: superior/inferior heating values by linear mixing over a
// per-species table, MJ/m3 and kWh/m3 unit conversion, and the upper
// and lower Wobbe index.
//
// Linear mixing assumes all tabulated values share the same reference
// conditions and that the composition sums to one; normalize with
// gas.Composition.Normalize before calling Mix. Species absent from
// the table (inerts, trace components) contribute zero.
package energy
