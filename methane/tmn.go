// SPDX-License-Identifier: MIT

// Package methane: ternary methane-number grid (EN 16726:2015
// Annex A, Table A.2) and its nearest-neighbor lookup.

package methane

import "math"

// mnemoBAxis and mnemoCAxis are the grid axes: carbon-weighted means
// of groups B and C.
var (
	mnemoBAxis = []float64{1.0, 2.0, 3.0, 4.0}
	mnemoCAxis = []float64{0.0, 0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8, 0.9, 1.0}
)

// tmnTable holds the ternary-mixture methane numbers; rows follow
// mnemoBAxis, columns mnemoCAxis. Values are verbatim from the
// published table, including the shortened 64.277 entry.
var tmnTable = [4][11]float64{
	{100.0, 100.0, 100.0, 100.0, 100.0, 100.0, 100.0, 100.0, 100.0, 100.0, 100.0},
	{100.0, 96.4277, 92.8554, 89.2831, 85.7108, 82.1385, 78.5662, 74.9939, 71.4216, 67.8493, 64.277},
	{100.0, 100.0, 96.4277, 92.8554, 89.2831, 85.7108, 82.1385, 78.5662, 74.9939, 71.4216, 67.8493},
	{100.0, 100.0, 100.0, 96.4277, 92.8554, 89.2831, 85.7108, 82.1385, 78.5662, 74.9939, 71.4216},
}

// nearestIndex returns the index of the axis value closest to v. The
// query is clamped to the axis range first. Equidistant ties keep the
// lower grid value: the ascending scan replaces its candidate only on
// a strictly smaller distance.
func nearestIndex(axis []float64, v float64) int {
	if v < axis[0] {
		v = axis[0]
	}
	if last := axis[len(axis)-1]; v > last {
		v = last
	}
	best := 0
	bestDist := math.Abs(axis[0] - v)
	for i := 1; i < len(axis); i++ {
		if d := math.Abs(axis[i] - v); d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

// lookupTMN resolves the grid cell nearest to the two mnemonic means.
func lookupTMN(mnemoB, mnemoC float64) float64 {
	return tmnTable[nearestIndex(mnemoBAxis, mnemoB)][nearestIndex(mnemoCAxis, mnemoC)]
}
