package methane

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestNearestIndex_Clamps keeps out-of-range queries on the boundary
// cells instead of extrapolating.
func TestNearestIndex_Clamps(t *testing.T) {
	assert.Equal(t, 0, nearestIndex(mnemoBAxis, 0.2))
	assert.Equal(t, 0, nearestIndex(mnemoBAxis, -3.0))
	assert.Equal(t, 3, nearestIndex(mnemoBAxis, 9.0))
	assert.Equal(t, 0, nearestIndex(mnemoCAxis, -1.0))
	assert.Equal(t, 10, nearestIndex(mnemoCAxis, 2.0))
}

// TestNearestIndex_TieKeepsLower pins the asymmetric tie-break: an
// exactly equidistant query resolves to the lower grid value.
func TestNearestIndex_TieKeepsLower(t *testing.T) {
	// 2.5 sits exactly between 2.0 and 3.0 in binary as well.
	assert.Equal(t, 1, nearestIndex(mnemoBAxis, 2.5))
	assert.Equal(t, 2, nearestIndex(mnemoBAxis, 3.5))
}

// TestNearestIndex_NearMiss resolves 0.15 to the 0.1 column: the
// float64 literal sits a hair below the decimal midpoint.
func TestNearestIndex_NearMiss(t *testing.T) {
	assert.Equal(t, 1, nearestIndex(mnemoCAxis, 0.15))
	assert.Equal(t, 3, nearestIndex(mnemoCAxis, 0.2857))
	assert.Equal(t, 96.4277, lookupTMN(2.0, 0.15), "the resolved column carries the 0.1 value")
}

// TestLookupTMN_Cells pins representative grid reads, including the
// row shift between MnemoB levels and both boundary rows.
func TestLookupTMN_Cells(t *testing.T) {
	cases := []struct {
		b, c, want float64
	}{
		{1.0, 0.0, 100.0},
		{1.0, 1.0, 100.0},
		{2.0, 0.1, 96.4277},
		{2.0, 0.2, 92.8554},
		{2.0, 1.0, 64.277},
		{3.0, 0.1, 100.0},
		{3.0, 0.3, 92.8554},
		{4.0, 0.2, 100.0},
		{4.0, 0.3, 96.4277},
		{4.0, 1.0, 71.4216},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, lookupTMN(tc.b, tc.c), "lookupTMN(%v, %v)", tc.b, tc.c)
	}
}

// TestLookupTMN_OutOfRange clamps both axes before the neighbor scan.
func TestLookupTMN_OutOfRange(t *testing.T) {
	assert.Equal(t, 100.0, lookupTMN(0.5, 0.9), "B clamps onto the all-100 row")
	assert.Equal(t, 71.4216, lookupTMN(12.0, 7.0), "both axes clamp high")
}
