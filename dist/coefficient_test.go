// SPDX-License-Identifier: MIT

package dist_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/stat/combin"

	"github.com/katalvlaran/lvstat/dist"
)

// TestCoefficient_ExactAgainstCombin compares every C(n,k), n ≤ 50, against
// gonum's integer implementation. In this range every intermediate product
// stays below 2⁵³, so equality is exact.
func TestCoefficient_ExactAgainstCombin(t *testing.T) {
	for n := 0; n <= 50; n++ {
		for k := 0; k <= n; k++ {
			want := float64(combin.Binomial(n, k))
			assert.Equal(t, want, dist.Coefficient(n, k), "C(%d,%d)", n, k)
		}
	}
}

// TestCoefficient_BeyondFactorialOverflow checks values whose factorials
// overflow int64 (n > 20) while the coefficient itself fits.
func TestCoefficient_BeyondFactorialOverflow(t *testing.T) {
	assert.Equal(t, 155117520.0, dist.Coefficient(30, 15))
	assert.Equal(t, 184756.0, dist.Coefficient(20, 10))
	assert.InEpsilon(t, 1.1826458156486142e17, dist.Coefficient(60, 30), 1e-14)
	assert.InEpsilon(t, 1.0089134454556415e29, dist.Coefficient(100, 50), 1e-13)
}

// TestCoefficient_Symmetry checks C(n,k) == C(n,n−k) bit for bit.
func TestCoefficient_Symmetry(t *testing.T) {
	for _, n := range []int{7, 64, 333} {
		for k := 0; k <= n; k++ {
			assert.Equal(t, dist.Coefficient(n, k), dist.Coefficient(n, n-k), "n=%d k=%d", n, k)
		}
	}
}

// TestCoefficient_Degenerate covers invalid arguments and float64 overflow.
func TestCoefficient_Degenerate(t *testing.T) {
	assert.Zero(t, dist.Coefficient(5, -1))
	assert.Zero(t, dist.Coefficient(5, 6))
	assert.Zero(t, dist.Coefficient(-1, 0))
	assert.Equal(t, 1.0, dist.Coefficient(0, 0))
	assert.Equal(t, 1.0, dist.Coefficient(5000, 0))
	assert.True(t, math.IsInf(dist.Coefficient(5000, 2500), 1), "C(5000,2500) exceeds float64")

	assert.True(t, math.IsInf(dist.LogCoefficient(5, 6), -1))
	assert.Zero(t, dist.LogCoefficient(9, 0))
}

// TestLogCoefficient_MatchesLogOfCoefficient compares both kernels where
// both are finite, and checks the log kernel against lgamma beyond that.
func TestLogCoefficient_MatchesLogOfCoefficient(t *testing.T) {
	for _, n := range []int{1, 10, 30, 100, 1000} {
		for k := 0; k <= n; k += 1 + n/17 {
			want := math.Log(dist.Coefficient(n, k))
			assert.InDelta(t, want, dist.LogCoefficient(n, k), 1e-9*math.Max(1, want), "n=%d k=%d", n, k)
		}
	}

	lg := func(x float64) float64 { v, _ := math.Lgamma(x); return v }
	n, k := 5000, 2500
	want := lg(float64(n+1)) - lg(float64(k+1)) - lg(float64(n-k+1))
	assert.InEpsilon(t, want, dist.LogCoefficient(n, k), 1e-10)
}
