// SPDX-License-Identifier: MIT

package expect

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// IntRange returns the inclusive integer domain lo, lo+1, …, hi.
// It is empty when hi < lo, and also when hi−lo+1 does not fit in an int.
// Integer domains give discrete laws exact support membership.
func IntRange(lo, hi int) []int {
	if hi < lo || uint(hi-lo) >= math.MaxInt {
		return []int{}
	}
	out := make([]int, hi-lo+1)
	for i := range out {
		out[i] = lo + i
	}

	return out
}

// Linspace returns n evenly spaced points from lo to hi inclusive.
// n ≤ 0 gives an empty domain and n == 1 gives [lo].
func Linspace(lo, hi float64, n int) []float64 {
	switch {
	case n <= 0:
		return []float64{}
	case n == 1:
		return []float64{lo}
	}

	return floats.Span(make([]float64, n), lo, hi)
}
