// SPDX-License-Identifier: MIT
// Package: lvstat/dist
//
// coefficient.go — binomial coefficient kernels.
//
// Purpose:
//   - C(n,k) without factorials. n!, k! and (n−k)! overflow fixed-width
//     arithmetic long before C(n,k) itself does (int32 is already wrong at
//     n = 13), so both kernels walk the multiplicative recurrence
//       C(n,i+1) = C(n,i)·(n−i)/(i+1)
//     starting from C(n,0) = 1.
//
// Determinism & Precision:
//   - k is folded to min(k, n−k) first: fewer steps, smaller intermediates.
//   - Every intermediate C(n,i)·(n−i) equals C(n,i+1)·(i+1), an integer, so
//     Coefficient is exact while that product stays below 2⁵³.
//   - Past ~n = 1029 the value itself exceeds float64; Coefficient returns
//     +Inf and callers switch to LogCoefficient.

package dist

import "math"

// Coefficient returns the binomial coefficient C(n,k) as float64.
// It returns 0 when k < 0, k > n or n < 0, and +Inf once the value
// exceeds the float64 range.
//
// Complexity: O(min(k, n−k)) time, O(1) space.
func Coefficient(n, k int) float64 {
	if n < 0 || k < 0 || k > n {
		return 0
	}
	if k > n-k {
		k = n - k
	}

	c := 1.0
	for i := 0; i < k; i++ {
		c = c * float64(n-i) / float64(i+1)
		if math.IsInf(c, 1) {
			return c
		}
	}

	return c
}

// LogCoefficient returns ln C(n,k), or −Inf where C(n,k) = 0.
// It never overflows and is the fallback for large n.
//
// Complexity: O(min(k, n−k)) time, O(1) space.
func LogCoefficient(n, k int) float64 {
	if n < 0 || k < 0 || k > n {
		return math.Inf(-1)
	}
	if k > n-k {
		k = n - k
	}

	var s float64
	for i := 0; i < k; i++ {
		s += math.Log(float64(n-i) / float64(i+1))
	}

	return s
}
