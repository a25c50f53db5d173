// SPDX-License-Identifier: MIT
// Package: lvstat/dist
//
// validators.go — single source of truth for parameter checks.
// Each validator returns the bare sentinel; constructors wrap it with their
// operation name through distErrorf.

package dist

import "math"

// validateFinite rejects NaN and ±Inf.
func validateFinite(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return ErrInvalidParameter
	}

	return nil
}

// validateStdDev requires a finite, strictly positive σ whose density peak
// 1/(σ√(2π)) is itself finite. Subnormal σ below that bound would turn
// Density into Inf·0 = NaN away from μ.
func validateStdDev(sigma float64) error {
	if err := validateFinite(sigma); err != nil {
		return err
	}
	if sigma <= 0 || math.IsInf(invSqrt2Pi/sigma, 1) {
		return ErrInvalidParameter
	}

	return nil
}

// validateProbability requires p ∈ [0,1]. NaN fails both comparisons and is
// rejected by the negated form.
func validateProbability(p float64) error {
	if !(p >= 0 && p <= 1) {
		return ErrInvalidParameter
	}

	return nil
}

// validateTrials requires n ≥ 0.
// The upper end is not bounded here: Prob and Mass work for any n, only
// Probabilities materializes the support and checks MaxSupportLen.
func validateTrials(n int) error {
	if n < 0 {
		return ErrInvalidParameter
	}

	return nil
}

// outcome maps x to an integer outcome when x is finite and exactly integral.
// Values such as 0.3, NaN or ±Inf report ok=false (out of support).
func outcome(x float64) (k int, ok bool) {
	if math.IsNaN(x) || math.IsInf(x, 0) || x != math.Trunc(x) {
		return 0, false
	}
	if x < math.MinInt || x >= -float64(math.MinInt) {
		return 0, false
	}

	return int(x), true
}
