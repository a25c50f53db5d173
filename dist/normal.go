// SPDX-License-Identifier: MIT

package dist

import (
	"fmt"
	"math"
)

// invSqrt2Pi is 1/√(2π), the peak of the standard normal density.
const invSqrt2Pi = 0.398942280401432677939946059934381868475858631164934657665925

// Normal is the Gaussian law N(μ, σ²).
//
// The zero value has σ = 0 and is not a valid law: Density on it returns
// ErrInvalidParameter rather than NaN or ±Inf. Build instances with NewNormal.
type Normal struct {
	mu    float64
	sigma float64
}

// NewNormal returns N(mean, stddev²).
//
// Errors:
//   - ErrInvalidParameter if stddev ≤ 0, or mean/stddev is NaN or ±Inf.
//   - ErrInvalidParameter if stddev is so small (subnormal) that the density
//     peak 1/(σ√(2π)) overflows float64.
//
// Complexity: O(1).
func NewNormal(mean, stddev float64) (Normal, error) {
	if err := validateFinite(mean); err != nil {
		return Normal{}, distErrorf(opNewNormal, err, "mean=%v", mean)
	}
	if err := validateStdDev(stddev); err != nil {
		return Normal{}, distErrorf(opNewNormal, err, "stddev=%v must be finite, > 0 and give a finite peak", stddev)
	}

	return Normal{mu: mean, sigma: stddev}, nil
}

// Kind reports Continuous.
func (Normal) Kind() Kind { return Continuous }

// Mean returns μ.
func (n Normal) Mean() float64 { return n.mu }

// Variance returns σ².
func (n Normal) Variance() float64 { return n.sigma * n.sigma }

// StdDev returns σ.
func (n Normal) StdDev() float64 { return n.sigma }

// Density returns (1/(σ√(2π)))·exp(−(x−μ)²/(2σ²)).
//
// Only the squared standardized deviation enters the exponent, so points
// mirrored around μ (whose deviations are exact negatives) get bit-identical
// densities.
func (n Normal) Density(x float64) (float64, error) {
	if n.sigma <= 0 {
		return 0, distErrorf(opDensity, ErrInvalidParameter, "zero-value Normal")
	}
	z := (x - n.mu) / n.sigma

	return invSqrt2Pi / n.sigma * math.Exp(-0.5*z*z), nil
}

// Mass always fails: a continuous law has no probability mass function.
func (n Normal) Mass(float64) (float64, error) {
	return 0, distErrorf(opMass, ErrNotApplicable, "%s is continuous", n)
}

// String renders the parameters, e.g. "Normal(μ=0, σ=1)".
func (n Normal) String() string {
	return fmt.Sprintf("Normal(μ=%g, σ=%g)", n.mu, n.sigma)
}

func (Normal) sealed() {}
