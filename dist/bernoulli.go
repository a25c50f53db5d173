// SPDX-License-Identifier: MIT

package dist

import (
	"fmt"
	"math"
)

// Bernoulli is the two-outcome law: X = 1 with probability p, X = 0 with
// probability 1−p. The zero value is the valid degenerate law with p = 0.
type Bernoulli struct {
	p float64
}

// NewBernoulli returns Bernoulli(p).
//
// Errors:
//   - ErrInvalidParameter if p ∉ [0,1] or p is NaN.
func NewBernoulli(p float64) (Bernoulli, error) {
	if err := validateProbability(p); err != nil {
		return Bernoulli{}, distErrorf(opNewBernoulli, err, "p=%v must be in [0,1]", p)
	}

	return Bernoulli{p: p}, nil
}

// Kind reports Discrete.
func (Bernoulli) Kind() Kind { return Discrete }

// Mean returns p.
func (b Bernoulli) Mean() float64 { return b.p }

// Variance returns p(1−p).
func (b Bernoulli) Variance() float64 { return b.p * (1 - b.p) }

// StdDev returns √(p(1−p)).
func (b Bernoulli) StdDev() float64 { return math.Sqrt(b.Variance()) }

// Support returns (0, 1).
func (Bernoulli) Support() (lo, hi int) { return 0, 1 }

// Prob returns 1−p for k = 0, p for k = 1 and 0 for any other k.
func (b Bernoulli) Prob(k int) float64 {
	switch k {
	case 0:
		return 1 - b.p
	case 1:
		return b.p
	default:
		return 0
	}
}

// Mass is Prob for exactly integral x; every other x (0.3, NaN, ±Inf) is
// outside the support and has probability 0.
func (b Bernoulli) Mass(x float64) (float64, error) {
	k, ok := outcome(x)
	if !ok {
		return 0, nil
	}

	return b.Prob(k), nil
}

// Density aliases Mass. A discrete law has no true density; the alias only
// lets callers use one method name across kinds.
func (b Bernoulli) Density(x float64) (float64, error) { return b.Mass(x) }

// String renders the parameter, e.g. "Bernoulli(p=0.5)".
func (b Bernoulli) String() string {
	return fmt.Sprintf("Bernoulli(p=%g)", b.p)
}

func (Bernoulli) sealed() {}
