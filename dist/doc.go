// SPDX-License-Identifier: MIT

// Package dist provides parametric probability distributions behind one
// uniform capability set: mean, variance, density and mass evaluation.
//
// 🚀 What is in the box?
//
//	The variant set is closed and small:
//	  • Normal    — continuous, parameters μ (mean) and σ (standard deviation)
//	  • Bernoulli — discrete, support {0,1}, success probability p
//	  • Binomial  — discrete, support {0,…,n}, n trials with probability p
//
// ✨ Key properties:
//   - Parameters are validated once, at construction (NewNormal, NewBernoulli,
//     NewBinomial). A violation returns ErrInvalidParameter and no usable law.
//   - Every instance is an immutable value; queries are pure functions of the
//     parameters and the query point, so instances are safe to share across
//     goroutines without locking.
//   - Continuous laws answer Density; Mass returns ErrNotApplicable.
//   - Discrete laws answer Mass; through DiscreteDistribution they also
//     expose Support and Prob for integer outcomes. Their Density
//     is a documented alias of Mass, a convenience rather than a claim that a
//     discrete law has a true density.
//   - Out-of-support points have probability 0. This is policy, not an error.
//   - Binomial coefficients are accumulated incrementally (Coefficient), so
//     moderate n never overflows the way n!/(k!(n−k)!) would.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvstat/dist"
//
//	b, err := dist.NewBinomial(10, 0.1)
//	if err != nil {
//	  // errors.Is(err, dist.ErrInvalidParameter)
//	}
//	p0 := b.Prob(0)      // 0.9^10 ≈ 0.34868
//	m, _ := b.Mass(10)   // ≈ 1e-10
//
//	n, _ := dist.NewNormal(0, 1)
//	_, err = n.Mass(0)   // errors.Is(err, dist.ErrNotApplicable)
//
// For expectations over a finite sample domain see package expect.
package dist
