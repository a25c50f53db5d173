// SPDX-License-Identifier: MIT

// Package expect approximates expectations of dist laws by folding their
// density or mass over a caller-supplied finite sample domain.
//
// 🚀 What does it compute?
//
//	Expectation(d, domain) = Σ x·φ(x) over every x in domain,
//	where φ is d.Density for continuous laws and d.Mass for discrete ones.
//	The choice is made from d.Kind(), so callers cannot hit the
//	ErrNotApplicable branch of a continuous law by accident.
//
//	This is a finite-sum APPROXIMATION of the true expectation (an integral
//	for continuous laws, a possibly infinite sum for discrete ones). Its
//	accuracy depends entirely on how well the domain covers the law's
//	effective support; Coverage reports Σ φ(x) so callers can judge that.
//
// ✨ Key features:
//   - Generic over the domain element type: any integer or float type
//     (Number). Integer domains give exact support membership for discrete
//     laws.
//   - Empty domain → 0, not an error.
//   - Exact summation by default: the result is the correctly rounded sum
//     of the terms, independent of evaluation order, so terms that cancel
//     exactly (a symmetric domain around a Normal mean) give exactly 0.
//   - Optional map-reduce (WithWorkers) on a bounded errgroup pool with
//     context cancellation. Under Naive summation the parallel result may
//     differ in the last bits from a sequential left-to-right fold, since
//     floating addition is not associative.
//   - ExpectationAll isolates failures: one law's error never corrupts the
//     others' results.
//
// ⚙️ Usage:
//
//	n, _ := dist.NewNormal(0, 1)
//	e, err := expect.Expectation(n, expect.IntRange(-10, 10)) // e == 0
//
//	b, _ := dist.NewBinomial(30, 0.5)
//	e, err = expect.OverSupport(b)                             // ≈ 15
//
//	e, err = expect.Expectation(n, expect.Linspace(-8, 8, 1<<16),
//	  expect.WithWorkers(4), expect.WithChunkSize(4096))
package expect
