// Package lvstat is a small, pure-Go toolkit for parametric probability
// distributions and finite-domain expectations.
//
// 🚀 What is lvstat?
//
//	A dependency-light library that brings together:
//		• Distributions: Normal (continuous), Bernoulli and Binomial (discrete)
//		• Uniform capability set: Mean, Variance, StdDev, Density, Mass
//		• Overflow-safe binomial coefficients (incremental and log-space)
//		• Expectation: Σ x·φ(x) over any integer or float sample domain
//
// ✨ Why choose lvstat?
//
//   - Validated parameters – invalid laws are rejected at construction
//   - Immutable values – share instances across goroutines freely
//   - Exact summation – symmetric domains cancel to exactly 0
//   - Optional map-reduce – bounded worker pool, context-aware
//
// Everything is organized under two subpackages:
//
//	dist/   — Distribution, Normal, Bernoulli, Binomial, Coefficient
//	expect/ — Expectation, ExpectationFunc, Coverage, ExpectationAll, OverSupport
//
// A runnable tour lives in examples/.
//
//	go get github.com/katalvlaran/lvstat
package lvstat
