// SPDX-License-Identifier: MIT
// Package: lvstat/expect
//
// sum.go — term accumulators.
//
// Exact mode keeps the running total as a list of non-overlapping partials
// (Shewchuk, "Adaptive Precision Floating-Point Arithmetic", 1997): the
// partials always add up to the exact real sum of every term seen so far,
// and result() rounds that sum once, half-to-even. Two consequences:
//   - order independence: chunks merged in any order give the same bits;
//   - exact cancellation: terms x·φ(x) and (−x)·φ(−x) leave no residue.
//
// Non-finite terms and overflow of the partials fall back to the naive sum,
// which already carries the right ±Inf/NaN.

package expect

import "math"

// accumulator sums float64 terms under a Summation policy.
type accumulator struct {
	policy   Summation
	naive    float64
	partials []float64
	special  bool // a term was NaN/±Inf or the partials overflowed
}

// newAccumulator returns an empty accumulator for policy.
func newAccumulator(policy Summation) *accumulator {
	return &accumulator{policy: policy}
}

// add folds x into the running total.
func (a *accumulator) add(x float64) {
	a.naive += x
	if a.policy != Exact || a.special {
		return
	}
	if math.IsNaN(x) || math.IsInf(x, 0) {
		a.special = true
		return
	}

	i := 0
	for _, y := range a.partials {
		if math.Abs(x) < math.Abs(y) {
			x, y = y, x
		}
		hi := x + y
		if math.IsInf(hi, 0) {
			a.special = true
			return
		}
		lo := y - (hi - x)
		if lo != 0 {
			a.partials[i] = lo
			i++
		}
		x = hi
	}
	a.partials = append(a.partials[:i], x)
}

// merge folds every term of b into a. Exact partials are merged exactly;
// naive totals are added.
func (a *accumulator) merge(b *accumulator) {
	if a.policy != Exact || b.special {
		a.naive += b.naive
		if b.special {
			a.special = true
		}
		return
	}
	naive := a.naive + b.naive
	for _, p := range b.partials {
		a.add(p)
	}
	a.naive = naive
}

// result returns the total: correctly rounded for Exact, the running fold
// for Naive, and the naive value whenever special values were seen.
func (a *accumulator) result() float64 {
	if a.policy != Exact || a.special {
		return a.naive
	}

	p := a.partials
	n := len(p)
	if n == 0 {
		return 0
	}

	// Sum from the top down until the remainder stops being exact.
	n--
	hi := p[n]
	var lo float64
	for n > 0 {
		x := hi
		n--
		y := p[n]
		hi = x + y
		lo = y - (hi - x)
		if lo != 0 {
			break
		}
	}

	// Round half to even: if lo sits exactly on a tie and the next partial
	// pushes past it, move hi one step in that direction.
	if n > 0 && ((lo < 0 && p[n-1] < 0) || (lo > 0 && p[n-1] > 0)) {
		y := lo * 2
		x := hi + y
		if y == x-hi {
			hi = x
		}
	}

	return hi
}
