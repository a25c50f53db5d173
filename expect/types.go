// SPDX-License-Identifier: MIT

package expect

import "golang.org/x/exp/constraints"

// Number is the set of domain element types: every built-in integer and
// floating-point type. Terms x·φ(x) are real-valued whatever T is, so
// accumulation and results are float64.
type Number interface {
	constraints.Integer | constraints.Float
}

// Summation selects how terms are accumulated.
type Summation int

const (
	// Exact returns the correctly rounded sum of all terms. The result does
	// not depend on evaluation order or on the worker count.
	Exact Summation = iota

	// Naive is a plain left-to-right float64 fold. With WithWorkers > 1 the
	// per-chunk sums are folded in chunk order, which may differ in the last
	// bits from a sequential fold.
	Naive
)

// String returns "exact", "naive" or "unknown".
func (s Summation) String() string {
	switch s {
	case Exact:
		return "exact"
	case Naive:
		return "naive"
	default:
		return "unknown"
	}
}

// Result is one entry of ExpectationAll: the value for the distribution at
// the same index, or the error that stopped it.
type Result struct {
	Value float64
	Err   error
}
