// SPDX-License-Identifier: MIT
// Package: lvstat/expect
//
// errors.go — sentinel errors for the expect package.
//
// Error policy:
//   • Package-level sentinels only; branch with errors.Is.
//   • Errors from dist (e.g. ErrInvalidParameter from a zero-value Normal)
//     and from the caller's context are wrapped, never replaced, so
//     errors.Is(err, dist.ErrX) and errors.Is(err, context.Canceled) hold.

package expect

import (
	"errors"
	"fmt"
)

var (
	// ErrNilDistribution indicates a nil dist.Distribution argument.
	ErrNilDistribution = errors.New("expect: nil distribution")

	// ErrNonFinitePoint indicates a NaN or ±Inf value in the sample domain.
	ErrNonFinitePoint = errors.New("expect: non-finite domain point")

	// ErrUnknownKind indicates a distribution whose Kind is neither
	// Continuous nor Discrete.
	ErrUnknownKind = errors.New("expect: unknown distribution kind")

	// ErrNilFunc indicates a nil weight function passed to ExpectationFunc.
	ErrNilFunc = errors.New("expect: nil weight function")

	// ErrOptionViolation indicates an invalid Option value (e.g. workers < 1).
	ErrOptionViolation = errors.New("expect: invalid option supplied")
)

// Operation names used as error context.
const (
	opExpectation     = "Expectation"
	opExpectationFunc = "ExpectationFunc"
	opCoverage        = "Coverage"
	opExpectationAll  = "ExpectationAll"
	opOverSupport     = "OverSupport"
)

// expectErrorf prefixes err with the operation name, keeping %w.
func expectErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
