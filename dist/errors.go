// SPDX-License-Identifier: MIT
// Package: lvstat/dist
//
// errors.go — sentinel errors for the dist package.
//
// Error policy:
//   • Only package-level sentinels are exposed; callers branch with errors.Is.
//   • Every message is prefixed with "dist: ..." for easy grepping.
//   • Call sites attach context with distErrorf(op, ...) which keeps %w.
//   • Out-of-support evaluation is NOT an error: it returns probability 0.

package dist

import (
	"errors"
	"fmt"
)

// ErrInvalidParameter indicates that a constructor received a parameter
// outside its domain (σ ≤ 0 or non-finite, μ non-finite, p ∉ [0,1], n < 0).
// The returned instance is the zero value and must not be used.
// Usage: if errors.Is(err, ErrInvalidParameter) { /* reject input */ }.
var ErrInvalidParameter = errors.New("dist: invalid parameter")

// ErrNotApplicable indicates a query the distribution kind cannot answer,
// e.g. Mass on a continuous law. It is recoverable: code iterating over mixed
// kinds can detect it and skip or report the offending law.
var ErrNotApplicable = errors.New("dist: operation not applicable")

// ErrSupportTooLarge indicates a request to materialize a support with more
// than MaxSupportLen outcomes, e.g. Probabilities on Binomial(math.MaxInt, p).
var ErrSupportTooLarge = errors.New("dist: support too large to materialize")

// Operation names used as error context.
const (
	opNewNormal    = "NewNormal"
	opNewBernoulli = "NewBernoulli"
	opNewBinomial  = "NewBinomial"
	opDensity      = "Density"
	opMass         = "Mass"
	opProbs        = "Probabilities"
)

// distErrorf prefixes err with the operation name and a formatted detail
// while preserving the sentinel for errors.Is.
func distErrorf(op string, err error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", op, fmt.Sprintf(format, args...), err)
}
