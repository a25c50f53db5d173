// SPDX-License-Identifier: MIT
// Package: lvstat/expect
//
// options.go — functional options for expectation folds.
//
// Contract:
//   • Options are functional (type Option func(*Options)).
//   • Invalid values never panic: the violation is recorded and surfaces as
//     ErrOptionViolation when the fold runs.
//   • Zero options ⇒ sequential, exact, context.Background().

package expect

import (
	"context"
	"fmt"
)

// Defaults.
const (
	// DefaultWorkers of 1 keeps the fold sequential.
	DefaultWorkers = 1

	// DefaultChunkSize is the number of domain points per parallel task.
	DefaultChunkSize = 1024

	// DefaultSummation is Exact.
	DefaultSummation = Exact
)

// Option configures a fold.
type Option func(*Options)

// Options holds the resolved configuration of a fold.
type Options struct {
	// Ctx bounds the fold; it is checked before every chunk, sequential or
	// parallel.
	Ctx context.Context

	// Workers is the maximum number of concurrently evaluated chunks.
	Workers int

	// ChunkSize is the number of domain points per chunk.
	ChunkSize int

	// Summation selects Exact or Naive accumulation.
	Summation Summation

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns sequential exact summation under
// context.Background().
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		Workers:   DefaultWorkers,
		ChunkSize: DefaultChunkSize,
		Summation: DefaultSummation,
	}
}

// WithContext sets the context used for cancellation. nil is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithWorkers sets the number of concurrent chunk evaluations.
//
//	n == 1: sequential fold (default)
//	n > 1:  map-reduce over chunks
//	n < 1:  invalid → ErrOptionViolation
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.fail(fmt.Errorf("%w: workers must be >= 1 (%d)", ErrOptionViolation, n))
			return
		}
		o.Workers = n
	}
}

// WithChunkSize sets the number of domain points per chunk; size < 1 is an
// ErrOptionViolation.
func WithChunkSize(size int) Option {
	return func(o *Options) {
		if size < 1 {
			o.fail(fmt.Errorf("%w: chunk size must be >= 1 (%d)", ErrOptionViolation, size))
			return
		}
		o.ChunkSize = size
	}
}

// WithSummation selects the accumulation policy; unknown values are an
// ErrOptionViolation.
func WithSummation(s Summation) Option {
	return func(o *Options) {
		if s != Exact && s != Naive {
			o.fail(fmt.Errorf("%w: unknown summation %d", ErrOptionViolation, int(s)))
			return
		}
		o.Summation = s
	}
}

// fail records err unless an earlier option already failed.
func (o *Options) fail(err error) {
	if o.err == nil {
		o.err = err
	}
}

// gatherOptions applies opts over the defaults and returns the first
// recorded violation.
func gatherOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o, o.err
}
