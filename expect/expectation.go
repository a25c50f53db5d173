// SPDX-License-Identifier: MIT

package expect

import (
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/lvstat/dist"
)

// Expectation approximates E[X] as Σ x·φ(x) over domain, with φ = Density
// for continuous laws and φ = Mass for discrete laws.
//
// The sum is finite, so the result is only as good as the domain's coverage
// of the law's effective support (see Coverage). An empty domain yields 0.
// The domain is read, never modified.
//
// Errors:
//   - ErrNilDistribution, ErrUnknownKind, ErrOptionViolation.
//   - ErrNonFinitePoint for NaN/±Inf domain points.
//   - Wrapped dist errors (e.g. dist.ErrInvalidParameter from Normal{}).
//   - Wrapped context errors.
//
// Complexity: O(len(domain)) evaluations; O(len(domain)/ChunkSize) tasks
// when WithWorkers > 1.
func Expectation[T Number](d dist.Distribution, domain []T, opts ...Option) (float64, error) {
	return fold(opExpectation, d, domain, identity[T], opts)
}

// ExpectationFunc approximates E[f(X)] as Σ f(x)·φ(x) over domain.
// ExpectationFunc(d, domain, func(x T) float64 { return float64(x*x) })
// is the raw second moment over the domain.
func ExpectationFunc[T Number](d dist.Distribution, domain []T, f func(T) float64, opts ...Option) (float64, error) {
	if f == nil {
		return 0, expectErrorf(opExpectationFunc, ErrNilFunc)
	}

	return fold(opExpectationFunc, d, domain, f, opts)
}

// Coverage returns Σ φ(x) over domain. For a discrete law it is the
// probability mass the domain captures (1 over the full support); for a
// continuous law multiplying by a uniform grid step approximates the
// captured probability.
func Coverage[T Number](d dist.Distribution, domain []T, opts ...Option) (float64, error) {
	return fold(opCoverage, d, domain, one[T], opts)
}

// ExpectationAll runs Expectation for every distribution in ds over the
// same domain. Each fold is independent: a failure is reported in that
// entry's Err and leaves every other entry untouched.
func ExpectationAll[T Number](ds []dist.Distribution, domain []T, opts ...Option) []Result {
	out := make([]Result, len(ds))
	for i, d := range ds {
		v, err := fold(opExpectationAll, d, domain, identity[T], opts)
		out[i] = Result{Value: v, Err: err}
	}

	return out
}

// OverSupport returns Σ k·P(X=k) over the whole finite support of d. Up to
// rounding it equals d.Mean().
//
// Errors:
//   - dist.ErrSupportTooLarge if the support has more than
//     dist.MaxSupportLen outcomes.
func OverSupport(d dist.DiscreteDistribution, opts ...Option) (float64, error) {
	if d == nil {
		return 0, expectErrorf(opOverSupport, ErrNilDistribution)
	}
	lo, hi := d.Support()
	if hi >= lo && uint(hi-lo) >= dist.MaxSupportLen {
		return 0, expectErrorf(opOverSupport,
			fmt.Errorf("%w: [%d, %d]", dist.ErrSupportTooLarge, lo, hi))
	}

	return fold(opOverSupport, d, IntRange(lo, hi), identity[int], opts)
}

func identity[T Number](x T) float64 { return float64(x) }

func one[T Number](T) float64 { return 1 }

// resolve picks the function that describes d: Density for continuous laws,
// Mass for discrete ones.
func resolve(d dist.Distribution) (func(float64) (float64, error), error) {
	if d == nil {
		return nil, ErrNilDistribution
	}
	switch d.Kind() {
	case dist.Continuous:
		return d.Density, nil
	case dist.Discrete:
		return d.Mass, nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownKind, d.Kind())
	}
}

// fold is the shared engine behind every public entry point.
// Implementation:
//   - Stage 1: resolve options and φ; fail fast on violations.
//   - Stage 2: empty domain → 0.
//   - Stage 3: sequential chunk walk, or errgroup map-reduce when
//     Workers > 1 and the domain spans more than one chunk.
func fold[T Number](op string, d dist.Distribution, domain []T, weight func(T) float64, opts []Option) (float64, error) {
	// Stage 1: validate.
	o, err := gatherOptions(opts)
	if err != nil {
		return 0, expectErrorf(op, err)
	}
	phi, err := resolve(d)
	if err != nil {
		return 0, expectErrorf(op, err)
	}

	// Stage 2: additive identity.
	if len(domain) == 0 {
		return 0, nil
	}

	term := func(x T) (float64, error) {
		v := float64(x)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, fmt.Errorf("%w: %v", ErrNonFinitePoint, v)
		}
		p, err := phi(v)
		if err != nil {
			return 0, err
		}

		return weight(x) * p, nil
	}

	// Stage 3: evaluate.
	var acc *accumulator
	if o.Workers > 1 && len(domain) > o.ChunkSize {
		acc, err = foldParallel(o, domain, term)
	} else {
		acc, err = foldSequential(o, domain, term)
	}
	if err != nil {
		return 0, expectErrorf(op, err)
	}

	return acc.result(), nil
}

// foldSequential walks domain left to right, checking the context once per
// chunk.
func foldSequential[T Number](o Options, domain []T, term func(T) (float64, error)) (*accumulator, error) {
	acc := newAccumulator(o.Summation)
	for lo := 0; lo < len(domain); lo += o.ChunkSize {
		if err := o.Ctx.Err(); err != nil {
			return nil, err
		}
		if err := foldChunk(acc, domain[lo:min(lo+o.ChunkSize, len(domain))], term); err != nil {
			return nil, err
		}
	}

	return acc, nil
}

// foldParallel evaluates chunks on at most o.Workers goroutines and merges
// the chunk accumulators in chunk order. Exact partials merge exactly;
// Naive chunk totals are folded with floats.Sum.
func foldParallel[T Number](o Options, domain []T, term func(T) (float64, error)) (*accumulator, error) {
	chunks := (len(domain) + o.ChunkSize - 1) / o.ChunkSize
	parts := make([]*accumulator, chunks)

	g, ctx := errgroup.WithContext(o.Ctx)
	g.SetLimit(o.Workers)
	for c := 0; c < chunks; c++ {
		if ctx.Err() != nil {
			break
		}
		lo := c * o.ChunkSize
		hi := min(lo+o.ChunkSize, len(domain))
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			acc := newAccumulator(o.Summation)
			if err := foldChunk(acc, domain[lo:hi], term); err != nil {
				return err
			}
			parts[c] = acc

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	// A parent cancelled between chunks stops spawning without a task error.
	if err := o.Ctx.Err(); err != nil {
		return nil, err
	}

	total := newAccumulator(o.Summation)
	if o.Summation == Naive {
		sums := make([]float64, chunks)
		for c, p := range parts {
			sums[c] = p.result()
		}
		total.add(floats.Sum(sums))

		return total, nil
	}
	for _, p := range parts {
		total.merge(p)
	}

	return total, nil
}

// foldChunk adds every term of chunk to acc.
func foldChunk[T Number](acc *accumulator, chunk []T, term func(T) (float64, error)) error {
	for _, x := range chunk {
		v, err := term(x)
		if err != nil {
			return err
		}
		acc.add(v)
	}

	return nil
}
