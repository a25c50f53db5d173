// SPDX-License-Identifier: MIT

package dist

import (
	"fmt"
	"math"
)

// MaxSupportLen bounds the number of outcomes Probabilities will allocate.
const MaxSupportLen = 1 << 26

// minNormal is the smallest positive normal float64. Power terms below it
// have lost precision and send Prob down the log-space path.
const minNormal = 0x1p-1022

// Binomial is the number of successes in n independent Bernoulli(p) trials.
// The zero value (n = 0, p = 0) is the valid point mass at 0.
type Binomial struct {
	n int
	p float64
}

// NewBinomial returns Binomial(trials, p).
//
// Errors:
//   - ErrInvalidParameter if trials < 0, p ∉ [0,1] or p is NaN.
func NewBinomial(trials int, p float64) (Binomial, error) {
	if err := validateTrials(trials); err != nil {
		return Binomial{}, distErrorf(opNewBinomial, err, "trials=%d must be >= 0", trials)
	}
	if err := validateProbability(p); err != nil {
		return Binomial{}, distErrorf(opNewBinomial, err, "p=%v must be in [0,1]", p)
	}

	return Binomial{n: trials, p: p}, nil
}

// Kind reports Discrete.
func (Binomial) Kind() Kind { return Discrete }

// Trials returns n.
func (b Binomial) Trials() int { return b.n }

// P returns the per-trial success probability.
func (b Binomial) P() float64 { return b.p }

// Mean returns n·p.
func (b Binomial) Mean() float64 { return float64(b.n) * b.p }

// Variance returns n·p·(1−p).
func (b Binomial) Variance() float64 { return float64(b.n) * b.p * (1 - b.p) }

// StdDev returns √(n·p·(1−p)).
func (b Binomial) StdDev() float64 { return math.Sqrt(b.Variance()) }

// Support returns (0, n).
func (b Binomial) Support() (lo, hi int) { return 0, b.n }

// Prob returns C(n,k)·p^k·(1−p)^(n−k), and 0 for k outside [0,n].
//
// Implementation:
//   - Stage 1: out-of-support and the point masses p ∈ {0,1}.
//   - Stage 2: direct product with the incremental Coefficient.
//   - Stage 3: if the coefficient overflowed or a power term fell below the
//     normal range, evaluate exp(ln C(n,k) + k·ln p + (n−k)·ln(1−p)).
//
// Complexity: O(min(k, n−k)).
func (b Binomial) Prob(k int) float64 {
	// Stage 1: support and degenerate laws.
	if k < 0 || k > b.n {
		return 0
	}
	switch b.p {
	case 0:
		if k == 0 {
			return 1
		}
		return 0
	case 1:
		if k == b.n {
			return 1
		}
		return 0
	}

	// Stage 2: direct evaluation.
	c := Coefficient(b.n, k)
	pk := math.Pow(b.p, float64(k))
	qk := math.Pow(1-b.p, float64(b.n-k))
	if !math.IsInf(c, 1) && pk >= minNormal && qk >= minNormal {
		return c * pk * qk
	}

	// Stage 3: log space.
	lp := LogCoefficient(b.n, k) + float64(k)*math.Log(b.p) + float64(b.n-k)*math.Log1p(-b.p)

	return math.Exp(lp)
}

// Mass is Prob for exactly integral x; any other x is out of support and
// has probability 0.
func (b Binomial) Mass(x float64) (float64, error) {
	k, ok := outcome(x)
	if !ok {
		return 0, nil
	}

	return b.Prob(k), nil
}

// Density aliases Mass. A discrete law has no true density; the alias only
// lets callers use one method name across kinds.
func (b Binomial) Density(x float64) (float64, error) { return b.Mass(x) }

// Probabilities returns the whole mass vector P(X=0), …, P(X=n).
//
// Errors:
//   - ErrSupportTooLarge if n+1 > MaxSupportLen.
//
// Complexity: O(n²) worst case, O(n) space.
func (b Binomial) Probabilities() ([]float64, error) {
	if b.n >= MaxSupportLen {
		return nil, distErrorf(opProbs, ErrSupportTooLarge, "n=%d", b.n)
	}
	out := make([]float64, b.n+1)
	for k := range out {
		out[k] = b.Prob(k)
	}

	return out, nil
}

// String renders the parameters, e.g. "Binomial(n=10, p=0.1)".
func (b Binomial) String() string {
	return fmt.Sprintf("Binomial(n=%d, p=%g)", b.n, b.p)
}

func (Binomial) sealed() {}
