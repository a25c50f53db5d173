// SPDX-License-Identifier: MIT

package dist_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/suite"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/lvstat/dist"
)

// massTol is the tolerance for Σ P(X=k) == 1.
const massTol = 1e-9

// BinomialSuite groups the Binomial checks.
type BinomialSuite struct {
	suite.Suite
}

// mustBinomial builds Binomial(n,p) or fails the test.
func (s *BinomialSuite) mustBinomial(n int, p float64) dist.Binomial {
	b, err := dist.NewBinomial(n, p)
	s.Require().NoError(err, "NewBinomial(%d,%v)", n, p)

	return b
}

// TestInvalidParameters rejects negative n and p outside [0,1].
func (s *BinomialSuite) TestInvalidParameters() {
	_, err := dist.NewBinomial(-1, 0.5)
	s.ErrorIs(err, dist.ErrInvalidParameter)

	for _, p := range []float64{-0.5, 1.5, math.NaN()} {
		_, err = dist.NewBinomial(10, p)
		s.ErrorIs(err, dist.ErrInvalidParameter, "p=%v", p)
	}
}

// TestMoments checks Mean = n·p and Variance = n·p·(1−p).
func (s *BinomialSuite) TestMoments() {
	for _, n := range []int{0, 1, 10, 30, 500} {
		for _, p := range []float64{0, 0.1, 0.5, 0.73, 1} {
			b := s.mustBinomial(n, p)
			s.Equal(float64(n)*p, b.Mean())
			s.Equal(float64(n)*p*(1-p), b.Variance())
			s.Equal(math.Sqrt(float64(n)*p*(1-p)), b.StdDev())
			s.Equal(n, b.Trials())
			s.Equal(p, b.P())
		}
	}
}

// TestMassSumsToOne is the main stress test of the coefficient kernel.
func (s *BinomialSuite) TestMassSumsToOne() {
	for _, n := range []int{0, 1, 2, 10, 13, 30, 60, 200, 1000, 2000} {
		for _, p := range []float64{0.01, 0.1, 0.5, 0.9} {
			b := s.mustBinomial(n, p)
			var sum float64
			for x := 0; x <= n; x++ {
				m, err := b.Mass(float64(x))
				s.Require().NoError(err)
				s.False(math.IsNaN(m) || math.IsInf(m, 0), "n=%d p=%v x=%d", n, p, x)
				sum += m
			}
			s.InDelta(1.0, sum, massTol, "n=%d p=%v", n, p)
		}
	}
}

// TestConcreteScenarios pins the n = 10, p = 0.1 values.
func (s *BinomialSuite) TestConcreteScenarios() {
	b := s.mustBinomial(10, 0.1)

	m0, err := b.Mass(0)
	s.Require().NoError(err)
	s.InDelta(0.34868, m0, 5e-6)
	s.InEpsilon(math.Pow(0.9, 10), m0, 1e-14)

	m10, err := b.Mass(10)
	s.Require().NoError(err)
	s.Greater(m10, 0.0, "P(X=10) must not truncate to 0")
	s.InEpsilon(1e-10, m10, 1e-12)
}

// TestNoOverflowAtThirty checks n = 30 against the factorial-overflow trap.
func (s *BinomialSuite) TestNoOverflowAtThirty() {
	b := s.mustBinomial(30, 0.5)
	probs, err := b.Probabilities()
	s.Require().NoError(err)
	s.Len(probs, 31)
	s.InDelta(1.0, floats.Sum(probs), massTol)
	s.InEpsilon(155117520*math.Pow(0.5, 30), probs[15], 1e-14)
	for k := 0; k <= 15; k++ {
		s.Equal(probs[k], probs[30-k], "p=0.5 mass must be symmetric at k=%d", k)
	}
}

// TestOutOfSupport verifies zero mass, no error, outside [0,n] and at
// non-integral points.
func (s *BinomialSuite) TestOutOfSupport() {
	b := s.mustBinomial(5, 0.4)
	for _, x := range []float64{-1, 6, 2.5, 0.3, math.NaN(), math.Inf(-1)} {
		m, err := b.Mass(x)
		s.NoError(err, "x=%v", x)
		s.Zero(m, "x=%v", x)
	}
	s.Zero(b.Prob(-3))
	s.Zero(b.Prob(6))

	lo, hi := b.Support()
	s.Equal(0, lo)
	s.Equal(5, hi)
}

// TestHugeTrials keeps the pointwise queries usable at n = math.MaxInt and
// refuses to materialize the support.
func (s *BinomialSuite) TestHugeTrials() {
	b := s.mustBinomial(math.MaxInt, 0.5)
	lo, hi := b.Support()
	s.Equal(0, lo)
	s.Equal(math.MaxInt, hi)
	s.Zero(b.Prob(-1))

	probs, err := b.Probabilities()
	s.ErrorIs(err, dist.ErrSupportTooLarge)
	s.Nil(probs)

	_, err = s.mustBinomial(dist.MaxSupportLen, 0.5).Probabilities()
	s.ErrorIs(err, dist.ErrSupportTooLarge)
}

// TestDegenerateProbabilities covers p = 0, p = 1 and n = 0.
func (s *BinomialSuite) TestDegenerateProbabilities() {
	zero := s.mustBinomial(7, 0)
	s.Equal(1.0, zero.Prob(0))
	s.Zero(zero.Prob(1))

	one := s.mustBinomial(7, 1)
	s.Equal(1.0, one.Prob(7))
	s.Zero(one.Prob(6))

	var empty dist.Binomial
	s.Equal(1.0, empty.Prob(0))
	s.Equal("Binomial(n=0, p=0)", empty.String())
}

// TestMatchesReference cross-checks against gonum's Binomial, including the
// log-space regime.
func (s *BinomialSuite) TestMatchesReference() {
	for _, tc := range []struct {
		n int
		p float64
	}{{10, 0.1}, {30, 0.5}, {75, 0.33}, {1500, 0.42}} {
		b := s.mustBinomial(tc.n, tc.p)
		ref := distuv.Binomial{N: float64(tc.n), P: tc.p}
		for k := 0; k <= tc.n; k++ {
			got := b.Prob(k)
			want := ref.Prob(float64(k))
			s.True(scalar.EqualWithinAbsOrRel(want, got, 1e-15, 1e-9),
				"n=%d p=%v k=%d: got %v want %v", tc.n, tc.p, k, got, want)
		}
	}
}

// TestDensityAliasesMass documents the discrete Density alias.
func (s *BinomialSuite) TestDensityAliasesMass() {
	b := s.mustBinomial(12, 0.35)
	for x := -1.0; x <= 13; x++ {
		m, err := b.Mass(x)
		s.Require().NoError(err)
		d, err := b.Density(x)
		s.Require().NoError(err)
		s.Equal(m, d, "x=%v", x)
	}
	s.Equal(dist.Discrete, b.Kind())
}

func TestBinomialSuite(t *testing.T) {
	suite.Run(t, new(BinomialSuite))
}
