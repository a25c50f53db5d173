// SPDX-License-Identifier: MIT

package dist

// Kind tells continuous laws from discrete ones. Consumers such as the
// expect package use it to pick Density or Mass without the caller having to
// choose.
type Kind uint8

const (
	// Continuous laws are described by a probability density function.
	Continuous Kind = iota + 1

	// Discrete laws are described by a probability mass function.
	Discrete
)

// String returns "continuous", "discrete" or "unknown".
func (k Kind) String() string {
	switch k {
	case Continuous:
		return "continuous"
	case Discrete:
		return "discrete"
	default:
		return "unknown"
	}
}

// Distribution is the capability set shared by every law in this package.
//
// The set of implementations is closed (Normal, Bernoulli, Binomial): the
// interface carries an unexported method, so switches over Kind and over the
// concrete types are exhaustive.
//
//   - Density(x) is the probability density for continuous laws. For discrete
//     laws it is an alias of Mass, kept for convenience only.
//   - Mass(x) is the probability mass for discrete laws. Continuous laws
//     return ErrNotApplicable.
type Distribution interface {
	Kind() Kind
	Mean() float64
	Variance() float64
	StdDev() float64
	Density(x float64) (float64, error)
	Mass(x float64) (float64, error)
	String() string

	sealed()
}

// DiscreteDistribution is a Distribution over a finite integer support.
//
// Prob is the exact query: integer outcomes are compared without any
// floating-point rounding. Mass(x) accepts a float64 only for interface
// uniformity and treats any x that is not exactly integral as out of support.
type DiscreteDistribution interface {
	Distribution

	// Support returns the inclusive outcome range [lo, hi].
	Support() (lo, hi int)

	// Prob returns P(X = k); 0 for k outside Support.
	Prob(k int) float64
}

// Compile-time conformance.
var (
	_ Distribution         = Normal{}
	_ DiscreteDistribution = Bernoulli{}
	_ DiscreteDistribution = Binomial{}
)
