// Package proposal builds the density/sampler pairs consumed by importance
// sampling. A proposal is supplied to the sampler as two functions that the
// caller promises agree with each other: a probability density and a draw
// function producing variates distributed according to it.
package proposal

import (
	"math"
	"math/rand"
)

// Sampler draws from a univariate distribution. Any distribution from
// gonum.org/v1/gonum/stat/distuv satisfies it.
type Sampler interface {
	Rand() float64
}

// Proposal pairs a probability density with a function drawing samples
// distributed according to it. Nothing checks that the two agree; a
// mismatched pair biases the estimate silently.
type Proposal struct {
	PDF  func(x float64) float64
	Rand func() float64
}

// InverseCDF builds a Proposal whose draws apply invCDF to uniform variates
// from rng. The engine handle is explicit: the caller decides whether it is
// shared with other samplers, and nothing here retains a second reference.
func InverseCDF(pdf, invCDF func(float64) float64, rng *rand.Rand) Proposal {
	return Proposal{
		PDF:  pdf,
		Rand: func() float64 { return invCDF(rng.Float64()) },
	}
}

// LinearRamp is the triangular proposal with density 2(1-x) on [0,1),
// concentrating draws near zero. Its inverse CDF is 1 - sqrt(1-u).
func LinearRamp(rng *rand.Rand) Proposal {
	return InverseCDF(
		func(x float64) float64 { return 2 * (1 - x) },
		func(u float64) float64 { return 1 - math.Sqrt(1-u) },
		rng,
	)
}

// FromSampler adapts a distuv-style distribution into a Proposal. The pdf
// is supplied separately so that distributions exposing only a sampler can
// still serve as proposals.
func FromSampler(pdf func(float64) float64, s Sampler) Proposal {
	return Proposal{PDF: pdf, Rand: s.Rand}
}
