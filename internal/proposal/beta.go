package proposal

import (
	xrand "golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Beta returns a Beta(alpha, beta) proposal on [0,1] backed by gonum's
// sampler, seeded deterministically. Beta(1, 2) has density 2(1-x), the
// same shape as LinearRamp.
func Beta(alpha, beta float64, seed uint64) Proposal {
	d := distuv.Beta{Alpha: alpha, Beta: beta, Src: xrand.NewSource(seed)}
	return FromSampler(d.Prob, d)
}
