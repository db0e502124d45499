package integrator

import "math/rand"

// Crude is the plain Monte Carlo estimator: the average of h over uniform
// draws on [0,1). The sampling density is 1 over a unit-width interval, so
// the mean needs no reweighting or scaling. Error shrinks as O(1/sqrt(n)).
type Crude struct {
	rng *rand.Rand
}

// NewCrude returns a Crude integrator owning a private, entropy-seeded
// random engine.
func NewCrude() *Crude {
	return NewCrudeSeeded(EntropySeed())
}

// NewCrudeSeeded returns a Crude integrator with a deterministic engine.
// Two integrators built from the same seed produce identical estimates.
func NewCrudeSeeded(seed int64) *Crude {
	return &Crude{rng: rand.New(rand.NewSource(seed))}
}

// Integrate averages h over n uniform draws on [0,1).
func (c *Crude) Integrate(h Func, n int) float64 {
	sum := 0.0
	for i := 0; i < n; i++ {
		sum += h(c.rng.Float64())
	}
	return sum / float64(n)
}
