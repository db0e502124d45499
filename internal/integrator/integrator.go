// Package integrator estimates definite integrals over the unit interval
// using Monte Carlo sampling strategies.
package integrator

import (
	crand "crypto/rand"
	"encoding/binary"
	"time"
)

// Func is a real-valued integrand.
type Func func(x float64) float64

// Integrator produces an unbiased Monte Carlo estimate of the integral of h
// from n random draws. Each call performs exactly n independent draws; no
// state beyond the random engine's position survives between calls.
// Non-finite values produced by h, or by an ill-matched proposal density,
// flow through to the result unmodified.
type Integrator interface {
	Integrate(h Func, n int) float64
}

// EntropySeed returns a seed drawn from the operating system's entropy
// source, falling back to the wall clock if that source is unavailable.
func EntropySeed() int64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return time.Now().UnixNano()
	}
	return int64(binary.LittleEndian.Uint64(b[:]))
}
