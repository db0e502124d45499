// Package testutil provides shared numeric test helpers.
//
// This package centralises the tolerance and finiteness checks that Monte
// Carlo tests repeat, so each test states its statistical margin once.
package testutil

import (
	"math"
	"testing"
)

// AssertInDelta fails the test unless got is within delta of want.
func AssertInDelta(t testing.TB, got, want, delta float64) {
	t.Helper()
	if math.IsNaN(got) || math.Abs(got-want) > delta {
		t.Errorf("value = %v, want %v ± %v", got, want, delta)
	}
}

// AssertFinite fails the test if v is NaN or infinite.
func AssertFinite(t testing.TB, v float64) {
	t.Helper()
	if math.IsNaN(v) || math.IsInf(v, 0) {
		t.Errorf("value = %v, want finite", v)
	}
}

// AssertNotFinite fails the test unless v is NaN or infinite.
func AssertNotFinite(t testing.TB, v float64) {
	t.Helper()
	if !math.IsNaN(v) && !math.IsInf(v, 0) {
		t.Errorf("value = %v, want NaN or ±Inf", v)
	}
}
