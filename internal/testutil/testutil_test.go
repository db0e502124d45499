package testutil

import (
	"math"
	"testing"
)

// recorder captures assertion failures without failing the enclosing test.
type recorder struct {
	testing.TB
	failed bool
}

func (r *recorder) Helper() {}

func (r *recorder) Errorf(format string, args ...interface{}) {
	r.failed = true
}

// check runs fn against a fresh recorder and reports whether it flagged a
// failure.
func check(fn func(t testing.TB)) bool {
	r := &recorder{}
	fn(r)
	return r.failed
}

func TestAssertInDelta(t *testing.T) {
	t.Parallel()

	AssertInDelta(t, 3.14, math.Pi, 0.01)

	if !check(func(tb testing.TB) { AssertInDelta(tb, 3.0, math.Pi, 0.01) }) {
		t.Error("value outside tolerance should fail")
	}
	if !check(func(tb testing.TB) { AssertInDelta(tb, math.NaN(), 0, 1) }) {
		t.Error("NaN should fail regardless of tolerance")
	}
}

func TestAssertFinite(t *testing.T) {
	t.Parallel()

	AssertFinite(t, 1.5)
	AssertFinite(t, 0)

	if !check(func(tb testing.TB) { AssertFinite(tb, math.Inf(1)) }) {
		t.Error("+Inf should fail")
	}
	if !check(func(tb testing.TB) { AssertFinite(tb, math.NaN()) }) {
		t.Error("NaN should fail")
	}
}

func TestAssertNotFinite(t *testing.T) {
	t.Parallel()

	AssertNotFinite(t, math.NaN())
	AssertNotFinite(t, math.Inf(-1))

	if !check(func(tb testing.TB) { AssertNotFinite(tb, 0.0) }) {
		t.Error("a finite value should fail")
	}
}
