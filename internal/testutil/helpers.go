// Package testutil provides reusable test helper functions for the spline
// tests.
package testutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Default tolerances for the test scenarios.
const (
	// DefaultTolerance suits values computed with a handful of float64 ops.
	DefaultTolerance = 1e-12

	// ContinuityEps is the probe offset for knot-continuity checks.
	ContinuityEps = 1e-9

	// ContinuityTolerance bounds the drift of an O(1)-slope curve over a
	// ContinuityEps step.
	ContinuityTolerance = 1e-6
)

// EvalFunc adapts a spline's Evaluate or Derivative method for the helpers
// below.
type EvalFunc func(x float64) (float64, error)

// AssertInterpolatesKnots verifies that eval returns exactly ys[i] at every
// xs[i] (the interpolation property: exact knot hits take no rounding).
func AssertInterpolatesKnots(t *testing.T, eval EvalFunc, xs, ys []float64) bool {
	t.Helper()
	require.Equal(t, len(xs), len(ys), "knot slices must align")
	for i := range xs {
		got, err := eval(xs[i])
		if !assert.NoError(t, err, "eval at knot x=%v", xs[i]) {
			return false
		}
		if !assert.Equal(t, ys[i], got, "knot %d: eval(%v)", i, xs[i]) {
			return false
		}
	}
	return true
}

// AssertContinuousAt probes eval at x ± ContinuityEps and verifies both
// one-sided values stay within tol of want.
func AssertContinuousAt(t *testing.T, eval EvalFunc, x, want, tol float64) bool {
	t.Helper()
	left, err := eval(x - ContinuityEps)
	if !assert.NoError(t, err, "eval left of %v", x) {
		return false
	}
	right, err := eval(x + ContinuityEps)
	if !assert.NoError(t, err, "eval right of %v", x) {
		return false
	}
	return assert.InDelta(t, want, left, tol, "left limit at x=%v", x) &&
		assert.InDelta(t, want, right, tol, "right limit at x=%v", x)
}

// AssertNoNaNOrInf verifies that no elements in the slice are NaN or Inf.
func AssertNoNaNOrInf(t *testing.T, s []float64) bool {
	t.Helper()
	for i, v := range s {
		if math.IsNaN(v) {
			return assert.Fail(t, "found NaN", "s[%d] is NaN", i)
		}
		if math.IsInf(v, 0) {
			return assert.Fail(t, "found Inf", "s[%d] is Inf", i)
		}
	}
	return true
}
