package spline_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	spline "github.com/tphakala/go-spline"
	"github.com/tphakala/go-spline/internal/testutil"
)

// f64s converts plain floats to the Float64 scalar type.
func f64s(vals ...float64) []spline.Float64 {
	out := make([]spline.Float64, len(vals))
	for i, v := range vals {
		out[i] = spline.Float64(v)
	}
	return out
}

// dec parses a decimal literal, failing the test on bad input.
func dec(t *testing.T, s string) spline.Decimal {
	t.Helper()
	d, err := spline.DecimalFromString(s)
	require.NoError(t, err)
	return d
}

// float64Evaluator is the query surface shared by the Float64 spline
// variants.
type float64Evaluator interface {
	Evaluate(x spline.Float64) (spline.Float64, error)
}

// evalFn adapts Evaluate for the testutil helpers.
func evalFn(s float64Evaluator) testutil.EvalFunc {
	return func(x float64) (float64, error) {
		y, err := s.Evaluate(spline.Float64(x))
		return float64(y), err
	}
}
