// Package spline provides piecewise-cubic interpolation over sorted sample
// points, generic over the scalar type.
//
// Three spline variants are available:
//
//   - [Hermite]: cubic segments matching caller-supplied values and tangents
//     at each knot. Needs at least 2 points.
//   - [CatmullRom]: tangents derived from neighboring points with
//     spacing-ratio blending, one-sided at the boundary segments. Needs at
//     least 3 points.
//   - [NaturalCubic]: the C² cubic spline with zero curvature at both ends;
//     construction solves a tridiagonal system once via [Tridiagonal].
//     Needs at least 3 points.
//
// # Quick Start
//
// For float64 data use the convenience constructors:
//
//	s, err := spline.NewNaturalCubicFloat64(
//	    []float64{0.0, 0.5, 1.0},
//	    []float64{1.0, 0.5, 0.0},
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	y, err := s.Evaluate(0.75) // 0.25
//
// # Scalar Types
//
// The evaluators are generic over the [Value] contract: ordered field
// arithmetic plus construction from small integers. [Float64] and [Float32]
// wrap the builtins; [Decimal] provides exact decimal arithmetic via
// github.com/shopspring/decimal. Choosing the scalar type fixes the
// arithmetic at compile time — there is no runtime dispatch.
//
// # Evaluation Semantics
//
// Queries exactly on a knot return the stored y value. Queries outside the
// sampled range never extrapolate: they fail with [ErrOutOfLowerBound] or
// [ErrOutOfUpperBound]. [Hermite.Derivative], [CatmullRom.Derivative] and
// [NaturalCubic.Derivative] report the first derivative of the piece
// containing the query under the same bounds policy.
//
// All failures are returned as errors wrapping the package sentinels; the
// library never panics on invalid input.
//
// # Thread Safety
//
// Splines are immutable after construction: evaluation never mutates stored
// points, so a single instance may be queried from multiple goroutines
// without coordination. Constructors copy their input slices.
package spline
