package spline

import "errors"

// Common errors returned by the spline constructors and evaluators.
// They are wrapped with call-site detail, so match them with errors.Is.
var (
	// ErrPointOrder indicates sample points whose x-coordinates are not
	// strictly increasing.
	ErrPointOrder = errors.New("points must be sorted by strictly increasing x")

	// ErrInsufficientPoints indicates fewer sample points than the spline
	// variant's minimum (2 for Hermite, 3 for Catmull-Rom and natural cubic).
	ErrInsufficientPoints = errors.New("not enough points")

	// ErrOutOfLowerBound indicates a query below the first knot.
	// Extrapolation is never performed.
	ErrOutOfLowerBound = errors.New("query below the first knot")

	// ErrOutOfUpperBound indicates a query above the last knot.
	ErrOutOfUpperBound = errors.New("query above the last knot")

	// ErrShape indicates input slices with inconsistent lengths.
	ErrShape = errors.New("input slice lengths are inconsistent")
)
