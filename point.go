package spline

import (
	"fmt"
	"sort"
)

// Point is a sample point (knot) of a Catmull-Rom or natural cubic spline.
// Knot tangents for these variants are derived from neighboring points, so
// no derivative is stored.
type Point[V Value[V]] struct {
	X, Y V
}

// HermitePoint is a sample point of a Hermite spline. DyDx is the tangent
// (dy/dx) the curve must have at the knot.
type HermitePoint[V Value[V]] struct {
	X, Y, DyDx V
}

// locateSegment applies the shared knot-lookup policy. at(i) reports the
// x-coordinate of knot i out of n. An exact knot hit returns its index with
// exact = true. Otherwise the index of the segment enclosing x is returned:
// a query before the first knot fails with ErrOutOfLowerBound and a query
// past the last knot with ErrOutOfUpperBound. An insertion position equal to
// n is out of the upper bound as well, since the segment starting at the
// last knot has no end point.
func locateSegment[V Value[V]](n int, at func(int) V, x V) (idx int, exact bool, err error) {
	pos := sort.Search(n, func(i int) bool { return at(i).Cmp(x) >= 0 })
	if pos < n && at(pos).Cmp(x) == 0 {
		return pos, true, nil
	}
	if pos == 0 {
		return 0, false, fmt.Errorf("%w: x = %v", ErrOutOfLowerBound, x)
	}
	if pos == n {
		return 0, false, fmt.Errorf("%w: x = %v", ErrOutOfUpperBound, x)
	}
	return pos - 1, false, nil
}
