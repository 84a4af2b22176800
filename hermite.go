package spline

import "fmt"

// hermiteMinPoints is the minimum number of knots a Hermite spline needs.
const hermiteMinPoints = 2

// Hermite is a cubic Hermite spline: each segment is the cubic matching the
// values and caller-supplied tangents at its two end knots. Instances are
// immutable after construction and safe for concurrent queries.
type Hermite[V Value[V]] struct {
	points []HermitePoint[V]
	basis  mat4[V]
}

// NewHermite builds a Hermite spline over the given knots. The points must
// be sorted by strictly increasing X (ErrPointOrder otherwise) and there
// must be at least two of them (ErrInsufficientPoints). The input slice is
// copied.
func NewHermite[V Value[V]](points []HermitePoint[V]) (*Hermite[V], error) {
	if len(points) < hermiteMinPoints {
		return nil, fmt.Errorf("%w: got %d, need at least %d",
			ErrInsufficientPoints, len(points), hermiteMinPoints)
	}

	owned := make([]HermitePoint[V], len(points))
	copy(owned, points)
	for i := 1; i < len(owned); i++ {
		if owned[i].X.Cmp(owned[i-1].X) <= 0 {
			return nil, fmt.Errorf("%w: x[%d] = %v, x[%d] = %v",
				ErrPointOrder, i-1, owned[i-1].X, i, owned[i].X)
		}
	}
	return &Hermite[V]{points: owned, basis: hermiteBasis[V]()}, nil
}

// hermiteBasis returns the fixed cubic Hermite basis-transform matrix
//
//	[  2 -2  1  1 ]
//	[ -3  3 -2 -1 ]
//	[  0  0  1  0 ]
//	[  1  0  0  0 ]
//
// mapping [y0, y1, m0·h, m1·h] to power-basis coefficients over t in [0, 1].
func hermiteBasis[V Value[V]]() mat4[V] {
	zero := intVal[V](0)
	one := intVal[V](1)
	two := intVal[V](2)
	three := intVal[V](3)
	return mat4[V]{
		{two, two.Neg(), one, one},
		{three.Neg(), three, two.Neg(), one.Neg()},
		{zero, zero, one, zero},
		{one, zero, zero, zero},
	}
}

func (s *Hermite[V]) knotX(i int) V { return s.points[i].X }

// segmentVector returns the basis input [y_i, y_{i+1}, m_i·h, m_{i+1}·h] and
// the width h of segment i. Tangents are scaled by the local segment width,
// so the same stored tangent bends more over a wider segment.
func (s *Hermite[V]) segmentVector(i int) (vec4[V], V) {
	p, q := s.points[i], s.points[i+1]
	h := q.X.Sub(p.X)
	return vec4[V]{p.Y, q.Y, p.DyDx.Mul(h), q.DyDx.Mul(h)}, h
}

// Evaluate returns the spline value at x. A query exactly on a knot returns
// the stored Y. Queries outside the knot range fail with ErrOutOfLowerBound
// or ErrOutOfUpperBound.
func (s *Hermite[V]) Evaluate(x V) (V, error) {
	i, exact, err := locateSegment(len(s.points), s.knotX, x)
	if err != nil {
		var zero V
		return zero, err
	}
	if exact {
		return s.points[i].Y, nil
	}
	f, h := s.segmentVector(i)
	t := x.Sub(s.points[i].X).Div(h)
	return powerBasis(t).dot(s.basis.mulVec(f)), nil
}

// Derivative returns the first derivative of the spline at x, with the same
// bounds policy as Evaluate. At a knot the segment starting there is used;
// the last knot uses the preceding segment.
func (s *Hermite[V]) Derivative(x V) (V, error) {
	i, exact, err := locateSegment(len(s.points), s.knotX, x)
	if err != nil {
		var zero V
		return zero, err
	}
	if exact && i == len(s.points)-1 {
		i--
	}
	f, h := s.segmentVector(i)
	t := x.Sub(s.points[i].X).Div(h)
	return powerBasisDeriv(t).dot(s.basis.mulVec(f)).Div(h), nil
}
