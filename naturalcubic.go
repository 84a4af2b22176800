package spline

import "fmt"

// naturalCubicMinPoints is the minimum number of knots a natural cubic
// spline needs for its curvature system to have an interior row.
const naturalCubicMinPoints = 3

// naturalKnot is a sample point with its solved second derivative.
type naturalKnot[V Value[V]] struct {
	x, y V
	z    V // curvature at the knot
}

// NaturalCubic is a C² cubic spline with natural boundary conditions: the
// second derivative is zero at the first and last knot. Construction solves
// a tridiagonal system once for the curvature at every knot; evaluation is a
// closed-form per-segment cubic. Instances are immutable after construction
// and safe for concurrent queries.
type NaturalCubic[V Value[V]] struct {
	knots []naturalKnot[V]
}

// NewNaturalCubic builds a natural cubic spline over the given knots. The
// points must be sorted by strictly increasing X (ErrPointOrder otherwise)
// and there must be at least three of them (ErrInsufficientPoints).
//
// The curvature system has boundary rows (diag 1, off-diagonals 0, rhs 0)
// enforcing the natural ends; interior row i has lower h[i-1]/6,
// diag (h[i-1]+h[i])/3, upper h[i]/6 and rhs equal to the difference of the
// adjacent secant slopes, where h[i] = x[i+1]-x[i]. The boundary rows keep
// the matrix diagonally dominant, so the pivot-free solve is safe.
func NewNaturalCubic[V Value[V]](points []Point[V]) (*NaturalCubic[V], error) {
	n := len(points)
	if n < naturalCubicMinPoints {
		return nil, fmt.Errorf("%w: got %d, need at least %d",
			ErrInsufficientPoints, n, naturalCubicMinPoints)
	}
	// Order must hold before the system is built: the interior rows divide
	// by the segment widths.
	for i := 1; i < n; i++ {
		if points[i].X.Cmp(points[i-1].X) <= 0 {
			return nil, fmt.Errorf("%w: x[%d] = %v, x[%d] = %v",
				ErrPointOrder, i-1, points[i-1].X, i, points[i].X)
		}
	}

	zero := intVal[V](0)
	one := intVal[V](1)
	three := intVal[V](3)
	six := intVal[V](6)

	lower := make([]V, 0, n-1)
	diag := make([]V, 0, n)
	upper := make([]V, 0, n-1)
	b := make([]V, n)
	for i := range points {
		switch {
		case i == 0:
			diag = append(diag, one)
			upper = append(upper, zero)
			b[i] = zero
		case i == n-1:
			diag = append(diag, one)
			lower = append(lower, zero)
			b[i] = zero
		default:
			h := points[i].X.Sub(points[i-1].X)
			hNext := points[i+1].X.Sub(points[i].X)
			lower = append(lower, h.Div(six))
			diag = append(diag, h.Add(hNext).Div(three))
			upper = append(upper, hNext.Div(six))
			b[i] = points[i+1].Y.Sub(points[i].Y).Div(hNext).
				Sub(points[i].Y.Sub(points[i-1].Y).Div(h))
		}
	}

	system, err := NewTridiagonal(lower, diag, upper)
	if err != nil {
		return nil, err
	}
	z, err := system.Solve(b)
	if err != nil {
		return nil, err
	}

	knots := make([]naturalKnot[V], n)
	for i, p := range points {
		knots[i] = naturalKnot[V]{x: p.X, y: p.Y, z: z[i]}
	}
	return &NaturalCubic[V]{knots: knots}, nil
}

func (s *NaturalCubic[V]) knotX(i int) V { return s.knots[i].x }

// Evaluate returns the spline value at x. A query exactly on a knot returns
// the stored Y. Queries outside the knot range fail with ErrOutOfLowerBound
// or ErrOutOfUpperBound.
//
// On segment i with width h the value is
//
//	(x[i+1]-x)³/(6h)·z[i] + (x-x[i])³/(6h)·z[i+1]
//	+ (x[i+1]-x)·(y[i]/h - h/6·z[i]) + (x-x[i])·(y[i+1]/h - h/6·z[i+1])
func (s *NaturalCubic[V]) Evaluate(x V) (V, error) {
	i, exact, err := locateSegment(len(s.knots), s.knotX, x)
	if err != nil {
		var zero V
		return zero, err
	}
	if exact {
		return s.knots[i].y, nil
	}

	p, q := s.knots[i], s.knots[i+1]
	h := q.x.Sub(p.x)
	six := intVal[V](6)
	a := q.x.Sub(x)
	c := x.Sub(p.x)

	return a.Mul(a).Mul(a).Div(six).Div(h).Mul(p.z).
		Add(c.Mul(c).Mul(c).Div(six).Div(h).Mul(q.z)).
		Add(a.Mul(p.y.Div(h).Sub(h.Div(six).Mul(p.z)))).
		Add(c.Mul(q.y.Div(h).Sub(h.Div(six).Mul(q.z)))), nil
}

// Derivative returns the first derivative of the spline at x, with the same
// bounds policy as Evaluate. At a knot the segment starting there is used;
// the last knot uses the preceding segment. The spline is C², so both
// segments around a knot agree.
func (s *NaturalCubic[V]) Derivative(x V) (V, error) {
	i, exact, err := locateSegment(len(s.knots), s.knotX, x)
	if err != nil {
		var zero V
		return zero, err
	}
	if exact && i == len(s.knots)-1 {
		i--
	}

	p, q := s.knots[i], s.knots[i+1]
	h := q.x.Sub(p.x)
	three := intVal[V](3)
	six := intVal[V](6)
	a := q.x.Sub(x)
	c := x.Sub(p.x)

	return three.Mul(a.Mul(a)).Div(six).Div(h).Mul(p.z).Neg().
		Add(three.Mul(c.Mul(c)).Div(six).Div(h).Mul(q.z)).
		Sub(p.y.Div(h).Sub(h.Div(six).Mul(p.z))).
		Add(q.y.Div(h).Sub(h.Div(six).Mul(q.z))), nil
}
