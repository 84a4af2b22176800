package spline

import "fmt"

// catmullRomMinPoints is the minimum number of knots a Catmull-Rom spline
// needs: boundary segments borrow one neighbor beyond the segment.
const catmullRomMinPoints = 3

// CatmullRom is a Catmull-Rom spline over non-uniformly spaced knots. Knot
// tangents are not stored; each segment derives them from the neighboring
// points, blending with the spacing ratios of the adjacent segments, so the
// cubic matches the finite-difference tangent (y[i+1]-y[i-1])/(h[i-1]+h[i])
// at interior knots and one-sided estimates at the two boundary segments.
// Instances are immutable after construction and safe for concurrent queries.
type CatmullRom[V Value[V]] struct {
	points []Point[V]
}

// NewCatmullRom builds a Catmull-Rom spline over the given knots. The points
// must be sorted by strictly increasing X (ErrPointOrder otherwise) and
// there must be at least three of them (ErrInsufficientPoints). The input
// slice is copied.
func NewCatmullRom[V Value[V]](points []Point[V]) (*CatmullRom[V], error) {
	if len(points) < catmullRomMinPoints {
		return nil, fmt.Errorf("%w: got %d, need at least %d",
			ErrInsufficientPoints, len(points), catmullRomMinPoints)
	}

	owned := make([]Point[V], len(points))
	copy(owned, points)
	for i := 1; i < len(owned); i++ {
		if owned[i].X.Cmp(owned[i-1].X) <= 0 {
			return nil, fmt.Errorf("%w: x[%d] = %v, x[%d] = %v",
				ErrPointOrder, i-1, owned[i-1].X, i, owned[i].X)
		}
	}
	return &CatmullRom[V]{points: owned}, nil
}

func (s *CatmullRom[V]) knotX(i int) V { return s.points[i].X }

// segmentCoeffs folds segment i's basis matrix and the neighboring y values
// into power-basis coefficients over t in [0, 1], returning them with the
// segment width h. Three matrices apply: the first segment has no previous
// knot and zero-weights that slot, the last segment likewise has no next
// knot, and interior segments blend all four neighbors. alpha and beta are
// the spacing ratios h/(h+prev_h) and h/(h+next_h).
func (s *CatmullRom[V]) segmentCoeffs(i int) (vec4[V], V) {
	zero := intVal[V](0)
	one := intVal[V](1)
	two := intVal[V](2)
	three := intVal[V](3)

	p, q := s.points[i], s.points[i+1]
	h := q.X.Sub(p.X)

	switch {
	case i == 0:
		r := s.points[i+2]
		nextH := r.X.Sub(q.X)
		beta := h.Div(h.Add(nextH))
		m := mat4[V]{
			{zero, one.Sub(beta), one.Neg(), beta},
			{zero, beta.Sub(one), one, beta.Neg()},
			{zero, one.Neg(), one, zero},
			{zero, one, zero, zero},
		}
		return m.mulVec(vec4[V]{zero, p.Y, q.Y, r.Y}), h

	case i+2 == len(s.points):
		o := s.points[i-1]
		prevH := q.X.Sub(o.X)
		alpha := h.Div(h.Add(prevH))
		m := mat4[V]{
			{alpha.Neg(), one, alpha.Neg(), zero},
			{two.Mul(alpha), two.Neg(), two.Sub(two.Mul(alpha)), zero},
			{alpha.Neg(), zero, alpha, zero},
			{zero, one, zero, zero},
		}
		return m.mulVec(vec4[V]{o.Y, p.Y, q.Y, zero}), h

	default:
		o, r := s.points[i-1], s.points[i+2]
		prevH := q.X.Sub(o.X)
		alpha := h.Div(h.Add(prevH))
		nextH := r.X.Sub(q.X)
		beta := h.Div(h.Add(nextH))
		m := mat4[V]{
			{alpha.Neg(), two.Sub(beta), alpha.Sub(two), beta},
			{two.Mul(alpha), beta.Sub(three), three.Sub(two.Mul(alpha)), beta.Neg()},
			{alpha.Neg(), zero, alpha, zero},
			{zero, one, zero, zero},
		}
		return m.mulVec(vec4[V]{o.Y, p.Y, q.Y, r.Y}), h
	}
}

// Evaluate returns the spline value at x. A query exactly on a knot returns
// the stored Y. Queries outside the knot range fail with ErrOutOfLowerBound
// or ErrOutOfUpperBound.
func (s *CatmullRom[V]) Evaluate(x V) (V, error) {
	i, exact, err := locateSegment(len(s.points), s.knotX, x)
	if err != nil {
		var zero V
		return zero, err
	}
	if exact {
		return s.points[i].Y, nil
	}
	c, h := s.segmentCoeffs(i)
	t := x.Sub(s.points[i].X).Div(h)
	return powerBasis(t).dot(c), nil
}

// Derivative returns the first derivative of the spline at x, with the same
// bounds policy as Evaluate. At a knot the segment starting there is used;
// the last knot uses the preceding segment.
func (s *CatmullRom[V]) Derivative(x V) (V, error) {
	i, exact, err := locateSegment(len(s.points), s.knotX, x)
	if err != nil {
		var zero V
		return zero, err
	}
	if exact && i == len(s.points)-1 {
		i--
	}
	c, h := s.segmentCoeffs(i)
	t := x.Sub(s.points[i].X).Div(h)
	return powerBasisDeriv(t).dot(c).Div(h), nil
}
