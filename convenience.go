package spline

import "fmt"

// NewHermiteFloat64 builds a [Hermite] spline over float64 samples. xs, ys
// and dydxs must have equal length; a mismatch fails with ErrShape.
func NewHermiteFloat64(xs, ys, dydxs []float64) (*Hermite[Float64], error) {
	if len(xs) != len(ys) || len(xs) != len(dydxs) {
		return nil, fmt.Errorf("%w: len(xs) = %d, len(ys) = %d, len(dydxs) = %d",
			ErrShape, len(xs), len(ys), len(dydxs))
	}
	points := make([]HermitePoint[Float64], len(xs))
	for i := range xs {
		points[i] = HermitePoint[Float64]{
			X:    Float64(xs[i]),
			Y:    Float64(ys[i]),
			DyDx: Float64(dydxs[i]),
		}
	}
	return NewHermite(points)
}

// NewCatmullRomFloat64 builds a [CatmullRom] spline over float64 samples.
// xs and ys must have equal length; a mismatch fails with ErrShape.
func NewCatmullRomFloat64(xs, ys []float64) (*CatmullRom[Float64], error) {
	points, err := float64Points(xs, ys)
	if err != nil {
		return nil, err
	}
	return NewCatmullRom(points)
}

// NewNaturalCubicFloat64 builds a [NaturalCubic] spline over float64
// samples. xs and ys must have equal length; a mismatch fails with ErrShape.
func NewNaturalCubicFloat64(xs, ys []float64) (*NaturalCubic[Float64], error) {
	points, err := float64Points(xs, ys)
	if err != nil {
		return nil, err
	}
	return NewNaturalCubic(points)
}

func float64Points(xs, ys []float64) ([]Point[Float64], error) {
	if len(xs) != len(ys) {
		return nil, fmt.Errorf("%w: len(xs) = %d, len(ys) = %d",
			ErrShape, len(xs), len(ys))
	}
	points := make([]Point[Float64], len(xs))
	for i := range xs {
		points[i] = Point[Float64]{X: Float64(xs[i]), Y: Float64(ys[i])}
	}
	return points, nil
}
