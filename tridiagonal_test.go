package spline_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	spline "github.com/tphakala/go-spline"
)

// TestNewTridiagonal_ShapeMismatch verifies that inconsistent band lengths
// are rejected before any solve is attempted.
func TestNewTridiagonal_ShapeMismatch(t *testing.T) {
	tests := []struct {
		name               string
		lower, diag, upper []spline.Float64
	}{
		{"LowerShorterThanUpper", f64s(0), f64s(1, 1, 1), f64s(0, 0)},
		{"UpperShorterThanLower", f64s(0, 0), f64s(1, 1, 1), f64s(0)},
		{"BandsAsLongAsDiagonal", f64s(0, 0, 0), f64s(1, 1, 1), f64s(0, 0, 0)},
		{"EmptyDiagonal", f64s(0), nil, f64s(0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			system, err := spline.NewTridiagonal(tt.lower, tt.diag, tt.upper)
			assert.ErrorIs(t, err, spline.ErrShape)
			assert.Nil(t, system)
		})
	}
}

// TestTridiagonal_SolveIdentity checks the identity system returns the
// right-hand side unchanged.
func TestTridiagonal_SolveIdentity(t *testing.T) {
	system, err := spline.NewTridiagonal(f64s(0, 0), f64s(1, 1, 1), f64s(0, 0))
	require.NoError(t, err)

	x, err := system.Solve(f64s(4, -2.5, 7))
	require.NoError(t, err)
	assert.Equal(t, f64s(4, -2.5, 7), x)
}

// TestTridiagonal_SolveRHSMismatch verifies a wrong-length right-hand side
// fails with ErrShape.
func TestTridiagonal_SolveRHSMismatch(t *testing.T) {
	system, err := spline.NewTridiagonal(f64s(0, 0), f64s(1, 1, 1), f64s(0, 0))
	require.NoError(t, err)

	x, err := system.Solve(f64s(1, 2))
	assert.ErrorIs(t, err, spline.ErrShape)
	assert.Nil(t, x)
}

// TestTridiagonal_SolveKnownSystems checks hand-worked systems.
func TestTridiagonal_SolveKnownSystems(t *testing.T) {
	tests := []struct {
		name               string
		lower, diag, upper []spline.Float64
		b, want            []spline.Float64
	}{
		{
			// [2 1; 1 2] x = [3 3] -> x = [1 1]
			name:  "TwoUnknowns",
			lower: f64s(1), diag: f64s(2, 2), upper: f64s(1),
			b: f64s(3, 3), want: f64s(1, 1),
		},
		{
			// [2 1 0; 1 2 1; 0 1 2] x = [3 4 3] -> x = [1 1 1]
			name:  "SymmetricThree",
			lower: f64s(1, 1), diag: f64s(2, 2, 2), upper: f64s(1, 1),
			b: f64s(3, 4, 3), want: f64s(1, 1, 1),
		},
		{
			// [2 1 0; 1 2 1; 0 1 2] x = [1 2 5] -> x = [0 1 2]
			name:  "AsymmetricRHS",
			lower: f64s(1, 1), diag: f64s(2, 2, 2), upper: f64s(1, 1),
			b: f64s(1, 2, 5), want: f64s(0, 1, 2),
		},
		{
			name:  "SingleUnknown",
			lower: nil, diag: f64s(4), upper: nil,
			b: f64s(8), want: f64s(2),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			system, err := spline.NewTridiagonal(tt.lower, tt.diag, tt.upper)
			require.NoError(t, err)

			x, err := system.Solve(tt.b)
			require.NoError(t, err)
			require.Len(t, x, len(tt.want))
			for i := range tt.want {
				assert.InDelta(t, float64(tt.want[i]), float64(x[i]), 1e-12,
					"x[%d]", i)
			}
		})
	}
}

// TestTridiagonal_MatchesDenseSolve cross-checks the Thomas sweep against a
// dense gonum solve on random diagonally dominant systems.
func TestTridiagonal_MatchesDenseSolve(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for _, n := range []int{2, 3, 5, 12, 50} {
		lower := make([]spline.Float64, n-1)
		diag := make([]spline.Float64, n)
		upper := make([]spline.Float64, n-1)
		b := make([]spline.Float64, n)

		dense := mat.NewDense(n, n, nil)
		rhs := mat.NewVecDense(n, nil)
		for i := 0; i < n; i++ {
			// Diagonal dominance keeps the pivot-free sweep stable.
			d := 4 + rng.Float64()
			diag[i] = spline.Float64(d)
			dense.Set(i, i, d)
			if i < n-1 {
				u := rng.Float64()*2 - 1
				l := rng.Float64()*2 - 1
				upper[i] = spline.Float64(u)
				lower[i] = spline.Float64(l)
				dense.Set(i, i+1, u)
				dense.Set(i+1, i, l)
			}
			bv := rng.Float64()*10 - 5
			b[i] = spline.Float64(bv)
			rhs.SetVec(i, bv)
		}

		system, err := spline.NewTridiagonal(lower, diag, upper)
		require.NoError(t, err)
		got, err := system.Solve(b)
		require.NoError(t, err)

		var want mat.VecDense
		require.NoError(t, want.SolveVec(dense, rhs))
		for i := 0; i < n; i++ {
			assert.InDelta(t, want.AtVec(i), float64(got[i]), 1e-10,
				"n=%d x[%d]", n, i)
		}
	}
}

// TestTridiagonal_SolveDoesNotMutate verifies the system can be re-solved
// and that neither the bands nor the right-hand side change.
func TestTridiagonal_SolveDoesNotMutate(t *testing.T) {
	diag := f64s(2, 2, 2)
	system, err := spline.NewTridiagonal(f64s(1, 1), diag, f64s(1, 1))
	require.NoError(t, err)
	assert.Equal(t, 3, system.Size())

	b := f64s(3, 4, 3)
	first, err := system.Solve(b)
	require.NoError(t, err)
	assert.Equal(t, f64s(3, 4, 3), b)
	assert.Equal(t, f64s(2, 2, 2), diag)

	// A second solve against a new rhs reuses the same coefficients.
	second, err := system.Solve(f64s(1, 2, 5))
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
	for i, want := range []float64{0, 1, 2} {
		assert.InDelta(t, want, float64(second[i]), 1e-12)
	}
}

// TestTridiagonal_Decimal runs the identity check under exact decimal
// arithmetic.
func TestTridiagonal_Decimal(t *testing.T) {
	one := dec(t, "1")
	zero := dec(t, "0")
	system, err := spline.NewTridiagonal(
		[]spline.Decimal{zero, zero},
		[]spline.Decimal{one, one, one},
		[]spline.Decimal{zero, zero},
	)
	require.NoError(t, err)

	b := []spline.Decimal{dec(t, "4"), dec(t, "-2.5"), dec(t, "7")}
	x, err := system.Solve(b)
	require.NoError(t, err)
	require.Len(t, x, 3)
	for i := range b {
		assert.Zero(t, x[i].Cmp(b[i]), "x[%d] = %v", i, x[i])
	}
}
