package spline

import "fmt"

// Tridiagonal is a tridiagonal linear system A·x = b over n unknowns.
// lower and upper hold the n-1 off-diagonal bands, diag the n diagonal
// entries. The system is immutable once constructed and may be solved
// repeatedly against different right-hand sides.
type Tridiagonal[V Value[V]] struct {
	lower, diag, upper []V
}

// NewTridiagonal validates the band shapes and wraps them into a system.
// It requires len(lower) == len(upper) == len(diag)-1 and fails with
// ErrShape otherwise. The slices are not copied; callers must not modify
// them while the system is in use.
func NewTridiagonal[V Value[V]](lower, diag, upper []V) (*Tridiagonal[V], error) {
	if len(lower) != len(upper) || len(lower)+1 != len(diag) {
		return nil, fmt.Errorf("%w: lower %d, diag %d, upper %d",
			ErrShape, len(lower), len(diag), len(upper))
	}
	return &Tridiagonal[V]{lower: lower, diag: diag, upper: upper}, nil
}

// Size returns the number of unknowns n.
func (m *Tridiagonal[V]) Size() int { return len(m.diag) }

// Solve returns the x satisfying A·x = b using the Thomas algorithm:
// a forward sweep eliminates the lower band while normalizing the diagonal,
// then back substitution recovers the solution. O(n) time and scratch space.
//
// No pivoting is performed; the caller must ensure the matrix is diagonally
// dominant or otherwise non-singular for these coefficients. b must have
// length Size, else Solve fails with ErrShape. Neither the receiver nor b
// is modified.
func (m *Tridiagonal[V]) Solve(b []V) ([]V, error) {
	n := len(m.diag)
	if len(b) != n {
		return nil, fmt.Errorf("%w: rhs has %d entries for %d unknowns",
			ErrShape, len(b), n)
	}

	x := make([]V, n)
	copy(x, b)
	x[0] = x[0].Div(m.diag[0])
	if n == 1 {
		return x, nil
	}

	// Forward sweep: scratch[i] holds the modified upper-diagonal
	// coefficient c'[i].
	scratch := make([]V, n-1)
	scratch[0] = m.upper[0].Div(m.diag[0])
	for i := 1; i < n; i++ {
		denom := m.diag[i].Sub(m.lower[i-1].Mul(scratch[i-1]))
		if i < n-1 {
			scratch[i] = m.upper[i].Div(denom)
		}
		x[i] = x[i].Sub(m.lower[i-1].Mul(x[i-1])).Div(denom)
	}

	// Back substitution; row n-1 is already final after the forward sweep.
	for i := n - 2; i >= 0; i-- {
		x[i] = x[i].Sub(scratch[i].Mul(x[i+1]))
	}
	return x, nil
}
