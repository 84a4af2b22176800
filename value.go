package spline

// Value is the arithmetic contract a scalar type must satisfy to be used as
// the coordinate type of a spline. It covers ordered field arithmetic plus
// construction from small integer literals, which the evaluators need for
// their fixed basis-matrix constants.
//
// Implementations must be plain value types: every operation returns a new
// value and never mutates its receiver. No operation may panic on finite
// inputs except Div, whose callers guarantee a non-zero divisor (segment
// widths are kept positive by construction-time validation).
//
// The library ships [Float64], [Float32] and [Decimal]. User-defined types
// satisfying the same method set work without modification.
type Value[V any] interface {
	// Add returns the sum of the receiver and v.
	Add(v V) V

	// Sub returns the receiver minus v.
	Sub(v V) V

	// Mul returns the product of the receiver and v.
	Mul(v V) V

	// Div returns the receiver divided by v. v must be non-zero.
	Div(v V) V

	// Neg returns the additive inverse of the receiver.
	Neg() V

	// Cmp compares the receiver with v, returning -1, 0 or +1.
	Cmp(v V) int

	// FromInt constructs the value n. The receiver is used only to select
	// the type and may be the zero value.
	FromInt(n int) V
}

// intVal returns n as a V.
func intVal[V Value[V]](n int) V {
	var zero V
	return zero.FromInt(n)
}

// Float64 adapts float64 to the [Value] contract. It is the instantiation
// used by the convenience constructors and by cmd/spline-wav.
type Float64 float64

// Add returns a + b.
func (a Float64) Add(b Float64) Float64 { return a + b }

// Sub returns a - b.
func (a Float64) Sub(b Float64) Float64 { return a - b }

// Mul returns a * b.
func (a Float64) Mul(b Float64) Float64 { return a * b }

// Div returns a / b.
func (a Float64) Div(b Float64) Float64 { return a / b }

// Neg returns -a.
func (a Float64) Neg() Float64 { return -a }

// Cmp compares a with b.
func (a Float64) Cmp(b Float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// FromInt returns n as a Float64.
func (Float64) FromInt(n int) Float64 { return Float64(n) }

// Float32 adapts float32 to the [Value] contract.
type Float32 float32

// Add returns a + b.
func (a Float32) Add(b Float32) Float32 { return a + b }

// Sub returns a - b.
func (a Float32) Sub(b Float32) Float32 { return a - b }

// Mul returns a * b.
func (a Float32) Mul(b Float32) Float32 { return a * b }

// Div returns a / b.
func (a Float32) Div(b Float32) Float32 { return a / b }

// Neg returns -a.
func (a Float32) Neg() Float32 { return -a }

// Cmp compares a with b.
func (a Float32) Cmp(b Float32) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// FromInt returns n as a Float32.
func (Float32) FromInt(n int) Float32 { return Float32(n) }
