package spline

import "github.com/shopspring/decimal"

// decimalDivisionPrecision is the number of decimal places kept by Decimal
// division. Fixed here rather than read from the package-level
// decimal.DivisionPrecision so results do not depend on global state.
const decimalDivisionPrecision = 28

// Decimal adapts github.com/shopspring/decimal to the [Value] contract,
// giving the evaluators exact decimal arithmetic. Addition, subtraction,
// multiplication and negation are exact; division rounds half away from zero
// at decimalDivisionPrecision decimal places.
type Decimal struct {
	v decimal.Decimal
}

// NewDecimal wraps a decimal.Decimal.
func NewDecimal(d decimal.Decimal) Decimal { return Decimal{v: d} }

// DecimalFromString parses s into a Decimal.
func DecimalFromString(s string) (Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Decimal{}, err
	}
	return Decimal{v: d}, nil
}

// DecimalFromFloat converts f into a Decimal.
func DecimalFromFloat(f float64) Decimal {
	return Decimal{v: decimal.NewFromFloat(f)}
}

// Unwrap returns the underlying decimal.Decimal.
func (a Decimal) Unwrap() decimal.Decimal { return a.v }

// String returns the decimal formatted as a string.
func (a Decimal) String() string { return a.v.String() }

// Add returns a + b.
func (a Decimal) Add(b Decimal) Decimal { return Decimal{v: a.v.Add(b.v)} }

// Sub returns a - b.
func (a Decimal) Sub(b Decimal) Decimal { return Decimal{v: a.v.Sub(b.v)} }

// Mul returns a * b.
func (a Decimal) Mul(b Decimal) Decimal { return Decimal{v: a.v.Mul(b.v)} }

// Div returns a / b rounded to decimalDivisionPrecision decimal places.
func (a Decimal) Div(b Decimal) Decimal {
	return Decimal{v: a.v.DivRound(b.v, decimalDivisionPrecision)}
}

// Neg returns -a.
func (a Decimal) Neg() Decimal { return Decimal{v: a.v.Neg()} }

// Cmp compares a with b.
func (a Decimal) Cmp(b Decimal) int { return a.v.Cmp(b.v) }

// FromInt returns n as a Decimal.
func (Decimal) FromInt(n int) Decimal {
	return Decimal{v: decimal.NewFromInt(int64(n))}
}
