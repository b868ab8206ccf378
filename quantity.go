package dv

import (
	"math"
	"unicode/utf8"

	"github.com/quantalabs/dv/internal/unitparse"
)

// Quantity is an immutable binary64 magnitude expressed in SI-base units,
// tagged with the dimension vector of those units. Every operation on a
// Quantity returns a new Quantity (or an error); none mutates its
// receiver or arguments, per spec.md §3.
type Quantity struct {
	value float64
	dims  DimensionVector
}

// New parses unitStr and constructs a Quantity whose SI-base value is
// value scaled by the unit's scale factor.
func New(value float64, unitStr string) (Quantity, error) {
	const op = "new"
	if !utf8.ValidString(unitStr) {
		return Quantity{}, newError(op, KindInvalidUTF8, -1, "unit string is not valid UTF-8", nil)
	}
	d, perr := unitparse.Parse(unitStr)
	if perr != nil {
		return Quantity{}, fromParseError(op, perr)
	}
	return Quantity{value: value * d.Scale, dims: d.Dims}, nil
}

// MustNew is New, panicking on error. Intended for constructing compile-time
// known unit strings (constants, tests), not for parsing caller-supplied
// text.
func MustNew(value float64, unitStr string) Quantity {
	q, err := New(value, unitStr)
	if err != nil {
		panic(err)
	}
	return q
}

// fromBase constructs a Quantity directly from an SI-base value and
// dimension vector, bypassing the parser. Used internally by operations
// that already know the resulting dimensions.
func fromBase(value float64, dims DimensionVector) Quantity {
	return Quantity{value: value, dims: dims}
}

// Magnitude returns the internal SI-base value.
func (q Quantity) Magnitude() float64 { return q.value }

// Dimensions returns the quantity's dimension vector.
func (q Quantity) Dimensions() DimensionVector { return q.dims }

// IsUnitless reports whether the quantity is dimensionless.
func (q Quantity) IsUnitless() bool { return q.dims.IsDimensionless() }

// ValueIn parses unitStr and returns the quantity's magnitude expressed in
// that unit. It fails if unitStr does not parse, or if its dimensions do
// not match the quantity's. The empty unit string is accepted iff the
// quantity is dimensionless.
func (q Quantity) ValueIn(unitStr string) (float64, error) {
	const op = "value_in"
	if !utf8.ValidString(unitStr) {
		return 0, newError(op, KindInvalidUTF8, -1, "unit string is not valid UTF-8", nil)
	}
	d, perr := unitparse.Parse(unitStr)
	if perr != nil {
		return 0, fromParseError(op, perr)
	}
	if !d.Dims.Equal(q.dims) {
		return 0, dimensionMismatch(op, q.dims, d.Dims)
	}
	return q.value / d.Scale, nil
}

// Add returns a+b. Both operands must share the same dimensions.
func Add(a, b Quantity) (Quantity, error) {
	if !a.dims.Equal(b.dims) {
		return Quantity{}, dimensionMismatch("add", a.dims, b.dims)
	}
	return fromBase(a.value+b.value, a.dims), nil
}

// Sub returns a-b. Both operands must share the same dimensions.
func Sub(a, b Quantity) (Quantity, error) {
	if !a.dims.Equal(b.dims) {
		return Quantity{}, dimensionMismatch("sub", a.dims, b.dims)
	}
	return fromBase(a.value-b.value, a.dims), nil
}

// Mul returns a*b. Always succeeds for finite operands; dimensions add.
func Mul(a, b Quantity) Quantity {
	return fromBase(a.value*b.value, a.dims.Add(b.dims))
}

// Div returns a/b. Always succeeds for finite operands; dimensions
// subtract. Division by a zero-valued quantity yields ±Inf or NaN per
// IEEE-754, which is not a domain error of this library (spec.md §4.4).
func Div(a, b Quantity) Quantity {
	return fromBase(a.value/b.value, a.dims.Sub(b.dims))
}

// MulScalar returns the quantity scaled by k; dimensions are unchanged.
func (q Quantity) MulScalar(k float64) Quantity {
	return fromBase(q.value*k, q.dims)
}

// DivScalar returns the quantity divided by k; dimensions are unchanged.
func (q Quantity) DivScalar(k float64) Quantity {
	return fromBase(q.value/k, q.dims)
}

// RDivScalar returns k/q: dimensions negate, per spec.md §9's resolution of
// the rdiv_scalar open question.
func (q Quantity) RDivScalar(k float64) Quantity {
	return fromBase(k/q.value, q.dims.Neg())
}

// Neg returns -q; dimensions are unchanged.
func (q Quantity) Neg() Quantity {
	return fromBase(-q.value, q.dims)
}

// Abs returns |q|; dimensions are unchanged.
func (q Quantity) Abs() Quantity {
	return fromBase(math.Abs(q.value), q.dims)
}
