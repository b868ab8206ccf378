package dv

import "math"

// Ln returns the natural log of the quantity's value. The quantity must be
// dimensionless.
func (q Quantity) Ln() (Quantity, error) {
	return q.requireDimensionless("ln", math.Log(q.value))
}

// Log2 returns the base-2 log of the quantity's value. The quantity must
// be dimensionless.
func (q Quantity) Log2() (Quantity, error) {
	return q.requireDimensionless("log2", math.Log2(q.value))
}

// Log10 returns the base-10 log of the quantity's value. The quantity must
// be dimensionless.
func (q Quantity) Log10() (Quantity, error) {
	return q.requireDimensionless("log10", math.Log10(q.value))
}

// Exp returns e raised to the quantity's value. The quantity must be
// dimensionless.
func (q Quantity) Exp() (Quantity, error) {
	return q.requireDimensionless("exp", math.Exp(q.value))
}

func (q Quantity) requireDimensionless(op string, result float64) (Quantity, error) {
	if !q.dims.IsDimensionless() {
		return Quantity{}, dimensionError(op, "argument must be dimensionless")
	}
	return fromBase(result, DimensionVector{}), nil
}

// requireAngleLike validates the dimensionless-or-pure-angle argument shape
// that sin/cos/tan accept, per spec.md §4.4.
func (q Quantity) requireAngleLike(op string) error {
	if q.dims.IsDimensionless() || q.dims.IsPureAngle() {
		return nil
	}
	return dimensionError(op, "argument must be dimensionless or a pure angle")
}

// Sin returns the sine of the quantity, interpreted in radians. Accepts a
// dimensionless or pure-angle argument; result is dimensionless.
func (q Quantity) Sin() (Quantity, error) {
	if err := q.requireAngleLike("sin"); err != nil {
		return Quantity{}, err
	}
	return fromBase(math.Sin(q.value), DimensionVector{}), nil
}

// Cos returns the cosine of the quantity, interpreted in radians.
func (q Quantity) Cos() (Quantity, error) {
	if err := q.requireAngleLike("cos"); err != nil {
		return Quantity{}, err
	}
	return fromBase(math.Cos(q.value), DimensionVector{}), nil
}

// Tan returns the tangent of the quantity, interpreted in radians.
func (q Quantity) Tan() (Quantity, error) {
	if err := q.requireAngleLike("tan"); err != nil {
		return Quantity{}, err
	}
	return fromBase(math.Tan(q.value), DimensionVector{}), nil
}

// Asin returns the arcsine of the (dimensionless) quantity as a pure-angle
// quantity in radians. Fails with KindDomainError if |value| > 1.
func (q Quantity) Asin() (Quantity, error) {
	if !q.dims.IsDimensionless() {
		return Quantity{}, dimensionError("asin", "argument must be dimensionless")
	}
	return asinValue(q.value)
}

// Acos returns the arccosine of the (dimensionless) quantity as a
// pure-angle quantity in radians. Fails with KindDomainError if |value| > 1.
func (q Quantity) Acos() (Quantity, error) {
	if !q.dims.IsDimensionless() {
		return Quantity{}, dimensionError("acos", "argument must be dimensionless")
	}
	return acosValue(q.value)
}

// Atan returns the arctangent of the (dimensionless) quantity as a
// pure-angle quantity in radians.
func (q Quantity) Atan() (Quantity, error) {
	if !q.dims.IsDimensionless() {
		return Quantity{}, dimensionError("atan", "argument must be dimensionless")
	}
	return fromBase(math.Atan(q.value), angleVector()), nil
}

// Asin computes the arcsine of a bare value, returning a pure-angle
// quantity in radians. This is the free-standing form named in spec.md
// §4.4, distinct from the Quantity method of the same name.
func Asin(x float64) (Quantity, error) { return asinValue(x) }

// Acos computes the arccosine of a bare value, returning a pure-angle
// quantity in radians.
func Acos(x float64) (Quantity, error) { return acosValue(x) }

// Atan computes the arctangent of a bare value, returning a pure-angle
// quantity in radians.
func Atan(x float64) Quantity { return fromBase(math.Atan(x), angleVector()) }

func asinValue(x float64) (Quantity, error) {
	if x < -1 || x > 1 {
		return Quantity{}, domainError("asin", "argument out of domain [-1, 1]")
	}
	return fromBase(math.Asin(x), angleVector()), nil
}

func acosValue(x float64) (Quantity, error) {
	if x < -1 || x > 1 {
		return Quantity{}, domainError("acos", "argument out of domain [-1, 1]")
	}
	return fromBase(math.Acos(x), angleVector()), nil
}

func angleVector() DimensionVector {
	var v DimensionVector
	v[DimAngle] = 1
	return v
}
