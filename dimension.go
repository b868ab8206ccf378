package dv

import "github.com/quantalabs/dv/internal/dimension"

// DimensionVector is the eight-component exponent tuple described in
// spec.md §3, in the fixed base-dimension order: length, mass, time,
// temperature, current, substance, luminous intensity, plane angle.
type DimensionVector = dimension.Vector

// Base-dimension indices, for callers that build or inspect a
// DimensionVector directly (e.g. via Quantity.Dimensions()).
const (
	DimLength      = dimension.Length
	DimMass        = dimension.Mass
	DimTime        = dimension.Time
	DimTemperature = dimension.Temperature
	DimCurrent     = dimension.Current
	DimSubstance   = dimension.Substance
	DimLuminous    = dimension.Luminous
	DimAngle       = dimension.Angle
)
