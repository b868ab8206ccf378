// Package registry is the static catalog of unit symbols described in
// spec.md §4.1: a read-only table mapping each atomic unit symbol to its
// SI-base scale and dimension vector, plus the metric-prefix table. It is
// the single source of truth consulted by internal/unitparse — no
// conversion factor is hard-coded anywhere else, per §4.1's closing
// sentence.
package registry

import (
	"math"

	"github.com/quantalabs/dv/internal/dimension"
)

// Entry is a single registry row: the scale that converts one unit of
// Symbol into SI-base units of Dims, and whether metric prefixes may be
// applied to it.
type Entry struct {
	Symbol        string
	Scale         float64
	Dims          dimension.Vector
	PrefixAllowed bool
}

func dims(set map[dimension.Index]float64) dimension.Vector {
	var v dimension.Vector
	for idx, exp := range set {
		v[idx] = exp
	}
	return v
}

var (
	dimLength      = dims(map[dimension.Index]float64{dimension.Length: 1})
	dimMass        = dims(map[dimension.Index]float64{dimension.Mass: 1})
	dimTime        = dims(map[dimension.Index]float64{dimension.Time: 1})
	dimTemperature = dims(map[dimension.Index]float64{dimension.Temperature: 1})
	dimCurrent     = dims(map[dimension.Index]float64{dimension.Current: 1})
	dimSubstance   = dims(map[dimension.Index]float64{dimension.Substance: 1})
	dimLuminous    = dims(map[dimension.Index]float64{dimension.Luminous: 1})
	dimAngle       = dims(map[dimension.Index]float64{dimension.Angle: 1})
	dimless        = dimension.Vector{}

	// Derived dimension vectors used by the table below.
	dimForce     = dims(map[dimension.Index]float64{dimension.Mass: 1, dimension.Length: 1, dimension.Time: -2})
	dimEnergy    = dims(map[dimension.Index]float64{dimension.Mass: 1, dimension.Length: 2, dimension.Time: -2})
	dimPower     = dims(map[dimension.Index]float64{dimension.Mass: 1, dimension.Length: 2, dimension.Time: -3})
	dimPressure  = dims(map[dimension.Index]float64{dimension.Mass: 1, dimension.Length: -1, dimension.Time: -2})
	dimFrequency = dims(map[dimension.Index]float64{dimension.Time: -1})
	dimCharge    = dims(map[dimension.Index]float64{dimension.Current: 1, dimension.Time: 1})
	dimVoltage   = dims(map[dimension.Index]float64{dimension.Mass: 1, dimension.Length: 2, dimension.Time: -3, dimension.Current: -1})
	dimResist    = dims(map[dimension.Index]float64{dimension.Mass: 1, dimension.Length: 2, dimension.Time: -3, dimension.Current: -2})
	dimCapacit   = dims(map[dimension.Index]float64{dimension.Mass: -1, dimension.Length: -2, dimension.Time: 4, dimension.Current: 2})
	dimTesla     = dims(map[dimension.Index]float64{dimension.Mass: 1, dimension.Time: -2, dimension.Current: -1})
)

// table is the minimum registry content spec.md §4.1 requires, expanded per
// SPEC_FULL.md §12 to the full set the original implementation's test
// vectors exercise.
var table = map[string]Entry{
	// Length
	"m":  {"m", 1, dimLength, true},
	"cm": {"cm", 1e-2, dimLength, false},
	"mm": {"mm", 1e-3, dimLength, false},
	"km": {"km", 1e3, dimLength, false},
	"in": {"in", 0.0254, dimLength, false},
	"ft": {"ft", 0.3048, dimLength, false},
	"yd": {"yd", 0.9144, dimLength, false},
	"mi": {"mi", 1609.344, dimLength, false},

	// Mass. kg is its own base entry (not g scaled by prefix k), per §4.1.
	"kg": {"kg", 1, dimMass, false},
	"g":  {"g", 1e-3, dimMass, true},
	"lb": {"lb", 0.45359237, dimMass, false},
	"oz": {"oz", 0.028349523125, dimMass, false},

	// Time
	"s":   {"s", 1, dimTime, true},
	"ms":  {"ms", 1e-3, dimTime, false},
	"us":  {"us", 1e-6, dimTime, false},
	"ns":  {"ns", 1e-9, dimTime, false},
	"min": {"min", 60, dimTime, false},
	"hr":  {"hr", 3600, dimTime, false},
	"day": {"day", 86400, dimTime, false},

	// Temperature
	"K": {"K", 1, dimTemperature, true},

	// Current
	"A": {"A", 1, dimCurrent, true},

	// Substance
	"mol": {"mol", 1, dimSubstance, true},

	// Luminous intensity
	"cd": {"cd", 1, dimLuminous, true},

	// Angle
	"rad": {"rad", 1, dimAngle, false},
	"deg": {"deg", math.Pi / 180, dimAngle, false},

	// Derived
	"N":   {"N", 1, dimForce, false},
	"J":   {"J", 1, dimEnergy, false},
	"W":   {"W", 1, dimPower, false},
	"Pa":  {"Pa", 1, dimPressure, false},
	"Hz":  {"Hz", 1, dimFrequency, false},
	"C":   {"C", 1, dimCharge, false},
	"V":   {"V", 1, dimVoltage, false},
	"ohm": {"ohm", 1, dimResist, false},
	"F":   {"F", 1, dimCapacit, false},
	"T":   {"T", 1, dimTesla, false},
	"lbf": {"lbf", 4.4482216152605, dimForce, false},

	// Dimensionless
	"":  {"", 1, dimless, false},
	"1": {"1", 1, dimless, false},
}

// prefixes is the full metric prefix table required by spec.md §4.1, symbol
// to decimal exponent.
var prefixes = map[string]float64{
	"Y":  24,
	"Z":  21,
	"E":  18,
	"P":  15,
	"T":  12,
	"G":  9,
	"M":  6,
	"k":  3,
	"h":  2,
	"da": 1,
	"d":  -1,
	"c":  -2,
	"m":  -3,
	"u":  -6,
	"n":  -9,
	"p":  -12,
	"f":  -15,
	"a":  -18,
	"z":  -21,
	"y":  -24,
}

// Prefixes returns a copy of the metric-prefix table (symbol to decimal
// exponent), per spec.md §4.1's requirement that the registry enumerate
// known prefixes.
func Prefixes() map[string]float64 {
	out := make(map[string]float64, len(prefixes))
	for k, v := range prefixes {
		out[k] = v
	}
	return out
}

// Lookup returns the exact registry entry for sym, if any.
func Lookup(sym string) (Entry, bool) {
	e, ok := table[sym]
	return e, ok
}

// PrefixExponent returns the decimal exponent for a metric prefix symbol.
func PrefixExponent(p string) (float64, bool) {
	e, ok := prefixes[p]
	return e, ok
}

// LookupPrefixed tries sym as <prefix><base>, preferring a two-character
// prefix ("da") over a one-character prefix when both could apply, per
// spec.md §4.2's symbol-resolution rule (exact match already tried by the
// caller; this is the fallback path). It returns the prefixed entry, the
// prefix's decimal exponent, and whether a match was found.
func LookupPrefixed(sym string) (Entry, float64, bool) {
	tryPrefix := func(n int) (Entry, float64, bool) {
		if len(sym) <= n {
			return Entry{}, 0, false
		}
		prefix, rest := sym[:n], sym[n:]
		exp, ok := prefixes[prefix]
		if !ok {
			return Entry{}, 0, false
		}
		base, ok := table[rest]
		if !ok || !base.PrefixAllowed {
			return Entry{}, 0, false
		}
		return base, exp, true
	}

	if e, exp, ok := tryPrefix(2); ok {
		return e, exp, true
	}
	if e, exp, ok := tryPrefix(1); ok {
		return e, exp, true
	}
	return Entry{}, 0, false
}
