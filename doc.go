// Package dv provides dimensional quantities: binary64 magnitudes tagged
// with a physical-dimension vector, constructed from textual unit
// expressions such as "m/s^2" or "kg*m^2/s^3".
//
// Design policy:
//   - Keep only the public surface in the root package; the unit registry,
//     unit-expression grammar, and dimensional algebra live under internal/.
//   - A Quantity is an immutable value; every operation returns a new one.
//   - Operations that violate dimensional analysis return a *Error rather
//     than producing a nonsensical result.
//
// Typical usage:
//
//	d := dv.MustNew(10, "m")
//	t := dv.MustNew(2, "s")
//	speed := dv.Div(d, t)
//	mph, err := speed.ValueIn("mi/hr")
package dv
