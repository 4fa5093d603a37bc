// Package convert converts numeric values between unit codes.
//
// Conversion is a pure function of (value, from, to). There is no error path:
// when the two codes do not resolve into the same dimension (or into a
// special-cased family such as percent or angle), the value is returned
// unchanged. Results are never rounded; formatting is left to the caller.
//
// # Algorithms
//
// Ratio dimensions (distance, area, volume, mass, energy, pressure, fuel
// consumption, intensity) use a table of "base units per 1 unit":
//
//	result = value * scale[from] / scale[to]
//
// Temperature is affine and goes through Kelvin:
//
//	kelvin = (value + offset[from]) / scale[from]
//	result = kelvin * scale[to] - offset[to]
//
// Percent codes normalise to a plain decimal and denormalise with per-member
// rules. Angles are moved into cartesian radians, rotated, and moved back.
//
// A time-rate sub-code on either side is resolved first, before the remaining
// spatial part is converted. Ratio codes (non-zero secondary half) convert the
// denominator with the direction inverted, then the numerator:
//
//	// 1 BTU/lb in kJ/kg
//	v := convert.Convert(1, unit.BTU.Per(unit.LB), unit.Kilojoule.Per(unit.KG))
//
// # Thread Safety
//
// All functions are pure and safe for concurrent use.
package convert
