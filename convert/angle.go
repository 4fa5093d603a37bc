package convert

import (
	"math"

	"github.com/arloliu/unitcode/unit"
)

// pi is math.Pi rounded to float64 so that derived factors such as 1/pi are
// computed in float64 arithmetic rather than as exact constants.
var pi = math.Pi

// DegreeToRadian converts degrees to radians.
func DegreeToRadian(x float64) float64 {
	return (x / 180.0) * pi
}

// RadianToDegree converts radians to degrees.
func RadianToDegree(x float64) float64 {
	return (x * 180.0) * (1.0 / pi)
}

// NormalizeBase wraps x into [0, base). Negative inputs are shifted by one
// base after the remainder so the result never carries the dividend's sign.
func NormalizeBase(base, x float64) float64 {
	if x >= 0.0 {
		if x < base {
			return x
		}

		return math.Mod(x, base)
	}

	return math.Mod(x, base) + base
}

// NormalizeRadian wraps x into [0, 2π).
func NormalizeRadian(x float64) float64 {
	return NormalizeBase(pi*2, x)
}

// NormalizeDegree wraps x into [0, 360).
func NormalizeDegree(x float64) float64 {
	return NormalizeBase(360.0, x)
}

// CartesianToCompassRadian turns a counter-clockwise angle from east into a
// clockwise bearing from north.
func CartesianToCompassRadian(x float64) float64 {
	return NormalizeRadian(pi*2.5 - x)
}

// CompassToCartesianRadian is the inverse of CartesianToCompassRadian; the
// reflection is its own inverse after normalisation.
func CompassToCartesianRadian(x float64) float64 {
	return CartesianToCompassRadian(x)
}

// CartesianToCompassDegree is CartesianToCompassRadian in degrees.
func CartesianToCompassDegree(x float64) float64 {
	return NormalizeDegree(450.0 - x)
}

// CompassToCartesianDegree is CompassToCartesianRadian in degrees.
func CompassToCartesianDegree(x float64) float64 {
	return CartesianToCompassDegree(x)
}

func convertAngle(value float64, from, to unit.Code) float64 {
	switch from.AngleUnit() {
	case unit.Degree:
		value = DegreeToRadian(value)
	case unit.Arcsecond:
		value = DegreeToRadian(value / 3600.0)
	}

	if from.IsCompass() {
		value = CompassToCartesianRadian(value)
	}
	if to.IsCompass() {
		value = CartesianToCompassRadian(value)
	}

	switch to.AngleUnit() {
	case unit.Degree:
		value = RadianToDegree(value)
	case unit.Arcsecond:
		value = RadianToDegree(value) * 3600.0
	}

	return value
}
