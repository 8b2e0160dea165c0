package geom

import "math"

// AxisTolerance is how close sin or cos of an angle must be to zero for the
// angle to be treated as lying exactly on an axis.
const AxisTolerance = 1e-12

// Tan returns tan(a) with the axis cases resolved exactly: angles on the x
// axis yield 0 and angles on the y axis yield ±Inf instead of the huge finite
// values math.Tan produces near π/2.
func Tan(a float64) float64 {
	sin, cos := math.Sincos(a)
	switch {
	case math.Abs(sin) <= AxisTolerance:
		return 0
	case math.Abs(cos) <= AxisTolerance:
		return math.Copysign(math.Inf(1), sin)
	}
	return sin / cos
}

// Cotan returns cot(a) with the same axis handling as Tan: angles on the y
// axis yield 0 and angles on the x axis yield ±Inf.
func Cotan(a float64) float64 {
	sin, cos := math.Sincos(a)
	switch {
	case math.Abs(cos) <= AxisTolerance:
		return 0
	case math.Abs(sin) <= AxisTolerance:
		return math.Copysign(math.Inf(1), cos)
	}
	return cos / sin
}

// Along returns slope*d, the offset travelled along one axis while covering d
// on the other. A zero distance yields zero even for an infinite slope, so an
// origin already on the target line never produces NaN.
func Along(slope, d float64) float64 {
	if d == 0 {
		return 0
	}
	return slope * d
}

// Clamp limits v to [lo, hi]. Infinite inputs land on the matching bound.
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
