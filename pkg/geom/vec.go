package geom

import (
	"fmt"
	"math"
)

// Vec2 is an immutable 2D vector. Every operation returns a new value, and
// two vectors compare equal with == when both components match, so a Vec2 can
// be used directly as a map key.
type Vec2 struct {
	X, Y float64
}

// Direction constants in screen space, where y grows downwards.
var (
	Zero  = Vec2{}
	Up    = Vec2{0, -1}
	Down  = Vec2{0, 1}
	Left  = Vec2{-1, 0}
	Right = Vec2{1, 0}
)

// V is shorthand for Vec2{x, y}.
func V(x, y float64) Vec2 { return Vec2{X: x, Y: y} }

// Splat returns a vector with both components set to v.
func Splat(v float64) Vec2 { return Vec2{X: v, Y: v} }

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Mul scales v by s.
func (v Vec2) Mul(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }

// Half returns v scaled by one half.
func (v Vec2) Half() Vec2 { return v.Mul(0.5) }

// Dot returns the dot product of v and o.
func (v Vec2) Dot(o Vec2) float64 { return v.X*o.X + v.Y*o.Y }

// Len returns the magnitude of v.
func (v Vec2) Len() float64 { return math.Hypot(v.X, v.Y) }

// Normalize returns v scaled to unit length. The result is undefined for the
// zero vector; callers must guard against it.
func (v Vec2) Normalize() Vec2 {
	l := v.Len()
	return Vec2{v.X / l, v.Y / l}
}

// Rotate rotates v by rad radians using the standard rotation matrix. With y
// pointing down a positive angle turns clockwise on screen.
func (v Vec2) Rotate(rad float64) Vec2 {
	sin, cos := math.Sincos(rad)
	return Vec2{v.X*cos - v.Y*sin, v.X*sin + v.Y*cos}
}

// RotateDeg rotates v by deg degrees.
func (v Vec2) RotateDeg(deg float64) Vec2 { return v.Rotate(Radians(deg)) }

// RotateAround rotates v about pivot by rad radians.
func (v Vec2) RotateAround(pivot Vec2, rad float64) Vec2 {
	return v.Sub(pivot).Rotate(rad).Add(pivot)
}

// Angle returns atan2(y, x) in (-π, π].
func (v Vec2) Angle() float64 { return math.Atan2(v.Y, v.X) }

// Dist returns the distance between v and o.
func (v Vec2) Dist(o Vec2) float64 { return v.Sub(o).Len() }

// IsZero reports whether both components are zero.
func (v Vec2) IsZero() bool { return v.X == 0 && v.Y == 0 }

func (v Vec2) String() string { return fmt.Sprintf("(%.3f, %.3f)", v.X, v.Y) }

// Bearing returns atan2(p1.y-p2.y, p1.x-p2.x): the direction from p2 towards p1.
func Bearing(p1, p2 Vec2) float64 { return math.Atan2(p1.Y-p2.Y, p1.X-p2.X) }

// FromAngle returns the unit vector pointing at rad.
func FromAngle(rad float64) Vec2 {
	sin, cos := math.Sincos(rad)
	return Vec2{cos, sin}
}

// Radians converts degrees to radians.
func Radians(deg float64) float64 { return deg * math.Pi / 180 }

// Degrees converts radians to degrees.
func Degrees(rad float64) float64 { return rad * 180 / math.Pi }
