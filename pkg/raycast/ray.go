package raycast

import (
	"math"

	"gridcast/pkg/geom"
)

// Status is the state of a ray during and after a cast.
type Status uint8

const (
	// Shooting means the ray is still travelling through open cells.
	Shooting Status = iota
	// Colliding means the ray stopped at a wall.
	Colliding
	// Infinite means the ray reached the distance cap without hitting a wall.
	Infinite
)

func (s Status) String() string {
	switch s {
	case Shooting:
		return "shooting"
	case Colliding:
		return "colliding"
	case Infinite:
		return "infinite"
	default:
		return "unknown"
	}
}

// Ray is an immutable cast result. The direction is fixed at construction;
// every stepping iteration produces a new Ray value rather than modifying one.
type Ray struct {
	status    Status
	origin    geom.Vec2
	direction geom.Vec2
	collision geom.Vec2
	cap       float64
}

// NewRay returns a shooting ray whose collision point starts at the origin.
// direction must be unit length.
func NewRay(origin, direction geom.Vec2, capDistance float64) Ray {
	return Ray{
		status:    Shooting,
		origin:    origin,
		direction: direction,
		collision: origin,
		cap:       capDistance,
	}
}

// Status reports where the ray is in its lifecycle.
func (r Ray) Status() Status { return r.status }

// Origin returns the point the ray was cast from.
func (r Ray) Origin() geom.Vec2 { return r.origin }

// Direction returns the unit direction of travel.
func (r Ray) Direction() geom.Vec2 { return r.direction }

// CollisionPoint returns the last boundary crossing: the wall contact point
// for a colliding ray.
func (r Ray) CollisionPoint() geom.Vec2 { return r.collision }

// Cap returns the distance cap the ray was cast with.
func (r Ray) Cap() float64 { return r.cap }

// Distance is the cap for an infinite ray and otherwise the distance from
// origin to collision point, never more than the cap.
func (r Ray) Distance() float64 {
	if r.status == Infinite {
		return r.cap
	}
	return math.Min(r.origin.Dist(r.collision), r.cap)
}

// End returns the point a renderer should draw the ray to: the collision
// point, or the point at the cap distance for an infinite ray.
func (r Ray) End() geom.Vec2 {
	if r.status == Infinite {
		return r.origin.Add(r.direction.Mul(r.cap))
	}
	return r.collision
}

// advance returns the next stepping state: a shooting ray at next that last
// crossed a boundary at exit.
func (r Ray) advance(next, exit geom.Vec2) Ray {
	return Ray{status: Shooting, origin: next, direction: r.direction, collision: exit, cap: r.cap}
}

// resolve returns r with a terminal status.
func (r Ray) resolve(s Status) Ray {
	r.status = s
	return r
}

// terminal returns the result ray for a cast that started at r: r's origin
// with the final status and contact point of the stepping state last.
func (r Ray) terminal(last Ray) Ray {
	return Ray{status: last.status, origin: r.origin, direction: r.direction, collision: last.collision, cap: r.cap}
}
