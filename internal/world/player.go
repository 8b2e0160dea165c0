package world

import (
	"math"

	"gridcast/pkg/geom"
	"gridcast/pkg/raycast"
)

// Player is the viewer: a position and a unit facing direction.
type Player struct {
	Pos    geom.Vec2
	Facing geom.Vec2
}

// Heading returns the facing angle in radians.
func (p Player) Heading() float64 { return p.Facing.Angle() }

// Step applies one frame of input. Movement keys combine relative to the
// facing direction and the sum is scaled by dt*speed. The move is dropped
// when the destination lies inside a wall. Turning happens after the move at
// turnDeg degrees per frame.
func (p Player) Step(dt float64, in Input, speed, turnDeg float64, walls raycast.Occluder) Player {
	dir := geom.Zero
	if in.Forward {
		dir = dir.Add(p.Facing)
	}
	if in.Back {
		dir = dir.Add(p.Facing.Rotate(math.Pi))
	}
	if in.StrafeLeft {
		dir = dir.Add(p.Facing.Rotate(-math.Pi / 2))
	}
	if in.StrafeRight {
		dir = dir.Add(p.Facing.Rotate(math.Pi / 2))
	}
	if dir.Len() > 1e-9 {
		next := p.Pos.Add(dir.Mul(dt * speed))
		if walls == nil || !walls.Contains(next) {
			p.Pos = next
		}
	}

	turn := 0.0
	if in.TurnRight {
		turn += turnDeg
	}
	if in.TurnLeft {
		turn -= turnDeg
	}
	if turn != 0 {
		p.Facing = p.Facing.RotateDeg(turn).Normalize()
	}
	return p
}
