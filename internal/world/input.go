package world

import "gridcast/pkg/geom"

// Input is the control state sampled for one frame.
type Input struct {
	Forward     bool
	Back        bool
	StrafeLeft  bool
	StrafeRight bool
	TurnLeft    bool
	TurnRight   bool

	// Mouse is the cursor position in screen coordinates.
	Mouse geom.Vec2
}

// Moving reports whether any movement key is held.
func (in Input) Moving() bool {
	return in.Forward || in.Back || in.StrafeLeft || in.StrafeRight
}
