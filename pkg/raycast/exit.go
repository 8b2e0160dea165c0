package raycast

import (
	"gridcast/pkg/geom"
)

// Edge names the side of a cell a ray leaves through.
type Edge uint8

const (
	EdgeRight Edge = iota
	EdgeBottom
	EdgeLeft
	EdgeTop
)

func (e Edge) String() string {
	switch e {
	case EdgeRight:
		return "right"
	case EdgeBottom:
		return "bottom"
	case EdgeLeft:
		return "left"
	case EdgeTop:
		return "top"
	default:
		return "unknown"
	}
}

// Bearings holds the bearings from a point to the four corners of a cell.
type Bearings struct {
	TopLeft, TopRight, BottomRight, BottomLeft float64
}

// CornerBearings measures the bearing from p to each corner of cell.
func CornerBearings(p geom.Vec2, cell geom.Rect) Bearings {
	return Bearings{
		TopLeft:     geom.Bearing(cell.TopLeft(), p),
		TopRight:    geom.Bearing(cell.TopRight(), p),
		BottomRight: geom.Bearing(cell.BottomRight(), p),
		BottomLeft:  geom.Bearing(cell.BottomLeft(), p),
	}
}

// Classify picks the edge a ray heading along dir, at angle dir.Angle(),
// leaves through. In increasing angle the arcs are [TR, BR) right,
// [BR, BL) bottom, [BL, TL+2π) left and [TL, TR) top, so an angle exactly on
// a corner bearing goes to the arc that starts at that corner.
//
// A ray can only leave through the two edges facing its quadrant, and the
// bearing of the corner between them is the only bound that separates them.
// Axis-aligned directions leave straight through the edge they face.
func (b Bearings) Classify(dir geom.Vec2, angle float64) Edge {
	switch {
	case dir.Y == 0:
		if dir.X < 0 {
			return EdgeLeft
		}
		return EdgeRight
	case dir.X == 0:
		if dir.Y < 0 {
			return EdgeTop
		}
		return EdgeBottom
	case dir.X > 0 && dir.Y > 0:
		if angle < b.BottomRight {
			return EdgeRight
		}
		return EdgeBottom
	case dir.X < 0 && dir.Y > 0:
		if angle < b.BottomLeft {
			return EdgeBottom
		}
		return EdgeLeft
	case dir.X < 0 && dir.Y < 0:
		if angle < b.TopLeft {
			return EdgeLeft
		}
		return EdgeTop
	default:
		if angle < b.TopRight {
			return EdgeTop
		}
		return EdgeRight
	}
}

// Exit returns where a ray starting at p inside cell and heading along dir
// crosses the cell boundary, and which edge it crosses. The crossing is the
// exact line intersection, found from tan/cot of the direction angle scaled
// by the perpendicular distance to the edge, and always lies on that edge.
func Exit(p, dir geom.Vec2, cell geom.Rect) (geom.Vec2, Edge) {
	angle := dir.Angle()
	edge := CornerBearings(p, cell).Classify(dir, angle)
	switch edge {
	case EdgeRight:
		y := p.Y + geom.Along(geom.Tan(angle), cell.Max.X-p.X)
		return geom.V(cell.Max.X, geom.Clamp(y, cell.Min.Y, cell.Max.Y)), edge
	case EdgeLeft:
		y := p.Y - geom.Along(geom.Tan(angle), p.X-cell.Min.X)
		return geom.V(cell.Min.X, geom.Clamp(y, cell.Min.Y, cell.Max.Y)), edge
	case EdgeTop:
		x := p.X - geom.Along(geom.Cotan(angle), p.Y-cell.Min.Y)
		return geom.V(geom.Clamp(x, cell.Min.X, cell.Max.X), cell.Min.Y), edge
	default:
		x := p.X + geom.Along(geom.Cotan(angle), cell.Max.Y-p.Y)
		return geom.V(geom.Clamp(x, cell.Min.X, cell.Max.X), cell.Max.Y), edge
	}
}

// cellAhead returns the grid cell containing p. When p lies exactly on a
// grid line the zero-width cell CellBounds reports is widened towards the
// direction of travel, so the ray always has a far edge to reach.
func cellAhead(p, dir geom.Vec2, size float64) geom.Rect {
	c := geom.CellBounds(p, size)
	if c.Min.X == c.Max.X {
		if dir.X < 0 {
			c.Min.X -= size
		} else {
			c.Max.X += size
		}
	}
	if c.Min.Y == c.Max.Y {
		if dir.Y < 0 {
			c.Min.Y -= size
		} else {
			c.Max.Y += size
		}
	}
	return c
}
