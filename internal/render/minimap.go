package render

import (
	"image/color"
	"math"

	"gridcast/pkg/geom"
	"gridcast/pkg/raycast"
)

// Minimap placement and sizes in screen pixels.
const (
	MinimapX      = 20
	MinimapY      = 20
	MinimapWidth  = 200
	MinimapHeight = 120
	FacingLength  = 20
	MarkerRadius  = 2
	CentreRadius  = 4
)

// Minimap colours.
var (
	MinimapBackground = color.RGBA{R: 173, G: 216, B: 230, A: 255}
	MinimapWall       = color.RGBA{R: 139, A: 255}
	MinimapGrid       = color.RGBA{R: 60, G: 60, B: 60, A: 255}
	MinimapRay        = color.RGBA{R: 255, A: 255}
	MinimapMarker     = color.RGBA{G: 255, B: 255, A: 255}
	MinimapFacing     = color.RGBA{B: 255, A: 255}
	MinimapCentre     = color.RGBA{R: 255, A: 255}
)

// Minimap maps a window of the world, centred on Camera, onto a fixed screen
// panel one world unit per pixel.
type Minimap struct {
	Offset   geom.Vec2
	Size     geom.Vec2
	Camera   geom.Vec2
	CellSize float64
}

// NewMinimap returns the standard top-left panel centred on camera.
func NewMinimap(camera geom.Vec2, cellSize float64) Minimap {
	return Minimap{
		Offset:   geom.V(MinimapX, MinimapY),
		Size:     geom.V(MinimapWidth, MinimapHeight),
		Camera:   camera,
		CellSize: cellSize,
	}
}

// SceneBounds returns the panel rectangle in screen coordinates.
func (m Minimap) SceneBounds() geom.Rect {
	return geom.R(m.Offset.X, m.Offset.Y, m.Size.X, m.Size.Y)
}

// WorldBounds returns the world rectangle visible in the panel.
func (m Minimap) WorldBounds() geom.Rect {
	corner := m.Camera.Sub(m.Size.Half())
	return geom.R(corner.X, corner.Y, m.Size.X, m.Size.Y)
}

// Centre returns the panel centre, where the camera is drawn.
func (m Minimap) Centre() geom.Vec2 { return m.Offset.Add(m.Size.Half()) }

// WorldToScene converts a world point to screen coordinates.
func (m Minimap) WorldToScene(p geom.Vec2) geom.Vec2 {
	return p.Sub(m.Camera).Add(m.Centre())
}

// SceneToWorld converts a screen point to world coordinates.
func (m Minimap) SceneToWorld(p geom.Vec2) geom.Vec2 {
	return p.Sub(m.Centre()).Add(m.Camera)
}

// Walls returns the screen rectangles of the wall cells visible in the panel,
// clipped to its edges.
func (m Minimap) Walls(walls *raycast.Walls) []geom.Rect {
	view := m.WorldBounds()
	var out []geom.Rect
	for _, c := range walls.Cells() {
		clipped, ok := geom.Intersection(view, walls.Rect(c))
		if !ok {
			continue
		}
		corner := m.WorldToScene(clipped.Min)
		out = append(out, geom.R(corner.X, corner.Y, clipped.W(), clipped.H()))
	}
	return out
}

// GridLines returns the screen x positions of vertical grid lines and the
// screen y positions of horizontal ones inside the panel.
func (m Minimap) GridLines() (xs, ys []float64) {
	if m.CellSize <= 0 {
		return nil, nil
	}
	view := m.WorldBounds()
	for x := math.Ceil(view.Min.X/m.CellSize) * m.CellSize; x <= view.Max.X; x += m.CellSize {
		xs = append(xs, x-m.Camera.X+m.Centre().X)
	}
	for y := math.Ceil(view.Min.Y/m.CellSize) * m.CellSize; y <= view.Max.Y; y += m.CellSize {
		ys = append(ys, y-m.Camera.Y+m.Centre().Y)
	}
	return xs, ys
}

// Segment is a line in screen coordinates.
type Segment struct {
	From, To geom.Vec2
	// Hit is set when To marks a wall contact inside the panel.
	Hit bool
}

// Rays returns one segment per sample, from the ray origin to its contact
// point. Rays that end outside the panel, or never hit anything, are cut
// where they cross the panel edge.
func (m Minimap) Rays(fan []raycast.Sample) []Segment {
	bounds := m.SceneBounds()
	out := make([]Segment, 0, len(fan))
	for _, s := range fan {
		from := m.WorldToScene(s.Ray.Origin())
		to := m.WorldToScene(s.Ray.CollisionPoint())
		hit := s.Ray.Status() == raycast.Colliding
		if !hit || !bounds.Contains(to) {
			to, _ = raycast.Exit(from, s.Ray.Direction(), bounds)
			hit = false
		}
		out = append(out, Segment{From: from, To: to, Hit: hit})
	}
	return out
}

// Facing returns the heading indicator drawn from the panel centre.
func (m Minimap) Facing(dir geom.Vec2) Segment {
	c := m.Centre()
	return Segment{From: c, To: c.Add(dir.Mul(FacingLength))}
}
