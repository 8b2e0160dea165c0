//go:build ebiten

package ui

import (
	"image/color"

	"gridcast/internal/render"
	"gridcast/internal/world"
	"gridcast/pkg/geom"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// Overlay draws the minimap and the status readouts over the view.
type Overlay struct {
	state    *world.State
	visible  bool
	showGrid bool
	showRays bool
}

// NewOverlay constructs an overlay for the given state.
func NewOverlay(state *world.State) *Overlay {
	return &Overlay{state: state, visible: true, showGrid: true, showRays: true}
}

// Update handles the overlay toggles.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		o.visible = !o.visible
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		o.showGrid = !o.showGrid
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		o.showRays = !o.showRays
	}
}

// Draw paints the minimap panel and readouts. mouse is the cursor in screen
// coordinates.
func (o *Overlay) Draw(screen *ebiten.Image, mouse geom.Vec2, fps int) {
	if o == nil || !o.visible {
		return
	}
	p := o.state.Player()
	m := render.NewMinimap(p.Pos, o.state.World().CellSize)
	bounds := m.SceneBounds()

	fillRect(screen, bounds, render.MinimapBackground)
	for _, r := range m.Walls(o.state.World().Walls) {
		fillRect(screen, r, render.MinimapWall)
	}
	if o.showRays {
		for _, seg := range m.Rays(o.state.Fan()) {
			strokeSegment(screen, seg, 2, render.MinimapRay)
			vector.DrawFilledCircle(screen, float32(seg.To.X), float32(seg.To.Y), render.MarkerRadius, render.MinimapMarker, true)
		}
	}
	if o.showGrid {
		xs, ys := m.GridLines()
		for _, x := range xs {
			vector.StrokeLine(screen, float32(x), float32(bounds.Min.Y), float32(x), float32(bounds.Max.Y), 1, render.MinimapGrid, false)
		}
		for _, y := range ys {
			vector.StrokeLine(screen, float32(bounds.Min.X), float32(y), float32(bounds.Max.X), float32(y), 1, render.MinimapGrid, false)
		}
	}
	strokeSegment(screen, m.Facing(p.Facing), 2, render.MinimapFacing)
	c := m.Centre()
	vector.DrawFilledCircle(screen, float32(c.X), float32(c.Y), render.CentreRadius, render.MinimapCentre, true)

	origin := render.ReadoutOrigin(m)
	for i, line := range render.Readouts(m, mouse, p.Facing, fps) {
		y := int(origin.Y) + i*render.ReadoutSpacing
		text.Draw(screen, line, basicfont.Face7x13, int(origin.X), y, color.White)
	}
}

func fillRect(dst *ebiten.Image, r geom.Rect, col color.Color) {
	vector.FillRect(dst, float32(r.Min.X), float32(r.Min.Y), float32(r.W()), float32(r.H()), col, false)
}

func strokeSegment(dst *ebiten.Image, s render.Segment, width float32, col color.Color) {
	vector.StrokeLine(dst, float32(s.From.X), float32(s.From.Y), float32(s.To.X), float32(s.To.Y), width, col, true)
}
