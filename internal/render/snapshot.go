package render

import (
	"fmt"
	"image/color"
	"io"

	"gridcast/internal/world"
	"gridcast/pkg/geom"
	"gridcast/pkg/raycast"

	"github.com/gogpu/gg"
)

// Snapshot renders the current frame of s at w by h pixels: the first-person
// view with the minimap drawn over it. The caller owns the returned context
// and must Close it.
func Snapshot(s *world.State, w, h int) (*gg.Context, error) {
	dc := gg.NewContextForImage(Frame(s.Fan(), w, h))
	p := s.Player()
	m := NewMinimap(p.Pos, s.World().CellSize)
	if err := drawMinimap(dc, m, s.World().Walls, s.Fan(), p.Facing); err != nil {
		_ = dc.Close()
		return nil, err
	}
	return dc, nil
}

// WriteSnapshot renders s and encodes it to out as PNG.
func WriteSnapshot(out io.Writer, s *world.State, w, h int) error {
	dc, err := Snapshot(s, w, h)
	if err != nil {
		return err
	}
	defer dc.Close()
	if err := dc.EncodePNG(out); err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	return nil
}

func drawMinimap(dc *gg.Context, m Minimap, walls *raycast.Walls, fan []raycast.Sample, facing geom.Vec2) error {
	bounds := m.SceneBounds()
	if err := fillRect(dc, bounds.Min.X, bounds.Min.Y, bounds.W(), bounds.H(), MinimapBackground); err != nil {
		return err
	}
	for _, r := range m.Walls(walls) {
		if err := fillRect(dc, r.Min.X, r.Min.Y, r.W(), r.H(), MinimapWall); err != nil {
			return err
		}
	}
	for _, seg := range m.Rays(fan) {
		if err := strokeLine(dc, seg, 2, MinimapRay); err != nil {
			return err
		}
		dc.SetColor(MinimapMarker)
		dc.DrawCircle(seg.To.X, seg.To.Y, MarkerRadius)
		if err := dc.Fill(); err != nil {
			return fmt.Errorf("draw ray marker: %w", err)
		}
	}
	xs, ys := m.GridLines()
	for _, x := range xs {
		if err := strokeLine(dc, Segment{From: geom.V(x, bounds.Min.Y), To: geom.V(x, bounds.Max.Y)}, 1, MinimapGrid); err != nil {
			return err
		}
	}
	for _, y := range ys {
		if err := strokeLine(dc, Segment{From: geom.V(bounds.Min.X, y), To: geom.V(bounds.Max.X, y)}, 1, MinimapGrid); err != nil {
			return err
		}
	}
	if err := strokeLine(dc, m.Facing(facing), 2, MinimapFacing); err != nil {
		return err
	}
	c := m.Centre()
	dc.SetColor(MinimapCentre)
	dc.DrawCircle(c.X, c.Y, CentreRadius)
	if err := dc.Fill(); err != nil {
		return fmt.Errorf("draw camera marker: %w", err)
	}
	return nil
}

func fillRect(dc *gg.Context, x, y, w, h float64, col color.RGBA) error {
	dc.SetColor(col)
	dc.DrawRectangle(x, y, w, h)
	if err := dc.Fill(); err != nil {
		return fmt.Errorf("fill rect: %w", err)
	}
	return nil
}

func strokeLine(dc *gg.Context, seg Segment, width float64, col color.RGBA) error {
	dc.SetColor(col)
	dc.SetLineWidth(width)
	dc.DrawLine(seg.From.X, seg.From.Y, seg.To.X, seg.To.Y)
	if err := dc.Stroke(); err != nil {
		return fmt.Errorf("stroke line: %w", err)
	}
	return nil
}
