package world

import (
	"errors"

	"gridcast/internal/core"
	"gridcast/pkg/geom"
)

// ErrNoOpenCells is returned when a level has nowhere to stand.
var ErrNoOpenCells = errors.New("level has no open cells")

// RandomViewpoints returns n player poses at uniformly random positions
// inside open cells of w, each facing a random direction.
func RandomViewpoints(w *World, rng *core.RNG, n int) ([]Player, error) {
	var open []core.Point
	g := w.Level.Grid
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			if g.At(x, y) != core.TileWall {
				open = append(open, core.Point{X: x, Y: y})
			}
		}
	}
	if len(open) == 0 {
		return nil, ErrNoOpenCells
	}
	out := make([]Player, n)
	for i := range out {
		cell := open[rng.IntN(len(open))]
		pos := geom.V(float64(cell.X)+rng.Float64(), float64(cell.Y)+rng.Float64()).Mul(w.CellSize)
		out[i] = Player{Pos: pos, Facing: geom.FromAngle(rng.Angle())}
	}
	return out, nil
}
