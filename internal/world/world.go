package world

import (
	"gridcast/internal/core"
	"gridcast/pkg/geom"
	"gridcast/pkg/raycast"
)

// World is a level laid out on a grid of CellSize world units.
type World struct {
	Level    *core.Level
	Walls    *raycast.Walls
	CellSize float64
}

// New places lvl on a grid of cellSize units.
func New(lvl *core.Level, cellSize float64) *World {
	if cellSize <= 0 {
		cellSize = raycast.DefaultCellSize
	}
	pts := lvl.Walls()
	cells := make([]raycast.Cell, len(pts))
	for i, p := range pts {
		cells[i] = raycast.Cell{Col: p.X, Row: p.Y}
	}
	return &World{Level: lvl, Walls: raycast.NewWalls(cellSize, cells...), CellSize: cellSize}
}

// Spawn returns the centre of the level's spawn cell, or the origin when the
// level has none.
func (w *World) Spawn() geom.Vec2 {
	if !w.Level.HasSpawn {
		return geom.Zero
	}
	corner := geom.V(float64(w.Level.Spawn.X), float64(w.Level.Spawn.Y)).Mul(w.CellSize)
	return corner.Add(geom.Splat(w.CellSize).Half())
}

// SpawnFacing returns the level's initial view direction.
func (w *World) SpawnFacing() geom.Vec2 {
	return geom.FromAngle(geom.Radians(w.Level.Facing))
}

// Bounds returns the world rectangle covered by the level grid.
func (w *World) Bounds() geom.Rect {
	s := w.Level.Size()
	return geom.R(0, 0, float64(s.W)*w.CellSize, float64(s.H)*w.CellSize)
}

// Blocked reports whether p lies inside a wall cell, edges included.
func (w *World) Blocked(p geom.Vec2) bool { return w.Walls.Contains(p) }
