package raycast

import (
	"cmp"
	"math"
	"slices"

	"gridcast/pkg/geom"
)

// Occluder answers whether a world point lies inside something opaque.
type Occluder interface {
	Contains(p geom.Vec2) bool
}

// Cell addresses one square of the world grid.
type Cell struct {
	Col, Row int
}

// Walls is an immutable snapshot of occupied grid cells. Build a new snapshot
// instead of mutating one that casts may be reading concurrently.
type Walls struct {
	size  float64
	cells map[Cell]struct{}
}

// NewWalls returns a snapshot of the given cells for a grid of cellSize.
// cellSize must be positive.
func NewWalls(cellSize float64, cells ...Cell) *Walls {
	w := &Walls{size: cellSize, cells: make(map[Cell]struct{}, len(cells))}
	for _, c := range cells {
		w.cells[c] = struct{}{}
	}
	return w
}

// With returns a new snapshot holding w's cells plus extra.
func (w *Walls) With(extra ...Cell) *Walls {
	next := NewWalls(w.size, extra...)
	for c := range w.cells {
		next.cells[c] = struct{}{}
	}
	return next
}

// CellSize returns the side length of a cell in world units.
func (w *Walls) CellSize() float64 { return w.size }

// Len returns the number of occupied cells.
func (w *Walls) Len() int { return len(w.cells) }

// Has reports whether c is occupied.
func (w *Walls) Has(c Cell) bool {
	_, ok := w.cells[c]
	return ok
}

// Rect returns the world rectangle covered by c.
func (w *Walls) Rect(c Cell) geom.Rect {
	return geom.Square(geom.V(float64(c.Col)*w.size, float64(c.Row)*w.size), w.size)
}

// CellAt returns the cell whose half-open extent contains p.
func (w *Walls) CellAt(p geom.Vec2) Cell {
	return Cell{Col: int(math.Floor(p.X / w.size)), Row: int(math.Floor(p.Y / w.size))}
}

// Cells returns the occupied cells ordered by row, then column.
func (w *Walls) Cells() []Cell {
	out := make([]Cell, 0, len(w.cells))
	for c := range w.cells {
		out = append(out, c)
	}
	slices.SortFunc(out, func(a, b Cell) int {
		if a.Row != b.Row {
			return cmp.Compare(a.Row, b.Row)
		}
		return cmp.Compare(a.Col, b.Col)
	})
	return out
}

// Contains reports whether p lies inside the closed rectangle of any
// occupied cell. A point on a shared edge or corner is tested against every
// cell touching it, so the neighbourhood of the enclosing cell is searched.
func (w *Walls) Contains(p geom.Vec2) bool {
	if len(w.cells) == 0 {
		return false
	}
	home := w.CellAt(p)
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			c := Cell{Col: home.Col + dc, Row: home.Row + dr}
			if _, ok := w.cells[c]; ok && w.Rect(c).Contains(p) {
				return true
			}
		}
	}
	return false
}
