package geom

import "math"

// floorMod returns n mod m with the sign of m, so negative coordinates map to
// the cell that actually encloses them rather than the one truncation picks.
func floorMod(n, m float64) float64 {
	return math.Mod(math.Mod(n, m)+m, m)
}

// NearestMultipleBelow returns the largest multiple of m that is <= n: the
// min edge of the size-m grid cell containing n. m must be positive.
func NearestMultipleBelow(n, m float64) float64 {
	r := floorMod(n, m)
	if r == 0 {
		return n
	}
	return n - r
}

// NearestMultipleAbove returns the smallest multiple of m that is >= n: the
// max edge of the size-m grid cell containing n. m must be positive.
func NearestMultipleAbove(n, m float64) float64 {
	r := floorMod(n, m)
	if r == 0 {
		return n
	}
	return n + (m - r)
}

// Rect is an axis-aligned rectangle spanning Min to Max inclusive.
type Rect struct {
	Min, Max Vec2
}

// R builds a rectangle from its top-left corner and size.
func R(x, y, w, h float64) Rect {
	return Rect{Min: Vec2{x, y}, Max: Vec2{x + w, y + h}}
}

// Square returns the size*size rectangle whose top-left corner is pos.
func Square(pos Vec2, size float64) Rect {
	return R(pos.X, pos.Y, size, size)
}

// CellBounds returns the bounds of the size-m grid cell containing p. When a
// coordinate sits exactly on a grid line the cell collapses to zero extent on
// that axis.
func CellBounds(p Vec2, m float64) Rect {
	return Rect{
		Min: Vec2{NearestMultipleBelow(p.X, m), NearestMultipleBelow(p.Y, m)},
		Max: Vec2{NearestMultipleAbove(p.X, m), NearestMultipleAbove(p.Y, m)},
	}
}

// W returns the rectangle's width.
func (r Rect) W() float64 { return r.Max.X - r.Min.X }

// H returns the rectangle's height.
func (r Rect) H() float64 { return r.Max.Y - r.Min.Y }

// Center returns the midpoint of r.
func (r Rect) Center() Vec2 { return r.Min.Add(r.Max).Half() }

// TopLeft, TopRight, BottomRight and BottomLeft return the corners of r in
// screen orientation.
func (r Rect) TopLeft() Vec2     { return r.Min }
func (r Rect) TopRight() Vec2    { return Vec2{r.Max.X, r.Min.Y} }
func (r Rect) BottomRight() Vec2 { return r.Max }
func (r Rect) BottomLeft() Vec2  { return Vec2{r.Min.X, r.Max.Y} }

// Contains reports whether p lies inside r. Both bounds are closed, so a point
// exactly on an edge is contained.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// Intersection returns the overlap of a and b. ok is false when the overlap
// has no area.
func Intersection(a, b Rect) (Rect, bool) {
	xOverlap := math.Max(0, math.Min(a.Max.X, b.Max.X)-math.Max(a.Min.X, b.Min.X))
	yOverlap := math.Max(0, math.Min(a.Max.Y, b.Max.Y)-math.Max(a.Min.Y, b.Min.Y))
	if xOverlap <= 0 || yOverlap <= 0 {
		return Rect{}, false
	}
	x := math.Max(a.Min.X, b.Min.X)
	y := math.Max(a.Min.Y, b.Min.Y)
	return R(x, y, xOverlap, yOverlap), true
}
