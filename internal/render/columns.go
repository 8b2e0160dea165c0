package render

import (
	"image/color"
	"math"

	"gridcast/pkg/geom"
	"gridcast/pkg/raycast"
)

// Projection constants for the first-person view.
const (
	// WallScale sets apparent wall height: a wall at corrected distance d
	// spans screenH*WallScale/d pixels.
	WallScale = 10.0
	// StripeHeight is the height of one ceiling or floor band in pixels.
	StripeHeight = 5.0
	ceilingLevel = 0.15
	floorLevel   = 0.25
)

// WallColor is the fully lit colour of wall columns.
var WallColor = color.RGBA{R: 255, A: 255}

// Column is the screen-space wall slice drawn for one ray.
type Column struct {
	Index    int
	X, Width float64
	Top      float64
	Bottom   float64
	// Distance is the fish-eye corrected distance to the wall.
	Distance float64
	Color    color.RGBA
}

// Project turns a fan into wall columns for a screenW by screenH view. Each
// sample owns a column screenW/len(fan) wide. Samples that reached the cap
// leave their column empty.
func Project(fan []raycast.Sample, screenW, screenH float64) []Column {
	if len(fan) == 0 {
		return nil
	}
	width := screenW / float64(len(fan))
	mid := screenH / 2
	cols := make([]Column, 0, len(fan))
	for i, s := range fan {
		d := s.Ray.Distance()
		if s.Ray.Status() != raycast.Colliding || d >= s.Ray.Cap() {
			continue
		}
		corrected := math.Abs(math.Cos(s.Offset)) * d
		h := screenH * WallScale / math.Max(corrected, 1)
		cols = append(cols, Column{
			Index:    i,
			X:        float64(i) * width,
			Width:    width,
			Top:      mid - h/2,
			Bottom:   mid + h/2,
			Distance: corrected,
			Color:    Shade(WallColor, Brightness(corrected)),
		})
	}
	return cols
}

// Brightness returns the light level of a wall at corrected distance d,
// 10/d clamped to [0, 1].
func Brightness(d float64) float64 {
	return geom.Clamp(WallScale/d, 0, 1)
}

// Shade scales the colour channels of c by level.
func Shade(c color.RGBA, level float64) color.RGBA {
	level = geom.Clamp(level, 0, 1)
	return color.RGBA{
		R: uint8(math.Round(float64(c.R) * level)),
		G: uint8(math.Round(float64(c.G) * level)),
		B: uint8(math.Round(float64(c.B) * level)),
		A: c.A,
	}
}

// Stripe is one horizontal band of the ceiling or floor.
type Stripe struct {
	Y, H  float64
	Color color.RGBA
}

// Backdrop returns the ceiling and floor bands for a screenW by screenH view.
// Both fade towards the horizon: the ceiling from 0.15 and the floor from 0.25
// brightness at the screen edge.
func Backdrop(screenW, screenH float64) []Stripe {
	n := int(screenH / 2 / StripeHeight)
	out := make([]Stripe, 0, 2*n)
	for i := 0; i < n; i++ {
		fade := 1 - float64(i)/float64(n)
		out = append(out,
			Stripe{Y: float64(i) * StripeHeight, H: StripeHeight, Color: gray(fade * ceilingLevel)},
			Stripe{Y: screenH - float64(i+1)*StripeHeight, H: StripeHeight, Color: gray(fade * floorLevel)},
		)
	}
	return out
}

func gray(level float64) color.RGBA {
	v := uint8(math.Round(geom.Clamp(level, 0, 1) * 255))
	return color.RGBA{R: v, G: v, B: v, A: 255}
}
