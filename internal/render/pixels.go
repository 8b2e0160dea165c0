package render

import (
	"image"
	"image/color"
	"math"

	"gridcast/pkg/raycast"
)

// Frame rasterises the first-person view of fan into a new w by h image.
func Frame(fan []raycast.Sample, w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	fillViewRGBA(img.Pix, w, h, Backdrop(float64(w), float64(h)), Project(fan, float64(w), float64(h)))
	return img
}

// fillViewRGBA paints the backdrop and then the wall columns into buf, an
// RGBA buffer of w*h pixels.
func fillViewRGBA(buf []byte, w, h int, stripes []Stripe, cols []Column) {
	fillRectRGBA(buf, w, h, 0, 0, w, h, color.RGBA{A: 255})
	for _, s := range stripes {
		y0 := int(math.Floor(s.Y))
		fillRectRGBA(buf, w, h, 0, y0, w, y0+int(math.Ceil(s.H)), s.Color)
	}
	for _, c := range cols {
		x0 := int(math.Floor(c.X))
		x1 := int(math.Ceil(c.X + c.Width))
		y0 := int(math.Floor(c.Top))
		y1 := int(math.Ceil(c.Bottom))
		fillRectRGBA(buf, w, h, x0, y0, x1, y1, c.Color)
	}
}

// fillRectRGBA fills [x0,x1)x[y0,y1), clipped to the buffer.
func fillRectRGBA(buf []byte, w, h, x0, y0, x1, y1 int, col color.RGBA) {
	x0, y0 = max(x0, 0), max(y0, 0)
	x1, y1 = min(x1, w), min(y1, h)
	for y := y0; y < y1; y++ {
		row := y * w * 4
		for x := x0; x < x1; x++ {
			base := row + x*4
			buf[base+0] = col.R
			buf[base+1] = col.G
			buf[base+2] = col.B
			buf[base+3] = col.A
		}
	}
}
