//go:build ebiten

package render

import (
	"gridcast/pkg/raycast"

	"github.com/hajimehoshi/ebiten/v2"
)

// ViewPainter rasterises the first-person view into a single RGBA image on
// the CPU and uploads it once per frame.
type ViewPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewViewPainter allocates a painter for a w*h view.
func NewViewPainter(w, h int) *ViewPainter {
	vp := &ViewPainter{w: w, h: h, buf: make([]byte, 4*w*h)}
	vp.img = ebiten.NewImage(w, h)
	return vp
}

// Blit renders fan into the painter image and draws it onto dst.
func (vp *ViewPainter) Blit(dst *ebiten.Image, fan []raycast.Sample) {
	fw, fh := float64(vp.w), float64(vp.h)
	fillViewRGBA(vp.buf, vp.w, vp.h, Backdrop(fw, fh), Project(fan, fw, fh))
	vp.img.WritePixels(vp.buf)
	dst.DrawImage(vp.img, &ebiten.DrawImageOptions{})
}

// Size returns the dimensions of the underlying image.
func (vp *ViewPainter) Size() (int, int) { return vp.w, vp.h }
