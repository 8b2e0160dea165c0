package world

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gridcast/internal/core"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// Errors reported by the map image loader.
var (
	ErrNoWalls          = errors.New("map has no wall pixels")
	ErrUnsupportedImage = errors.New("unsupported map image")
)

// LoadImage reads a map image from path. See DecodeImage for the format.
func LoadImage(path string) (*core.Level, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open map: %w", err)
	}
	defer f.Close()
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return DecodeImage(f, name)
}

// DecodeImage builds a level from a PNG, BMP or WebP image holding one pixel
// per grid cell. Opaque black pixels are walls and the first opaque red pixel
// in row-major order is the player spawn. Every other colour is floor.
func DecodeImage(r io.Reader, name string) (*core.Level, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		if errors.Is(err, image.ErrFormat) {
			return nil, fmt.Errorf("%s: %w: %v", name, ErrUnsupportedImage, err)
		}
		return nil, fmt.Errorf("%s: decode map: %w", name, err)
	}
	lvl := FromImage(img, name)
	if lvl.Grid.Count(core.TileWall) == 0 {
		return nil, fmt.Errorf("%s (%s): %w", name, format, ErrNoWalls)
	}
	return lvl, nil
}

// FromImage converts img to a level without validating it.
func FromImage(img image.Image, name string) *core.Level {
	b := img.Bounds()
	lvl := &core.Level{Name: name, Grid: core.NewByteGrid(b.Dx(), b.Dy())}
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			c := color.NRGBAModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA)
			switch {
			case isWallPixel(c):
				lvl.Grid.Set(x, y, core.TileWall)
			case isSpawnPixel(c) && !lvl.HasSpawn:
				lvl.Spawn = core.Point{X: x, Y: y}
				lvl.HasSpawn = true
			}
		}
	}
	return lvl
}

func isWallPixel(c color.NRGBA) bool {
	return c.A == 0xff && c.R == 0 && c.G == 0 && c.B == 0
}

func isSpawnPixel(c color.NRGBA) bool {
	return c.A == 0xff && c.R == 0xff && c.G == 0 && c.B == 0
}
