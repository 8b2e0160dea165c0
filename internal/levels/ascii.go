package levels

import (
	"errors"
	"fmt"
	"strings"

	"gridcast/internal/core"
)

// Errors reported by Parse.
var (
	ErrBadGlyph       = errors.New("unrecognised glyph")
	ErrMultipleSpawns = errors.New("more than one spawn")
	ErrEmpty          = errors.New("empty level")
)

// Glyphs understood by Parse. A spawn glyph also sets the initial facing.
const (
	GlyphWall  = '#'
	GlyphFloor = '.'
)

var spawnFacing = map[rune]float64{
	'P': 0,
	'>': 0,
	'v': 90,
	'<': 180,
	'^': -90,
}

// Parse builds a level from an ASCII map, one text line per grid row. Lines
// shorter than the widest one are padded with floor. Blank leading and
// trailing lines are ignored.
func Parse(name, src string) (*core.Level, error) {
	lines := strings.Split(strings.Trim(src, "\n"), "\n")
	width := 0
	for i, line := range lines {
		line = strings.TrimRight(line, " \r")
		lines[i] = line
		width = max(width, len(line))
	}
	if width == 0 {
		return nil, fmt.Errorf("%s: %w", name, ErrEmpty)
	}

	lvl := &core.Level{Name: name, Grid: core.NewByteGrid(width, len(lines))}
	for y, line := range lines {
		for x, r := range line {
			switch r {
			case GlyphWall:
				lvl.Grid.Set(x, y, core.TileWall)
			case GlyphFloor, ' ':
			default:
				facing, ok := spawnFacing[r]
				if !ok {
					return nil, fmt.Errorf("%s:%d:%d: %w %q", name, y+1, x+1, ErrBadGlyph, r)
				}
				if lvl.HasSpawn {
					return nil, fmt.Errorf("%s:%d:%d: %w", name, y+1, x+1, ErrMultipleSpawns)
				}
				lvl.Spawn = core.Point{X: x, Y: y}
				lvl.HasSpawn = true
				lvl.Facing = facing
			}
		}
	}
	return lvl, nil
}

func register(name, src string) {
	core.Register(name, func() (*core.Level, error) {
		return Parse(name, src)
	})
}
