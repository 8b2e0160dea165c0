package core

import (
	"errors"
	"fmt"
	"slices"
)

// ErrUnknownLevel is returned by Load for names that were never registered.
var ErrUnknownLevel = errors.New("unknown level")

// Size describes the dimensions of a level grid in cells.
type Size struct {
	W int
	H int
}

// Point addresses a single grid cell.
type Point struct {
	X, Y int
}

// Level is a tile map plus where the player starts on it.
type Level struct {
	Name string
	Grid *ByteGrid

	// Spawn is the player's starting cell; HasSpawn is false when the level
	// does not name one.
	Spawn    Point
	HasSpawn bool
	// Facing is the initial view direction in degrees, 0 pointing along +x.
	Facing float64
}

// Size returns the grid dimensions of the level.
func (l *Level) Size() Size {
	if l == nil || l.Grid == nil {
		return Size{}
	}
	return Size{W: l.Grid.W, H: l.Grid.H}
}

// Walls returns the coordinates of every wall tile in row-major order.
func (l *Level) Walls() []Point {
	if l == nil || l.Grid == nil {
		return nil
	}
	var out []Point
	for y := 0; y < l.Grid.H; y++ {
		for x := 0; x < l.Grid.W; x++ {
			if l.Grid.At(x, y) == TileWall {
				out = append(out, Point{X: x, Y: y})
			}
		}
	}
	return out
}

// Factory builds a fresh copy of a level.
type Factory func() (*Level, error)

var levels = map[string]Factory{}

// Register adds a level factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	levels[name] = f
}

// Levels exposes the registry of available level factories.
func Levels() map[string]Factory {
	return levels
}

// LevelNames returns the registered names in sorted order.
func LevelNames() []string {
	names := make([]string, 0, len(levels))
	for name := range levels {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Load builds the named level.
func Load(name string) (*Level, error) {
	f, ok := levels[name]
	if !ok {
		return nil, fmt.Errorf("%w %q (have %v)", ErrUnknownLevel, name, LevelNames())
	}
	lvl, err := f()
	if err != nil {
		return nil, fmt.Errorf("level %q: %w", name, err)
	}
	if lvl.Name == "" {
		lvl.Name = name
	}
	return lvl, nil
}
