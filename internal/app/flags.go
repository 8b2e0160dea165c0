package app

import (
	"flag"
	"fmt"

	"gridcast/internal/core"
	"gridcast/internal/world"
	"gridcast/pkg/raycast"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Level  string
	Map    string
	Scale  int
	TPS    int
	Width  int
	Height int
	Panel  int

	FOV     float64
	Samples int
	Cell    float64
	Cap     float64
	Epsilon float64
	Workers int

	Debug bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	v := world.DefaultViewConfig()
	return &Config{
		Level:   "arena",
		Scale:   2,
		TPS:     60,
		Width:   480,
		Height:  300,
		Panel:   220,
		FOV:     v.FOV,
		Samples: v.Samples,
		Cell:    v.CellSize,
		Cap:     v.Cast.CapDistance,
		Epsilon: v.Cast.Epsilon,
		Workers: v.Workers,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Level, "level", c.Level, "built-in level to load")
	fs.StringVar(&c.Map, "map", c.Map, "map image (png, bmp or webp) overriding -level")
	fs.IntVar(&c.Scale, "scale", c.Scale, "window scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.IntVar(&c.Width, "width", c.Width, "view width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "view height in pixels")
	fs.IntVar(&c.Panel, "panel", c.Panel, "HUD panel width in pixels, 0 to hide")
	fs.Float64Var(&c.FOV, "fov", c.FOV, "field of view in degrees")
	fs.IntVar(&c.Samples, "samples", c.Samples, "rays cast per frame")
	fs.Float64Var(&c.Cell, "cell", c.Cell, "grid cell size in world units")
	fs.Float64Var(&c.Cap, "cap", c.Cap, "ray cap distance")
	fs.Float64Var(&c.Epsilon, "epsilon", c.Epsilon, "step past each cell boundary")
	fs.IntVar(&c.Workers, "workers", c.Workers, "goroutines used to cast a fan")
	fs.BoolVar(&c.Debug, "debug", c.Debug, "log caster diagnostics to stderr")
}

// View returns the world configuration selected by the flags.
func (c *Config) View() world.ViewConfig {
	v := world.DefaultViewConfig()
	if c.FOV > 0 && c.FOV < 360 {
		v.FOV = c.FOV
	}
	if c.Samples > 0 {
		v.Samples = c.Samples
	}
	if c.Cell > 0 {
		v.CellSize = c.Cell
	}
	if c.Workers > 0 {
		v.Workers = c.Workers
	}
	v.Cast = raycast.Config{CapDistance: c.Cap, Epsilon: c.Epsilon}
	return v
}

// LoadLevel loads the map image when one is given and the named built-in
// level otherwise.
func (c *Config) LoadLevel() (*core.Level, error) {
	if c.Map != "" {
		lvl, err := world.LoadImage(c.Map)
		if err != nil {
			return nil, fmt.Errorf("load map: %w", err)
		}
		return lvl, nil
	}
	return core.Load(c.Level)
}
