package world

import (
	"runtime"
	"strconv"

	"gridcast/pkg/raycast"
)

// ViewConfig controls how the world is sampled and how the player moves.
type ViewConfig struct {
	// FOV is the horizontal field of view in degrees.
	FOV float64
	// Samples is the number of rays cast per frame, one per screen column.
	Samples int
	// CellSize is the side length of a grid cell in world units.
	CellSize float64
	// MoveSpeed is the player speed in world units per second.
	MoveSpeed float64
	// TurnRate is the player turn in degrees per frame while a turn key is held.
	TurnRate float64
	// Workers bounds the goroutines used to cast a fan.
	Workers int

	Cast raycast.Config
}

// DefaultViewConfig returns the standard configuration.
func DefaultViewConfig() ViewConfig {
	return ViewConfig{
		FOV:       90,
		Samples:   120,
		CellSize:  raycast.DefaultCellSize,
		MoveSpeed: 20,
		TurnRate:  1,
		Workers:   runtime.GOMAXPROCS(0),
		Cast:      raycast.DefaultConfig(),
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Unparseable or out of range values keep their defaults.
func FromMap(cfg map[string]string) ViewConfig {
	c := DefaultViewConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["fov"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 && parsed < 360 {
			c.FOV = parsed
		}
	}
	if v, ok := cfg["samples"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Samples = parsed
		}
	}
	if v, ok := cfg["cell"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.CellSize = parsed
		}
	}
	if v, ok := cfg["speed"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.MoveSpeed = parsed
		}
	}
	if v, ok := cfg["turn"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.TurnRate = parsed
		}
	}
	if v, ok := cfg["workers"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Workers = parsed
		}
	}
	if v, ok := cfg["cap"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.Cast.CapDistance = parsed
		}
	}
	if v, ok := cfg["epsilon"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.Cast.Epsilon = parsed
		}
	}
	if v, ok := cfg["max_steps"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Cast.MaxSteps = parsed
		}
	}
	return c
}
