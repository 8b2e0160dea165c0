package raycast

import (
	"log/slog"
	"math"

	"gridcast/pkg/geom"
)

// Defaults used when a Config field is left at zero.
const (
	DefaultCapDistance = 200.0
	DefaultEpsilon     = 0.03
	DefaultCellSize    = 20.0
)

// Config bounds the work done per cast.
type Config struct {
	// CapDistance is the distance past which a ray is reported as infinite.
	CapDistance float64
	// Epsilon is how far past each boundary crossing the next step starts.
	Epsilon float64
	// MaxSteps is a hard ceiling on stepping iterations per cast. Zero
	// derives it from the cap and the cell size.
	MaxSteps int
}

// DefaultConfig returns the standard caster configuration.
func DefaultConfig() Config {
	return Config{CapDistance: DefaultCapDistance, Epsilon: DefaultEpsilon}
}

func (c Config) withDefaults() Config {
	if c.CapDistance <= 0 {
		c.CapDistance = DefaultCapDistance
	}
	if c.Epsilon <= 0 {
		c.Epsilon = DefaultEpsilon
	}
	if c.MaxSteps < 0 {
		c.MaxSteps = 0
	}
	return c
}

// stepCeiling returns the iteration limit for cells of the given size. A ray
// travelling the cap distance crosses at most cap·(|dx|+|dy|)/size <=
// cap·√2/size grid lines, so twice cap/size plus slack is never reached by a
// well-formed cast.
func (c Config) stepCeiling(cellSize float64) int {
	if c.MaxSteps > 0 {
		return c.MaxSteps
	}
	return 2*int(math.Ceil(c.CapDistance/cellSize)) + 8
}

// Caster resolves rays against a wall set. It holds only configuration, so a
// single Caster may serve any number of goroutines.
type Caster struct {
	cfg Config
}

// New returns a Caster using cfg, with zero fields replaced by defaults.
func New(cfg Config) *Caster {
	return &Caster{cfg: cfg.withDefaults()}
}

// Config returns the effective configuration.
func (c *Caster) Config() Config { return c.cfg }

// Cast steps a ray from origin along direction one grid cell at a time until
// it enters an occluded point, travels CapDistance, or exhausts the step
// ceiling. The returned ray is Colliding or Infinite and keeps origin as its
// origin.
//
// direction must be unit length and cellSize positive; neither is checked.
func (c *Caster) Cast(origin, direction geom.Vec2, walls Occluder, cellSize float64) Ray {
	start := NewRay(origin, direction, c.cfg.CapDistance)
	ceiling := c.cfg.stepCeiling(cellSize)
	cur := start
	travelled := 0.0
	for steps := 0; cur.status == Shooting; steps++ {
		switch {
		case travelled >= c.cfg.CapDistance:
			cur = cur.resolve(Infinite)
		case walls.Contains(cur.origin):
			cur = cur.resolve(Colliding)
		case steps >= ceiling:
			Logger().Warn("raycast: step ceiling reached",
				slog.String("origin", origin.String()),
				slog.String("direction", direction.String()),
				slog.Int("steps", steps),
				slog.Float64("travelled", travelled))
			cur = cur.resolve(Infinite)
		default:
			cell := cellAhead(cur.origin, direction, cellSize)
			exit, _ := Exit(cur.origin, direction, cell)
			travelled += cur.origin.Dist(exit)
			cur = cur.advance(exit.Add(direction.Mul(c.cfg.Epsilon)), exit)
		}
	}
	return start.terminal(cur)
}

// Cast resolves a single ray with the default configuration.
func Cast(origin, direction geom.Vec2, walls Occluder, cellSize float64) Ray {
	return defaultCaster.Cast(origin, direction, walls, cellSize)
}

var defaultCaster = New(DefaultConfig())
