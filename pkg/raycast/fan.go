package raycast

import (
	"context"
	"log/slog"

	"gridcast/pkg/geom"

	"golang.org/x/sync/errgroup"
)

// Sample is one ray of a fan together with its angular offset from the
// viewer's forward direction. Renderers use the offset for fish-eye
// correction; the ray's distance is left uncorrected.
type Sample struct {
	Offset float64
	Ray    Ray
}

// Offsets returns n angles spread uniformly over [-fov/2, fov/2]. A single
// sample looks straight ahead.
func Offsets(fov float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	out := make([]float64, n)
	if n == 1 {
		return out
	}
	step := fov / float64(n-1)
	for i := range out {
		out[i] = -fov/2 + step*float64(i)
	}
	return out
}

// Fan casts n rays from origin spread over fov radians around forward and
// returns them in order from the leftmost offset to the rightmost.
func (c *Caster) Fan(origin, forward geom.Vec2, fov float64, n int, walls Occluder, cellSize float64) []Sample {
	offsets := Offsets(fov, n)
	out := make([]Sample, len(offsets))
	c.fill(out, offsets, 0, len(out), origin, forward, walls, cellSize)
	return out
}

// FanParallel is Fan split across up to workers goroutines. Casts share no
// mutable state, so the wall set only has to stay unmodified until it
// returns.
func (c *Caster) FanParallel(origin, forward geom.Vec2, fov float64, n int, walls Occluder, cellSize float64, workers int) []Sample {
	if workers <= 1 || n < 2*workers {
		return c.Fan(origin, forward, fov, n, walls, cellSize)
	}
	offsets := Offsets(fov, n)
	out := make([]Sample, len(offsets))
	chunk := (len(out) + workers - 1) / workers

	var g errgroup.Group
	g.SetLimit(workers)
	for lo := 0; lo < len(out); lo += chunk {
		hi := min(lo+chunk, len(out))
		g.Go(func() error {
			c.fill(out, offsets, lo, hi, origin, forward, walls, cellSize)
			return nil
		})
	}
	_ = g.Wait()

	if l := Logger(); l.Enabled(context.Background(), slog.LevelDebug) {
		l.Debug("raycast: fan", slog.Int("rays", n), slog.Int("workers", workers), slog.Int("chunk", chunk))
	}
	return out
}

func (c *Caster) fill(out []Sample, offsets []float64, lo, hi int, origin, forward geom.Vec2, walls Occluder, cellSize float64) {
	for i := lo; i < hi; i++ {
		dir := forward.Rotate(offsets[i])
		out[i] = Sample{Offset: offsets[i], Ray: c.Cast(origin, dir, walls, cellSize)}
	}
}
