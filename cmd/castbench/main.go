package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"runtime"
	"strconv"
	"strings"
	"time"

	"gridcast/internal/core"
	_ "gridcast/internal/levels"
	"gridcast/internal/world"
	"gridcast/pkg/geom"
	"gridcast/pkg/raycast"

	"golang.org/x/sync/errgroup"
)

type kvList []string

func (l *kvList) String() string {
	return strings.Join(*l, ",")
}

func (l *kvList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

// frameStats summarises the fan cast from one viewpoint.
type frameStats struct {
	colliding int
	infinite  int
	total     float64
	max       float64
}

func main() {
	level := flag.String("level", "maze", "built-in level to cast against")
	mapPath := flag.String("map", "", "map image overriding -level")
	frames := flag.Int("frames", 2000, "number of random viewpoints")
	workers := flag.Int("workers", runtime.NumCPU(), "parallel frame evaluations")
	seed := flag.Int64("seed", 1337, "seed used to pick viewpoints")
	fov := flag.Float64("fov", 0, "field of view in degrees (0 keeps the default)")
	samples := flag.Int("samples", 0, "rays per frame (0 keeps the default)")
	verbose := flag.Bool("v", false, "log caster diagnostics to stderr")
	var overrides kvList
	flag.Var(&overrides, "set", "view override in key=value form (repeatable)")
	flag.Parse()

	if *verbose {
		raycast.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	kv := map[string]string{}
	for _, o := range overrides {
		parts := strings.SplitN(o, "=", 2)
		if len(parts) != 2 {
			log.Printf("castbench: ignoring malformed override %q", o)
			continue
		}
		kv[parts[0]] = parts[1]
	}
	if *fov > 0 {
		kv["fov"] = strconv.FormatFloat(*fov, 'f', -1, 64)
	}
	if *samples > 0 {
		kv["samples"] = strconv.Itoa(*samples)
	}
	cfg := world.FromMap(kv)

	var lvl *core.Level
	var err error
	if *mapPath != "" {
		lvl, err = world.LoadImage(*mapPath)
	} else {
		lvl, err = core.Load(*level)
	}
	if err != nil {
		log.Fatalf("castbench: %v", err)
	}

	w := world.New(lvl, cfg.CellSize)
	views, err := world.RandomViewpoints(w, core.NewRNG(*seed), *frames)
	if err != nil {
		log.Fatalf("castbench: %v", err)
	}
	caster := raycast.New(cfg.Cast)
	fovRad := geom.Radians(cfg.FOV)

	fmt.Printf("Level %s (%dx%d cells, %d walls), %d frames x %d rays, fov %.1f deg, cap %.1f\n",
		lvl.Name, lvl.Size().W, lvl.Size().H, w.Walls.Len(), len(views), cfg.Samples, cfg.FOV, caster.Config().CapDistance)

	start := time.Now()
	sequential := make([]frameStats, len(views))
	for i, v := range views {
		sequential[i] = summarise(caster.Fan(v.Pos, v.Facing, fovRad, cfg.Samples, w.Walls, w.CellSize))
	}
	seqElapsed := time.Since(start)

	start = time.Now()
	parallel := make([]frameStats, len(views))
	var g errgroup.Group
	g.SetLimit(max(*workers, 1))
	for i, v := range views {
		g.Go(func() error {
			parallel[i] = summarise(caster.Fan(v.Pos, v.Facing, fovRad, cfg.Samples, w.Walls, w.CellSize))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Fatalf("castbench: %v", err)
	}
	parElapsed := time.Since(start)

	for i := range sequential {
		if sequential[i] != parallel[i] {
			log.Fatalf("castbench: frame %d differs between sequential and parallel runs", i)
		}
	}

	var total frameStats
	for _, s := range sequential {
		total.colliding += s.colliding
		total.infinite += s.infinite
		total.total += s.total
		total.max = max(total.max, s.max)
	}
	rays := total.colliding + total.infinite
	mean := 0.0
	if rays > 0 {
		mean = total.total / float64(rays)
	}
	fmt.Printf("Rays: %d colliding, %d infinite, mean distance %.2f, max %.2f\n", total.colliding, total.infinite, mean, total.max)
	fmt.Printf("Sequential: %v (%.0f rays/s)\n", seqElapsed, perSecond(rays, seqElapsed))
	fmt.Printf("Parallel x%d: %v (%.0f rays/s, speedup %.2f)\n", *workers, parElapsed, perSecond(rays, parElapsed), seqElapsed.Seconds()/max(parElapsed.Seconds(), 1e-9))
}

func summarise(fan []raycast.Sample) frameStats {
	var s frameStats
	for _, sample := range fan {
		switch sample.Ray.Status() {
		case raycast.Colliding:
			s.colliding++
		case raycast.Infinite:
			s.infinite++
		}
		d := sample.Ray.Distance()
		s.total += d
		s.max = max(s.max, d)
	}
	return s
}

func perSecond(n int, d time.Duration) float64 {
	if d <= 0 {
		return 0
	}
	return float64(n) / d.Seconds()
}
