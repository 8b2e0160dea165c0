package main

import (
	"flag"
	"log"
	"os"

	"gridcast/internal/app"
	_ "gridcast/internal/levels"
	"gridcast/internal/render"
	"gridcast/internal/world"
	"gridcast/pkg/geom"
)

func main() {
	cfg := app.NewConfig()
	cfg.Width, cfg.Height = 640, 400
	cfg.Bind(flag.CommandLine)
	out := flag.String("out", "snapshot.png", "output PNG path")
	facing := flag.Float64("facing", 0, "view direction in degrees, overriding the level's")
	setFacing := false
	flag.Parse()
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "facing" {
			setFacing = true
		}
	})

	lvl, err := cfg.LoadLevel()
	if err != nil {
		log.Fatalf("snapshot: %v", err)
	}
	state := world.NewState(lvl, cfg.View())
	if setFacing {
		p := state.Player()
		p.Facing = geom.FromAngle(geom.Radians(*facing))
		state.SetPlayer(p)
	}

	f, err := os.Create(*out)
	if err != nil {
		log.Fatalf("snapshot: %v", err)
	}
	if err := render.WriteSnapshot(f, state, cfg.Width, cfg.Height); err != nil {
		f.Close()
		log.Fatalf("snapshot: %v", err)
	}
	if err := f.Close(); err != nil {
		log.Fatalf("snapshot: %v", err)
	}
	log.Printf("wrote %s (%dx%d, level %s, %d rays)", *out, cfg.Width, cfg.Height, lvl.Name, len(state.Fan()))
}
