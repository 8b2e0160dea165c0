//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"log/slog"
	"os"

	"gridcast/internal/app"
	_ "gridcast/internal/levels"
	"gridcast/internal/world"
	"gridcast/pkg/raycast"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if cfg.Debug {
		raycast.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	lvl, err := cfg.LoadLevel()
	if err != nil {
		log.Fatalf("gridcast: %v", err)
	}
	state := world.NewState(lvl, cfg.View())
	game := app.New(state, cfg.Width, cfg.Height, cfg.Panel)

	ebiten.SetWindowTitle("gridcast - " + lvl.Name)
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize((cfg.Width+cfg.Panel)*cfg.Scale, cfg.Height*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
