package app

import (
	"errors"
	"flag"
	"io"
	"os"
	"path/filepath"
	"testing"

	"gridcast/internal/core"
	_ "gridcast/internal/levels"
	"gridcast/internal/world"
)

func parse(t *testing.T, args ...string) *Config {
	t.Helper()
	cfg := NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	cfg.Bind(fs)
	if err := fs.Parse(args); err != nil {
		t.Fatalf("parse %v: %v", args, err)
	}
	return cfg
}

func TestViewFromFlags(t *testing.T) {
	v := parse(t, "-fov", "60", "-samples", "200", "-cap", "500", "-epsilon", "0.5", "-workers", "2").View()
	if v.FOV != 60 || v.Samples != 200 || v.Workers != 2 {
		t.Fatalf("view = %+v", v)
	}
	if v.Cast.CapDistance != 500 || v.Cast.Epsilon != 0.5 {
		t.Fatalf("cast = %+v", v.Cast)
	}
	bad := parse(t, "-fov", "0", "-samples", "-3").View()
	def := world.DefaultViewConfig()
	if bad.FOV != def.FOV || bad.Samples != def.Samples {
		t.Fatalf("invalid flags should fall back to defaults, got %+v", bad)
	}
}

func TestLoadLevel(t *testing.T) {
	lvl, err := parse(t, "-level", "maze").LoadLevel()
	if err != nil || lvl.Name != "maze" {
		t.Fatalf("load maze: %v, %v", lvl, err)
	}
	if _, err := parse(t, "-level", "nowhere").LoadLevel(); !errors.Is(err, core.ErrUnknownLevel) {
		t.Fatalf("err = %v, want ErrUnknownLevel", err)
	}
	missing := filepath.Join(t.TempDir(), "missing.png")
	if _, err := parse(t, "-map", missing).LoadLevel(); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("err = %v, want a not-exist error", err)
	}
}
