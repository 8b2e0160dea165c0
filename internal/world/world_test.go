package world

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"math"
	"testing"

	"gridcast/internal/core"
	"gridcast/internal/levels"
	"gridcast/pkg/geom"
	"gridcast/pkg/raycast"

	"golang.org/x/image/bmp"
)

func mapImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 3))
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			img.Set(x, y, color.White)
		}
	}
	img.Set(0, 0, color.Black)
	img.Set(3, 2, color.Black)
	img.Set(2, 1, color.NRGBA{R: 255, A: 255})
	img.Set(1, 2, color.NRGBA{R: 255, A: 255})
	img.Set(1, 1, color.NRGBA{R: 0, G: 0, B: 0, A: 128})
	return img
}

func TestDecodePNGMap(t *testing.T) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, mapImage()); err != nil {
		t.Fatalf("encode: %v", err)
	}
	lvl, err := DecodeImage(&buf, "test")
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	want := []core.Point{{X: 0, Y: 0}, {X: 3, Y: 2}}
	got := lvl.Walls()
	if len(got) != 2 || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("walls = %v, want %v", got, want)
	}
	if !lvl.HasSpawn || lvl.Spawn != (core.Point{X: 2, Y: 1}) {
		t.Fatalf("spawn = %+v, want first red pixel (2,1)", lvl.Spawn)
	}
}

func TestDecodeBMPMap(t *testing.T) {
	img := mapImage()
	img.Set(1, 1, color.White)
	var buf bytes.Buffer
	if err := bmp.Encode(&buf, img); err != nil {
		t.Fatalf("encode: %v", err)
	}
	lvl, err := DecodeImage(&buf, "test")
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if n := lvl.Grid.Count(core.TileWall); n != 2 {
		t.Fatalf("wall count = %d, want 2", n)
	}
	if lvl.Spawn != (core.Point{X: 2, Y: 1}) {
		t.Fatalf("spawn = %+v", lvl.Spawn)
	}
}

func TestDecodeErrors(t *testing.T) {
	if _, err := DecodeImage(bytes.NewReader([]byte("not an image")), "junk"); !errors.Is(err, ErrUnsupportedImage) {
		t.Fatalf("err = %v, want ErrUnsupportedImage", err)
	}
	blank := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	var buf bytes.Buffer
	if err := png.Encode(&buf, blank); err != nil {
		t.Fatalf("encode: %v", err)
	}
	if _, err := DecodeImage(&buf, "blank"); !errors.Is(err, ErrNoWalls) {
		t.Fatalf("err = %v, want ErrNoWalls", err)
	}
}

func TestSpawnIsCellCentre(t *testing.T) {
	w := New(&core.Level{Grid: core.NewByteGrid(4, 4), Spawn: core.Point{X: 2, Y: 1}, HasSpawn: true}, 20)
	if got := w.Spawn(); got != geom.V(50, 30) {
		t.Fatalf("spawn = %v, want (50, 30)", got)
	}
	w = New(&core.Level{Grid: core.NewByteGrid(4, 4)}, 20)
	if got := w.Spawn(); got != geom.Zero {
		t.Fatalf("default spawn = %v, want origin", got)
	}
	if b := w.Bounds(); b != geom.R(0, 0, 80, 80) {
		t.Fatalf("bounds = %+v", b)
	}
}

func TestPlayerStep(t *testing.T) {
	walls := raycast.NewWalls(20, raycast.Cell{Col: 2, Row: 1})
	p := Player{Pos: geom.V(10, 30), Facing: geom.Right}

	moved := p.Step(0.5, Input{Forward: true}, 20, 1, walls)
	if moved.Pos != geom.V(20, 30) {
		t.Fatalf("forward = %v, want (20, 30)", moved.Pos)
	}
	blocked := moved.Step(1, Input{Forward: true}, 20, 1, walls)
	if blocked.Pos != moved.Pos {
		t.Fatalf("move onto a wall edge must be rejected, got %v", blocked.Pos)
	}
	strafed := p.Step(1, Input{StrafeRight: true}, 10, 1, walls)
	if math.Abs(strafed.Pos.X-10) > 1e-9 || math.Abs(strafed.Pos.Y-40) > 1e-9 {
		t.Fatalf("strafe right = %v, want (10, 40)", strafed.Pos)
	}
	cancel := p.Step(1, Input{Forward: true, Back: true}, 10, 1, walls)
	if cancel.Pos != p.Pos {
		t.Fatalf("opposite keys should cancel, got %v", cancel.Pos)
	}
	turned := p.Step(0, Input{TurnRight: true}, 20, 90, walls)
	if math.Abs(turned.Facing.X) > 1e-9 || math.Abs(turned.Facing.Y-1) > 1e-9 {
		t.Fatalf("turn right 90 = %v, want down", turned.Facing)
	}
}

func TestFromMapOverrides(t *testing.T) {
	c := FromMap(map[string]string{"fov": "60", "samples": "bad", "cap": "400", "epsilon": "-1", "workers": "3"})
	if c.FOV != 60 || c.Samples != 120 || c.Cast.CapDistance != 400 || c.Cast.Epsilon != raycast.DefaultEpsilon || c.Workers != 3 {
		t.Fatalf("config = %+v", c)
	}
	if c := FromMap(nil); c.CellSize != raycast.DefaultCellSize {
		t.Fatalf("nil map should give defaults, got %+v", c)
	}
}

func corridor(t *testing.T) *core.Level {
	t.Helper()
	lvl, err := levels.Parse("corridor", "#####\n#>..#\n#####")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return lvl
}

func TestStateUpdateCastsFromPlayer(t *testing.T) {
	cfg := DefaultViewConfig()
	cfg.Samples = 1
	cfg.Workers = 1
	s := NewState(corridor(t), cfg)

	if got := s.Player().Pos; got != geom.V(30, 30) {
		t.Fatalf("spawn = %v", got)
	}
	ray := s.Fan()[0].Ray
	if ray.Status() != raycast.Colliding || math.Abs(ray.Distance()-50) > 1e-9 {
		t.Fatalf("initial ray %v at %v", ray.Status(), ray.Distance())
	}

	s.Update(1, Input{Forward: true})
	if got := s.Player().Pos; got != geom.V(50, 30) {
		t.Fatalf("after update = %v", got)
	}
	if d := s.Fan()[0].Ray.Distance(); math.Abs(d-30) > 1e-9 {
		t.Fatalf("distance after move = %v, want 30", d)
	}
}

func TestStateParameterSetters(t *testing.T) {
	cfg := DefaultViewConfig()
	cfg.Samples = 1
	s := NewState(corridor(t), cfg)

	if !s.SetFloatParameter("cap", 10) {
		t.Fatal("cap rejected")
	}
	if r := s.Fan()[0].Ray; r.Status() != raycast.Infinite || r.Distance() != 10 {
		t.Fatalf("capped ray %v at %v", r.Status(), r.Distance())
	}
	if !s.SetIntParameter("samples", 9) || len(s.Fan()) != 9 {
		t.Fatalf("samples not applied: %d rays", len(s.Fan()))
	}
	if s.SetIntParameter("samples", 0) || s.SetFloatParameter("nope", 1) {
		t.Fatal("invalid updates must be refused")
	}
	p, ok := s.Parameters().Lookup("cap")
	if !ok || p.Value != "10" {
		t.Fatalf("cap parameter = %+v", p)
	}
}

func TestRandomViewpointsAvoidWalls(t *testing.T) {
	w := New(corridor(t), 20)
	pts, err := RandomViewpoints(w, core.NewRNG(3), 200)
	if err != nil {
		t.Fatalf("viewpoints: %v", err)
	}
	for _, p := range pts {
		c := w.Walls.CellAt(p.Pos)
		if w.Walls.Has(c) || c.Row != 1 || c.Col < 1 || c.Col > 3 {
			t.Fatalf("viewpoint %v lies in cell %+v", p.Pos, c)
		}
		if math.Abs(p.Facing.Len()-1) > 1e-9 {
			t.Fatalf("facing %v is not unit length", p.Facing)
		}
	}
	again, _ := RandomViewpoints(w, core.NewRNG(3), 200)
	if again[17] != pts[17] {
		t.Fatal("same seed should give the same viewpoints")
	}

	full := &core.Level{Grid: core.NewByteGrid(1, 1)}
	full.Grid.Set(0, 0, core.TileWall)
	if _, err := RandomViewpoints(New(full, 20), core.NewRNG(1), 1); !errors.Is(err, ErrNoOpenCells) {
		t.Fatalf("err = %v, want ErrNoOpenCells", err)
	}
}
