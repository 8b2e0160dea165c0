package render

import (
	"bytes"
	"image/png"
	"math"
	"strings"
	"testing"

	"gridcast/internal/levels"
	"gridcast/internal/world"
	"gridcast/pkg/geom"
	"gridcast/pkg/raycast"
)

func wallAtX100() *raycast.Walls {
	var cells []raycast.Cell
	for row := -5; row <= 5; row++ {
		cells = append(cells, raycast.Cell{Col: 5, Row: row})
	}
	return raycast.NewWalls(20, cells...)
}

func TestProjectSingleColumn(t *testing.T) {
	fan := raycast.New(raycast.DefaultConfig()).Fan(geom.V(10, 10), geom.Right, 0, 1, wallAtX100(), 20)
	cols := Project(fan, 120, 100)
	if len(cols) != 1 {
		t.Fatalf("columns = %d, want 1", len(cols))
	}
	c := cols[0]
	wantH := 100 * WallScale / 90
	if math.Abs(c.Distance-90) > 1e-9 || math.Abs((c.Bottom-c.Top)-wantH) > 1e-9 {
		t.Fatalf("column %+v, want distance 90 and height %v", c, wantH)
	}
	if math.Abs((c.Top+c.Bottom)/2-50) > 1e-9 || c.X != 0 || c.Width != 120 {
		t.Fatalf("column not centred on the horizon: %+v", c)
	}
	if c.Color.R != 28 || c.Color.G != 0 || c.Color.A != 255 {
		t.Fatalf("shade = %+v, want R=28", c.Color)
	}
}

func TestProjectCorrectsFishEye(t *testing.T) {
	fan := raycast.New(raycast.DefaultConfig()).Fan(geom.V(10, 10), geom.Right, geom.Radians(60), 3, wallAtX100(), 20)
	cols := Project(fan, 300, 100)
	if len(cols) != 3 {
		t.Fatalf("columns = %d, want 3", len(cols))
	}
	for _, c := range cols {
		if math.Abs(c.Distance-90) > 1e-6 {
			t.Fatalf("column %d corrected distance %v, want 90 for a flat wall", c.Index, c.Distance)
		}
	}
	if cols[1].X != 100 || cols[2].X != 200 {
		t.Fatalf("column x = %v, %v", cols[1].X, cols[2].X)
	}
}

func TestProjectSkipsCappedRays(t *testing.T) {
	caster := raycast.New(raycast.Config{CapDistance: 30})
	fan := caster.Fan(geom.V(10, 10), geom.Right, 0, 1, wallAtX100(), 20)
	if cols := Project(fan, 100, 100); len(cols) != 0 {
		t.Fatalf("capped ray produced %d columns", len(cols))
	}
}

func TestBrightness(t *testing.T) {
	if b := Brightness(0); b != 1 {
		t.Fatalf("brightness(0) = %v", b)
	}
	if b := Brightness(20); b != 0.5 {
		t.Fatalf("brightness(20) = %v", b)
	}
	if b := Brightness(5); b != 1 {
		t.Fatalf("brightness(5) = %v, want clamp to 1", b)
	}
}

func TestBackdropStripes(t *testing.T) {
	stripes := Backdrop(64, 100)
	if len(stripes) != 20 {
		t.Fatalf("stripes = %d, want 20", len(stripes))
	}
	ceil, floor := stripes[0], stripes[1]
	if ceil.Y != 0 || ceil.Color.R != 38 {
		t.Fatalf("first ceiling stripe %+v", ceil)
	}
	if floor.Y != 95 || floor.Color.R != 64 {
		t.Fatalf("first floor stripe %+v", floor)
	}
	last := stripes[len(stripes)-2]
	if last.Color.R >= ceil.Color.R {
		t.Fatal("ceiling should fade towards the horizon")
	}
}

func TestFrameFillsNearWall(t *testing.T) {
	fan := raycast.New(raycast.DefaultConfig()).Fan(geom.V(95, 10), geom.Right, 0, 1, wallAtX100(), 20)
	img := Frame(fan, 10, 10)
	if c := img.RGBAAt(5, 5); c.R != 255 || c.G != 0 || c.B != 0 || c.A != 255 {
		t.Fatalf("centre pixel = %+v, want full red", c)
	}
	if c := img.RGBAAt(0, 0); c.R != 255 {
		t.Fatalf("a wall twice the screen height should cover the ceiling, got %+v", c)
	}
}

func TestMinimapTransforms(t *testing.T) {
	m := NewMinimap(geom.V(100, 100), 20)
	if got := m.WorldToScene(geom.V(100, 100)); got != geom.V(120, 80) {
		t.Fatalf("camera maps to %v, want panel centre", got)
	}
	p := geom.V(-13.5, 250)
	if got := m.SceneToWorld(m.WorldToScene(p)); got != p {
		t.Fatalf("round trip = %v, want %v", got, p)
	}
	if wb := m.WorldBounds(); wb != geom.R(0, 40, 200, 120) {
		t.Fatalf("world bounds = %+v", wb)
	}
}

func TestMinimapWallsClipped(t *testing.T) {
	m := NewMinimap(geom.V(105, 100), 20)
	walls := raycast.NewWalls(20,
		raycast.Cell{Col: 0, Row: 2},
		raycast.Cell{Col: -1, Row: 2},
		raycast.Cell{Col: 4, Row: 4},
	)
	got := m.Walls(walls)
	want := []geom.Rect{geom.R(20, 20, 15, 20), geom.R(95, 60, 20, 20)}
	if len(got) != len(want) {
		t.Fatalf("walls = %+v, want %+v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("wall %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestMinimapGridLines(t *testing.T) {
	m := NewMinimap(geom.V(105, 100), 20)
	xs, ys := m.GridLines()
	if len(xs) != 10 || xs[0] != 35 {
		t.Fatalf("xs = %v", xs)
	}
	if len(ys) != 7 || ys[0] != 20 || ys[6] != 140 {
		t.Fatalf("ys = %v", ys)
	}
}

func TestMinimapRaysClipToPanel(t *testing.T) {
	var cells []raycast.Cell
	for i := -5; i <= 5; i++ {
		cells = append(cells, raycast.Cell{Col: i, Row: -5}, raycast.Cell{Col: 5, Row: i})
	}
	walls := raycast.NewWalls(20, cells...)
	caster := raycast.New(raycast.DefaultConfig())
	origin := geom.V(10, 10)
	right := caster.Fan(origin, geom.Right, 0, 1, walls, 20)
	up := caster.Fan(origin, geom.Up, 0, 1, walls, 20)
	left := caster.Fan(origin, geom.Left, 0, 1, walls, 20)

	m := NewMinimap(origin, 20)
	segs := m.Rays(append(append(right, up...), left...))
	bounds := m.SceneBounds()
	if !segs[0].Hit || math.Abs(segs[0].To.X-210) > 1e-9 {
		t.Fatalf("rightward ray %+v, want a hit at x=210", segs[0])
	}
	if segs[1].Hit || segs[1].To.Y != bounds.Min.Y {
		t.Fatalf("upward ray %+v, want cut at the panel top", segs[1])
	}
	if segs[2].Hit || segs[2].To.X != bounds.Min.X {
		t.Fatalf("infinite ray %+v, want cut at the panel left edge", segs[2])
	}
	for i, s := range segs {
		if s.From != m.Centre() || !bounds.Contains(s.To) {
			t.Fatalf("segment %d %+v leaves the panel", i, s)
		}
	}
	if f := m.Facing(geom.Down); f.To != m.Centre().Add(geom.V(0, FacingLength)) {
		t.Fatalf("facing = %+v", f)
	}
}

func TestReadouts(t *testing.T) {
	m := NewMinimap(geom.V(50, 30), 20)
	lines := Readouts(m, geom.V(120, 80), geom.Down, 59)
	want := []string{
		"mouse scene 120 - 80",
		"mouse world 50 - 30",
		"player world x:50.00 y:30.00",
		"player scene x:120.00 y:80.00",
		"player rot angle rad:1.57 deg:90.00",
		"fps 59",
	}
	if strings.Join(lines, "\n") != strings.Join(want, "\n") {
		t.Fatalf("readouts:\n%s\nwant:\n%s", strings.Join(lines, "\n"), strings.Join(want, "\n"))
	}
}

func TestWriteSnapshot(t *testing.T) {
	lvl, err := levels.Parse("box", "######\n#....#\n#.>..#\n#....#\n######")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	cfg := world.DefaultViewConfig()
	cfg.Samples = 32
	s := world.NewState(lvl, cfg)

	var buf bytes.Buffer
	if err := WriteSnapshot(&buf, s, 320, 200); err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 320 || b.Dy() != 200 {
		t.Fatalf("size = %v", b)
	}
	r, g, b, _ := img.At(120, 80).RGBA()
	if r>>8 < 200 || g>>8 > 60 || b>>8 > 60 {
		t.Fatalf("camera marker pixel = %d,%d,%d, want red", r>>8, g>>8, b>>8)
	}
}
