package geom

import (
	"math"
	"math/rand/v2"
	"testing"
)

func TestCellCornersAroundOrigin(t *testing.T) {
	const size = 40.0
	cases := []struct {
		p        Vec2
		topLeft  Vec2
		botRight Vec2
	}{
		{V(0, 0), V(0, 0), V(0, 0)},
		{V(10, 0), V(0, 0), V(40, 0)},
		{V(10, 10), V(0, 0), V(40, 40)},
		{V(6, 6), V(0, 0), V(40, 40)},
		{V(6, -6), V(0, -40), V(40, 0)},
		{V(-6, -6), V(-40, -40), V(0, 0)},
		{V(46, 10), V(40, 0), V(80, 40)},
		{V(-46, 10), V(-80, 0), V(-40, 40)},
	}
	for _, tc := range cases {
		cell := CellBounds(tc.p, size)
		if cell.TopLeft() != tc.topLeft {
			t.Fatalf("top-left of %v = %v, want %v", tc.p, cell.TopLeft(), tc.topLeft)
		}
		if cell.BottomRight() != tc.botRight {
			t.Fatalf("bottom-right of %v = %v, want %v", tc.p, cell.BottomRight(), tc.botRight)
		}
		wantTR := V(tc.botRight.X, tc.topLeft.Y)
		if cell.TopRight() != wantTR {
			t.Fatalf("top-right of %v = %v, want %v", tc.p, cell.TopRight(), wantTR)
		}
		wantBL := V(tc.topLeft.X, tc.botRight.Y)
		if cell.BottomLeft() != wantBL {
			t.Fatalf("bottom-left of %v = %v, want %v", tc.p, cell.BottomLeft(), wantBL)
		}
	}
}

func TestNearestMultipleBracketsValue(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 0))
	for i := 0; i < 5000; i++ {
		n := (rng.Float64()*2 - 1) * 1000
		m := 1 + rng.Float64()*63
		if i%5 == 0 {
			n = math.Round(n)
			m = math.Round(m)
		}
		below := NearestMultipleBelow(n, m)
		above := NearestMultipleAbove(n, m)
		if below > n || above < n {
			t.Fatalf("n=%v m=%v: expected %v <= n <= %v", n, m, below, above)
		}
		diff := above - below
		if diff != 0 && math.Abs(diff-m) > 1e-9 {
			t.Fatalf("n=%v m=%v: above-below = %v, want 0 or m", n, m, diff)
		}
	}
}

func TestNearestMultipleExact(t *testing.T) {
	for _, n := range []float64{-80, -40, 0, 40, 120, 4000} {
		if got := NearestMultipleBelow(n, 40); got != n {
			t.Fatalf("below(%v, 40) = %v, want %v", n, got, n)
		}
		if got := NearestMultipleAbove(n, 40); got != n {
			t.Fatalf("above(%v, 40) = %v, want %v", n, got, n)
		}
	}
}

func TestNearestMultipleNegativeUsesFloor(t *testing.T) {
	if got := NearestMultipleBelow(-0.5, 20); got != -20 {
		t.Fatalf("below(-0.5, 20) = %v, want -20", got)
	}
	if got := NearestMultipleAbove(-0.5, 20); got != 0 {
		t.Fatalf("above(-0.5, 20) = %v, want 0", got)
	}
	if got := NearestMultipleBelow(-21, 20); got != -40 {
		t.Fatalf("below(-21, 20) = %v, want -40", got)
	}
}

func TestRectContainsIsClosed(t *testing.T) {
	r := R(40, 0, 40, 40)
	inside := []Vec2{V(40, 10), V(80, 40), V(40, 0), V(60, 20)}
	for _, p := range inside {
		if !r.Contains(p) {
			t.Fatalf("%v should be inside %v", p, r)
		}
	}
	outside := []Vec2{V(39.999, 10), V(80.001, 10), V(60, -0.001), V(60, 40.001)}
	for _, p := range outside {
		if r.Contains(p) {
			t.Fatalf("%v should be outside %v", p, r)
		}
	}
}

func TestIntersection(t *testing.T) {
	got, ok := Intersection(R(0, 0, 100, 60), R(80, 40, 40, 40))
	if !ok {
		t.Fatal("expected overlap")
	}
	if want := R(80, 40, 20, 20); got != want {
		t.Fatalf("intersection = %+v, want %+v", got, want)
	}
	if _, ok := Intersection(R(0, 0, 10, 10), R(10, 0, 10, 10)); ok {
		t.Fatal("rectangles sharing only an edge must not intersect")
	}
	if _, ok := Intersection(R(0, 0, 10, 10), R(20, 20, 5, 5)); ok {
		t.Fatal("disjoint rectangles must not intersect")
	}
}
