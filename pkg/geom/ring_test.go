package geom

import (
	"math"
	"testing"
)

func approx(a, b float64) bool {
	return math.Abs(a-b) <= 1e-6
}

func TestRingArea(t *testing.T) {
	tests := []struct {
		name   string
		ring   Ring
		signed float64
	}{
		{"rect ccw", Rect(0, 0, 4, 2), 8},
		{"rect cw", Rect(0, 0, 4, 2).Reverse(), -8},
		{"l-shape", Ring{P2(0, 0), P2(4, 0), P2(4, 2), P2(2, 2), P2(2, 4), P2(0, 4)}, 12},
		{"degenerate", Ring{P2(0, 0), P2(1, 1)}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.ring.SignedArea(); !approx(got, tt.signed) {
				t.Errorf("SignedArea = %v, want %v", got, tt.signed)
			}
			if got := tt.ring.Area(); !approx(got, math.Abs(tt.signed)) {
				t.Errorf("Area = %v, want %v", got, math.Abs(tt.signed))
			}
		})
	}
}

func TestRingContainsAndCentroid(t *testing.T) {
	r := Rect(0, 0, 4, 2)
	if !r.Contains(P2(1, 1)) {
		t.Error("expected interior point to be contained")
	}
	if r.Contains(P2(5, 1)) {
		t.Error("expected exterior point to be outside")
	}
	c := r.Centroid()
	if !c.Near(P2(2, 1), 1e-9) {
		t.Errorf("Centroid = %v, want (2, 1)", c)
	}
}

func TestRingSimplify(t *testing.T) {
	r := Ring{P2(0, 0), P2(2, 0), P2(2, 0), P2(4, 0), P2(4, 2), P2(0, 2), P2(0, 0)}
	got := r.Simplify(Tolerance)
	if len(got) != 4 {
		t.Fatalf("Simplify kept %d vertices, want 4: %v", len(got), got)
	}
	if !approx(got.Area(), 8) {
		t.Errorf("area changed to %v", got.Area())
	}
}

func TestRingCanonical(t *testing.T) {
	r := Ring{P2(4, 2), P2(0, 2), P2(0, 0), P2(4, 0)}
	got := r.Canonical()
	if got[0] != P2(0, 0) || got[1] != P2(4, 0) {
		t.Errorf("Canonical = %v, want start (0,0) then (4,0)", got)
	}
}

func TestRingCongruent(t *testing.T) {
	a := Rect(0, 0, 4, 2)
	tests := []struct {
		name string
		b    Ring
		want bool
	}{
		{"same", Rect(0, 0, 4, 2), true},
		{"reversed", Rect(0, 0, 4, 2).Reverse(), true},
		{"rotated start", Ring{P2(4, 2), P2(0, 2), P2(0, 0), P2(4, 0)}, true},
		{"extra collinear vertex", Ring{P2(0, 0), P2(2, 0), P2(4, 0), P2(4, 2), P2(0, 2)}, true},
		{"smaller", Rect(0, 0, 2, 2), false},
		{"shifted", Rect(1, 0, 5, 2), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.Congruent(tt.b, Tolerance); got != tt.want {
				t.Errorf("Congruent = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTriangulatePreservesArea(t *testing.T) {
	rings := []Ring{
		Rect(0, 0, 4, 2),
		Ring{P2(0, 0), P2(4, 0), P2(4, 2), P2(2, 2), P2(2, 4), P2(0, 4)},
		Ring{P2(0, 0), P2(6, 0), P2(6, 4), P2(4, 4), P2(4, 1), P2(2, 1), P2(2, 4), P2(0, 4)},
		Rect(0, 0, 4, 2).Reverse(),
	}
	for _, r := range rings {
		total := 0.0
		for _, tri := range Triangulate(r) {
			if tri.Area() <= 0 {
				t.Errorf("triangle %v is not counterclockwise", tri)
			}
			total += tri.Area()
		}
		if !approx(total, r.Area()) {
			t.Errorf("triangulated area %v, ring area %v", total, r.Area())
		}
	}
}

func TestInteriorPoint(t *testing.T) {
	r := Ring{P2(0, 0), P2(6, 0), P2(6, 4), P2(4, 4), P2(4, 1), P2(2, 1), P2(2, 4), P2(0, 4)}
	p, ok := InteriorPoint(r)
	if !ok {
		t.Fatal("expected an interior point")
	}
	if !r.Contains(p) {
		t.Errorf("interior point %v is outside the ring", p)
	}
	if _, ok := InteriorPoint(Ring{P2(0, 0), P2(1, 0), P2(2, 0)}); ok {
		t.Error("expected no interior point for a collinear ring")
	}
}

func TestOverlapArea(t *testing.T) {
	tests := []struct {
		name string
		a, b Ring
		want float64
	}{
		{"identical", Rect(0, 0, 2, 2), Rect(0, 0, 2, 2), 4},
		{"opposite winding", Rect(0, 0, 2, 2), Rect(0, 0, 2, 2).Reverse(), 4},
		{"partial", Rect(0, 0, 2, 2), Rect(1, 1, 3, 3), 1},
		{"contained", Rect(0, 0, 4, 4), Rect(1, 1, 2, 2), 1},
		{"shared edge", Rect(0, 0, 1, 1), Rect(1, 0, 2, 1), 0},
		{"disjoint", Rect(0, 0, 1, 1), Rect(3, 3, 4, 4), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := OverlapArea(tt.a, tt.b); !approx(got, tt.want) {
				t.Errorf("OverlapArea = %v, want %v", got, tt.want)
			}
		})
	}
}
