package geom

import (
	"testing"
)

func TestPolygonNormalAndArea(t *testing.T) {
	floor := FromRing(Rect(0, 0, 4, 2), 0).Reverse()
	if n := floor.Normal(); !n.Near(Pt(0, 0, -1), 1e-9) {
		t.Errorf("floor normal = %v, want (0,0,-1)", n)
	}
	if !approx(floor.Area(), 8) {
		t.Errorf("floor area = %v, want 8", floor.Area())
	}

	wall := NewPolygon(Pt(0, 0, 8), Pt(0, 0, 0), Pt(4, 0, 0), Pt(4, 0, 8))
	if n := wall.Normal(); !n.Near(Pt(0, -1, 0), 1e-9) {
		t.Errorf("front wall normal = %v, want (0,-1,0)", n)
	}
	if !wall.IsVertical() || wall.IsHorizontal() {
		t.Error("front wall should be vertical")
	}
}

func TestNewPolygonDropsRepeats(t *testing.T) {
	p := NewPolygon(Pt(0, 0, 0), Pt(1, 0, 0), Pt(1, 0, 0), Pt(1, 1, 0), Pt(0, 0, 0))
	if len(p) != 3 {
		t.Errorf("NewPolygon kept %d points, want 3", len(p))
	}
}

func TestOrientAway(t *testing.T) {
	p := FromRing(Rect(0, 0, 4, 2), 8)
	got := p.OrientAway(Pt(2, 1, 10))
	if got.Normal().Z >= 0 {
		t.Errorf("expected normal pointing down, got %v", got.Normal())
	}
	got = p.OrientAway(Pt(2, 1, 0))
	if got.Normal().Z <= 0 {
		t.Errorf("expected normal pointing up, got %v", got.Normal())
	}
}

func TestFrameSharedBetweenSides(t *testing.T) {
	up := FromRing(Rect(0, 0, 4, 2), 8)
	down := up.Reverse()
	fu := NewFrame(up.Plane())
	fd := NewFrame(down.Plane())
	if fu != fd {
		t.Fatalf("frames differ: %+v vs %+v", fu, fd)
	}
	for _, v := range up {
		if back := fu.Lift(fu.Project(v)); !back.Near(v, 1e-9) {
			t.Errorf("round trip of %v gave %v", v, back)
		}
	}
	if fu.ProjectPolygon(up).SignedArea() <= 0 {
		t.Error("polygon along the frame normal should project counterclockwise")
	}
	if fu.ProjectPolygon(down).SignedArea() >= 0 {
		t.Error("polygon against the frame normal should project clockwise")
	}
}

func TestPlaneCoplanarAndFacing(t *testing.T) {
	a := FromRing(Rect(0, 0, 4, 2), 8)
	b := a.Reverse()
	c := FromRing(Rect(0, 0, 4, 2), 9)
	if !a.Plane().Coplanar(b.Plane(), Tolerance) {
		t.Error("a and its reverse should be coplanar")
	}
	if !a.Plane().Facing(b.Plane()) {
		t.Error("a and its reverse should face each other")
	}
	if a.Plane().Coplanar(c.Plane(), Tolerance) {
		t.Error("planes at z=8 and z=9 should not be coplanar")
	}
}

func TestPolygonCongruentAndOverlap(t *testing.T) {
	ceiling := FromRing(Rect(0, 0, 4, 2), 8)
	floor := FromRing(Rect(0, 0, 4, 2), 8).Reverse()
	if !ceiling.Congruent(floor, Tolerance) {
		t.Error("ceiling and floor with the same outline should be congruent")
	}
	half := FromRing(Rect(0, 0, 2, 2), 8).Reverse()
	if ceiling.Congruent(half, Tolerance) {
		t.Error("half outline should not be congruent")
	}
	if got := PolygonOverlap(ceiling, half); !approx(got, 4) {
		t.Errorf("PolygonOverlap = %v, want 4", got)
	}
	other := FromRing(Rect(0, 0, 2, 2), 9)
	if got := PolygonOverlap(ceiling, other); got != 0 {
		t.Errorf("PolygonOverlap across planes = %v, want 0", got)
	}
}

func TestCongruentFacingSurfaces(t *testing.T) {
	plan := Ring{P2(0, 0), P2(10, 0), P2(10, 5), P2(4, 5), P2(4, 9), P2(0, 9)}
	tests := []struct {
		name string
		z    float64
	}{
		{"ground ceiling", 8},
		{"attic floor", 16},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			below := FromRing(plan, tt.z)
			above := below.Reverse()
			f := NewFrame(below.Plane())
			a, b := f.ProjectPolygon(below), f.ProjectPolygon(above)
			if !approx(a.Area(), 66) || !approx(b.Area(), 66) {
				t.Errorf("projected areas = %v, %v, want 66 for both windings", a.Area(), b.Area())
			}
			if !below.Plane().Facing(above.Plane()) {
				t.Fatal("reversed polygon should face the original")
			}
			if !below.Congruent(above, Tolerance) || !above.Congruent(below, Tolerance) {
				t.Error("facing polygons with one outline should be congruent")
			}
		})
	}
}

func TestPolygonSimplify(t *testing.T) {
	p := NewPolygon(Pt(0, 0, 0), Pt(0, 2, 0), Pt(0, 4, 0), Pt(0, 4, 8), Pt(0, 0, 8))
	got := p.Simplify(Tolerance)
	if len(got) != 4 {
		t.Fatalf("Simplify kept %d points, want 4", len(got))
	}
	for _, v := range got {
		if v == Pt(0, 2, 0) {
			t.Error("collinear point survived")
		}
	}
}
