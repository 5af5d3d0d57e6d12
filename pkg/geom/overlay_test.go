package geom

import (
	"errors"
	"testing"
)

// otherKey keys faces by the first covering ring other than owner.
func otherKey(owner int) func([]int) int {
	return func(cover []int) int {
		for _, c := range cover {
			if c != owner {
				return c
			}
		}
		return -1
	}
}

func totalFaceArea(o *Overlay) float64 {
	a := 0.0
	for i := 0; i < o.NumFaces(); i++ {
		a += o.FaceRing(i).SignedArea()
	}
	return a
}

func TestOverlaySplitByTwoHalves(t *testing.T) {
	rings := []Ring{Rect(0, 0, 4, 2), Rect(0, 0, 2, 2), Rect(2, 0, 4, 2)}
	o, err := NewOverlay(rings, Tolerance)
	if err != nil {
		t.Fatalf("NewOverlay: %v", err)
	}
	if o.NumFaces() != 2 {
		t.Fatalf("NumFaces = %d, want 2", o.NumFaces())
	}
	for i := 0; i < o.NumFaces(); i++ {
		if len(o.Cover(i)) != 2 {
			t.Errorf("face %d cover = %v, want two rings", i, o.Cover(i))
		}
	}

	pieces, err := o.Partition(0, otherKey(0))
	if err != nil {
		t.Fatalf("Partition: %v", err)
	}
	if len(pieces) != 2 {
		t.Fatalf("got %d pieces, want 2", len(pieces))
	}
	if pieces[0].Key != 1 || pieces[1].Key != 2 {
		t.Errorf("keys = %d, %d; want 1, 2", pieces[0].Key, pieces[1].Key)
	}
	for _, p := range pieces {
		if !approx(p.Ring.SignedArea(), 4) {
			t.Errorf("piece %d area = %v, want 4", p.Key, p.Ring.SignedArea())
		}
	}
}

func TestOverlayMergesFacesWithSameKey(t *testing.T) {
	rings := []Ring{Rect(0, 0, 4, 2), Rect(0, 0, 2, 2), Rect(2, 0, 4, 2)}
	o, err := NewOverlay(rings, Tolerance)
	if err != nil {
		t.Fatalf("NewOverlay: %v", err)
	}
	pieces, err := o.Partition(0, func([]int) int { return 0 })
	if err != nil {
		t.Fatalf("Partition: %v", err)
	}
	if len(pieces) != 1 {
		t.Fatalf("got %d pieces, want 1", len(pieces))
	}
	if !pieces[0].Ring.Congruent(rings[0], Tolerance) {
		t.Errorf("merged piece %v is not the original ring", pieces[0].Ring)
	}
}

func TestOverlayPartialCover(t *testing.T) {
	rings := []Ring{Rect(0, 0, 4, 2), Rect(1, 0, 3, 2)}
	o, err := NewOverlay(rings, Tolerance)
	if err != nil {
		t.Fatalf("NewOverlay: %v", err)
	}
	if o.NumFaces() != 3 {
		t.Fatalf("NumFaces = %d, want 3", o.NumFaces())
	}
	pieces, err := o.Partition(0, otherKey(0))
	if err != nil {
		t.Fatalf("Partition: %v", err)
	}
	want := []struct {
		key  int
		area float64
		x0   float64
	}{
		{-1, 2, 0},
		{-1, 2, 3},
		{1, 4, 1},
	}
	if len(pieces) != len(want) {
		t.Fatalf("got %d pieces, want %d", len(pieces), len(want))
	}
	for i, w := range want {
		p := pieces[i]
		if p.Key != w.key || !approx(p.Ring.SignedArea(), w.area) || !approx(p.Ring[0].X, w.x0) {
			t.Errorf("piece %d = key %d area %v start %v; want key %d area %v x0 %v",
				i, p.Key, p.Ring.SignedArea(), p.Ring[0], w.key, w.area, w.x0)
		}
	}

	inner, err := o.Partition(1, otherKey(1))
	if err != nil {
		t.Fatalf("Partition inner: %v", err)
	}
	if len(inner) != 1 || inner[0].Key != 0 {
		t.Errorf("inner pieces = %+v, want one piece keyed 0", inner)
	}
}

func TestOverlayCrossingRings(t *testing.T) {
	rings := []Ring{Rect(0, 0, 2, 2), Rect(1, 1, 3, 3)}
	o, err := NewOverlay(rings, Tolerance)
	if err != nil {
		t.Fatalf("NewOverlay: %v", err)
	}
	if o.NumFaces() != 3 {
		t.Fatalf("NumFaces = %d, want 3", o.NumFaces())
	}
	if got := totalFaceArea(o); !approx(got, 7) {
		t.Errorf("total face area = %v, want 7", got)
	}
	shared := 0
	for i := 0; i < o.NumFaces(); i++ {
		if len(o.Cover(i)) == 2 {
			shared++
			if !approx(o.FaceRing(i).SignedArea(), 1) {
				t.Errorf("shared face area = %v, want 1", o.FaceRing(i).SignedArea())
			}
		}
	}
	if shared != 1 {
		t.Errorf("found %d shared faces, want 1", shared)
	}
}

func TestOverlayRejectsHoles(t *testing.T) {
	_, err := NewOverlay([]Ring{Rect(0, 0, 4, 4), Rect(1, 1, 2, 2)}, Tolerance)
	if !errors.Is(err, ErrHole) {
		t.Errorf("err = %v, want ErrHole", err)
	}
}
