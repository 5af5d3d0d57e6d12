package sdfx

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/chazu/resgeom/pkg/envelope"
	"github.com/chazu/resgeom/pkg/extrude"
	"github.com/chazu/resgeom/pkg/geom"
	"github.com/chazu/resgeom/pkg/kernel"
	"github.com/deadsy/sdfx/sdf"
)

func boxEnvelope(t *testing.T) *envelope.BuildingEnvelope {
	t.Helper()
	env := envelope.New()
	sp := env.AddSpace("living space 1", envelope.SpaceLiving, 0, 0, env.AddZone("living zone", envelope.ZoneLiving))
	if err := extrude.Prism(sp, geom.Rect(0, 0, 40, 20), 0, 8, envelope.Ground, envelope.Outdoors, envelope.Outdoors); err != nil {
		t.Fatalf("Prism: %v", err)
	}
	return env
}

func TestTrianglesScale(t *testing.T) {
	m := &kernel.Mesh{}
	m.AddTriangle([3]float32{0, 0, 0}, [3]float32{1, 0, 0}, [3]float32{0, 2, 3}, [3]float32{0, 0, 1})

	tris := Triangles([]*kernel.Mesh{m}, FeetToMillimetres)
	if len(tris) != 1 {
		t.Fatalf("got %d triangles, want 1", len(tris))
	}
	if got := tris[0][2]; math.Abs(got.Y-609.6) > 1e-3 || math.Abs(got.Z-914.4) > 1e-3 {
		t.Errorf("third vertex = %v, want (0, 609.6, 914.4)", got)
	}
}

func TestBounds(t *testing.T) {
	m := &kernel.Mesh{}
	m.AddTriangle([3]float32{-1, 0, 0}, [3]float32{4, 0, 0}, [3]float32{0, 2, 3}, [3]float32{0, 0, 1})
	b := Bounds(Triangles([]*kernel.Mesh{m}, 1))
	if b.Min.X != -1 || b.Max.X != 4 || b.Max.Y != 2 || b.Max.Z != 3 {
		t.Errorf("Bounds = %+v", b)
	}
	if empty := Bounds(nil); empty != (sdf.Box3{}) {
		t.Errorf("Bounds(nil) = %+v, want zero box", empty)
	}
}

func TestExportWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "house.stl")
	e := New()
	if e.Extension() != ".stl" {
		t.Errorf("Extension = %q", e.Extension())
	}
	if err := e.Export(path, boxEnvelope(t)); err != nil {
		t.Fatalf("Export: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat: %v", err)
	}
	if info.Size() == 0 {
		t.Error("STL file is empty")
	}
}

func TestExportEmptyEnvelope(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.stl")
	if err := New().Export(path, envelope.New()); err == nil {
		t.Error("expected error for an envelope without surfaces")
	}
}
