// Package sdfx exports envelopes as STL through the
// github.com/deadsy/sdfx rendering package.
package sdfx

import (
	"fmt"
	"math"

	"github.com/chazu/resgeom/pkg/envelope"
	"github.com/chazu/resgeom/pkg/kernel"
	"github.com/chazu/resgeom/pkg/tessellate"
	"github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// Compile-time interface check.
var _ kernel.Exporter = (*STLExporter)(nil)

// FeetToMillimetres converts model units for slicers and CAD tools that
// assume millimetres.
const FeetToMillimetres = 304.8

// STLExporter writes every space as triangles into one binary STL file.
type STLExporter struct {
	Scale float64 // multiplies every coordinate; 0 means 1
}

// New returns an exporter that keeps model units (feet).
func New() *STLExporter {
	return &STLExporter{Scale: 1}
}

// Extension implements kernel.Exporter.
func (e *STLExporter) Extension() string { return ".stl" }

// Export tessellates env and saves it to path.
func (e *STLExporter) Export(path string, env *envelope.BuildingEnvelope) error {
	meshes, err := tessellate.Tessellate(env, tessellate.BySpace)
	if err != nil {
		return fmt.Errorf("stl: %w", err)
	}
	tris := Triangles(meshes, e.scale())
	if len(tris) == 0 {
		return fmt.Errorf("stl: envelope has no surfaces")
	}
	if err := render.SaveSTL(path, tris); err != nil {
		return fmt.Errorf("stl: %w", err)
	}
	return nil
}

func (e *STLExporter) scale() float64 {
	if e.Scale == 0 {
		return 1
	}
	return e.Scale
}

// Triangles converts meshes into sdfx triangles, scaling every coordinate.
func Triangles(meshes []*kernel.Mesh, scale float64) []*sdf.Triangle3 {
	var out []*sdf.Triangle3
	for _, m := range meshes {
		for i := 0; i < m.TriangleCount(); i++ {
			t := m.Triangle(i)
			var tri sdf.Triangle3
			for j := range t {
				tri[j] = v3.Vec{
					X: float64(t[j][0]) * scale,
					Y: float64(t[j][1]) * scale,
					Z: float64(t[j][2]) * scale,
				}
			}
			out = append(out, &tri)
		}
	}
	return out
}

// Bounds returns the axis-aligned box around the triangles.
func Bounds(tris []*sdf.Triangle3) sdf.Box3 {
	if len(tris) == 0 {
		return sdf.Box3{}
	}
	lo := v3.Vec{X: math.Inf(1), Y: math.Inf(1), Z: math.Inf(1)}
	hi := v3.Vec{X: math.Inf(-1), Y: math.Inf(-1), Z: math.Inf(-1)}
	for _, t := range tris {
		for _, v := range t {
			lo = v3.Vec{X: math.Min(lo.X, v.X), Y: math.Min(lo.Y, v.Y), Z: math.Min(lo.Z, v.Z)}
			hi = v3.Vec{X: math.Max(hi.X, v.X), Y: math.Max(hi.Y, v.Y), Z: math.Max(hi.Z, v.Z)}
		}
	}
	return sdf.Box3{Min: lo, Max: hi}
}
