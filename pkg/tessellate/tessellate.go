// Package tessellate turns envelope surfaces into flat triangle meshes for
// rendering and mesh export.
package tessellate

import (
	"fmt"

	"github.com/chazu/resgeom/pkg/envelope"
	"github.com/chazu/resgeom/pkg/geom"
	"github.com/chazu/resgeom/pkg/kernel"
)

// Grouping selects how surfaces are collected into meshes.
type Grouping int

const (
	// BySpace produces one mesh per space, named after it.
	BySpace Grouping = iota
	// ByBoundary produces one mesh per boundary condition present.
	ByBoundary
)

func (g Grouping) String() string {
	switch g {
	case BySpace:
		return "space"
	case ByBoundary:
		return "boundary"
	default:
		return fmt.Sprintf("Grouping(%d)", int(g))
	}
}

// Tessellate triangulates every surface of env. Triangles keep the
// surface's outward winding and carry its normal. The envelope is not
// modified.
func Tessellate(env *envelope.BuildingEnvelope, by Grouping) ([]*kernel.Mesh, error) {
	if env == nil {
		return nil, nil
	}
	switch by {
	case BySpace:
		var meshes []*kernel.Mesh
		for _, sp := range env.Spaces {
			m := &kernel.Mesh{Name: sp.Name}
			for _, s := range sp.Surfaces {
				if err := AddSurface(m, s); err != nil {
					return nil, err
				}
			}
			meshes = append(meshes, m)
		}
		return meshes, nil

	case ByBoundary:
		byBC := make(map[envelope.BoundaryCondition]*kernel.Mesh)
		for _, s := range env.Surfaces() {
			m := byBC[s.Boundary]
			if m == nil {
				m = &kernel.Mesh{Name: s.Boundary.String()}
				byBC[s.Boundary] = m
			}
			if err := AddSurface(m, s); err != nil {
				return nil, err
			}
		}
		var meshes []*kernel.Mesh
		for _, bc := range envelope.AllBoundaryConditions {
			if m := byBC[bc]; m != nil {
				meshes = append(meshes, m)
			}
		}
		return meshes, nil
	}
	return nil, fmt.Errorf("tessellate: unknown grouping %s", by)
}

// AddSurface ear-clips one surface in its own plane and appends the
// triangles to m.
func AddSurface(m *kernel.Mesh, s *envelope.Surface) error {
	frame := geom.NewFrame(s.Polygon.Plane())
	tris := geom.Triangulate(frame.ProjectPolygon(s.Polygon))
	if len(tris) == 0 {
		return fmt.Errorf("tessellate: surface %s has no area", s.Name)
	}
	n := s.Normal()
	flip := frame.N.Dot(n) < 0
	normal := vec(n)
	for _, t := range tris {
		a, b, c := frame.Lift(t[0]), frame.Lift(t[1]), frame.Lift(t[2])
		if flip {
			b, c = c, b
		}
		m.AddTriangle(vec(a), vec(b), vec(c), normal)
	}
	return nil
}

func vec(p geom.Point3) [3]float32 {
	return [3]float32{float32(p.X), float32(p.Y), float32(p.Z)}
}
