package envelope

import (
	"fmt"

	"github.com/chazu/resgeom/pkg/geom"
	"github.com/google/uuid"
)

// surfaceNamespace scopes the name-derived surface IDs.
var surfaceNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("resgeom/surface"))

// Surface is one planar face of a space. The polygon winds counterclockwise
// seen from outside the owning space.
type Surface struct {
	ID       uuid.UUID
	Name     string
	Polygon  geom.Polygon
	Type     SurfaceType
	Boundary BoundaryCondition
	Adjacent *Surface // non-owning; set only when Boundary is Adjoining
	Space    *Space
}

func (s *Surface) String() string {
	return fmt.Sprintf("%s (%s, %s, %.2f ft²)", s.Name, s.Type, s.Boundary, s.Polygon.Area())
}

// Area returns the surface area in square feet.
func (s *Surface) Area() float64 {
	return s.Polygon.Area()
}

// Normal returns the outward unit normal.
func (s *Surface) Normal() geom.Point3 {
	return s.Polygon.Normal()
}

// Space is a closed solid bounded by its surfaces.
type Space struct {
	Name     string
	Kind     SpaceKind
	Story    int     // above-grade story index; -1 below grade
	Origin   float64 // z of the space's floor
	Zone     *Zone
	Surfaces []*Surface
}

// AddSurface appends a new surface to the space.
func (s *Space) AddSurface(name string, poly geom.Polygon, typ SurfaceType, bc BoundaryCondition) *Surface {
	surf := s.newSurface(name, poly, typ, bc)
	s.Surfaces = append(s.Surfaces, surf)
	return surf
}

func (s *Space) newSurface(name string, poly geom.Polygon, typ SurfaceType, bc BoundaryCondition) *Surface {
	return &Surface{
		ID:       uuid.NewSHA1(surfaceNamespace, []byte(s.Name+"/"+name)),
		Name:     name,
		Polygon:  poly,
		Type:     typ,
		Boundary: bc,
		Space:    s,
	}
}

// Split replaces old with one surface per polygon, inserted where old was.
// The pieces inherit old's type and boundary condition and are named
// "<old> 1", "<old> 2", and so on. Any adjacency of old is dropped.
func (s *Space) Split(old *Surface, polys []geom.Polygon) ([]*Surface, error) {
	idx := -1
	for i, surf := range s.Surfaces {
		if surf == old {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, fmt.Errorf("surface %q does not belong to space %q", old.Name, s.Name)
	}
	Unlink(old)
	pieces := make([]*Surface, len(polys))
	for i, p := range polys {
		pieces[i] = s.newSurface(fmt.Sprintf("%s %d", old.Name, i+1), p, old.Type, old.Boundary)
	}
	out := make([]*Surface, 0, len(s.Surfaces)+len(pieces)-1)
	out = append(out, s.Surfaces[:idx]...)
	out = append(out, pieces...)
	out = append(out, s.Surfaces[idx+1:]...)
	s.Surfaces = out
	old.Space = nil
	return pieces, nil
}

// Volume returns the enclosed volume by the divergence theorem. It is
// positive when every surface faces outward.
func (s *Space) Volume() float64 {
	v := 0.0
	for _, surf := range s.Surfaces {
		if len(surf.Polygon) == 0 {
			continue
		}
		v += surf.Polygon[0].Dot(surf.Polygon.VectorArea())
	}
	return v / 3
}

// FloorArea returns the total area of the space's floor surfaces.
func (s *Space) FloorArea() float64 {
	a := 0.0
	for _, surf := range s.Surfaces {
		if surf.Type == SurfaceFloor {
			a += surf.Area()
		}
	}
	return a
}

// Zone groups spaces that share thermal conditions. It owns no geometry.
type Zone struct {
	Name   string
	Kind   ZoneKind
	Spaces []*Space
}

// Metadata carries building-level facts derived during generation.
type Metadata struct {
	BuildingType     BuildingType
	NumFloors        int     // above-grade stories
	NumUnits         int     // dwelling units in the building
	Length           float64 // front facade length, ft
	Width            float64 // side facade width, ft
	WallHeight       float64
	AtticHeight      float64 // ridge height above the top plate; zero for flat roofs
	GaragePitch      float64 // effective garage roof pitch after any capping
	FoundationHeight float64
}

// BuildingEnvelope is the root aggregate of the generated model.
type BuildingEnvelope struct {
	Zones    []*Zone
	Spaces   []*Space
	Metadata Metadata
}

// New returns an empty envelope.
func New() *BuildingEnvelope {
	return &BuildingEnvelope{}
}

// IsEmpty reports whether the envelope holds no zones or spaces.
func (e *BuildingEnvelope) IsEmpty() bool {
	return len(e.Zones) == 0 && len(e.Spaces) == 0
}

// AddZone appends a new zone.
func (e *BuildingEnvelope) AddZone(name string, kind ZoneKind) *Zone {
	z := &Zone{Name: name, Kind: kind}
	e.Zones = append(e.Zones, z)
	return z
}

// AddSpace appends a new space and registers it with zone.
func (e *BuildingEnvelope) AddSpace(name string, kind SpaceKind, story int, origin float64, zone *Zone) *Space {
	s := &Space{Name: name, Kind: kind, Story: story, Origin: origin, Zone: zone}
	e.Spaces = append(e.Spaces, s)
	if zone != nil {
		zone.Spaces = append(zone.Spaces, s)
	}
	return s
}

// Space returns the space with the given name, or nil.
func (e *BuildingEnvelope) Space(name string) *Space {
	for _, s := range e.Spaces {
		if s.Name == name {
			return s
		}
	}
	return nil
}

// Zone returns the zone with the given name, or nil.
func (e *BuildingEnvelope) Zone(name string) *Zone {
	for _, z := range e.Zones {
		if z.Name == name {
			return z
		}
	}
	return nil
}

// Surfaces returns every surface in space order.
func (e *BuildingEnvelope) Surfaces() []*Surface {
	var out []*Surface
	for _, s := range e.Spaces {
		out = append(out, s.Surfaces...)
	}
	return out
}

// Link pairs two surfaces of different spaces.
func Link(a, b *Surface) {
	Unlink(a)
	Unlink(b)
	a.Adjacent, b.Adjacent = b, a
	a.Boundary, b.Boundary = Adjoining, Adjoining
}

// Unlink drops the pairing of s, if any. Both sides fall back to Outdoors.
func Unlink(s *Surface) {
	t := s.Adjacent
	if t == nil {
		return
	}
	s.Adjacent, t.Adjacent = nil, nil
	if s.Boundary == Adjoining {
		s.Boundary = Outdoors
	}
	if t.Boundary == Adjoining {
		t.Boundary = Outdoors
	}
}
