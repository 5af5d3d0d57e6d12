// Package foundation builds the below-grade space under the ground story.
package foundation

import (
	"fmt"

	"github.com/chazu/resgeom/pkg/envelope"
	"github.com/chazu/resgeom/pkg/extrude"
	"github.com/chazu/resgeom/pkg/footprint"
	"github.com/chazu/resgeom/pkg/geom"
	"github.com/chazu/resgeom/pkg/params"
)

// Geometry describes the generated foundation.
type Geometry struct {
	Type    params.FoundationType
	Height  float64
	Outline geom.Ring // plan outline of the foundation space; nil for a slab
	Zone    *envelope.Zone
	Space   *envelope.Space // nil for a slab
}

// Build extrudes the foundation from grade down to its height. A slab adds
// no space; the ground-story floors stay in contact with the ground.
//
// Crawlspaces, pier and beam, and unfinished basements follow the main
// rectangle, so they also sit under an inset garage. A finished basement
// follows the ground-story living outline. Walls are Ground, except the open
// sides of pier and beam, which are Outdoors.
func Build(env *envelope.BuildingEnvelope, fp footprint.Footprint, f params.Foundation) (Geometry, error) {
	geo := Geometry{Type: f.Type, Height: f.Height}
	lo, hi := f.Type.HeightRange()
	if f.Height < lo || f.Height > hi {
		return Geometry{}, envelope.InvalidParameterError{
			Param:   "foundation-height",
			Message: fmt.Sprintf("%s height %.2f ft outside [%.1f, %.1f] ft", f.Type, f.Height, lo, hi),
		}
	}

	var (
		zoneName string
		zoneKind envelope.ZoneKind
		walls    = envelope.Ground
	)
	geo.Outline = fp.Rect()
	switch f.Type {
	case params.Slab:
		geo.Outline = nil
		return geo, nil
	case params.Crawlspace:
		zoneName, zoneKind = "crawlspace zone", envelope.ZoneCrawlspace
	case params.PierBeam:
		zoneName, zoneKind = "crawlspace zone", envelope.ZoneCrawlspace
		walls = envelope.Outdoors
	case params.UnfinishedBasement:
		zoneName, zoneKind = "unfinished basement zone", envelope.ZoneBasement
	case params.FinishedBasement:
		zoneName, zoneKind = "finished basement zone", envelope.ZoneFinishedBasement
		geo.Outline = fp.GroundOutline()
	default:
		return Geometry{}, envelope.InvalidParameterError{Param: "foundation-type", Message: fmt.Sprintf("unknown type %s", f.Type)}
	}

	geo.Zone = env.AddZone(zoneName, zoneKind)
	geo.Space = env.AddSpace(spaceName(f.Type), envelope.SpaceFoundation, -1, -f.Height, geo.Zone)
	if err := extrude.Prism(geo.Space, geo.Outline, -f.Height, 0, envelope.Ground, walls, envelope.Outdoors); err != nil {
		return Geometry{}, fmt.Errorf("foundation: %w", err)
	}
	return geo, nil
}

func spaceName(t params.FoundationType) string {
	switch t {
	case params.Crawlspace:
		return "crawlspace"
	case params.PierBeam:
		return "pier and beam space"
	case params.UnfinishedBasement:
		return "unfinished basement space"
	case params.FinishedBasement:
		return "finished basement space"
	}
	return t.String()
}
