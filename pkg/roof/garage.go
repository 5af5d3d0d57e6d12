package roof

import (
	"fmt"

	"github.com/chazu/resgeom/pkg/envelope"
	"github.com/chazu/resgeom/pkg/footprint"
	"github.com/chazu/resgeom/pkg/geom"
	"github.com/chazu/resgeom/pkg/params"
)

// garageRoof adds a small gable volume over the protruding garage tab with
// its ridge perpendicular to the front wall. Its back face lies in the main
// roof: in the front deck when the main ridge runs along x, otherwise in
// the front gable end. The reconciler pairs it with the matching part of
// the main attic.
func garageRoof(env *envelope.BuildingEnvelope, geo *Geometry, fp footprint.Footprint, top, pitch float64, declared params.Pitch) {
	g := fp.Garage
	half := g.Width() / 2
	hg := half * pitch
	geo.GaragePitch = pitch
	if hg > geo.AtticHeight+geom.Tolerance {
		hg = geo.AtticHeight
		geo.GaragePitch = hg / half
		geo.Warnings = append(geo.Warnings, fmt.Sprintf(
			"garage roof pitch reduced from %s (%.3f) to %.3f to keep the garage ridge at or below the main ridge (%.2f ft)",
			declared, pitch, geo.GaragePitch, geo.AtticHeight))
	}
	geo.GarageHeight = hg

	x0, x1, cx := g.X0, g.X1, g.X0+half
	po := g.Protrusion
	yr := 0.0
	if fp.Length >= fp.Width {
		yr = hg / pitch
	}
	z := top + hg
	back := geom.Pt(cx, yr, z)
	front := geom.Pt(cx, -po, z)

	faces := []face{
		{"roof left", geom.NewPolygon(geom.Pt(x0, -po, top), geom.Pt(x0, 0, top), back, front), envelope.SurfaceRoofCeiling},
		{"roof right", geom.NewPolygon(geom.Pt(x1, 0, top), geom.Pt(x1, -po, top), front, back), envelope.SurfaceRoofCeiling},
		{"gable front", geom.NewPolygon(geom.Pt(x0, -po, top), geom.Pt(x1, -po, top), front), envelope.SurfaceWall},
		{"roof back", geom.NewPolygon(geom.Pt(x0, 0, top), geom.Pt(x1, 0, top), back), envelope.SurfaceRoofCeiling},
	}
	ref := geom.Pt(cx, -po/2, top+hg/4)

	sp := env.AddSpace("garage attic space", envelope.SpaceGarageAttic, geo.Attic.Story, top, geo.AtticZone)
	sp.AddSurface("floor", geom.FromRing(g.Tab(), top).Reverse(), envelope.SurfaceFloor, envelope.Outdoors)
	addFaces(sp, faces, ref)
	geo.GarageAttic = sp
}
