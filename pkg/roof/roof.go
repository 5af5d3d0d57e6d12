// Package roof synthesizes the attic volumes above the top plate: the main
// gable or hip attic and, over a protruding garage, a secondary gable
// volume.
package roof

import (
	"fmt"
	"math"

	"github.com/chazu/resgeom/pkg/envelope"
	"github.com/chazu/resgeom/pkg/extrude"
	"github.com/chazu/resgeom/pkg/footprint"
	"github.com/chazu/resgeom/pkg/geom"
	"github.com/chazu/resgeom/pkg/params"
)

// Geometry describes the synthesized roof.
type Geometry struct {
	Type        params.RoofType
	AtticHeight float64        // main ridge height above the top plate
	Ridge       [2]geom.Point3 // ridge end points; equal for a pyramid hip
	AtticZone   *envelope.Zone
	Attic       *envelope.Space

	GarageAttic  *envelope.Space // nil unless a garage protrudes under a sloped roof
	GarageHeight float64         // garage ridge height above the top plate
	GaragePitch  float64         // effective garage pitch (rise over run)

	Warnings []string
}

// face is one attic surface before orientation.
type face struct {
	name string
	poly geom.Polygon
	typ  envelope.SurfaceType
}

// Check rejects roof configurations the synthesizer cannot build. It runs
// before any geometry is produced.
func Check(fp footprint.Footprint, p params.Params) error {
	if p.Roof.Type != params.Hip || fp.Garage == nil {
		return nil
	}
	g := fp.Garage
	if g.Protrusion > geom.Tolerance {
		return envelope.UnsupportedRoofConfigurationError{
			Message: fmt.Sprintf("hip roof cannot cover a garage protruding %.2f ft", g.Protrusion),
		}
	}
	short := math.Min(fp.Length, fp.Width)
	if g.Width() > short/2+geom.Tolerance {
		return envelope.UnsupportedRoofConfigurationError{
			Message: fmt.Sprintf("hip roof with a %.2f ft garage wider than half the %.2f ft plan depth", g.Width(), short),
		}
	}
	return nil
}

// Synthesize adds the attic spaces for a sloped roof. A flat roof adds
// nothing: the top ceilings already are the roof.
func Synthesize(env *envelope.BuildingEnvelope, fp footprint.Footprint, st extrude.Stories, p params.Params) (Geometry, error) {
	if err := Check(fp, p); err != nil {
		return Geometry{}, err
	}
	geo := Geometry{Type: p.Roof.Type}
	switch p.Roof.Type {
	case params.Flat:
		return geo, nil
	case params.Gable, params.Hip:
	default:
		return Geometry{}, envelope.UnsupportedRoofConfigurationError{Message: fmt.Sprintf("unknown roof type %s", p.Roof.Type)}
	}

	pitch := p.Roof.Pitch.Value()
	if pitch <= 0 {
		return Geometry{}, envelope.InvalidParameterError{Param: "roof-pitch", Message: fmt.Sprintf("%s is not sloped", p.Roof.Pitch)}
	}
	L, W, top := fp.Length, fp.Width, st.Top
	geo.AtticHeight = math.Min(L, W) / 2 * pitch

	if p.Attic == params.AtticFinished {
		geo.AtticZone = st.LivingZone
	} else {
		geo.AtticZone = env.AddZone("attic zone", envelope.ZoneAttic)
	}

	var faces []face
	if p.Roof.Type == params.Gable {
		faces, geo.Ridge = gable(L, W, top, geo.AtticHeight)
	} else {
		faces, geo.Ridge = hip(L, W, top, geo.AtticHeight)
	}
	geo.Attic = env.AddSpace("attic space", envelope.SpaceAttic, p.Stories, top, geo.AtticZone)
	geo.Attic.AddSurface("floor", geom.FromRing(fp.Rect(), top).Reverse(), envelope.SurfaceFloor, envelope.Outdoors)
	addFaces(geo.Attic, faces, geom.Pt(L/2, W/2, top+geo.AtticHeight/4))

	if g := fp.Garage; g != nil && g.Protrusion > geom.Tolerance {
		garageRoof(env, &geo, fp, top, pitch, p.Roof.Pitch)
	}
	return geo, nil
}

// addFaces orients each face away from the interior point ref.
func addFaces(sp *envelope.Space, faces []face, ref geom.Point3) {
	for _, f := range faces {
		sp.AddSurface(f.name, f.poly.OrientAway(ref), f.typ, envelope.Outdoors)
	}
}

// gable builds the two decks and two triangular end walls of a gable roof
// whose ridge runs along the longer plan dimension.
func gable(L, W, top, ha float64) ([]face, [2]geom.Point3) {
	z := top + ha
	if L >= W {
		r0, r1 := geom.Pt(0, W/2, z), geom.Pt(L, W/2, z)
		return []face{
			{"roof front", geom.NewPolygon(geom.Pt(0, 0, top), geom.Pt(L, 0, top), r1, r0), envelope.SurfaceRoofCeiling},
			{"roof back", geom.NewPolygon(geom.Pt(L, W, top), geom.Pt(0, W, top), r0, r1), envelope.SurfaceRoofCeiling},
			{"gable left", geom.NewPolygon(geom.Pt(0, 0, top), geom.Pt(0, W, top), r0), envelope.SurfaceWall},
			{"gable right", geom.NewPolygon(geom.Pt(L, 0, top), geom.Pt(L, W, top), r1), envelope.SurfaceWall},
		}, [2]geom.Point3{r0, r1}
	}
	r0, r1 := geom.Pt(L/2, 0, z), geom.Pt(L/2, W, z)
	return []face{
		{"roof left", geom.NewPolygon(geom.Pt(0, 0, top), geom.Pt(0, W, top), r1, r0), envelope.SurfaceRoofCeiling},
		{"roof right", geom.NewPolygon(geom.Pt(L, 0, top), geom.Pt(L, W, top), r1, r0), envelope.SurfaceRoofCeiling},
		{"gable front", geom.NewPolygon(geom.Pt(0, 0, top), geom.Pt(L, 0, top), r0), envelope.SurfaceWall},
		{"gable back", geom.NewPolygon(geom.Pt(0, W, top), geom.Pt(L, W, top), r1), envelope.SurfaceWall},
	}, [2]geom.Point3{r0, r1}
}

// hip builds four sloped faces. The ridge is inset by half the shorter plan
// dimension from each end and collapses to an apex on a square plan.
func hip(L, W, top, ha float64) ([]face, [2]geom.Point3) {
	z := top + ha
	if L >= W {
		d := W / 2
		r0, r1 := geom.Pt(d, W/2, z), geom.Pt(L-d, W/2, z)
		return []face{
			{"roof front", geom.NewPolygon(geom.Pt(0, 0, top), geom.Pt(L, 0, top), r1, r0), envelope.SurfaceRoofCeiling},
			{"roof back", geom.NewPolygon(geom.Pt(L, W, top), geom.Pt(0, W, top), r0, r1), envelope.SurfaceRoofCeiling},
			{"roof left", geom.NewPolygon(geom.Pt(0, W, top), geom.Pt(0, 0, top), r0), envelope.SurfaceRoofCeiling},
			{"roof right", geom.NewPolygon(geom.Pt(L, 0, top), geom.Pt(L, W, top), r1), envelope.SurfaceRoofCeiling},
		}, [2]geom.Point3{r0, r1}
	}
	d := L / 2
	r0, r1 := geom.Pt(L/2, d, z), geom.Pt(L/2, W-d, z)
	return []face{
		{"roof left", geom.NewPolygon(geom.Pt(0, 0, top), geom.Pt(0, W, top), r1, r0), envelope.SurfaceRoofCeiling},
		{"roof right", geom.NewPolygon(geom.Pt(L, W, top), geom.Pt(L, 0, top), r0, r1), envelope.SurfaceRoofCeiling},
		{"roof front", geom.NewPolygon(geom.Pt(0, 0, top), geom.Pt(L, 0, top), r0), envelope.SurfaceRoofCeiling},
		{"roof back", geom.NewPolygon(geom.Pt(L, W, top), geom.Pt(0, W, top), r1), envelope.SurfaceRoofCeiling},
	}, [2]geom.Point3{r0, r1}
}
