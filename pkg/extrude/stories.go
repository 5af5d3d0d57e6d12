package extrude

import (
	"fmt"

	"github.com/chazu/resgeom/pkg/envelope"
	"github.com/chazu/resgeom/pkg/footprint"
)

// Stories is the result of extruding the above-grade floors.
type Stories struct {
	LivingZone *envelope.Zone
	Living     []*envelope.Space // one per story, bottom up
	GarageZone *envelope.Zone    // nil without a garage
	Garage     *envelope.Space

	Height float64 // wall height per story
	Top    float64 // elevation of the top plate
}

// Extrude adds one living space per story and, when the footprint has a
// garage, a garage space on the ground story. Ground-story floors start as
// Ground; every other surface starts as Outdoors.
func Extrude(env *envelope.BuildingEnvelope, fp footprint.Footprint, stories int, height float64) (Stories, error) {
	if stories < 1 || height <= 0 {
		return Stories{}, fmt.Errorf("extrude: %d stories of %.2f ft", stories, height)
	}
	st := Stories{
		LivingZone: env.AddZone("living zone", envelope.ZoneLiving),
		Height:     height,
		Top:        float64(stories) * height,
	}
	for i := 0; i < stories; i++ {
		z0 := float64(i) * height
		outline := fp.UpperOutline()
		floor := envelope.Outdoors
		if i == 0 {
			outline = fp.GroundOutline()
			floor = envelope.Ground
		}
		sp := env.AddSpace(fmt.Sprintf("living space %d", i+1), envelope.SpaceLiving, i, z0, st.LivingZone)
		if err := Prism(sp, outline, z0, z0+height, floor, envelope.Outdoors, envelope.Outdoors); err != nil {
			return Stories{}, err
		}
		st.Living = append(st.Living, sp)
	}

	if fp.Garage != nil {
		st.GarageZone = env.AddZone("garage zone", envelope.ZoneGarage)
		st.Garage = env.AddSpace("garage space", envelope.SpaceGarage, 0, 0, st.GarageZone)
		if err := Prism(st.Garage, fp.Garage.Rect(), 0, height, envelope.Ground, envelope.Outdoors, envelope.Outdoors); err != nil {
			return Stories{}, err
		}
	}
	return st, nil
}
