package classify

import (
	"testing"

	"github.com/chazu/resgeom/pkg/envelope"
	"github.com/chazu/resgeom/pkg/footprint"
	"github.com/chazu/resgeom/pkg/geom"
	"github.com/chazu/resgeom/pkg/params"
)

func addBox(env *envelope.BuildingEnvelope, name string, x0, y0, x1, y1 float64) *envelope.Space {
	z := env.Zone("zone")
	if z == nil {
		z = env.AddZone("zone", envelope.ZoneLiving)
	}
	sp := env.AddSpace(name, envelope.SpaceLiving, 0, 0, z)
	plan := geom.Rect(x0, y0, x1, y1)
	sp.AddSurface("floor", geom.FromRing(plan, 0).Reverse(), envelope.SurfaceFloor, envelope.Ground)
	for i := range plan {
		a, b := plan[i], plan[(i+1)%len(plan)]
		sp.AddSurface(
			"wall "+string(rune('a'+i)),
			geom.NewPolygon(a.At3(8), a.At3(0), b.At3(0), b.At3(8)),
			envelope.SurfaceWall, envelope.Outdoors,
		)
	}
	sp.AddSurface("ceiling", geom.FromRing(plan, 8), envelope.SurfaceRoofCeiling, envelope.Outdoors)
	return sp
}

func surfaceNamed(sp *envelope.Space, name string) *envelope.Surface {
	for _, s := range sp.Surfaces {
		if s.Name == name {
			return s
		}
	}
	return nil
}

// Rect(0,0,40,20) walls: a front (y=0), b right (x=40), c back (y=20), d left (x=0).
func TestClassifyPartyWalls(t *testing.T) {
	fp := footprint.Footprint{Length: 40, Width: 20, Area: 800}
	tests := []struct {
		name     string
		attached params.Attached
		want     []string
	}{
		{"detached", params.Attached{Position: params.UnitNone, NumUnits: 1}, nil},
		{"left unit", params.Attached{Position: params.UnitLeft, NumUnits: 3}, []string{"wall b"}},
		{"right unit", params.Attached{Position: params.UnitRight, NumUnits: 3}, []string{"wall d"}},
		{"middle unit", params.Attached{Position: params.UnitMiddle, NumUnits: 3}, []string{"wall b", "wall d"}},
		{
			"middle unit with rear units",
			params.Attached{Position: params.UnitMiddle, NumUnits: 6, HasRearUnits: true},
			[]string{"wall b", "wall c", "wall d"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := envelope.New()
			sp := addBox(env, "living space 1", 0, 0, 40, 20)

			res := Classify(env, fp, tt.attached)
			if res.Adiabatic != len(tt.want) {
				t.Errorf("Adiabatic = %d, want %d", res.Adiabatic, len(tt.want))
			}
			want := make(map[string]bool)
			for _, n := range tt.want {
				want[n] = true
			}
			for _, s := range sp.Surfaces {
				adiabatic := s.Boundary == envelope.Adiabatic
				if adiabatic != want[s.Name] {
					t.Errorf("%s boundary = %s", s.Name, s.Boundary)
				}
			}
		})
	}
}

func TestClassifyBreaksPartyWallPairing(t *testing.T) {
	env := envelope.New()
	house := addBox(env, "house", 0, 0, 40, 20)
	next := addBox(env, "next door", 40, 0, 60, 20)
	party, other := surfaceNamed(house, "wall b"), surfaceNamed(next, "wall d")
	envelope.Link(party, other)

	fp := footprint.Footprint{Length: 40, Width: 20, Area: 800}
	Classify(env, fp, params.Attached{Position: params.UnitLeft, NumUnits: 2})

	if party.Boundary != envelope.Adiabatic || party.Adjacent != nil {
		t.Errorf("party wall = %s adjacent %v, want Adiabatic and unpaired", party.Boundary, party.Adjacent)
	}
	if other.Boundary != envelope.Outdoors || other.Adjacent != nil {
		t.Errorf("former partner = %s adjacent %v, want Outdoors and unpaired", other.Boundary, other.Adjacent)
	}
}

func TestClassifyRetypesRoofAgainstWall(t *testing.T) {
	env := envelope.New()
	house := addBox(env, "house", 0, 0, 10, 10)
	attic := addBox(env, "garage attic", 10, 0, 20, 10)
	wall, back := surfaceNamed(house, "wall b"), surfaceNamed(attic, "wall d")
	back.Type = envelope.SurfaceRoofCeiling
	envelope.Link(wall, back)

	fp := footprint.Footprint{Length: 20, Width: 10, Area: 200}
	res := Classify(env, fp, params.Attached{NumUnits: 1})

	if res.Retyped != 1 {
		t.Errorf("Retyped = %d, want 1", res.Retyped)
	}
	if back.Type != envelope.SurfaceWall {
		t.Errorf("back face type = %s, want Wall", back.Type)
	}
	if back.Boundary != envelope.Adjoining || back.Adjacent != wall {
		t.Errorf("back face lost its pairing: %s", back.Boundary)
	}
	if ceiling := surfaceNamed(attic, "ceiling"); ceiling.Type != envelope.SurfaceRoofCeiling {
		t.Errorf("unpaired ceiling retyped to %s", ceiling.Type)
	}
}
