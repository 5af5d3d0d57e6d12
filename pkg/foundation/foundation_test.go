package foundation

import (
	"errors"
	"math"
	"testing"

	"github.com/chazu/resgeom/pkg/envelope"
	"github.com/chazu/resgeom/pkg/footprint"
	"github.com/chazu/resgeom/pkg/params"
)

func insetGarage(t *testing.T) footprint.Footprint {
	t.Helper()
	p := params.Default()
	p.Garage = params.Garage{Width: 20, Depth: 20}
	fp, err := footprint.Solve(p)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	return fp
}

func TestBuildByType(t *testing.T) {
	fp := insetGarage(t)
	tests := []struct {
		foundation params.Foundation
		zone       envelope.ZoneKind
		area       float64
		walls      envelope.BoundaryCondition
	}{
		{params.Foundation{Type: params.Crawlspace, Height: 3}, envelope.ZoneCrawlspace, fp.Area, envelope.Ground},
		{params.Foundation{Type: params.PierBeam, Height: 2}, envelope.ZoneCrawlspace, fp.Area, envelope.Outdoors},
		{params.Foundation{Type: params.UnfinishedBasement, Height: 8}, envelope.ZoneBasement, fp.Area, envelope.Ground},
		{params.Foundation{Type: params.FinishedBasement, Height: 8}, envelope.ZoneFinishedBasement, fp.Area - 400, envelope.Ground},
	}
	for _, tt := range tests {
		t.Run(tt.foundation.Type.String(), func(t *testing.T) {
			env := envelope.New()
			geo, err := Build(env, fp, tt.foundation)
			if err != nil {
				t.Fatalf("Build: %v", err)
			}
			sp := geo.Space
			if sp == nil || sp.Zone.Kind != tt.zone || sp.Kind != envelope.SpaceFoundation {
				t.Fatalf("space = %+v", sp)
			}
			if math.Abs(sp.Origin+tt.foundation.Height) > 1e-12 {
				t.Errorf("Origin = %v, want %v", sp.Origin, -tt.foundation.Height)
			}
			if math.Abs(sp.FloorArea()-tt.area) > 1e-6 {
				t.Errorf("floor area = %v, want %v", sp.FloorArea(), tt.area)
			}
			for _, s := range sp.Surfaces {
				switch s.Type {
				case envelope.SurfaceWall:
					if s.Boundary != tt.walls {
						t.Errorf("wall %s = %s, want %s", s.Name, s.Boundary, tt.walls)
					}
				case envelope.SurfaceFloor:
					if s.Boundary != envelope.Ground {
						t.Errorf("floor = %s, want Ground", s.Boundary)
					}
				case envelope.SurfaceRoofCeiling:
					if _, hi := s.Polygon.Bounds(); hi.Z != 0 {
						t.Errorf("ceiling at z=%v, want grade", hi.Z)
					}
				}
			}
			if v := sp.Volume(); math.Abs(v-tt.area*tt.foundation.Height) > 1e-6 {
				t.Errorf("volume = %v, want %v", v, tt.area*tt.foundation.Height)
			}
		})
	}
}

func TestBuildSlab(t *testing.T) {
	env := envelope.New()
	geo, err := Build(env, insetGarage(t), params.Foundation{Type: params.Slab})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if geo.Space != nil || !env.IsEmpty() {
		t.Error("slab should add no space")
	}
}

func TestBuildRejectsHeight(t *testing.T) {
	tests := []params.Foundation{
		{Type: params.Crawlspace, Height: 1.0},
		{Type: params.PierBeam, Height: 9},
		{Type: params.FinishedBasement, Height: 6},
	}
	for _, f := range tests {
		t.Run(f.Type.String(), func(t *testing.T) {
			env := envelope.New()
			_, err := Build(env, insetGarage(t), f)
			var pe envelope.InvalidParameterError
			if !errors.As(err, &pe) {
				t.Errorf("err = %v, want InvalidParameterError", err)
			}
			if !env.IsEmpty() {
				t.Error("failed build should not add zones")
			}
		})
	}
}
