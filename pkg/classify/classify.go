// Package classify applies the boundary-condition rules that geometry alone
// cannot decide: party walls of attached units and walls between attics.
package classify

import (
	"math"

	"github.com/chazu/resgeom/pkg/envelope"
	"github.com/chazu/resgeom/pkg/footprint"
	"github.com/chazu/resgeom/pkg/geom"
	"github.com/chazu/resgeom/pkg/params"
	"github.com/samber/lo"
)

// Result counts the surfaces each rule changed.
type Result struct {
	Adiabatic int // surfaces forced to Adiabatic
	Retyped   int // RoofCeiling surfaces retyped as Wall
}

// partyPlane is a vertical wall plane shared with an unmodeled neighbour.
type partyPlane struct {
	normal geom.Point3 // outward normal of the unit's wall
	offset float64     // normal.Dot(p) for points on the plane
}

// partyPlanes returns the wall planes shared with neighbouring units. A left
// end unit has a neighbour on its right, a right end unit on its left, a
// middle unit on both sides, and rear units sit behind the back wall.
func partyPlanes(fp footprint.Footprint, a params.Attached) []partyPlane {
	right := partyPlane{normal: geom.Pt(1, 0, 0), offset: fp.Length}
	left := partyPlane{normal: geom.Pt(-1, 0, 0), offset: 0}
	var planes []partyPlane
	switch a.Position {
	case params.UnitLeft:
		planes = append(planes, right)
	case params.UnitRight:
		planes = append(planes, left)
	case params.UnitMiddle:
		planes = append(planes, left, right)
	}
	if a.HasRearUnits {
		planes = append(planes, partyPlane{normal: geom.Pt(0, 1, 0), offset: fp.Width})
	}
	return planes
}

// contains reports whether every vertex of s lies on the plane and s faces
// the same way.
func (pp partyPlane) contains(s *envelope.Surface) bool {
	if s.Normal().Dot(pp.normal) < 1-1e-9 {
		return false
	}
	return lo.EveryBy(s.Polygon, func(v geom.Point3) bool {
		return math.Abs(pp.normal.Dot(v)-pp.offset) <= geom.Tolerance*10
	})
}

// Classify runs after reconciliation. It retypes roof surfaces paired with a
// wall as walls, then forces every wall in a party plane to Adiabatic,
// dropping any pairing it had.
func Classify(env *envelope.BuildingEnvelope, fp footprint.Footprint, a params.Attached) Result {
	var res Result
	for _, s := range env.Surfaces() {
		if s.Type == envelope.SurfaceRoofCeiling && s.Adjacent != nil && s.Adjacent.Type == envelope.SurfaceWall {
			s.Type = envelope.SurfaceWall
			res.Retyped++
		}
	}

	planes := partyPlanes(fp, a)
	walls := env.SurfacesByType(envelope.SurfaceWall)
	for _, pp := range planes {
		for _, s := range lo.Filter(walls, func(s *envelope.Surface, _ int) bool { return pp.contains(s) }) {
			envelope.Unlink(s)
			s.Boundary = envelope.Adiabatic
			res.Adiabatic++
		}
	}

	// A pairing broken above leaves its partner Outdoors; nothing else may
	// claim Surface without a partner.
	for _, s := range env.SurfacesByBoundary(envelope.Adjoining) {
		if s.Adjacent == nil {
			s.Boundary = envelope.Outdoors
		}
	}
	return res
}
