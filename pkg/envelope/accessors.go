package envelope

import "github.com/samber/lo"

// FinishedAboveGradeZones returns the conditioned zones above grade.
func (e *BuildingEnvelope) FinishedAboveGradeZones() []*Zone {
	return lo.Filter(e.Zones, func(z *Zone, _ int) bool {
		return z.Kind.Finished() && z.Kind.AboveGrade()
	})
}

// FinishedZones returns every conditioned zone, including a finished
// basement.
func (e *BuildingEnvelope) FinishedZones() []*Zone {
	return lo.Filter(e.Zones, func(z *Zone, _ int) bool {
		return z.Kind.Finished()
	})
}

// FloorArea returns the floor area of all spaces in the zone.
func (z *Zone) FloorArea() float64 {
	return lo.SumBy(z.Spaces, func(s *Space) float64 { return s.FloorArea() })
}

// ConditionedFloorArea returns the floor area of every finished zone.
func (e *BuildingEnvelope) ConditionedFloorArea() float64 {
	return lo.SumBy(e.FinishedZones(), func(z *Zone) float64 { return z.FloorArea() })
}

// SurfacesByBoundary returns the surfaces carrying boundary condition bc.
func (e *BuildingEnvelope) SurfacesByBoundary(bc BoundaryCondition) []*Surface {
	return lo.Filter(e.Surfaces(), func(s *Surface, _ int) bool { return s.Boundary == bc })
}

// SurfacesByType returns the surfaces of type t.
func (e *BuildingEnvelope) SurfacesByType(t SurfaceType) []*Surface {
	return lo.Filter(e.Surfaces(), func(s *Surface, _ int) bool { return s.Type == t })
}

// SpacesOfKind returns the spaces of kind k in build order.
func (e *BuildingEnvelope) SpacesOfKind(k SpaceKind) []*Space {
	return lo.Filter(e.Spaces, func(s *Space, _ int) bool { return s.Kind == k })
}

// BoundarySummary sums surface area per boundary condition.
func (e *BuildingEnvelope) BoundarySummary() map[BoundaryCondition]float64 {
	groups := lo.GroupBy(e.Surfaces(), func(s *Surface) BoundaryCondition { return s.Boundary })
	return lo.MapValues(groups, func(ss []*Surface, _ BoundaryCondition) float64 {
		return lo.SumBy(ss, func(s *Surface) float64 { return s.Area() })
	})
}
