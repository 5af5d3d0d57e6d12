package envelope

import "fmt"

// SurfaceType is the construction role of a surface.
type SurfaceType int

const (
	SurfaceFloor SurfaceType = iota
	SurfaceWall
	SurfaceRoofCeiling
)

func (t SurfaceType) String() string {
	switch t {
	case SurfaceFloor:
		return "Floor"
	case SurfaceWall:
		return "Wall"
	case SurfaceRoofCeiling:
		return "RoofCeiling"
	default:
		return fmt.Sprintf("SurfaceType(%d)", int(t))
	}
}

// BoundaryCondition classifies what lies on the far side of a surface.
type BoundaryCondition int

const (
	Outdoors  BoundaryCondition = iota // exposed to outside air
	Ground                             // in contact with soil
	Adjoining                          // paired with a surface of another modeled space
	Adiabatic                          // no heat exchange (unmodeled neighbour unit)
)

func (b BoundaryCondition) String() string {
	switch b {
	case Outdoors:
		return "Outdoors"
	case Ground:
		return "Ground"
	case Adjoining:
		return "Surface"
	case Adiabatic:
		return "Adiabatic"
	default:
		return fmt.Sprintf("BoundaryCondition(%d)", int(b))
	}
}

// AllBoundaryConditions lists every boundary condition in declaration order.
var AllBoundaryConditions = []BoundaryCondition{Outdoors, Ground, Adjoining, Adiabatic}

// SpaceKind identifies what a space represents in the building.
type SpaceKind int

const (
	SpaceLiving SpaceKind = iota
	SpaceGarage
	SpaceAttic
	SpaceGarageAttic
	SpaceFoundation
)

func (k SpaceKind) String() string {
	switch k {
	case SpaceLiving:
		return "living"
	case SpaceGarage:
		return "garage"
	case SpaceAttic:
		return "attic"
	case SpaceGarageAttic:
		return "garage attic"
	case SpaceFoundation:
		return "foundation"
	default:
		return "unknown"
	}
}

// ZoneKind identifies the thermal role of a zone.
type ZoneKind int

const (
	ZoneLiving           ZoneKind = iota // conditioned above-grade space
	ZoneGarage                           // unconditioned garage
	ZoneAttic                            // unconditioned attic
	ZoneCrawlspace                       // vented or open crawlspace (also pier and beam)
	ZoneBasement                         // unfinished basement
	ZoneFinishedBasement                 // conditioned basement
)

func (k ZoneKind) String() string {
	switch k {
	case ZoneLiving:
		return "living"
	case ZoneGarage:
		return "garage"
	case ZoneAttic:
		return "attic"
	case ZoneCrawlspace:
		return "crawlspace"
	case ZoneBasement:
		return "unfinished basement"
	case ZoneFinishedBasement:
		return "finished basement"
	default:
		return "unknown"
	}
}

// Finished reports whether spaces of this kind are conditioned and count
// toward finished floor area.
func (k ZoneKind) Finished() bool {
	return k == ZoneLiving || k == ZoneFinishedBasement
}

// AboveGrade reports whether the zone sits above the ground.
func (k ZoneKind) AboveGrade() bool {
	switch k {
	case ZoneCrawlspace, ZoneBasement, ZoneFinishedBasement:
		return false
	}
	return true
}

// BuildingType is the residential building category.
type BuildingType int

const (
	SingleFamilyDetached BuildingType = iota
	SingleFamilyAttached
)

func (b BuildingType) String() string {
	switch b {
	case SingleFamilyDetached:
		return "single-family detached"
	case SingleFamilyAttached:
		return "single-family attached"
	default:
		return "unknown"
	}
}
