// Package params holds the generator inputs, their defaults, validation, and
// YAML loading.
package params

import (
	"fmt"
	"os"

	"github.com/chazu/resgeom/pkg/envelope"
	"gopkg.in/yaml.v3"
)

// MaxStories is the tallest supported building.
const MaxStories = 6

// Garage describes an attached garage on the ground story. A zero width or
// depth means no garage.
type Garage struct {
	Width      float64        `yaml:"width"`      // along the front facade, ft
	Depth      float64        `yaml:"depth"`      // front to back, ft
	Protrusion float64        `yaml:"protrusion"` // fraction of depth outside the main footprint
	Position   GaragePosition `yaml:"position"`
}

// Present reports whether the parameters describe a garage.
func (g Garage) Present() bool {
	return g.Width > 0 && g.Depth > 0
}

// Area returns the garage footprint area.
func (g Garage) Area() float64 {
	if !g.Present() {
		return 0
	}
	return g.Width * g.Depth
}

// Foundation selects the substructure.
type Foundation struct {
	Type   FoundationType `yaml:"type"`
	Height float64        `yaml:"height"` // ft
}

// Roof selects the main roof form.
type Roof struct {
	Type  RoofType `yaml:"type"`
	Pitch Pitch    `yaml:"pitch"`
}

// Attached places a single-family attached unit in its row.
type Attached struct {
	Position     UnitPosition `yaml:"position"`
	HasRearUnits bool         `yaml:"has_rear_units"`
	NumUnits     int          `yaml:"num_units"`
}

// Params is the complete set of inputs for one generation run.
type Params struct {
	FloorArea   float64    `yaml:"floor_area"`   // finished floor area, ft²
	WallHeight  float64    `yaml:"wall_height"`  // per story, ft
	Stories     int        `yaml:"stories"`      // above-grade stories
	AspectRatio float64    `yaml:"aspect_ratio"` // front length over side width
	Garage      Garage     `yaml:"garage"`
	Foundation  Foundation `yaml:"foundation"`
	Attic       AtticType  `yaml:"attic"`
	Roof        Roof       `yaml:"roof"`
	Attached    Attached   `yaml:"attached"`
}

// Default returns a two-story, 2000 ft² detached house on a slab with an
// unfinished 6:12 gable attic and no garage.
func Default() Params {
	return Params{
		FloorArea:   2000,
		WallHeight:  8,
		Stories:     2,
		AspectRatio: 2,
		Foundation:  Foundation{Type: Slab},
		Attic:       AtticUnfinished,
		Roof:        Roof{Type: Gable, Pitch: Pitch{Rise: 6, Run: 12}},
		Attached:    Attached{Position: UnitNone, NumUnits: 1},
	}
}

// BuildingType returns detached or attached from the unit position.
func (p Params) BuildingType() envelope.BuildingType {
	if p.Attached.Position == UnitNone {
		return envelope.SingleFamilyDetached
	}
	return envelope.SingleFamilyAttached
}

// Validate checks every parameter against its valid range and returns an
// envelope.InvalidParameterError for the first violation.
func (p Params) Validate() error {
	bad := func(param, format string, args ...any) error {
		return envelope.InvalidParameterError{Param: param, Message: fmt.Sprintf(format, args...)}
	}
	switch {
	case p.FloorArea <= 0:
		return bad("floor-area", "%.2f must be positive", p.FloorArea)
	case p.WallHeight <= 0:
		return bad("wall-height", "%.2f must be positive", p.WallHeight)
	case p.Stories < 1:
		return bad("stories", "%d must be at least 1", p.Stories)
	case p.Stories > MaxStories:
		return bad("stories", "%d exceeds the supported maximum of %d", p.Stories, MaxStories)
	case p.AspectRatio <= 0:
		return bad("aspect-ratio", "%.2f must be positive", p.AspectRatio)
	case p.Garage.Width < 0 || p.Garage.Depth < 0:
		return bad("garage", "width %.2f and depth %.2f must not be negative", p.Garage.Width, p.Garage.Depth)
	case p.Garage.Protrusion < 0 || p.Garage.Protrusion > 1:
		return bad("garage-protrusion", "%.2f must be within [0, 1]", p.Garage.Protrusion)
	}

	lo, hi := p.Foundation.Type.HeightRange()
	if p.Foundation.Height < lo || p.Foundation.Height > hi {
		if lo == hi {
			return bad("foundation-height", "%s height %.2f ft must be %.1f ft", p.Foundation.Type, p.Foundation.Height, lo)
		}
		return bad("foundation-height", "%s height %.2f ft must be within [%.1f, %.1f] ft",
			p.Foundation.Type, p.Foundation.Height, lo, hi)
	}

	if p.Roof.Type.Sloped() {
		if p.Roof.Pitch.Run <= 0 || p.Roof.Pitch.Rise <= 0 {
			return bad("roof-pitch", "%s must have positive rise and run for a %s roof", p.Roof.Pitch, p.Roof.Type)
		}
	}
	if p.Attic == AtticFinished && !p.Roof.Type.Sloped() {
		return bad("attic", "a finished attic needs a sloped roof")
	}

	a := p.Attached
	switch a.Position {
	case UnitNone:
		if a.HasRearUnits {
			return bad("has-rear-units", "requires an attached unit position")
		}
	case UnitLeft, UnitRight:
		if a.NumUnits < 2 {
			return bad("num-units", "%d is too few for a %s end unit", a.NumUnits, a.Position)
		}
	case UnitMiddle:
		if a.NumUnits < 3 {
			return bad("num-units", "%d is too few for a middle unit", a.NumUnits)
		}
	default:
		return bad("horizontal-location", "unknown position %s", a.Position)
	}
	if a.HasRearUnits && a.NumUnits%2 != 0 {
		return bad("num-units", "%d must be even when units have rear neighbours", a.NumUnits)
	}
	return nil
}

// Parse decodes YAML onto the defaults and validates the result.
func Parse(data []byte) (Params, error) {
	p := Default()
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Params{}, fmt.Errorf("decode parameters: %w", err)
	}
	if p.Attached.NumUnits == 0 {
		p.Attached.NumUnits = 1
	}
	if err := p.Validate(); err != nil {
		return Params{}, err
	}
	return p, nil
}

// Load reads a YAML parameter file.
func Load(path string) (Params, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Params{}, fmt.Errorf("read parameters: %w", err)
	}
	p, err := Parse(data)
	if err != nil {
		return Params{}, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// Marshal encodes p as YAML.
func (p Params) Marshal() ([]byte, error) {
	return yaml.Marshal(p)
}
