package envelope

import (
	"fmt"
	"math"

	"github.com/chazu/resgeom/pkg/geom"
)

// ValidationSeverity indicates whether a validation finding means the
// envelope is unusable or is merely informational.
type ValidationSeverity int

const (
	SeverityError   ValidationSeverity = iota // envelope is invalid
	SeverityWarning                           // informational
)

func (s ValidationSeverity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	default:
		return fmt.Sprintf("ValidationSeverity(%d)", int(s))
	}
}

// ValidationError describes a single validation finding.
type ValidationError struct {
	Space    string // owning space (empty if building-level)
	Surface  string // surface name (empty if space-level)
	Message  string
	Severity ValidationSeverity
}

func (e ValidationError) Error() string {
	switch {
	case e.Surface != "":
		return fmt.Sprintf("[%s] surface %s/%s: %s", e.Severity, e.Space, e.Surface, e.Message)
	case e.Space != "":
		return fmt.Sprintf("[%s] space %s: %s", e.Severity, e.Space, e.Message)
	}
	return fmt.Sprintf("[%s] %s", e.Severity, e.Message)
}

// ValidationWarning describes a non-blocking advisory finding.
type ValidationWarning struct {
	Space   string
	Surface string
	Message string
}

// ValidationResult bundles errors and warnings from all checks.
type ValidationResult struct {
	Errors   []ValidationError
	Warnings []ValidationWarning
}

// OK reports whether no errors were found.
func (r ValidationResult) OK() bool {
	return len(r.Errors) == 0
}

// Err returns the first error, or nil.
func (r ValidationResult) Err() error {
	if len(r.Errors) == 0 {
		return nil
	}
	if len(r.Errors) == 1 {
		return r.Errors[0]
	}
	return fmt.Errorf("%w (and %d more)", r.Errors[0], len(r.Errors)-1)
}

// Closure tolerances. Vector areas of a closed solid cancel; the residual is
// compared against the total surface area.
const (
	closureTolerance = 1e-6
	sliverArea       = 0.01 // ft²
)

// Validate checks the structural invariants of a finished envelope. It is
// read-only.
func Validate(e *BuildingEnvelope) ValidationResult {
	var result ValidationResult
	result.Errors = append(result.Errors, validateOwnership(e)...)
	result.Errors = append(result.Errors, validateAdjacency(e)...)
	result.Errors = append(result.Errors, validateGround(e)...)

	closeErrs, closeWarnings := validateClosure(e)
	result.Errors = append(result.Errors, closeErrs...)
	result.Warnings = append(result.Warnings, closeWarnings...)

	result.Errors = append(result.Errors, validateOverlap(e)...)
	return result
}

// validateOwnership checks that every surface belongs to exactly one space
// and every space to its zone.
func validateOwnership(e *BuildingEnvelope) []ValidationError {
	var errs []ValidationError
	seen := make(map[*Surface]*Space)
	for _, sp := range e.Spaces {
		if sp.Zone == nil {
			errs = append(errs, ValidationError{Space: sp.Name, Message: "space has no zone", Severity: SeverityError})
		}
		for _, s := range sp.Surfaces {
			if prev, dup := seen[s]; dup {
				errs = append(errs, ValidationError{
					Space: sp.Name, Surface: s.Name,
					Message:  fmt.Sprintf("surface also listed in space %s", prev.Name),
					Severity: SeverityError,
				})
				continue
			}
			seen[s] = sp
			if s.Space != sp {
				errs = append(errs, ValidationError{
					Space: sp.Name, Surface: s.Name,
					Message:  "surface back-reference does not point to its owning space",
					Severity: SeverityError,
				})
			}
			if len(s.Polygon) < 3 {
				errs = append(errs, ValidationError{
					Space: sp.Name, Surface: s.Name,
					Message:  fmt.Sprintf("polygon has %d vertices", len(s.Polygon)),
					Severity: SeverityError,
				})
			}
		}
	}
	for _, z := range e.Zones {
		for _, sp := range z.Spaces {
			if sp.Zone != z {
				errs = append(errs, ValidationError{
					Space:    sp.Name,
					Message:  fmt.Sprintf("listed in zone %s but references another zone", z.Name),
					Severity: SeverityError,
				})
			}
		}
	}
	return errs
}

// validateAdjacency checks that pairings are symmetric, cross spaces, carry
// the Surface boundary condition, and join congruent facing polygons.
func validateAdjacency(e *BuildingEnvelope) []ValidationError {
	var errs []ValidationError
	for _, s := range e.Surfaces() {
		fail := func(msg string) {
			errs = append(errs, ValidationError{Space: s.Space.Name, Surface: s.Name, Message: msg, Severity: SeverityError})
		}
		t := s.Adjacent
		if t == nil {
			if s.Boundary == Adjoining {
				fail("boundary condition is Surface but no adjacent surface is set")
			}
			continue
		}
		if t.Adjacent != s {
			fail(fmt.Sprintf("adjacent surface %s does not point back", t.Name))
			continue
		}
		if s.Boundary != Adjoining {
			fail(fmt.Sprintf("paired surface has boundary condition %s", s.Boundary))
		}
		if t.Space == s.Space {
			fail("paired with a surface of the same space")
		}
		if !s.Polygon.Plane().Facing(t.Polygon.Plane()) || !s.Polygon.Congruent(t.Polygon, geom.Tolerance*10) {
			fail(fmt.Sprintf("not congruent with adjacent surface %s", t.Name))
		}
	}
	return errs
}

// validateGround checks where the Ground boundary condition may appear:
// never on a roof, walls only below grade, floors only at or below grade.
func validateGround(e *BuildingEnvelope) []ValidationError {
	var errs []ValidationError
	for _, s := range e.Surfaces() {
		if s.Boundary != Ground {
			continue
		}
		sp := s.Space
		switch s.Type {
		case SurfaceRoofCeiling:
			errs = append(errs, ValidationError{Space: sp.Name, Surface: s.Name, Message: "roof or ceiling marked Ground", Severity: SeverityError})
		case SurfaceWall:
			if sp.Kind != SpaceFoundation {
				errs = append(errs, ValidationError{Space: sp.Name, Surface: s.Name, Message: "Ground wall outside a foundation space", Severity: SeverityError})
			}
		case SurfaceFloor:
			if _, hi := s.Polygon.Bounds(); hi.Z > geom.Tolerance {
				errs = append(errs, ValidationError{Space: sp.Name, Surface: s.Name, Message: "Ground floor above grade", Severity: SeverityError})
			}
		}
	}
	return errs
}

// validateClosure checks that each space is a closed solid with positive
// volume and floor area.
func validateClosure(e *BuildingEnvelope) ([]ValidationError, []ValidationWarning) {
	var errs []ValidationError
	var warnings []ValidationWarning
	for _, sp := range e.Spaces {
		var sum geom.Point3
		total := 0.0
		for _, s := range sp.Surfaces {
			va := s.Polygon.VectorArea()
			sum = sum.Add(va)
			total += va.Length()
			if a := va.Length(); a < sliverArea {
				warnings = append(warnings, ValidationWarning{
					Space: sp.Name, Surface: s.Name,
					Message: fmt.Sprintf("sliver surface of %.4f ft²", a),
				})
			}
		}
		if sum.Length() > closureTolerance*math.Max(1, total) {
			errs = append(errs, ValidationError{
				Space:    sp.Name,
				Message:  fmt.Sprintf("surfaces do not close: residual vector area %.6f", sum.Length()),
				Severity: SeverityError,
			})
		}
		if v := sp.Volume(); v <= 0 {
			errs = append(errs, ValidationError{
				Space:    sp.Name,
				Message:  fmt.Sprintf("volume is %.4f, must be positive", v),
				Severity: SeverityError,
			})
		}
		if sp.FloorArea() <= 0 {
			errs = append(errs, ValidationError{Space: sp.Name, Message: "space has no floor area", Severity: SeverityError})
		}
	}
	return errs, warnings
}

// validateOverlap checks that coplanar surfaces of different spaces are
// either disjoint or congruent.
func validateOverlap(e *BuildingEnvelope) []ValidationError {
	var errs []ValidationError
	surfaces := e.Surfaces()
	for i, a := range surfaces {
		amin, amax := a.Polygon.Bounds()
		for _, b := range surfaces[i+1:] {
			if a.Space == b.Space {
				continue
			}
			bmin, bmax := b.Polygon.Bounds()
			if !boxesTouch(amin, amax, bmin, bmax) {
				continue
			}
			if !a.Polygon.Plane().Coplanar(b.Polygon.Plane(), geom.Tolerance*10) {
				continue
			}
			if geom.PolygonOverlap(a.Polygon, b.Polygon) <= sliverArea {
				continue
			}
			if a.Polygon.Congruent(b.Polygon, geom.Tolerance*10) {
				continue
			}
			errs = append(errs, ValidationError{
				Space: a.Space.Name, Surface: a.Name,
				Message:  fmt.Sprintf("partially overlaps %s/%s", b.Space.Name, b.Name),
				Severity: SeverityError,
			})
		}
	}
	return errs
}

func boxesTouch(amin, amax, bmin, bmax geom.Point3) bool {
	const pad = 1e-4
	return amin.X <= bmax.X+pad && bmin.X <= amax.X+pad &&
		amin.Y <= bmax.Y+pad && bmin.Y <= amax.Y+pad &&
		amin.Z <= bmax.Z+pad && bmin.Z <= amax.Z+pad
}
