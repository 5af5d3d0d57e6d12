package params

import (
	"fmt"
	"strings"
)

// ---------------------------------------------------------------------------
// Enumerations. Each has a String form and parses case-insensitively from
// text so it can be read from YAML or Lisp keywords.
// ---------------------------------------------------------------------------

// GaragePosition is the side of the front facade holding the garage.
type GaragePosition int

const (
	GarageRight GaragePosition = iota
	GarageLeft
)

var garagePositionNames = map[GaragePosition]string{
	GarageRight: "right",
	GarageLeft:  "left",
}

func (g GaragePosition) String() string { return nameOf(garagePositionNames, g) }

// FoundationType is the substructure below the ground story.
type FoundationType int

const (
	Slab FoundationType = iota
	Crawlspace
	UnfinishedBasement
	FinishedBasement
	PierBeam
)

var foundationTypeNames = map[FoundationType]string{
	Slab:               "slab",
	Crawlspace:         "crawlspace",
	UnfinishedBasement: "unfinished-basement",
	FinishedBasement:   "finished-basement",
	PierBeam:           "pier-beam",
}

func (f FoundationType) String() string { return nameOf(foundationTypeNames, f) }

// BasementHeight is the fixed height of either basement type, ft.
const BasementHeight = 8.0

// HeightRange returns the inclusive range of valid foundation heights in
// feet.
func (f FoundationType) HeightRange() (lo, hi float64) {
	switch f {
	case Slab:
		return 0, 0
	case Crawlspace:
		return 1.5, 5.0
	case UnfinishedBasement, FinishedBasement:
		return BasementHeight, BasementHeight
	case PierBeam:
		return 0.5, 8.0
	}
	return 0, 0
}

// HasSpace reports whether the foundation forms its own space below grade.
func (f FoundationType) HasSpace() bool {
	return f != Slab
}

// AddsFinishedFloor reports whether the foundation contributes a full
// conditioned floor to the finished area.
func (f FoundationType) AddsFinishedFloor() bool {
	return f == FinishedBasement
}

// AtticType is whether the attic is conditioned living space.
type AtticType int

const (
	AtticUnfinished AtticType = iota
	AtticFinished
)

var atticTypeNames = map[AtticType]string{
	AtticUnfinished: "unfinished",
	AtticFinished:   "finished",
}

func (a AtticType) String() string { return nameOf(atticTypeNames, a) }

// RoofType is the shape of the main roof.
type RoofType int

const (
	Gable RoofType = iota
	Hip
	Flat
)

var roofTypeNames = map[RoofType]string{
	Gable: "gable",
	Hip:   "hip",
	Flat:  "flat",
}

func (r RoofType) String() string { return nameOf(roofTypeNames, r) }

// Sloped reports whether the roof forms an attic.
func (r RoofType) Sloped() bool {
	return r != Flat
}

// UnitPosition is the horizontal location of an attached dwelling unit in
// its row.
type UnitPosition int

const (
	UnitNone UnitPosition = iota // detached
	UnitLeft
	UnitMiddle
	UnitRight
)

var unitPositionNames = map[UnitPosition]string{
	UnitNone:   "none",
	UnitLeft:   "left",
	UnitMiddle: "middle",
	UnitRight:  "right",
}

func (u UnitPosition) String() string { return nameOf(unitPositionNames, u) }

// ---------------------------------------------------------------------------
// Text encoding
// ---------------------------------------------------------------------------

func nameOf[T ~int](names map[T]string, v T) string {
	if s, ok := names[v]; ok {
		return s
	}
	return fmt.Sprintf("%T(%d)", v, int(v))
}

func parseName[T comparable](names map[T]string, kind, s string) (T, error) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "_", "-")
	key = strings.TrimPrefix(key, ":")
	for v, name := range names {
		if name == key || strings.ReplaceAll(name, "-", "") == key {
			return v, nil
		}
	}
	var zero T
	return zero, fmt.Errorf("unknown %s %q", kind, s)
}

// ParseGaragePosition parses "left" or "right".
func ParseGaragePosition(s string) (GaragePosition, error) {
	return parseName(garagePositionNames, "garage position", s)
}

// ParseFoundationType parses a foundation name such as "crawlspace" or
// "finished-basement".
func ParseFoundationType(s string) (FoundationType, error) {
	return parseName(foundationTypeNames, "foundation type", s)
}

// ParseAtticType parses "finished" or "unfinished".
func ParseAtticType(s string) (AtticType, error) {
	return parseName(atticTypeNames, "attic type", s)
}

// ParseRoofType parses "gable", "hip" or "flat".
func ParseRoofType(s string) (RoofType, error) {
	return parseName(roofTypeNames, "roof type", s)
}

// ParseUnitPosition parses "none", "left", "middle" or "right".
func ParseUnitPosition(s string) (UnitPosition, error) {
	return parseName(unitPositionNames, "unit position", s)
}

func (g GaragePosition) MarshalText() ([]byte, error) { return []byte(g.String()), nil }
func (f FoundationType) MarshalText() ([]byte, error) { return []byte(f.String()), nil }
func (a AtticType) MarshalText() ([]byte, error) { return []byte(a.String()), nil }
func (r RoofType) MarshalText() ([]byte, error) { return []byte(r.String()), nil }
func (u UnitPosition) MarshalText() ([]byte, error) { return []byte(u.String()), nil }

func (g *GaragePosition) UnmarshalText(b []byte) (err error) {
	*g, err = ParseGaragePosition(string(b))
	return err
}

func (f *FoundationType) UnmarshalText(b []byte) (err error) {
	*f, err = ParseFoundationType(string(b))
	return err
}

func (a *AtticType) UnmarshalText(b []byte) (err error) {
	*a, err = ParseAtticType(string(b))
	return err
}

func (r *RoofType) UnmarshalText(b []byte) (err error) {
	*r, err = ParseRoofType(string(b))
	return err
}

func (u *UnitPosition) UnmarshalText(b []byte) (err error) {
	*u, err = ParseUnitPosition(string(b))
	return err
}
