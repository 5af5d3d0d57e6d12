// Package footprint solves the rectangular plan dimensions of a house from
// its target floor area and garage.
package footprint

import (
	"fmt"
	"math"

	"github.com/chazu/resgeom/pkg/envelope"
	"github.com/chazu/resgeom/pkg/geom"
	"github.com/chazu/resgeom/pkg/params"
)

// Footprint is the solved main rectangle and garage placement, in plan
// coordinates: x along the front facade from 0 to Length, y from the front
// (0) to the back (Width).
type Footprint struct {
	Area   float64 // main rectangle area, ft²
	Length float64
	Width  float64

	Garage *Garage // nil when there is no garage
}

// Garage is the placed garage rectangle. It spans x in [X0, X1] and y in
// [-Protrusion, Inset]: the part with y < 0 sticks out in front of the main
// rectangle, the part with y > 0 is cut out of the ground story.
type Garage struct {
	X0, X1     float64
	Inset      float64 // depth inside the main rectangle
	Protrusion float64 // depth in front of the main rectangle
}

// Width returns the garage extent along the front facade.
func (g *Garage) Width() float64 { return g.X1 - g.X0 }

// Depth returns the full garage depth.
func (g *Garage) Depth() float64 { return g.Inset + g.Protrusion }

// Rect returns the whole garage outline.
func (g *Garage) Rect() geom.Ring { return geom.Rect(g.X0, -g.Protrusion, g.X1, g.Inset) }

// InsetRect returns the part inside the main rectangle, or nil.
func (g *Garage) InsetRect() geom.Ring {
	if g.Inset <= geom.Tolerance {
		return nil
	}
	return geom.Rect(g.X0, 0, g.X1, g.Inset)
}

// Tab returns the protruding part, or nil.
func (g *Garage) Tab() geom.Ring {
	if g.Protrusion <= geom.Tolerance {
		return nil
	}
	return geom.Rect(g.X0, -g.Protrusion, g.X1, 0)
}

// Rect returns the main rectangle.
func (f Footprint) Rect() geom.Ring {
	return geom.Rect(0, 0, f.Length, f.Width)
}

// GroundOutline returns the ground-story living outline: the main rectangle
// with the inset part of the garage removed.
func (f Footprint) GroundOutline() geom.Ring {
	r := f.Rect()
	g := f.Garage
	if g == nil || g.Inset <= geom.Tolerance {
		return r
	}
	L, W := f.Length, f.Width
	near := func(a, b float64) bool { return math.Abs(a-b) <= geom.Tolerance }
	left := near(g.X0, 0)
	right := near(g.X1, L)
	switch {
	case left && right:
		return geom.Rect(0, g.Inset, L, W)
	case left:
		return geom.Ring{
			geom.P2(g.X1, 0), geom.P2(L, 0), geom.P2(L, W), geom.P2(0, W),
			geom.P2(0, g.Inset), geom.P2(g.X1, g.Inset),
		}
	case right:
		return geom.Ring{
			geom.P2(0, 0), geom.P2(g.X0, 0), geom.P2(g.X0, g.Inset),
			geom.P2(L, g.Inset), geom.P2(L, W), geom.P2(0, W),
		}
	}
	return geom.Ring{
		geom.P2(0, 0), geom.P2(g.X0, 0), geom.P2(g.X0, g.Inset), geom.P2(g.X1, g.Inset),
		geom.P2(g.X1, 0), geom.P2(L, 0), geom.P2(L, W), geom.P2(0, W),
	}
}

// UpperOutline returns the outline of stories above the garage: the main
// rectangle plus the tab over the protruding part.
func (f Footprint) UpperOutline() geom.Ring {
	r := f.Rect()
	g := f.Garage
	if g == nil || g.Protrusion <= geom.Tolerance {
		return r
	}
	L, W, p := f.Length, f.Width, g.Protrusion
	near := func(a, b float64) bool { return math.Abs(a-b) <= geom.Tolerance }
	left := near(g.X0, 0)
	right := near(g.X1, L)
	switch {
	case left && right:
		return geom.Rect(0, -p, L, W)
	case left:
		return geom.Ring{
			geom.P2(0, -p), geom.P2(g.X1, -p), geom.P2(g.X1, 0), geom.P2(L, 0),
			geom.P2(L, W), geom.P2(0, W),
		}
	case right:
		return geom.Ring{
			geom.P2(0, 0), geom.P2(g.X0, 0), geom.P2(g.X0, -p), geom.P2(L, -p),
			geom.P2(L, W), geom.P2(0, W),
		}
	}
	return geom.Ring{
		geom.P2(0, 0), geom.P2(g.X0, 0), geom.P2(g.X0, -p), geom.P2(g.X1, -p),
		geom.P2(g.X1, 0), geom.P2(L, 0), geom.P2(L, W), geom.P2(0, W),
	}
}

// Solve computes the main rectangle so that the finished floor area of the
// generated building equals p.FloorArea.
//
// The ground story loses the inset garage area, upper stories gain the area
// above the protruding part, a finished basement repeats the ground story
// outline, and a finished attic covers the upper outline. Solving
//
//	A = (n+kb+ka)·F − (1+kb)·Ag_in + (n−1+ka)·Ag_bonus
//
// for the main rectangle area F gives the footprint.
func Solve(p params.Params) (Footprint, error) {
	if p.AspectRatio <= 0 {
		return Footprint{}, envelope.InvalidGeometryError{
			Message: fmt.Sprintf("aspect ratio %.3f must be positive", p.AspectRatio),
		}
	}
	n := float64(p.Stories)
	kb, ka := 0.0, 0.0
	if p.Foundation.Type.AddsFinishedFloor() {
		kb = 1
	}
	if p.Attic == params.AtticFinished && p.Roof.Type.Sloped() {
		ka = 1
	}

	ag := p.Garage.Area()
	agIn := ag * (1 - p.Garage.Protrusion)
	agBonus := ag * p.Garage.Protrusion

	area := (p.FloorArea + (1+kb)*agIn - (n-1+ka)*agBonus) / (n + kb + ka)
	if area <= 0 {
		return Footprint{}, envelope.InvalidGeometryError{
			Message: fmt.Sprintf("solved footprint area %.2f ft² is not positive", area),
		}
	}
	width := math.Sqrt(area / p.AspectRatio)
	length := area / width
	f := Footprint{Area: area, Length: length, Width: width}

	if !p.Garage.Present() {
		return f, nil
	}
	gw := p.Garage.Width
	inset := p.Garage.Depth * (1 - p.Garage.Protrusion)
	if gw > length+geom.Tolerance {
		return Footprint{}, envelope.InvalidGeometryError{
			Message: fmt.Sprintf("garage width %.2f ft exceeds footprint length %.2f ft", gw, length),
		}
	}
	if inset >= width-geom.Tolerance {
		return Footprint{}, envelope.InvalidGeometryError{
			Message: fmt.Sprintf("garage depth inside the footprint %.2f ft leaves no room in width %.2f ft", inset, width),
		}
	}
	g := &Garage{Inset: inset, Protrusion: p.Garage.Depth * p.Garage.Protrusion}
	switch p.Garage.Position {
	case params.GarageLeft:
		g.X0, g.X1 = 0, gw
	case params.GarageRight:
		g.X0, g.X1 = length-gw, length
	default:
		return Footprint{}, envelope.InvalidGeometryError{
			Message: fmt.Sprintf("unknown garage position %s", p.Garage.Position),
		}
	}
	if gw > length-geom.Tolerance {
		g.X0, g.X1 = 0, length
	}
	f.Garage = g
	return f, nil
}
