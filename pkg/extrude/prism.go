// Package extrude builds the above-grade stories and the garage as stacked
// prisms over the solved footprint.
package extrude

import (
	"fmt"

	"github.com/chazu/resgeom/pkg/envelope"
	"github.com/chazu/resgeom/pkg/geom"
)

// Prism adds the surfaces of a vertical prism over the counterclockwise plan
// ring between z0 and z1: a floor, one wall per edge, and a top. Every
// surface faces out of the prism.
func Prism(sp *envelope.Space, plan geom.Ring, z0, z1 float64, floor, walls, top envelope.BoundaryCondition) error {
	ring := plan.Simplify(geom.Tolerance).CCW()
	if len(ring) < 3 || ring.Area() <= geom.AreaTolerance {
		return fmt.Errorf("prism %s: degenerate plan outline", sp.Name)
	}
	if z1-z0 <= geom.Tolerance {
		return fmt.Errorf("prism %s: height %.4f must be positive", sp.Name, z1-z0)
	}
	sp.AddSurface("floor", geom.FromRing(ring, z0).Reverse(), envelope.SurfaceFloor, floor)
	for i := range ring {
		a, b := ring[i], ring[(i+1)%len(ring)]
		sp.AddSurface(
			fmt.Sprintf("wall %d", i+1),
			geom.NewPolygon(a.At3(z1), a.At3(z0), b.At3(z0), b.At3(z1)),
			envelope.SurfaceWall, walls,
		)
	}
	sp.AddSurface("ceiling", geom.FromRing(ring, z1), envelope.SurfaceRoofCeiling, top)
	return nil
}
