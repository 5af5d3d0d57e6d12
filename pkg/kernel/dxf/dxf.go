// Package dxf exports envelopes as DXF wireframes with
// github.com/yofu/dxf. Each boundary condition gets its own layer so CAD
// tools can toggle exterior, ground contact, interzone and adiabatic
// surfaces independently.
package dxf

import (
	"fmt"

	"github.com/chazu/resgeom/pkg/envelope"
	"github.com/chazu/resgeom/pkg/kernel"
	"github.com/yofu/dxf"
	"github.com/yofu/dxf/color"
)

// Compile-time interface check.
var _ kernel.Exporter = (*WireframeExporter)(nil)

var layerColors = map[envelope.BoundaryCondition]color.ColorNumber{
	envelope.Outdoors:  color.Cyan,
	envelope.Ground:    color.Yellow,
	envelope.Adjoining: color.Green,
	envelope.Adiabatic: color.Magenta,
}

// LayerName returns the DXF layer holding surfaces with boundary bc.
func LayerName(bc envelope.BoundaryCondition) string {
	return "ENVELOPE-" + bc.String()
}

// WireframeExporter draws every surface outline as 3D lines.
type WireframeExporter struct{}

// New returns a DXF wireframe exporter.
func New() *WireframeExporter {
	return &WireframeExporter{}
}

// Extension implements kernel.Exporter.
func (e *WireframeExporter) Extension() string { return ".dxf" }

// Export draws env and saves it to path. Paired surfaces coincide, so only
// the first of each pair is drawn.
func (e *WireframeExporter) Export(path string, env *envelope.BuildingEnvelope) error {
	surfaces := env.Surfaces()
	if len(surfaces) == 0 {
		return fmt.Errorf("dxf: envelope has no surfaces")
	}

	d := dxf.NewDrawing()
	for _, bc := range envelope.AllBoundaryConditions {
		if _, err := d.AddLayer(LayerName(bc), layerColors[bc], dxf.DefaultLineType, false); err != nil {
			return fmt.Errorf("dxf: layer %s: %w", LayerName(bc), err)
		}
	}

	drawn := make(map[*envelope.Surface]bool, len(surfaces))
	for _, s := range surfaces {
		if s.Adjacent != nil && drawn[s.Adjacent] {
			continue
		}
		drawn[s] = true
		if err := d.ChangeLayer(LayerName(s.Boundary)); err != nil {
			return fmt.Errorf("dxf: %w", err)
		}
		for i, a := range s.Polygon {
			b := s.Polygon[(i+1)%len(s.Polygon)]
			if _, err := d.Line(a.X, a.Y, a.Z, b.X, b.Y, b.Z); err != nil {
				return fmt.Errorf("dxf: %s/%s: %w", s.Space.Name, s.Name, err)
			}
		}
	}

	if err := d.SaveAs(path); err != nil {
		return fmt.Errorf("dxf: %w", err)
	}
	return nil
}
