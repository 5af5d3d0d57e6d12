// Package kernel defines the flat triangle meshes produced by the
// tessellator and the interface file exporters implement. Backends live in
// subpackages (sdfx for STL, dxf for CAD wireframes) so callers can swap
// formats without touching the envelope pipeline.
package kernel

import "github.com/chazu/resgeom/pkg/envelope"

// Exporter writes a generated envelope to a file.
type Exporter interface {
	// Export writes env to path, replacing any existing file.
	Export(path string, env *envelope.BuildingEnvelope) error

	// Extension is the file extension the format uses, with the dot.
	Extension() string
}
