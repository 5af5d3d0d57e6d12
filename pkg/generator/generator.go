// Package generator runs the envelope pipeline: footprint, stories, roof,
// foundation, reconciliation and boundary classification.
package generator

import (
	"fmt"

	"github.com/chazu/resgeom/pkg/classify"
	"github.com/chazu/resgeom/pkg/envelope"
	"github.com/chazu/resgeom/pkg/extrude"
	"github.com/chazu/resgeom/pkg/footprint"
	"github.com/chazu/resgeom/pkg/foundation"
	"github.com/chazu/resgeom/pkg/logging"
	"github.com/chazu/resgeom/pkg/params"
	"github.com/chazu/resgeom/pkg/reconcile"
	"github.com/chazu/resgeom/pkg/roof"
	"github.com/sirupsen/logrus"
)

// Report collects what a successful build produced besides the envelope.
type Report struct {
	Footprint  footprint.Footprint
	Roof       roof.Geometry
	Foundation foundation.Geometry
	Reconcile  reconcile.Result
	Classify   classify.Result
	Warnings   []string
}

// Generator builds envelopes. The zero value is not usable; call New.
type Generator struct {
	log *logrus.Logger
}

// New creates a generator logging under the "generator" name.
func New() *Generator {
	return &Generator{log: logging.NamedLogger("generator")}
}

// WithLogger returns a generator that logs to l.
func WithLogger(l *logrus.Logger) *Generator {
	return &Generator{log: l}
}

// Build is New().Build.
func Build(dst *envelope.BuildingEnvelope, p params.Params) (Report, error) {
	return New().Build(dst, p)
}

// Build generates the envelope for p into dst, which must be empty. The
// pipeline works on a scratch envelope; dst is only written once every
// stage and the final validation succeed, so on error it is unchanged.
func (g *Generator) Build(dst *envelope.BuildingEnvelope, p params.Params) (Report, error) {
	if dst == nil {
		return Report{}, fmt.Errorf("generator: nil destination envelope")
	}
	if !dst.IsEmpty() {
		return Report{}, envelope.StartingStateError{Zones: len(dst.Zones), Spaces: len(dst.Spaces)}
	}
	if err := p.Validate(); err != nil {
		return Report{}, err
	}

	var rep Report
	fp, err := footprint.Solve(p)
	if err != nil {
		return Report{}, err
	}
	rep.Footprint = fp
	g.log.Debugf("footprint %.2f x %.2f ft (%.1f ft²)", fp.Length, fp.Width, fp.Area)

	// Reject impossible roofs before any geometry exists.
	if err := roof.Check(fp, p); err != nil {
		return Report{}, err
	}

	scratch := envelope.New()
	st, err := extrude.Extrude(scratch, fp, p.Stories, p.WallHeight)
	if err != nil {
		return Report{}, fmt.Errorf("generator: %w", err)
	}
	g.log.Debugf("extruded %d stories, top plate at %.2f ft", len(st.Living), st.Top)

	if rep.Roof, err = roof.Synthesize(scratch, fp, st, p); err != nil {
		return Report{}, err
	}
	for _, w := range rep.Roof.Warnings {
		g.log.Warn(w)
		rep.Warnings = append(rep.Warnings, w)
	}
	g.log.Debugf("%s roof, attic height %.2f ft", rep.Roof.Type, rep.Roof.AtticHeight)

	if rep.Foundation, err = foundation.Build(scratch, fp, p.Foundation); err != nil {
		return Report{}, err
	}

	if rep.Reconcile, err = reconcile.Reconcile(scratch); err != nil {
		return Report{}, envelope.InvalidGeometryError{Message: err.Error()}
	}
	g.log.Debugf("reconciled: %d split into %d pieces, %d pairs matched",
		rep.Reconcile.Split, rep.Reconcile.Pieces, rep.Reconcile.Matched)

	rep.Classify = classify.Classify(scratch, fp, p.Attached)
	if rep.Classify.Adiabatic > 0 {
		g.log.Debugf("%d party wall surfaces set adiabatic", rep.Classify.Adiabatic)
	}

	scratch.Metadata = envelope.Metadata{
		BuildingType:     p.BuildingType(),
		NumFloors:        p.Stories,
		NumUnits:         p.Attached.NumUnits,
		Length:           fp.Length,
		Width:            fp.Width,
		WallHeight:       p.WallHeight,
		AtticHeight:      rep.Roof.AtticHeight,
		GaragePitch:      rep.Roof.GaragePitch,
		FoundationHeight: rep.Foundation.Height,
	}

	res := envelope.Validate(scratch)
	for _, w := range res.Warnings {
		rep.Warnings = append(rep.Warnings, w.Message)
	}
	if !res.OK() {
		g.log.WithField("errors", len(res.Errors)).Error("generated envelope failed validation")
		return Report{}, envelope.InvalidGeometryError{Message: res.Err().Error()}
	}

	*dst = *scratch
	g.log.Infof("generated %d spaces in %d zones, %.1f ft² conditioned",
		len(dst.Spaces), len(dst.Zones), dst.ConditionedFloorArea())
	return rep, nil
}
