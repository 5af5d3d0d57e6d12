package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/chazu/resgeom/pkg/envelope"
	"github.com/chazu/resgeom/pkg/generator"
)

// ZoneSummary describes one thermal zone.
type ZoneSummary struct {
	Name      string  `json:"name"`
	Kind      string  `json:"kind"`
	Spaces    int     `json:"spaces"`
	FloorArea float64 `json:"floorArea"`
}

// Summary is the report printed after a build.
type Summary struct {
	BuildingType         string             `json:"buildingType"`
	Stories              int                `json:"stories"`
	Units                int                `json:"units"`
	Length               float64            `json:"length"`
	Width                float64            `json:"width"`
	FootprintArea        float64            `json:"footprintArea"`
	AtticHeight          float64            `json:"atticHeight"`
	GaragePitch          float64            `json:"garagePitch,omitempty"`
	FoundationHeight     float64            `json:"foundationHeight"`
	ConditionedFloorArea float64            `json:"conditionedFloorArea"`
	Zones                []ZoneSummary      `json:"zones"`
	Surfaces             int                `json:"surfaces"`
	BoundaryArea         map[string]float64 `json:"boundaryArea"`
	Warnings             []string           `json:"warnings,omitempty"`
}

// Summarize collects the headline numbers of a generated envelope.
func Summarize(env *envelope.BuildingEnvelope, rep generator.Report) Summary {
	md := env.Metadata
	s := Summary{
		BuildingType:         md.BuildingType.String(),
		Stories:              md.NumFloors,
		Units:                md.NumUnits,
		Length:               md.Length,
		Width:                md.Width,
		FootprintArea:        rep.Footprint.Area,
		AtticHeight:          md.AtticHeight,
		GaragePitch:          md.GaragePitch,
		FoundationHeight:     md.FoundationHeight,
		ConditionedFloorArea: env.ConditionedFloorArea(),
		Surfaces:             len(env.Surfaces()),
		BoundaryArea:         make(map[string]float64),
		Warnings:             rep.Warnings,
	}
	for _, z := range env.Zones {
		s.Zones = append(s.Zones, ZoneSummary{
			Name:      z.Name,
			Kind:      z.Kind.String(),
			Spaces:    len(z.Spaces),
			FloorArea: z.FloorArea(),
		})
	}
	for bc, a := range env.BoundarySummary() {
		s.BoundaryArea[bc.String()] = a
	}
	return s
}

// WriteText prints the summary as aligned text.
func (s Summary) WriteText(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "building\t%s, %d stories, %d unit(s)\n", s.BuildingType, s.Stories, s.Units)
	fmt.Fprintf(tw, "footprint\t%.2f x %.2f ft (%.1f ft²)\n", s.Length, s.Width, s.FootprintArea)
	fmt.Fprintf(tw, "attic height\t%.2f ft\n", s.AtticHeight)
	if s.GaragePitch > 0 {
		fmt.Fprintf(tw, "garage pitch\t%.3f\n", s.GaragePitch)
	}
	fmt.Fprintf(tw, "foundation height\t%.2f ft\n", s.FoundationHeight)
	fmt.Fprintf(tw, "conditioned area\t%.1f ft²\n", s.ConditionedFloorArea)
	fmt.Fprintf(tw, "surfaces\t%d\n", s.Surfaces)
	fmt.Fprintln(tw)
	fmt.Fprintln(tw, "zone\tkind\tspaces\tfloor area")
	for _, z := range s.Zones {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%.1f ft²\n", z.Name, z.Kind, z.Spaces, z.FloorArea)
	}
	fmt.Fprintln(tw)
	fmt.Fprintln(tw, "boundary\tarea")
	for _, bc := range envelope.AllBoundaryConditions {
		if a, ok := s.BoundaryArea[bc.String()]; ok {
			fmt.Fprintf(tw, "%s\t%.1f ft²\n", bc, a)
		}
	}
	for _, warn := range s.Warnings {
		fmt.Fprintf(tw, "warning\t%s\n", warn)
	}
	return tw.Flush()
}
