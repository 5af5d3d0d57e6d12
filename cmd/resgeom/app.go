package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/chazu/resgeom/pkg/engine"
	"github.com/chazu/resgeom/pkg/envelope"
	"github.com/chazu/resgeom/pkg/generator"
	"github.com/chazu/resgeom/pkg/kernel"
	"github.com/chazu/resgeom/pkg/kernel/dxf"
	"github.com/chazu/resgeom/pkg/kernel/sdfx"
	"github.com/chazu/resgeom/pkg/params"
	"github.com/chazu/resgeom/pkg/tessellate"
)

// boundaryColors assigns each boundary condition a display colour.
var boundaryColors = map[string]string{
	envelope.Outdoors.String():  "#4A90D9",
	envelope.Ground.String():    "#8B5A2B",
	envelope.Adjoining.String(): "#2ECC71",
	envelope.Adiabatic.String(): "#9B59B6",
}

// App ties the script engine, the generator and the exporters together.
type App struct {
	engine    *engine.Engine
	generator *generator.Generator
	exporters map[string]kernel.Exporter // by file extension
}

// MeshData is the JSON mesh format for viewers.
type MeshData struct {
	Vertices []float32 `json:"vertices"`
	Normals  []float32 `json:"normals"`
	Indices  []uint32  `json:"indices"`
	Boundary string    `json:"boundary"`
	Color    string    `json:"color"`
}

// EvalErrorData is a JSON-serializable error or warning.
type EvalErrorData struct {
	Line    int    `json:"line"`
	Col     int    `json:"col"`
	Message string `json:"message"`
}

// EvalResult is the full result of evaluating a script.
type EvalResult struct {
	Meshes   []MeshData      `json:"meshes"`
	Summary  *Summary        `json:"summary,omitempty"`
	Errors   []EvalErrorData `json:"errors"`
	Warnings []EvalErrorData `json:"warnings"`

	env *envelope.BuildingEnvelope
}

// Envelope returns the generated envelope, or nil when evaluation failed.
func (r EvalResult) Envelope() *envelope.BuildingEnvelope { return r.env }

// NewApp creates an App with the default generator and the STL and DXF
// exporters.
func NewApp() *App {
	a := &App{
		engine:    engine.NewEngine(),
		generator: generator.New(),
		exporters: make(map[string]kernel.Exporter),
	}
	for _, e := range []kernel.Exporter{sdfx.New(), dxf.New()} {
		a.exporters[e.Extension()] = e
	}
	return a
}

// Evaluate runs a parameter script through the whole pipeline and returns
// meshes grouped by boundary condition, or the errors that stopped it.
func (a *App) Evaluate(source string) EvalResult {
	result := EvalResult{
		Meshes:   []MeshData{},
		Errors:   []EvalErrorData{},
		Warnings: []EvalErrorData{},
	}

	// Step 1: script -> parameters.
	p, evalErrs, err := a.engine.Evaluate(source)
	if err != nil {
		log.Errorf("evaluate: %v", err)
		result.Errors = append(result.Errors, EvalErrorData{Message: err.Error()})
		return result
	}
	if len(evalErrs) > 0 {
		for _, e := range evalErrs {
			result.Errors = append(result.Errors, EvalErrorData{Line: e.Line, Col: e.Col, Message: e.Message})
		}
		return result
	}

	return a.build(*p, result)
}

// EvaluateParams runs the pipeline on already-parsed parameters.
func (a *App) EvaluateParams(p params.Params) EvalResult {
	return a.build(p, EvalResult{
		Meshes:   []MeshData{},
		Errors:   []EvalErrorData{},
		Warnings: []EvalErrorData{},
	})
}

func (a *App) build(p params.Params, result EvalResult) EvalResult {
	// Step 2: parameters -> envelope.
	env := envelope.New()
	rep, err := a.generator.Build(env, p)
	if err != nil {
		result.Errors = append(result.Errors, EvalErrorData{Message: err.Error()})
		return result
	}
	for _, w := range rep.Warnings {
		result.Warnings = append(result.Warnings, EvalErrorData{Message: w})
	}

	// Step 3: envelope -> meshes.
	meshes, err := tessellate.Tessellate(env, tessellate.ByBoundary)
	if err != nil {
		log.Errorf("tessellate: %v", err)
		result.Errors = append(result.Errors, EvalErrorData{Message: "tessellation failed: " + err.Error()})
		return result
	}
	for _, m := range meshes {
		result.Meshes = append(result.Meshes, MeshData{
			Vertices: m.Vertices,
			Normals:  m.Normals,
			Indices:  m.Indices,
			Boundary: m.Name,
			Color:    boundaryColors[m.Name],
		})
	}

	s := Summarize(env, rep)
	result.Summary = &s
	result.env = env
	return result
}

// Export writes env to path in the format its extension names.
func (a *App) Export(env *envelope.BuildingEnvelope, path string) error {
	ext := strings.ToLower(filepath.Ext(path))
	e, ok := a.exporters[ext]
	if !ok {
		return fmt.Errorf("no exporter for %q files (have %s)", ext, strings.Join(a.extensions(), ", "))
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return e.Export(path, env)
}

func (a *App) extensions() []string {
	exts := make([]string, 0, len(a.exporters))
	for ext := range a.exporters {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}
