package engine

import (
	"strings"
	"testing"

	"github.com/chazu/resgeom/pkg/params"
)

// ---------------------------------------------------------------------------
// Preprocessing
// ---------------------------------------------------------------------------

func TestPreprocessSource(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		expect string
	}{
		{"simple keyword", `(house :stories 2)`, `(house "__kw_stories" 2)`},
		{"kebab keyword", `(house :floor-area 2000)`, `(house "__kw_floor-area" 2000)`},
		{"keyword value", `(garage :position :left)`, `(garage "__kw_position" "__kw_left")`},
		{"keyword in string preserved", `"thing with :keyword inside"`, `"thing with :keyword inside"`},
		{"escaped quote in string", `"a \" :b" :c`, `"a \" :b" "__kw_c"`},
		{"assignment operator preserved", `(def x := 10)`, `(def x := 10)`},
		{"kebab-case identifier", `(def floor-area 10)`, `(def floor_area 10)`},
		{"minus operator preserved", `(- 10 5)`, `(- 10 5)`},
		{"double semicolon comment", `;; comment with :keyword`, `// comment with :keyword`},
		{"comment ends at newline", "; note\n(roof)", "// note\n(roof)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := preprocessSource(tt.input); got != tt.expect {
				t.Errorf("preprocessSource(%q) = %q, want %q", tt.input, got, tt.expect)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// Builtins
// ---------------------------------------------------------------------------

func evalOK(t *testing.T, src string) params.Params {
	t.Helper()
	p, evalErrs, err := NewEngine().Evaluate(src)
	if err != nil {
		t.Fatalf("fatal error: %v", err)
	}
	if len(evalErrs) > 0 {
		t.Fatalf("eval errors: %v", evalErrs)
	}
	return *p
}

func TestBuiltins(t *testing.T) {
	tests := []struct {
		name  string
		src   string
		check func(p params.Params) bool
	}{
		{
			"house",
			`(house :floor-area 2400 :wall-height 9 :stories 3 :aspect-ratio 1.5)`,
			func(p params.Params) bool {
				return p.FloorArea == 2400 && p.WallHeight == 9 && p.Stories == 3 && p.AspectRatio == 1.5
			},
		},
		{
			"garage",
			`(garage :width 20 :depth 22 :protrusion 0.5 :position :left)`,
			func(p params.Params) bool {
				return p.Garage == params.Garage{Width: 20, Depth: 22, Protrusion: 0.5, Position: params.GarageLeft}
			},
		},
		{
			"crawlspace",
			`(foundation :type :crawlspace :height 3)`,
			func(p params.Params) bool {
				return p.Foundation == params.Foundation{Type: params.Crawlspace, Height: 3}
			},
		},
		{
			"basement takes its fixed height",
			`(foundation :type :finished-basement)`,
			func(p params.Params) bool {
				return p.Foundation == params.Foundation{Type: params.FinishedBasement, Height: params.BasementHeight}
			},
		},
		{
			"roof with pitch string",
			`(roof :type :hip :pitch "8:12")`,
			func(p params.Params) bool {
				return p.Roof == params.Roof{Type: params.Hip, Pitch: params.Pitch{Rise: 8, Run: 12}}
			},
		},
		{
			"roof with bare rise",
			`(roof :pitch 4)`,
			func(p params.Params) bool { return p.Roof.Pitch == params.Pitch{Rise: 4, Run: 12} },
		},
		{
			"attic flag",
			`(attic :finished)`,
			func(p params.Params) bool { return p.Attic == params.AtticFinished },
		},
		{
			"attic type",
			`(attic :type :unfinished)`,
			func(p params.Params) bool { return p.Attic == params.AtticUnfinished },
		},
		{
			"attached",
			`(attached :position :middle :units 6 :rear-units true)`,
			func(p params.Params) bool {
				return p.Attached == params.Attached{Position: params.UnitMiddle, NumUnits: 6, HasRearUnits: true}
			},
		},
		{
			"variables and arithmetic",
			"(def area 1000)\n(house :floor-area (* area 2) :stories 2)",
			func(p params.Params) bool { return p.FloorArea == 2000 },
		},
		{
			"later call overrides",
			"(house :stories 1)\n(house :stories 3)",
			func(p params.Params) bool { return p.Stories == 3 },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := evalOK(t, tt.src)
			if !tt.check(p) {
				t.Errorf("unexpected params: %+v", p)
			}
		})
	}
}

func TestBuiltinErrors(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		wantMsg string
	}{
		{"unknown option", `(house :color "red")`, "unknown option"},
		{"wrong value type", `(house :stories "two")`, "expected integer"},
		{"unknown roof type", `(roof :type :mansard)`, "mansard"},
		{"unknown garage position", `(garage :position :center)`, "center"},
		{"bad pitch", `(roof :pitch "steep")`, "steep"},
		{"bad boolean", `(attached :rear-units 1)`, "expected true or false"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, evalErrs, err := NewEngine().Evaluate(tt.src)
			if err != nil {
				t.Fatalf("fatal error: %v", err)
			}
			if p != nil {
				t.Errorf("expected nil params, got %+v", *p)
			}
			if len(evalErrs) == 0 {
				t.Fatal("expected an eval error")
			}
			if !strings.Contains(evalErrs[0].Message, tt.wantMsg) {
				t.Errorf("message = %q, want containing %q", evalErrs[0].Message, tt.wantMsg)
			}
		})
	}
}
