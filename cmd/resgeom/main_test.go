package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/chazu/resgeom/pkg/params"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestDefaultsCommand(t *testing.T) {
	out, err := run(t, "defaults")
	if err != nil {
		t.Fatal(err)
	}
	p, err := params.Parse([]byte(out))
	if err != nil {
		t.Fatalf("defaults output does not parse: %v\n%s", err, out)
	}
	if p != params.Default() {
		t.Errorf("round trip = %+v, want defaults", p)
	}
}

func TestGenerateCommand(t *testing.T) {
	dir := t.TempDir()
	stl := filepath.Join(dir, "ranch.stl")

	out, err := run(t, "generate", "../../examples/ranch.yaml", "--out", stl)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"building", "conditioned area", "Ground"} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q:\n%s", want, out)
		}
	}
	if _, err := os.Stat(stl); err != nil {
		t.Errorf("STL not written: %v", err)
	}
}

func TestGenerateCommandJSON(t *testing.T) {
	out, err := run(t, "generate", "--json", "../../examples/townhouse.lisp")
	if err != nil {
		t.Fatal(err)
	}
	var s Summary
	if err := json.Unmarshal([]byte(out), &s); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	if s.Stories != 3 || len(s.Zones) == 0 {
		t.Errorf("summary = %+v", s)
	}
}

func TestGenerateCommandErrors(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.lisp")
	if err := os.WriteFile(bad, []byte("(house :stories 0)"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		args []string
	}{
		{"no input", []string{"generate"}},
		{"unknown input type", []string{"generate", "house.txt"}},
		{"missing file", []string{"generate", filepath.Join(dir, "missing.yaml")}},
		{"invalid parameters", []string{"generate", bad}},
		{"unknown output type", []string{"generate", "../../examples/townhouse.lisp", "-o", filepath.Join(dir, "x.obj")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := run(t, tt.args...); err == nil {
				t.Error("expected an error")
			}
		})
	}
}
