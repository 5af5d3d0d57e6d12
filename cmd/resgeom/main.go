// Command resgeom generates residential building envelopes from parameter
// scripts or YAML files.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chazu/resgeom/pkg/logging"
	"github.com/chazu/resgeom/pkg/params"
	"github.com/spf13/cobra"
)

var log = logging.NamedLogger("resgeom")

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

func newRootCmd(out io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:           "resgeom",
		Short:         "parametric residential envelope generator",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(out)
	root.AddCommand(newGenerateCmd(NewApp()), newDefaultsCmd())
	return root
}

type generateOptions struct {
	outputs []string
	json    bool
}

func newGenerateCmd(app *App) *cobra.Command {
	var opts generateOptions
	cmd := &cobra.Command{
		Use:   "generate <file.lisp|file.yaml>",
		Short: "build an envelope and print its summary",
		Long: "builds an envelope from a parameter script (.lisp) or parameter file (.yaml),\n" +
			"prints a summary and writes any --out files (.stl, .dxf) by extension",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd.OutOrStdout(), app, args[0], opts)
		},
	}
	cmd.Flags().StringArrayVarP(&opts.outputs, "out", "o", nil, "output file, format chosen by extension (repeatable)")
	cmd.Flags().BoolVar(&opts.json, "json", false, "print the summary as JSON")
	return cmd
}

func newDefaultsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "defaults",
		Short: "print the default parameters as YAML",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := params.Default().Marshal()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(b)
			return err
		},
	}
}

func runGenerate(out io.Writer, app *App, path string, opts generateOptions) error {
	result, err := evaluateFile(app, path)
	if err != nil {
		return err
	}
	for _, w := range result.Warnings {
		log.Warn(w.Message)
	}
	if len(result.Errors) > 0 {
		msgs := make([]string, len(result.Errors))
		for i, e := range result.Errors {
			if e.Line > 0 {
				msgs[i] = fmt.Sprintf("%s:%d:%d: %s", path, e.Line, e.Col, e.Message)
			} else {
				msgs[i] = e.Message
			}
		}
		return fmt.Errorf("generate failed:\n%s", strings.Join(msgs, "\n"))
	}

	for _, o := range opts.outputs {
		if err := app.Export(result.Envelope(), o); err != nil {
			return fmt.Errorf("export %s: %w", o, err)
		}
		log.Infof("wrote %s", o)
	}

	if opts.json {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(result.Summary)
	}
	return result.Summary.WriteText(out)
}

func evaluateFile(app *App, path string) (EvalResult, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		p, err := params.Load(path)
		if err != nil {
			return EvalResult{}, err
		}
		return app.EvaluateParams(p), nil
	case ".lisp", ".zy":
		src, err := os.ReadFile(path)
		if err != nil {
			return EvalResult{}, err
		}
		return app.Evaluate(string(src)), nil
	}
	return EvalResult{}, fmt.Errorf("unrecognised input %q: want .lisp or .yaml", path)
}
