// Package engine evaluates house parameter scripts. A script is Lisp source
// run by zygomys in a fresh sandbox; builtins such as (house ...) and
// (garage ...) fill in a params.Params starting from the defaults.
package engine

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"sync"

	"github.com/chazu/resgeom/pkg/params"
	zygo "github.com/glycerine/zygomys/zygo"
)

// EvalError is a non-fatal problem in user code: a parse error, a runtime
// error, or a bad builtin argument.
type EvalError struct {
	Line    int
	Col     int
	Message string
}

func (e EvalError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s", e.Line, e.Message)
	}
	return e.Message
}

// Engine evaluates scripts. It is safe for concurrent use; each call to
// Evaluate gets its own sandbox, and only the newest call's result is
// returned.
type Engine struct {
	mu         sync.Mutex
	generation uint64
}

// NewEngine creates a new Engine.
func NewEngine() *Engine {
	return &Engine{}
}

// Evaluate runs source and returns the parameters it describes.
//
//   - On success: params + nil + nil
//   - On parse or eval failure: nil + eval errors + nil
//   - On timeout, panic, or a superseded call: nil + nil + error
//
// The parameters are not validated; the generator does that.
func (e *Engine) Evaluate(source string) (*params.Params, []EvalError, error) {
	e.mu.Lock()
	e.generation++
	gen := e.generation
	e.mu.Unlock()

	ch := make(chan evalResult, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				ch <- evalResult{err: fmt.Errorf("panic during evaluation: %v", r)}
			}
		}()
		p, errs := evaluate(source)
		ch <- evalResult{params: p, errors: errs}
	}()

	return waitWithTimeout(ch, gen, &e.mu, &e.generation)
}

func evaluate(source string) (*params.Params, []EvalError) {
	s := &session{params: params.Default()}
	if strings.TrimSpace(source) == "" {
		return &s.params, nil
	}

	env := zygo.NewZlispSandbox()
	defer env.Stop()
	registerBuiltins(env, s)

	if err := env.LoadString(preprocessSource(source)); err != nil {
		return nil, parseZygomysError(err)
	}
	if _, err := env.Run(); err != nil {
		errs := parseZygomysError(err)
		if s.failed != nil {
			// zygomys decorates builtin errors; keep the line, drop the noise.
			errs[0].Message = s.failed.Error()
		}
		return nil, errs
	}
	return &s.params, nil
}

var (
	// "Error on line N: ..." as printed by the zygomys parser.
	linePattern = regexp.MustCompile(`(?i)(?:error )?on line (\d+):\s*(.*)`)
	// "line N: ..."
	linePatternShort = regexp.MustCompile(`(?i)^line (\d+):\s*(.*)`)
)

// parseZygomysError turns a zygomys error into an EvalError, pulling out
// the line number when the message carries one.
func parseZygomysError(err error) []EvalError {
	msg := err.Error()
	for _, re := range []*regexp.Regexp{linePattern, linePatternShort} {
		if m := re.FindStringSubmatch(msg); m != nil {
			line, _ := strconv.Atoi(m[1])
			return []EvalError{{Line: line, Message: strings.TrimSpace(m[2])}}
		}
	}
	return []EvalError{{Message: strings.TrimSpace(msg)}}
}
