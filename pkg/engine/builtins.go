package engine

import (
	"fmt"
	"strings"

	"github.com/chazu/resgeom/pkg/params"
	zygo "github.com/glycerine/zygomys/zygo"
)

// ---------------------------------------------------------------------------
// Source preprocessing
// ---------------------------------------------------------------------------

// kwPrefix marks keyword literals after preprocessing.
const kwPrefix = "__kw_"

// preprocessSource rewrites script source into something zygomys reads:
//
//   - :floor-area becomes the string "__kw_floor-area", so keywords need no
//     global symbols
//   - floor-area as an identifier becomes floor_area, since zygomys reads a
//     hyphen as minus
//   - ; comments become // comments
//
// String literals pass through untouched.
func preprocessSource(source string) string {
	var out strings.Builder
	out.Grow(len(source) + len(source)/4)
	b := source
	for i := 0; i < len(b); {
		c := b[i]
		switch {
		case c == '"' || c == '`':
			j := skipString(b, i)
			out.WriteString(b[i:j])
			i = j

		case c == ';':
			j := i
			for j < len(b) && b[j] == ';' {
				j++
			}
			k := strings.IndexByte(b[j:], '\n')
			if k < 0 {
				k = len(b) - j
			}
			out.WriteString("//")
			out.WriteString(b[j : j+k])
			i = j + k

		case c == ':' && i+1 < len(b) && b[i+1] == '=':
			out.WriteString(":=")
			i += 2

		case c == ':' && i+1 < len(b) && isLetter(b[i+1]):
			j := i + 1
			for j < len(b) && isKWChar(b[j]) {
				j++
			}
			fmt.Fprintf(&out, "%q", kwPrefix+b[i+1:j])
			i = j

		case c == '-' && i > 0 && i+1 < len(b) && isIdentChar(b[i-1]) && isLetter(b[i+1]):
			out.WriteByte('_')
			i++

		default:
			out.WriteByte(c)
			i++
		}
	}
	return out.String()
}

// skipString returns the index just past the string literal starting at i.
// Double-quoted strings honour backslash escapes; backtick strings do not.
func skipString(b string, i int) int {
	quote := b[i]
	j := i + 1
	for j < len(b) && b[j] != quote {
		if quote == '"' && b[j] == '\\' {
			j++
		}
		j++
	}
	if j < len(b) {
		j++
	}
	if j > len(b) {
		j = len(b)
	}
	return j
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentChar(c byte) bool {
	return isLetter(c) || (c >= '0' && c <= '9') || c == '_'
}

func isKWChar(c byte) bool {
	return isIdentChar(c) || c == '-'
}

// ---------------------------------------------------------------------------
// Argument parsing
// ---------------------------------------------------------------------------

type kwArg struct {
	name  string
	value zygo.Sexp
}

// kwArgs is a call's arguments split into keyword pairs, in source order,
// and the remaining positional values.
type kwArgs struct {
	kw         []kwArg
	positional []zygo.Sexp
}

func keywordName(s zygo.Sexp) (string, bool) {
	str, ok := s.(*zygo.SexpStr)
	if !ok || !strings.HasPrefix(str.S, kwPrefix) {
		return "", false
	}
	return str.S[len(kwPrefix):], true
}

func parseArgs(args []zygo.Sexp) kwArgs {
	var res kwArgs
	for i := 0; i < len(args); i++ {
		name, ok := keywordName(args[i])
		if !ok {
			res.positional = append(res.positional, args[i])
			continue
		}
		var v zygo.Sexp = zygo.SexpNull
		if i+1 < len(args) {
			i++
			v = args[i]
		}
		res.kw = append(res.kw, kwArg{name: name, value: v})
	}
	return res
}

func (a kwArgs) has(name string) bool {
	for _, kv := range a.kw {
		if kv.name == name {
			return true
		}
	}
	return false
}

// ---------------------------------------------------------------------------
// Value setters
// ---------------------------------------------------------------------------

// setter stores one option value into the parameters.
type setter func(zygo.Sexp) error

func describe(s zygo.Sexp) string {
	return fmt.Sprintf("%T (%s)", s, s.SexpString(nil))
}

func toFloat64(s zygo.Sexp) (float64, error) {
	switch v := s.(type) {
	case *zygo.SexpInt:
		return float64(v.Val), nil
	case *zygo.SexpFloat:
		return v.Val, nil
	}
	return 0, fmt.Errorf("expected number, got %s", describe(s))
}

// toName accepts a keyword (:left) or a plain string ("left").
func toName(s zygo.Sexp) (string, error) {
	if name, ok := keywordName(s); ok {
		return name, nil
	}
	if str, ok := s.(*zygo.SexpStr); ok {
		return str.S, nil
	}
	return "", fmt.Errorf("expected keyword or string, got %s", describe(s))
}

func number(dst *float64) setter {
	return func(s zygo.Sexp) error {
		f, err := toFloat64(s)
		if err != nil {
			return err
		}
		*dst = f
		return nil
	}
}

func integer(dst *int) setter {
	return func(s zygo.Sexp) error {
		v, ok := s.(*zygo.SexpInt)
		if !ok {
			return fmt.Errorf("expected integer, got %s", describe(s))
		}
		*dst = int(v.Val)
		return nil
	}
}

func boolean(dst *bool) setter {
	return func(s zygo.Sexp) error {
		v, ok := s.(*zygo.SexpBool)
		if !ok {
			return fmt.Errorf("expected true or false, got %s", describe(s))
		}
		*dst = v.Val
		return nil
	}
}

// named parses a keyword through parse and stores the result.
func named[T any](dst *T, parse func(string) (T, error)) setter {
	return func(s zygo.Sexp) error {
		name, err := toName(s)
		if err != nil {
			return err
		}
		v, err := parse(name)
		if err != nil {
			return err
		}
		*dst = v
		return nil
	}
}

// pitch accepts "rise:run" or a bare rise over a 12 run.
func pitch(dst *params.Pitch) setter {
	return func(s zygo.Sexp) error {
		if str, ok := s.(*zygo.SexpStr); ok {
			p, err := params.ParsePitch(str.S)
			if err != nil {
				return err
			}
			*dst = p
			return nil
		}
		rise, err := toFloat64(s)
		if err != nil {
			return fmt.Errorf("expected \"rise:run\" or number: %w", err)
		}
		*dst = params.Pitch{Rise: rise, Run: 12}
		return nil
	}
}

// apply runs the setter for every keyword in args.
func apply(fn string, args kwArgs, opts map[string]setter) error {
	for _, kv := range args.kw {
		set, ok := opts[kv.name]
		if !ok {
			return fmt.Errorf("%s: unknown option :%s", fn, kv.name)
		}
		if err := set(kv.value); err != nil {
			return fmt.Errorf("%s: %s: %w", fn, kv.name, err)
		}
	}
	return nil
}

// ---------------------------------------------------------------------------
// Builtin registration
// ---------------------------------------------------------------------------

type builtin func(args kwArgs) error

// session is the state one evaluation builds up.
type session struct {
	params params.Params
	failed error // first builtin error, reported verbatim
}

// registerBuiltins installs the parameter builtins. Each one updates the
// session parameters in place and returns nil to the script; calling one
// twice overrides the earlier values. Source must go through
// preprocessSource first.
func registerBuiltins(env *zygo.Zlisp, s *session) {
	p := &s.params
	add := func(name string, fn builtin) {
		env.AddFunction(name, func(env *zygo.Zlisp, _ string, args []zygo.Sexp) (zygo.Sexp, error) {
			if err := fn(parseArgs(args)); err != nil {
				if s.failed == nil {
					s.failed = err
				}
				return zygo.SexpNull, err
			}
			return zygo.SexpNull, nil
		})
	}

	// (house :floor-area 2000 :wall-height 8 :stories 2 :aspect-ratio 2.0)
	add("house", func(a kwArgs) error {
		return apply("house", a, map[string]setter{
			"floor-area":   number(&p.FloorArea),
			"wall-height":  number(&p.WallHeight),
			"stories":      integer(&p.Stories),
			"aspect-ratio": number(&p.AspectRatio),
		})
	})

	// (garage :width 20 :depth 20 :protrusion 0.5 :position :left)
	add("garage", func(a kwArgs) error {
		return apply("garage", a, map[string]setter{
			"width":      number(&p.Garage.Width),
			"depth":      number(&p.Garage.Depth),
			"protrusion": number(&p.Garage.Protrusion),
			"position":   named(&p.Garage.Position, params.ParseGaragePosition),
		})
	})

	// (foundation :type :crawlspace :height 3)
	//
	// Without :height, types with a fixed height (slab, basements) take it.
	add("foundation", func(a kwArgs) error {
		err := apply("foundation", a, map[string]setter{
			"type":   named(&p.Foundation.Type, params.ParseFoundationType),
			"height": number(&p.Foundation.Height),
		})
		if err != nil {
			return err
		}
		if lo, hi := p.Foundation.Type.HeightRange(); !a.has("height") && lo == hi {
			p.Foundation.Height = lo
		}
		return nil
	})

	// (roof :type :hip :pitch "6:12")
	add("roof", func(a kwArgs) error {
		return apply("roof", a, map[string]setter{
			"type":  named(&p.Roof.Type, params.ParseRoofType),
			"pitch": pitch(&p.Roof.Pitch),
		})
	})

	// (attic :finished) or (attic :type :finished)
	add("attic", func(a kwArgs) error {
		if len(a.kw) == 1 && !a.has("type") && a.kw[0].value == zygo.SexpNull {
			t, err := params.ParseAtticType(a.kw[0].name)
			if err != nil {
				return fmt.Errorf("attic: %w", err)
			}
			p.Attic = t
			return nil
		}
		return apply("attic", a, map[string]setter{
			"type": named(&p.Attic, params.ParseAtticType),
		})
	})

	// (attached :position :middle :units 6 :rear-units true)
	add("attached", func(a kwArgs) error {
		return apply("attached", a, map[string]setter{
			"position":   named(&p.Attached.Position, params.ParseUnitPosition),
			"units":      integer(&p.Attached.NumUnits),
			"rear-units": boolean(&p.Attached.HasRearUnits),
		})
	})
}
