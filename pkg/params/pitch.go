package params

import (
	"fmt"
	"strconv"
	"strings"
)

// Pitch is a roof slope given as rise over run, written "6:12".
type Pitch struct {
	Rise float64
	Run  float64
}

// ParsePitch parses a "rise:run" string. A bare number is a rise over 12.
func ParsePitch(s string) (Pitch, error) {
	s = strings.TrimSpace(s)
	rise, run, found := strings.Cut(s, ":")
	if !found {
		run = "12"
	}
	r, err := strconv.ParseFloat(strings.TrimSpace(rise), 64)
	if err != nil {
		return Pitch{}, fmt.Errorf("pitch %q: bad rise: %w", s, err)
	}
	n, err := strconv.ParseFloat(strings.TrimSpace(run), 64)
	if err != nil {
		return Pitch{}, fmt.Errorf("pitch %q: bad run: %w", s, err)
	}
	if n <= 0 {
		return Pitch{}, fmt.Errorf("pitch %q: run must be positive", s)
	}
	return Pitch{Rise: r, Run: n}, nil
}

// Value returns rise divided by run.
func (p Pitch) Value() float64 {
	if p.Run == 0 {
		return 0
	}
	return p.Rise / p.Run
}

func (p Pitch) String() string {
	return strconv.FormatFloat(p.Rise, 'g', -1, 64) + ":" + strconv.FormatFloat(p.Run, 'g', -1, 64)
}

func (p Pitch) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

func (p *Pitch) UnmarshalText(b []byte) (err error) {
	*p, err = ParsePitch(string(b))
	return err
}
