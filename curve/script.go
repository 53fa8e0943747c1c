package curve

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
)

var ErrNoOutput = errors.New("curve: script produced no value")

// A curve script must define `curve := func(x) { ... }`. The dispatch below
// is appended so every Evaluate is a single Run of the compiled program.
const scriptDispatch = `
__y := curve(__x)
`

// Script is a response curve authored as a tengo function.
type Script struct {
	name     string
	compiled *tengo.Compiled
	fallback float64
	failed   bool
}

// NewScript compiles src. fallback is returned whenever evaluation fails.
func NewScript(name string, src []byte, fallback float64) (*Script, error) {
	if strings.TrimSpace(string(src)) == "" {
		return nil, fmt.Errorf("curve: script %q is empty", name)
	}

	script := tengo.NewScript([]byte(string(src) + "\n" + scriptDispatch))
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))
	if err := script.Add("__x", 0.0); err != nil {
		return nil, fmt.Errorf("curve: script %q: %w", name, err)
	}

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("curve: compile %q: %w", name, err)
	}

	s := &Script{name: name, compiled: compiled, fallback: fallback}
	// Probe once so a script that cannot produce a number fails at load time.
	if _, err := s.eval(1); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Script) Name() string {
	if s == nil {
		return ""
	}
	return s.name
}

func (s *Script) Evaluate(x float64) float64 {
	if s == nil {
		return 0
	}
	y, err := s.eval(x)
	if err != nil {
		if !s.failed {
			log.Printf("Curve: script %q failed, using %.2f: %v", s.name, s.fallback, err)
			s.failed = true
		}
		return s.fallback
	}
	return y
}

func (s *Script) eval(x float64) (float64, error) {
	if err := s.compiled.Set("__x", x); err != nil {
		return 0, err
	}
	if err := s.compiled.Run(); err != nil {
		return 0, fmt.Errorf("curve: run %q: %w", s.name, err)
	}
	out := s.compiled.Get("__y")
	if out == nil || out.IsUndefined() {
		return 0, ErrNoOutput
	}
	switch out.Value().(type) {
	case float64, int64:
		y := out.Float()
		if !finite(y) {
			return 0, fmt.Errorf("curve: script %q at %v: %w", s.name, x, ErrNonFinite)
		}
		return y, nil
	}
	return 0, fmt.Errorf("curve: script %q returned %s, want a number", s.name, out.ValueType())
}
