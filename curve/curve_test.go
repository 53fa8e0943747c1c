package curve

import (
	"errors"
	"math"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestKeysEvaluate(t *testing.T) {
	c, err := NewKeys([]Key{{0, 0}, {0.5, 0.2}, {1, 1}})
	if err != nil {
		t.Fatalf("NewKeys: %v", err)
	}
	cases := []struct {
		in, want float64
	}{
		{-1, 0},
		{0, 0},
		{0.25, 0.1},
		{0.5, 0.2},
		{0.75, 0.6},
		{1, 1},
		{2, 1},
	}
	for _, tc := range cases {
		if got := c.Evaluate(tc.in); math.Abs(got-tc.want) > 1e-9 {
			t.Fatalf("Evaluate(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
	if !c.Monotonic() {
		t.Fatalf("expected monotonic curve")
	}
}

func TestNewKeysValidation(t *testing.T) {
	if _, err := NewKeys(nil); !errors.Is(err, ErrNoKeys) {
		t.Fatalf("expected ErrNoKeys, got %v", err)
	}
	if _, err := NewKeys([]Key{{0.5, 0}, {0.5, 1}}); !errors.Is(err, ErrUnsortedKeys) {
		t.Fatalf("expected ErrUnsortedKeys, got %v", err)
	}

	nonFinite := [][]Key{
		{{0, math.NaN()}, {1, 1}},
		{{0, math.Inf(1)}, {1, math.Inf(-1)}},
		{{math.Inf(-1), 0}, {1, 1}},
	}
	for _, keys := range nonFinite {
		if _, err := NewKeys(keys); !errors.Is(err, ErrNonFinite) {
			t.Fatalf("NewKeys(%v): expected ErrNonFinite, got %v", keys, err)
		}
	}

	var keys []Key
	if err := yaml.Unmarshal([]byte("- [0, .nan]\n- [1, 1]\n"), &keys); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if _, err := NewKeys(keys); !errors.Is(err, ErrNonFinite) {
		t.Fatalf("expected ErrNonFinite for .nan key, got %v", err)
	}
}

func TestScriptNonFiniteResult(t *testing.T) {
	if _, err := NewScript("nan", []byte("curve := func(x) { return 0.0/0.0 }"), 0.5); !errors.Is(err, ErrNonFinite) {
		t.Fatalf("expected ErrNonFinite, got %v", err)
	}

	src := `
curve := func(x) {
	if x < 0.5 {
		return 0.0 / 0.0
	}
	return x
}
`
	s, err := NewScript("half_nan", []byte(src), 0.5)
	if err != nil {
		t.Fatalf("NewScript: %v", err)
	}
	if got := s.Evaluate(0.25); got != 0.5 {
		t.Fatalf("Evaluate(0.25) = %v, want fallback 0.5", got)
	}
	if got := s.Evaluate(0.75); got != 0.75 {
		t.Fatalf("Evaluate(0.75) = %v, want 0.75", got)
	}
}

func TestKeyYAMLForms(t *testing.T) {
	src := []byte("- [0, 0.1]\n- {time: 1, value: 0.9}\n")
	var keys []Key
	if err := yaml.Unmarshal(src, &keys); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	want := []Key{{0, 0.1}, {1, 0.9}}
	if len(keys) != len(want) || keys[0] != want[0] || keys[1] != want[1] {
		t.Fatalf("keys = %v, want %v", keys, want)
	}

	if err := yaml.Unmarshal([]byte("- [1, 2, 3]\n"), &keys); err == nil {
		t.Fatalf("expected error for three-number key")
	}
}

func TestScriptCurve(t *testing.T) {
	src := []byte(`
math := import("math")
curve := func(x) {
	return math.pow(x, 2)
}
`)
	s, err := NewScript("square.tengo", src, 0.5)
	if err != nil {
		t.Fatalf("NewScript: %v", err)
	}
	for _, x := range []float64{0, 0.5, 1} {
		if got := s.Evaluate(x); math.Abs(got-x*x) > 1e-9 {
			t.Fatalf("Evaluate(%v) = %v, want %v", x, got, x*x)
		}
	}
}

func TestScriptCurveIntegerResult(t *testing.T) {
	s, err := NewScript("step.tengo", []byte(`curve := func(x) { if x > 0.5 { return 1 }; return 0 }`), 0.5)
	if err != nil {
		t.Fatalf("NewScript: %v", err)
	}
	if got := s.Evaluate(0.9); got != 1 {
		t.Fatalf("Evaluate(0.9) = %v, want 1", got)
	}
	if got := s.Evaluate(0.1); got != 0 {
		t.Fatalf("Evaluate(0.1) = %v, want 0", got)
	}
}

func TestScriptCurveErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"empty", "   "},
		{"syntax", "curve := func(x) { return x"},
		{"missing_curve_func", "other := 1"},
		{"non_numeric", `curve := func(x) { return "high" }`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := NewScript(tc.name, []byte(tc.src), 0.5); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}
