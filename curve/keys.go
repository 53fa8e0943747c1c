package curve

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"gopkg.in/yaml.v3"
)

var (
	ErrNoKeys       = errors.New("curve: no keys")
	ErrUnsortedKeys = errors.New("curve: keys must have strictly increasing time")
	ErrNonFinite    = errors.New("curve: non-finite value")
)

// Key is one control point of a Keys curve.
type Key struct {
	Time  float64
	Value float64
}

// UnmarshalYAML accepts either [time, value] or {time: t, value: v}.
func (k *Key) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.SequenceNode:
		var pair []float64
		if err := value.Decode(&pair); err != nil {
			return err
		}
		if len(pair) != 2 {
			return fmt.Errorf("curve: key must be [time, value], got %d numbers", len(pair))
		}
		k.Time, k.Value = pair[0], pair[1]
		return nil
	case yaml.MappingNode:
		var m struct {
			Time  float64 `yaml:"time"`
			Value float64 `yaml:"value"`
		}
		if err := value.Decode(&m); err != nil {
			return err
		}
		k.Time, k.Value = m.Time, m.Value
		return nil
	}
	return fmt.Errorf("curve: key must be a sequence or mapping")
}

// Keys is a piecewise-linear curve. Inputs before the first key or after the
// last key hold the end values.
type Keys struct {
	keys []Key
}

func NewKeys(keys []Key) (*Keys, error) {
	if len(keys) == 0 {
		return nil, ErrNoKeys
	}
	sorted := append([]Key(nil), keys...)
	for i, k := range sorted {
		if !finite(k.Time) || !finite(k.Value) {
			return nil, fmt.Errorf("key %d: %w", i, ErrNonFinite)
		}
	}
	for i := 1; i < len(sorted); i++ {
		if sorted[i].Time <= sorted[i-1].Time {
			return nil, ErrUnsortedKeys
		}
	}
	return &Keys{keys: sorted}, nil
}

func (c *Keys) Evaluate(t float64) float64 {
	if c == nil || len(c.keys) == 0 {
		return 0
	}
	first := c.keys[0]
	last := c.keys[len(c.keys)-1]
	if t <= first.Time {
		return first.Value
	}
	if t >= last.Time {
		return last.Value
	}

	// index of the first key after t
	i := sort.Search(len(c.keys), func(i int) bool { return c.keys[i].Time > t })
	a, b := c.keys[i-1], c.keys[i]
	alpha := (t - a.Time) / (b.Time - a.Time)
	return a.Value + alpha*(b.Value-a.Value)
}

// Monotonic reports whether the key values never decrease.
func (c *Keys) Monotonic() bool {
	if c == nil {
		return true
	}
	for i := 1; i < len(c.keys); i++ {
		if c.keys[i].Value < c.keys[i-1].Value {
			return false
		}
	}
	return true
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
