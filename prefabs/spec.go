package prefabs

import (
	"errors"
	"fmt"
	"strings"

	"github.com/milk9111/aimassist/assist"
	"github.com/milk9111/aimassist/common"
	"github.com/milk9111/aimassist/curve"
	"gopkg.in/yaml.v3"
)

var (
	ErrUnknownObjectType = errors.New("prefabs: unknown object type")
	ErrUnknownChannel    = errors.New("prefabs: unknown trace channel")
	ErrUnknownTeamSource = errors.New("prefabs: unknown team source")
	ErrCurveSource       = errors.New("prefabs: curve needs exactly one of keys or script")
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

type Vec2Spec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

func (v Vec2Spec) Vec2() common.Vec2 {
	return common.Vec2{X: v.X, Y: v.Y}
}

type Vec3Spec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

func (v Vec3Spec) Vec3() common.Vec3 {
	return common.Vec3{X: v.X, Y: v.Y, Z: v.Z}
}

// CurveSpec is a response curve given either as keys or as a tengo script
// under prefabs/scripts.
type CurveSpec struct {
	Keys   []curve.Key `yaml:"keys"`
	Script string      `yaml:"script"`
}

// Build returns the curve. fallback is used by scripts that fail at runtime.
func (c *CurveSpec) Build(fallback float64) (assist.Curve, error) {
	if c == nil {
		return nil, nil
	}
	switch {
	case len(c.Keys) > 0 && c.Script == "":
		keys, err := curve.NewKeys(c.Keys)
		if err != nil {
			return nil, err
		}
		return keys, nil
	case len(c.Keys) == 0 && c.Script != "":
		src, err := LoadScript(c.Script)
		if err != nil {
			return nil, fmt.Errorf("prefabs: load script %s: %w", c.Script, err)
		}
		script, err := curve.NewScript(c.Script, src, fallback)
		if err != nil {
			return nil, err
		}
		return script, nil
	}
	return nil, ErrCurveSource
}

type ZoneSpec struct {
	Enabled *bool      `yaml:"enabled"`
	Radius  *float64   `yaml:"radius"`
	Curve   *CurveSpec `yaml:"curve"`
}

func (z ZoneSpec) apply(zone *assist.Zone, fallback float64) error {
	if z.Enabled != nil {
		zone.Enabled = *z.Enabled
	}
	if z.Radius != nil {
		zone.Radius = *z.Radius
	}
	c, err := z.Curve.Build(fallback)
	if err != nil {
		return err
	}
	zone.Curve = c
	return nil
}

type TeamFilterSpec struct {
	Enabled  *bool  `yaml:"enabled"`
	Source   string `yaml:"source"`
	Accepted []int  `yaml:"accepted"`
}

// AimAssistSpec is the tuning file. Omitted fields keep the defaults of
// assist.DefaultConfig.
type AimAssistSpec struct {
	Enabled           *bool          `yaml:"enabled"`
	GamepadOnly       *bool          `yaml:"gamepad_only"`
	Debug             bool           `yaml:"debug"`
	OverlapRange      *float64       `yaml:"overlap_range"`
	OverlapHalfExtent *Vec3Spec      `yaml:"overlap_half_extent"`
	ObjectTypes       []string       `yaml:"object_types"`
	VisibilityChannel string         `yaml:"visibility_channel"`
	OffsetFromCenter  Vec2Spec       `yaml:"offset_from_center"`
	Teams             TeamFilterSpec `yaml:"teams"`
	Friction          ZoneSpec       `yaml:"friction"`
	Magnetism         ZoneSpec       `yaml:"magnetism"`
}

func LoadAimAssistSpec(filename string) (AimAssistSpec, error) {
	return LoadSpec[AimAssistSpec](filename)
}

// LoadAimAssistConfig loads a tuning file and builds its config.
func LoadAimAssistConfig(filename string) (assist.Config, error) {
	spec, err := LoadAimAssistSpec(filename)
	if err != nil {
		return assist.Config{}, err
	}
	cfg, err := spec.Config()
	if err != nil {
		return assist.Config{}, fmt.Errorf("prefabs: %s: %w", filename, err)
	}
	return cfg, nil
}

func (s AimAssistSpec) Config() (assist.Config, error) {
	cfg := assist.DefaultConfig()

	if s.Enabled != nil {
		cfg.Enabled = *s.Enabled
	}
	if s.GamepadOnly != nil {
		cfg.GamepadOnly = *s.GamepadOnly
	}
	cfg.Debug = s.Debug
	if s.OverlapRange != nil {
		cfg.OverlapRange = *s.OverlapRange
	}
	if s.OverlapHalfExtent != nil {
		cfg.OverlapHalfExtent = s.OverlapHalfExtent.Vec3()
	}
	if len(s.ObjectTypes) > 0 {
		mask, err := ParseObjectTypes(s.ObjectTypes)
		if err != nil {
			return assist.Config{}, err
		}
		cfg.ObjectTypes = mask
	}
	if s.VisibilityChannel != "" {
		ch, err := ParseChannel(s.VisibilityChannel)
		if err != nil {
			return assist.Config{}, err
		}
		cfg.VisibilityChannel = ch
	}
	cfg.OffsetFromCenter = s.OffsetFromCenter.Vec2()

	if s.Teams.Enabled != nil {
		cfg.Teams.Enabled = *s.Teams.Enabled
	}
	if s.Teams.Source != "" {
		src, err := ParseTeamSource(s.Teams.Source)
		if err != nil {
			return assist.Config{}, err
		}
		cfg.Teams.Source = src
	}
	if s.Teams.Accepted != nil {
		accepted := make([]assist.TeamID, 0, len(s.Teams.Accepted))
		for _, t := range s.Teams.Accepted {
			if t < 0 || t > 255 {
				return assist.Config{}, fmt.Errorf("prefabs: team %d out of range", t)
			}
			accepted = append(accepted, assist.TeamID(t))
		}
		cfg.Teams.Accepted = accepted
	}

	if err := s.Friction.apply(&cfg.Friction, assist.DefaultFrictionStrength); err != nil {
		return assist.Config{}, fmt.Errorf("friction curve: %w", err)
	}
	if err := s.Magnetism.apply(&cfg.Magnetism, assist.DefaultMagnetismStrength); err != nil {
		return assist.Config{}, fmt.Errorf("magnetism curve: %w", err)
	}
	return cfg, nil
}

var objectTypeNames = map[string]assist.ObjectType{
	"world_static":  assist.ObjectWorldStatic,
	"world_dynamic": assist.ObjectWorldDynamic,
	"pawn":          assist.ObjectPawn,
	"physics_body":  assist.ObjectPhysicsBody,
	"vehicle":       assist.ObjectVehicle,
	"destructible":  assist.ObjectDestructible,
}

func ParseObjectType(name string) (assist.ObjectType, error) {
	t, ok := objectTypeNames[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownObjectType, name)
	}
	return t, nil
}

func ParseObjectTypes(names []string) (assist.ObjectTypeMask, error) {
	types := make([]assist.ObjectType, 0, len(names))
	for _, n := range names {
		t, err := ParseObjectType(n)
		if err != nil {
			return 0, err
		}
		types = append(types, t)
	}
	return assist.ObjectTypes(types...), nil
}

func ParseChannel(name string) (assist.Channel, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "visibility":
		return assist.ChannelVisibility, nil
	case "camera":
		return assist.ChannelCamera, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownChannel, name)
}

func ParseChannels(names []string) (assist.ChannelMask, error) {
	channels := make([]assist.Channel, 0, len(names))
	for _, n := range names {
		c, err := ParseChannel(n)
		if err != nil {
			return 0, err
		}
		channels = append(channels, c)
	}
	return assist.Channels(channels...), nil
}

func ParseTeamSource(name string) (assist.TeamSource, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "native":
		return assist.TeamFromNative, nil
	case "component":
		return assist.TeamFromComponent, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownTeamSource, name)
}
