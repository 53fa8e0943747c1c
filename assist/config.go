package assist

import "github.com/milk9111/aimassist/common"

const (
	DefaultFrictionStrength  = 0.75
	DefaultMagnetismStrength = 0.5

	// maxRawFriction keeps the exposed sensitivity multiplier at or above 0.1.
	maxRawFriction = 0.9
)

// Zone tunes one of the two assist signals.
type Zone struct {
	Enabled bool
	// Radius around the screen origin in pixels.
	Radius float64
	// Curve reshapes the proximity scale. Nil uses the fixed default.
	Curve Curve
}

// Config is the designer tuning of an Assistant.
type Config struct {
	Enabled     bool
	GamepadOnly bool
	Debug       bool

	OverlapRange      float64
	OverlapHalfExtent common.Vec3
	ObjectTypes       ObjectTypeMask
	VisibilityChannel Channel
	OffsetFromCenter  common.Vec2

	Teams TeamFilter

	Friction  Zone
	Magnetism Zone
}

// DefaultConfig returns the stock tuning. The assistant starts disabled.
func DefaultConfig() Config {
	return Config{
		Enabled:           false,
		GamepadOnly:       true,
		OverlapRange:      2500,
		OverlapHalfExtent: common.V3(500, 1000, 1000),
		ObjectTypes:       ObjectTypes(ObjectWorldDynamic, ObjectPawn),
		VisibilityChannel: ChannelVisibility,
		Teams: TeamFilter{
			Enabled:  true,
			Source:   TeamFromNative,
			Accepted: []TeamID{NoTeam},
		},
		Friction:  Zone{Enabled: true, Radius: 200},
		Magnetism: Zone{Enabled: true, Radius: 75},
	}
}

// Zones returns the radii of both signals.
func (c Config) Zones() ZoneConfig {
	return ZoneConfig{FrictionRadius: c.Friction.Radius, MagnetismRadius: c.Magnetism.Radius}
}
