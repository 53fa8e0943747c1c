package assist

import "github.com/milk9111/aimassist/common"

// ActorID is an opaque handle to an entity in the host world. Zero is none.
type ActorID uint64

// SurfaceID is an opaque handle to a collidable surface. Zero is none.
type SurfaceID uint64

// AssistTarget is a surface and the sockets on it usable as aim points.
type AssistTarget struct {
	Surface SurfaceID
	Sockets []string
}

// ResolvedTarget holds the sockets of a surface that survived the screen
// circle and visibility tests this tick.
type ResolvedTarget struct {
	Surface SurfaceID
	Sockets []string
}

// BestTargetData is the selection result of one tick.
type BestTargetData struct {
	Surface  SurfaceID
	Socket   string
	Location common.Vec3
	Score    float64
}

// Valid reports whether a socket was selected.
func (b BestTargetData) Valid() bool {
	return b.Surface != 0
}

// ZoneConfig holds the assist radii in screen pixels.
type ZoneConfig struct {
	FrictionRadius  float64
	MagnetismRadius float64
}

// Largest returns the larger of the two radii.
func (z ZoneConfig) Largest() float64 {
	if z.FrictionRadius > z.MagnetismRadius {
		return z.FrictionRadius
	}
	return z.MagnetismRadius
}

// TeamID identifies a team. NoTeam marks an unassigned entity.
type TeamID uint8

const NoTeam TeamID = 255

type TeamSource int

const (
	// TeamFromNative reads the team from the actor's TeamAgent capability.
	TeamFromNative TeamSource = iota
	// TeamFromComponent reads the team from a companion TeamIdentity.
	TeamFromComponent
)

func (s TeamSource) String() string {
	switch s {
	case TeamFromNative:
		return "native"
	case TeamFromComponent:
		return "component"
	default:
		return "unknown"
	}
}

// TeamFilter restricts targets to a set of accepted teams.
type TeamFilter struct {
	Enabled  bool
	Source   TeamSource
	Accepted []TeamID
}

// Accepts reports whether team is in the accepted set.
func (f TeamFilter) Accepts(team TeamID) bool {
	for _, t := range f.Accepted {
		if t == team {
			return true
		}
	}
	return false
}

// ObjectType is the collision object type of a surface.
type ObjectType uint8

const (
	ObjectWorldStatic ObjectType = iota
	ObjectWorldDynamic
	ObjectPawn
	ObjectPhysicsBody
	ObjectVehicle
	ObjectDestructible
)

// ObjectTypeMask is a set of object types.
type ObjectTypeMask uint32

func ObjectTypes(types ...ObjectType) ObjectTypeMask {
	var m ObjectTypeMask
	for _, t := range types {
		m |= 1 << t
	}
	return m
}

func (m ObjectTypeMask) Has(t ObjectType) bool {
	return m&(1<<t) != 0
}

// Channel is a trace channel surfaces can block.
type Channel uint8

const (
	ChannelVisibility Channel = iota
	ChannelCamera
)

// ChannelMask is a set of trace channels.
type ChannelMask uint32

func Channels(channels ...Channel) ChannelMask {
	var m ChannelMask
	for _, c := range channels {
		m |= 1 << c
	}
	return m
}

func (m ChannelMask) Has(c Channel) bool {
	return m&(1<<c) != 0
}

// DeviceClass is the class of the most recently used input device.
type DeviceClass int

const (
	DeviceUnknown DeviceClass = iota
	DeviceKeyboardMouse
	DeviceGamepad
)

func (d DeviceClass) String() string {
	switch d {
	case DeviceKeyboardMouse:
		return "keyboard_mouse"
	case DeviceGamepad:
		return "gamepad"
	default:
		return "unknown"
	}
}
