package assist

import "github.com/milk9111/aimassist/common"

// TargetProvider is the capability of an actor that can report aim-assist
// targets. Actors without it are never considered.
type TargetProvider interface {
	AimAssistTargets() []AssistTarget
}

// TeamAgent is the native team capability of an actor.
type TeamAgent interface {
	Team() TeamID
}

// TeamIdentity is the companion affiliation component. Use NewTeamIdentity
// for the NoTeam default.
type TeamIdentity struct {
	team TeamID
}

func NewTeamIdentity() *TeamIdentity {
	return &TeamIdentity{team: NoTeam}
}

func (t *TeamIdentity) SetTeam(team TeamID) {
	if t == nil {
		return
	}
	t.team = team
}

func (t *TeamIdentity) Team() TeamID {
	if t == nil {
		return NoTeam
	}
	return t.team
}

// Directory resolves actor handles to their capabilities.
type Directory interface {
	TargetProvider(actor ActorID) (TargetProvider, bool)
	TeamAgent(actor ActorID) (TeamAgent, bool)
	TeamIdentity(actor ActorID) (*TeamIdentity, bool)
}

// Hit is one surface returned by a spatial query.
type Hit struct {
	Actor    ActorID
	Surface  SurfaceID
	Location common.Vec3
}

// SweepQuery describes a box swept along a ray.
type SweepQuery struct {
	Origin      common.Vec3
	Direction   common.Vec3
	Range       float64
	HalfExtent  common.Vec3
	Rotation    common.Rotator
	ObjectTypes ObjectTypeMask
	Ignore      ActorID
}

// End returns the end point of the sweep.
func (q SweepQuery) End() common.Vec3 {
	return q.Origin.Add(q.Direction.Scale(q.Range))
}

// TraceQuery describes a line trace against a channel.
type TraceQuery struct {
	From    common.Vec3
	To      common.Vec3
	Channel Channel
	Ignore  ActorID
}

// Scene is the read-only view of the world's collision state.
type Scene interface {
	// Sweep returns every surface overlapping the swept box. Order and
	// duplicates are unspecified.
	Sweep(q SweepQuery) []Hit
	// TraceLine returns the first blocking hit along the segment.
	TraceLine(q TraceQuery) (Hit, bool)
	// SocketLocation resolves the current world position of a socket.
	SocketLocation(surface SurfaceID, socket string) (common.Vec3, bool)
}

// Viewport projects world points to screen pixels.
type Viewport interface {
	WorldToScreen(p common.Vec3) (common.Vec2, bool)
	ViewportSize() (width, height int)
}

type Camera interface {
	CameraLocation() common.Vec3
	CameraRotation() common.Rotator
}

// Controller is the player whose aim is assisted.
type Controller interface {
	IsLocal() bool
	Pawn() ActorID
	ControlRotation() common.Rotator
	SetControlRotation(r common.Rotator)
}

// Curve maps a proximity scale in [0,1] to a strength in [0,1].
type Curve interface {
	Evaluate(scale float64) float64
}

// CurveFunc adapts a function to Curve.
type CurveFunc func(scale float64) float64

func (f CurveFunc) Evaluate(scale float64) float64 {
	return f(scale)
}
