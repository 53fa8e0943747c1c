package assist

import "github.com/milk9111/aimassist/common"

type fakeSocket struct {
	surface SurfaceID
	name    string
}

// fakeScene is a hand-rolled Scene. Traces hit the target surface unless an
// occluder or a miss is registered for the destination socket.
type fakeScene struct {
	hits      []Hit
	sockets   map[fakeSocket]common.Vec3
	occluders map[common.Vec3]SurfaceID
	misses    map[common.Vec3]bool
	owners    map[common.Vec3]SurfaceID

	sweeps int
	traces int
}

func newFakeScene() *fakeScene {
	return &fakeScene{
		sockets:   map[fakeSocket]common.Vec3{},
		occluders: map[common.Vec3]SurfaceID{},
		misses:    map[common.Vec3]bool{},
		owners:    map[common.Vec3]SurfaceID{},
	}
}

func (s *fakeScene) addSocket(surface SurfaceID, name string, loc common.Vec3) {
	s.sockets[fakeSocket{surface, name}] = loc
	s.owners[loc] = surface
}

func (s *fakeScene) Sweep(q SweepQuery) []Hit {
	s.sweeps++
	out := make([]Hit, 0, len(s.hits))
	for _, h := range s.hits {
		if h.Actor == q.Ignore {
			continue
		}
		out = append(out, h)
	}
	return out
}

func (s *fakeScene) TraceLine(q TraceQuery) (Hit, bool) {
	s.traces++
	if s.misses[q.To] {
		return Hit{}, false
	}
	if occluder, ok := s.occluders[q.To]; ok {
		return Hit{Surface: occluder, Location: q.To}, true
	}
	return Hit{Surface: s.owners[q.To], Location: q.To}, true
}

func (s *fakeScene) SocketLocation(surface SurfaceID, socket string) (common.Vec3, bool) {
	loc, ok := s.sockets[fakeSocket{surface, socket}]
	return loc, ok
}

type fakeProvider struct {
	targets []AssistTarget
}

func (p *fakeProvider) AimAssistTargets() []AssistTarget {
	return p.targets
}

type fakeTeam TeamID

func (t fakeTeam) Team() TeamID { return TeamID(t) }

type fakeDirectory struct {
	providers  map[ActorID]TargetProvider
	agents     map[ActorID]TeamAgent
	identities map[ActorID]*TeamIdentity
}

func newFakeDirectory() *fakeDirectory {
	return &fakeDirectory{
		providers:  map[ActorID]TargetProvider{},
		agents:     map[ActorID]TeamAgent{},
		identities: map[ActorID]*TeamIdentity{},
	}
}

func (d *fakeDirectory) TargetProvider(actor ActorID) (TargetProvider, bool) {
	p, ok := d.providers[actor]
	return p, ok
}

func (d *fakeDirectory) TeamAgent(actor ActorID) (TeamAgent, bool) {
	a, ok := d.agents[actor]
	return a, ok
}

func (d *fakeDirectory) TeamIdentity(actor ActorID) (*TeamIdentity, bool) {
	id, ok := d.identities[actor]
	return id, ok
}

// fakeView is a pinhole camera at loc looking along +X with a 90 degree
// horizontal field of view on a 1000x500 viewport.
type fakeView struct {
	loc common.Vec3
	rot common.Rotator
}

func (v *fakeView) CameraLocation() common.Vec3    { return v.loc }
func (v *fakeView) CameraRotation() common.Rotator { return v.rot }
func (v *fakeView) ViewportSize() (int, int)       { return 1000, 500 }

func (v *fakeView) WorldToScreen(p common.Vec3) (common.Vec2, bool) {
	d := p.Sub(v.loc)
	depth := d.Dot(v.rot.Vector())
	if depth <= 1 {
		return common.Vec2{}, false
	}
	focal := 500.0
	x := d.Dot(v.rot.Right())
	y := d.Dot(v.rot.Up())
	return common.Vec2{X: 500 + x*focal/depth, Y: 250 - y*focal/depth}, true
}

type fakeController struct {
	local bool
	pawn  ActorID
	rot   common.Rotator
	sets  int
}

func (c *fakeController) IsLocal() bool                   { return c.local }
func (c *fakeController) Pawn() ActorID                   { return c.pawn }
func (c *fakeController) ControlRotation() common.Rotator { return c.rot }
func (c *fakeController) SetControlRotation(r common.Rotator) {
	c.rot = r
	c.sets++
}
