package assist

import (
	"log"

	"github.com/milk9111/aimassist/common"
)

// Frame carries the per-tick collaborators. A nil member skips the tick.
type Frame struct {
	DeltaTime  float64
	Controller Controller
	Camera     Camera
	Viewport   Viewport
}

// tickBuffers are reused across ticks so a steady-state tick does not
// allocate target lists.
type tickBuffers struct {
	resolved []ResolvedTarget
	sockets  []string
}

func (b *tickBuffers) reset() {
	b.resolved = b.resolved[:0]
	b.sockets = b.sockets[:0]
}

// Assistant runs the aim-assist pipeline for one local player.
type Assistant struct {
	cfg   Config
	scene Scene
	dir   Directory

	enabled    bool
	lastDevice DeviceClass

	best      BestTargetData
	friction  float64
	magnetism float64

	buf tickBuffers
}

func New(cfg Config, scene Scene, dir Directory) *Assistant {
	return &Assistant{
		cfg:     cfg,
		scene:   scene,
		dir:     dir,
		enabled: cfg.Enabled,
	}
}

// Enable turns the assistant on or off and clears the last result.
func (a *Assistant) Enable(enabled bool) {
	if a == nil {
		return
	}
	a.enabled = enabled
	a.clearResult()
}

func (a *Assistant) Enabled() bool {
	return a != nil && a.enabled
}

func (a *Assistant) Config() Config {
	if a == nil {
		return Config{}
	}
	return a.cfg
}

// SetConfig replaces the tuning. The enabled state is kept and the last
// result is cleared.
func (a *Assistant) SetConfig(cfg Config) {
	if a == nil {
		return
	}
	a.cfg = cfg
	a.clearResult()
}

// OnInputDeviceChanged records the class of the last used input device.
func (a *Assistant) OnInputDeviceChanged(device DeviceClass) {
	if a == nil {
		return
	}
	a.lastDevice = device
}

func (a *Assistant) UsingGamepad() bool {
	return a != nil && a.lastDevice == DeviceGamepad
}

// BestTarget returns this tick's selection.
func (a *Assistant) BestTarget() BestTargetData {
	if a == nil {
		return BestTargetData{}
	}
	return a.best
}

// AimFriction returns the look sensitivity multiplier, in [0.1, 1].
func (a *Assistant) AimFriction() float64 {
	if a == nil {
		return 1
	}
	return frictionMultiplier(a.friction)
}

// RawFriction returns the friction strength before it is turned into a
// sensitivity multiplier.
func (a *Assistant) RawFriction() float64 {
	if a == nil {
		return 0
	}
	return a.friction
}

func (a *Assistant) AimMagnetism() float64 {
	if a == nil {
		return 0
	}
	return a.magnetism
}

// ResolvedTargets returns a copy of the targets that survived filtering in
// the last tick.
func (a *Assistant) ResolvedTargets() []ResolvedTarget {
	if a == nil || len(a.buf.resolved) == 0 {
		return nil
	}
	out := make([]ResolvedTarget, len(a.buf.resolved))
	for i, t := range a.buf.resolved {
		out[i] = ResolvedTarget{Surface: t.Surface, Sockets: append([]string(nil), t.Sockets...)}
	}
	return out
}

func (a *Assistant) clearResult() {
	a.best = BestTargetData{}
	a.friction = 0
	a.magnetism = 0
	a.buf.reset()
}

// Tick runs one full pipeline pass.
func (a *Assistant) Tick(f Frame) {
	if a == nil || !a.enabled {
		return
	}
	if f.Controller == nil || f.Camera == nil || f.Viewport == nil || a.scene == nil {
		return
	}
	if !f.Controller.IsLocal() {
		return
	}

	a.clearResult()

	if a.cfg.GamepadOnly && !a.UsingGamepad() {
		return
	}

	camLoc := f.Camera.CameraLocation()
	camRot := f.Camera.CameraRotation()
	camForward := camRot.Vector()
	origin := screenOrigin(f.Viewport, a.cfg.OffsetFromCenter)
	pawn := f.Controller.Pawn()

	a.resolveTargets(f.Viewport, camLoc, camRot, origin, pawn)
	if len(a.buf.resolved) == 0 {
		return
	}

	a.best = selectBest(a.scene, a.buf.resolved, camLoc, camForward)
	if !a.best.Valid() {
		return
	}
	if a.cfg.Debug {
		log.Printf("AimAssist: best target surface=%d socket=%s score=%.3f", a.best.Surface, a.best.Socket, a.best.Score)
	}

	distSq, ok := screenDistSq(f.Viewport, a.best.Location, origin)
	if !ok {
		return
	}

	if a.cfg.Friction.Enabled {
		a.friction = zoneStrength(distSq, a.cfg.Friction.Radius, a.cfg.Friction.Curve, DefaultFrictionStrength)
	}
	if a.cfg.Magnetism.Enabled {
		a.magnetism = zoneStrength(distSq, a.cfg.Magnetism.Radius, a.cfg.Magnetism.Curve, DefaultMagnetismStrength)
		dir := a.best.Location.Sub(camLoc).SafeNormal()
		applyMagnetism(f.Controller, f.DeltaTime, a.magnetism, a.cfg.Magnetism.Enabled, dir)
	}
}

// resolveTargets runs the query, filter, projection and visibility stages and
// leaves the survivors in a.buf.resolved.
func (a *Assistant) resolveTargets(vp Viewport, camLoc common.Vec3, camRot common.Rotator, origin common.Vec2, pawn ActorID) {
	largest := a.cfg.Zones().Largest()

	hits := sweepTargets(a.scene, camLoc, camRot, &a.cfg, pawn)
	for _, hit := range hits {
		provider, ok := admits(a.dir, hit.Actor, a.cfg.Teams)
		if !ok {
			continue
		}

		for _, target := range provider.AimAssistTargets() {
			if len(target.Sockets) == 0 {
				continue
			}

			start := len(a.buf.sockets)
			for _, socket := range target.Sockets {
				loc, ok := a.scene.SocketLocation(target.Surface, socket)
				if !ok {
					continue
				}
				if !withinScreenCircle(vp, loc, origin, largest) {
					continue
				}
				if !visibleFrom(a.scene, camLoc, loc, target.Surface, a.cfg.VisibilityChannel, pawn) {
					continue
				}
				a.buf.sockets = append(a.buf.sockets, socket)
			}
			end := len(a.buf.sockets)

			a.buf.resolved = append(a.buf.resolved, ResolvedTarget{
				Surface: target.Surface,
				Sockets: a.buf.sockets[start:end:end],
			})
		}
	}
}
