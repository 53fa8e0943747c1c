package system

import (
	"github.com/milk9111/aimassist/assist"
	"github.com/milk9111/aimassist/common"
	"github.com/milk9111/aimassist/ecs"
	"github.com/milk9111/aimassist/ecs/component"
)

// AimAssistSystem ticks the assistant of every pawn that carries one.
type AimAssistSystem struct {
	scene assist.Scene
	dt    float64
}

func NewAimAssistSystem(scene assist.Scene, dt float64) *AimAssistSystem {
	return &AimAssistSystem{scene: scene, dt: dt}
}

func (as *AimAssistSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	dir := worldDirectory{w: w}
	ecs.ForEach2(w, component.AimAssistComponent.Kind(), component.ControllerComponent.Kind(), func(e ecs.Entity, aa *component.AimAssist, ctrl *component.Controller) {
		if aa.Assistant == nil {
			aa.Assistant = assist.New(aa.Config, as.scene, dir)
		}

		if input, ok := ecs.Get(w, e, component.InputComponent.Kind()); ok {
			aa.SyncDevice(input.Device)
		}

		frame := assist.Frame{
			DeltaTime:  as.dt,
			Controller: &pawnController{pawn: e, ctrl: ctrl},
		}
		if cam, ok := ecs.Get(w, e, component.CameraComponent.Kind()); ok {
			view := NewCameraView(cam)
			frame.Camera = view
			frame.Viewport = view
		}
		aa.Assistant.Tick(frame)
	})
}

type pawnController struct {
	pawn ecs.Entity
	ctrl *component.Controller
}

func (c *pawnController) IsLocal() bool                   { return c.ctrl.Local }
func (c *pawnController) Pawn() assist.ActorID            { return c.pawn.Actor() }
func (c *pawnController) ControlRotation() common.Rotator { return c.ctrl.ControlRotation }

func (c *pawnController) SetControlRotation(r common.Rotator) {
	c.ctrl.ControlRotation = r
}

// worldDirectory answers capability lookups from components.
type worldDirectory struct {
	w *ecs.World
}

func (d worldDirectory) TargetProvider(actor assist.ActorID) (assist.TargetProvider, bool) {
	e := ecs.ActorEntity(actor)
	targets, ok := ecs.Get(d.w, e, component.AimTargetsComponent.Kind())
	if !ok {
		return nil, false
	}
	return targetProvider{self: e, targets: targets}, true
}

func (d worldDirectory) TeamAgent(actor assist.ActorID) (assist.TeamAgent, bool) {
	team, ok := ecs.Get(d.w, ecs.ActorEntity(actor), component.NativeTeamComponent.Kind())
	if !ok {
		return nil, false
	}
	return team, true
}

func (d worldDirectory) TeamIdentity(actor assist.ActorID) (*assist.TeamIdentity, bool) {
	id, ok := ecs.Get(d.w, ecs.ActorEntity(actor), component.TeamIdentityComponent.Kind())
	if !ok || id.Identity == nil {
		return nil, false
	}
	return id.Identity, true
}

type targetProvider struct {
	self    ecs.Entity
	targets *component.AimTargets
}

func (p targetProvider) AimAssistTargets() []assist.AssistTarget {
	out := make([]assist.AssistTarget, 0, len(p.targets.Targets))
	for _, ref := range p.targets.Targets {
		surface := ref.Surface
		if surface == 0 {
			surface = uint64(p.self)
		}
		out = append(out, assist.AssistTarget{Surface: assist.SurfaceID(surface), Sockets: ref.Sockets})
	}
	return out
}
