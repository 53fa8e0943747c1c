package system

import (
	"github.com/milk9111/aimassist/common"
	"github.com/milk9111/aimassist/ecs"
	"github.com/milk9111/aimassist/ecs/component"
)

const defaultMaxPitch = 89.0

// LookSystem turns look input into control rotation. Aim friction from the
// pawn's assistant scales the input.
type LookSystem struct {
	dt float64
}

func NewLookSystem(dt float64) *LookSystem {
	return &LookSystem{dt: dt}
}

func (ls *LookSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach3(w, component.InputComponent.Kind(), component.ControllerComponent.Kind(), component.PlayerComponent.Kind(), func(e ecs.Entity, input *component.Input, ctrl *component.Controller, player *component.Player) {
		if !ctrl.Local {
			return
		}

		scale := 1.0
		if aa, ok := ecs.Get(w, e, component.AimAssistComponent.Kind()); ok && aa.Assistant != nil {
			scale = aa.Assistant.AimFriction()
		}

		yaw := (input.LookX*player.LookSpeed*ls.dt + input.MouseDX*player.MouseSensitivity) * scale
		pitch := -(input.LookY*player.LookSpeed*ls.dt + input.MouseDY*player.MouseSensitivity) * scale
		if yaw == 0 && pitch == 0 {
			return
		}

		maxPitch := player.MaxPitch
		if maxPitch <= 0 {
			maxPitch = defaultMaxPitch
		}

		rot := ctrl.ControlRotation
		rot.Yaw = common.NormalizeAxis(rot.Yaw + yaw)
		rot.Pitch = common.Clamp(rot.Pitch+pitch, -maxPitch, maxPitch)
		ctrl.ControlRotation = rot
	})
}
