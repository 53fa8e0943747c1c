package system

import (
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/milk9111/aimassist/ecs"
	"github.com/milk9111/aimassist/ecs/component"
)

// DebugOverlaySystem prints the player's assist state as text.
type DebugOverlaySystem struct {
	Enabled bool
}

func NewDebugOverlaySystem(enabled bool) *DebugOverlaySystem {
	return &DebugOverlaySystem{Enabled: enabled}
}

func (d *DebugOverlaySystem) Update(*ecs.World) {}

func (d *DebugOverlaySystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if !d.Enabled || w == nil || screen == nil {
		return
	}
	ebitenutil.DebugPrintAt(screen, DebugText(w), 10, 10)
}

// DebugText describes the first player's view and assist result.
func DebugText(w *ecs.World) string {
	player, ok := ecs.First(w, component.PlayerTagComponent.Kind())
	if !ok {
		return "no player"
	}

	var b strings.Builder
	if ctrl, ok := ecs.Get(w, player, component.ControllerComponent.Kind()); ok {
		fmt.Fprintf(&b, "Pitch: %.2f Yaw: %.2f\n", ctrl.ControlRotation.Pitch, ctrl.ControlRotation.Yaw)
	}
	if input, ok := ecs.Get(w, player, component.InputComponent.Kind()); ok {
		fmt.Fprintf(&b, "Device: %s\n", input.Device)
	}

	aa, ok := ecs.Get(w, player, component.AimAssistComponent.Kind())
	if !ok || aa.Assistant == nil {
		b.WriteString("Aim assist: none")
		return b.String()
	}
	a := aa.Assistant
	fmt.Fprintf(&b, "Aim assist: %v (gamepad only: %v)\n", a.Enabled(), a.Config().GamepadOnly)
	best := a.BestTarget()
	if best.Valid() {
		name := ""
		if n, ok := ecs.Get(w, ecs.SurfaceEntity(best.Surface), component.NameComponent.Kind()); ok {
			name = n.Value
		}
		fmt.Fprintf(&b, "Target: %s/%s score %.3f\n", name, best.Socket, best.Score)
	} else {
		b.WriteString("Target: none\n")
	}
	fmt.Fprintf(&b, "Friction: %.2f (raw %.2f) Magnetism: %.2f\n", a.AimFriction(), a.RawFriction(), a.AimMagnetism())
	fmt.Fprintf(&b, "Candidates: %d", len(a.ResolvedTargets()))
	return b.String()
}
