package system

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/aimassist/assist"
	"github.com/milk9111/aimassist/ecs"
	"github.com/milk9111/aimassist/ecs/component"
)

const stickDeadzone = 0.2

// InputState is one frame of polled look input. Device is the class of
// device that produced input this frame, or DeviceUnknown when idle.
type InputState struct {
	LookX, LookY     float64
	MouseDX, MouseDY float64
	Device           assist.DeviceClass
}

type InputSystem struct {
	poll   func() InputState
	device assist.DeviceClass

	cursorX, cursorY int
	cursorReady      bool
	keys             []ebiten.Key
}

// NewInputSystem polls ebiten each frame.
func NewInputSystem() *InputSystem {
	i := &InputSystem{}
	i.poll = i.pollEbiten
	return i
}

// NewInputSystemWithPoll uses poll instead of ebiten.
func NewInputSystemWithPoll(poll func() InputState) *InputSystem {
	return &InputSystem{poll: poll}
}

func (i *InputSystem) Update(w *ecs.World) {
	if w == nil || i.poll == nil {
		return
	}

	state := i.poll()
	changed := false
	if state.Device != assist.DeviceUnknown && state.Device != i.device {
		i.device = state.Device
		changed = true
	}

	ecs.ForEach(w, component.InputComponent.Kind(), func(e ecs.Entity, input *component.Input) {
		input.LookX = state.LookX
		input.LookY = state.LookY
		input.MouseDX = state.MouseDX
		input.MouseDY = state.MouseDY
		input.DeviceChanged = changed || input.Device != i.device
		input.Device = i.device
	})
}

func (i *InputSystem) pollEbiten() InputState {
	var state InputState

	cx, cy := ebiten.CursorPosition()
	if i.cursorReady && (cx != i.cursorX || cy != i.cursorY) {
		state.MouseDX = float64(cx - i.cursorX)
		state.MouseDY = float64(cy - i.cursorY)
		state.Device = assist.DeviceKeyboardMouse
	}
	i.cursorX, i.cursorY = cx, cy
	i.cursorReady = true

	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		state.LookX -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		state.LookX += 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		state.LookY -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		state.LookY += 1
	}
	i.keys = inpututil.AppendPressedKeys(i.keys[:0])
	if len(i.keys) > 0 || ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		state.Device = assist.DeviceKeyboardMouse
	}

	if gamepads := ebiten.GamepadIDs(); len(gamepads) > 0 {
		id := gamepads[0]
		rx := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisRightStickHorizontal)
		ry := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisRightStickVertical)
		if math.Hypot(rx, ry) > stickDeadzone {
			state.LookX = rx
			state.LookY = ry
			state.Device = assist.DeviceGamepad
		}
		lx := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		ly := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical)
		if math.Hypot(lx, ly) > stickDeadzone {
			state.Device = assist.DeviceGamepad
		}
		for b := ebiten.StandardGamepadButton(0); b <= ebiten.StandardGamepadButtonMax; b++ {
			if ebiten.IsStandardGamepadButtonPressed(id, b) {
				state.Device = assist.DeviceGamepad
				break
			}
		}
	}

	return state
}
