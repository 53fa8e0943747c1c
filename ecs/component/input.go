package component

import "github.com/milk9111/aimassist/assist"

// Input stores per-frame look input for an entity.
type Input struct {
	// Stick look in [-1, 1], applied per second.
	LookX float64
	LookY float64
	// Mouse look in pixels, applied once.
	MouseDX float64
	MouseDY float64

	Device        assist.DeviceClass
	DeviceChanged bool
}

var InputComponent = NewComponent[Input]()
