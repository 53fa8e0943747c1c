package component

import "github.com/milk9111/aimassist/assist"

// AimAssist attaches an assistant to a controlled pawn.
type AimAssist struct {
	// Config seeds the assistant when the aim assist system first sees the
	// entity.
	Config    assist.Config
	Assistant *assist.Assistant
	// Tuning is the prefab file the configuration was loaded from.
	Tuning string

	lastDevice assist.DeviceClass
}

// SyncDevice forwards a device change to the assistant once.
func (a *AimAssist) SyncDevice(device assist.DeviceClass) {
	if a == nil || a.Assistant == nil || device == a.lastDevice {
		return
	}
	a.lastDevice = device
	a.Assistant.OnInputDeviceChanged(device)
}

var AimAssistComponent = NewComponent[AimAssist]()
