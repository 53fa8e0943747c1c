package component

import (
	"github.com/milk9111/aimassist/common"
)

// Controller is the player's control state. The entity holding it is its
// own pawn.
type Controller struct {
	Local           bool
	ControlRotation common.Rotator
}

var ControllerComponent = NewComponent[Controller]()
