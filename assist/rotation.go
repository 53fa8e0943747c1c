package assist

import (
	"math"

	"github.com/milk9111/aimassist/common"
)

// applyMagnetism pulls the controller's aim toward dir. The interpolation
// speed is the magnetism strength itself.
func applyMagnetism(ctrl Controller, dt, strength float64, enabled bool, dir common.Vec3) {
	if !enabled || strength == 0 || math.IsNaN(strength) || ctrl == nil {
		return
	}
	current := ctrl.ControlRotation()
	target := dir.Rotation()
	ctrl.SetControlRotation(common.RInterpTo(current, target, dt, strength))
}
