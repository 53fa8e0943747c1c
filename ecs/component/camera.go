package component

import "github.com/milk9111/aimassist/common"

// Camera is a first-person view attached to a controlled pawn.
type Camera struct {
	// FOV is the horizontal field of view in degrees.
	FOV        float64
	Near       float64
	EyeOffset  common.Vec3
	ViewWidth  int
	ViewHeight int

	// Resolved by the camera system each tick.
	Location common.Vec3
	Rotation common.Rotator
}

var CameraComponent = NewComponent[Camera]()
