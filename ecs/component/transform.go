package component

import "github.com/milk9111/aimassist/common"

// Transform places an entity in the world. Only yaw is applied to socket
// offsets and collider footprints.
type Transform struct {
	Position common.Vec3
	Rotation common.Rotator
}

var TransformComponent = NewComponent[Transform]()
