package component

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/aimassist/assist"
	"github.com/milk9111/aimassist/common"
)

// Collider is an axis-aligned box surface. Its footprint is mirrored into the
// physics system's Chipmunk space for broadphase queries.
type Collider struct {
	HalfExtent common.Vec3
	Offset     common.Vec3
	ObjectType assist.ObjectType
	// Blocks lists the trace channels this surface stops.
	Blocks assist.ChannelMask
	// Owner is the actor entity this surface belongs to (ecs.Entity is
	// uint64). Zero means the collider entity itself.
	Owner uint64

	Shape *cp.Shape
}

var ColliderComponent = NewComponent[Collider]()
