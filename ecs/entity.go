package ecs

import (
	"fmt"

	"github.com/milk9111/aimassist/assist"
)

// Entity packs a slot index in the low 32 bits and the slot's generation in
// the high 32 bits. The packed value doubles as the assistant's actor and
// surface handle, so 0 never names a live entity.
type Entity uint64

type entityID uint32
type generation uint32

const entityIDBits = 32

func makeEntity(id entityID, gen generation) Entity {
	return Entity(uint64(gen)<<entityIDBits | uint64(id))
}

func (e Entity) id() entityID {
	return entityID(uint32(e))
}

func (e Entity) generation() generation {
	return generation(uint32(uint64(e) >> entityIDBits))
}

func (e Entity) String() string {
	return fmt.Sprintf("%d.%d", e.id(), e.generation())
}

func (e Entity) Valid() bool {
	return e > 0
}

func (e Entity) Actor() assist.ActorID {
	return assist.ActorID(e)
}

func (e Entity) Surface() assist.SurfaceID {
	return assist.SurfaceID(e)
}

func ActorEntity(a assist.ActorID) Entity {
	return Entity(a)
}

func SurfaceEntity(s assist.SurfaceID) Entity {
	return Entity(s)
}
