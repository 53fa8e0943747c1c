package ecs

import (
	"fmt"

	"github.com/milk9111/aimassist/ecs/component"
)

// System updates a world each frame.
type System interface {
	Update(w *World)
}

// World owns entities and their components.
type World struct {
	entities entityStore
	stores   map[component.ComponentID]*componentStore
}

// NewWorld creates an empty ECS world.
func NewWorld() *World {
	return &World{stores: make(map[component.ComponentID]*componentStore)}
}

func (w *World) store(id component.ComponentID, create bool) *componentStore {
	if w.stores == nil {
		w.stores = make(map[component.ComponentID]*componentStore)
	}
	s, ok := w.stores[id]
	if !ok && create {
		s = &componentStore{}
		w.stores[id] = s
	}
	return s
}

// CreateEntity allocates a new entity.
func CreateEntity(w *World) Entity {
	if w == nil {
		return 0
	}
	return w.entities.create()
}

// DestroyEntity kills an entity and drops its components. It reports false
// when the entity was not alive.
func DestroyEntity(w *World, e Entity) bool {
	if w == nil || !w.entities.destroy(e) {
		return false
	}
	for _, s := range w.stores {
		s.removeID(e.id())
	}
	return true
}

// IsAlive reports whether an entity handle is valid.
func IsAlive(w *World, e Entity) bool {
	return w != nil && w.entities.isAlive(e)
}

// Entities returns every live entity.
func Entities(w *World) []Entity {
	if w == nil {
		return nil
	}
	out := make([]Entity, 0, w.entities.count)
	for i, alive := range w.entities.alive {
		if alive {
			out = append(out, makeEntity(entityID(i+1), w.entities.gen[i]))
		}
	}
	return out
}

// Add stores value as the kind's component on e, replacing any existing one.
func Add[T any](w *World, e Entity, kind component.ComponentKind[T], value *T) error {
	if !kind.Valid() {
		return component.ErrInvalidComponentKind
	}
	if w == nil || !w.entities.isAlive(e) {
		return fmt.Errorf("add %s to %v: %w", kind, e, component.ErrEntityNotAlive)
	}
	if value == nil {
		return fmt.Errorf("add %s: %w", kind, component.ErrNilComponent)
	}
	w.store(kind.ID(), true).set(e, value)
	return nil
}

// Get returns the kind's component on e.
func Get[T any](w *World, e Entity, kind component.ComponentKind[T]) (*T, bool) {
	if w == nil || !w.entities.isAlive(e) {
		return nil, false
	}
	raw, ok := w.store(kind.ID(), false).get(e)
	if !ok {
		return nil, false
	}
	v, ok := raw.(*T)
	return v, ok
}

func Has[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	_, ok := Get(w, e, kind)
	return ok
}

func Remove[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	if w == nil || !w.entities.isAlive(e) {
		return false
	}
	return w.store(kind.ID(), false).remove(e)
}
