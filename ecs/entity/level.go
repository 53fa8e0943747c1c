package entity

import (
	"fmt"

	"github.com/milk9111/aimassist/assist"
	"github.com/milk9111/aimassist/ecs"
	"github.com/milk9111/aimassist/ecs/component"
	"github.com/milk9111/aimassist/levels"
)

// LoadLevelToWorld builds every placement of a level. References between
// entities (owner, targets) are resolved once all of them exist. The returned
// map holds the named entities.
func LoadLevelToWorld(w *ecs.World, lvl *levels.Level) (map[string]ecs.Entity, error) {
	if w == nil || lvl == nil {
		return nil, fmt.Errorf("load level: world or level is nil")
	}

	named := make(map[string]ecs.Entity, len(lvl.Entities))
	built := make([]ecs.Entity, len(lvl.Entities))
	for i, placed := range lvl.Entities {
		e, err := BuildEntity(w, placed.Prefab)
		if err != nil {
			return nil, fmt.Errorf("load level %q: %w", lvl.Name, err)
		}
		built[i] = e

		if err := SetEntityTransform(w, e, placed.Position.X, placed.Position.Y, placed.Position.Z, placed.Yaw); err != nil {
			return nil, fmt.Errorf("load level %q: place %q: %w", lvl.Name, placed.Prefab, err)
		}
		if placed.Name != "" {
			if _, dup := named[placed.Name]; dup {
				return nil, fmt.Errorf("load level %q: duplicate entity name %q", lvl.Name, placed.Name)
			}
			named[placed.Name] = e
			if err := ecs.Add(w, e, component.NameComponent.Kind(), &component.Name{Value: placed.Name}); err != nil {
				return nil, fmt.Errorf("load level %q: name %q: %w", lvl.Name, placed.Name, err)
			}
		}
		if placed.Team != nil {
			if err := overrideTeam(w, e, *placed.Team); err != nil {
				return nil, fmt.Errorf("load level %q: %q: %w", lvl.Name, placed.Name, err)
			}
		}
		if placed.Local != nil {
			if ctrl, ok := ecs.Get(w, e, component.ControllerComponent.Kind()); ok {
				ctrl.Local = *placed.Local
			}
		}
	}

	for i, placed := range lvl.Entities {
		if err := resolveRefs(w, built[i], placed, named); err != nil {
			return nil, fmt.Errorf("load level %q: %q: %w", lvl.Name, placed.Name, err)
		}
	}
	return named, nil
}

// LoadLevel reads a level file and builds it.
func LoadLevel(w *ecs.World, name string) (map[string]ecs.Entity, error) {
	lvl, err := levels.LoadLevel(name)
	if err != nil {
		return nil, fmt.Errorf("load level %s: %w", name, err)
	}
	return LoadLevelToWorld(w, lvl)
}

func overrideTeam(w *ecs.World, e ecs.Entity, v int) error {
	team, err := teamID(&v)
	if err != nil {
		return err
	}
	set := false
	if native, ok := ecs.Get(w, e, component.NativeTeamComponent.Kind()); ok {
		native.ID = team
		set = true
	}
	if id, ok := ecs.Get(w, e, component.TeamIdentityComponent.Kind()); ok && id.Identity != nil {
		id.Identity.SetTeam(team)
		set = true
	}
	if !set {
		return fmt.Errorf("team override on an entity without a team")
	}
	return nil
}

func resolveRefs(w *ecs.World, e ecs.Entity, placed levels.Entity, named map[string]ecs.Entity) error {
	if placed.Owner != "" {
		owner, ok := named[placed.Owner]
		if !ok {
			return fmt.Errorf("unknown owner %q", placed.Owner)
		}
		col, ok := ecs.Get(w, e, component.ColliderComponent.Kind())
		if !ok {
			return fmt.Errorf("owner set on an entity without a collider")
		}
		col.Owner = uint64(owner)
	}

	if len(placed.Targets) == 0 {
		return nil
	}
	targets := &component.AimTargets{}
	for _, ref := range placed.Targets {
		var surface uint64
		if ref.Surface != "" {
			s, ok := named[ref.Surface]
			if !ok {
				return fmt.Errorf("unknown target surface %q", ref.Surface)
			}
			surface = uint64(s)
		}
		targets.Targets = append(targets.Targets, component.AimTargetRef{Surface: surface, Sockets: ref.Sockets})
	}
	return ecs.Add(w, e, component.AimTargetsComponent.Kind(), targets)
}

// NewPlayerAt builds the player prefab at a position.
func NewPlayerAt(w *ecs.World, x, y, z, yaw float64) (ecs.Entity, error) {
	e, err := BuildEntity(w, "player.yaml")
	if err != nil {
		return 0, err
	}
	if err := SetEntityTransform(w, e, x, y, z, yaw); err != nil {
		return 0, fmt.Errorf("player: override transform: %w", err)
	}
	return e, nil
}

// PlayerAssistant returns the assistant of the first player, once the aim
// assist system has created it.
func PlayerAssistant(w *ecs.World) (*assist.Assistant, bool) {
	e, ok := ecs.First(w, component.PlayerTagComponent.Kind())
	if !ok {
		return nil, false
	}
	aa, ok := ecs.Get(w, e, component.AimAssistComponent.Kind())
	if !ok || aa.Assistant == nil {
		return nil, false
	}
	return aa.Assistant, true
}
