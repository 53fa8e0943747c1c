package entity

import (
	"fmt"
	"sort"

	"github.com/milk9111/aimassist/assist"
	"github.com/milk9111/aimassist/ecs"
	"github.com/milk9111/aimassist/ecs/component"
	"github.com/milk9111/aimassist/prefabs"
)

type buildContext struct {
	PrefabPath string
	Name       string
}

type componentBuildFn func(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error

var componentRegistry = map[string]componentBuildFn{
	"player_tag":    addPlayerTag,
	"target_tag":    addTargetTag,
	"transform":     addTransform,
	"controller":    addController,
	"player":        addPlayer,
	"input":         addInput,
	"camera":        addCamera,
	"collider":      addCollider,
	"sockets":       addSockets,
	"aim_targets":   addAimTargets,
	"native_team":   addNativeTeam,
	"team_identity": addTeamIdentity,
	"aim_assist":    addAimAssist,
}

var componentBuildOrder = []string{
	"player_tag",
	"target_tag",
	"transform",
	"controller",
	"player",
	"input",
	"camera",
	"collider",
	"sockets",
	"aim_targets",
	"native_team",
	"team_identity",
	"aim_assist",
}

// BuildEntity creates an entity from a prefab file.
func BuildEntity(w *ecs.World, prefabPath string) (ecs.Entity, error) {
	if w == nil {
		return 0, fmt.Errorf("build entity: world is nil")
	}

	spec, err := prefabs.LoadEntityBuildSpec(prefabPath)
	if err != nil {
		return 0, fmt.Errorf("build entity: load %q: %w", prefabPath, err)
	}
	if len(spec.Components) == 0 {
		return 0, fmt.Errorf("build entity: prefab %q does not define components", prefabPath)
	}

	e := ecs.CreateEntity(w)
	ctx := &buildContext{PrefabPath: prefabPath, Name: spec.Name}

	remaining := make(map[string]any, len(spec.Components))
	for k, v := range spec.Components {
		remaining[k] = v
	}

	names := make([]string, 0, len(remaining))
	for _, name := range componentBuildOrder {
		if _, ok := remaining[name]; ok {
			names = append(names, name)
		}
	}
	var unknown []string
	for name := range remaining {
		if _, ok := componentRegistry[name]; !ok {
			unknown = append(unknown, name)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("build entity: %q: no builder for component %q", prefabPath, unknown[0])
	}

	for _, name := range names {
		if err := componentRegistry[name](w, e, remaining[name], ctx); err != nil {
			ecs.DestroyEntity(w, e)
			return 0, fmt.Errorf("build entity: %q: add %q: %w", prefabPath, name, err)
		}
	}

	if spec.Name != "" {
		if err := ecs.Add(w, e, component.NameComponent.Kind(), &component.Name{Value: spec.Name}); err != nil {
			ecs.DestroyEntity(w, e)
			return 0, fmt.Errorf("build entity: %q: add name: %w", prefabPath, err)
		}
	}

	return e, nil
}

// SetEntityTransform moves an entity, keeping its pitch and roll.
func SetEntityTransform(w *ecs.World, e ecs.Entity, x, y, z, yaw float64) error {
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok || t == nil {
		t = &component.Transform{}
	}
	t.Position.X = x
	t.Position.Y = y
	t.Position.Z = z
	t.Rotation.Yaw = yaw
	if ctrl, ok := ecs.Get(w, e, component.ControllerComponent.Kind()); ok {
		ctrl.ControlRotation.Yaw = yaw
	}
	return ecs.Add(w, e, component.TransformComponent.Kind(), t)
}

func addPlayerTag(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{})
}

func addTargetTag(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.TargetTagComponent.Kind(), &component.TargetTag{})
}

func addTransform(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.TransformComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode transform spec: %w", err)
	}
	t := &component.Transform{Position: spec.Position.Vec3()}
	t.Rotation.Pitch = spec.Pitch
	t.Rotation.Yaw = spec.Yaw
	return ecs.Add(w, e, component.TransformComponent.Kind(), t)
}

func addController(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.ControllerComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode controller spec: %w", err)
	}
	ctrl := &component.Controller{Local: spec.Local}
	if t, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
		ctrl.ControlRotation = t.Rotation
	}
	return ecs.Add(w, e, component.ControllerComponent.Kind(), ctrl)
}

func addPlayer(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.PlayerComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode player spec: %w", err)
	}
	return ecs.Add(w, e, component.PlayerComponent.Kind(), &component.Player{
		LookSpeed:        spec.LookSpeed,
		MouseSensitivity: spec.MouseSensitivity,
		MaxPitch:         spec.MaxPitch,
	})
}

func addInput(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.InputComponent.Kind(), &component.Input{})
}

func addCamera(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.CameraComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode camera spec: %w", err)
	}
	if spec.FOV == 0 {
		spec.FOV = 90
	}
	if spec.Near == 0 {
		spec.Near = 1
	}
	return ecs.Add(w, e, component.CameraComponent.Kind(), &component.Camera{
		FOV:        spec.FOV,
		Near:       spec.Near,
		EyeOffset:  spec.EyeOffset.Vec3(),
		ViewWidth:  spec.ViewWidth,
		ViewHeight: spec.ViewHeight,
	})
}

func addCollider(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.ColliderComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode collider spec: %w", err)
	}
	objectType := assist.ObjectWorldStatic
	if spec.ObjectType != "" {
		objectType, err = prefabs.ParseObjectType(spec.ObjectType)
		if err != nil {
			return err
		}
	}
	blocks, err := prefabs.ParseChannels(spec.Blocks)
	if err != nil {
		return err
	}
	return ecs.Add(w, e, component.ColliderComponent.Kind(), &component.Collider{
		HalfExtent: spec.HalfExtent.Vec3(),
		Offset:     spec.Offset.Vec3(),
		ObjectType: objectType,
		Blocks:     blocks,
	})
}

func addSockets(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	specs, err := prefabs.DecodeComponentSpec[[]prefabs.SocketSpec](raw)
	if err != nil {
		return fmt.Errorf("decode sockets spec: %w", err)
	}
	sockets := &component.Sockets{Points: make([]component.Socket, 0, len(specs))}
	seen := make(map[string]bool, len(specs))
	for _, s := range specs {
		if s.Name == "" {
			return fmt.Errorf("socket without a name")
		}
		if seen[s.Name] {
			return fmt.Errorf("duplicate socket %q", s.Name)
		}
		seen[s.Name] = true
		sockets.Points = append(sockets.Points, component.Socket{Name: s.Name, Offset: s.Offset.Vec3()})
	}
	return ecs.Add(w, e, component.SocketsComponent.Kind(), sockets)
}

func addAimTargets(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	specs, err := prefabs.DecodeComponentSpec[[]prefabs.AimTargetComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode aim targets spec: %w", err)
	}
	targets := &component.AimTargets{}
	for _, s := range specs {
		targets.Targets = append(targets.Targets, component.AimTargetRef{Sockets: s.Sockets})
	}
	return ecs.Add(w, e, component.AimTargetsComponent.Kind(), targets)
}

func addNativeTeam(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.TeamComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode native team spec: %w", err)
	}
	team, err := teamID(spec.Team)
	if err != nil {
		return err
	}
	return ecs.Add(w, e, component.NativeTeamComponent.Kind(), &component.NativeTeam{ID: team})
}

func addTeamIdentity(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.TeamComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode team identity spec: %w", err)
	}
	team, err := teamID(spec.Team)
	if err != nil {
		return err
	}
	id := assist.NewTeamIdentity()
	id.SetTeam(team)
	return ecs.Add(w, e, component.TeamIdentityComponent.Kind(), &component.TeamIdentity{Identity: id})
}

func teamID(v *int) (assist.TeamID, error) {
	if v == nil {
		return assist.NoTeam, nil
	}
	if *v < 0 || *v > 255 {
		return 0, fmt.Errorf("team %d out of range", *v)
	}
	return assist.TeamID(*v), nil
}

func addAimAssist(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.AimAssistComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode aim assist spec: %w", err)
	}
	cfg := assist.DefaultConfig()
	if spec.Tuning != "" {
		cfg, err = prefabs.LoadAimAssistConfig(spec.Tuning)
		if err != nil {
			return err
		}
	}
	return ecs.Add(w, e, component.AimAssistComponent.Kind(), &component.AimAssist{
		Config: cfg,
		Tuning: spec.Tuning,
	})
}
