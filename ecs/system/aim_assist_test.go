package system

import (
	"math"
	"strings"
	"testing"

	"github.com/milk9111/aimassist/assist"
	"github.com/milk9111/aimassist/common"
	"github.com/milk9111/aimassist/ecs"
	"github.com/milk9111/aimassist/ecs/component"
	"github.com/milk9111/aimassist/prefabs"
)

type rangeFixture struct {
	w        *ecs.World
	player   ecs.Entity
	enemy    ecs.Entity
	friendly ecs.Entity
	sched    *ecs.Scheduler
	look     *LookSystem
}

func testConfig() assist.Config {
	cfg := assist.DefaultConfig()
	cfg.Enabled = true
	cfg.GamepadOnly = false
	cfg.Teams.Accepted = []assist.TeamID{1}
	return cfg
}

func addActor(t *testing.T, w *ecs.World, pos common.Vec3, team assist.TeamID) ecs.Entity {
	t.Helper()
	e := addBox(t, w, pos, common.V3(25, 25, 90), assist.ObjectPawn, assist.Channels(assist.ChannelVisibility))
	must(t, ecs.Add(w, e, component.SocketsComponent.Kind(), &component.Sockets{Points: []component.Socket{
		{Name: "head", Offset: common.V3(0, 0, 60)},
	}}))
	must(t, ecs.Add(w, e, component.AimTargetsComponent.Kind(), &component.AimTargets{Targets: []component.AimTargetRef{
		{Sockets: []string{"head"}},
	}}))
	must(t, ecs.Add(w, e, component.NativeTeamComponent.Kind(), &component.NativeTeam{ID: team}))
	return e
}

func must(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("%v", err)
	}
}

func newRangeFixture(t *testing.T, cfg assist.Config) rangeFixture {
	t.Helper()
	w := ecs.NewWorld()
	f := rangeFixture{w: w}

	f.player = addBox(t, w, common.V3(0, 0, 0), common.V3(30, 30, 90), assist.ObjectPawn, assist.Channels(assist.ChannelVisibility))
	must(t, ecs.Add(w, f.player, component.PlayerTagComponent.Kind(), &component.PlayerTag{}))
	must(t, ecs.Add(w, f.player, component.ControllerComponent.Kind(), &component.Controller{Local: true}))
	must(t, ecs.Add(w, f.player, component.PlayerComponent.Kind(), &component.Player{LookSpeed: 60}))
	must(t, ecs.Add(w, f.player, component.InputComponent.Kind(), &component.Input{}))
	must(t, ecs.Add(w, f.player, component.CameraComponent.Kind(), &component.Camera{
		FOV:        90,
		Near:       1,
		EyeOffset:  common.V3(0, 0, 60),
		ViewWidth:  1000,
		ViewHeight: 500,
	}))
	must(t, ecs.Add(w, f.player, component.NativeTeamComponent.Kind(), &component.NativeTeam{ID: 0}))
	must(t, ecs.Add(w, f.player, component.AimAssistComponent.Kind(), &component.AimAssist{Config: cfg}))

	f.enemy = addActor(t, w, common.V3(1000, 20, 0), 1)
	f.friendly = addActor(t, w, common.V3(1000, -20, 0), 0)

	physics := NewPhysicsSystem()
	f.look = NewLookSystem(1)
	f.sched = ecs.NewScheduler(
		physics,
		NewCameraSystem(nil),
		NewAimAssistSystem(physics, 1.0/60),
	)
	return f
}

func (f rangeFixture) assistant(t *testing.T) *assist.Assistant {
	t.Helper()
	aa, ok := ecs.Get(f.w, f.player, component.AimAssistComponent.Kind())
	if !ok || aa.Assistant == nil {
		t.Fatalf("assistant was not created")
	}
	return aa.Assistant
}

func TestAimAssistSystemTick(t *testing.T) {
	f := newRangeFixture(t, testConfig())
	f.sched.Update(f.w)

	a := f.assistant(t)
	best := a.BestTarget()
	if best.Surface != assist.SurfaceID(f.enemy) || best.Socket != "head" {
		t.Fatalf("best = %+v, want enemy head", best)
	}
	if !nearlyEqual(best.Location, common.V3(1000, 20, 60)) {
		t.Fatalf("best location = %v", best.Location)
	}
	if resolved := a.ResolvedTargets(); len(resolved) != 1 || resolved[0].Surface != assist.SurfaceID(f.enemy) {
		t.Fatalf("friendly should be filtered, resolved = %+v", resolved)
	}
	if a.RawFriction() != assist.DefaultFrictionStrength || a.AimMagnetism() != assist.DefaultMagnetismStrength {
		t.Fatalf("friction %v magnetism %v, want fallbacks", a.RawFriction(), a.AimMagnetism())
	}

	ctrl, _ := ecs.Get(f.w, f.player, component.ControllerComponent.Kind())
	targetYaw := math.Atan2(20, 1000) * 180 / math.Pi
	if ctrl.ControlRotation.Yaw <= 0 || ctrl.ControlRotation.Yaw >= targetYaw {
		t.Fatalf("yaw %v should move toward %v without reaching it", ctrl.ControlRotation.Yaw, targetYaw)
	}
}

func TestLookSystemAppliesFriction(t *testing.T) {
	f := newRangeFixture(t, testConfig())
	f.sched.Update(f.w)

	ctrl, _ := ecs.Get(f.w, f.player, component.ControllerComponent.Kind())
	input, _ := ecs.Get(f.w, f.player, component.InputComponent.Kind())
	before := ctrl.ControlRotation.Yaw

	input.LookX = 1
	f.look.Update(f.w)

	want := 60 * (1 - assist.DefaultFrictionStrength)
	if got := ctrl.ControlRotation.Yaw - before; math.Abs(got-want) > 1e-9 {
		t.Fatalf("yaw delta = %v, want %v", got, want)
	}
}

func TestLookSystemClampsPitch(t *testing.T) {
	w := ecs.NewWorld()
	e := ecs.CreateEntity(w)
	must(t, ecs.Add(w, e, component.ControllerComponent.Kind(), &component.Controller{Local: true}))
	must(t, ecs.Add(w, e, component.PlayerComponent.Kind(), &component.Player{LookSpeed: 100}))
	must(t, ecs.Add(w, e, component.InputComponent.Kind(), &component.Input{LookY: -1}))

	NewLookSystem(1).Update(w)

	ctrl, _ := ecs.Get(w, e, component.ControllerComponent.Kind())
	if ctrl.ControlRotation.Pitch != defaultMaxPitch {
		t.Fatalf("pitch = %v, want %v", ctrl.ControlRotation.Pitch, defaultMaxPitch)
	}
}

func TestAimAssistSystemGates(t *testing.T) {
	t.Run("gamepad_only_waits_for_gamepad", func(t *testing.T) {
		cfg := testConfig()
		cfg.GamepadOnly = true
		f := newRangeFixture(t, cfg)
		f.sched.Update(f.w)
		if f.assistant(t).BestTarget().Valid() {
			t.Fatalf("no gamepad used yet, expected no target")
		}

		input, _ := ecs.Get(f.w, f.player, component.InputComponent.Kind())
		input.Device = assist.DeviceGamepad
		f.sched.Update(f.w)
		if !f.assistant(t).BestTarget().Valid() {
			t.Fatalf("expected target after gamepad input")
		}
	})

	t.Run("wall_blocks_target", func(t *testing.T) {
		f := newRangeFixture(t, testConfig())
		addBox(t, f.w, common.V3(500, 0, 0), common.V3(10, 100, 200), assist.ObjectWorldStatic, assist.Channels(assist.ChannelVisibility))
		f.sched.Update(f.w)
		if f.assistant(t).BestTarget().Valid() {
			t.Fatalf("occluded target should not be selected")
		}
	})

	t.Run("remote_controller", func(t *testing.T) {
		f := newRangeFixture(t, testConfig())
		ctrl, _ := ecs.Get(f.w, f.player, component.ControllerComponent.Kind())
		ctrl.Local = false
		f.sched.Update(f.w)
		if f.assistant(t).BestTarget().Valid() || ctrl.ControlRotation.Yaw != 0 {
			t.Fatalf("remote controller should be ignored")
		}
	})

	t.Run("no_camera", func(t *testing.T) {
		f := newRangeFixture(t, testConfig())
		ecs.Remove(f.w, f.player, component.CameraComponent.Kind())
		f.sched.Update(f.w)
		if f.assistant(t).BestTarget().Valid() {
			t.Fatalf("tick without a camera should do nothing")
		}
	})
}

func TestCameraViewProjection(t *testing.T) {
	cam := &component.Camera{FOV: 90, Near: 1, ViewWidth: 1000, ViewHeight: 500}
	view := NewCameraView(cam)

	tests := []struct {
		name string
		p    common.Vec3
		want common.Vec2
		ok   bool
	}{
		{"center", common.V3(100, 0, 0), common.Vec2{X: 500, Y: 250}, true},
		{"right_up", common.V3(1000, 100, 50), common.Vec2{X: 550, Y: 225}, true},
		{"off_screen_still_projects", common.V3(100, 1000, 0), common.Vec2{X: 5500, Y: 250}, true},
		{"near_plane", common.V3(1, 0, 0), common.Vec2{}, false},
		{"behind", common.V3(-100, 0, 0), common.Vec2{}, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := view.WorldToScreen(tc.p)
			if ok != tc.ok {
				t.Fatalf("ok = %v, want %v", ok, tc.ok)
			}
			if ok && (math.Abs(got.X-tc.want.X) > 1e-6 || math.Abs(got.Y-tc.want.Y) > 1e-6) {
				t.Fatalf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestCameraSystemFollowsControl(t *testing.T) {
	w := ecs.NewWorld()
	e := ecs.CreateEntity(w)
	must(t, ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{Position: common.V3(10, 20, 0)}))
	must(t, ecs.Add(w, e, component.ControllerComponent.Kind(), &component.Controller{ControlRotation: common.Rotator{Pitch: 10, Yaw: 90}}))
	must(t, ecs.Add(w, e, component.CameraComponent.Kind(), &component.Camera{EyeOffset: common.V3(5, 0, 60)}))

	NewCameraSystem(func() (int, int) { return 800, 600 }).Update(w)

	cam, _ := ecs.Get(w, e, component.CameraComponent.Kind())
	if cam.Rotation.Pitch != 10 || cam.Rotation.Yaw != 90 {
		t.Fatalf("camera rotation = %+v", cam.Rotation)
	}
	if !nearlyEqual(cam.Location, common.V3(10, 25, 60)) {
		t.Fatalf("camera location = %v", cam.Location)
	}
	if cam.ViewWidth != 800 || cam.ViewHeight != 600 {
		t.Fatalf("viewport = %dx%d", cam.ViewWidth, cam.ViewHeight)
	}
}

func TestInputSystemTracksDevice(t *testing.T) {
	states := []InputState{
		{LookX: 0.5, Device: assist.DeviceGamepad},
		{},
		{MouseDX: 3, Device: assist.DeviceKeyboardMouse},
	}
	i := 0
	sys := NewInputSystemWithPoll(func() InputState {
		s := states[i]
		i++
		return s
	})

	w := ecs.NewWorld()
	e := ecs.CreateEntity(w)
	must(t, ecs.Add(w, e, component.InputComponent.Kind(), &component.Input{}))
	input, _ := ecs.Get(w, e, component.InputComponent.Kind())

	sys.Update(w)
	if input.Device != assist.DeviceGamepad || !input.DeviceChanged || input.LookX != 0.5 {
		t.Fatalf("after gamepad: %+v", input)
	}
	sys.Update(w)
	if input.Device != assist.DeviceGamepad || input.DeviceChanged || input.LookX != 0 {
		t.Fatalf("idle frame should keep the device: %+v", input)
	}
	sys.Update(w)
	if input.Device != assist.DeviceKeyboardMouse || !input.DeviceChanged || input.MouseDX != 3 {
		t.Fatalf("after mouse: %+v", input)
	}
}

func TestTuningSystemReloads(t *testing.T) {
	f := newRangeFixture(t, testConfig())
	f.sched.Update(f.w)
	aa, _ := ecs.Get(f.w, f.player, component.AimAssistComponent.Kind())
	aa.Tuning = "aim_assist.yaml"

	changes := make(chan prefabs.Change, 4)
	errs := make(chan error, 1)
	loads := 0
	sys := NewTuningSystemWithLoader(changes, errs, func(name string) (assist.Config, error) {
		loads++
		cfg := testConfig()
		cfg.Friction.Radius = 10
		return cfg, nil
	})

	changes <- prefabs.Change{Path: "prefabs/other.yaml"}
	sys.Update(f.w)
	if loads != 0 {
		t.Fatalf("unrelated file reloaded tuning")
	}

	changes <- prefabs.Change{Path: "prefabs/aim_assist.yaml"}
	sys.Update(f.w)
	if loads != 1 || f.assistant(t).Config().Friction.Radius != 10 {
		t.Fatalf("loads=%d radius=%v", loads, f.assistant(t).Config().Friction.Radius)
	}

	changes <- prefabs.Change{Path: "prefabs/scripts/friction.tengo", Script: true}
	sys.Update(f.w)
	if loads != 2 {
		t.Fatalf("script edit should reload tuning, loads=%d", loads)
	}

	// empty channels must not block
	sys.Update(f.w)
}

func TestDebugText(t *testing.T) {
	f := newRangeFixture(t, testConfig())
	f.sched.Update(f.w)
	text := DebugText(f.w)
	for _, want := range []string{"Aim assist: true", "Target: ", "/head", "Friction: 0.25"} {
		if !strings.Contains(text, want) {
			t.Fatalf("debug text %q missing %q", text, want)
		}
	}
}

func TestLockedSocket(t *testing.T) {
	if _, ok := lockedSocket(nil); ok {
		t.Fatalf("nil assistant should have no lock")
	}

	f := newRangeFixture(t, testConfig())
	f.sched.Update(f.w)

	lock, ok := lockedSocket(f.assistant(t))
	if !ok || lock.Surface != assist.SurfaceID(f.enemy) || lock.Socket != "head" {
		t.Fatalf("lock = %+v %v, want enemy head", lock, ok)
	}
}
