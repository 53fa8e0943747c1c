// aimprobe runs the aim assist headless over a scene and prints what the
// player's assistant sees each tick.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/milk9111/aimassist/assist"
	"github.com/milk9111/aimassist/ecs"
	"github.com/milk9111/aimassist/ecs/component"
	"github.com/milk9111/aimassist/ecs/entity"
	"github.com/milk9111/aimassist/ecs/system"
	"github.com/milk9111/aimassist/prefabs"
)

func main() {
	sceneName := flag.String("scene", "range.yaml", "scene file in levels/")
	tuning := flag.String("tuning", "", "tuning file in prefabs/ (default: the player's own)")
	yaw := flag.Float64("yaw", 0, "initial view yaw in degrees")
	pitch := flag.Float64("pitch", 0, "initial view pitch in degrees")
	ticks := flag.Int("ticks", 10, "number of ticks to run")
	gamepad := flag.Bool("gamepad", true, "report gamepad as the active device")
	flag.Parse()

	w := ecs.NewWorld()
	if _, err := entity.LoadLevel(w, *sceneName); err != nil {
		log.Fatal(err)
	}

	player, ok := ecs.First(w, component.PlayerTagComponent.Kind())
	if !ok {
		log.Fatalf("scene %s has no player", *sceneName)
	}
	if ctrl, ok := ecs.Get(w, player, component.ControllerComponent.Kind()); ok {
		ctrl.ControlRotation.Yaw = *yaw
		ctrl.ControlRotation.Pitch = *pitch
	}
	if input, ok := ecs.Get(w, player, component.InputComponent.Kind()); ok && *gamepad {
		input.Device = assist.DeviceGamepad
	}
	if *tuning != "" {
		cfg, err := prefabs.LoadAimAssistConfig(*tuning)
		if err != nil {
			log.Fatal(err)
		}
		if aa, ok := ecs.Get(w, player, component.AimAssistComponent.Kind()); ok {
			aa.Config = cfg
			aa.Tuning = *tuning
		}
	}

	dt := 1.0 / 60
	physics := system.NewPhysicsSystem()
	scheduler := ecs.NewScheduler(
		physics,
		system.NewCameraSystem(nil),
		system.NewAimAssistSystem(physics, dt),
	)

	for i := 0; i < *ticks; i++ {
		scheduler.Update(w)
		fmt.Printf("-- tick %d\n%s\n", i, system.DebugText(w))
	}
}
