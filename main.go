package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	debug := flag.Bool("debug", false, "show the assist stats overlay")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	sceneName := flag.String("scene", "range.yaml", "scene file in levels/")
	watch := flag.Bool("watch", true, "reload tuning and curve scripts from prefabs/ when they change")
	flag.Parse()

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(baseWidth, baseHeight)
	ebiten.SetWindowTitle("aim assist range")

	game, err := NewGame(*sceneName, *debug, *watch)
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	// Captured so mouse look reports relative motion.
	ebiten.SetCursorMode(ebiten.CursorModeCaptured)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
