package main

import (
	"fmt"
	"log"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/aimassist/ecs"
	"github.com/milk9111/aimassist/ecs/entity"
	"github.com/milk9111/aimassist/ecs/system"
	"github.com/milk9111/aimassist/prefabs"
	"golang.org/x/image/colornames"
)

const (
	baseWidth  = 1280
	baseHeight = 720

	crosshairSize = 6
)

type Game struct {
	frames int

	world     *ecs.World
	scheduler *ecs.Scheduler
	watcher   *prefabs.Watcher

	overlay *system.DebugOverlaySystem

	paused       bool
	pauseUI      *ebitenui.UI
	assistButton *widget.Button
	debugButton  *widget.Button
}

func NewGame(sceneName string, debug, watch bool) (*Game, error) {
	w := ecs.NewWorld()
	if _, err := entity.LoadLevel(w, sceneName); err != nil {
		return nil, err
	}

	g := &Game{world: w}
	if watch {
		watcher, err := prefabs.NewWatcher(prefabs.Dir, prefabs.ScriptsDir)
		if err != nil {
			log.Printf("Tuning: hot reload disabled: %v", err)
		} else {
			g.watcher = watcher
		}
	}

	dt := 1 / float64(ebiten.DefaultTPS)
	physics := system.NewPhysicsSystem()
	g.overlay = system.NewDebugOverlaySystem(debug)
	g.scheduler = ecs.NewScheduler(
		system.NewTuningSystem(g.watcher),
		system.NewInputSystem(),
		system.NewLookSystem(dt),
		physics,
		system.NewCameraSystem(func() (int, int) { return baseWidth, baseHeight }),
		system.NewAimAssistSystem(physics, dt),
		system.NewSceneViewSystem(),
		g.overlay,
	)
	g.pauseUI = NewPauseUI(g)
	return g, nil
}

func (g *Game) Update() error {
	g.frames++

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.setPaused(!g.paused)
	}
	if g.paused {
		g.pauseUI.Update()
		return nil
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.toggleAssist()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		g.toggleDebug()
	}

	g.scheduler.Update(g.world)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colornames.Darkslategray)

	g.scheduler.Draw(g.world, screen)

	cx, cy := float32(baseWidth/2), float32(baseHeight/2)
	vector.StrokeLine(screen, cx-crosshairSize, cy, cx+crosshairSize, cy, 1, colornames.White, false)
	vector.StrokeLine(screen, cx, cy-crosshairSize, cx, cy+crosshairSize, 1, colornames.White, false)

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Frames: %d    FPS: %.2f    [F1] assist  [F3] stats  [Esc] pause", g.frames, ebiten.ActualFPS()), 10, baseHeight-20)

	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return baseWidth, baseHeight
}

// Close stops the tuning watcher.
func (g *Game) Close() error {
	if g.watcher == nil {
		return nil
	}
	return g.watcher.Close()
}

func (g *Game) setPaused(paused bool) {
	g.paused = paused
	if paused {
		ebiten.SetCursorMode(ebiten.CursorModeVisible)
		if g.assistButton != nil {
			g.assistButton.Text().Label = assistLabel(g.assistEnabled())
		}
		if g.debugButton != nil {
			g.debugButton.Text().Label = debugLabel(g.debugEnabled())
		}
		return
	}
	ebiten.SetCursorMode(ebiten.CursorModeCaptured)
}

func (g *Game) assistEnabled() bool {
	a, ok := entity.PlayerAssistant(g.world)
	return ok && a.Enabled()
}

func (g *Game) toggleAssist() {
	a, ok := entity.PlayerAssistant(g.world)
	if !ok {
		return
	}
	a.Enable(!a.Enabled())
	log.Printf("Aim assist: enabled=%v", a.Enabled())
}

func (g *Game) debugEnabled() bool {
	return g.overlay.Enabled
}

func (g *Game) toggleDebug() {
	g.overlay.Enabled = !g.overlay.Enabled
}
