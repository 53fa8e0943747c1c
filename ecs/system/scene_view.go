package system

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/aimassist/assist"
	"github.com/milk9111/aimassist/common"
	"github.com/milk9111/aimassist/ecs"
	"github.com/milk9111/aimassist/ecs/component"
)

var (
	wireColor   = color.NRGBA{R: 0x80, G: 0x90, B: 0xa0, A: 0xff}
	socketColor = color.NRGBA{R: 0xc0, G: 0xc0, B: 0xc0, A: 0xff}
	lockColor   = color.NRGBA{R: 0xff, G: 0x40, B: 0x40, A: 0xff}
)

const (
	socketMarker = 4
	lockMarker   = 10
)

// SceneViewSystem renders the scene through the player's camera as collider
// wireframes and socket markers. The socket the player's assistant locked
// onto gets a larger marker.
type SceneViewSystem struct{}

func NewSceneViewSystem() *SceneViewSystem {
	return &SceneViewSystem{}
}

func (v *SceneViewSystem) Update(*ecs.World) {}

func (v *SceneViewSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if w == nil || screen == nil {
		return
	}
	player, ok := ecs.First(w, component.PlayerTagComponent.Kind())
	if !ok {
		return
	}
	cam, ok := ecs.Get(w, player, component.CameraComponent.Kind())
	if !ok {
		return
	}
	view := NewCameraView(cam)

	var a *assist.Assistant
	if aa, ok := ecs.Get(w, player, component.AimAssistComponent.Kind()); ok {
		a = aa.Assistant
	}

	ecs.ForEach2(w, component.ColliderComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, col *component.Collider, transform *component.Transform) {
		if e == player {
			return
		}
		lo, hi := colliderBox(transform, col)
		drawBox(screen, view, lo, hi)
	})

	lock, locked := lockedSocket(a)
	ecs.ForEach2(w, component.SocketsComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, sockets *component.Sockets, _ *component.Transform) {
		for _, s := range sockets.Points {
			loc, ok := socketLocation(w, e, s.Name)
			if !ok {
				continue
			}
			p, ok := view.WorldToScreen(loc)
			if !ok {
				continue
			}
			x, y := float32(p.X), float32(p.Y)
			if locked && lock.Surface == e.Surface() && lock.Socket == s.Name {
				vector.StrokeRect(screen, x-lockMarker/2, y-lockMarker/2, lockMarker, lockMarker, 2, lockColor, false)
				continue
			}
			vector.DrawFilledRect(screen, x-socketMarker/2, y-socketMarker/2, socketMarker, socketMarker, socketColor, false)
		}
	})
}

func lockedSocket(a *assist.Assistant) (assist.BestTargetData, bool) {
	if a == nil {
		return assist.BestTargetData{}, false
	}
	best := a.BestTarget()
	return best, best.Valid()
}

var boxEdges = [12][2]int{
	{0, 1}, {1, 3}, {3, 2}, {2, 0},
	{4, 5}, {5, 7}, {7, 6}, {6, 4},
	{0, 4}, {1, 5}, {2, 6}, {3, 7},
}

// drawBox strokes the edges of an axis-aligned box whose both ends project.
func drawBox(screen *ebiten.Image, view CameraView, lo, hi common.Vec3) {
	var pts [8]common.Vec2
	var ok [8]bool
	for i := 0; i < 8; i++ {
		c := lo
		if i&1 != 0 {
			c.X = hi.X
		}
		if i&2 != 0 {
			c.Y = hi.Y
		}
		if i&4 != 0 {
			c.Z = hi.Z
		}
		pts[i], ok[i] = view.WorldToScreen(c)
	}
	for _, edge := range boxEdges {
		a, b := edge[0], edge[1]
		if !ok[a] || !ok[b] {
			continue
		}
		vector.StrokeLine(screen, float32(pts[a].X), float32(pts[a].Y), float32(pts[b].X), float32(pts[b].Y), 1, wireColor, true)
	}
}
