package system

import (
	"math"

	"github.com/milk9111/aimassist/common"
	"github.com/milk9111/aimassist/ecs"
	"github.com/milk9111/aimassist/ecs/component"
)

const (
	defaultFOV  = 90.0
	defaultNear = 1.0
)

// CameraSystem places each camera at its pawn's eye and aims it along the
// control rotation.
type CameraSystem struct {
	viewport func() (int, int)
}

// NewCameraSystem creates a camera system. viewport reports the current
// screen size; nil keeps the size stored on each camera.
func NewCameraSystem(viewport func() (int, int)) *CameraSystem {
	return &CameraSystem{viewport: viewport}
}

func (cs *CameraSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach2(w, component.CameraComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, cam *component.Camera, transform *component.Transform) {
		rot := transform.Rotation
		if ctrl, ok := ecs.Get(w, e, component.ControllerComponent.Kind()); ok {
			rot = ctrl.ControlRotation
			// the pawn body turns with the view, but does not pitch
			transform.Rotation.Yaw = rot.Yaw
		}

		cam.Rotation = rot
		cam.Location = transform.Position.Add(yawOffset(transform.Rotation.Yaw, cam.EyeOffset))

		if cs.viewport != nil {
			if vw, vh := cs.viewport(); vw > 0 && vh > 0 {
				cam.ViewWidth = vw
				cam.ViewHeight = vh
			}
		}
	})
}

// CameraView adapts a camera component to the assistant's Camera and
// Viewport.
type CameraView struct {
	cam *component.Camera
}

func NewCameraView(cam *component.Camera) CameraView {
	return CameraView{cam: cam}
}

func (v CameraView) CameraLocation() common.Vec3 {
	if v.cam == nil {
		return common.Vec3{}
	}
	return v.cam.Location
}

func (v CameraView) CameraRotation() common.Rotator {
	if v.cam == nil {
		return common.Rotator{}
	}
	return v.cam.Rotation
}

func (v CameraView) ViewportSize() (int, int) {
	if v.cam == nil {
		return 0, 0
	}
	return v.cam.ViewWidth, v.cam.ViewHeight
}

// WorldToScreen projects p with a pinhole camera. Points at or behind the
// near plane do not project; points outside the viewport still do.
func (v CameraView) WorldToScreen(p common.Vec3) (common.Vec2, bool) {
	if v.cam == nil || v.cam.ViewWidth <= 0 || v.cam.ViewHeight <= 0 {
		return common.Vec2{}, false
	}

	near := v.cam.Near
	if near <= 0 {
		near = defaultNear
	}
	fov := v.cam.FOV
	if fov <= 0 || fov >= 180 {
		fov = defaultFOV
	}

	rel := p.Sub(v.cam.Location)
	depth := rel.Dot(v.cam.Rotation.Vector())
	if depth <= near {
		return common.Vec2{}, false
	}

	halfW := float64(v.cam.ViewWidth) / 2
	halfH := float64(v.cam.ViewHeight) / 2
	focal := halfW / math.Tan(fov*math.Pi/360)

	x := rel.Dot(v.cam.Rotation.Right())
	y := rel.Dot(v.cam.Rotation.Up())
	return common.Vec2{
		X: halfW + x*focal/depth,
		Y: halfH - y*focal/depth,
	}, true
}
