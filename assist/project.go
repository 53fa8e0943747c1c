package assist

import "github.com/milk9111/aimassist/common"

// screenOrigin is the viewport center shifted by the configured offset.
func screenOrigin(vp Viewport, offset common.Vec2) common.Vec2 {
	w, h := vp.ViewportSize()
	return common.Vec2{X: float64(w) * 0.5, Y: float64(h) * 0.5}.Add(offset)
}

// screenDistSq projects p and returns its squared pixel distance from origin.
// ok is false when the point cannot be projected.
func screenDistSq(vp Viewport, p common.Vec3, origin common.Vec2) (float64, bool) {
	screen, ok := vp.WorldToScreen(p)
	if !ok {
		return 0, false
	}
	return screen.DistSq(origin), true
}

// withinScreenCircle reports whether p projects inside radius of origin.
// The boundary counts as inside.
func withinScreenCircle(vp Viewport, p common.Vec3, origin common.Vec2, radius float64) bool {
	distSq, ok := screenDistSq(vp, p, origin)
	if !ok {
		return false
	}
	return distSq <= radius*radius
}
