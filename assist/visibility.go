package assist

import "github.com/milk9111/aimassist/common"

// visibleFrom reports whether the first blocking hit between the camera and
// the socket is the socket's own surface. A trace with no hit is treated as
// not visible.
func visibleFrom(scene Scene, camLoc, socketLoc common.Vec3, surface SurfaceID, channel Channel, ignore ActorID) bool {
	hit, ok := scene.TraceLine(TraceQuery{
		From:    camLoc,
		To:      socketLoc,
		Channel: channel,
		Ignore:  ignore,
	})
	if !ok {
		return false
	}
	return hit.Surface == surface
}
