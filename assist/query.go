package assist

import "github.com/milk9111/aimassist/common"

// sweepTargets casts the configured box forward from the camera and returns
// the raw hits. An empty result is not an error.
func sweepTargets(scene Scene, camLoc common.Vec3, camRot common.Rotator, cfg *Config, ignore ActorID) []Hit {
	if scene == nil || cfg.ObjectTypes == 0 {
		return nil
	}
	return scene.Sweep(SweepQuery{
		Origin:      camLoc,
		Direction:   camRot.Vector(),
		Range:       cfg.OverlapRange,
		HalfExtent:  cfg.OverlapHalfExtent,
		Rotation:    camRot,
		ObjectTypes: cfg.ObjectTypes,
		Ignore:      ignore,
	})
}
