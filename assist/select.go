package assist

import (
	"math"

	"github.com/milk9111/aimassist/common"
)

// selectBest returns the socket most aligned with the camera forward vector.
// The first socket wins ties.
func selectBest(scene Scene, targets []ResolvedTarget, camLoc, camForward common.Vec3) BestTargetData {
	var best BestTargetData
	bestScore := math.Inf(-1)

	for _, target := range targets {
		for _, socket := range target.Sockets {
			loc, ok := scene.SocketLocation(target.Surface, socket)
			if !ok {
				continue
			}
			dir := loc.Sub(camLoc).SafeNormal()

			// Only front-ness counts for now.
			score := camForward.Dot(dir)
			if score > bestScore {
				bestScore = score
				best = BestTargetData{
					Surface:  target.Surface,
					Socket:   socket,
					Location: loc,
					Score:    score,
				}
			}
		}
	}
	return best
}
