package assist

import (
	"math"

	"github.com/milk9111/aimassist/common"
)

// zoneStrength converts a squared screen distance into a 0-1 strength for a
// zone of the given radius. Distances on or outside the radius yield 0. A
// curve that produces a non-finite value is treated as missing.
func zoneStrength(distSq, radius float64, curve Curve, fallback float64) float64 {
	if radius <= 0 {
		return 0
	}
	radiusSq := radius * radius
	if distSq >= radiusSq {
		return 0
	}

	scale := common.Clamp(1-distSq/radiusSq, 0, 1)
	if curve == nil {
		return fallback
	}
	v := curve.Evaluate(scale)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fallback
	}
	return common.Clamp(v, 0, 1)
}

// frictionMultiplier turns a raw friction strength into the sensitivity
// multiplier consumers apply to look input.
func frictionMultiplier(raw float64) float64 {
	if math.IsNaN(raw) || raw < 0 {
		raw = 0
	}
	if raw > maxRawFriction {
		raw = maxRawFriction
	}
	return 1 - raw
}
