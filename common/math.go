package common

import "math"

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Vec2 is a screen-space point in viewport pixels.
type Vec2 struct {
	X, Y float64
}

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

func (v Vec2) DistSq(o Vec2) float64 {
	dx := v.X - o.X
	dy := v.Y - o.Y
	return dx*dx + dy*dy
}

// Vec3 is a world-space vector. X is forward, Y is right and Z is up.
type Vec3 struct {
	X, Y, Z float64
}

func V3(x, y, z float64) Vec3 { return Vec3{x, y, z} }

func (v Vec3) Add(o Vec3) Vec3      { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vec3) Sub(o Vec3) Vec3      { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vec3) Scale(s float64) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }
func (v Vec3) Dot(o Vec3) float64   { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }
func (v Vec3) Len() float64         { return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z) }
func (v Vec3) LenSq() float64       { return v.X*v.X + v.Y*v.Y + v.Z*v.Z }

// SafeNormal returns the unit vector, or the zero vector when v is too short
// to normalize.
func (v Vec3) SafeNormal() Vec3 {
	l := v.Len()
	if l < 1e-8 {
		return Vec3{}
	}
	return Vec3{v.X / l, v.Y / l, v.Z / l}
}

// Rotation returns the pitch/yaw rotator pointing along v. Roll is always 0.
func (v Vec3) Rotation() Rotator {
	yaw := math.Atan2(v.Y, v.X) * radToDeg
	pitch := math.Atan2(v.Z, math.Hypot(v.X, v.Y)) * radToDeg
	return Rotator{Pitch: pitch, Yaw: yaw}
}

const (
	degToRad = math.Pi / 180
	radToDeg = 180 / math.Pi
)

// Rotator is an orientation in degrees.
type Rotator struct {
	Pitch, Yaw, Roll float64
}

// Vector returns the unit forward direction of r.
func (r Rotator) Vector() Vec3 {
	sp, cp := math.Sincos(r.Pitch * degToRad)
	sy, cy := math.Sincos(r.Yaw * degToRad)
	return Vec3{X: cp * cy, Y: cp * sy, Z: sp}
}

// Right returns the unit right direction of r, ignoring roll.
func (r Rotator) Right() Vec3 {
	sy, cy := math.Sincos(r.Yaw * degToRad)
	return Vec3{X: -sy, Y: cy}
}

// Up returns the unit up direction of r, ignoring roll.
func (r Rotator) Up() Vec3 {
	sp, cp := math.Sincos(r.Pitch * degToRad)
	sy, cy := math.Sincos(r.Yaw * degToRad)
	return Vec3{X: -sp * cy, Y: -sp * sy, Z: cp}
}

func (r Rotator) Add(o Rotator) Rotator {
	return Rotator{r.Pitch + o.Pitch, r.Yaw + o.Yaw, r.Roll + o.Roll}
}

func (r Rotator) Sub(o Rotator) Rotator {
	return Rotator{r.Pitch - o.Pitch, r.Yaw - o.Yaw, r.Roll - o.Roll}
}

func (r Rotator) Scale(s float64) Rotator {
	return Rotator{r.Pitch * s, r.Yaw * s, r.Roll * s}
}

// Normalized wraps every axis into (-180, 180].
func (r Rotator) Normalized() Rotator {
	return Rotator{NormalizeAxis(r.Pitch), NormalizeAxis(r.Yaw), NormalizeAxis(r.Roll)}
}

func (r Rotator) NearlyZero(tolerance float64) bool {
	return math.Abs(r.Pitch) <= tolerance && math.Abs(r.Yaw) <= tolerance && math.Abs(r.Roll) <= tolerance
}

func (r Rotator) NearlyEqual(o Rotator, tolerance float64) bool {
	return r.Sub(o).Normalized().NearlyZero(tolerance)
}

// NormalizeAxis wraps an angle in degrees into (-180, 180].
func NormalizeAxis(angle float64) float64 {
	angle = math.Mod(angle, 360)
	if angle < 0 {
		angle += 360
	}
	if angle > 180 {
		angle -= 360
	}
	return angle
}

// RInterpTo moves current toward target along the shortest per-axis path.
// speed*dt is the fraction of the remaining delta covered this step.
func RInterpTo(current, target Rotator, dt, speed float64) Rotator {
	if dt == 0 || current == target {
		return current
	}
	if speed <= 0 {
		return target
	}

	delta := target.Sub(current).Normalized()
	if delta.NearlyZero(1e-4) {
		return target
	}

	step := Clamp(speed*dt, 0, 1)
	return current.Add(delta.Scale(step)).Normalized()
}
