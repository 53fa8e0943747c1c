package system

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/aimassist/assist"
	"github.com/milk9111/aimassist/common"
	"github.com/milk9111/aimassist/ecs"
	"github.com/milk9111/aimassist/ecs/component"
)

// Shape filter layout: the low bits carry the collider's object type, the
// bits from channelShift up carry the trace channels it blocks.
const channelShift = 16

// PhysicsSystem mirrors collider footprints into a Chipmunk space and answers
// the spatial queries of the aim assistant. Chipmunk is 2D, so it serves as
// the XY broadphase; every candidate is confirmed against its full 3D box.
type PhysicsSystem struct {
	space *cp.Space
	world *ecs.World

	surfaces map[ecs.Entity]*surfaceInfo
}

type surfaceInfo struct {
	shape    *cp.Shape
	min, max common.Vec3
	owner    ecs.Entity
	filter   cp.ShapeFilter
}

func NewPhysicsSystem() *PhysicsSystem {
	return &PhysicsSystem{
		space:    cp.NewSpace(),
		surfaces: make(map[ecs.Entity]*surfaceInfo),
	}
}

func (ps *PhysicsSystem) Space() *cp.Space {
	if ps == nil {
		return nil
	}
	return ps.space
}

func (ps *PhysicsSystem) Update(w *ecs.World) {
	if ps == nil || w == nil {
		return
	}
	if ps.space == nil {
		ps.space = cp.NewSpace()
		ps.surfaces = make(map[ecs.Entity]*surfaceInfo)
	}
	if ps.world != w {
		ps.reset()
		ps.world = w
	}
	ps.syncColliders(w)
}

func (ps *PhysicsSystem) reset() {
	for e, info := range ps.surfaces {
		ps.removeSurface(e, info)
	}
}

func (ps *PhysicsSystem) syncColliders(w *ecs.World) {
	seen := make(map[ecs.Entity]struct{}, len(ps.surfaces))

	ecs.ForEach2(w, component.ColliderComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, col *component.Collider, transform *component.Transform) {
		seen[e] = struct{}{}

		lo, hi := colliderBox(transform, col)
		owner := e
		if col.Owner != 0 {
			owner = ecs.Entity(col.Owner)
		}
		filter := cp.NewShapeFilter(cp.NO_GROUP, colliderCategories(col), cp.ALL_CATEGORIES)

		if info, ok := ps.surfaces[e]; ok {
			if info.min == lo && info.max == hi && info.owner == owner && info.filter == filter {
				col.Shape = info.shape
				return
			}
			ps.removeSurface(e, info)
		}

		bb := cp.BB{L: lo.X, B: lo.Y, R: hi.X, T: hi.Y}
		shape := cp.NewBox2(ps.space.StaticBody, bb, 0)
		shape.SetFilter(filter)
		shape.UserData = e
		ps.space.AddShape(shape)

		ps.surfaces[e] = &surfaceInfo{shape: shape, min: lo, max: hi, owner: owner, filter: filter}
		col.Shape = shape
	})

	for e, info := range ps.surfaces {
		if _, ok := seen[e]; ok {
			continue
		}
		ps.removeSurface(e, info)
	}
}

func (ps *PhysicsSystem) removeSurface(e ecs.Entity, info *surfaceInfo) {
	if info != nil && info.shape != nil && ps.space != nil {
		ps.space.RemoveShape(info.shape)
	}
	delete(ps.surfaces, e)
}

func colliderCategories(col *component.Collider) uint {
	return uint(1)<<uint(col.ObjectType) | uint(col.Blocks)<<channelShift
}

// colliderBox returns the world-space bounds of a collider. Boxes stay axis
// aligned; only the offset follows the transform's yaw.
func colliderBox(transform *component.Transform, col *component.Collider) (common.Vec3, common.Vec3) {
	center := transform.Position.Add(yawOffset(transform.Rotation.Yaw, col.Offset))
	half := common.Vec3{X: math.Abs(col.HalfExtent.X), Y: math.Abs(col.HalfExtent.Y), Z: math.Abs(col.HalfExtent.Z)}
	return center.Sub(half), center.Add(half)
}

// yawOffset rotates a local offset (X forward, Y right, Z up) by yaw degrees.
func yawOffset(yaw float64, off common.Vec3) common.Vec3 {
	s, c := math.Sincos(yaw * math.Pi / 180)
	return common.Vec3{
		X: off.X*c - off.Y*s,
		Y: off.X*s + off.Y*c,
		Z: off.Z,
	}
}

// Sweep implements assist.Scene.
func (ps *PhysicsSystem) Sweep(q assist.SweepQuery) []assist.Hit {
	if ps == nil || ps.space == nil || q.ObjectTypes == 0 || q.Range <= 0 {
		return nil
	}

	end := q.End()
	expand := sweepExtent(q.HalfExtent, q.Rotation.Yaw)
	lo := minVec(q.Origin, end).Sub(expand)
	hi := maxVec(q.Origin, end).Add(expand)

	filter := cp.NewShapeFilter(cp.NO_GROUP, cp.ALL_CATEGORIES, uint(q.ObjectTypes))
	var hits []assist.Hit
	ps.space.BBQuery(cp.BB{L: lo.X, B: lo.Y, R: hi.X, T: hi.Y}, filter, func(shape *cp.Shape, _ interface{}) {
		e, info, ok := ps.shapeSurface(shape)
		if !ok || info.owner.Actor() == q.Ignore {
			return
		}
		t, ok := segmentBoxHit(q.Origin, end, info.min.Sub(expand), info.max.Add(expand))
		if !ok {
			return
		}
		hits = append(hits, assist.Hit{
			Actor:    info.owner.Actor(),
			Surface:  e.Surface(),
			Location: lerpVec(q.Origin, end, t),
		})
	}, nil)
	return hits
}

// TraceLine implements assist.Scene. The nearest surface blocking the channel
// wins.
func (ps *PhysicsSystem) TraceLine(q assist.TraceQuery) (assist.Hit, bool) {
	if ps == nil || ps.space == nil {
		return assist.Hit{}, false
	}

	lo := minVec(q.From, q.To)
	hi := maxVec(q.From, q.To)
	filter := cp.NewShapeFilter(cp.NO_GROUP, cp.ALL_CATEGORIES, uint(1)<<uint(q.Channel)<<channelShift)

	best := math.Inf(1)
	var hit assist.Hit
	ps.space.BBQuery(cp.BB{L: lo.X, B: lo.Y, R: hi.X, T: hi.Y}, filter, func(shape *cp.Shape, _ interface{}) {
		e, info, ok := ps.shapeSurface(shape)
		if !ok || info.owner.Actor() == q.Ignore {
			return
		}
		t, ok := segmentBoxHit(q.From, q.To, info.min, info.max)
		if !ok || t >= best {
			return
		}
		best = t
		hit = assist.Hit{
			Actor:    info.owner.Actor(),
			Surface:  e.Surface(),
			Location: lerpVec(q.From, q.To, t),
		}
	}, nil)

	if math.IsInf(best, 1) {
		return assist.Hit{}, false
	}
	return hit, true
}

// SocketLocation implements assist.Scene.
func (ps *PhysicsSystem) SocketLocation(surface assist.SurfaceID, socket string) (common.Vec3, bool) {
	if ps == nil || ps.world == nil {
		return common.Vec3{}, false
	}
	return socketLocation(ps.world, ecs.SurfaceEntity(surface), socket)
}

func socketLocation(w *ecs.World, e ecs.Entity, socket string) (common.Vec3, bool) {
	transform, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return common.Vec3{}, false
	}
	sockets, ok := ecs.Get(w, e, component.SocketsComponent.Kind())
	if !ok {
		return common.Vec3{}, false
	}
	off, ok := sockets.Find(socket)
	if !ok {
		return common.Vec3{}, false
	}
	return transform.Position.Add(yawOffset(transform.Rotation.Yaw, off)), true
}

func (ps *PhysicsSystem) shapeSurface(shape *cp.Shape) (ecs.Entity, *surfaceInfo, bool) {
	if shape == nil {
		return 0, nil, false
	}
	e, ok := shape.UserData.(ecs.Entity)
	if !ok {
		return 0, nil, false
	}
	info, ok := ps.surfaces[e]
	if !ok || info.shape != shape {
		return 0, nil, false
	}
	return e, info, true
}

// sweepExtent is the axis-aligned extent of the sweep box after yawing it.
func sweepExtent(half common.Vec3, yaw float64) common.Vec3 {
	s, c := math.Sincos(yaw * math.Pi / 180)
	s, c = math.Abs(s), math.Abs(c)
	hx, hy := math.Abs(half.X), math.Abs(half.Y)
	return common.Vec3{
		X: c*hx + s*hy,
		Y: s*hx + c*hy,
		Z: math.Abs(half.Z),
	}
}

// segmentBoxHit returns the entry parameter in [0, 1] of the segment a->b
// into the box, or false when they do not touch.
func segmentBoxHit(a, b, boxMin, boxMax common.Vec3) (float64, bool) {
	tmin, tmax := 0.0, 1.0
	axes := [3][4]float64{
		{a.X, b.X - a.X, boxMin.X, boxMax.X},
		{a.Y, b.Y - a.Y, boxMin.Y, boxMax.Y},
		{a.Z, b.Z - a.Z, boxMin.Z, boxMax.Z},
	}
	for _, ax := range axes {
		origin, d, lo, hi := ax[0], ax[1], ax[2], ax[3]
		if d == 0 {
			if origin < lo || origin > hi {
				return 0, false
			}
			continue
		}
		inv := 1 / d
		t1 := (lo - origin) * inv
		t2 := (hi - origin) * inv
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = math.Max(tmin, t1)
		tmax = math.Min(tmax, t2)
		if tmax < tmin {
			return 0, false
		}
	}
	return tmin, true
}

func lerpVec(a, b common.Vec3, t float64) common.Vec3 {
	return common.Vec3{
		X: common.Lerp(a.X, b.X, t),
		Y: common.Lerp(a.Y, b.Y, t),
		Z: common.Lerp(a.Z, b.Z, t),
	}
}

func minVec(a, b common.Vec3) common.Vec3 {
	return common.Vec3{X: math.Min(a.X, b.X), Y: math.Min(a.Y, b.Y), Z: math.Min(a.Z, b.Z)}
}

func maxVec(a, b common.Vec3) common.Vec3 {
	return common.Vec3{X: math.Max(a.X, b.X), Y: math.Max(a.Y, b.Y), Z: math.Max(a.Z, b.Z)}
}
