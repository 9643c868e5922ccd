package systems

import (
	"math"

	"github.com/automoto/littlevampire/components"
	cfg "github.com/automoto/littlevampire/config"
	"github.com/automoto/littlevampire/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// contactEpsilon absorbs float drift so resting bodies do not snag on the
// surface they stand on.
const contactEpsilon = 1e-6

// Bounds is the rectangle bodies with world-bounds collision stay inside.
type Bounds struct {
	Width, Height float64
}

// UpdateCollisions moves every body by its velocity, one axis at a time,
// stopping or rebounding at platforms and the world edges.
func UpdateCollisions(ecs *ecs.ECS) {
	bounds := WorldBounds(ecs)

	components.Physics.Each(ecs.World, func(e *donburi.Entry) {
		if !isSimulated(e) {
			return
		}

		physics := components.Physics.Get(e)
		obj := components.Object.Get(e)

		physics.OnGround = nil
		physics.BlockedDown = false

		resolveHorizontal(physics, obj.Object)
		resolveVertical(physics, obj.Object)

		if physics.CollideWorldBounds {
			clampToBounds(physics, obj.Object, bounds)
		} else {
			clampToFloor(physics, obj.Object, bounds)
		}
	})
}

// WorldBounds returns the level rectangle, falling back to the screen size.
func WorldBounds(ecs *ecs.ECS) Bounds {
	if entry, ok := components.Level.First(ecs.World); ok {
		if level := components.Level.Get(entry).CurrentLevel; level != nil {
			return Bounds{Width: float64(level.Width), Height: float64(level.Height)}
		}
	}
	return Bounds{Width: float64(cfg.C.Width), Height: float64(cfg.C.Height)}
}

func resolveHorizontal(physics *components.PhysicsData, object *resolv.Object) {
	dx := physics.SpeedX
	if dx == 0 {
		return
	}

	solid, stopX := nearestSolid(object, dx, 0)
	if solid == nil {
		object.X += dx
		return
	}

	object.X = stopX
	physics.SpeedX = rebound(physics.SpeedX, physics.BounceX)
}

func resolveVertical(physics *components.PhysicsData, object *resolv.Object) {
	// SpeedY already holds this tick's gravity; stepping by the mean of the
	// old and new speed keeps a full bounce returning to its apex.
	dy := physics.SpeedY - physics.Gravity/2
	if dy == 0 {
		return
	}

	solid, stopY := nearestSolid(object, 0, dy)
	if solid == nil {
		object.Y += dy
		return
	}

	travelled := stopY - object.Y
	object.Y = stopY
	if dy > 0 {
		physics.OnGround = solid
		physics.BlockedDown = true
	}
	physics.SpeedY = rebound(contactSpeed(physics, travelled), physics.BounceY)
}

// contactSpeed is the vertical speed a body has when it reaches a surface
// after moving travelled pixels this tick.
func contactSpeed(physics *components.PhysicsData, travelled float64) float64 {
	if physics.Gravity == 0 {
		return physics.SpeedY
	}
	start := physics.SpeedY - physics.Gravity
	v2 := start*start + 2*physics.Gravity*travelled
	v := math.Sqrt(math.Max(0, v2))
	if physics.SpeedY < 0 {
		return -v
	}
	return v
}

// nearestSolid finds the first solid the object would run into moving by
// (dx, dy) along a single axis, and the coordinate that leaves it touching.
// The space only narrows the candidates; the box test decides.
func nearestSolid(object *resolv.Object, dx, dy float64) (*resolv.Object, float64) {
	check := object.Check(dx, dy, tags.ResolvSolid)
	if check == nil {
		return nil, 0
	}

	var hit *resolv.Object
	var stop, best float64
	for _, solid := range check.ObjectsByTags(tags.ResolvSolid) {
		if !overlapsAt(object, solid, dx, dy) {
			continue
		}

		var pos float64
		switch {
		case dx > 0 && object.X+object.W <= solid.X+contactEpsilon:
			pos = solid.X - object.W
		case dx < 0 && object.X >= solid.X+solid.W-contactEpsilon:
			pos = solid.X + solid.W
		case dy > 0 && object.Y+object.H <= solid.Y+contactEpsilon:
			pos = solid.Y - object.H
		case dy < 0 && object.Y >= solid.Y+solid.H-contactEpsilon:
			pos = solid.Y + solid.H
		default:
			// Already inside it; let the body move out
			continue
		}

		travel := math.Abs(pos - object.X)
		if dy != 0 {
			travel = math.Abs(pos - object.Y)
		}
		if hit == nil || travel < best {
			hit, stop, best = solid, pos, travel
		}
	}
	return hit, stop
}

// overlapsAt reports whether a, offset by (dx, dy), overlaps b.
func overlapsAt(a, b *resolv.Object, dx, dy float64) bool {
	return Overlaps(a.X+dx, a.Y+dy, a.W, a.H, b.X, b.Y, b.W, b.H)
}

// Overlaps is a strict AABB test; boxes that only share an edge do not overlap.
func Overlaps(ax, ay, aw, ah, bx, by, bw, bh float64) bool {
	return ax < bx+bw-contactEpsilon && ax+aw > bx+contactEpsilon &&
		ay < by+bh-contactEpsilon && ay+ah > by+contactEpsilon
}

// rebound reflects a speed. Bodies that lose energy on impact come to rest
// once the rebound is too weak to matter; a full bounce never settles.
func rebound(speed, bounce float64) float64 {
	v := -speed * bounce
	if bounce < 1 && math.Abs(v) < cfg.Physics.RestThreshold {
		return 0
	}
	return v
}

func clampToBounds(physics *components.PhysicsData, object *resolv.Object, b Bounds) {
	if object.X < 0 {
		object.X = 0
		if physics.SpeedX < 0 {
			physics.SpeedX = rebound(physics.SpeedX, physics.BounceX)
		}
	} else if object.X+object.W > b.Width {
		object.X = b.Width - object.W
		if physics.SpeedX > 0 {
			physics.SpeedX = rebound(physics.SpeedX, physics.BounceX)
		}
	}

	if object.Y < 0 {
		object.Y = 0
		if physics.SpeedY < 0 {
			physics.SpeedY = rebound(physics.SpeedY, physics.BounceY)
		}
	} else if object.Y+object.H > b.Height {
		object.Y = b.Height - object.H
		physics.BlockedDown = true
		if physics.SpeedY > 0 {
			physics.SpeedY = rebound(physics.SpeedY, physics.BounceY)
		}
	}
}

func clampToFloor(physics *components.PhysicsData, object *resolv.Object, b Bounds) {
	if object.Y+object.H > b.Height {
		object.Y = b.Height - object.H
		physics.BlockedDown = true
		physics.SpeedY = 0
	}
}
