package systems

import (
	"github.com/automoto/littlevampire/components"
	cfg "github.com/automoto/littlevampire/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePhysics integrates gravity. Movement and contacts are resolved
// afterwards by UpdateCollisions.
func UpdatePhysics(ecs *ecs.ECS) {
	components.Physics.Each(ecs.World, func(e *donburi.Entry) {
		if !isSimulated(e) {
			return
		}

		physics := components.Physics.Get(e)
		physics.SpeedY += physics.Gravity
		if physics.SpeedY > cfg.Physics.MaxFallSpeed {
			physics.SpeedY = cfg.Physics.MaxFallSpeed
		}
	})
}

// isSimulated reports whether a body takes part in physics this frame.
// Collected stars sit out until the next wave.
func isSimulated(e *donburi.Entry) bool {
	if e.HasComponent(components.Star) {
		return components.Star.Get(e).Active
	}
	return true
}
