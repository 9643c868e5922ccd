package systems

import (
	"github.com/automoto/littlevampire/components"
	"github.com/yohamta/donburi/ecs"
)

// UpdateObjects refreshes each moved body's cells in the collision space.
func UpdateObjects(ecs *ecs.ECS) {
	for e := range components.Physics.Iter(ecs.World) {
		if !isSimulated(e) {
			continue
		}
		obj := components.Object.Get(e)
		if obj.Space != nil {
			obj.Update()
		}
	}
}
