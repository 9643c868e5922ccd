package archetypes

import (
	"github.com/automoto/littlevampire/components"
	cfg "github.com/automoto/littlevampire/config"
	"github.com/automoto/littlevampire/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Platform = newArchetype(
		tags.Platform,
		components.Object,
		components.Sprite,
	)
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Object,
		components.Physics,
		components.Sprite,
	)
	Star = newArchetype(
		tags.Star,
		components.Star,
		components.Object,
		components.Physics,
		components.Sprite,
	)
	Bomb = newArchetype(
		tags.Bomb,
		components.Bomb,
		components.Object,
		components.Physics,
		components.Sprite,
	)
	Space = newArchetype(
		components.Space,
	)
	Level = newArchetype(
		components.Level,
	)
	// Session holds the per-run singletons
	Session = newArchetype(
		components.Score,
		components.GameState,
		components.Random,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
