package factory

import (
	"github.com/automoto/littlevampire/archetypes"
	"github.com/automoto/littlevampire/assets"
	"github.com/automoto/littlevampire/components"
	cfg "github.com/automoto/littlevampire/config"
	"github.com/automoto/littlevampire/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer spawns the vampire with its body centred on (x, y).
func CreatePlayer(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	w := float64(cfg.Player.CollisionWidth)
	h := float64(cfg.Player.CollisionHeight)
	obj := resolv.NewObject(x-w/2, y-h/2, w, h, tags.ResolvPlayer)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj})

	components.Player.SetValue(player, components.PlayerData{
		Direction: components.Vector{X: cfg.DirectionRight},
	})
	components.Physics.SetValue(player, components.PhysicsData{
		Gravity:            cfg.Physics.Gravity,
		BounceX:            cfg.Player.Bounce,
		BounceY:            cfg.Player.Bounce,
		CollideWorldBounds: true,
	})
	components.Sprite.SetValue(player, components.SpriteData{
		Key:    assets.TexturePlayer,
		ScaleX: 1,
		ScaleY: 1,
	})
	addToSpace(ecs, obj)

	return player
}
