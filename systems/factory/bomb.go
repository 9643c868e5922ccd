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

// CreateBomb spawns a hazard centred on (x, y). Bombs fall like everything
// else and reflect off everything with full energy, so each one keeps
// bouncing back to the height it was released from.
func CreateBomb(ecs *ecs.ECS, x, y, speedX, speedY float64, wave int) *donburi.Entry {
	bomb := archetypes.Bomb.Spawn(ecs)

	size := float64(cfg.Bomb.BaseSize) * cfg.Bomb.Scale
	obj := resolv.NewObject(x-size/2, y-size/2, size, size, tags.ResolvBomb)
	obj.SetShape(resolv.NewRectangle(0, 0, size, size))
	obj.Data = bomb
	components.Object.SetValue(bomb, components.ObjectData{Object: obj})

	components.Bomb.SetValue(bomb, components.BombData{Wave: wave})
	components.Physics.SetValue(bomb, components.PhysicsData{
		SpeedX:             speedX,
		SpeedY:             speedY,
		Gravity:            cfg.Physics.Gravity,
		BounceX:            cfg.Bomb.Bounce,
		BounceY:            cfg.Bomb.Bounce,
		CollideWorldBounds: true,
	})
	components.Sprite.SetValue(bomb, components.SpriteData{
		Key:    assets.TextureBomb,
		ScaleX: cfg.Bomb.Scale,
		ScaleY: cfg.Bomb.Scale,
	})
	addToSpace(ecs, obj)

	return bomb
}
