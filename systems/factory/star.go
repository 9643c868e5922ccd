package factory

import (
	"github.com/automoto/littlevampire/archetypes"
	"github.com/automoto/littlevampire/assets"
	"github.com/automoto/littlevampire/components"
	cfg "github.com/automoto/littlevampire/config"
	"github.com/automoto/littlevampire/tags"
	"github.com/solarlune/resolv"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateStar spawns an active collectible centred on the spawn point.
func CreateStar(ecs *ecs.ECS, index int, spawn assets.StarSpawn, bounceY float64) *donburi.Entry {
	star := archetypes.Star.Spawn(ecs)

	w := float64(cfg.Star.Width)
	h := float64(cfg.Star.Height)
	obj := resolv.NewObject(spawn.X-w/2, spawn.Y-h/2, w, h, tags.ResolvStar)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = star
	components.Object.SetValue(star, components.ObjectData{Object: obj})

	components.Star.SetValue(star, components.StarData{
		Index:   index,
		HomeX:   spawn.X,
		HomeY:   spawn.Y,
		Active:  true,
		Twinkle: NewTwinkle(index),
		Scale:   1,
	})
	components.Physics.SetValue(star, components.PhysicsData{
		Gravity: cfg.Physics.Gravity,
		BounceY: bounceY,
	})
	components.Sprite.SetValue(star, components.SpriteData{
		Key:    assets.TextureStar,
		ScaleX: 1,
		ScaleY: 1,
	})
	addToSpace(ecs, obj)

	return star
}

// NewTwinkle returns the first, growing half of the star's pulse. Stars are
// phase shifted by index so the row does not pulse in lockstep.
func NewTwinkle(index int) *gween.Tween {
	tw := TwinkleHalf(false)
	tw.Update(float32(index%4) * cfg.Star.TwinkleDuration / 4)
	return tw
}

// TwinkleHalf returns one half cycle of the pulse.
func TwinkleHalf(shrinking bool) *gween.Tween {
	from, to := float32(1), float32(cfg.Star.TwinkleScale)
	if shrinking {
		from, to = to, from
	}
	return gween.New(from, to, cfg.Star.TwinkleDuration, ease.InOutSine)
}
