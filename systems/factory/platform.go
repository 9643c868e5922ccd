package factory

import (
	"github.com/automoto/littlevampire/archetypes"
	"github.com/automoto/littlevampire/assets"
	"github.com/automoto/littlevampire/components"
	"github.com/automoto/littlevampire/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlatform adds a static collider drawn with the platform's texture.
func CreatePlatform(ecs *ecs.ECS, p assets.Platform) *donburi.Entry {
	platform := archetypes.Platform.Spawn(ecs)

	obj := resolv.NewObject(p.X, p.Y, p.Width, p.Height, tags.ResolvSolid)
	obj.SetShape(resolv.NewRectangle(0, 0, p.Width, p.Height))
	obj.Data = platform
	components.Object.SetValue(platform, components.ObjectData{Object: obj})
	components.Sprite.SetValue(platform, components.SpriteData{
		Key:    p.Texture,
		ScaleX: 1,
		ScaleY: 1,
	})
	addToSpace(ecs, obj)

	return platform
}
