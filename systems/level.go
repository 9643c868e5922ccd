package systems

import (
	"github.com/automoto/littlevampire/assets"
	"github.com/automoto/littlevampire/components"
	"github.com/automoto/littlevampire/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var levelDrawOp = &ebiten.DrawImageOptions{}

// DrawLevel renders the sky and every platform. Platform textures are
// stretched to the collider so the map decides the shapes.
func DrawLevel(ecs *ecs.ECS, screen *ebiten.Image) {
	camera := GetOrCreateCamera(ecs)

	sky := assets.GetTexture(assets.TextureSky)
	levelDrawOp.GeoM.Reset()
	levelDrawOp.ColorScale.Reset()
	sw, sh := sky.Bounds().Dx(), sky.Bounds().Dy()
	levelDrawOp.GeoM.Scale(
		float64(screen.Bounds().Dx())/float64(sw),
		float64(screen.Bounds().Dy())/float64(sh),
	)
	screen.DrawImage(sky, levelDrawOp)

	tags.Platform.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Object.Get(e)
		sprite := components.Sprite.Get(e)
		if sprite.Hidden {
			return
		}
		img := assets.GetTexture(sprite.Key)
		iw, ih := img.Bounds().Dx(), img.Bounds().Dy()

		levelDrawOp.GeoM.Reset()
		levelDrawOp.GeoM.Scale(o.W/float64(iw), o.H/float64(ih))
		levelDrawOp.GeoM.Translate(o.X+camera.OffsetX, o.Y+camera.OffsetY)
		screen.DrawImage(img, levelDrawOp)
	})
}
