package systems

import (
	"image/color"

	"github.com/automoto/littlevampire/assets"
	"github.com/automoto/littlevampire/components"
	"github.com/automoto/littlevampire/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	drawOp   = &ebiten.DrawImageOptions{}
	shaderOp = &ebiten.DrawRectShaderOptions{}
)

// DrawSprites renders every visible body with its texture centred on the
// collision box. Sprite scale is applied around the centre.
func DrawSprites(ecs *ecs.ECS, screen *ebiten.Image) {
	camera := GetOrCreateCamera(ecs)

	// Stars, then bombs, then the player on top
	draw := func(e *donburi.Entry) {
		sprite := components.Sprite.Get(e)
		if sprite.Hidden {
			return
		}
		o := components.Object.Get(e)
		img := assets.GetTexture(sprite.Key)
		iw, ih := float64(img.Bounds().Dx()), float64(img.Bounds().Dy())

		cx, cy := o.Center()
		var tint *color.RGBA
		if e.HasComponent(components.Player) {
			tint = components.Player.Get(e).Tint
		}

		if tint != nil && assets.TintShader != nil {
			drawTinted(screen, img, sprite, cx+camera.OffsetX, cy+camera.OffsetY, *tint)
			return
		}

		drawOp.GeoM.Reset()
		drawOp.ColorScale.Reset()
		applySpriteTransform(&drawOp.GeoM, sprite, iw, ih, cx+camera.OffsetX, cy+camera.OffsetY)
		if tint != nil {
			drawOp.ColorScale.ScaleWithColor(*tint)
		}
		screen.DrawImage(img, drawOp)
	}
	tags.Star.Each(ecs.World, draw)
	tags.Bomb.Each(ecs.World, draw)
	tags.Player.Each(ecs.World, draw)
}

func drawTinted(screen, img *ebiten.Image, sprite *components.SpriteData, x, y float64, tint color.RGBA) {
	iw, ih := img.Bounds().Dx(), img.Bounds().Dy()

	shaderOp.GeoM.Reset()
	applySpriteTransform(&shaderOp.GeoM, sprite, float64(iw), float64(ih), x, y)
	shaderOp.Images[0] = img
	shaderOp.Uniforms = map[string]any{
		"TintColor": []float32{
			float32(tint.R) / 255,
			float32(tint.G) / 255,
			float32(tint.B) / 255,
			float32(tint.A) / 255,
		},
	}
	screen.DrawRectShader(iw, ih, assets.TintShader, shaderOp)
}

func applySpriteTransform(m *ebiten.GeoM, sprite *components.SpriteData, iw, ih, x, y float64) {
	m.Translate(-iw/2, -ih/2)
	sx, sy := sprite.ScaleX, sprite.ScaleY
	if sx == 0 {
		sx = 1
	}
	if sy == 0 {
		sy = 1
	}
	if sprite.FlipX {
		sx = -sx
	}
	m.Scale(sx, sy)
	m.Translate(x, y)
}

// DrawFlash fades a full-screen colour over the frame after a hit.
func DrawFlash(ecs *ecs.ECS, screen *ebiten.Image) {
	alpha, r, g, b := FlashAlpha(ecs)
	if alpha <= 0 {
		return
	}
	a := alpha * 0.5
	c := color.RGBA{
		R: uint8(r * a * 255),
		G: uint8(g * a * 255),
		B: uint8(b * a * 255),
		A: uint8(a * 255),
	}
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	vector.FillRect(screen, 0, 0, float32(w), float32(h), c, false)
}
