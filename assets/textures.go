package assets

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// Texture keys stored in components.Sprite. Images are generated on first use,
// so gameplay code never touches the GPU.
const (
	TextureSky    = "sky"
	TextureGround = "ground"
	TextureStar   = "star"
	TextureBomb   = "bomb"
	TexturePlayer = "player"
)

// TextureSize is the natural size of each generated texture.
var TextureSize = map[string]image.Point{
	TextureSky:    {X: 800, Y: 600},
	TextureGround: {X: 400, Y: 32},
	TextureStar:   {X: 24, Y: 22},
	TextureBomb:   {X: 14, Y: 14},
	TexturePlayer: {X: 32, Y: 48},
}

type TextureLoader struct {
	cache map[string]*ebiten.Image
}

func NewTextureLoader() *TextureLoader {
	return &TextureLoader{
		cache: make(map[string]*ebiten.Image),
	}
}

// MustLoad returns the cached texture for key, generating it if needed.
func (l *TextureLoader) MustLoad(key string) *ebiten.Image {
	if img, ok := l.cache[key]; ok {
		return img
	}

	src, err := GenerateTexture(key)
	if err != nil {
		panic(err)
	}

	img := ebiten.NewImageFromImage(src)
	l.cache[key] = img
	return img
}

var textureLoader = NewTextureLoader()

// GetTexture returns the shared texture for key.
func GetTexture(key string) *ebiten.Image {
	return textureLoader.MustLoad(key)
}

// PreloadTextures uploads every texture so the first frame does not stall.
func PreloadTextures() {
	for key := range TextureSize {
		_ = textureLoader.MustLoad(key)
	}
}

// GenerateTexture rasterises the texture for key on the CPU.
func GenerateTexture(key string) (*image.RGBA, error) {
	size, ok := TextureSize[key]
	if !ok {
		return nil, fmt.Errorf("unknown texture %q", key)
	}
	img := image.NewRGBA(image.Rect(0, 0, size.X, size.Y))

	switch key {
	case TextureSky:
		paintSky(img)
	case TextureGround:
		paintGround(img)
	case TextureStar:
		paintStar(img)
	case TextureBomb:
		paintBomb(img)
	case TexturePlayer:
		paintPlayer(img)
	}
	return img, nil
}

func paintSky(img *image.RGBA) {
	b := img.Bounds()
	top := color.RGBA{R: 40, G: 20, B: 70, A: 255}
	bottom := color.RGBA{R: 110, G: 160, B: 230, A: 255}
	for y := b.Min.Y; y < b.Max.Y; y++ {
		t := float64(y) / float64(b.Dy()-1)
		c := lerpRGBA(top, bottom, t)
		for x := b.Min.X; x < b.Max.X; x++ {
			img.SetRGBA(x, y, c)
		}
	}
}

func paintGround(img *image.RGBA) {
	b := img.Bounds()
	grass := color.RGBA{R: 60, G: 160, B: 60, A: 255}
	dirt := color.RGBA{R: 120, G: 80, B: 40, A: 255}
	dark := color.RGBA{R: 95, G: 60, B: 30, A: 255}
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			switch {
			case y < 6:
				img.SetRGBA(x, y, grass)
			case (x/16+y/8)%2 == 0:
				img.SetRGBA(x, y, dirt)
			default:
				img.SetRGBA(x, y, dark)
			}
		}
	}
}

func paintStar(img *image.RGBA) {
	b := img.Bounds()
	cx := float64(b.Dx()) / 2
	cy := float64(b.Dy())/2 + 1
	outer := math.Min(cx, cy)
	inner := outer * 0.45

	poly := make([][2]float64, 10)
	for i := range poly {
		r := outer
		if i%2 == 1 {
			r = inner
		}
		a := -math.Pi/2 + float64(i)*math.Pi/5
		poly[i] = [2]float64{cx + r*math.Cos(a), cy + r*math.Sin(a)}
	}

	fill := color.RGBA{R: 255, G: 220, B: 40, A: 255}
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if insidePolygon(float64(x)+0.5, float64(y)+0.5, poly) {
				img.SetRGBA(x, y, fill)
			}
		}
	}
}

func paintBomb(img *image.RGBA) {
	b := img.Bounds()
	cx := float64(b.Dx()) / 2
	cy := float64(b.Dy()) / 2
	r := math.Min(cx, cy) - 0.5

	body := color.RGBA{R: 30, G: 30, B: 30, A: 255}
	shine := color.RGBA{R: 140, G: 140, B: 140, A: 255}
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			dx := float64(x) + 0.5 - cx
			dy := float64(y) + 0.5 - cy
			if dx*dx+dy*dy > r*r {
				continue
			}
			if dx < -r/4 && dy < -r/4 && dx*dx+dy*dy < r*r/2 {
				img.SetRGBA(x, y, shine)
			} else {
				img.SetRGBA(x, y, body)
			}
		}
	}
}

func paintPlayer(img *image.RGBA) {
	cape := color.RGBA{R: 90, G: 20, B: 40, A: 255}
	skin := color.RGBA{R: 235, G: 225, B: 240, A: 255}
	hair := color.RGBA{R: 25, G: 20, B: 35, A: 255}
	eye := color.RGBA{R: 220, G: 30, B: 30, A: 255}

	fillRect(img, image.Rect(6, 20, 26, 44), cape)
	fillRect(img, image.Rect(9, 44, 14, 48), hair)
	fillRect(img, image.Rect(18, 44, 23, 48), hair)
	fillRect(img, image.Rect(8, 4, 24, 20), skin)
	fillRect(img, image.Rect(8, 2, 24, 7), hair)
	// Faces right; the renderer mirrors it for left
	fillRect(img, image.Rect(18, 10, 21, 13), eye)
	fillRect(img, image.Rect(12, 10, 15, 13), eye)
}

func fillRect(img *image.RGBA, r image.Rectangle, c color.RGBA) {
	r = r.Intersect(img.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			img.SetRGBA(x, y, c)
		}
	}
}

// insidePolygon is an even-odd ray cast test.
func insidePolygon(x, y float64, poly [][2]float64) bool {
	inside := false
	j := len(poly) - 1
	for i := range poly {
		xi, yi := poly[i][0], poly[i][1]
		xj, yj := poly[j][0], poly[j][1]
		if (yi > y) != (yj > y) && x < (xj-xi)*(y-yi)/(yj-yi)+xi {
			inside = !inside
		}
		j = i
	}
	return inside
}

func lerpRGBA(a, b color.RGBA, t float64) color.RGBA {
	l := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t)
	}
	return color.RGBA{R: l(a.R, b.R), G: l(a.G, b.G), B: l(a.B, b.B), A: l(a.A, b.A)}
}
