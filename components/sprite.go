package components

import (
	"github.com/yohamta/donburi"
)

// SpriteData names a texture by key so the simulation never needs a GPU.
type SpriteData struct {
	Key    string
	FlipX  bool
	ScaleX float64
	ScaleY float64
	Hidden bool
}

var Sprite = donburi.NewComponentType[SpriteData]()
