package components

import (
	"image/color"

	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Direction Vector

	// Tint multiplies the sprite colour; nil draws it untouched
	Tint *color.RGBA

	JumpCount int
}

var Player = donburi.NewComponentType[PlayerData]()
