package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// StarData is a collectible. Disabled stars are hidden and absent from the
// collision space until the next wave.
type StarData struct {
	Index  int
	HomeX  float64 // centre x the star respawns at
	HomeY  float64 // centre y of the first drop
	Active bool

	Twinkle   *gween.Tween
	Shrinking bool
	Scale     float64
}

var Star = donburi.NewComponentType[StarData]()
