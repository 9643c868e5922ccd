package components

import "github.com/yohamta/donburi"

// CameraData is the offset applied to every world-space draw. The level fits
// the screen, so it only moves while shaking.
type CameraData struct {
	OffsetX float64
	OffsetY float64
}

var Camera = donburi.NewComponentType[CameraData]()
