package components

import "github.com/yohamta/donburi"

// ScreenShakeData tracks an active screen shake
type ScreenShakeData struct {
	Intensity float64 // max offset in pixels
	Duration  int     // frames remaining
	Elapsed   int     // frames elapsed (for oscillation)
}

var ScreenShake = donburi.NewComponentType[ScreenShakeData]()

// FlashData tracks a full-screen colour flash
type FlashData struct {
	Duration int // frames remaining
	Total    int
	R, G, B  float32
}

var Flash = donburi.NewComponentType[FlashData]()
