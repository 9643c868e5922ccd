package components

import "github.com/yohamta/donburi"

type BombData struct {
	// Wave the bomb was released on; 0 for bombs placed by the level
	Wave int
}

var Bomb = donburi.NewComponentType[BombData]()
