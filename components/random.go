package components

import (
	"math/rand"

	"github.com/yohamta/donburi"
)

// RandomData is the world's seeded RNG so runs can be replayed in tests
type RandomData struct {
	*rand.Rand
	Seed int64
}

var Random = donburi.NewComponentType[RandomData]()
