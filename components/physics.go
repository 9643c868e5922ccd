package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// Vector represents a 2D vector.
type Vector struct {
	X, Y float64
}

// PhysicsData is an arcade body. Speeds are in pixels per tick.
type PhysicsData struct {
	SpeedX  float64
	SpeedY  float64
	Gravity float64

	// Restitution per axis: 0 stops dead, 1 is a perfect reflection
	BounceX float64
	BounceY float64

	// CollideWorldBounds keeps the body inside the level rectangle
	CollideWorldBounds bool

	// OnGround is the surface the body rests on after this tick's collision pass
	OnGround *resolv.Object

	// BlockedDown is true when anything stopped downward motion this tick,
	// including the bottom world bound
	BlockedDown bool
}

var Physics = donburi.NewComponentType[PhysicsData]()
