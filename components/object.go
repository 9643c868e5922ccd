package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData is an entity's collision box in the resolv space. X and Y are the
// top-left corner.
type ObjectData struct {
	*resolv.Object
}

// Center returns the middle of the box.
func (o ObjectData) Center() (float64, float64) {
	return o.X + o.W/2, o.Y + o.H/2
}

// SetCenter moves the box so its middle lands on (x, y) and refreshes its
// cells in the space.
func (o ObjectData) SetCenter(x, y float64) {
	o.X = x - o.W/2
	o.Y = y - o.H/2
	if o.Space != nil {
		o.Update()
	}
}

var Object = donburi.NewComponentType[ObjectData]()
