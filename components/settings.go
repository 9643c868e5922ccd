package components

import "github.com/yohamta/donburi"

// SettingsData holds the persisted player preferences
type SettingsData struct {
	SFXVolume float64
	Muted     bool

	// Volume restored when unmuting
	PreMuteSFXVol float64

	// Debug draws hitboxes and frame stats. Not persisted.
	Debug bool
}

var Settings = donburi.NewComponentType[SettingsData]()
