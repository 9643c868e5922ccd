package components

import (
	cfg "github.com/automoto/littlevampire/config"
	"github.com/yohamta/donburi"
)

// AudioData queues sound effects for whichever frontend owns the speakers
type AudioData struct {
	PendingSFX []cfg.SoundID
}

var Audio = donburi.NewComponentType[AudioData]()
