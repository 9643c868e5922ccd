package components

import (
	"fmt"

	"github.com/yohamta/donburi"
)

// ScoreData is the singleton run score
type ScoreData struct {
	Value          int
	High           int
	Wave           int
	StarsCollected int
	Text           string
}

// Refresh rebuilds the score label from Value.
func (s *ScoreData) Refresh() {
	s.Text = fmt.Sprintf("Score: %d", s.Value)
}

var Score = donburi.NewComponentType[ScoreData]()
