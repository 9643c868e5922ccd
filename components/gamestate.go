package components

import (
	"github.com/google/uuid"
	"github.com/yohamta/donburi"
)

// GameStateData is the singleton run state
type GameStateData struct {
	Over          bool
	PhysicsPaused bool
	Ticks         int
	RunID         uuid.UUID

	// Recorded is set once the finished run has been handed to the leaderboard
	Recorded bool

	// Requests for the owning frontend, which decides what leaving means
	MenuRequested bool
	QuitRequested bool
}

var GameState = donburi.NewComponentType[GameStateData]()
