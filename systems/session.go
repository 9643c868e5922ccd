package systems

import (
	"github.com/automoto/littlevampire/components"
	"github.com/yohamta/donburi/ecs"
)

// GetScore returns the run's score singleton, or nil before a world exists.
func GetScore(ecs *ecs.ECS) *components.ScoreData {
	entry, ok := components.Score.First(ecs.World)
	if !ok {
		return nil
	}
	return components.Score.Get(entry)
}

// GetGameState returns the run state singleton, or nil before a world exists.
func GetGameState(ecs *ecs.ECS) *components.GameStateData {
	entry, ok := components.GameState.First(ecs.World)
	if !ok {
		return nil
	}
	return components.GameState.Get(entry)
}

// IsGameOver reports whether the player has been hit this run.
func IsGameOver(ecs *ecs.ECS) bool {
	state := GetGameState(ecs)
	return state != nil && state.Over
}

// UpdateTicks counts simulated frames for the run summary.
func UpdateTicks(ecs *ecs.ECS) {
	if state := GetGameState(ecs); state != nil && !state.Over {
		state.Ticks++
	}
}
