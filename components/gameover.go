package components

import "github.com/yohamta/donburi"

// GameOverOption represents the available game over panel selections
type GameOverOption int

const (
	GameOverRestart GameOverOption = iota
	GameOverMenu
)

// GameOverData stores the keyboard selection on the game over panel
type GameOverData struct {
	SelectedOption GameOverOption
}

// GameOver is the component type for game over panel state
var GameOver = donburi.NewComponentType[GameOverData]()
