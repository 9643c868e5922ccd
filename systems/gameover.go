package systems

import (
	"github.com/automoto/littlevampire/components"
	cfg "github.com/automoto/littlevampire/config"
	"github.com/automoto/littlevampire/log"
	"github.com/automoto/littlevampire/systems/factory"
	"github.com/automoto/littlevampire/tags"
	"github.com/google/uuid"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateGameOver drives the keyboard side of the game over panel. R restarts
// straight away; the arrows and Enter pick between Restart and Main Menu.
func UpdateGameOver(ecs *ecs.ECS) {
	if !IsGameOver(ecs) {
		return
	}
	gameOver := GetOrCreateGameOver(ecs)
	input := GetOrCreateInput(ecs)

	if GetAction(input, cfg.ActionRestart).JustPressed {
		RestartGame(ecs)
		return
	}

	numOptions := int(components.GameOverMenu) + 1
	if GetAction(input, cfg.ActionMenuUp).JustPressed {
		gameOver.SelectedOption = components.GameOverOption(
			(int(gameOver.SelectedOption) - 1 + numOptions) % numOptions,
		)
		PlaySFX(ecs, cfg.SoundMenuNavigate)
	}
	if GetAction(input, cfg.ActionMenuDown).JustPressed {
		gameOver.SelectedOption = components.GameOverOption(
			(int(gameOver.SelectedOption) + 1) % numOptions,
		)
		PlaySFX(ecs, cfg.SoundMenuNavigate)
	}

	if GetAction(input, cfg.ActionMenuSelect).JustPressed {
		PlaySFX(ecs, cfg.SoundMenuSelect)
		SelectGameOverOption(ecs, gameOver.SelectedOption)
	}
}

// SelectGameOverOption applies a panel choice. The ebitenui buttons call it
// too, so mouse and keyboard share one path.
func SelectGameOverOption(ecs *ecs.ECS, option components.GameOverOption) {
	switch option {
	case components.GameOverRestart:
		RestartGame(ecs)
	case components.GameOverMenu:
		if state := GetGameState(ecs); state != nil {
			state.MenuRequested = true
		}
	}
}

// RestartGame puts the world back to the start of a run without rebuilding
// it: score and wave zeroed, stars back at their spawn points, bombs replaced
// by the level's initial ones, player at spawn. The best score survives.
func RestartGame(ecs *ecs.ECS) {
	score := GetScore(ecs)
	state := GetGameState(ecs)
	if score == nil || state == nil {
		return
	}

	score.Value = 0
	score.Wave = 0
	score.StarsCollected = 0
	score.Refresh()

	rng := factory.MustRandom(ecs)
	tags.Star.Each(ecs.World, func(e *donburi.Entry) {
		star := components.Star.Get(e)
		enableStar(ecs, e, star.HomeX, star.HomeY, factory.RandomStarBounce(rng))
	})

	removeBombs(ecs)
	if levelEntry, ok := components.Level.First(ecs.World); ok {
		if level := components.Level.Get(levelEntry).CurrentLevel; level != nil {
			for _, b := range level.BombSpawns {
				factory.SpawnBomb(ecs, b.X, b.Y, 0)
			}
		}
	}

	resetPlayer(ecs)
	ResetCamera(ecs)

	state.Over = false
	state.PhysicsPaused = false
	state.Recorded = false
	state.MenuRequested = false
	state.Ticks = 0
	state.RunID = uuid.New()

	GetOrCreatePause(ecs).IsPaused = false
	GetOrCreateGameOver(ecs).SelectedOption = components.GameOverRestart

	log.ForRun(state.RunID).Debug("run started")
}

func removeBombs(ecs *ecs.ECS) {
	var bombs []*donburi.Entry
	tags.Bomb.Each(ecs.World, func(e *donburi.Entry) {
		bombs = append(bombs, e)
	})

	for _, e := range bombs {
		obj := components.Object.Get(e)
		if obj.Space != nil {
			obj.Space.Remove(obj.Object)
		}
		e.Remove()
	}
}

func resetPlayer(ecs *ecs.ECS) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}

	spawnX, spawnY := cfg.Player.SpawnX, cfg.Player.SpawnY
	if levelEntry, ok := components.Level.First(ecs.World); ok {
		if level := components.Level.Get(levelEntry).CurrentLevel; level != nil {
			spawnX, spawnY = level.PlayerSpawn.X, level.PlayerSpawn.Y
		}
	}

	player := components.Player.Get(playerEntry)
	player.Tint = nil
	player.Direction = components.Vector{X: cfg.DirectionRight}
	player.JumpCount = 0

	physics := components.Physics.Get(playerEntry)
	physics.SpeedX, physics.SpeedY = 0, 0
	physics.OnGround = nil
	physics.BlockedDown = false

	components.Sprite.Get(playerEntry).FlipX = false
	components.Object.Get(playerEntry).SetCenter(spawnX, spawnY)
}

// GetOrCreateGameOver returns the singleton GameOver component, creating if needed
func GetOrCreateGameOver(e *ecs.ECS) *components.GameOverData {
	if _, ok := components.GameOver.First(e.World); !ok {
		ent := e.World.Entry(e.World.Create(components.GameOver))
		components.GameOver.SetValue(ent, components.GameOverData{
			SelectedOption: components.GameOverRestart,
		})
	}

	ent, _ := components.GameOver.First(e.World)
	return components.GameOver.Get(ent)
}
