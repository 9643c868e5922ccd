package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/littlevampire/assets"
	"github.com/automoto/littlevampire/components"
	cfg "github.com/automoto/littlevampire/config"
	"github.com/automoto/littlevampire/log"
	"github.com/automoto/littlevampire/systems"
	"github.com/automoto/littlevampire/ui"
	"github.com/google/uuid"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// WorldScene is one playable screen: the level, its bodies and the game over
// panel. Restarting reuses the scene; leaving builds a fresh menu.
type WorldScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	levelPath    string
	once         sync.Once

	gameOverUI *ui.GameOverUI
	shownRun   uuid.UUID
}

// NewWorldScene creates a world scene for the default level
func NewWorldScene(sc SceneChanger) *WorldScene {
	return &WorldScene{sceneChanger: sc, levelPath: assets.DefaultLevel}
}

func (ws *WorldScene) Update() {
	ws.once.Do(ws.configure)
	ws.ecs.Update()

	state := systems.GetGameState(ws.ecs)
	if state == nil {
		return
	}

	if state.MenuRequested {
		ws.sceneChanger.ChangeScene(NewMenuScene(ws.sceneChanger))
		return
	}
	if state.QuitRequested {
		ws.sceneChanger.Quit()
		return
	}

	if state.Over {
		if ws.shownRun != state.RunID {
			ws.shownRun = state.RunID
			ws.refreshGameOver()
		}
		ws.gameOverUI.Update()
	}
}

func (ws *WorldScene) refreshGameOver() {
	score := systems.GetScore(ws.ecs)
	best := score.High
	if score.Value > best {
		best = score.Value
	}
	ws.gameOverUI.Refresh(score.Value, best, systems.TopRuns(cfg.GameOver.LeaderboardTop))
}

func (ws *WorldScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ws.ecs == nil {
		return
	}
	ws.ecs.Draw(screen)

	if systems.IsGameOver(ws.ecs) {
		ws.gameOverUI.Draw(screen)
	}
}

func (ws *WorldScene) configure() {
	systems.PreloadAllSFX()
	assets.PreloadTextures()

	if err := assets.LoadShaders(); err != nil {
		log.Warn("could not compile tint shader, falling back to colour scale: %v", err)
	}

	level := assets.NewLevelLoader().MustLoadLevel(ws.levelPath)

	ws.ecs = ecs.NewECS(donburi.NewWorld())
	systems.NewWorld(ws.ecs, level, cfg.Debug.Seed)

	ws.ecs.AddSystem(systems.UpdateInput)
	systems.AddSimulationSystems(ws.ecs)
	ws.ecs.AddSystem(systems.UpdateAudio)

	systems.AddRenderers(ws.ecs)

	ws.gameOverUI = ui.NewGameOverUI(
		func() {
			systems.SelectGameOverOption(ws.ecs, components.GameOverRestart)
		},
		func() {
			systems.SelectGameOverOption(ws.ecs, components.GameOverMenu)
		},
	)

	log.Info("loaded %s: %d platforms, %d stars", level.Name, len(level.Platforms), len(level.Stars))
}
