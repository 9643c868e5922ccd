package systems

import (
	"github.com/automoto/littlevampire/assets"
	cfg "github.com/automoto/littlevampire/config"
	"github.com/automoto/littlevampire/systems/factory"
	"github.com/yohamta/donburi/ecs"
)

// NewWorld builds a playable world and seeds the best score from storage.
func NewWorld(e *ecs.ECS, level assets.Level, seed int64) {
	factory.CreateWorld(e, level, seed)
	GetOrCreateCamera(e)
	if score := GetScore(e); score != nil {
		score.High = LoadHighScore()
	}
}

// AddSimulationSystems registers the per-frame game logic in order. Input
// must be registered before it and audio output after it by the frontend,
// since those differ between ebiten and the terminal.
func AddSimulationSystems(e *ecs.ECS) {
	e.AddSystem(UpdateSettings)
	e.AddSystem(UpdatePause)
	e.AddSystem(UpdateGameOver)
	e.AddSystem(WithGameplayChecks(UpdatePlayer))
	e.AddSystem(WithGameplayChecks(UpdatePhysics))
	e.AddSystem(WithGameplayChecks(UpdateCollisions))
	e.AddSystem(WithGameplayChecks(UpdateObjects))
	e.AddSystem(WithGameplayChecks(UpdateCollect))
	e.AddSystem(WithGameplayChecks(UpdateHazards))
	e.AddSystem(WithGameplayChecks(UpdateTicks))
	e.AddSystem(WithPauseCheck(UpdateEffects))
}

// AddRenderers registers the ebiten draw order for a world scene.
func AddRenderers(e *ecs.ECS) {
	e.AddRenderer(cfg.Default, DrawLevel)
	e.AddRenderer(cfg.Default, DrawSprites)
	e.AddRenderer(cfg.Default, DrawFlash)
	e.AddRenderer(cfg.Default, DrawHUD)
	e.AddRenderer(cfg.Default, DrawDebug)
	e.AddRenderer(cfg.Default, DrawPause)
}
