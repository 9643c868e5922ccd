package systems

import (
	"testing"

	"github.com/automoto/littlevampire/components"
	cfg "github.com/automoto/littlevampire/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPauseFreezesGameplay(t *testing.T) {
	e, _ := newTestWorld(t, 1)
	clearBombs(e)
	stepN(e, 120)

	step(e, cfg.ActionPause)
	require.True(t, GetOrCreatePause(e).IsPaused)

	x0, y0 := playerCenter(t, e)
	ticks := GetGameState(e).Ticks
	stepN(e, 20, cfg.ActionMoveRight)

	x, y := playerCenter(t, e)
	assert.Equal(t, x0, x)
	assert.Equal(t, y0, y)
	assert.Equal(t, ticks, GetGameState(e).Ticks)

	step(e)
	step(e, cfg.ActionPause)
	assert.False(t, GetOrCreatePause(e).IsPaused)

	stepN(e, 5, cfg.ActionMoveRight)
	x, _ = playerCenter(t, e)
	assert.Greater(t, x, x0)
}

func TestPauseMenuNavigation(t *testing.T) {
	e, _ := newTestWorld(t, 1)
	step(e, cfg.ActionPause)

	step(e, cfg.ActionMenuDown)
	assert.Equal(t, components.MenuRestart, GetOrCreatePause(e).SelectedOption)
	step(e)
	step(e, cfg.ActionMenuDown)
	step(e)
	step(e, cfg.ActionMenuDown)
	assert.Equal(t, components.MenuResume, GetOrCreatePause(e).SelectedOption, "wraps around")
	step(e)
	step(e, cfg.ActionMenuUp)
	assert.Equal(t, components.MenuExit, GetOrCreatePause(e).SelectedOption)
}

func TestPauseRestartOption(t *testing.T) {
	e, _ := newTestWorld(t, 1)
	CollectStar(e, playerEntry(t, e), stars(e)[0])

	GetOrCreatePause(e).IsPaused = true
	SelectPauseOption(e, components.MenuRestart)

	assert.Equal(t, 0, GetScore(e).Value)
	assert.False(t, GetOrCreatePause(e).IsPaused)
}

func TestPauseExitRequestsMenu(t *testing.T) {
	e, _ := newTestWorld(t, 1)
	GetOrCreatePause(e).IsPaused = true

	SelectPauseOption(e, components.MenuExit)

	assert.True(t, GetGameState(e).MenuRequested)
	assert.False(t, GetOrCreatePause(e).IsPaused)
}

func TestPauseIgnoredAfterGameOver(t *testing.T) {
	e, _ := newTestWorld(t, 1)
	HitBomb(e, playerEntry(t, e), bombs(e)[0])

	step(e, cfg.ActionPause)

	assert.False(t, GetOrCreatePause(e).IsPaused)
}
