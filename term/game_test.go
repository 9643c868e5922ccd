package term

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/automoto/littlevampire/assets"
	"github.com/automoto/littlevampire/components"
	"github.com/automoto/littlevampire/leaderboard"
	"github.com/automoto/littlevampire/systems"
	"github.com/automoto/littlevampire/tags"
	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGame(t *testing.T) (*Game, tcell.SimulationScreen) {
	t.Helper()

	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(100, 40)
	t.Cleanup(screen.Fini)

	level, err := assets.NewLevelLoader().LoadLevel(assets.DefaultLevel)
	require.NoError(t, err)
	systems.SetLeaderboard(leaderboard.NewMemoryRepository())

	return NewGame(screen, level, 7, nil), screen
}

func key(k tcell.Key, r rune) *tcell.EventKey {
	return tcell.NewEventKey(k, r, tcell.ModNone)
}

func TestGameQuitKeys(t *testing.T) {
	g, _ := newTestGame(t)
	now := time.Now()

	assert.True(t, g.HandleEvent(key(tcell.KeyRune, 'd'), now))
	assert.False(t, g.HandleEvent(key(tcell.KeyRune, 'q'), now))
	assert.False(t, g.HandleEvent(tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), now))
	assert.False(t, g.HandleEvent(nil, now))
}

func TestGameHeldKeyMovesPlayer(t *testing.T) {
	g, _ := newTestGame(t)
	player, ok := tags.Player.First(g.ECS().World)
	require.True(t, ok)
	startX, _ := components.Object.Get(player).Center()

	now := time.Now()
	g.HandleEvent(key(tcell.KeyRight, 0), now)
	for i := 0; i < 10; i++ {
		now = now.Add(tickInterval)
		require.True(t, g.Step(now))
	}

	x, _ := components.Object.Get(player).Center()
	assert.Greater(t, x, startX)
}

func TestGamePauseTogglesOnce(t *testing.T) {
	g, _ := newTestGame(t)
	now := time.Now()

	g.HandleEvent(key(tcell.KeyEscape, 0), now)
	g.Step(now)
	g.Step(now.Add(tickInterval))

	assert.True(t, systems.GetOrCreatePause(g.ECS()).IsPaused)
}

func TestGameOverLoadsRunsAndMenuQuits(t *testing.T) {
	g, _ := newTestGame(t)
	e := g.ECS()
	player, ok := tags.Player.First(e.World)
	require.True(t, ok)
	bomb, ok := tags.Bomb.First(e.World)
	require.True(t, ok)

	systems.HitBomb(e, player, bomb)
	require.True(t, g.Step(time.Now()))
	require.Len(t, g.renderer.runs, 1)
	assert.Equal(t, systems.GetGameState(e).RunID, g.renderer.runs[0].ID)

	assert.NotPanics(t, g.Draw)

	systems.SelectGameOverOption(e, components.GameOverMenu)
	assert.False(t, g.Step(time.Now()))
}

func TestGameResizeSyncs(t *testing.T) {
	g, screen := newTestGame(t)
	screen.SetSize(60, 20)

	assert.True(t, g.HandleEvent(tcell.NewEventResize(60, 20), time.Now()))
	assert.NotPanics(t, g.Draw)
}

func TestPollEventsStopsWhenDone(t *testing.T) {
	var polls atomic.Int64
	poll := func() tcell.Event {
		polls.Add(1)
		return key(tcell.KeyRune, 'd')
	}

	done := make(chan struct{})
	events := pollEvents(poll, done)

	// Nobody reads, so the buffer fills and the poller waits to send
	require.Eventually(t, func() bool { return polls.Load() > 100 }, time.Second, time.Millisecond)
	close(done)

	deadline := time.After(2 * time.Second)
	for {
		select {
		case _, ok := <-events:
			if !ok {
				return
			}
		case <-deadline:
			t.Fatal("poller still running after done was closed")
		}
	}
}

func TestPollEventsEndsOnNilEvent(t *testing.T) {
	events := pollEvents(func() tcell.Event { return nil }, make(chan struct{}))

	ev, ok := <-events
	require.True(t, ok)
	assert.Nil(t, ev)
	_, ok = <-events
	assert.False(t, ok)
}
