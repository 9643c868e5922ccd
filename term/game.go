package term

import (
	"context"
	"time"

	"github.com/automoto/littlevampire/assets"
	"github.com/automoto/littlevampire/components"
	cfg "github.com/automoto/littlevampire/config"
	"github.com/automoto/littlevampire/log"
	"github.com/automoto/littlevampire/systems"
	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const tickInterval = time.Second / cfg.TPS

// Game runs the simulation in a terminal. It shares every gameplay system with
// the windowed build; only input, drawing and sound are its own.
type Game struct {
	screen   tcell.Screen
	ecs      *ecs.ECS
	keys     *Keys
	renderer *Renderer
	sound    *Sound

	shownRun uuid.UUID
}

// NewGame builds a world for level on screen. sound may be nil.
func NewGame(screen tcell.Screen, level assets.Level, seed int64, sound *Sound) *Game {
	e := ecs.NewECS(donburi.NewWorld())
	systems.NewWorld(e, level, seed)
	systems.AddSimulationSystems(e)

	log.Info("terminal game on %s: %d platforms, %d stars", level.Name, len(level.Platforms), len(level.Stars))

	return &Game{
		screen:   screen,
		ecs:      e,
		keys:     NewKeys(),
		renderer: NewRenderer(screen),
		sound:    sound,
	}
}

// ECS exposes the world for inspection.
func (g *Game) ECS() *ecs.ECS {
	return g.ecs
}

// HandleEvent applies one terminal event. It returns false when the player
// asked to quit.
func (g *Game) HandleEvent(ev tcell.Event, now time.Time) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if IsQuit(ev) {
			return false
		}
		for _, action := range Actions(ev) {
			g.keys.Press(action, now)
		}
	case *tcell.EventResize:
		g.screen.Sync()
	case nil:
		// PollEvent returns nil once the screen is finalised
		return false
	}
	return true
}

// Step advances the simulation one tick. It returns false once the run asked
// to leave; the terminal has no main menu, so leaving means quitting.
func (g *Game) Step(now time.Time) bool {
	input := systems.PushInput(g.ecs, g.keys.Snapshot(now))
	input.LastInputMethod = components.InputTerminal
	g.ecs.Update()

	if g.sound != nil {
		g.sound.Play(systems.DrainSFX(g.ecs))
	} else {
		systems.DrainSFX(g.ecs)
	}

	state := systems.GetGameState(g.ecs)
	if state == nil {
		return true
	}
	if state.MenuRequested || state.QuitRequested {
		return false
	}
	if state.Over && g.shownRun != state.RunID {
		g.shownRun = state.RunID
		g.renderer.SetRuns(systems.TopRuns(cfg.GameOver.LeaderboardTop))
	}
	return true
}

// Draw repaints the whole screen.
func (g *Game) Draw() {
	g.screen.Clear()
	g.renderer.Draw(g.ecs)
	g.screen.Show()
}

// Run polls input and ticks at the fixed rate until the player quits or ctx
// is cancelled.
func (g *Game) Run(ctx context.Context) {
	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()

	done := make(chan struct{})
	defer close(done)
	eventChan := pollEvents(g.screen.PollEvent, done)

	g.Draw()
	for {
		select {
		case <-ctx.Done():
			return

		case ev := <-eventChan:
			if !g.HandleEvent(ev, time.Now()) {
				return
			}

		case now := <-ticker.C:
			if !g.Step(now) {
				return
			}
			g.Draw()
		}
	}
}

// pollEvents forwards events from poll until done is closed or poll returns
// nil, which is how a finalised screen reports itself. The returned channel is
// closed when forwarding stops.
func pollEvents(poll func() tcell.Event, done <-chan struct{}) <-chan tcell.Event {
	eventChan := make(chan tcell.Event, 100)
	go func() {
		defer close(eventChan)
		for {
			ev := poll()
			select {
			case eventChan <- ev:
			case <-done:
				return
			}
			if ev == nil {
				return
			}
		}
	}()
	return eventChan
}
