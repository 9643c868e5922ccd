package systems

import (
	"testing"

	"github.com/automoto/littlevampire/assets"
	"github.com/automoto/littlevampire/components"
	cfg "github.com/automoto/littlevampire/config"
	"github.com/automoto/littlevampire/leaderboard"
	"github.com/automoto/littlevampire/tags"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// newTestWorld builds the default level headlessly with the simulation
// systems registered.
func newTestWorld(t *testing.T, seed int64) (*ecs.ECS, assets.Level) {
	t.Helper()

	level, err := assets.NewLevelLoader().LoadLevel(assets.DefaultLevel)
	require.NoError(t, err)

	SetLeaderboard(leaderboard.NewMemoryRepository())

	e := ecs.NewECS(donburi.NewWorld())
	NewWorld(e, level, seed)
	AddSimulationSystems(e)
	return e, level
}

// step pushes one frame of input and runs every system once.
func step(e *ecs.ECS, actions ...cfg.ActionID) {
	var pressed [cfg.ActionCount]bool
	for _, a := range actions {
		pressed[a] = true
	}
	PushInput(e, pressed)
	e.Update()
}

func stepN(e *ecs.ECS, n int, actions ...cfg.ActionID) {
	for i := 0; i < n; i++ {
		step(e, actions...)
	}
}

func playerEntry(t *testing.T, e *ecs.ECS) *donburi.Entry {
	t.Helper()
	entry, ok := tags.Player.First(e.World)
	require.True(t, ok)
	return entry
}

func stars(e *ecs.ECS) []*donburi.Entry {
	var out []*donburi.Entry
	tags.Star.Each(e.World, func(s *donburi.Entry) {
		out = append(out, s)
	})
	return out
}

func bombs(e *ecs.ECS) []*donburi.Entry {
	var out []*donburi.Entry
	tags.Bomb.Each(e.World, func(b *donburi.Entry) {
		out = append(out, b)
	})
	return out
}

func clearBombs(e *ecs.ECS) {
	removeBombs(e)
}

func playerCenter(t *testing.T, e *ecs.ECS) (float64, float64) {
	t.Helper()
	return components.Object.Get(playerEntry(t, e)).Center()
}
