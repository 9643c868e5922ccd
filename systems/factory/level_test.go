package factory

import (
	"math/rand"
	"testing"

	"github.com/automoto/littlevampire/assets"
	"github.com/automoto/littlevampire/components"
	cfg "github.com/automoto/littlevampire/config"
	"github.com/automoto/littlevampire/tags"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func newWorld(t *testing.T, seed int64) (*ecs.ECS, assets.Level) {
	t.Helper()
	level, err := assets.NewLevelLoader().LoadLevel(assets.DefaultLevel)
	require.NoError(t, err)

	e := ecs.NewECS(donburi.NewWorld())
	CreateWorld(e, level, seed)
	return e, level
}

func TestCreateWorldPopulatesLevel(t *testing.T) {
	e, level := newWorld(t, 9)

	platforms := 0
	tags.Platform.Each(e.World, func(p *donburi.Entry) {
		platforms++
		obj := components.Object.Get(p)
		assert.True(t, obj.HasTags(tags.ResolvSolid))
		assert.NotNil(t, obj.Space)
	})
	assert.Equal(t, len(level.Platforms), platforms)

	starCount := 0
	tags.Star.Each(e.World, func(s *donburi.Entry) {
		starCount++
		star := components.Star.Get(s)
		assert.True(t, star.Active)
		assert.Equal(t, 1.0, star.Scale)
		assert.NotNil(t, star.Twinkle)
	})
	assert.Equal(t, cfg.Star.Count, starCount)

	bombCount := 0
	tags.Bomb.Each(e.World, func(b *donburi.Entry) {
		bombCount++
		obj := components.Object.Get(b)
		size := float64(cfg.Bomb.BaseSize) * cfg.Bomb.Scale
		assert.Equal(t, size, obj.W)
		assert.Equal(t, size, obj.H)
	})
	assert.Equal(t, len(level.BombSpawns), bombCount)

	player, ok := tags.Player.First(e.World)
	require.True(t, ok)
	cx, cy := components.Object.Get(player).Center()
	assert.Equal(t, level.PlayerSpawn.X, cx)
	assert.Equal(t, level.PlayerSpawn.Y, cy)
	assert.True(t, components.Physics.Get(player).CollideWorldBounds)
}

func TestCreateSessionSeeds(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	CreateSession(e, 1234)

	entry, ok := components.Random.First(e.World)
	require.True(t, ok)
	assert.Equal(t, int64(1234), components.Random.Get(entry).Seed)

	score, ok := components.Score.First(e.World)
	require.True(t, ok)
	assert.Equal(t, "Score: 0", components.Score.Get(score).Text)

	state, ok := components.GameState.First(e.World)
	require.True(t, ok)
	assert.NotEqual(t, uuid.Nil, components.GameState.Get(state).RunID)
}

func TestCreateSessionClockSeed(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	CreateSession(e, 0)

	entry, _ := components.Random.First(e.World)
	assert.NotZero(t, components.Random.Get(entry).Seed)
}

func TestMustRandomPanicsWithoutSession(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	assert.Panics(t, func() { MustRandom(e) })
}

func TestTwinklePhaseShift(t *testing.T) {
	a, _ := NewTwinkle(0).Update(0)
	b, _ := NewTwinkle(1).Update(0)
	assert.Equal(t, float32(1), a)
	assert.Greater(t, b, a)

	start, _ := TwinkleHalf(true).Update(0)
	assert.InDelta(t, cfg.Star.TwinkleScale, start, 1e-6)
}

func TestIntBetweenIncludesBothEnds(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	seen := map[int]bool{}
	for i := 0; i < 2000; i++ {
		v := IntBetween(rng, -2, 2)
		assert.GreaterOrEqual(t, v, -2)
		assert.LessOrEqual(t, v, 2)
		seen[v] = true
	}
	assert.Len(t, seen, 5)
}
