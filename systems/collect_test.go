package systems

import (
	"math"
	"math/rand"
	"testing"

	"github.com/automoto/littlevampire/components"
	cfg "github.com/automoto/littlevampire/config"
	"github.com/automoto/littlevampire/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectStarScoresTenPoints(t *testing.T) {
	e, _ := newTestWorld(t, 1)
	player := playerEntry(t, e)
	all := stars(e)
	require.Len(t, all, cfg.Star.Count)

	CollectStar(e, player, all[0])

	score := GetScore(e)
	assert.Equal(t, 10, score.Value)
	assert.Equal(t, "Score: 10", score.Text)
	assert.Equal(t, 1, score.StarsCollected)
	assert.Equal(t, cfg.Star.Count-1, CountActiveStars(e))

	star := components.Star.Get(all[0])
	assert.False(t, star.Active)
	assert.True(t, components.Sprite.Get(all[0]).Hidden)
	assert.Nil(t, components.Object.Get(all[0]).Space, "collected star leaves the collision space")
	assert.Contains(t, GetOrCreateAudio(e).PendingSFX, cfg.SoundCollect)
}

func TestCollectStarIgnoresInactiveStar(t *testing.T) {
	e, _ := newTestWorld(t, 1)
	player := playerEntry(t, e)
	star := stars(e)[3]

	CollectStar(e, player, star)
	CollectStar(e, player, star)

	assert.Equal(t, 10, GetScore(e).Value)
}

func TestLastStarStartsNewWave(t *testing.T) {
	e, level := newTestWorld(t, 7)
	player := playerEntry(t, e)
	all := stars(e)
	initialBombs := len(level.BombSpawns)
	require.Len(t, bombs(e), initialBombs)

	for _, s := range all[:len(all)-1] {
		CollectStar(e, player, s)
	}
	assert.Len(t, bombs(e), initialBombs, "no bomb until the wave is cleared")
	assert.Equal(t, 0, GetScore(e).Wave)

	CollectStar(e, player, all[len(all)-1])

	score := GetScore(e)
	assert.Equal(t, cfg.Star.Count*cfg.Star.Points, score.Value)
	assert.Equal(t, 1, score.Wave)
	assert.Equal(t, cfg.Star.Count, CountActiveStars(e))

	for _, s := range all {
		star := components.Star.Get(s)
		cx, cy := components.Object.Get(s).Center()
		assert.InDelta(t, star.HomeX, cx, 1e-9, "star %d keeps its column", star.Index)
		assert.InDelta(t, cfg.Star.SpawnY, cy, 1e-9)
		assert.False(t, components.Sprite.Get(s).Hidden)
		assert.NotNil(t, components.Object.Get(s).Space)

		bounce := components.Physics.Get(s).BounceY
		assert.GreaterOrEqual(t, bounce, cfg.Star.BounceMin)
		assert.LessOrEqual(t, bounce, cfg.Star.BounceMax)
	}

	all = bombs(e)
	require.Len(t, all, initialBombs+1)

	var spawned *components.BombData
	var spawnedX, spawnedY float64
	for _, b := range all {
		if components.Bomb.Get(b).Wave == 1 {
			spawned = components.Bomb.Get(b)
			spawnedX, spawnedY = components.Object.Get(b).Center()

			physics := components.Physics.Get(b)
			assert.Equal(t, cfg.Physics.Gravity, physics.Gravity)
			assert.True(t, physics.CollideWorldBounds)
			assert.Equal(t, cfg.Bomb.Bounce, physics.BounceY)
			pxPerSecond := physics.SpeedX * cfg.TPS
			assert.InDelta(t, math.Round(pxPerSecond), pxPerSecond, 1e-9, "whole px/s")
			assert.GreaterOrEqual(t, pxPerSecond, float64(cfg.Bomb.MinSpeedX)-1e-9)
			assert.LessOrEqual(t, pxPerSecond, float64(cfg.Bomb.MaxSpeedX)+1e-9)
			assert.Equal(t, cfg.Bomb.InitialSpeedY, physics.SpeedY)
		}
	}
	require.NotNil(t, spawned)

	playerX, _ := playerCenter(t, e)
	require.Less(t, playerX, float64(cfg.Bomb.SplitX))
	assert.GreaterOrEqual(t, spawnedX, float64(cfg.Bomb.SplitX), "bomb spawns on the far half")
	assert.LessOrEqual(t, spawnedX, float64(cfg.C.Width))
	assert.Equal(t, cfg.Bomb.SpawnY, spawnedY)

	pending := GetOrCreateAudio(e).PendingSFX
	assert.Contains(t, pending, cfg.SoundWaveClear)
	assert.Contains(t, pending, cfg.SoundBombSpawn)
}

func TestBombSpawnX(t *testing.T) {
	tests := []struct {
		name    string
		playerX float64
		lo, hi  float64
	}{
		{name: "player on the left", playerX: 100, lo: 400, hi: 800},
		{name: "player just left of the split", playerX: 399.5, lo: 400, hi: 800},
		{name: "player on the split", playerX: 400, lo: 0, hi: 400},
		{name: "player on the right", playerX: 700, lo: 0, hi: 400},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rng := rand.New(rand.NewSource(5))
			seen := map[float64]bool{}
			for i := 0; i < 20000; i++ {
				x := BombSpawnX(tt.playerX, rng)
				require.GreaterOrEqual(t, x, tt.lo)
				require.LessOrEqual(t, x, tt.hi)
				require.Equal(t, math.Trunc(x), x, "whole pixels")
				seen[x] = true
			}
			assert.True(t, seen[tt.lo], "low end reachable")
			assert.True(t, seen[tt.hi], "high end reachable")
		})
	}
}

func TestBombFallsAndReturnsToReleaseHeight(t *testing.T) {
	e, _ := newTestWorld(t, 1)
	clearBombs(e)
	// Between the left and right ledges, so the first surface is the ground
	bomb := factory.CreateBomb(e, 320, cfg.Bomb.SpawnY, 0, cfg.Bomb.InitialSpeedY, 1)
	physics := components.Physics.Get(bomb)

	bounced := false
	for i := 0; i < 1000 && !bounced; i++ {
		step(e)
		bounced = physics.SpeedY < 0
	}
	require.True(t, bounced, "bomb reached the floor")
	_, floorY := components.Object.Get(bomb).Center()
	assert.Greater(t, floorY, 400.0)

	apex := floorY
	for i := 0; i < 1000 && physics.SpeedY < 0; i++ {
		step(e)
		_, y := components.Object.Get(bomb).Center()
		apex = math.Min(apex, y)
	}
	require.False(t, IsGameOver(e))
	assert.InDelta(t, cfg.Bomb.SpawnY, apex, 1.5, "full bounce climbs back to the release height")
}

func TestUpdateCollectPicksUpOverlappingStar(t *testing.T) {
	e, _ := newTestWorld(t, 1)
	player := playerEntry(t, e)
	target := stars(e)[5]

	sx, sy := components.Object.Get(target).Center()
	components.Object.Get(player).SetCenter(sx, sy)

	UpdateCollect(e)

	assert.False(t, components.Star.Get(target).Active)
	assert.Equal(t, 10, GetScore(e).Value)
}
