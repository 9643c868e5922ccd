package systems

import (
	"testing"

	"github.com/automoto/littlevampire/components"
	cfg "github.com/automoto/littlevampire/config"
	"github.com/automoto/littlevampire/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlayerLandsOnGround(t *testing.T) {
	e, level := newTestWorld(t, 1)
	clearBombs(e)
	player := playerEntry(t, e)

	stepN(e, 180)

	physics := components.Physics.Get(player)
	require.NotNil(t, physics.OnGround)
	ground := level.Platforms[0]
	assert.Equal(t, ground.Y, physics.OnGround.Y)

	obj := components.Object.Get(player)
	assert.InDelta(t, ground.Y, obj.Y+obj.H, 1e-6)
	assert.Zero(t, physics.SpeedY)
}

func TestPlayerRunsAndFaces(t *testing.T) {
	e, _ := newTestWorld(t, 1)
	clearBombs(e)
	player := playerEntry(t, e)
	stepN(e, 180)

	x0, _ := playerCenter(t, e)
	stepN(e, 10, cfg.ActionMoveRight)
	x1, _ := playerCenter(t, e)
	assert.InDelta(t, x0+10*cfg.Player.RunSpeed, x1, 1e-6)
	assert.False(t, components.Sprite.Get(player).FlipX)

	stepN(e, 10, cfg.ActionMoveLeft)
	x2, _ := playerCenter(t, e)
	assert.InDelta(t, x0, x2, 1e-6)
	assert.True(t, components.Sprite.Get(player).FlipX)

	step(e)
	assert.Zero(t, components.Physics.Get(player).SpeedX)
}

func TestJumpNeedsGround(t *testing.T) {
	e, _ := newTestWorld(t, 1)
	clearBombs(e)
	player := playerEntry(t, e)
	stepN(e, 180)
	_, groundY := playerCenter(t, e)

	step(e, cfg.ActionJump)
	_, y := playerCenter(t, e)
	assert.Less(t, y, groundY)
	assert.Equal(t, 1, components.Player.Get(player).JumpCount)
	assert.Contains(t, GetOrCreateAudio(e).PendingSFX, cfg.SoundJump)

	// Holding jump in mid air does nothing more
	stepN(e, 5, cfg.ActionJump)
	assert.Equal(t, 1, components.Player.Get(player).JumpCount)
}

func TestPlayerStaysInsideWorld(t *testing.T) {
	e, _ := newTestWorld(t, 1)
	clearBombs(e)
	stepN(e, 600, cfg.ActionMoveLeft)

	obj := components.Object.Get(playerEntry(t, e))
	assert.GreaterOrEqual(t, obj.X, 0.0)
}

func TestBombKeepsBouncing(t *testing.T) {
	e, _ := newTestWorld(t, 1)
	clearBombs(e)
	bomb := factory.CreateBomb(e, 700, 100, 0, 2, 0)

	var bounces int
	prev := components.Physics.Get(bomb).SpeedY
	for i := 0; i < 600; i++ {
		step(e)
		if IsGameOver(e) {
			t.Fatal("bomb reached the player")
		}
		v := components.Physics.Get(bomb).SpeedY
		if v != prev && v*prev < 0 {
			bounces++
		}
		prev = v
	}

	assert.Greater(t, bounces, 2)
	assert.NotZero(t, components.Physics.Get(bomb).Gravity)
}

func TestStarsSettleOnPlatforms(t *testing.T) {
	e, level := newTestWorld(t, 1)
	clearBombs(e)
	stepN(e, 1500)

	for _, s := range stars(e) {
		if !components.Star.Get(s).Active {
			// Caught by the idle player on the way down
			continue
		}
		obj := components.Object.Get(s)
		bottom := obj.Y + obj.H
		onSurface := bottom >= float64(level.Height)-1e-6
		for _, p := range level.Platforms {
			if obj.X+obj.W > p.X && obj.X < p.X+p.Width && abs(bottom-p.Y) < 1e-6 {
				onSurface = true
			}
		}
		assert.True(t, onSurface, "star %d rests at y=%v", components.Star.Get(s).Index, bottom)
		assert.Zero(t, components.Physics.Get(s).SpeedY)
	}
}

func TestRebound(t *testing.T) {
	assert.InDelta(t, -5, rebound(5, 1), 1e-9)
	assert.InDelta(t, 0.1, rebound(-0.1, 1), 1e-9, "a full bounce never settles")
	assert.Zero(t, rebound(0.5, 0.2))
	assert.InDelta(t, -2, rebound(10, 0.2), 1e-9)
}

func TestOverlaps(t *testing.T) {
	assert.True(t, Overlaps(0, 0, 10, 10, 5, 5, 10, 10))
	assert.False(t, Overlaps(0, 0, 10, 10, 10, 0, 10, 10), "shared edge")
	assert.False(t, Overlaps(0, 0, 10, 10, 30, 30, 5, 5))
	assert.True(t, touches(0, 0, 10, 10, 10, 0, 10, 10))
}

func TestSeedIsDeterministic(t *testing.T) {
	a, _ := newTestWorld(t, 42)
	b, _ := newTestWorld(t, 42)

	sa, sb := stars(a), stars(b)
	require.Len(t, sb, len(sa))
	for i := range sa {
		assert.Equal(t, components.Physics.Get(sa[i]).BounceY, components.Physics.Get(sb[i]).BounceY)
	}
	assert.Equal(t, components.Physics.Get(bombs(a)[0]).SpeedX, components.Physics.Get(bombs(b)[0]).SpeedX)
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
