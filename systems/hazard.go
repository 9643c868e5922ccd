package systems

import (
	"github.com/automoto/littlevampire/components"
	cfg "github.com/automoto/littlevampire/config"
	"github.com/automoto/littlevampire/log"
	"github.com/automoto/littlevampire/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateHazards ends the run when the player touches a bomb. Touching counts,
// so a bomb resting against the player's side is a hit.
func UpdateHazards(ecs *ecs.ECS) {
	if IsGameOver(ecs) {
		return
	}
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	playerObj := components.Object.Get(playerEntry)

	var hit *donburi.Entry
	tags.Bomb.Each(ecs.World, func(e *donburi.Entry) {
		if hit != nil {
			return
		}
		o := components.Object.Get(e)
		if touches(playerObj.X, playerObj.Y, playerObj.W, playerObj.H, o.X, o.Y, o.W, o.H) {
			hit = e
		}
	})
	if hit != nil {
		HitBomb(ecs, playerEntry, hit)
	}
}

// touches is an inclusive AABB test; shared edges count.
func touches(ax, ay, aw, ah, bx, by, bw, bh float64) bool {
	return ax <= bx+bw && ax+aw >= bx && ay <= by+bh && ay+ah >= by
}

// HitBomb freezes the simulation, tints the player and ends the run. The run
// is recorded once; later hits before a restart are ignored.
func HitBomb(ecs *ecs.ECS, playerEntry, bombEntry *donburi.Entry) {
	state := GetGameState(ecs)
	if state == nil || state.Over {
		return
	}

	state.PhysicsPaused = true
	state.Over = true

	tint := cfg.Player.HitTint
	components.Player.Get(playerEntry).Tint = &tint

	TriggerScreenShake(ecs, cfg.ScreenShake.BombIntensity, cfg.ScreenShake.BombDuration)
	TriggerFlash(ecs, cfg.Flash.HitFrames, 1, 0.2, 0.2)
	PlaySFX(ecs, cfg.SoundExplode)

	score := GetScore(ecs)
	if score.Value > score.High {
		score.High = score.Value
		SaveHighScore(score.High)
	}

	bombWave := 0
	if bombEntry != nil && bombEntry.HasComponent(components.Bomb) {
		bombWave = components.Bomb.Get(bombEntry).Wave
	}
	log.ForRun(state.RunID).Info("game over: score %d, wave %d, %d ticks, hit by bomb from wave %d", score.Value, score.Wave, state.Ticks, bombWave)
	RecordRun(ecs)
}
