package systems

import (
	"testing"

	cfg "github.com/automoto/littlevampire/config"
	"github.com/stretchr/testify/assert"
)

func TestToggleMute(t *testing.T) {
	e, _ := newTestWorld(t, 1)
	SetMuted(false)
	SetSFXVolume(cfg.Audio.DefaultSFXVol)
	t.Cleanup(func() {
		SetMuted(false)
		SetSFXVolume(cfg.Audio.DefaultSFXVol)
	})

	settings := GetOrCreateSettings(e)
	assert.False(t, settings.Muted)

	step(e, cfg.ActionMute)
	assert.True(t, settings.Muted)
	assert.True(t, IsMuted())
	assert.Zero(t, EffectiveSFXVolume())

	step(e)
	step(e, cfg.ActionMute)
	assert.False(t, IsMuted())
	assert.InDelta(t, cfg.Audio.DefaultSFXVol, EffectiveSFXVolume(), 1e-9)
}

func TestCycleVolumeWraps(t *testing.T) {
	e, _ := newTestWorld(t, 1)
	t.Cleanup(func() { SetSFXVolume(cfg.Audio.DefaultSFXVol) })

	settings := GetOrCreateSettings(e)
	settings.SFXVolume = 0.5

	CycleVolume(e)
	assert.InDelta(t, 0.75, settings.SFXVolume, 1e-9)
	CycleVolume(e)
	CycleVolume(e)
	assert.InDelta(t, 0, settings.SFXVolume, 1e-9)
	assert.InDelta(t, 0, GetSFXVolume(), 1e-9)
}

func TestDebugToggle(t *testing.T) {
	e, _ := newTestWorld(t, 1)
	settings := GetOrCreateSettings(e)
	before := settings.Debug

	step(e, cfg.ActionDebug)

	assert.Equal(t, !before, settings.Debug)
}

func TestDrainSFX(t *testing.T) {
	e, _ := newTestWorld(t, 1)
	PlaySFX(e, cfg.SoundJump)
	PlaySFX(e, cfg.SoundCollect)

	assert.Equal(t, []cfg.SoundID{cfg.SoundJump, cfg.SoundCollect}, DrainSFX(e))
	assert.Empty(t, DrainSFX(e))
}
