package systems

import (
	"sync"

	"github.com/automoto/littlevampire/assets"
	"github.com/automoto/littlevampire/components"
	cfg "github.com/automoto/littlevampire/config"
	"github.com/automoto/littlevampire/log"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi/ecs"
)

// Global audio state, created once and shared across all scenes
var (
	globalAudioContext *audio.Context
	globalSFXLoader    *assets.SFXLoader
	globalSFXVolume    float64 = cfg.Audio.DefaultSFXVol
	globalMuted        bool
	audioInitOnce      sync.Once
)

// initGlobalAudio opens the ebiten audio context (called once)
func initGlobalAudio() {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
		globalSFXLoader = assets.NewSFXLoader(globalAudioContext)
	})
}

// PreloadAllSFX synthesises every sound at startup to avoid a hitch on first play.
func PreloadAllSFX() {
	initGlobalAudio()

	for id := range cfg.Sound.Recipes {
		if err := globalSFXLoader.PreloadSFX(id); err != nil {
			log.Warn("could not preload sound %d: %v", id, err)
		}
	}
}

// UpdateAudio plays the sounds queued this frame through ebiten.
func UpdateAudio(e *ecs.ECS) {
	initGlobalAudio()

	for _, soundID := range DrainSFX(e) {
		playSFX(soundID)
	}
}

func playSFX(soundID cfg.SoundID) {
	volume := EffectiveSFXVolume()
	if volume <= 0 {
		return
	}

	player, err := globalSFXLoader.LoadSFX(soundID)
	if err != nil {
		return
	}

	player.SetVolume(volume)
	player.Play()
}

// PlaySFX queues a sound effect to be played
func PlaySFX(e *ecs.ECS, sound cfg.SoundID) {
	audioData := GetOrCreateAudio(e)
	audioData.PendingSFX = append(audioData.PendingSFX, sound)
}

// DrainSFX returns and clears the queued sounds. The returned slice is only
// valid until the next PlaySFX.
func DrainSFX(e *ecs.ECS) []cfg.SoundID {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		return nil
	}
	audioData := components.Audio.Get(entry)
	pending := audioData.PendingSFX
	audioData.PendingSFX = audioData.PendingSFX[:0]
	return pending
}

// SetSFXVolume changes the SFX volume (0.0 - 1.0)
func SetSFXVolume(volume float64) {
	globalSFXVolume = volume
}

// SetMuted silences every sound without losing the volume setting
func SetMuted(muted bool) {
	globalMuted = muted
}

// GetSFXVolume returns the configured SFX volume (0.0 - 1.0)
func GetSFXVolume() float64 {
	return globalSFXVolume
}

// IsMuted reports whether sound is switched off
func IsMuted() bool {
	return globalMuted
}

// EffectiveSFXVolume is the volume sounds actually play at
func EffectiveSFXVolume() float64 {
	if globalMuted {
		return 0
	}
	return globalSFXVolume
}

// GetOrCreateAudio returns the singleton Audio component for this ECS, creating it if needed
func GetOrCreateAudio(e *ecs.ECS) *components.AudioData {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Audio))
		components.Audio.SetValue(entry, components.AudioData{
			PendingSFX: make([]cfg.SoundID, 0, 8),
		})
	}
	return components.Audio.Get(entry)
}
