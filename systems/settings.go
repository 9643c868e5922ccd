package systems

import (
	"github.com/automoto/littlevampire/components"
	cfg "github.com/automoto/littlevampire/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSettings handles the global hotkeys: mute and the debug overlay.
// Runs even while paused.
func UpdateSettings(e *ecs.ECS) {
	input := GetOrCreateInput(e)

	if GetAction(input, cfg.ActionMute).JustPressed {
		ToggleMute(e)
	}
	if GetAction(input, cfg.ActionDebug).JustPressed {
		settings := GetOrCreateSettings(e)
		settings.Debug = !settings.Debug
	}
}

// ToggleMute flips mute, applies it and saves it.
func ToggleMute(e *ecs.ECS) {
	settings := GetOrCreateSettings(e)
	settings.Muted = !settings.Muted
	if settings.Muted {
		settings.PreMuteSFXVol = settings.SFXVolume
	} else if settings.SFXVolume == 0 {
		settings.SFXVolume = settings.PreMuteSFXVol
	}

	SetMuted(settings.Muted)
	SetSFXVolume(settings.SFXVolume)
	SaveCurrentSettings(settings)
}

// CycleVolume steps the SFX volume through the configured levels.
func CycleVolume(e *ecs.ECS) {
	settings := GetOrCreateSettings(e)
	steps := cfg.Settings.VolumeSteps
	next := steps[0]
	for i, v := range steps {
		if v > settings.SFXVolume+1e-9 {
			next = steps[i]
			break
		}
	}
	settings.SFXVolume = next
	SetSFXVolume(next)
	SaveCurrentSettings(settings)
}

// SaveCurrentSettings persists the settings component
func SaveCurrentSettings(s *components.SettingsData) {
	_ = SaveSettings(&SavedSettings{
		SFXVolume: s.SFXVolume,
		Muted:     s.Muted,
	})
}

// GetOrCreateSettings returns the singleton Settings component, seeded from
// the global audio state.
func GetOrCreateSettings(e *ecs.ECS) *components.SettingsData {
	if _, ok := components.Settings.First(e.World); !ok {
		ent := e.World.Entry(e.World.Create(components.Settings))
		components.Settings.SetValue(ent, components.SettingsData{
			SFXVolume:     GetSFXVolume(),
			Muted:         IsMuted(),
			PreMuteSFXVol: GetSFXVolume(),
			Debug:         cfg.Debug.ShowHitboxes,
		})
	}

	ent, _ := components.Settings.First(e.World)
	return components.Settings.Get(ent)
}
