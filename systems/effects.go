package systems

import (
	"github.com/automoto/littlevampire/components"
	cfg "github.com/automoto/littlevampire/config"
	"github.com/automoto/littlevampire/systems/factory"
	"github.com/automoto/littlevampire/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const tickSeconds = float32(1) / cfg.TPS

// UpdateEffects advances the cosmetic timers: star twinkle, screen shake and
// the hit flash. None of them affect gameplay.
func UpdateEffects(ecs *ecs.ECS) {
	updateTwinkle(ecs)
	updateScreenShake(ecs)
	updateFlash(ecs)
}

// updateTwinkle runs each active star's pulse, flipping direction at the end
// of every half cycle.
func updateTwinkle(ecs *ecs.ECS) {
	tags.Star.Each(ecs.World, func(e *donburi.Entry) {
		star := components.Star.Get(e)
		if !star.Active || star.Twinkle == nil {
			return
		}

		scale, done := star.Twinkle.Update(tickSeconds)
		star.Scale = float64(scale)
		if done {
			star.Shrinking = !star.Shrinking
			star.Twinkle = factory.TwinkleHalf(star.Shrinking)
		}

		sprite := components.Sprite.Get(e)
		sprite.ScaleX, sprite.ScaleY = star.Scale, star.Scale
	})
}

func updateFlash(ecs *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok || !cameraEntry.HasComponent(components.Flash) {
		return
	}

	flash := components.Flash.Get(cameraEntry)
	flash.Duration--
	if flash.Duration <= 0 {
		cameraEntry.RemoveComponent(components.Flash)
	}
}

// TriggerFlash tints the whole screen for frames ticks, fading out.
func TriggerFlash(ecs *ecs.ECS, frames int, r, g, b float32) {
	if frames <= 0 {
		return
	}
	cameraEntry := getOrCreateCameraEntry(ecs)

	if !cameraEntry.HasComponent(components.Flash) {
		cameraEntry.AddComponent(components.Flash)
	}
	components.Flash.SetValue(cameraEntry, components.FlashData{
		Duration: frames,
		Total:    frames,
		R:        r,
		G:        g,
		B:        b,
	})
}

// FlashAlpha returns the current flash strength in [0, 1] and its colour.
func FlashAlpha(ecs *ecs.ECS) (alpha, r, g, b float32) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok || !cameraEntry.HasComponent(components.Flash) {
		return 0, 0, 0, 0
	}
	flash := components.Flash.Get(cameraEntry)
	if flash.Total <= 0 {
		return 0, 0, 0, 0
	}
	return float32(flash.Duration) / float32(flash.Total), flash.R, flash.G, flash.B
}
