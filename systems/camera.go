package systems

import (
	"math"

	"github.com/automoto/littlevampire/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// updateScreenShake recomputes the camera offset from the active shake and
// drops the shake once it has run its course.
func updateScreenShake(ecs *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	camera.OffsetX, camera.OffsetY = 0, 0

	if !cameraEntry.HasComponent(components.ScreenShake) {
		return
	}

	shake := components.ScreenShake.Get(cameraEntry)
	shake.Elapsed++

	progress := float64(shake.Duration-shake.Elapsed) / float64(shake.Duration)
	if progress < 0 {
		progress = 0
	}
	intensity := shake.Intensity * progress

	camera.OffsetX = math.Sin(float64(shake.Elapsed)*1.1) * intensity
	camera.OffsetY = math.Cos(float64(shake.Elapsed)*1.3) * intensity

	if shake.Elapsed >= shake.Duration {
		cameraEntry.RemoveComponent(components.ScreenShake)
	}
}

// TriggerScreenShake starts a shake, keeping the current one if it is stronger.
func TriggerScreenShake(ecs *ecs.ECS, intensity float64, duration int) {
	if duration <= 0 {
		return
	}
	cameraEntry := getOrCreateCameraEntry(ecs)

	if cameraEntry.HasComponent(components.ScreenShake) {
		shake := components.ScreenShake.Get(cameraEntry)
		if intensity > shake.Intensity {
			shake.Intensity = intensity
			shake.Duration = duration
			shake.Elapsed = 0
		}
		return
	}

	cameraEntry.AddComponent(components.ScreenShake)
	components.ScreenShake.SetValue(cameraEntry, components.ScreenShakeData{
		Intensity: intensity,
		Duration:  duration,
	})
}

// GetOrCreateCamera returns the singleton camera.
func GetOrCreateCamera(ecs *ecs.ECS) *components.CameraData {
	return components.Camera.Get(getOrCreateCameraEntry(ecs))
}

// ResetCamera clears any running shake or flash.
func ResetCamera(ecs *ecs.ECS) {
	cameraEntry := getOrCreateCameraEntry(ecs)
	if cameraEntry.HasComponent(components.ScreenShake) {
		cameraEntry.RemoveComponent(components.ScreenShake)
	}
	if cameraEntry.HasComponent(components.Flash) {
		cameraEntry.RemoveComponent(components.Flash)
	}
	components.Camera.SetValue(cameraEntry, components.CameraData{})
}

func getOrCreateCameraEntry(ecs *ecs.ECS) *donburi.Entry {
	if entry, ok := components.Camera.First(ecs.World); ok {
		return entry
	}
	return ecs.World.Entry(ecs.World.Create(components.Camera))
}
