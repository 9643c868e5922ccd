package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/littlevampire/components"
	"github.com/automoto/littlevampire/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug outlines every object in the collision space and prints the
// frame rate and run counters. Toggled with F3.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(ecs)
	if !settings.Debug {
		return
	}

	camera := GetOrCreateCamera(ecs)
	spaceEntry, ok := components.Space.First(ecs.World)
	if ok {
		space := components.Space.Get(spaceEntry)
		for _, obj := range space.Objects() {
			x := obj.X + camera.OffsetX
			y := obj.Y + camera.OffsetY

			c := color.RGBA{0, 255, 255, 255}
			if obj.HasTags(tags.ResolvSolid) {
				c = color.RGBA{100, 100, 100, 255}
			} else if obj.HasTags(tags.ResolvPlayer) {
				c = color.RGBA{0, 0, 255, 255}
			} else if obj.HasTags(tags.ResolvBomb) {
				c = color.RGBA{255, 0, 0, 255}
			} else if obj.HasTags(tags.ResolvStar) {
				c = color.RGBA{255, 255, 0, 255}
			}

			vector.StrokeRect(screen, float32(x), float32(y), float32(obj.W), float32(obj.H), 1, c, false)
		}
	}

	info := fmt.Sprintf("FPS %.0f  TPS %.0f", ebiten.ActualFPS(), ebiten.ActualTPS())
	if state := GetGameState(ecs); state != nil {
		info += fmt.Sprintf("\nticks %d  stars %d", state.Ticks, CountActiveStars(ecs))
		if playerEntry, ok := tags.Player.First(ecs.World); ok {
			physics := components.Physics.Get(playerEntry)
			info += fmt.Sprintf("\nv (%.2f, %.2f) grounded %t", physics.SpeedX, physics.SpeedY, physics.OnGround != nil)
		}
	}
	ebitenutil.DebugPrintAt(screen, info, 16, 64)
}
