package systems

import (
	"github.com/automoto/littlevampire/components"
	cfg "github.com/automoto/littlevampire/config"
	"github.com/automoto/littlevampire/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayer turns held actions into velocity. Horizontal speed is set
// outright each frame; a jump needs the body to be standing on a platform.
func UpdatePlayer(ecs *ecs.ECS) {
	if IsGameOver(ecs) {
		return
	}
	input := GetOrCreateInput(ecs)

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		player := components.Player.Get(e)
		physics := components.Physics.Get(e)
		sprite := components.Sprite.Get(e)

		switch {
		case GetAction(input, cfg.ActionMoveLeft).Pressed:
			physics.SpeedX = -cfg.Player.RunSpeed
			player.Direction.X = cfg.DirectionLeft
		case GetAction(input, cfg.ActionMoveRight).Pressed:
			physics.SpeedX = cfg.Player.RunSpeed
			player.Direction.X = cfg.DirectionRight
		default:
			physics.SpeedX = 0
		}
		// The texture faces right
		sprite.FlipX = player.Direction.X < 0

		if GetAction(input, cfg.ActionJump).Pressed && physics.OnGround != nil {
			physics.SpeedY = -cfg.Player.JumpSpeed
			physics.OnGround = nil
			player.JumpCount++
			PlaySFX(ecs, cfg.SoundJump)
		}
	})
}
