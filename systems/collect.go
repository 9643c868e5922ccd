package systems

import (
	"math/rand"

	"github.com/automoto/littlevampire/components"
	cfg "github.com/automoto/littlevampire/config"
	"github.com/automoto/littlevampire/log"
	"github.com/automoto/littlevampire/systems/factory"
	"github.com/automoto/littlevampire/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCollect hands every active star the player overlaps to CollectStar.
func UpdateCollect(ecs *ecs.ECS) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	playerObj := components.Object.Get(playerEntry)

	check := playerObj.Check(0, 0, tags.ResolvStar)
	if check == nil {
		return
	}

	var touched []*donburi.Entry
	for _, o := range check.ObjectsByTags(tags.ResolvStar) {
		star, ok := o.Data.(*donburi.Entry)
		if !ok || !star.Valid() || !components.Star.Get(star).Active {
			continue
		}
		if overlapsAt(playerObj.Object, o, 0, 0) {
			touched = append(touched, star)
		}
	}

	for _, star := range touched {
		CollectStar(ecs, playerEntry, star)
	}
}

// CollectStar disables a star and scores it. Clearing the last active star
// starts a new wave: every star drops in again and one more bomb is released
// on the side of the screen away from the player.
func CollectStar(ecs *ecs.ECS, playerEntry, starEntry *donburi.Entry) {
	star := components.Star.Get(starEntry)
	if !star.Active {
		return
	}
	disableStar(starEntry)

	score := GetScore(ecs)
	score.Value += cfg.Star.Points
	score.StarsCollected++
	score.Refresh()
	PlaySFX(ecs, cfg.SoundCollect)

	if CountActiveStars(ecs) > 0 {
		return
	}

	score.Wave++
	rng := factory.MustRandom(ecs)
	tags.Star.Each(ecs.World, func(e *donburi.Entry) {
		// Stars only fall, so the current x is where the star started
		cx, _ := components.Object.Get(e).Center()
		enableStar(ecs, e, cx, cfg.Star.SpawnY, factory.RandomStarBounce(rng))
	})

	playerX, _ := components.Object.Get(playerEntry).Center()
	x := BombSpawnX(playerX, rng)
	factory.SpawnBomb(ecs, x, cfg.Bomb.SpawnY, score.Wave)

	PlaySFX(ecs, cfg.SoundWaveClear)
	PlaySFX(ecs, cfg.SoundBombSpawn)
	log.ForRun(GetGameState(ecs).RunID).Debug("wave %d cleared, score %d", score.Wave, score.Value)
}

// BombSpawnX picks a whole-pixel bomb x in the half of the screen the player
// is not in. The split column belongs to both halves.
func BombSpawnX(playerX float64, rng *rand.Rand) float64 {
	split := cfg.Bomb.SplitX
	if playerX < float64(split) {
		return float64(factory.IntBetween(rng, split, cfg.C.Width))
	}
	return float64(factory.IntBetween(rng, 0, split))
}

// CountActiveStars returns the number of stars still to be collected.
func CountActiveStars(ecs *ecs.ECS) int {
	n := 0
	tags.Star.Each(ecs.World, func(e *donburi.Entry) {
		if components.Star.Get(e).Active {
			n++
		}
	})
	return n
}

// disableStar hides a star and takes it out of the collision space.
func disableStar(e *donburi.Entry) {
	star := components.Star.Get(e)
	star.Active = false
	components.Sprite.Get(e).Hidden = true

	physics := components.Physics.Get(e)
	physics.SpeedX, physics.SpeedY = 0, 0

	obj := components.Object.Get(e)
	if obj.Space != nil {
		obj.Space.Remove(obj.Object)
	}
}

// enableStar puts a star back into play centred on (x, y) with a new bounce.
func enableStar(ecs *ecs.ECS, e *donburi.Entry, x, y, bounceY float64) {
	star := components.Star.Get(e)
	star.Active = true
	star.Scale = 1
	star.Twinkle = factory.NewTwinkle(star.Index)
	star.Shrinking = false

	sprite := components.Sprite.Get(e)
	sprite.Hidden = false

	physics := components.Physics.Get(e)
	physics.SpeedX, physics.SpeedY = 0, 0
	physics.BounceY = bounceY
	physics.OnGround = nil

	obj := components.Object.Get(e)
	if obj.Space == nil {
		if space, ok := components.Space.First(ecs.World); ok {
			components.Space.Get(space).Add(obj.Object)
		}
	}
	obj.SetCenter(x, y)
}
