package factory

import (
	"math/rand"
	"time"

	"github.com/automoto/littlevampire/archetypes"
	"github.com/automoto/littlevampire/assets"
	"github.com/automoto/littlevampire/components"
	cfg "github.com/automoto/littlevampire/config"
	"github.com/google/uuid"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel stores the loaded map on a singleton entity.
func CreateLevel(ecs *ecs.ECS, level assets.Level) *donburi.Entry {
	entry := archetypes.Level.Spawn(ecs)
	components.Level.Set(entry, &components.LevelData{CurrentLevel: &level})
	return entry
}

// CreateSession creates the score, run state and RNG singletons. A zero seed
// is replaced with one from the clock.
func CreateSession(ecs *ecs.ECS, seed int64) *donburi.Entry {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	session := archetypes.Session.Spawn(ecs)
	score := components.ScoreData{}
	score.Refresh()
	components.Score.SetValue(session, score)
	components.GameState.SetValue(session, components.GameStateData{
		RunID: uuid.New(),
	})
	components.Random.SetValue(session, components.RandomData{
		Rand: rand.New(rand.NewSource(seed)),
		Seed: seed,
	})
	return session
}

// CreateWorld builds a playable world from a level: collision space,
// platforms, player, stars and the level's starting bombs.
func CreateWorld(ecs *ecs.ECS, level assets.Level, seed int64) {
	CreateLevel(ecs, level)
	CreateSession(ecs, seed)
	CreateSpace(ecs, level.Width, level.Height, cfg.Physics.CellSize, cfg.Physics.CellSize)

	for _, p := range level.Platforms {
		CreatePlatform(ecs, p)
	}

	CreatePlayer(ecs, level.PlayerSpawn.X, level.PlayerSpawn.Y)

	rng := MustRandom(ecs)
	for i, s := range level.Stars {
		CreateStar(ecs, i, s, RandomStarBounce(rng))
	}

	for _, b := range level.BombSpawns {
		SpawnBomb(ecs, b.X, b.Y, 0)
	}
}

// SpawnBomb releases a bomb with a random horizontal speed.
func SpawnBomb(ecs *ecs.ECS, x, y float64, wave int) *donburi.Entry {
	rng := MustRandom(ecs)
	speedX := perTick(IntBetween(rng, cfg.Bomb.MinSpeedX, cfg.Bomb.MaxSpeedX))
	return CreateBomb(ecs, x, y, speedX, cfg.Bomb.InitialSpeedY, wave)
}

// RandomStarBounce picks a vertical restitution for a star.
func RandomStarBounce(rng *rand.Rand) float64 {
	return randomBetween(rng, cfg.Star.BounceMin, cfg.Star.BounceMax)
}

// MustRandom returns the world's RNG. It panics if no session exists.
func MustRandom(ecs *ecs.ECS) *rand.Rand {
	entry, ok := components.Random.First(ecs.World)
	if !ok {
		panic("no session: CreateSession must run before spawning")
	}
	return components.Random.Get(entry).Rand
}

func randomBetween(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

// IntBetween returns a whole number in [lo, hi].
func IntBetween(rng *rand.Rand, lo, hi int) int {
	return lo + rng.Intn(hi-lo+1)
}

func perTick(pxPerSecond int) float64 {
	return float64(pxPerSecond) / cfg.TPS
}
