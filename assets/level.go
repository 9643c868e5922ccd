package assets

import (
	"embed"
	"errors"
	"fmt"
	"path/filepath"
	"sort"

	"github.com/automoto/littlevampire/config"
	"github.com/lafriks/go-tiled"
)

var (
	//go:embed all:levels
	assetFS embed.FS
)

// DefaultLevel is the map the game boots into.
const DefaultLevel = "levels/level01.tmx"

// Level is the gameplay-relevant content of a Tiled map.
type Level struct {
	Name        string
	Width       int
	Height      int
	Platforms   []Platform
	PlayerSpawn PlayerSpawn
	Stars       []StarSpawn
	BombSpawns  []BombSpawn
}

// Platform is a static collider rectangle
type Platform struct {
	X, Y, Width, Height float64
	Name                string
	Texture             string
}

// PlayerSpawn is the centre of the player body at start and after a restart
type PlayerSpawn struct {
	X, Y float64
}

// StarSpawn is the centre a star is (re)enabled at
type StarSpawn struct {
	X, Y float64
}

// BombSpawn is the centre of a bomb that exists when a run starts
type BombSpawn struct {
	X, Y float64
}

type LevelLoader struct{}

func NewLevelLoader() *LevelLoader {
	return &LevelLoader{}
}

func (l *LevelLoader) MustLoadLevels() []Level {
	entries, err := assetFS.ReadDir("levels")
	if err != nil {
		panic(fmt.Sprintf("Failed to read levels directory: %v", err))
	}

	var levels []Level
	for _, entry := range entries {
		if !entry.IsDir() && filepath.Ext(entry.Name()) == ".tmx" {
			levelPath := filepath.Join("levels", entry.Name())
			levels = append(levels, l.MustLoadLevel(levelPath))
		}
	}

	if len(levels) == 0 {
		panic("No level files found in assets/levels directory")
	}

	return levels
}

func (l *LevelLoader) MustLoadLevel(levelPath string) Level {
	level, err := l.LoadLevel(levelPath)
	if err != nil {
		panic(err)
	}
	return level
}

// LoadLevel parses a map from the embedded level directory.
func (l *LevelLoader) LoadLevel(levelPath string) (Level, error) {
	levelMap, err := tiled.LoadFile(levelPath, tiled.WithFileSystem(assetFS))
	if err != nil {
		return Level{}, fmt.Errorf("failed to load level %s: %w", levelPath, err)
	}

	level := Level{
		Name:   levelPath,
		Width:  levelMap.Width * levelMap.TileWidth,
		Height: levelMap.Height * levelMap.TileHeight,
	}

	hasSpawn := false
	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case "Platforms":
			for _, o := range og.Objects {
				texture := o.Properties.GetString("texture")
				if texture == "" {
					texture = TextureGround
				}
				level.Platforms = append(level.Platforms, Platform{
					X:       o.X,
					Y:       o.Y,
					Width:   o.Width,
					Height:  o.Height,
					Name:    o.Name,
					Texture: texture,
				})
			}
		case "PlayerSpawn":
			// First spawn wins; single player only
			if len(og.Objects) > 0 {
				level.PlayerSpawn = PlayerSpawn{X: og.Objects[0].X, Y: og.Objects[0].Y}
				hasSpawn = true
			}
		case "StarRow":
			for _, o := range og.Objects {
				level.Stars = append(level.Stars, expandStarRow(o)...)
			}
		case "BombSpawn":
			for _, o := range og.Objects {
				level.BombSpawns = append(level.BombSpawns, BombSpawn{X: o.X, Y: o.Y})
			}
		}
	}

	if !hasSpawn {
		return Level{}, errors.New("no player spawn points defined in map")
	}

	// Stable left-to-right order so star indices match between runs
	sort.SliceStable(level.Stars, func(i, j int) bool {
		return level.Stars[i].X < level.Stars[j].X
	})
	sort.SliceStable(level.Platforms, func(i, j int) bool {
		return level.Platforms[i].Y > level.Platforms[j].Y
	})

	return level, nil
}

// expandStarRow turns one StarRow point into count evenly spaced spawns.
// Missing properties fall back to config.Star.
func expandStarRow(o *tiled.Object) []StarSpawn {
	count := o.Properties.GetInt("count")
	if count <= 0 {
		count = config.Star.Count
	}
	step := o.Properties.GetFloat("stepX")
	if step == 0 {
		step = config.Star.StepX
	}

	spawns := make([]StarSpawn, count)
	for i := range spawns {
		spawns[i] = StarSpawn{X: o.X + float64(i)*step, Y: o.Y}
	}
	return spawns
}
