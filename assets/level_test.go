package assets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaultLevel(t *testing.T) {
	level, err := NewLevelLoader().LoadLevel(DefaultLevel)
	require.NoError(t, err)

	assert.Equal(t, 800, level.Width)
	assert.Equal(t, 600, level.Height)
	assert.Equal(t, PlayerSpawn{X: 100, Y: 450}, level.PlayerSpawn)

	require.Len(t, level.Platforms, 4)
	ground := level.Platforms[0]
	assert.Equal(t, "ground", ground.Name)
	assert.Equal(t, Platform{X: 0, Y: 536, Width: 800, Height: 64, Name: "ground", Texture: TextureGround}, ground)
	for _, p := range level.Platforms {
		assert.Equal(t, TextureGround, p.Texture, p.Name)
	}

	require.Len(t, level.Stars, 12)
	for i, s := range level.Stars {
		assert.InDelta(t, 12+70*float64(i), s.X, 1e-9)
		assert.Zero(t, s.Y)
	}

	require.Len(t, level.BombSpawns, 1)
	assert.Equal(t, BombSpawn{X: 400, Y: 16}, level.BombSpawns[0])
}

func TestLoadLevelMissingFile(t *testing.T) {
	_, err := NewLevelLoader().LoadLevel("levels/missing.tmx")
	assert.Error(t, err)
}

func TestMustLoadLevels(t *testing.T) {
	levels := NewLevelLoader().MustLoadLevels()
	assert.NotEmpty(t, levels)
}

func TestGenerateTextures(t *testing.T) {
	for key, size := range TextureSize {
		img, err := GenerateTexture(key)
		require.NoError(t, err, key)
		assert.Equal(t, size, img.Bounds().Size(), key)
	}

	_, err := GenerateTexture("nope")
	assert.Error(t, err)
}

func TestStarTextureIsTransparentAtCorners(t *testing.T) {
	img, err := GenerateTexture(TextureStar)
	require.NoError(t, err)

	assert.Zero(t, img.RGBAAt(0, 0).A)
	c := img.RGBAAt(img.Bounds().Dx()/2, img.Bounds().Dy()/2)
	assert.Equal(t, uint8(255), c.A)
}
