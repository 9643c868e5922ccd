package fonts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	require.NoError(t, LoadDefaults(32))

	for _, name := range []FontName{Regular, Bold, Title, Small, HUD} {
		assert.NotNil(t, name.Get(), name)
	}

	hud := HUD.Get().Metrics().Height
	small := Small.Get().Metrics().Height
	assert.Greater(t, hud, small)
}

func TestLoadFontRejectsGarbage(t *testing.T) {
	assert.Error(t, LoadFont("broken", []byte("not a font")))
}

func TestGetUnknownFontPanics(t *testing.T) {
	assert.Panics(t, func() { FontName("missing").Get() })
}
