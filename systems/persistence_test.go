package systems

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func withHighScoreReader(t *testing.T, read func(key string, v any) (bool, error)) {
	t.Helper()
	prevRead, prevLoaded, prevScore := readItem, highScoreLoaded, sessionHighScore
	t.Cleanup(func() {
		readItem, highScoreLoaded, sessionHighScore = prevRead, prevLoaded, prevScore
	})
	readItem = read
	highScoreLoaded = false
	sessionHighScore = 0
}

func TestLoadHighScoreReadsStoreOnce(t *testing.T) {
	tests := []struct {
		name  string
		found bool
		err   error
		want  int
	}{
		{name: "nothing saved yet", want: 0},
		{name: "saved score", found: true, want: 90},
		{name: "unreadable store", err: errors.New("corrupt"), want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reads := 0
			withHighScoreReader(t, func(key string, v any) (bool, error) {
				reads++
				if tt.found {
					v.(*SavedHighScore).Score = 90
				}
				return tt.found, tt.err
			})

			for i := 0; i < 5; i++ {
				assert.Equal(t, tt.want, LoadHighScore())
			}
			assert.Equal(t, 1, reads)
		})
	}
}

func TestSaveHighScoreUpdatesCache(t *testing.T) {
	withHighScoreReader(t, func(string, any) (bool, error) { return false, nil })

	SaveHighScore(40)
	SaveHighScore(20)

	assert.Equal(t, 40, LoadHighScore())
}
