package assets

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"

	"github.com/automoto/littlevampire/config"
	"github.com/gopxl/beep"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// SFXLoader renders synthesised sounds to PCM once and hands out players.
type SFXLoader struct {
	cache   map[config.SoundID][]byte
	context *audio.Context
}

// NewSFXLoader creates a loader bound to the given audio context
func NewSFXLoader(ctx *audio.Context) *SFXLoader {
	return &SFXLoader{
		cache:   make(map[config.SoundID][]byte),
		context: ctx,
	}
}

// PreloadSFX renders a sound without creating a player.
func (l *SFXLoader) PreloadSFX(id config.SoundID) error {
	if _, ok := l.cache[id]; ok {
		return nil
	}
	pcm, err := RenderPCM(id, l.context.SampleRate())
	if err != nil {
		return err
	}
	l.cache[id] = pcm
	return nil
}

// LoadSFX returns a new player for a sound each call.
func (l *SFXLoader) LoadSFX(id config.SoundID) (*audio.Player, error) {
	if err := l.PreloadSFX(id); err != nil {
		return nil, err
	}
	return l.context.NewPlayer(bytes.NewReader(l.cache[id]))
}

// RenderPCM synthesises a sound into signed 16-bit little-endian stereo,
// the format ebiten's audio players consume.
func RenderPCM(id config.SoundID, sampleRate int) ([]byte, error) {
	s := SoundStreamer(id, beep.SampleRate(sampleRate), 1)
	if s == nil {
		return nil, fmt.Errorf("no recipe for sound %d", id)
	}

	var buf bytes.Buffer
	chunk := make([][2]float64, 512)
	frame := make([]byte, 4)
	for {
		n, ok := s.Stream(chunk)
		for i := 0; i < n; i++ {
			binary.LittleEndian.PutUint16(frame[0:], uint16(toInt16(chunk[i][0])))
			binary.LittleEndian.PutUint16(frame[2:], uint16(toInt16(chunk[i][1])))
			buf.Write(frame)
		}
		if !ok {
			break
		}
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("failed to render sound %d: %w", id, err)
	}
	return buf.Bytes(), nil
}

func toInt16(v float64) int16 {
	v = math.Max(-1, math.Min(1, v))
	return int16(v * math.MaxInt16)
}
