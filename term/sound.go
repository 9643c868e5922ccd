package term

import (
	"sync"
	"time"

	"github.com/automoto/littlevampire/assets"
	cfg "github.com/automoto/littlevampire/config"
	"github.com/automoto/littlevampire/systems"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// Sound plays queued effects through the system speaker. Until Initialize
// succeeds every Play is dropped, so a machine without audio still runs.
type Sound struct {
	mu          sync.Mutex
	rate        beep.SampleRate
	mixer       *beep.Mixer
	initialized bool
}

func NewSound() *Sound {
	return &Sound{
		rate:  beep.SampleRate(cfg.Audio.SampleRate),
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the speaker with a 100ms buffer and starts the mixer.
func (s *Sound) Initialize() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return nil
	}
	if err := speaker.Init(s.rate, s.rate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(s.mixer)
	s.initialized = true
	return nil
}

// Play mixes in one streamer per sound at the current effective volume.
func (s *Sound) Play(ids []cfg.SoundID) {
	if len(ids) == 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.initialized {
		return
	}

	streamers := soundStreamers(ids, s.rate, systems.EffectiveSFXVolume())
	if len(streamers) == 0 {
		return
	}
	speaker.Lock()
	s.mixer.Add(streamers...)
	speaker.Unlock()
}

// Close silences the mixer and releases the speaker.
func (s *Sound) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	s.initialized = false
}

func soundStreamers(ids []cfg.SoundID, rate beep.SampleRate, volume float64) []beep.Streamer {
	if volume <= 0 {
		return nil
	}
	out := make([]beep.Streamer, 0, len(ids))
	for _, id := range ids {
		if st := assets.SoundStreamer(id, rate, volume); st != nil {
			out = append(out, st)
		}
	}
	return out
}
