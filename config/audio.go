package config

import "time"

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	SoundCollect
	SoundWaveClear
	SoundBombSpawn
	SoundExplode
	SoundJump
	SoundMenuNavigate
	SoundMenuSelect
)

// WaveShape selects the oscillator used to synthesise a tone
type WaveShape int

const (
	WaveSine WaveShape = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// Tone describes one synthesised note. A sound is a sequence of tones.
type Tone struct {
	Freq     float64
	Duration time.Duration
	Attack   time.Duration
	Release  time.Duration
	Shape    WaveShape
}

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate    int
	DefaultSFXVol float64
}

// SoundConfig maps sound IDs to synthesis recipes
type SoundConfig struct {
	Recipes           map[SoundID][]Tone
	VolumeMultipliers map[SoundID]float64
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:    44100,
		DefaultSFXVol: 0.5,
	}

	ms := time.Millisecond
	Sound = SoundConfig{
		Recipes: map[SoundID][]Tone{
			SoundCollect: {
				{Freq: 988, Duration: 50 * ms, Attack: 2 * ms, Release: 20 * ms, Shape: WaveSquare},
				{Freq: 1319, Duration: 90 * ms, Attack: 2 * ms, Release: 60 * ms, Shape: WaveSquare},
			},
			SoundWaveClear: {
				{Freq: 523, Duration: 80 * ms, Attack: 5 * ms, Release: 20 * ms, Shape: WaveSine},
				{Freq: 659, Duration: 80 * ms, Attack: 5 * ms, Release: 20 * ms, Shape: WaveSine},
				{Freq: 784, Duration: 160 * ms, Attack: 5 * ms, Release: 100 * ms, Shape: WaveSine},
			},
			SoundBombSpawn: {
				{Freq: 220, Duration: 120 * ms, Attack: 5 * ms, Release: 80 * ms, Shape: WaveSaw},
			},
			SoundExplode: {
				{Freq: 0, Duration: 400 * ms, Attack: 2 * ms, Release: 350 * ms, Shape: WaveNoise},
			},
			SoundJump: {
				{Freq: 330, Duration: 40 * ms, Attack: 2 * ms, Release: 10 * ms, Shape: WaveSquare},
				{Freq: 440, Duration: 40 * ms, Attack: 2 * ms, Release: 30 * ms, Shape: WaveSquare},
			},
			SoundMenuNavigate: {
				{Freq: 660, Duration: 30 * ms, Attack: 2 * ms, Release: 20 * ms, Shape: WaveSine},
			},
			SoundMenuSelect: {
				{Freq: 880, Duration: 60 * ms, Attack: 2 * ms, Release: 40 * ms, Shape: WaveSine},
			},
		},
		VolumeMultipliers: map[SoundID]float64{
			SoundExplode: 1.5,
			SoundJump:    0.5,
		},
	}
}
