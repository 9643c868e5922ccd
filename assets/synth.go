package assets

import (
	"math"
	"math/rand"
	"time"

	"github.com/automoto/littlevampire/config"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// oscillator produces a fixed-length raw waveform
type oscillator struct {
	freq     float64
	phase    float64
	length   int
	position int
	shape    config.WaveShape
	rate     beep.SampleRate
}

// NewOscillator returns a streamer that plays one waveform for duration.
func NewOscillator(freq float64, duration time.Duration, shape config.WaveShape, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:   freq,
		length: rate.N(duration),
		shape:  shape,
		rate:   rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.length {
			return i, i > 0
		}

		var v float64
		switch o.shape {
		case config.WaveSine:
			v = math.Sin(2 * math.Pi * o.phase)
		case config.WaveSquare:
			v = 1
			if o.phase >= 0.5 {
				v = -1
			}
		case config.WaveSaw:
			v = 2 * (o.phase - 0.5)
		case config.WaveNoise:
			v = rand.Float64()*2 - 1
		}
		samples[i][0] = v
		samples[i][1] = v

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope fades a streamer in over attack and out over release
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

// NewEnvelope shapes s with a linear attack and release.
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		release:  rate.N(release),
		total:    rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		if e.position >= e.total {
			return i, i > 0
		}

		gain := 1.0
		if e.attack > 0 && e.position < e.attack {
			gain = float64(e.position) / float64(e.attack)
		}
		if left := e.total - e.position; e.release > 0 && left < e.release {
			gain = math.Min(gain, float64(left)/float64(e.release))
		}

		samples[i][0] *= gain
		samples[i][1] *= gain
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// withVolume scales a streamer linearly. Zero is silent.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// SoundStreamer builds the synthesised streamer for a sound at the given
// volume. It returns nil for sounds without a recipe.
func SoundStreamer(id config.SoundID, rate beep.SampleRate, volume float64) beep.Streamer {
	recipe, ok := config.Sound.Recipes[id]
	if !ok || len(recipe) == 0 {
		return nil
	}

	notes := make([]beep.Streamer, 0, len(recipe))
	for _, tone := range recipe {
		osc := NewOscillator(tone.Freq, tone.Duration, tone.Shape, rate)
		notes = append(notes, NewEnvelope(osc, tone.Duration, tone.Attack, tone.Release, rate))
	}

	if mult, ok := config.Sound.VolumeMultipliers[id]; ok {
		volume *= mult
	}
	return withVolume(beep.Seq(notes...), volume)
}

// SoundLength is the total length of a sound recipe.
func SoundLength(id config.SoundID) time.Duration {
	var d time.Duration
	for _, tone := range config.Sound.Recipes[id] {
		d += tone.Duration
	}
	return d
}
