// Package audio synthesizes the game's sound cues with beep oscillators and
// plays them through the system speaker.
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveTriangle
	WaveSaw
)

// oscillator generates a raw periodic wave for a fixed number of samples
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a new oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveTriangle:
			val = 4*math.Abs(o.phase-0.5) - 1
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies a linear attack and release to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

// NewEnvelope shapes s with an attack ramp and a release ramp ending at duration.
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := min(rate.N(attack), total)
	rel := min(rate.N(release), total-att)

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	if e.position >= e.totalSamples {
		return 0, false
	}
	if left := e.totalSamples - e.position; len(samples) > left {
		samples = samples[:left]
	}

	n, ok = e.streamer.Stream(samples)
	releaseStart := e.totalSamples - e.releaseSamples

	for i := 0; i < n; i++ {
		vol := 1.0
		if e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = math.Min(vol, float64(e.totalSamples-e.position)/float64(e.releaseSamples))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales s linearly by vol. Zero or negative volume is silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// Tone is one enveloped note inside a cue.
type Tone struct {
	Freq     float64
	Duration time.Duration
	Offset   time.Duration // Start time relative to the cue start
	Wave     WaveType
}

// Tone envelope shape.
const (
	toneAttack       = 5 * time.Millisecond
	toneReleaseRatio = 0.7
)

// End returns when the tone stops sounding.
func (t Tone) End() time.Duration {
	return t.Offset + t.Duration
}

// streamer renders the tone with leading silence for its offset.
func (t Tone) streamer(rate beep.SampleRate) beep.Streamer {
	osc := NewOscillator(t.Freq, t.Duration, t.Wave, rate)
	release := time.Duration(float64(t.Duration) * toneReleaseRatio)
	shaped := NewEnvelope(osc, t.Duration, toneAttack, release, rate)

	if t.Offset <= 0 {
		return shaped
	}
	return beep.Seq(beep.Silence(rate.N(t.Offset)), shaped)
}

// Arrange mixes tones on a shared timeline and scales the result by vol.
// The stream is exactly as long as the last tone's end.
func Arrange(tones []Tone, rate beep.SampleRate, vol float64) beep.Streamer {
	var (
		parts []beep.Streamer
		end   time.Duration
	)
	for _, t := range tones {
		parts = append(parts, t.streamer(rate))
		end = max(end, t.End())
	}
	return beep.Take(rate.N(end), newVolume(beep.Mix(parts...), vol))
}
