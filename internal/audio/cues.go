package audio

import (
	"time"

	"github.com/gopxl/beep"
)

// Cue names a sound effect.
type Cue int

const (
	CueCorrect Cue = iota
	CueIncorrect
	CuePearl
	CueStreakBonus
	CueLevelUp
	CueMilestone
)

// Cues returns every cue.
func Cues() []Cue {
	return []Cue{CueCorrect, CueIncorrect, CuePearl, CueStreakBonus, CueLevelUp, CueMilestone}
}

func (c Cue) String() string {
	switch c {
	case CueCorrect:
		return "correct"
	case CueIncorrect:
		return "incorrect"
	case CuePearl:
		return "pearl"
	case CueStreakBonus:
		return "streak-bonus"
	case CueLevelUp:
		return "level-up"
	case CueMilestone:
		return "milestone"
	default:
		return "unknown"
	}
}

// Note frequencies (Hz)
const (
	noteC5 = 523.25
	noteD5 = 587.33
	noteE5 = 659.25
	noteG5 = 783.99
	noteA5 = 880.00
	noteC6 = 1046.50
)

// run lays out equal-length notes spaced gap apart.
func run(wave WaveType, dur, gap time.Duration, freqs ...float64) []Tone {
	out := make([]Tone, len(freqs))
	for i, f := range freqs {
		out[i] = Tone{Freq: f, Duration: dur, Offset: time.Duration(i) * gap, Wave: wave}
	}
	return out
}

// Tones returns the notes that make up a cue.
func Tones(c Cue) []Tone {
	switch c {
	case CueCorrect:
		return []Tone{
			{Freq: 800, Duration: 100 * time.Millisecond, Wave: WaveSine},
			{Freq: 1000, Duration: 100 * time.Millisecond, Offset: 50 * time.Millisecond, Wave: WaveSine},
		}
	case CueIncorrect:
		return []Tone{
			{Freq: 200, Duration: 200 * time.Millisecond, Wave: WaveSine},
		}
	case CuePearl:
		return []Tone{
			{Freq: 1200, Duration: 150 * time.Millisecond, Wave: WaveTriangle},
			{Freq: 1600, Duration: 100 * time.Millisecond, Offset: 80 * time.Millisecond, Wave: WaveTriangle},
		}
	case CueStreakBonus:
		return run(WaveTriangle, 200*time.Millisecond, 80*time.Millisecond, noteC5, noteE5, noteG5, noteC6)
	case CueLevelUp:
		return run(WaveSquare, 150*time.Millisecond, 100*time.Millisecond, noteC5, noteD5, noteE5, noteG5, noteA5, noteC6)
	case CueMilestone:
		freqs := make([]float64, 10)
		for i := range freqs {
			freqs[i] = 800 + 100*float64(i)
		}
		return run(WaveTriangle, 100*time.Millisecond, 50*time.Millisecond, freqs...)
	default:
		return nil
	}
}

// Duration returns how long a cue sounds.
func Duration(c Cue) time.Duration {
	var end time.Duration
	for _, t := range Tones(c) {
		end = max(end, t.End())
	}
	return end
}

// Stream renders a cue at the given rate and linear volume.
func Stream(c Cue, rate beep.SampleRate, vol float64) beep.Streamer {
	return Arrange(Tones(c), rate, vol)
}
