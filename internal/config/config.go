// Package config provides YAML-based configuration loading for pearldive.
package config

import (
	"time"

	"github.com/vovakirdan/pearldive/internal/core"
)

// Config contains all tunable settings.
type Config struct {
	Timing  TimingConfig  `yaml:"timing"`
	Display DisplayConfig `yaml:"display"`
	Audio   AudioConfig   `yaml:"audio"`
	Content ContentConfig `yaml:"content"`
}

// TimingConfig defines the pauses and on-screen durations of cues.
type TimingConfig struct {
	AdvanceDelay     time.Duration `yaml:"advance_delay"`
	FlashDuration    time.Duration `yaml:"flash_duration"`
	MessageDuration  time.Duration `yaml:"message_duration"`
	ConfettiDuration time.Duration `yaml:"confetti_duration"`
}

// DisplayConfig defines HUD behavior.
type DisplayConfig struct {
	StreakIndicatorMin int `yaml:"streak_indicator_min"`
}

// AudioConfig defines the synthesized sound output.
type AudioConfig struct {
	Enabled    bool    `yaml:"enabled"`
	Volume     float64 `yaml:"volume"`      // 0.0 to 1.0
	SampleRate int     `yaml:"sample_rate"` // Hz
}

// ContentConfig points at optional replacement content.
type ContentConfig struct {
	WordsFile string `yaml:"words_file"`
}

// Sample rate bounds accepted by Validate.
const (
	minSampleRate = 8000
	maxSampleRate = 192000
)

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Timing: TimingConfig{
			AdvanceDelay:     800 * time.Millisecond,
			FlashDuration:    500 * time.Millisecond,
			MessageDuration:  2 * time.Second,
			ConfettiDuration: 2 * time.Second,
		},
		Display: DisplayConfig{
			StreakIndicatorMin: 3,
		},
		Audio: AudioConfig{
			Enabled:    true,
			Volume:     0.3,
			SampleRate: 44100,
		},
	}
}

// Validate clamps out-of-range values. Non-positive durations fall back to
// their defaults.
func (c *Config) Validate() {
	def := Default()

	fixDuration(&c.Timing.AdvanceDelay, def.Timing.AdvanceDelay)
	fixDuration(&c.Timing.FlashDuration, def.Timing.FlashDuration)
	fixDuration(&c.Timing.MessageDuration, def.Timing.MessageDuration)
	fixDuration(&c.Timing.ConfettiDuration, def.Timing.ConfettiDuration)

	c.Display.StreakIndicatorMin = core.Max(c.Display.StreakIndicatorMin, 1)

	c.Audio.Volume = core.ClampF(c.Audio.Volume, 0, 1)
	if c.Audio.SampleRate <= 0 {
		c.Audio.SampleRate = def.Audio.SampleRate
	}
	c.Audio.SampleRate = core.Clamp(c.Audio.SampleRate, minSampleRate, maxSampleRate)
}

func fixDuration(d *time.Duration, def time.Duration) {
	if *d <= 0 {
		*d = def
	}
}
