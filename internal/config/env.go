package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Environment variables. The log settings are read by the CLI.
const (
	EnvAudioEnabled = "PEARLDIVE_AUDIO_ENABLED"
	EnvVolume       = "PEARLDIVE_VOLUME" // 0 to 100
	EnvWordsFile    = "PEARLDIVE_WORDS_FILE"
	EnvAdvanceDelay = "PEARLDIVE_ADVANCE_DELAY"
	EnvLogLevel     = "PEARLDIVE_LOG_LEVEL"
	EnvLogFile      = "PEARLDIVE_LOG_FILE"
)

// LoadEnvFiles loads .env style files into the process environment.
// Missing files are not an error; variables already set win.
func LoadEnvFiles(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("config: cannot load %s: %w", f, err)
		}
	}
	return nil
}

// ApplyEnv overrides fields from PEARLDIVE_* environment variables and
// re-validates. Malformed values are skipped and reported together.
func (c *Config) ApplyEnv() error {
	var errs []error

	if v, ok := os.LookupEnv(EnvAudioEnabled); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("config: %s: %w", EnvAudioEnabled, err))
		} else {
			c.Audio.Enabled = b
		}
	}

	if v, ok := os.LookupEnv(EnvVolume); ok {
		n, err := strconv.Atoi(v)
		switch {
		case err != nil:
			errs = append(errs, fmt.Errorf("config: %s: %w", EnvVolume, err))
		case n < 0 || n > 100:
			errs = append(errs, fmt.Errorf("config: %s: %d out of range 0-100", EnvVolume, n))
		default:
			c.Audio.Volume = float64(n) / 100
		}
	}

	if v, ok := os.LookupEnv(EnvWordsFile); ok {
		c.Content.WordsFile = v
	}

	if v, ok := os.LookupEnv(EnvAdvanceDelay); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("config: %s: %w", EnvAdvanceDelay, err))
		} else {
			c.Timing.AdvanceDelay = d
		}
	}

	c.Validate()
	return errors.Join(errs...)
}
