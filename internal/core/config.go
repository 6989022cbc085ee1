package core

// RuntimeConfig contains configuration passed to a play surface at initialization.
// The seed drives every random pick so a session can be replayed.
type RuntimeConfig struct {
	ScreenW int   // Screen width in characters
	ScreenH int   // Screen height in characters
	Seed    int64 // RNG seed for deterministic target selection
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
		Seed:    0, // 0 means use current time in platform layer
	}
}

// WithSize returns a copy of the config with new screen dimensions.
// Non-positive dimensions keep the current value.
func (c RuntimeConfig) WithSize(w, h int) RuntimeConfig {
	if w > 0 {
		c.ScreenW = w
	}
	if h > 0 {
		c.ScreenH = h
	}
	return c
}
