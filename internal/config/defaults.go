package config

import (
	_ "embed"
)

//go:embed defaults/pearldive.yaml
var defaultYAML []byte

// DefaultYAML returns the embedded default config file, suitable as a
// starting point for ~/.pearldive/pearldive.yaml.
func DefaultYAML() []byte {
	out := make([]byte, len(defaultYAML))
	copy(out, defaultYAML)
	return out
}
