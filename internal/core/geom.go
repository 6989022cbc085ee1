// Package core provides fundamental types and utilities shared by the game
// packages. It contains no external dependencies (especially no Bubble Tea)
// to keep game logic pure and testable.
package core

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// Percent returns part/total as a whole percentage, or 0 when total is zero.
func Percent(part, total int) int {
	if total <= 0 {
		return 0
	}
	return part * 100 / total
}
