package content

import "math/rand"

var encouragements = []string{
	"Great job! 🎉",
	"Perfect! 🌟",
	"You did it! 🐙",
	"Awesome! 🌊",
	"Super! 💎",
	"Well done! 🐠",
	"Fantastic! ⭐",
	"Keep going! 🐟",
	"Amazing! 🦀",
	"Wonderful! 🐚",
}

// RandomEncouragement returns one of the praise messages shown after a
// plain correct answer.
func RandomEncouragement(rng *rand.Rand) string {
	return pick(rng, encouragements)
}
