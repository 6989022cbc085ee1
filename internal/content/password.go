package content

import (
	"math/rand"
	"strings"

	"github.com/vovakirdan/pearldive/internal/core"
)

// Password length bounds.
const (
	MinPasswordLength = 4
	MaxPasswordLength = 12
	MinPasswordLevel  = 1
	MaxPasswordLevel  = 7
)

const (
	lowerAlphabet = "abcdefghijklmnopqrstuvwxyz"
	upperAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digits        = "0123456789"
	passwordMarks = "@#$%&*!?+-=_()[]{}"
)

// passwordAlphabet is the union every password position draws from.
var passwordAlphabet = []byte(lowerAlphabet + upperAlphabet + digits + passwordMarks)

// PasswordLength returns the target length for a password tier:
// 3+level, clamped to [MinPasswordLength, MaxPasswordLength].
func PasswordLength(level int) int {
	return core.Clamp(3+level, MinPasswordLength, MaxPasswordLength)
}

// GeneratePassword builds a password-like target for the given tier.
// Each position is drawn independently, so a particular character class
// may be missing from the result.
func GeneratePassword(rng *rand.Rand, level int) string {
	n := PasswordLength(level)

	var sb strings.Builder
	sb.Grow(n)
	for range n {
		sb.WriteByte(passwordAlphabet[rng.Intn(len(passwordAlphabet))])
	}
	return sb.String()
}
