package progression

import (
	"github.com/vovakirdan/pearldive/internal/content"
	"github.com/vovakirdan/pearldive/internal/core"
)

// Progression constants.
const (
	correctPerLevel   = 10 // Level N ends at N*10 total correct answers
	streakBonusEvery  = 5
	streakBonusPearls = 5
	passwordRewardCap = 10

	// Word tiers are promoted once the session level passes these marks.
	mediumWordsAfterLevel = 20
	hardWordsAfterLevel   = 40
)

// milestones are pearl totals that unlock a treasure on exact attainment.
var milestones = []int{25, 50, 100, 150, 200, 300, 500}

// Milestones returns the treasure pearl totals.
func Milestones() []int {
	out := make([]int, len(milestones))
	copy(out, milestones)
	return out
}

// GameState is the mutable state of one play session.
//
// Only the tier that belongs to Mode changes during a session; the other
// tiers keep their values.
type GameState struct {
	Mode          Mode
	Level         int
	Pearls        int
	HighScore     int
	Streak        int
	CurrentTarget string

	CharacterLevel int
	SpecialLevel   int
	PasswordLevel  int
	WordDifficulty content.Difficulty

	TotalCorrect  int
	TotalAttempts int
}

// newGameState returns a state with every tier at its floor.
func newGameState(mode Mode, highScore int) GameState {
	return GameState{
		Mode:           mode,
		Level:          1,
		HighScore:      highScore,
		CharacterLevel: content.MinCharacterLevel,
		SpecialLevel:   content.MinSpecialLevel,
		PasswordLevel:  content.MinPasswordLevel,
		WordDifficulty: content.DifficultyEasy,
	}
}

// Accuracy returns correct answers as a whole percentage of attempts.
func (s GameState) Accuracy() int {
	return core.Percent(s.TotalCorrect, s.TotalAttempts)
}

// reward returns the base pearls for a correct answer, before streak bonus.
func (s GameState) reward() int {
	switch s.Mode {
	case ModeWords:
		switch s.WordDifficulty {
		case content.DifficultyMedium:
			return 2
		case content.DifficultyHard:
			return 3
		}
		return 1
	case ModePassword:
		return core.Min(len([]rune(s.CurrentTarget)), passwordRewardCap)
	default:
		return 1
	}
}

// isMilestone reports whether pearls is exactly a treasure total.
func isMilestone(pearls int) bool {
	for _, m := range milestones {
		if m == pearls {
			return true
		}
	}
	return false
}
