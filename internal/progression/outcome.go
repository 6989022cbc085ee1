package progression

import "time"

// Verdict classifies one input evaluation.
type Verdict int

const (
	// VerdictPending means the input is a strict prefix of the target.
	VerdictPending Verdict = iota
	// VerdictCorrect means the input matched the target.
	VerdictCorrect
	// VerdictIncorrect means the input diverged from or overran the target.
	VerdictIncorrect
	// VerdictIgnored means no target was open for input.
	VerdictIgnored
)

// String returns a human-readable name for the verdict.
func (v Verdict) String() string {
	switch v {
	case VerdictPending:
		return "Pending"
	case VerdictCorrect:
		return "Correct"
	case VerdictIncorrect:
		return "Incorrect"
	case VerdictIgnored:
		return "Ignored"
	default:
		return "Unknown"
	}
}

// Terminal reports whether the verdict ends the current attempt.
func (v Verdict) Terminal() bool {
	return v == VerdictCorrect || v == VerdictIncorrect
}

// Outcome describes what one EvaluateInput call did.
type Outcome struct {
	Verdict Verdict

	Reward int  // Pearls earned, including any streak bonus
	Bonus  bool // Streak bonus applied

	LevelUp   int // New level, or 0
	Milestone int // Treasure pearl total reached, or 0

	Partial     string
	ShowPartial bool
}

// Summary is the record of a finished session.
type Summary struct {
	SessionID     string
	Mode          Mode
	Pearls        int
	Level         int
	TotalCorrect  int
	TotalAttempts int
	Accuracy      int
	NewHighScore  bool
	StartedAt     time.Time
	Duration      time.Duration
}

// Empty reports whether the summary describes no session at all.
func (s Summary) Empty() bool {
	return s.SessionID == ""
}
