package progression

import "time"

// Frame is what the presenter needs to draw the play surface.
type Frame struct {
	Target string
	Prompt string

	// Partial is the correctly typed part of a word. Only meaningful when
	// ShowPartial is set (words mode).
	Partial     string
	ShowPartial bool

	// ClearInput asks the presenter to empty its input buffer.
	ClearInput bool

	State GameState
}

// Presenter draws frames and owns the raw input buffer.
type Presenter interface {
	Render(f Frame)
}

// Feedback receives fire-and-forget cues. Implementations must not block.
type Feedback interface {
	Correct()
	Incorrect()
	StreakBonus()
	LevelUp(level int)
	Milestone(pearls int)
	PearlCollected(count int)
}

// HighScoreStore persists the single all-time high score.
type HighScoreStore interface {
	LoadHighScore() (int, error)
	SaveHighScore(value int) error
}

// Timer is a pending scheduled task.
type Timer interface {
	// Stop prevents the task from running. It returns false if the task
	// already ran or was stopped.
	Stop() bool
}

// Scheduler runs f after d on the goroutine that drives the engine.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

// NopFeedback ignores every cue.
type NopFeedback struct{}

func (NopFeedback) Correct() {}
func (NopFeedback) Incorrect() {}
func (NopFeedback) StreakBonus() {}
func (NopFeedback) LevelUp(int) {}
func (NopFeedback) Milestone(int) {}
func (NopFeedback) PearlCollected(int) {}

// multiFeedback fans out cues to several sinks in order.
type multiFeedback []Feedback

// Feedbacks combines sinks into one Feedback. Nil entries are skipped.
func Feedbacks(sinks ...Feedback) Feedback {
	out := make(multiFeedback, 0, len(sinks))
	for _, s := range sinks {
		if s != nil {
			out = append(out, s)
		}
	}
	return out
}

func (m multiFeedback) Correct() {
	for _, f := range m {
		f.Correct()
	}
}

func (m multiFeedback) Incorrect() {
	for _, f := range m {
		f.Incorrect()
	}
}

func (m multiFeedback) StreakBonus() {
	for _, f := range m {
		f.StreakBonus()
	}
}

func (m multiFeedback) LevelUp(level int) {
	for _, f := range m {
		f.LevelUp(level)
	}
}

func (m multiFeedback) Milestone(pearls int) {
	for _, f := range m {
		f.Milestone(pearls)
	}
}

func (m multiFeedback) PearlCollected(count int) {
	for _, f := range m {
		f.PearlCollected(count)
	}
}

type nopPresenter struct{}

func (nopPresenter) Render(Frame) {}

// immediateScheduler runs tasks synchronously, ignoring the delay.
type immediateScheduler struct{}

func (immediateScheduler) AfterFunc(_ time.Duration, f func()) Timer {
	f()
	return spentTimer{}
}

type spentTimer struct{}

func (spentTimer) Stop() bool { return false }
