// Package progression implements the typing game state machine: target
// selection, input evaluation, scoring, leveling and milestone detection.
//
// The engine has no knowledge of terminals or audio devices. It talks to
// the outside world through the Presenter, Feedback, HighScoreStore and
// Scheduler interfaces, and must be driven from a single goroutine.
package progression

import (
	"io"
	"math/rand"
	"slices"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/pearldive/internal/content"
	"github.com/vovakirdan/pearldive/internal/core"
)

// DefaultAdvanceDelay is the pause between a correct answer and the next target.
const DefaultAdvanceDelay = 800 * time.Millisecond

// Options configures an Engine. Every field is optional.
type Options struct {
	Catalog   *content.Catalog // Word lists (default: embedded lists)
	Rand      *rand.Rand       // Random source (default: time seeded)
	Scheduler Scheduler        // Deferred tasks (default: run immediately)
	Presenter Presenter
	Feedback  Feedback
	Store     HighScoreStore // nil disables persistence
	Logger    *log.Logger

	// AdvanceDelay overrides DefaultAdvanceDelay when positive.
	AdvanceDelay time.Duration

	// Now is the clock used for session timing (default: time.Now).
	Now func() time.Time
}

// Engine owns one GameState and mutates it only through StartSession,
// EvaluateInput, Restart and EndSession.
type Engine struct {
	catalog      *content.Catalog
	rng          *rand.Rand
	scheduler    Scheduler
	presenter    Presenter
	feedback     Feedback
	store        HighScoreStore
	logger       *log.Logger
	advanceDelay time.Duration
	now          func() time.Time

	state     GameState
	sessionID string
	startedAt time.Time
	active    bool
	advancing bool // Waiting for the next target after a correct answer
	newRecord bool
	pending   []Timer
}

// New creates an engine and loads the high score from the store.
// A failing store is logged and treated as a zero high score.
func New(opts Options) *Engine {
	e := &Engine{
		catalog:      opts.Catalog,
		rng:          opts.Rand,
		scheduler:    opts.Scheduler,
		presenter:    opts.Presenter,
		feedback:     opts.Feedback,
		store:        opts.Store,
		logger:       opts.Logger,
		advanceDelay: opts.AdvanceDelay,
		now:          opts.Now,
	}
	if e.catalog == nil {
		e.catalog = content.Default()
	}
	if e.rng == nil {
		e.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if e.scheduler == nil {
		e.scheduler = immediateScheduler{}
	}
	if e.presenter == nil {
		e.presenter = nopPresenter{}
	}
	if e.feedback == nil {
		e.feedback = NopFeedback{}
	}
	if e.logger == nil {
		e.logger = log.New(io.Discard)
	}
	if e.advanceDelay <= 0 {
		e.advanceDelay = DefaultAdvanceDelay
	}
	if e.now == nil {
		e.now = time.Now
	}

	highScore := 0
	if e.store != nil {
		hs, err := e.store.LoadHighScore()
		if err != nil {
			e.logger.Warn("could not load high score", "error", err)
		} else {
			highScore = core.Max(hs, 0)
		}
	}
	e.state = newGameState(ModeLetters, highScore)
	return e
}

// State returns a copy of the current game state.
func (e *Engine) State() GameState {
	return e.state
}

// SessionID returns the ID of the current session, or "" before the first one.
func (e *Engine) SessionID() string {
	return e.sessionID
}

// Active reports whether a session is running.
func (e *Engine) Active() bool {
	return e.active
}

// Advancing reports whether the engine is waiting to show the next target.
func (e *Engine) Advancing() bool {
	return e.advancing
}

// StartSession resets the session counters and tiers, switches to mode and
// selects the first target. Pending tasks of the previous session are
// cancelled. Unknown modes fall back to letters.
func (e *Engine) StartSession(mode Mode) {
	e.cancelPending()

	if !mode.Valid() {
		e.logger.Warn("unknown mode, falling back to letters", "mode", string(mode))
		mode = ModeLetters
	}

	e.state = newGameState(mode, e.state.HighScore)
	e.sessionID = uuid.NewString()
	e.startedAt = e.now()
	e.active = true
	e.advancing = false
	e.newRecord = false

	e.logger.Debug("session started", "session", e.sessionID, "mode", string(mode))
	e.selectNextTarget()
}

// Restart begins a fresh session in the current mode.
func (e *Engine) Restart() {
	e.StartSession(e.state.Mode)
}

// EndSession stops the running session and returns its summary.
// Calling it without an active session returns an empty summary.
func (e *Engine) EndSession() Summary {
	if !e.active {
		return Summary{}
	}
	e.cancelPending()
	e.active = false
	e.advancing = false

	s := e.state
	sum := Summary{
		SessionID:     e.sessionID,
		Mode:          s.Mode,
		Pearls:        s.Pearls,
		Level:         s.Level,
		TotalCorrect:  s.TotalCorrect,
		TotalAttempts: s.TotalAttempts,
		Accuracy:      s.Accuracy(),
		NewHighScore:  e.newRecord,
		StartedAt:     e.startedAt,
		Duration:      e.now().Sub(e.startedAt),
	}
	e.logger.Debug("session ended", "session", e.sessionID, "pearls", s.Pearls, "level", s.Level)
	return sum
}

// EvaluateInput judges the full contents of the input buffer. It is called
// on every change, not only on submit.
func (e *Engine) EvaluateInput(raw string) Outcome {
	if !e.active || e.advancing {
		return Outcome{Verdict: VerdictIgnored}
	}

	typed, target := raw, e.state.CurrentTarget
	if !e.state.Mode.CaseSensitive() {
		typed = strings.ToLower(typed)
		target = strings.ToLower(target)
	}

	showPartial := e.state.Mode == ModeWords
	partial := ""
	if showPartial {
		partial = matchedLetters(typed, target)
	}

	switch {
	case typed == target:
		return e.handleCorrect(partial, showPartial)
	case utf8.RuneCountInString(typed) >= utf8.RuneCountInString(target):
		return e.handleIncorrect(showPartial)
	case !strings.HasPrefix(target, typed):
		return e.handleIncorrect(showPartial)
	}

	e.render(partial, showPartial, false)
	return Outcome{Verdict: VerdictPending, Partial: partial, ShowPartial: showPartial}
}

// handleCorrect scores a matched target and schedules the next one.
func (e *Engine) handleCorrect(partial string, showPartial bool) Outcome {
	s := &e.state
	s.TotalCorrect++
	s.TotalAttempts++
	s.Streak++

	reward := s.reward()
	bonus := s.Streak > 0 && s.Streak%streakBonusEvery == 0
	if bonus {
		reward += streakBonusPearls
		e.feedback.StreakBonus()
	} else {
		e.feedback.Correct()
	}

	s.Pearls += reward
	e.feedback.PearlCollected(reward)
	e.updateHighScore()

	out := Outcome{
		Verdict:     VerdictCorrect,
		Reward:      reward,
		Bonus:       bonus,
		Partial:     partial,
		ShowPartial: showPartial,
	}
	out.LevelUp = e.checkLevelUp()
	out.Milestone = e.checkMilestone()

	e.advancing = true
	e.render(partial, showPartial, true)
	e.schedule(e.advanceDelay, e.selectNextTarget)
	return out
}

// handleIncorrect breaks the streak and clears the buffer. The target stays.
func (e *Engine) handleIncorrect(showPartial bool) Outcome {
	e.state.TotalAttempts++
	e.state.Streak = 0
	e.feedback.Incorrect()
	e.render("", showPartial, true)
	return Outcome{Verdict: VerdictIncorrect, ShowPartial: showPartial}
}

// checkLevelUp advances at most one level per correct answer and raises the
// active mode's tier. Returns the new level, or 0.
func (e *Engine) checkLevelUp() int {
	s := &e.state
	if s.TotalCorrect < s.Level*correctPerLevel {
		return 0
	}
	s.Level++

	switch s.Mode {
	case ModeLetters:
		s.CharacterLevel = core.Min(s.CharacterLevel+1, content.MaxCharacterLevel)
	case ModeSpecial:
		s.SpecialLevel = core.Min(s.SpecialLevel+1, content.MaxSpecialLevel)
	case ModePassword:
		s.PasswordLevel = core.Min(s.PasswordLevel+1, content.MaxPasswordLevel)
	case ModeWords:
		if s.Level > mediumWordsAfterLevel && s.WordDifficulty == content.DifficultyEasy {
			s.WordDifficulty = content.DifficultyMedium
		} else if s.Level > hardWordsAfterLevel && s.WordDifficulty == content.DifficultyMedium {
			s.WordDifficulty = content.DifficultyHard
		}
	}

	e.feedback.LevelUp(s.Level)
	return s.Level
}

// checkMilestone reports a treasure when pearls lands exactly on one.
func (e *Engine) checkMilestone() int {
	if !isMilestone(e.state.Pearls) {
		return 0
	}
	e.feedback.Milestone(e.state.Pearls)
	return e.state.Pearls
}

// updateHighScore raises and persists the high score when pearls beat it.
func (e *Engine) updateHighScore() {
	s := &e.state
	if s.Pearls <= s.HighScore {
		return
	}
	s.HighScore = s.Pearls
	e.newRecord = true

	if e.store == nil {
		return
	}
	if err := e.store.SaveHighScore(s.HighScore); err != nil {
		e.logger.Warn("could not save high score", "error", err, "value", s.HighScore)
	}
}

// selectNextTarget draws a target for the active mode and tier.
func (e *Engine) selectNextTarget() {
	e.state.CurrentTarget = e.generate()
	e.advancing = false
	e.render("", e.state.Mode == ModeWords, true)
}

func (e *Engine) generate() string {
	s := e.state
	switch s.Mode {
	case ModeWords:
		return e.catalog.RandomWord(e.rng, s.WordDifficulty)
	case ModeSpecial:
		return content.RandomSpecialCharacter(e.rng, s.SpecialLevel)
	case ModePassword:
		return content.GeneratePassword(e.rng, s.PasswordLevel)
	default:
		return content.RandomCharacter(e.rng, s.CharacterLevel)
	}
}

// schedule runs task after d unless the session changes first. A fired
// timer drops out of pending; a scheduler that runs tasks synchronously
// never leaves one behind.
func (e *Engine) schedule(d time.Duration, task func()) {
	id := e.sessionID
	var (
		t     Timer
		fired bool
	)
	t = e.scheduler.AfterFunc(d, func() {
		fired = true
		e.forget(t)
		if !e.active || e.sessionID != id {
			return
		}
		task()
	})
	if !fired {
		e.pending = append(e.pending, t)
	}
}

// forget removes t from pending.
func (e *Engine) forget(t Timer) {
	for i, p := range e.pending {
		if p == t {
			e.pending = slices.Delete(e.pending, i, i+1)
			return
		}
	}
}

func (e *Engine) cancelPending() {
	for _, t := range e.pending {
		t.Stop()
	}
	e.pending = nil
}

func (e *Engine) render(partial string, showPartial, clearInput bool) {
	e.presenter.Render(Frame{
		Target:      e.state.CurrentTarget,
		Prompt:      e.state.Mode.Prompt(),
		Partial:     partial,
		ShowPartial: showPartial,
		ClearInput:  clearInput,
		State:       e.state,
	})
}

// matchedLetters keeps each typed character that matches the target at the
// same position.
func matchedLetters(typed, target string) string {
	want := []rune(target)
	var sb strings.Builder
	for i, r := range []rune(typed) {
		if i < len(want) && r == want[i] {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
