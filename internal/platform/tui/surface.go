package tui

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/pearldive/internal/config"
	"github.com/vovakirdan/pearldive/internal/content"
	"github.com/vovakirdan/pearldive/internal/progression"
)

// Cue timings not covered by config.
const (
	pearlStep       = 100 * time.Millisecond // HUD counter animation per pearl
	confettiStagger = 300 * time.Millisecond // Delay of the second milestone burst
)

// flashKind is the highlight applied to the target box.
type flashKind int

const (
	flashNone flashKind = iota
	flashCorrect
	flashIncorrect
)

// surface is the play screen's presenter and visual feedback sink. It keeps
// the last frame plus the transient cues drawn around it. Cue expiry goes
// through the scheduler; each cue carries a generation so an old expiry
// never clears a newer cue.
type surface struct {
	sched  progression.Scheduler
	rng    *rand.Rand
	timing config.TimingConfig

	frame      progression.Frame
	clearInput bool

	banner    string
	bannerGen int

	flash    flashKind
	flashGen int

	confettiSeed int64
	confettiGen  int

	shownPearls int
	animating   bool
}

func newSurface(sched progression.Scheduler, rng *rand.Rand, timing config.TimingConfig) *surface {
	return &surface{sched: sched, rng: rng, timing: timing}
}

// Render implements progression.Presenter.
func (s *surface) Render(f progression.Frame) {
	s.frame = f
	if f.ClearInput {
		s.clearInput = true
	}
	// A new session starts below the animated counter.
	if f.State.Pearls < s.shownPearls {
		s.shownPearls = f.State.Pearls
	}
}

// takeClear reports and resets a pending input clear request.
func (s *surface) takeClear() bool {
	c := s.clearInput
	s.clearInput = false
	return c
}

func (s *surface) Correct() {
	s.setFlash(flashCorrect)
	s.setBanner(content.RandomEncouragement(s.rng))
}

func (s *surface) Incorrect() {
	s.setFlash(flashIncorrect)
	s.setBanner("Try again!")
}

func (s *surface) StreakBonus() {
	s.setFlash(flashCorrect)
	s.setBanner("Streak Bonus! +5 Pearls!")
	s.burst()
}

func (s *surface) LevelUp(level int) {
	s.setBanner(fmt.Sprintf("Level Up! Now Level %d!", level))
	s.burst()
}

func (s *surface) Milestone(pearls int) {
	s.setBanner(fmt.Sprintf("Treasure Unlocked! %d Pearls!", pearls))
	s.burst()
	s.sched.AfterFunc(confettiStagger, s.burst)
}

// PearlCollected starts the HUD counter animation if it is idle.
func (s *surface) PearlCollected(int) {
	if s.animating {
		return
	}
	s.animating = true
	s.sched.AfterFunc(pearlStep, s.stepPearls)
}

func (s *surface) stepPearls() {
	target := s.frame.State.Pearls
	if s.shownPearls < target {
		s.shownPearls++
	}
	if s.shownPearls < target {
		s.sched.AfterFunc(pearlStep, s.stepPearls)
		return
	}
	s.animating = false
}

// announce shows a banner that is not tied to a feedback event.
func (s *surface) announce(text string) {
	s.setBanner(text)
}

func (s *surface) setBanner(text string) {
	s.bannerGen++
	gen := s.bannerGen
	s.banner = text
	s.sched.AfterFunc(s.timing.MessageDuration, func() {
		if s.bannerGen == gen {
			s.banner = ""
		}
	})
}

func (s *surface) setFlash(k flashKind) {
	s.flashGen++
	gen := s.flashGen
	s.flash = k
	s.sched.AfterFunc(s.timing.FlashDuration, func() {
		if s.flashGen == gen {
			s.flash = flashNone
		}
	})
}

// burst shows a fresh confetti strip.
func (s *surface) burst() {
	s.confettiGen++
	gen := s.confettiGen
	s.confettiSeed = s.rng.Int63() | 1
	s.sched.AfterFunc(s.timing.ConfettiDuration, func() {
		if s.confettiGen == gen {
			s.confettiSeed = 0
		}
	})
}

// confettiActive reports whether a confetti strip is visible.
func (s *surface) confettiActive() bool {
	return s.confettiSeed != 0
}

var (
	_ progression.Presenter = (*surface)(nil)
	_ progression.Feedback  = (*surface)(nil)
)
