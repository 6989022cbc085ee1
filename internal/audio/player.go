package audio

import (
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/pearldive/internal/config"
	"github.com/vovakirdan/pearldive/internal/progression"
)

// bufferDuration is the speaker buffer length.
const bufferDuration = 100 * time.Millisecond

// Player plays feedback cues through the speaker. A player whose speaker
// could not be initialized stays silent; every method is safe to call.
type Player struct {
	mu          sync.Mutex
	rate        beep.SampleRate
	volume      float64
	muted       bool
	initialized bool
	mixer       *beep.Mixer
	logger      *log.Logger
}

// NewPlayer creates a player from the audio config. Call Init to open the
// speaker. A disabled config starts the player muted.
func NewPlayer(cfg config.AudioConfig, logger *log.Logger) *Player {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Player{
		rate:   beep.SampleRate(cfg.SampleRate),
		volume: cfg.Volume,
		muted:  !cfg.Enabled,
		mixer:  &beep.Mixer{},
		logger: logger,
	}
}

// Init opens the speaker. On failure the player stays silent and the error
// is returned for logging.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	if err := speaker.Init(p.rate, p.rate.N(bufferDuration)); err != nil {
		p.logger.Warn("audio unavailable, continuing without sound", "error", err)
		return err
	}

	speaker.Play(p.mixer)
	p.initialized = true
	p.logger.Debug("audio initialized", "rate", int(p.rate), "volume", p.volume)
	return nil
}

// Close stops all sounds.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.initialized = false
}

// Toggle flips mute and reports whether sound is now on.
func (p *Player) Toggle() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.muted = !p.muted
	if p.muted && p.initialized {
		speaker.Lock()
		p.mixer.Clear()
		speaker.Unlock()
	}
	return !p.muted
}

// Enabled reports whether cues are audible.
func (p *Player) Enabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return !p.muted
}

// Play queues a cue on the mixer without blocking on playback.
func (p *Player) Play(c Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized || p.muted {
		return
	}

	s := Stream(c, p.rate, p.volume)
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

func (p *Player) Correct() { p.Play(CueCorrect) }
func (p *Player) Incorrect() { p.Play(CueIncorrect) }
func (p *Player) StreakBonus() { p.Play(CueStreakBonus) }
func (p *Player) LevelUp(int) { p.Play(CueLevelUp) }
func (p *Player) Milestone(int) { p.Play(CueMilestone) }
func (p *Player) PearlCollected(int) { p.Play(CuePearl) }

var _ progression.Feedback = (*Player)(nil)
