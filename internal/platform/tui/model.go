package tui

import (
	"math/rand"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/pearldive/internal/progression"
)

// Sound is an audible feedback sink that can be muted.
type Sound interface {
	progression.Feedback
	Toggle() bool
	Enabled() bool
}

// inputCharLimit bounds the input buffer; the longest target is 12 chars.
const inputCharLimit = 32

// PlayModel is the Bubble Tea model for one play session.
type PlayModel struct {
	engine  *progression.Engine
	sched   *CommandScheduler
	surface *surface
	deps    Deps

	input textinput.Model
	keys  PlayKeyMap
	help  help.Model

	width      int
	height     int
	quitting   bool
	backToMenu bool
	summary    progression.Summary
}

// NewPlayModel creates a play model and starts a session in mode.
func NewPlayModel(mode progression.Mode, deps Deps) PlayModel {
	deps = deps.withDefaults()

	seed := deps.Runtime.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	sched := NewCommandScheduler()
	surf := newSurface(sched, rng, deps.Config.Timing)

	var fb progression.Feedback = surf
	if deps.Sound != nil {
		fb = progression.Feedbacks(surf, deps.Sound)
	}

	opts := progression.Options{
		Catalog:      deps.Catalog,
		Rand:         rng,
		Scheduler:    sched,
		Presenter:    surf,
		Feedback:     fb,
		Logger:       deps.Logger,
		AdvanceDelay: deps.Config.Timing.AdvanceDelay,
	}
	if deps.Store != nil {
		opts.Store = deps.Store
	}

	engine := progression.New(opts)
	engine.StartSession(mode)

	in := textinput.New()
	in.Prompt = "> "
	in.Placeholder = "type here"
	in.CharLimit = inputCharLimit
	in.Width = 24
	in.Focus()

	h := help.New()
	h.ShowAll = false

	return PlayModel{
		engine:  engine,
		sched:   sched,
		surface: surf,
		deps:    deps,
		input:   in,
		keys:    DefaultPlayKeyMap(),
		help:    h,
		width:   deps.Runtime.ScreenW,
		height:  deps.Runtime.ScreenH,
	}
}

// Init starts the cursor blink and any tasks queued by the first target.
func (m PlayModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.sched.Drain())
}

// Update handles messages and updates the model state.
func (m PlayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case timerMsg:
		m.sched.Deliver(msg)
		m.syncInput()
		return m, m.sched.Drain()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleKey processes control keys and forwards the rest to the input buffer.
func (m PlayModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.finish()
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Back):
		m.finish()
		m.backToMenu = true
		return m, nil

	case key.Matches(msg, m.keys.Restart):
		m.finish()
		m.engine.Restart()
		m.surface.announce("Let's go!")
		m.input.SetValue("")
		m.surface.takeClear()
		return m, m.sched.Drain()

	case key.Matches(msg, m.keys.Sound):
		m.toggleSound()
		return m, m.sched.Drain()
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	if v := m.input.Value(); v != before {
		m.engine.EvaluateInput(v)
	}
	m.syncInput()

	return m, tea.Batch(cmd, m.sched.Drain())
}

// syncInput applies a clear requested by the last frame.
func (m *PlayModel) syncInput() {
	if m.surface.takeClear() {
		m.input.SetValue("")
	}
}

func (m *PlayModel) toggleSound() {
	if m.deps.Sound == nil {
		m.surface.announce("Sound unavailable")
		return
	}
	if m.deps.Sound.Toggle() {
		m.surface.announce("Sound on")
	} else {
		m.surface.announce("Sound off")
	}
}

// finish ends the session and records it. Sessions without a single
// attempt are not recorded.
func (m *PlayModel) finish() {
	sum := m.engine.EndSession()
	if sum.Empty() {
		return
	}
	m.summary = sum

	m.deps.Logger.Info("session finished",
		"mode", string(sum.Mode),
		"pearls", sum.Pearls,
		"level", sum.Level,
		"accuracy", sum.Accuracy,
	)

	if m.deps.Store == nil || sum.TotalAttempts == 0 {
		return
	}
	if _, err := m.deps.Store.SaveSession(sum); err != nil {
		m.deps.Logger.Warn("could not save session", "error", err)
	}
}

// View renders the play surface.
func (m PlayModel) View() string {
	if m.quitting {
		return ""
	}

	t := CurrentTheme()
	f := m.surface.frame
	s := f.State

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(t.MenuTitle.Render("P E A R L   D I V E"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(renderHUD(t, s, m.surface.shownPearls, m.deps.Config.Display.StreakIndicatorMin), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(t.Prompt.Render(f.Prompt), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(renderTarget(t, f.Target, m.surface.flash), m.width))
	b.WriteString("\n")

	if f.ShowPartial {
		b.WriteString(centerText(renderPartial(t, f.Target, f.Partial), m.width))
	}
	b.WriteString("\n\n")

	b.WriteString(centerText(t.Input.Render(m.input.View()), m.width))
	b.WriteString("\n\n")

	if m.surface.banner != "" {
		b.WriteString(centerText(t.Banner.Render(m.surface.banner), m.width))
	}
	b.WriteString("\n")
	if m.surface.confettiActive() {
		b.WriteString(centerText(renderConfetti(t, m.surface.confettiSeed, m.width), m.width))
	}
	b.WriteString("\n\n")

	b.WriteString(centerText(t.Help.Render(m.help.View(m.keys)), m.width))
	b.WriteString("\n")

	return b.String()
}

// Engine returns the session engine.
func (m PlayModel) Engine() *progression.Engine {
	return m.engine
}

// Summary returns the record of the last finished session.
func (m PlayModel) Summary() progression.Summary {
	return m.summary
}

// IsQuitting returns true if user requested to quit entirely.
func (m PlayModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m PlayModel) BackToMenu() bool {
	return m.backToMenu
}
