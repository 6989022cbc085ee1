package tui

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pearldive/internal/config"
	"github.com/vovakirdan/pearldive/internal/content"
	"github.com/vovakirdan/pearldive/internal/core"
	"github.com/vovakirdan/pearldive/internal/progression"
	"github.com/vovakirdan/pearldive/internal/storage"
)

// Deps bundles what the screens need. Every field is optional.
type Deps struct {
	Store   *storage.Store
	Catalog *content.Catalog
	Config  config.Config
	Runtime core.RuntimeConfig
	Sound   Sound
	Logger  *log.Logger
}

func (d Deps) withDefaults() Deps {
	if d.Config == (config.Config{}) {
		d.Config = config.Default()
	}
	if d.Catalog == nil {
		d.Catalog = content.Default()
	}
	if d.Runtime.ScreenW == 0 && d.Runtime.ScreenH == 0 {
		d.Runtime = d.Runtime.WithSize(core.DefaultConfig().ScreenW, core.DefaultConfig().ScreenH)
	}
	if d.Logger == nil {
		d.Logger = log.New(io.Discard)
	}
	return d
}

type screen int

const (
	screenMenu screen = iota
	screenPlay
	screenScores
)

// SessionModel manages the full flow: menu -> play -> menu, with the
// scoreboard reachable from the menu. It is the top-level model for both
// local and SSH sessions.
type SessionModel struct {
	deps   Deps
	screen screen
	menu   MenuModel
	play   PlayModel
	scores ScoreboardModel
}

// NewSessionModel creates a session model. An empty start mode opens the
// menu; otherwise play begins immediately in that mode.
func NewSessionModel(deps Deps, start progression.Mode) SessionModel {
	deps = deps.withDefaults()
	m := SessionModel{
		deps:   deps,
		screen: screenMenu,
		menu:   NewMenuModel(deps.Store, deps.Runtime),
	}
	if start != "" {
		m.screen = screenPlay
		m.play = NewPlayModel(start, deps)
	}
	return m
}

// Init initializes the session model.
func (m SessionModel) Init() tea.Cmd {
	if m.screen == screenPlay {
		return m.play.Init()
	}
	return m.menu.Init()
}

// Update routes messages to the active screen.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		m.deps.Runtime = m.deps.Runtime.WithSize(ws.Width, ws.Height)
	}

	switch m.screen {
	case screenPlay:
		return m.updatePlay(msg)
	case screenScores:
		return m.updateScores(msg)
	default:
		return m.updateMenu(msg)
	}
}

func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := m.menu.Update(msg)
	m.menu = updated.(MenuModel)

	if m.menu.IsQuitting() {
		return m, tea.Quit
	}

	if m.menu.WantsScoreboard() {
		m.screen = screenScores
		m.scores = NewScoreboardModel(m.deps.Store, m.deps.Runtime.ScreenW, m.deps.Runtime.ScreenH)
		m.menu = NewMenuModel(m.deps.Store, m.deps.Runtime)
		return m, m.scores.Init()
	}

	if sel := m.menu.Selected(); sel != nil {
		m.screen = screenPlay
		m.play = NewPlayModel(sel.Mode, m.deps)
		return m, m.play.Init()
	}

	return m, cmd
}

func (m SessionModel) updatePlay(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := m.play.Update(msg)
	m.play = updated.(PlayModel)

	if m.play.IsQuitting() {
		return m, tea.Quit
	}

	if m.play.BackToMenu() {
		return m.toMenu()
	}

	return m, cmd
}

func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := m.scores.Update(msg)
	m.scores = updated.(ScoreboardModel)

	if m.scores.IsQuitting() {
		return m, tea.Quit
	}

	if m.scores.IsGoingBack() {
		return m.toMenu()
	}

	return m, cmd
}

// toMenu returns to a fresh menu so the high score is reread.
func (m SessionModel) toMenu() (tea.Model, tea.Cmd) {
	m.screen = screenMenu
	m.menu = NewMenuModel(m.deps.Store, m.deps.Runtime)
	return m, m.menu.Init()
}

// View renders the active screen.
func (m SessionModel) View() string {
	switch m.screen {
	case screenPlay:
		return m.play.View()
	case screenScores:
		return m.scores.View()
	default:
		return m.menu.View()
	}
}

// Run starts an interactive session on the local terminal and blocks until
// the user quits.
func Run(deps Deps, start progression.Mode) error {
	p := tea.NewProgram(NewSessionModel(deps, start), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
