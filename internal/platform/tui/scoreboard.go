package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/pearldive/internal/progression"
	"github.com/vovakirdan/pearldive/internal/storage"
)

const (
	minWidthForPanel = 80 // Below this the stats panel is hidden
	panelWidth       = 26
	maxScores        = 100
	recentLimit      = 20
)

// scoreView selects which sessions the table lists.
type scoreView int

const (
	viewBest scoreView = iota
	viewRecent
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextMode key.Binding
	PrevMode key.Binding
	Recent   key.Binding
	Back     key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextMode, k.PrevMode, k.Recent, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.NextMode, k.PrevMode, k.Recent},
		{k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll"),
		),
		NextMode: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next mode"),
		),
		PrevMode: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev mode"),
		),
		Recent: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "best/recent"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc", "menu"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel shows recorded sessions per mode with a stats panel.
// A nil store shows empty tables.
type ScoreboardModel struct {
	store    *storage.Store
	modes    []progression.Mode
	mode     int
	view     scoreView
	sessions []storage.SessionRecord
	stats    *storage.ModeStats

	highScore int
	table     table.Model
	help      help.Model
	keys      ScoreboardKeyMap

	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewScoreboardModel creates a scoreboard opened on the first mode.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		store:  store,
		modes:  progression.Modes(),
		help:   help.New(),
		keys:   DefaultScoreboardKeyMap(),
		width:  width,
		height: height,
	}
	if store != nil {
		if hs, err := store.LoadHighScore(); err == nil {
			m.highScore = hs
		}
	}
	m.table = m.newTable()
	m.reload()
	return m
}

func (m ScoreboardModel) showPanel() bool {
	return m.width >= minWidthForPanel
}

func (m ScoreboardModel) newTable() table.Model {
	dateWidth := 14
	avail := m.width - 6
	if m.showPanel() {
		avail -= panelWidth + 4
	}
	if avail > 50 {
		dateWidth = 18
	}

	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Pearls", Width: 7},
		{Title: "Level", Width: 6},
		{Title: "Acc", Width: 5},
		{Title: "Time", Width: 6},
		{Title: "Date", Width: dateWidth},
	}

	th := CurrentTheme()
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(th.HUDSeparator.GetForeground()).
		BorderBottom(true).
		Bold(true)
	styles.Selected = styles.Selected.
		Foreground(th.MenuItemActive.GetForeground()).
		Bold(false)

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-11, 3)),
	)
	t.SetStyles(styles)
	return t
}

// reload reads sessions and stats for the current mode and view.
func (m *ScoreboardModel) reload() {
	m.sessions = nil
	m.stats = nil

	if m.store != nil {
		mode := m.modes[m.mode]
		var (
			sessions []storage.SessionRecord
			err      error
		)
		if m.view == viewRecent {
			sessions, err = m.store.RecentSessions(recentLimit)
			sessions = filterMode(sessions, mode)
		} else {
			sessions, err = m.store.TopSessions(mode, maxScores)
		}
		if err == nil {
			m.sessions = sessions
		}
		if st, err := m.store.GetModeStats(mode); err == nil {
			m.stats = st
		}
	}

	m.table.SetRows(sessionRows(m.sessions))
	m.table.GotoTop()
}

func filterMode(sessions []storage.SessionRecord, mode progression.Mode) []storage.SessionRecord {
	out := sessions[:0]
	for _, s := range sessions {
		if s.Mode == mode {
			out = append(out, s)
		}
	}
	return out
}

// sessionRows formats session records as table rows.
func sessionRows(sessions []storage.SessionRecord) []table.Row {
	rows := make([]table.Row, len(sessions))
	for i, s := range sessions {
		rows[i] = table.Row{
			fmt.Sprint(i + 1),
			fmt.Sprint(s.Pearls),
			fmt.Sprint(s.Level),
			fmt.Sprintf("%d%%", s.Accuracy),
			formatDuration(s.Duration.Seconds()),
			s.StartedAt.Format("Jan 02 15:04"),
		}
	}
	return rows
}

// formatDuration renders seconds as m:ss.
func formatDuration(secs float64) string {
	total := int(secs)
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, nil
		case key.Matches(msg, m.keys.NextMode):
			m.mode = (m.mode + 1) % len(m.modes)
			m.reload()
			return m, nil
		case key.Matches(msg, m.keys.PrevMode):
			m.mode = (m.mode + len(m.modes) - 1) % len(m.modes)
			m.reload()
			return m, nil
		case key.Matches(msg, m.keys.Recent):
			if m.view == viewBest {
				m.view = viewRecent
			} else {
				m.view = viewBest
			}
			m.reload()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.table = m.newTable()
		m.table.SetRows(sessionRows(m.sessions))
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	th := CurrentTheme()
	heading := "BEST DIVES"
	if m.view == viewRecent {
		heading = "RECENT DIVES"
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(th.MenuTitle.Render(heading), m.width))
	b.WriteString("\n")
	b.WriteString(centerText(m.renderTabs(th), m.width))
	b.WriteString("\n\n")

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(th.HUDSeparator.GetForeground()).
		Padding(0, 1)

	body := box.Render(m.renderSessions())
	if m.showPanel() {
		body = lipgloss.JoinHorizontal(lipgloss.Top,
			box.Width(panelWidth).Render(m.renderStats(th)),
			"  ",
			body,
		)
	}
	b.WriteString(centerText(body, m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(th.Help.Render(m.help.View(m.keys)), m.width))

	return b.String()
}

// renderTabs draws the mode names with the current one highlighted.
func (m ScoreboardModel) renderTabs(th Theme) string {
	tabs := make([]string, len(m.modes))
	for i, mode := range m.modes {
		if i == m.mode {
			tabs[i] = th.MenuItemActive.Render("[" + mode.Title() + "]")
		} else {
			tabs[i] = th.MenuItemNormal.Render(" " + mode.Title() + " ")
		}
	}
	return strings.Join(tabs, " ")
}

// renderStats draws the per-mode totals and the all-time high score.
func (m ScoreboardModel) renderStats(th Theme) string {
	line := func(label string, value any) string {
		return th.HUDLabel.Render(fmt.Sprintf("%-10s", label)) + th.HUDValue.Render(fmt.Sprint(value))
	}

	lines := []string{
		th.MenuDescription.Render(m.modes[m.mode].Prompt()),
		"",
	}
	if m.stats != nil && m.stats.Sessions > 0 {
		lines = append(lines,
			line("Dives", m.stats.Sessions),
			line("Best", m.stats.BestPearls),
			line("Average", fmt.Sprintf("%.1f", m.stats.AvgPearls)),
			line("Correct", m.stats.TotalCorrect),
			line("Last", m.stats.LastPlayed.Format("Jan 02")),
		)
	} else {
		lines = append(lines, th.MenuDescription.Render("Not played yet"))
	}
	lines = append(lines, "", line("All-time", m.highScore))
	return strings.Join(lines, "\n")
}

// renderSessions renders the table or a hint when it is empty.
func (m ScoreboardModel) renderSessions() string {
	if len(m.sessions) == 0 {
		return CurrentTheme().MenuDescription.
			Italic(true).
			Padding(2, 4).
			Render("No dives recorded yet.\nPlay a round to collect some pearls!")
	}
	return m.table.View()
}

// Mode returns the mode currently shown.
func (m ScoreboardModel) Mode() progression.Mode {
	return m.modes[m.mode]
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}
