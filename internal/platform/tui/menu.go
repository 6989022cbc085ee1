package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/pearldive/internal/core"
	"github.com/vovakirdan/pearldive/internal/progression"
	"github.com/vovakirdan/pearldive/internal/storage"
)

// MenuItem represents a selectable mode in the menu.
type MenuItem struct {
	Mode   progression.Mode
	Title  string
	Prompt string
}

// MenuModel is the Bubble Tea model for the mode picker.
type MenuModel struct {
	items     []MenuItem
	cursor    int
	width     int
	height    int
	highScore int
	keyMapper *KeyMapper

	quitting       bool
	selected       *MenuItem
	openScoreboard bool
}

// NewMenuModel creates a new menu model. The high score is read once from
// store, which may be nil.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig) MenuModel {
	modes := progression.Modes()
	items := make([]MenuItem, 0, len(modes))
	for _, mode := range modes {
		items = append(items, MenuItem{
			Mode:   mode,
			Title:  mode.Title(),
			Prompt: mode.Prompt(),
		})
	}

	highScore := 0
	if store != nil {
		if hs, err := store.LoadHighScore(); err == nil {
			highScore = hs
		}
	}

	return MenuModel{
		items:     items,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		highScore: highScore,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation. The cursor wraps
// around and digits pick a mode directly.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if n, ok := digitKey(msg); ok && n >= 1 && n <= len(m.items) {
		m.cursor = n - 1
		m.pick()
		return m, nil
	}

	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		m.cursor = (m.cursor + len(m.items) - 1) % len(m.items)

	case MenuActionDown:
		m.cursor = (m.cursor + 1) % len(m.items)

	case MenuActionSelect:
		m.pick()

	case MenuActionScoreboard:
		m.openScoreboard = true
	}

	return m, nil
}

func (m *MenuModel) pick() {
	item := m.items[m.cursor]
	m.selected = &item
}

// digitKey reports the value of a single digit key press.
func digitKey(msg tea.KeyMsg) (int, bool) {
	if msg.Type != tea.KeyRunes || len(msg.Runes) != 1 {
		return 0, false
	}
	r := msg.Runes[0]
	if r < '0' || r > '9' {
		return 0, false
	}
	return int(r - '0'), true
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	t := CurrentTheme()
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(t.MenuTitle.Render("P E A R L   D I V E"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(t.MenuDescription.Render("Choose your dive"), m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		marker, style := "  ", t.MenuItemNormal
		if i == m.cursor {
			marker, style = "> ", t.MenuItemActive
		}

		line := style.Render(fmt.Sprintf("%s%d. %-18s", marker, i+1, item.Title)) + t.MenuDescription.Render(item.Prompt)
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(t.HUDLabel.Render("Best ")+t.HUDValue.Render(fmt.Sprintf("%d pearls", m.highScore)), m.width))
	b.WriteString("\n\n")

	controls := fmt.Sprintf("Up/Down: Navigate  |  Enter or 1-%d: Dive  |  Tab: Scores  |  Q: Quit", len(m.items))
	b.WriteString(centerText(t.Help.Render(controls), m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}
