package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/pearldive/internal/progression"
	"github.com/vovakirdan/pearldive/internal/storage"
)

func sendSession(m SessionModel, msg tea.Msg) SessionModel {
	updated, _ := m.Update(msg)
	return updated.(SessionModel)
}

func TestSessionModelStartsInMenu(t *testing.T) {
	m := NewSessionModel(testDeps(), "")
	if m.screen != screenMenu {
		t.Fatalf("expected menu screen, got %v", m.screen)
	}

	m = sendSession(m, tea.KeyMsg{Type: tea.KeyDown})
	m = sendSession(m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.screen != screenPlay {
		t.Fatalf("expected play screen, got %v", m.screen)
	}
	if got := m.play.Engine().State().Mode; got != progression.ModeWords {
		t.Errorf("expected words mode, got %s", got)
	}
}

func TestSessionModelDirectStart(t *testing.T) {
	m := NewSessionModel(testDeps(), progression.ModeSpecial)
	if m.screen != screenPlay {
		t.Fatalf("expected play screen, got %v", m.screen)
	}
	if m.Init() == nil {
		t.Error("expected init command for play")
	}
}

func TestSessionModelEscReturnsToMenu(t *testing.T) {
	deps := testDeps()
	deps.Store = openTestStore(t)

	m := NewSessionModel(deps, progression.ModeLetters)
	for _, r := range m.play.Engine().State().CurrentTarget {
		m = sendSession(m, runeKey(r))
	}
	pearls := m.play.Engine().State().Pearls

	m = sendSession(m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.screen != screenMenu {
		t.Fatalf("expected menu screen, got %v", m.screen)
	}
	if m.menu.highScore != pearls {
		t.Errorf("expected fresh menu to show %d, got %d", pearls, m.menu.highScore)
	}
	if m.menu.Selected() != nil {
		t.Error("fresh menu should have no selection")
	}
}

func TestSessionModelScoreboardRoundTrip(t *testing.T) {
	m := NewSessionModel(testDeps(), "")

	m = sendSession(m, tea.KeyMsg{Type: tea.KeyTab})
	if m.screen != screenScores {
		t.Fatalf("expected scoreboard, got %v", m.screen)
	}

	m = sendSession(m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.screen != screenMenu {
		t.Fatalf("expected menu after back, got %v", m.screen)
	}
	if m.menu.WantsScoreboard() {
		t.Error("returned menu should not reopen the scoreboard")
	}
}

func TestSessionModelResizeCarriesToPlay(t *testing.T) {
	m := NewSessionModel(testDeps(), "")
	m = sendSession(m, tea.WindowSizeMsg{Width: 120, Height: 40})
	m = sendSession(m, tea.KeyMsg{Type: tea.KeyEnter})

	if m.play.width != 120 || m.play.height != 40 {
		t.Errorf("expected 120x40, got %dx%d", m.play.width, m.play.height)
	}
}

func TestSessionModelQuitFromMenu(t *testing.T) {
	m := NewSessionModel(testDeps(), "")
	_, cmd := m.Update(runeKey('q'))
	if cmd == nil {
		t.Error("expected quit command")
	}
}

func TestScoreboardListsBestSessions(t *testing.T) {
	store := openTestStore(t)
	start := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	for i, pearls := range []int{8, 20, 14} {
		_, err := store.SaveSession(progression.Summary{
			SessionID:     string(rune('a' + i)),
			Mode:          progression.ModeLetters,
			Pearls:        pearls,
			Level:         1,
			TotalCorrect:  pearls / 2,
			TotalAttempts: pearls / 2,
			Accuracy:      100,
			StartedAt:     start.Add(time.Duration(i) * time.Minute),
			Duration:      time.Minute,
		})
		if err != nil {
			t.Fatalf("SaveSession failed: %v", err)
		}
	}
	if err := store.SaveHighScore(20); err != nil {
		t.Fatalf("SaveHighScore failed: %v", err)
	}

	m := NewScoreboardModel(store, 100, 30)
	if m.highScore != 20 {
		t.Errorf("expected high score 20, got %d", m.highScore)
	}

	rows := m.table.Rows()
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	want := []string{"20", "14", "8"}
	for i, row := range rows {
		if row[1] != want[i] {
			t.Errorf("row %d: expected %s pearls, got %s", i, want[i], row[1])
		}
	}
	if rows[0][0] != "1" {
		t.Errorf("expected rank 1, got %s", rows[0][0])
	}
	if m.stats == nil || m.stats.Sessions != 3 || m.stats.BestPearls != 20 {
		t.Errorf("unexpected stats %+v", m.stats)
	}

	updated, _ := m.Update(runeKey('r'))
	m = updated.(ScoreboardModel)
	rows = m.table.Rows()
	if len(rows) != 3 || rows[0][1] != "14" {
		t.Errorf("expected most recent session first, got %v", rows)
	}
	updated, _ = m.Update(runeKey('r'))
	m = updated.(ScoreboardModel)

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = updated.(ScoreboardModel)
	if m.Mode() != progression.ModeWords {
		t.Errorf("expected words tab, got %s", m.Mode())
	}
	if len(m.table.Rows()) != 0 {
		t.Errorf("expected no words sessions, got %d", len(m.table.Rows()))
	}
}

func TestScoreboardWithoutStore(t *testing.T) {
	var store *storage.Store
	m := NewScoreboardModel(store, 60, 20)
	if len(m.sessions) != 0 {
		t.Errorf("expected no sessions, got %d", len(m.sessions))
	}

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = updated.(ScoreboardModel)
	if cmd != nil {
		t.Error("mode switch should not return a command")
	}
	if m.Mode() != progression.ModePassword {
		t.Errorf("expected wrap to password, got %s", m.Mode())
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		secs float64
		want string
	}{
		{0, "0:00"},
		{9.7, "0:09"},
		{90, "1:30"},
		{3600, "60:00"},
	}
	for _, tt := range tests {
		if got := formatDuration(tt.secs); got != tt.want {
			t.Errorf("formatDuration(%v) = %q, want %q", tt.secs, got, tt.want)
		}
	}
}

func TestSessionModelOldPlayTimersNeverFire(t *testing.T) {
	m := NewSessionModel(testDeps(), "")
	m = sendSession(m, tea.KeyMsg{Type: tea.KeyEnter})
	for _, r := range m.play.Engine().State().CurrentTarget {
		m = sendSession(m, runeKey(r))
	}

	oldOwner := m.play.sched.owner
	var stale []timerMsg
	for id := range m.play.sched.tasks {
		stale = append(stale, timerMsg{owner: oldOwner, id: id})
	}
	if len(stale) == 0 {
		t.Fatal("expected pending timers after a correct answer")
	}

	m = sendSession(m, tea.KeyMsg{Type: tea.KeyEsc})
	m = sendSession(m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.screen != screenPlay {
		t.Fatalf("expected play screen, got %v", m.screen)
	}
	for _, r := range m.play.Engine().State().CurrentTarget {
		m = sendSession(m, runeKey(r))
	}
	if !m.play.Engine().Advancing() {
		t.Fatal("expected the new session to wait before its next target")
	}
	target := m.play.Engine().State().CurrentTarget

	for _, msg := range stale {
		m = sendSession(m, msg)
	}

	if !m.play.Engine().Advancing() {
		t.Error("timer from the previous play screen advanced the new session")
	}
	if got := m.play.Engine().State().CurrentTarget; got != target {
		t.Errorf("target changed from %q to %q", target, got)
	}
}
