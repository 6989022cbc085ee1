package tui

import "testing"

func TestSetTheme(t *testing.T) {
	t.Cleanup(func() { SetTheme(DefaultTheme()) })

	SetTheme(MonochromeTheme())
	if got := len(CurrentTheme().Confetti); got != 1 {
		t.Errorf("expected a single confetti style, got %d", got)
	}
}
