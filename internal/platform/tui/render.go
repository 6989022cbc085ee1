package tui

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/pearldive/internal/core"
	"github.com/vovakirdan/pearldive/internal/progression"
)

const (
	confettiSymbols  = "*+o.~^"
	confettiMaxWidth = 40
)

// centerText centers a line or block within the given width.
// ANSI sequences do not count towards the width.
func centerText(text string, width int) string {
	if width <= 0 || lipgloss.Width(text) >= width {
		return text
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, text)
}

// renderHUD draws the level, pearl, best and accuracy counters.
func renderHUD(t Theme, s progression.GameState, shownPearls, streakMin int) string {
	sep := t.HUDSeparator.Render("  |  ")
	field := func(label string, value any) string {
		return t.HUDLabel.Render(label+" ") + t.HUDValue.Render(fmt.Sprint(value))
	}

	parts := []string{
		field("Level", s.Level),
		field("Pearls", shownPearls),
		field("Best", s.HighScore),
		field("Accuracy", fmt.Sprintf("%d%%", s.Accuracy())),
	}
	line := strings.Join(parts, sep)

	if s.Streak >= streakMin {
		line += sep + t.Streak.Render(fmt.Sprintf("Streak x%d", s.Streak))
	}
	return line
}

// renderTarget boxes the target, tinted by the current flash.
func renderTarget(t Theme, target string, flash flashKind) string {
	style := t.Target
	switch flash {
	case flashCorrect:
		style = t.TargetCorrect
	case flashIncorrect:
		style = t.TargetWrong
	}
	return style.Render(spaced(target))
}

// renderPartial shows matched letters of the target and blanks for the rest.
func renderPartial(t Theme, target, partial string) string {
	matched := len([]rune(partial))
	var b strings.Builder
	for i, r := range []rune(target) {
		if i > 0 {
			b.WriteRune(' ')
		}
		if i < matched {
			b.WriteString(t.Partial.Render(string(r)))
		} else {
			b.WriteString(t.PartialPending.Render("_"))
		}
	}
	return b.String()
}

// renderConfetti draws a strip of colored symbols. The seed fixes the
// pattern so the strip does not flicker between frames.
func renderConfetti(t Theme, seed int64, width int) string {
	n := core.Clamp(width-4, 1, confettiMaxWidth)
	rng := rand.New(rand.NewSource(seed))

	var b strings.Builder
	for i := 0; i < n; i++ {
		sym := string(confettiSymbols[rng.Intn(len(confettiSymbols))])
		style := t.Confetti[rng.Intn(len(t.Confetti))]
		b.WriteString(style.Render(sym))
	}
	return b.String()
}

// spaced puts a space between characters so short targets read clearly.
func spaced(s string) string {
	runes := []rune(s)
	if len(runes) > 6 {
		return s
	}
	parts := make([]string, len(runes))
	for i, r := range runes {
		parts[i] = string(r)
	}
	return strings.Join(parts, " ")
}
