package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme contains all visual styles for the game screens.
type Theme struct {
	// Play surface
	Prompt         lipgloss.Style
	Target         lipgloss.Style
	TargetCorrect  lipgloss.Style
	TargetWrong    lipgloss.Style
	Partial        lipgloss.Style
	PartialPending lipgloss.Style
	Input          lipgloss.Style

	// HUD styles
	HUDLabel     lipgloss.Style
	HUDValue     lipgloss.Style
	HUDSeparator lipgloss.Style
	Streak       lipgloss.Style

	// Cue styles
	Banner   lipgloss.Style
	Confetti []lipgloss.Style

	// Menu styles
	MenuTitle       lipgloss.Style
	MenuItemNormal  lipgloss.Style
	MenuItemActive  lipgloss.Style
	MenuDescription lipgloss.Style
	Help            lipgloss.Style
}

// DefaultTheme returns the default ocean theme.
func DefaultTheme() Theme {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(1, 4).
		Bold(true)

	return Theme{
		Prompt:         lipgloss.NewStyle().Foreground(lipgloss.Color("117")).Italic(true),
		Target:         box.BorderForeground(lipgloss.Color("39")).Foreground(lipgloss.Color("255")),
		TargetCorrect:  box.BorderForeground(lipgloss.Color("46")).Foreground(lipgloss.Color("46")),   // Green flash
		TargetWrong:    box.BorderForeground(lipgloss.Color("196")).Foreground(lipgloss.Color("196")), // Red flash
		Partial:        lipgloss.NewStyle().Foreground(lipgloss.Color("46")).Bold(true),
		PartialPending: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Input:          lipgloss.NewStyle().Foreground(lipgloss.Color("252")),

		HUDLabel:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		HUDValue:     lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Bold(true),
		HUDSeparator: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Streak:       lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true),

		Banner: lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		Confetti: []lipgloss.Style{
			lipgloss.NewStyle().Foreground(lipgloss.Color("205")), // Pink
			lipgloss.NewStyle().Foreground(lipgloss.Color("51")),  // Cyan
			lipgloss.NewStyle().Foreground(lipgloss.Color("226")), // Yellow
			lipgloss.NewStyle().Foreground(lipgloss.Color("46")),  // Green
			lipgloss.NewStyle().Foreground(lipgloss.Color("135")), // Purple
		},

		MenuTitle:       lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true),
		MenuItemNormal:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		MenuItemActive:  lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		MenuDescription: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Help:            lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
}

// MonochromeTheme returns a grayscale theme for terminals without color.
func MonochromeTheme() Theme {
	theme := DefaultTheme()
	theme.TargetCorrect = theme.Target.BorderStyle(lipgloss.DoubleBorder())
	theme.TargetWrong = theme.Target.BorderStyle(lipgloss.ThickBorder())
	theme.Confetti = []lipgloss.Style{lipgloss.NewStyle()}
	return theme
}

// Global theme variable (can be changed at runtime)
var currentTheme = DefaultTheme()

// SetTheme sets the global theme.
func SetTheme(theme Theme) {
	currentTheme = theme
}

// CurrentTheme returns the current global theme.
func CurrentTheme() Theme {
	return currentTheme
}
