package tui

import (
	"charm.land/lipgloss/v2"
)

// Package-level styles instance (nil until the terminal background is known)
var appStyles *Styles

// Styles holds the picker styles. Colors are left to the terminal theme.
type Styles struct {
	BorderStyle   lipgloss.Style
	TitleStyle    lipgloss.Style
	PromptStyle   lipgloss.Style
	SelectedStyle lipgloss.Style
	CountStyle    lipgloss.Style
	EmptyStyle    lipgloss.Style
	FooterStyle   lipgloss.Style
}

func newStyles() *Styles {
	// NoColor defers to the terminal's own palette.
	noColor := lipgloss.NoColor{}

	return &Styles{
		BorderStyle: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(noColor).
			Padding(0, 1),

		TitleStyle: lipgloss.NewStyle().
			Foreground(noColor).
			Bold(true),

		PromptStyle: lipgloss.NewStyle().
			Foreground(noColor).
			Bold(true),

		SelectedStyle: lipgloss.NewStyle().
			Foreground(noColor).
			Reverse(true),

		CountStyle: lipgloss.NewStyle().
			Foreground(noColor).
			Faint(true),

		EmptyStyle: lipgloss.NewStyle().
			Foreground(noColor).
			Italic(true),

		FooterStyle: lipgloss.NewStyle().
			Foreground(noColor).
			Italic(true),
	}
}

// getStyles returns the current styles instance, with fallback for startup
func getStyles() *Styles {
	if appStyles == nil {
		return newStyles()
	}
	return appStyles
}
