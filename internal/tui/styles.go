// Package tui drives a line-editing engine against the terminal: it
// feeds decoded key events into the engine and renders its observable
// state with Bubble Tea.
package tui

import "github.com/charmbracelet/lipgloss"

// Terminal-adaptive colors that work in both light and dark terminals.
var (
	subtle    = lipgloss.AdaptiveColor{Light: "#666666", Dark: "#999999"}
	highlight = lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#7D56F4"}
	errColor  = lipgloss.AdaptiveColor{Light: "#FF0000", Dark: "#FF6666"}
)

var (
	promptStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(highlight)

	clockStyle = lipgloss.NewStyle().
			Foreground(subtle)

	searchStyle = lipgloss.NewStyle().
			Foreground(highlight)

	infoStyle = lipgloss.NewStyle().
			Foreground(errColor)

	candidateStyle = lipgloss.NewStyle().
			PaddingRight(2).
			Foreground(subtle)

	candidateSelectedStyle = lipgloss.NewStyle().
				PaddingRight(2).
				Bold(true).
				Foreground(highlight)
)
