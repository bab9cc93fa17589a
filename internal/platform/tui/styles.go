package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/stroop/internal/game"
)

// inkStyles maps each playable color to the style used for the word.
// The word is rendered large and bold in its ink color; naming that ink
// while ignoring the word is the whole game.
var inkStyles = map[game.ColorName]lipgloss.Style{
	game.Red:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
	game.Green:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10")),
	game.Blue:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
	game.Yellow: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11")),
}

// keyHintStyles color the answer-key hints with their own color so the
// mapping is readable at a glance.
var keyHintStyles = map[game.ColorName]lipgloss.Style{
	game.Red:    lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	game.Green:  lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	game.Blue:   lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	game.Yellow: lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
}

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	cursorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14"))

	correctStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("10"))

	wrongStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("9"))

	recordToastStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("11")).
			Padding(0, 1)

	statLabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	statValueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("15"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)

// inkStyle returns the word style for a color, falling back to plain bold.
func inkStyle(c game.ColorName) lipgloss.Style {
	if s, ok := inkStyles[c]; ok {
		return s
	}
	return lipgloss.NewStyle().Bold(true)
}
