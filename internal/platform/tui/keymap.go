package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/stroop/internal/game"
)

// KeyMap defines the key bindings for the whole app. Answer keys only
// apply while playing; navigation keys only in the menus, so the reuse
// of r (red / replay) and b (blue / back) never collides.
type KeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Select  key.Binding
	Back    key.Binding
	Quit    key.Binding
	Replay  key.Binding
	Records key.Binding

	Red    key.Binding
	Green  key.Binding
	Blue   key.Binding
	Yellow key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k", "w"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j", "s"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "select"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Replay: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "play again"),
		),
		Records: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "records"),
		),
		Red: key.NewBinding(
			key.WithKeys("r", "1"),
			key.WithHelp("r/1", "red"),
		),
		Green: key.NewBinding(
			key.WithKeys("g", "2"),
			key.WithHelp("g/2", "green"),
		),
		Blue: key.NewBinding(
			key.WithKeys("b", "3"),
			key.WithHelp("b/3", "blue"),
		),
		Yellow: key.NewBinding(
			key.WithKeys("y", "4"),
			key.WithHelp("y/4", "yellow"),
		),
	}
}

// Answer maps a key press to a color answer. The second return is false
// when the key is not an answer key.
func (k KeyMap) Answer(msg tea.KeyMsg) (game.ColorName, bool) {
	switch {
	case key.Matches(msg, k.Red):
		return game.Red, true
	case key.Matches(msg, k.Green):
		return game.Green, true
	case key.Matches(msg, k.Blue):
		return game.Blue, true
	case key.Matches(msg, k.Yellow):
		return game.Yellow, true
	}
	return 0, false
}

// ShortHelp returns bindings for the condensed help line.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Records, k.Quit}
}

// FullHelp returns bindings for the expanded help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Select},
		{k.Records, k.Back, k.Quit},
	}
}
