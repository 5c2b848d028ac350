// Package adapter holds the edges of the simulation: input keys and randomness.
package adapter

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	m "gooze.dev/pkg/snake/internal/model"
)

// KeyMap binds terminal keys to game actions.
type KeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Restart key.Binding
	Quit    key.Binding
}

// DefaultKeyMap returns arrow, wasd and vi-style bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w", "k"),
			key.WithHelp("↑/w/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("↓/s/j", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a/h", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d/l", "right"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Restart, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Restart, k.Quit},
	}
}

// DirectionFor maps a key press to a direction. Unknown keys map to Right.
func (k KeyMap) DirectionFor(msg tea.KeyMsg) m.Direction {
	switch {
	case key.Matches(msg, k.Up):
		return m.Up
	case key.Matches(msg, k.Down):
		return m.Down
	case key.Matches(msg, k.Left):
		return m.Left
	default:
		return m.Right
	}
}

// IsRestart reports whether msg restarts the session.
func (k KeyMap) IsRestart(msg tea.KeyMsg) bool {
	return key.Matches(msg, k.Restart)
}

// IsQuit reports whether msg quits the program.
func (k KeyMap) IsQuit(msg tea.KeyMsg) bool {
	return key.Matches(msg, k.Quit)
}
