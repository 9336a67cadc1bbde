package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// GameKeyMap defines the key bindings for the game view.
// The mouse is the main controller; keys nudge the paddle target.
type GameKeyMap struct {
	Left       key.Binding
	Right      key.Binding
	Far        key.Binding
	Near       key.Binding
	Start      key.Binding
	Screenshot key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Start, k.Left, k.Right, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Far, k.Near},
		{k.Start, k.Screenshot},
		{k.Help, k.Quit},
	}
}

// DefaultGameKeyMap returns default key bindings.
func DefaultGameKeyMap() GameKeyMap {
	return GameKeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d", "right"),
		),
		Far: key.NewBinding(
			key.WithKeys("up", "w", "k"),
			key.WithHelp("↑/w", "away"),
		),
		Near: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("↓/s", "closer"),
		),
		Start: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("click/space", "start"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Nudge returns the paddle target step for a movement key, in whole steps.
func (k GameKeyMap) Nudge(msg tea.KeyMsg) (dx, dz float64, ok bool) {
	switch {
	case key.Matches(msg, k.Left):
		return -1, 0, true
	case key.Matches(msg, k.Right):
		return 1, 0, true
	case key.Matches(msg, k.Far):
		return 0, -1, true
	case key.Matches(msg, k.Near):
		return 0, 1, true
	}
	return 0, 0, false
}
