package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

// PlayerKeyMap defines the key bindings for the playback view.
type PlayerKeyMap struct {
	Pause    key.Binding
	Rewind   key.Binding
	Snapshot key.Binding
	Help     key.Binding
	Quit     key.Binding
}

// DefaultPlayerKeyMap returns the standard playback bindings.
func DefaultPlayerKeyMap() PlayerKeyMap {
	return PlayerKeyMap{
		Pause: key.NewBinding(
			key.WithKeys(" ", "p"),
			key.WithHelp("space", "pause/resume"),
		),
		Rewind: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "rewind"),
		),
		Snapshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "save frame"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns the bindings shown in the mini help view.
func (k PlayerKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Pause, k.Rewind, k.Quit}
}

// FullHelp returns all bindings grouped in columns for the expanded help view.
func (k PlayerKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Pause, k.Rewind},
		{k.Snapshot, k.Help, k.Quit},
	}
}
