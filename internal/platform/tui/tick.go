// Package tui provides the Bubble Tea integration for the zoom viewer.
// It handles the terminal UI loop, input mapping, and frame playback.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a playback step.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the playback interval.
func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
