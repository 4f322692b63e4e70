package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/benw000/MandelbrotZoom/internal/fractal"
	"github.com/benw000/MandelbrotZoom/internal/render"
)

var (
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	pausedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Bold(true)
	playerHelp  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// Model is the Bubble Tea model for the zoom playback loop.
type Model struct {
	seq      *fractal.Sequencer
	canvas   *Canvas
	pal      render.Palette
	frame    fractal.Frame
	interval time.Duration
	playing  bool
	quitting bool
	keys     PlayerKeyMap
	help     help.Model
}

// NewModel creates a playback model over the given sequence.
// The first frame is computed up front so the view is never empty.
func NewModel(seq *fractal.Sequencer, pal render.Palette, interval time.Duration) Model {
	h := help.New()

	return Model{
		seq:      seq,
		canvas:   NewCanvas(pal),
		pal:      pal,
		frame:    seq.Next(),
		interval: interval,
		playing:  true,
		keys:     DefaultPlayerKeyMap(),
		help:     h,
	}
}

// Init starts the playback tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.interval)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Pause):
		m.playing = !m.playing

	case key.Matches(msg, m.keys.Rewind):
		m.seq.Rewind()
		m.frame = m.seq.Next()

	case key.Matches(msg, m.keys.Snapshot):
		m.saveSnapshot()

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}

	return m, nil
}

// handleTick advances playback by one frame. The tick loop keeps running
// while paused so resume picks up at the normal cadence.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.playing {
		m.frame = m.seq.Next()
	}
	return m, tickCmd(m.interval)
}

// saveSnapshot writes the current frame as a PNG under the user's home.
func (m *Model) saveSnapshot() {
	dir := filepath.Join(os.Getenv("HOME"), ".mandelzoom", "snapshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("frame_%04d_%s.png", m.frame.Index, timestamp)

	//nolint:errcheck // Best-effort save, playback continues regardless
	render.WritePNG(filepath.Join(dir, filename), render.Image(m.frame.Grid, m.pal))
}

// View renders the current frame, a status line, and the help bar.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(m.canvas.Render(m.frame.Grid))
	sb.WriteRune('\n')

	focus := m.seq.Params().Focus
	status := fmt.Sprintf("frame %d/%d  focus %g%+gi", m.frame.Index+1, m.seq.Len(), real(focus), imag(focus))
	sb.WriteString(statusStyle.Render(status))
	if !m.playing {
		sb.WriteString("  ")
		sb.WriteString(pausedStyle.Render("PAUSED"))
	}
	sb.WriteRune('\n')
	sb.WriteString(playerHelp.Render(m.help.View(m.keys)))

	return sb.String()
}

// IsQuitting returns true if the user requested to quit.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// Run starts the Bubble Tea playback program.
func Run(seq *fractal.Sequencer, pal render.Palette, interval time.Duration) error {
	model := NewModel(seq, pal, interval)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
