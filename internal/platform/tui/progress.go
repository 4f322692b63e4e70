package tui

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ErrRenderCancelled is returned when the user aborts an in-flight render.
var ErrRenderCancelled = errors.New("tui: render cancelled")

const maxBarWidth = 60

var progressLabelStyle = lipgloss.NewStyle().Bold(true)

// frameRenderedMsg reports a completed frame by zero-based step.
type frameRenderedMsg int

// renderDoneMsg reports that the render worker finished.
type renderDoneMsg struct {
	err error
}

// ProgressModel is the Bubble Tea model for the render progress bar.
type ProgressModel struct {
	bar   progress.Model
	label string
	total int
	done  int
	err   error
}

// NewProgressModel creates a progress model expecting total steps.
func NewProgressModel(label string, total int) ProgressModel {
	return ProgressModel{
		bar:   progress.New(progress.WithDefaultGradient()),
		label: label,
		total: total,
	}
}

// Init implements tea.Model.
func (m ProgressModel) Init() tea.Cmd {
	return nil
}

// Update handles progress reports from the render worker.
func (m ProgressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.err = ErrRenderCancelled
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		width := msg.Width - 8
		if width > maxBarWidth {
			width = maxBarWidth
		}
		if width > 0 {
			m.bar.Width = width
		}

	case frameRenderedMsg:
		m.done = int(msg) + 1

	case renderDoneMsg:
		m.err = msg.err
		return m, tea.Quit
	}

	return m, nil
}

// View renders the label, bar, and frame counter.
func (m ProgressModel) View() string {
	pct := 1.0
	if m.total > 0 {
		pct = float64(m.done) / float64(m.total)
	}
	return fmt.Sprintf("%s\n%s %d/%d\n",
		progressLabelStyle.Render(m.label), m.bar.ViewAs(pct), m.done, m.total)
}

// RunRenderProgress drives work on a background goroutine while a progress
// bar tracks it. work receives a callback to report each completed step.
// Returns the worker's error, or ErrRenderCancelled if the user quit early.
func RunRenderProgress(label string, total int, work func(report func(step int)) error) error {
	p := tea.NewProgram(NewProgressModel(label, total))

	go func() {
		err := work(func(step int) {
			p.Send(frameRenderedMsg(step))
		})
		p.Send(renderDoneMsg{err: err})
	}()

	final, err := p.Run()
	if err != nil {
		return err
	}
	if m, ok := final.(ProgressModel); ok {
		return m.err
	}
	return nil
}
