package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/benw000/MandelbrotZoom/internal/fractal"
)

// PickerModel is the Bubble Tea model for the landmark picker.
type PickerModel struct {
	items    []fractal.Landmark
	cursor   int
	width    int
	height   int
	quitting bool
	selected *fractal.Landmark // Set when user picks a target
}

// NewPickerModel creates a picker over the known landmarks, with the
// full set at the top as a default target.
func NewPickerModel(width, height int) PickerModel {
	landmarks := fractal.Landmarks()
	items := make([]fractal.Landmark, 0, len(landmarks)+1)
	items = append(items, fractal.Landmark{Name: "origin", Title: "Full Set", Focus: 0})
	items = append(items, landmarks...)

	return PickerModel{
		items:  items,
		cursor: 0,
		width:  width,
		height: height,
	}
}

// Init initializes the picker model.
func (m PickerModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the picker.
func (m PickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for picker navigation.
func (m PickerModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q", "esc":
		m.quitting = true
		return m, tea.Quit

	case "up", "k", "w":
		if m.cursor > 0 {
			m.cursor--
		}

	case "down", "j", "s":
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case "enter", " ":
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
			return m, tea.Quit // Exit picker to start playback
		}
	}

	return m, nil
}

// View renders the picker.
func (m PickerModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	// Title
	title := "  M A N D E L Z O O M  "
	b.WriteString("\n")
	b.WriteString(centerText(title, m.width))
	b.WriteString("\n\n")

	// Subtitle
	subtitle := "Select a zoom target"
	b.WriteString(centerText(subtitle, m.width))
	b.WriteString("\n\n")

	// Landmark list
	for i, item := range m.items {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}

		line := fmt.Sprintf("%s%-16s %g%+gi", cursor, item.Title, real(item.Focus), imag(item.Focus))
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	// Footer with controls
	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Select  |  Q: Quit"
	b.WriteString(centerText(controls, m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the picked landmark, or nil if none picked.
func (m PickerModel) Selected() *fractal.Landmark {
	return m.selected
}

// IsQuitting returns true if the user requested to quit.
func (m PickerModel) IsQuitting() bool {
	return m.quitting
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	if len(text) >= width {
		return text
	}
	padding := (width - len(text)) / 2
	return strings.Repeat(" ", padding) + text
}

// RunPicker runs the landmark picker and returns the chosen target.
// ok is false when the user quit without picking.
func RunPicker(width, height int) (fractal.Landmark, bool, error) {
	model := NewPickerModel(width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return fractal.Landmark{}, false, err
	}

	m, ok := finalModel.(PickerModel)
	if !ok || m.Selected() == nil {
		return fractal.Landmark{}, false, nil
	}

	return *m.Selected(), true, nil
}
