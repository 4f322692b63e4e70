package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/benw000/MandelbrotZoom/internal/fractal"
	"github.com/benw000/MandelbrotZoom/internal/render"
)

// shadeRamp orders glyphs from empty space to dense ink. Pixels inside the
// set land on the dense end, escaped pixels fade toward whitespace.
const shadeRamp = " .:-=+*#%@"

// colorLevels is the number of palette samples used for terminal colors.
const colorLevels = 32

// Canvas converts intensity grids to styled terminal text.
type Canvas struct {
	ramp   []rune
	styles []lipgloss.Style
}

// NewCanvas builds a canvas that colors glyphs with the given palette.
func NewCanvas(pal render.Palette) *Canvas {
	styles := make([]lipgloss.Style, colorLevels)
	for i := range styles {
		c := pal.At(float64(i) / float64(colorLevels-1))
		hex := fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
		styles[i] = lipgloss.NewStyle().Foreground(lipgloss.Color(hex))
	}
	return &Canvas{ramp: []rune(shadeRamp), styles: styles}
}

func clamp01(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// level quantizes an intensity to a palette style index.
func (c *Canvas) level(v float64) int {
	return int(math.Round(clamp01(v) * float64(colorLevels-1)))
}

// shade picks the glyph for an intensity.
func (c *Canvas) shade(v float64) rune {
	return c.ramp[int(math.Round(clamp01(v)*float64(len(c.ramp)-1)))]
}

// Render converts a grid to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func (c *Canvas) Render(grid *fractal.Grid) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(grid.Width*grid.Height*2 + grid.Height)

	for v := 0; v < grid.Height; v++ {
		if v > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		u := 0
		for u < grid.Width {
			startLevel := c.level(grid.At(u, v))

			var run strings.Builder
			for u < grid.Width {
				val := grid.At(u, v)
				if c.level(val) != startLevel {
					break
				}
				run.WriteRune(c.shade(val))
				u++
			}

			sb.WriteString(c.styles[startLevel].Render(run.String()))
		}
	}
	return sb.String()
}
