// Package render turns intensity grids into pixels: palette lookup, RGBA
// rasterization, and PNG or animated GIF output. It consumes finished grids
// and never reaches back into the math.
package render

import (
	"fmt"
	"image/color"
	"math"
	"sort"
)

// Palette maps an intensity in [0, 1] to a color. The zero value is not
// usable; obtain palettes through Lookup or Default.
type Palette struct {
	Name string
	rgba func(v float64) color.RGBA
}

// At returns the color for the given intensity. Out-of-range and NaN inputs
// clamp to the nearest end of the ramp.
func (p Palette) At(v float64) color.RGBA {
	if math.IsNaN(v) || v < 0 {
		v = 0
	} else if v > 1 {
		v = 1
	}
	return p.rgba(v)
}

// The heat ramp runs black through red and orange to white, the classic
// blackbody look. Reversed variants flip the ramp so intensity 1, the set
// interior, comes out dark on a light background.
var palettes = map[string]Palette{
	"heat":     {Name: "heat", rgba: heatRGBA},
	"heat-rev": {Name: "heat-rev", rgba: reversed(heatRGBA)},
	"gray":     {Name: "gray", rgba: grayRGBA},
	"gray-rev": {Name: "gray-rev", rgba: reversed(grayRGBA)},
}

// Default returns the reversed heat palette, the stock look for zoom renders.
func Default() Palette {
	return palettes["heat-rev"]
}

// Terminal returns the unreversed heat palette. Terminal playback usually
// sits on a dark background, where the set interior needs the hot end of
// the ramp to stay visible.
func Terminal() Palette {
	return palettes["heat"]
}

// Lookup returns the palette with the given name.
func Lookup(name string) (Palette, error) {
	p, ok := palettes[name]
	if !ok {
		return Palette{}, fmt.Errorf("render: unknown palette %q", name)
	}
	return p, nil
}

// Names returns every palette name, sorted.
func Names() []string {
	names := make([]string, 0, len(palettes))
	for name := range palettes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func heatRGBA(v float64) color.RGBA {
	return color.RGBA{
		R: clampByte(2 * v),
		G: clampByte(2*v - 0.5),
		B: clampByte(2*v - 1),
		A: 0xFF,
	}
}

func grayRGBA(v float64) color.RGBA {
	g := clampByte(v)
	return color.RGBA{R: g, G: g, B: g, A: 0xFF}
}

func reversed(rgba func(float64) color.RGBA) func(float64) color.RGBA {
	return func(v float64) color.RGBA {
		return rgba(1 - v)
	}
}

// clampByte maps [0, 1] onto the full byte range, saturating outside it.
func clampByte(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 0xFF
	}
	return uint8(math.Round(v * 0xFF))
}
