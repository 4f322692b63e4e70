package render

import (
	"image"

	"github.com/benw000/MandelbrotZoom/internal/fractal"
)

// Image rasterizes a grid through the palette. Grid columns map to x and
// rows to y, so the image shows the complex plane with the real axis
// rightward and the imaginary axis upward.
func Image(grid *fractal.Grid, pal Palette) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, grid.Width, grid.Height))
	for v := 0; v < grid.Height; v++ {
		for u := 0; u < grid.Width; u++ {
			img.SetRGBA(u, v, pal.At(grid.At(u, v)))
		}
	}
	return img
}
