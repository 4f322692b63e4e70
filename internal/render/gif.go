package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/benw000/MandelbrotZoom/internal/fractal"
)

// GIFEncoder accumulates frames for one animated GIF. All frames share one
// 256-entry color table sampled from the palette, so appending is a direct
// intensity-to-index quantization with no color matching.
type GIFEncoder struct {
	anim  gif.GIF
	table color.Palette
	delay int
}

// NewGIFEncoder prepares an encoder whose frames display for the given
// duration each. GIF timing has 10ms granularity; shorter delays round up to
// one tick.
func NewGIFEncoder(pal Palette, delay time.Duration) *GIFEncoder {
	table := make(color.Palette, 256)
	for i := range table {
		table[i] = pal.At(float64(i) / 255)
	}

	ticks := int(delay / (10 * time.Millisecond))
	if ticks < 1 {
		ticks = 1
	}
	return &GIFEncoder{table: table, delay: ticks}
}

// Append adds one grid as the next frame of the animation.
func (e *GIFEncoder) Append(grid *fractal.Grid) {
	img := image.NewPaletted(image.Rect(0, 0, grid.Width, grid.Height), e.table)
	for v := 0; v < grid.Height; v++ {
		for u := 0; u < grid.Width; u++ {
			img.SetColorIndex(u, v, clampByte(grid.At(u, v)))
		}
	}
	e.anim.Image = append(e.anim.Image, img)
	e.anim.Delay = append(e.anim.Delay, e.delay)
}

// EncodeTo writes the accumulated animation. The GIF loops forever, matching
// the live player's wrap-around playback.
func (e *GIFEncoder) EncodeTo(w io.Writer) error {
	if len(e.anim.Image) == 0 {
		return errors.New("render: gif has no frames")
	}
	e.anim.LoopCount = 0
	if err := gif.EncodeAll(w, &e.anim); err != nil {
		return fmt.Errorf("render: encode gif: %w", err)
	}
	return nil
}

// WriteGIF renders the whole sequence into one animated GIF at path,
// creating parent directories if needed. The progress callback, if non-nil,
// runs after each frame is rasterized.
func WriteGIF(path string, seq *fractal.Sequencer, pal Palette, delay time.Duration, progress func(step int)) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("render: create output dir %s: %w", dir, err)
		}
	}

	enc := NewGIFEncoder(pal, delay)
	for step := 0; step < seq.Len(); step++ {
		frame, err := seq.FrameAt(step)
		if err != nil {
			return err
		}
		enc.Append(frame.Grid)
		if progress != nil {
			progress(step)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("render: create %s: %w", path, err)
	}
	defer f.Close()

	return enc.EncodeTo(f)
}
