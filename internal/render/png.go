package render

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/benw000/MandelbrotZoom/internal/fractal"
)

// FramePath names the PNG file for one frame of a sequence, zero-padded so
// the files sort in playback order.
func FramePath(dir string, step int) string {
	return filepath.Join(dir, fmt.Sprintf("frame_%04d.png", step))
}

// WritePNG encodes the image to the given path, replacing any existing file.
func WritePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("render: create %s: %w", path, err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("render: encode %s: %w", path, err)
	}
	return nil
}

// WriteFrames renders every frame of the sequence into dir as numbered PNG
// files, creating dir if needed. The progress callback, if non-nil, runs
// after each frame with the step just written. Returns the written paths in
// frame order.
func WriteFrames(dir string, seq *fractal.Sequencer, pal Palette, progress func(step int)) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("render: create output dir %s: %w", dir, err)
	}

	paths := make([]string, 0, seq.Len())
	for step := 0; step < seq.Len(); step++ {
		frame, err := seq.FrameAt(step)
		if err != nil {
			return nil, err
		}
		path := FramePath(dir, step)
		if err := WritePNG(path, Image(frame.Grid, pal)); err != nil {
			return nil, err
		}
		paths = append(paths, path)
		if progress != nil {
			progress(step)
		}
	}
	return paths, nil
}
