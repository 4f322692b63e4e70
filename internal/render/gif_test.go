package render

import (
	"bytes"
	"image/color"
	"image/gif"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/benw000/MandelbrotZoom/internal/fractal"
)

func TestWriteGIF(t *testing.T) {
	seq, err := fractal.NewSequencer(fractal.SequenceParams{
		Frames: 3,
		Focus:  0,
		Res:    fractal.Resolution{Width: 4, Height: 4},
		Depth:  1,
	})
	if err != nil {
		t.Fatalf("NewSequencer: %v", err)
	}
	pal, err := Lookup("gray")
	if err != nil {
		t.Fatalf("Lookup(gray): %v", err)
	}

	path := filepath.Join(t.TempDir(), "out", "zoom.gif")
	if err := WriteGIF(path, seq, pal, 200*time.Millisecond, nil); err != nil {
		t.Fatalf("WriteGIF: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open %s: %v", path, err)
	}
	defer f.Close()

	anim, err := gif.DecodeAll(f)
	if err != nil {
		t.Fatalf("decode %s: %v", path, err)
	}

	if len(anim.Image) != 3 {
		t.Fatalf("decoded %d frames, expected 3", len(anim.Image))
	}
	for i, delay := range anim.Delay {
		if delay != 20 {
			t.Errorf("frame %d delay = %d, expected 20 hundredths", i, delay)
		}
	}
	if anim.LoopCount != 0 {
		t.Errorf("LoopCount = %d, expected 0 (loop forever)", anim.LoopCount)
	}

	// The first frame covers the whole plane at depth 1: corner samples sit
	// outside the escape radius and come out at the gray ramp's low end,
	// interior samples at the high end.
	first := anim.Image[0]
	if first.Bounds().Dx() != 4 || first.Bounds().Dy() != 4 {
		t.Fatalf("frame bounds %v, expected 4x4", first.Bounds())
	}
	if got, want := toRGBA(first.At(0, 0)), (color.RGBA{0, 0, 0, 0xFF}); got != want {
		t.Errorf("corner pixel = %v, expected black %v", got, want)
	}
	if got, want := toRGBA(first.At(1, 1)), (color.RGBA{0xFF, 0xFF, 0xFF, 0xFF}); got != want {
		t.Errorf("interior pixel = %v, expected white %v", got, want)
	}
}

func TestGIFEncoderShortDelayRoundsUp(t *testing.T) {
	enc := NewGIFEncoder(Default(), 5*time.Millisecond)
	enc.Append(fractal.NewGrid(fractal.Resolution{Width: 4, Height: 4}))

	var buf bytes.Buffer
	if err := enc.EncodeTo(&buf); err != nil {
		t.Fatalf("EncodeTo: %v", err)
	}

	anim, err := gif.DecodeAll(&buf)
	if err != nil {
		t.Fatalf("DecodeAll: %v", err)
	}
	if len(anim.Delay) != 1 || anim.Delay[0] != 1 {
		t.Errorf("Delay = %v, expected [1]", anim.Delay)
	}
}

func TestGIFEncoderRejectsEmpty(t *testing.T) {
	enc := NewGIFEncoder(Default(), 200*time.Millisecond)
	if err := enc.EncodeTo(&bytes.Buffer{}); err == nil {
		t.Error("EncodeTo with no frames expected error, got nil")
	}
}
