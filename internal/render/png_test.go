package render

import (
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/benw000/MandelbrotZoom/internal/fractal"
)

func testSequencer(t *testing.T, frames int) *fractal.Sequencer {
	t.Helper()
	seq, err := fractal.NewSequencer(fractal.SequenceParams{
		Frames: frames,
		Focus:  complex(-0.75, 0.1),
		Res:    fractal.Resolution{Width: 8, Height: 8},
		Depth:  3,
	})
	if err != nil {
		t.Fatalf("NewSequencer: %v", err)
	}
	return seq
}

func toRGBA(c color.Color) color.RGBA {
	return color.RGBAModel.Convert(c).(color.RGBA)
}

func TestWritePNG(t *testing.T) {
	grid := fractal.NewGrid(fractal.Resolution{Width: 4, Height: 4})
	path := filepath.Join(t.TempDir(), "frame.png")

	if err := WritePNG(path, Image(grid, Default())); err != nil {
		t.Fatalf("WritePNG: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open %s: %v", path, err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode %s: %v", path, err)
	}
	if img.Bounds().Dx() != 4 || img.Bounds().Dy() != 4 {
		t.Errorf("decoded bounds %v, expected 4x4", img.Bounds())
	}
	// A zeroed grid comes out uniform at the palette's low end.
	if got, want := toRGBA(img.At(2, 2)), Default().At(0); got != want {
		t.Errorf("decoded pixel = %v, expected %v", got, want)
	}
}

func TestWriteFrames(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "frames")
	seq := testSequencer(t, 3)

	var steps []int
	paths, err := WriteFrames(dir, seq, Default(), func(step int) {
		steps = append(steps, step)
	})
	if err != nil {
		t.Fatalf("WriteFrames: %v", err)
	}

	if len(paths) != 3 {
		t.Fatalf("WriteFrames returned %d paths, expected 3", len(paths))
	}
	for i, path := range paths {
		if want := FramePath(dir, i); path != want {
			t.Errorf("paths[%d] = %s, expected %s", i, path, want)
		}
		if _, err := os.Stat(path); err != nil {
			t.Errorf("frame %d not written: %v", i, err)
		}
	}
	if len(steps) != 3 || steps[0] != 0 || steps[2] != 2 {
		t.Errorf("progress saw steps %v, expected [0 1 2]", steps)
	}

	f, err := os.Open(paths[0])
	if err != nil {
		t.Fatalf("open first frame: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode first frame: %v", err)
	}
	if img.Bounds().Dx() != 8 || img.Bounds().Dy() != 8 {
		t.Errorf("frame bounds %v, expected 8x8", img.Bounds())
	}
}

func TestFramePath(t *testing.T) {
	if got, want := FramePath("out", 7), filepath.Join("out", "frame_0007.png"); got != want {
		t.Errorf("FramePath(out, 7) = %s, expected %s", got, want)
	}
	if got, want := FramePath("out", 1234), filepath.Join("out", "frame_1234.png"); got != want {
		t.Errorf("FramePath(out, 1234) = %s, expected %s", got, want)
	}
}
