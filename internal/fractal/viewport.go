package fractal

import "fmt"

// Resolution is the pixel size of every frame in a zoom sequence. It stays
// fixed for a whole run; changing it mid-sequence would re-anchor the
// viewport math.
type Resolution struct {
	Width  int
	Height int
}

// Validate checks that the resolution can back a viewport. Both sides must
// be even and greater than 2: the mapping centers the grid with half-pixel
// offsets, which only land symmetrically on even sizes.
func (r Resolution) Validate() error {
	if r.Width <= 2 || r.Height <= 2 {
		return fmt.Errorf("fractal: resolution %dx%d is too small, both sides must exceed 2: %w",
			r.Width, r.Height, ErrInvalidConfig)
	}
	if r.Width%2 != 0 || r.Height%2 != 0 {
		return fmt.Errorf("fractal: resolution %dx%d must have even sides: %w",
			r.Width, r.Height, ErrInvalidConfig)
	}
	return nil
}

func (r Resolution) minSide() int {
	if r.Width < r.Height {
		return r.Width
	}
	return r.Height
}

// View fixes the viewport of one frame: which region of the complex plane
// the pixel grid covers. The grid is centered on Focus; step 0 spans at
// least [-2,2]² around it, and each later step narrows the span in
// proportion to 1/(step+1).
type View struct {
	Step  int
	Focus complex128
	Res   Resolution
}

// NewView validates the frame parameters before any mapping occurs.
func NewView(step int, focus complex128, res Resolution) (View, error) {
	if step < 0 {
		return View{}, fmt.Errorf("fractal: zoom step must not be negative, got %d: %w", step, ErrInvalidConfig)
	}
	if err := res.Validate(); err != nil {
		return View{}, err
	}
	return View{Step: step, Focus: focus, Res: res}, nil
}

// PixelWidth is the side length of one pixel in complex-plane units. The
// shorter grid side spans 4/(step+1) units, so the whole radius-2 disc fits
// at step 0 and the view tightens inversely with step. The expression is
// kept in this factored form so repeated renders reproduce bit-identical
// coordinates.
func (vp View) PixelWidth() float64 {
	m := float64(vp.Res.minSide())
	return 2 * (2 / m) * 2 / (2 * float64(vp.Step+1))
}

// Point maps the pixel at column u, row v to its complex-plane coordinate.
// Rows grow downward while the imaginary axis grows upward, so v is flipped.
func (vp View) Point(u, v int) complex128 {
	w := vp.PixelWidth()
	topLeftX := real(vp.Focus) + -w*(float64(vp.Res.Width)/2) + w/2
	topLeftY := imag(vp.Focus) + w*(float64(vp.Res.Height)/2) - w/2
	return complex(topLeftX+float64(u)*w, topLeftY-float64(v)*w)
}
