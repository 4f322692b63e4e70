package fractal

import "math/cmplx"

// Rule is one step of an escape-time recurrence. Implementations must be
// pure: the same (z, c) always yields the same result, with no side effects,
// so pixels can be evaluated in any order and on any number of goroutines.
type Rule interface {
	// Next maps the current value and the sampled constant to the next value.
	Next(z, c complex128) complex128
}

// Quadratic is the classic Mandelbrot recurrence z² + c.
type Quadratic struct{}

// Next returns z*z + c.
func (Quadratic) Next(z, c complex128) complex128 {
	return z*z + c
}

// Power generalizes the recurrence to zᵈ + c for rendering higher-degree
// multibrot sets. Degree 2 matches Quadratic numerically only up to
// cmplx.Pow rounding; use Quadratic for the classic set.
type Power struct {
	Degree float64
}

// Next returns z^Degree + c.
func (p Power) Next(z, c complex128) complex128 {
	return cmplx.Pow(z, complex(p.Degree, 0)) + c
}
