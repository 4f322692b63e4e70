// Package fractal computes escape-time renderings of the Mandelbrot set.
// It maps pixel coordinates to points in the complex plane, classifies each
// point by iterating a recurrence from zero, and assembles per-frame
// intensity grids that a zoom sequencer walks step by step. The package has
// no rendering or I/O dependencies so the math stays pure and testable.
package fractal

import (
	"fmt"
	"math"
	"math/cmplx"
)

// EscapeRadius bounds the region that can contain the Mandelbrot set. Any
// point with |c| >= EscapeRadius diverges under the quadratic rule, so the
// evaluator returns intensity 0 for such points without iterating. The
// shortcut is tied to the quadratic rule's escape radius; a custom Rule with
// different divergence behavior inherits it as-is.
const EscapeRadius = 2.0

const (
	// magnitudeCutoff splits "still bounded" from "diverging" after the
	// final iteration.
	magnitudeCutoff = 2.0

	// decayScale controls how fast intensity falls off past the cutoff.
	// Magnitudes just over the cutoff stay near 1, so the set gets a soft
	// edge rather than a hard silhouette.
	decayScale = 0.01
)

// Evaluator scores points of the complex plane by escape time. The score is
// an intensity in [0, 1]: 1 means the orbit stayed bounded through every
// iteration, 0 means the point is (or degenerated to) a diverging one, and
// values between decay exponentially with the final overshoot.
type Evaluator struct {
	depth int
	rule  Rule
}

// NewEvaluator builds an evaluator that iterates depth times per point.
// Depth below 1 is a configuration error. A nil rule selects the quadratic
// Mandelbrot recurrence.
func NewEvaluator(depth int, rule Rule) (*Evaluator, error) {
	if depth < 1 {
		return nil, fmt.Errorf("fractal: iteration depth must be at least 1, got %d: %w", depth, ErrInvalidConfig)
	}
	if rule == nil {
		rule = Quadratic{}
	}
	return &Evaluator{depth: depth, rule: rule}, nil
}

// Depth returns the number of iterations applied per point.
func (e *Evaluator) Depth() int {
	return e.depth
}

// Evaluate scores a single point. It never fails: numeric degeneracy
// (overflow to infinity, NaN magnitudes) degrades to intensity 0, the same
// outcome as ordinary divergence.
func (e *Evaluator) Evaluate(c complex128) float64 {
	// Known divergent before any iteration; see EscapeRadius.
	if cmplx.Abs(c) >= EscapeRadius {
		return 0
	}

	z := complex(0, 0)
	for i := 0; i < e.depth; i++ {
		z = e.rule.Next(z, c)
	}

	m := cmplx.Abs(z)
	if math.IsNaN(m) {
		return 0
	}
	if m <= magnitudeCutoff {
		return 1
	}
	// Infinite magnitudes land here too: exp(-Inf) is exactly 0.
	return math.Exp(-decayScale * (m - magnitudeCutoff))
}
