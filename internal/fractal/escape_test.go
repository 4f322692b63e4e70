package fractal

import (
	"errors"
	"math"
	"math/cmplx"
	"testing"
)

func TestNewEvaluatorValidation(t *testing.T) {
	tests := []struct {
		name    string
		depth   int
		wantErr bool
	}{
		{"depth zero", 0, true},
		{"negative depth", -1, true},
		{"minimum depth", 1, false},
		{"typical depth", 20, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			eval, err := NewEvaluator(tc.depth, nil)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("NewEvaluator(%d) expected error, got nil", tc.depth)
				}
				if !errors.Is(err, ErrInvalidConfig) {
					t.Errorf("NewEvaluator(%d) error = %v, expected ErrInvalidConfig", tc.depth, err)
				}
				if eval != nil {
					t.Errorf("NewEvaluator(%d) returned non-nil evaluator with error", tc.depth)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewEvaluator(%d) unexpected error: %v", tc.depth, err)
			}
			if eval.Depth() != tc.depth {
				t.Errorf("Depth() = %d, expected %d", eval.Depth(), tc.depth)
			}
		})
	}
}

func TestEvaluateEarlyExit(t *testing.T) {
	eval, err := NewEvaluator(20, nil)
	if err != nil {
		t.Fatalf("NewEvaluator: %v", err)
	}

	tests := []struct {
		name string
		c    complex128
	}{
		{"on the radius", complex(2, 0)},
		{"negative real on the radius", complex(-2, 0)},
		{"imaginary on the radius", complex(0, 2)},
		{"far outside", complex(3, 4)},
		{"diagonal just outside", complex(1.5, 1.5)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := eval.Evaluate(tc.c); got != 0 {
				t.Errorf("Evaluate(%v) = %v, expected 0", tc.c, got)
			}
		})
	}
}

func TestEvaluateBoundedPoints(t *testing.T) {
	eval, err := NewEvaluator(20, nil)
	if err != nil {
		t.Fatalf("NewEvaluator: %v", err)
	}

	tests := []struct {
		name string
		c    complex128
	}{
		{"origin", complex(0, 0)},
		{"period-two bulb", complex(-1, 0)},
		{"imaginary unit", complex(0, 1)},
		{"main cardioid", complex(0.25, 0)},
		{"near origin", complex(-0.1, 0.1)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := eval.Evaluate(tc.c); got != 1 {
				t.Errorf("Evaluate(%v) = %v, expected 1", tc.c, got)
			}
		})
	}
}

func TestEvaluateDecay(t *testing.T) {
	// With two iterations the orbit of a real c is c²+c, so both points
	// below end just past the cutoff and land on the exponential tail.
	eval, err := NewEvaluator(2, nil)
	if err != nil {
		t.Fatalf("NewEvaluator: %v", err)
	}

	near := eval.Evaluate(complex(1.5, 0)) // final magnitude 3.75
	far := eval.Evaluate(complex(1.9, 0))  // final magnitude 5.51

	if near <= 0 || near >= 1 {
		t.Errorf("Evaluate(1.5) = %v, expected strictly between 0 and 1", near)
	}
	if far <= 0 || far >= 1 {
		t.Errorf("Evaluate(1.9) = %v, expected strictly between 0 and 1", far)
	}
	if far >= near {
		t.Errorf("larger overshoot should score lower: Evaluate(1.9) = %v, Evaluate(1.5) = %v", far, near)
	}

	want := math.Exp(-0.01 * (3.75 - 2))
	if diff := math.Abs(near - want); diff > 1e-12 {
		t.Errorf("Evaluate(1.5) = %v, expected %v (diff %v)", near, want, diff)
	}
}

func TestEvaluateOverflowScoresZero(t *testing.T) {
	// Inside the early-exit radius but wildly divergent: the orbit of 1.5
	// overflows float64 after a dozen iterations. The score must degrade to
	// 0 instead of propagating Inf or NaN to callers.
	eval, err := NewEvaluator(50, nil)
	if err != nil {
		t.Fatalf("NewEvaluator: %v", err)
	}

	if got := eval.Evaluate(complex(1.5, 0)); got != 0 {
		t.Errorf("Evaluate(1.5) at depth 50 = %v, expected 0", got)
	}
}

func TestNilRuleDefaultsToQuadratic(t *testing.T) {
	defaulted, err := NewEvaluator(5, nil)
	if err != nil {
		t.Fatalf("NewEvaluator(nil rule): %v", err)
	}
	explicit, err := NewEvaluator(5, Quadratic{})
	if err != nil {
		t.Fatalf("NewEvaluator(Quadratic): %v", err)
	}

	points := []complex128{0, complex(-0.75, 0.1), complex(0.3, 0.5), complex(1.5, 1.5)}
	for _, c := range points {
		if got, want := defaulted.Evaluate(c), explicit.Evaluate(c); got != want {
			t.Errorf("Evaluate(%v) with nil rule = %v, with Quadratic = %v", c, got, want)
		}
	}
}

func TestPowerRule(t *testing.T) {
	cubic := Power{Degree: 3}
	got := cubic.Next(complex(2, 0), complex(1, 0))
	if diff := cmplx.Abs(got - complex(9, 0)); diff > 1e-9 {
		t.Errorf("Power{3}.Next(2, 1) = %v, expected 9 (diff %v)", got, diff)
	}

	// Degree 2 tracks the quadratic rule up to Pow rounding.
	square := Power{Degree: 2}
	z, c := complex(0.5, 0.25), complex(-0.75, 0.1)
	if diff := cmplx.Abs(square.Next(z, c) - Quadratic{}.Next(z, c)); diff > 1e-9 {
		t.Errorf("Power{2} and Quadratic diverge by %v on z=%v c=%v", diff, z, c)
	}
}
