// Package config provides YAML-based render profile loading and quality
// preset management for the zoom renderer.
package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/benw000/MandelbrotZoom/internal/fractal"
)

// Profile contains every knob for one zoom render: what to compute, how to
// pace playback, and where output goes.
type Profile struct {
	Render   RenderConfig   `yaml:"render"`
	Playback PlaybackConfig `yaml:"playback"`
	Output   OutputConfig   `yaml:"output"`
}

// RenderConfig defines the zoom sequence parameters.
type RenderConfig struct {
	// Focus is "re,im" or the name of a known landmark.
	Focus          string `yaml:"focus"`
	Width          int    `yaml:"width"`
	Height         int    `yaml:"height"`
	Frames         int    `yaml:"frames"`
	RecenterFrames int    `yaml:"recenter_frames"`
	Depth          int    `yaml:"depth"`
	Degree         int    `yaml:"degree"`  // exponent in z^d + c; 0 or 2 = classic
	Workers        int    `yaml:"workers"` // 0 = one per CPU
}

// PlaybackConfig defines animation pacing.
type PlaybackConfig struct {
	IntervalMS int `yaml:"interval_ms"`
}

// OutputConfig defines where and how rendered frames are written.
type OutputConfig struct {
	Dir     string `yaml:"dir"`
	Palette string `yaml:"palette"`
	Format  string `yaml:"format"` // "gif", "png" or "both"
}

// QualityPreset represents a named render quality level.
type QualityPreset string

const (
	QualityDraft    QualityPreset = "draft"
	QualityStandard QualityPreset = "standard"
	QualityDeep     QualityPreset = "deep"
)

// Presets returns the known quality presets in ascending cost order.
func Presets() []QualityPreset {
	return []QualityPreset{QualityDraft, QualityStandard, QualityDeep}
}

// ApplyPreset overwrites the profile's resolution, frame count and depth
// with the preset's values. Other fields are left alone.
func ApplyPreset(p *Profile, preset QualityPreset) error {
	switch preset {
	case QualityDraft:
		p.Render.Width = 200
		p.Render.Height = 200
		p.Render.Frames = 10
		p.Render.RecenterFrames = 3
		p.Render.Depth = 10
	case QualityStandard:
		p.Render.Width = 400
		p.Render.Height = 400
		p.Render.Frames = 20
		p.Render.RecenterFrames = 5
		p.Render.Depth = 20
	case QualityDeep:
		p.Render.Width = 800
		p.Render.Height = 800
		p.Render.Frames = 40
		p.Render.RecenterFrames = 5
		p.Render.Depth = 60
	default:
		return fmt.Errorf("unknown quality preset %q", preset)
	}
	return nil
}

// ParseFocus parses a "re,im" coordinate pair.
func ParseFocus(s string) (complex128, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return 0, fmt.Errorf("focus %q must be a \"re,im\" pair", s)
	}
	re, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, fmt.Errorf("focus real part %q: %w", strings.TrimSpace(parts[0]), err)
	}
	im, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return 0, fmt.Errorf("focus imaginary part %q: %w", strings.TrimSpace(parts[1]), err)
	}
	return complex(re, im), nil
}

// FormatFocus renders a focus point back into the "re,im" form ParseFocus
// accepts.
func FormatFocus(c complex128) string {
	return fmt.Sprintf("%g,%g", real(c), imag(c))
}

// ResolveFocus turns a focus string into a point. Strings with a comma are
// parsed as "re,im", anything else is looked up as a landmark name.
func ResolveFocus(s string) (complex128, error) {
	if strings.Contains(s, ",") {
		return ParseFocus(s)
	}
	lm, err := fractal.LookupLandmark(strings.TrimSpace(s))
	if err != nil {
		return 0, err
	}
	return lm.Focus, nil
}

// RuleForDegree maps a multibrot degree to an iteration rule. Degree 0 and 2
// select the classic quadratic map; higher degrees use the power rule.
func RuleForDegree(degree int) (fractal.Rule, error) {
	switch {
	case degree == 0 || degree == 2:
		return nil, nil
	case degree > 2:
		return fractal.Power{Degree: float64(degree)}, nil
	default:
		return nil, fmt.Errorf("degree %d is not supported, use 2 or higher", degree)
	}
}

// SequenceParams converts the render section into sequence parameters.
// Numeric validation is left to the sequencer.
func (r RenderConfig) SequenceParams() (fractal.SequenceParams, error) {
	focus, err := ResolveFocus(r.Focus)
	if err != nil {
		return fractal.SequenceParams{}, err
	}
	rule, err := RuleForDegree(r.Degree)
	if err != nil {
		return fractal.SequenceParams{}, err
	}
	return fractal.SequenceParams{
		Frames:         r.Frames,
		RecenterFrames: r.RecenterFrames,
		Focus:          focus,
		Res:            fractal.Resolution{Width: r.Width, Height: r.Height},
		Depth:          r.Depth,
		Rule:           rule,
		Workers:        r.Workers,
	}, nil
}
