package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/benw000/MandelbrotZoom/internal/fractal"
)

func TestParseFocus(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected complex128
		wantErr  bool
	}{
		{"origin", "0,0", complex(0, 0), false},
		{"seahorse coordinates", "-0.75,0.1", complex(-0.75, 0.1), false},
		{"spaces around parts", " -1.8 , -0.06 ", complex(-1.8, -0.06), false},
		{"scientific notation", "1e-3,2.5e-2", complex(0.001, 0.025), false},
		{"missing comma", "0.5", 0, true},
		{"too many parts", "1,2,3", 0, true},
		{"non-numeric real", "x,0", 0, true},
		{"non-numeric imaginary", "0,y", 0, true},
		{"empty", "", 0, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseFocus(tc.input)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("ParseFocus(%q) expected error, got %v", tc.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseFocus(%q): %v", tc.input, err)
			}
			if got != tc.expected {
				t.Errorf("ParseFocus(%q) = %v, expected %v", tc.input, got, tc.expected)
			}
		})
	}
}

func TestResolveFocus(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected complex128
		wantErr  bool
	}{
		{"coordinates", "-0.75,0.1", complex(-0.75, 0.1), false},
		{"landmark name", "seahorse", complex(-0.75, 0.1), false},
		{"landmark with spaces", "  dragon ", complex(-0.7375, 0.1825), false},
		{"unknown landmark", "atlantis", 0, true},
		{"malformed coordinates", "1,2,3", 0, true},
		{"empty", "", 0, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ResolveFocus(tc.input)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("ResolveFocus(%q) expected error, got %v", tc.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ResolveFocus(%q): %v", tc.input, err)
			}
			if got != tc.expected {
				t.Errorf("ResolveFocus(%q) = %v, expected %v", tc.input, got, tc.expected)
			}
		})
	}
}

func TestRuleForDegree(t *testing.T) {
	for _, degree := range []int{0, 2} {
		rule, err := RuleForDegree(degree)
		if err != nil {
			t.Errorf("RuleForDegree(%d): %v", degree, err)
		}
		if rule != nil {
			t.Errorf("RuleForDegree(%d) = %v, expected nil for the classic map", degree, rule)
		}
	}

	rule, err := RuleForDegree(4)
	if err != nil {
		t.Fatalf("RuleForDegree(4): %v", err)
	}
	power, ok := rule.(fractal.Power)
	if !ok || power.Degree != 4 {
		t.Errorf("RuleForDegree(4) = %#v, expected Power with degree 4", rule)
	}

	for _, degree := range []int{-1, 1} {
		if _, err := RuleForDegree(degree); err == nil {
			t.Errorf("RuleForDegree(%d) expected error, got nil", degree)
		}
	}
}

func TestSequenceParams(t *testing.T) {
	r := RenderConfig{
		Focus:          "minibrot",
		Width:          320,
		Height:         240,
		Frames:         12,
		RecenterFrames: 4,
		Depth:          35,
		Degree:         2,
		Workers:        2,
	}

	params, err := r.SequenceParams()
	if err != nil {
		t.Fatalf("SequenceParams: %v", err)
	}
	if params.Focus != complex(-1.73825, -0.02275) {
		t.Errorf("Focus = %v, expected the minibrot landmark point", params.Focus)
	}
	if params.Res.Width != 320 || params.Res.Height != 240 {
		t.Errorf("Res = %dx%d, expected 320x240", params.Res.Width, params.Res.Height)
	}
	if params.Frames != 12 || params.RecenterFrames != 4 || params.Depth != 35 || params.Workers != 2 {
		t.Errorf("frames/recenter/depth/workers = %d/%d/%d/%d, expected 12/4/35/2",
			params.Frames, params.RecenterFrames, params.Depth, params.Workers)
	}
	if params.Rule != nil {
		t.Errorf("Rule = %v, expected nil for degree 2", params.Rule)
	}

	r.Degree = 3
	params, err = r.SequenceParams()
	if err != nil {
		t.Fatalf("SequenceParams with degree 3: %v", err)
	}
	if power, ok := params.Rule.(fractal.Power); !ok || power.Degree != 3 {
		t.Errorf("Rule = %#v, expected Power with degree 3", params.Rule)
	}

	r.Degree = 1
	if _, err := r.SequenceParams(); err == nil {
		t.Error("SequenceParams with degree 1 expected error, got nil")
	}

	r.Degree = 2
	r.Focus = "nowhere"
	if _, err := r.SequenceParams(); err == nil {
		t.Error("SequenceParams with unknown focus expected error, got nil")
	}
}

func TestFormatFocusRoundTrip(t *testing.T) {
	points := []complex128{0, complex(-0.75, 0.1), complex(-1.73825, -0.02275), complex(0.001, -2.5)}
	for _, c := range points {
		got, err := ParseFocus(FormatFocus(c))
		if err != nil {
			t.Errorf("ParseFocus(FormatFocus(%v)): %v", c, err)
			continue
		}
		if got != c {
			t.Errorf("round trip of %v produced %v", c, got)
		}
	}
}

func TestDefaultProfile(t *testing.T) {
	p := DefaultProfile()
	if p.Render.Focus != "0,0" {
		t.Errorf("Focus = %q, expected \"0,0\"", p.Render.Focus)
	}
	if p.Render.Width != 400 || p.Render.Height != 400 {
		t.Errorf("resolution = %dx%d, expected 400x400", p.Render.Width, p.Render.Height)
	}
	if p.Render.Frames != 20 || p.Render.RecenterFrames != 5 || p.Render.Depth != 20 {
		t.Errorf("frames/recenter/depth = %d/%d/%d, expected 20/5/20",
			p.Render.Frames, p.Render.RecenterFrames, p.Render.Depth)
	}
	if p.Render.Degree != 2 {
		t.Errorf("Degree = %d, expected 2", p.Render.Degree)
	}
	if p.Playback.IntervalMS != 200 {
		t.Errorf("IntervalMS = %d, expected 200", p.Playback.IntervalMS)
	}
	if p.Output.Palette != "heat-rev" || p.Output.Format != "gif" || p.Output.Dir != "renders" {
		t.Errorf("output = %+v, expected renders/heat-rev/gif", p.Output)
	}
}

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	// The embedded YAML and DefaultProfile are two spellings of the same
	// profile; loading one must reproduce the other.
	path := filepath.Join(t.TempDir(), "profile.yaml")
	if err := os.WriteFile(path, DefaultYAML(), 0o644); err != nil {
		t.Fatalf("write embedded default: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded != DefaultProfile() {
		t.Errorf("embedded default loads as %+v, hardcoded default is %+v", loaded, DefaultProfile())
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	body := []byte(`
render:
  focus: "seahorse"
  width: 200
  height: 160
  frames: 8
  recenter_frames: 2
  depth: 30
playback:
  interval_ms: 50
output:
  dir: out
  palette: gray
  format: png
`)
	if err := os.WriteFile(path, body, 0o644); err != nil {
		t.Fatalf("write profile: %v", err)
	}

	p, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if p.Render.Focus != "seahorse" || p.Render.Width != 200 || p.Render.Height != 160 {
		t.Errorf("render section = %+v, expected seahorse 200x160", p.Render)
	}
	if p.Render.Frames != 8 || p.Render.RecenterFrames != 2 || p.Render.Depth != 30 {
		t.Errorf("frames/recenter/depth = %d/%d/%d, expected 8/2/30",
			p.Render.Frames, p.Render.RecenterFrames, p.Render.Depth)
	}
	if p.Playback.IntervalMS != 50 {
		t.Errorf("IntervalMS = %d, expected 50", p.Playback.IntervalMS)
	}
	if p.Output.Dir != "out" || p.Output.Palette != "gray" || p.Output.Format != "png" {
		t.Errorf("output section = %+v, expected out/gray/png", p.Output)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load of missing explicit path expected error, got nil")
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(bad, []byte("render: [not, a, mapping"), 0o644); err != nil {
		t.Fatalf("write profile: %v", err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("Load of malformed yaml expected error, got nil")
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset QualityPreset
		width  int
		frames int
		depth  int
	}{
		{QualityDraft, 200, 10, 10},
		{QualityStandard, 400, 20, 20},
		{QualityDeep, 800, 40, 60},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			p := DefaultProfile()
			p.Render.Focus = "dragon"
			if err := ApplyPreset(&p, tc.preset); err != nil {
				t.Fatalf("ApplyPreset(%s): %v", tc.preset, err)
			}
			if p.Render.Width != tc.width || p.Render.Frames != tc.frames || p.Render.Depth != tc.depth {
				t.Errorf("preset %s gave width/frames/depth %d/%d/%d, expected %d/%d/%d",
					tc.preset, p.Render.Width, p.Render.Frames, p.Render.Depth, tc.width, tc.frames, tc.depth)
			}
			if p.Render.Focus != "dragon" {
				t.Errorf("preset %s overwrote focus to %q", tc.preset, p.Render.Focus)
			}
		})
	}

	p := DefaultProfile()
	if err := ApplyPreset(&p, "ultra"); err == nil {
		t.Error("ApplyPreset(ultra) expected error, got nil")
	}
}

func TestEstimateDuration(t *testing.T) {
	p := DefaultProfile()
	// 20 frames of 400x400 at 80000 px/s comes to 40 seconds.
	if got := EstimateDuration(p); got != 40*time.Second {
		t.Errorf("EstimateDuration(default) = %v, expected 40s", got)
	}

	p.Render.Frames = 1
	p.Render.Width = 200
	p.Render.Height = 200
	if got := EstimateDuration(p); got != 500*time.Millisecond {
		t.Errorf("EstimateDuration(small) = %v, expected 500ms", got)
	}
}
