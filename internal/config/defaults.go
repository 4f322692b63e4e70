package config

import (
	_ "embed"
)

//go:embed defaults/profile.yaml
var defaultProfileYAML []byte

// DefaultProfile returns the stock render profile: the origin zoom at
// 400x400, twenty frames, twenty iterations, 200ms per frame.
func DefaultProfile() Profile {
	return Profile{
		Render: RenderConfig{
			Focus:          "0,0",
			Width:          400,
			Height:         400,
			Frames:         20,
			RecenterFrames: 5,
			Depth:          20,
			Degree:         2,
			Workers:        0,
		},
		Playback: PlaybackConfig{
			IntervalMS: 200,
		},
		Output: OutputConfig{
			Dir:     "renders",
			Palette: "heat-rev",
			Format:  "gif",
		},
	}
}

// DefaultYAML returns the embedded default profile, for writing sample
// profile files.
func DefaultYAML() []byte {
	return defaultProfileYAML
}
