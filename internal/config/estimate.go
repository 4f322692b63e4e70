package config

import "time"

// pixelsPerSecond is the rough single-core evaluator throughput behind
// runtime estimates.
const pixelsPerSecond = 80000

// EstimateDuration predicts how long a render of this profile takes, from
// the total pixel count across all frames. Worker parallelism is ignored;
// treat the result as an upper bound.
func EstimateDuration(p Profile) time.Duration {
	pixels := float64(p.Render.Frames) * float64(p.Render.Width) * float64(p.Render.Height)
	return time.Duration(pixels / pixelsPerSecond * float64(time.Second))
}
