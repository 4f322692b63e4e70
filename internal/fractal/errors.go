package fractal

import "errors"

// ErrInvalidConfig marks configuration mistakes: iteration depths below 1,
// odd or too-small resolutions, negative steps or frame counts. It is
// returned before any pixel work starts; callers should abort rather than
// retry, since the parameters will not get better on their own.
var ErrInvalidConfig = errors.New("invalid configuration")
