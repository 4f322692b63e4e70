package fractal

import "fmt"

// SequenceParams describes a full zoom animation: how many frames to render,
// where to zoom, and how each frame is evaluated.
type SequenceParams struct {
	// Frames is the total number of frames in the sequence.
	Frames int
	// RecenterFrames is how many initial frames glide the view centre from
	// the origin out to Focus. Zero starts every frame centred on Focus.
	RecenterFrames int
	// Focus is the point the zoom converges on.
	Focus complex128
	// Res is the pixel resolution of every frame.
	Res Resolution
	// Depth is the iteration depth passed to the evaluator.
	Depth int
	// Rule is the iteration rule; nil means the quadratic map.
	Rule Rule
	// Workers caps render goroutines per frame; zero means one per CPU.
	Workers int
}

// DefaultSequenceParams returns the stock zoom onto the origin: twenty frames
// at 400x400 with twenty iterations per pixel.
func DefaultSequenceParams() SequenceParams {
	return SequenceParams{
		Frames:         20,
		RecenterFrames: 5,
		Focus:          0,
		Res:            Resolution{Width: 400, Height: 400},
		Depth:          20,
	}
}

// Sequencer renders the frames of one zoom animation. Frames are computed on
// demand, either by index through FrameAt or in playback order through Next.
// A sequencer is not safe for concurrent use; each session should own its own.
type Sequencer struct {
	params SequenceParams
	gen    *Generator
	next   int
}

// NewSequencer validates the parameters and returns a sequencer positioned at
// the first frame.
func NewSequencer(params SequenceParams) (*Sequencer, error) {
	if params.Frames < 1 {
		return nil, fmt.Errorf("fractal: frame count must be at least 1, got %d: %w", params.Frames, ErrInvalidConfig)
	}
	if params.RecenterFrames < 0 {
		return nil, fmt.Errorf("fractal: recenter frame count cannot be negative, got %d: %w", params.RecenterFrames, ErrInvalidConfig)
	}
	if err := params.Res.Validate(); err != nil {
		return nil, err
	}
	eval, err := NewEvaluator(params.Depth, params.Rule)
	if err != nil {
		return nil, err
	}
	return &Sequencer{
		params: params,
		gen:    &Generator{Eval: eval, Workers: params.Workers},
	}, nil
}

// Params returns the parameters the sequencer was built with.
func (s *Sequencer) Params() SequenceParams { return s.params }

// Len returns the number of frames in the sequence.
func (s *Sequencer) Len() int { return s.params.Frames }

// FocusAt returns the view centre used at the given step. During the first
// RecenterFrames steps the centre slides from the origin towards the focus,
// reaching it exactly at step RecenterFrames; afterwards it stays there.
func (s *Sequencer) FocusAt(step int) complex128 {
	rc := s.params.RecenterFrames
	if rc > 0 && step <= rc {
		return s.params.Focus * complex(float64(step)/float64(rc), 0)
	}
	return s.params.Focus
}

// FrameAt renders the frame at the given step without touching playback
// position. The step must lie in [0, Len).
func (s *Sequencer) FrameAt(step int) (Frame, error) {
	if step < 0 || step >= s.params.Frames {
		return Frame{}, fmt.Errorf("fractal: frame %d out of range, sequence has %d frames", step, s.params.Frames)
	}
	return s.frameAt(step), nil
}

func (s *Sequencer) frameAt(step int) Frame {
	view := View{
		Step:  step,
		Focus: s.FocusAt(step),
		Res:   s.params.Res,
	}
	return Frame{Index: step, View: view, Grid: s.gen.Generate(view)}
}

// Next renders the frame at the playback position and advances it, wrapping
// back to the first frame after the last so playback loops.
func (s *Sequencer) Next() Frame {
	frame := s.frameAt(s.next)
	s.next = (s.next + 1) % s.params.Frames
	return frame
}

// Rewind moves the playback position back to the first frame.
func (s *Sequencer) Rewind() {
	s.next = 0
}
