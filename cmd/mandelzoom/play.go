package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/benw000/MandelbrotZoom/internal/fractal"
	"github.com/benw000/MandelbrotZoom/internal/platform/tui"
	"github.com/benw000/MandelbrotZoom/internal/render"
)

var (
	flagPlayFocus    string
	flagPick         bool
	flagPlayFrames   int
	flagPlayRecenter int
	flagPlayDepth    int
	flagPlayWorkers  int
	flagPlayInterval int
	flagPlayPalette  string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a zoom live in the terminal",
	Long: `Play a zoom sequence in the terminal, sized to fit your window.

Frames are computed on the fly and loop back to the start after the
deepest one. The focus can be a "re,im" pair or a landmark name, or use
--pick to choose a target interactively.

Controls:
  Space      - Pause/resume
  R          - Rewind to the first frame
  Ctrl+S     - Save the current frame as PNG
  ?          - Toggle help
  Q/Ctrl+C   - Quit

Examples:
  mandelzoom play
  mandelzoom play --pick
  mandelzoom play --focus elephant --frames 40
  mandelzoom play --focus -0.7465,0.0965 --depth 50`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagPlayFocus, "focus", "0,0", `Zoom target: "re,im" or a landmark name`)
	playCmd.Flags().BoolVar(&flagPick, "pick", false, "Choose the zoom target from a list")
	playCmd.Flags().IntVar(&flagPlayFrames, "frames", 20, "Number of frames in the sequence")
	playCmd.Flags().IntVar(&flagPlayRecenter, "recenter", 5, "Frames spent gliding onto the focus (0 = zoom in place)")
	playCmd.Flags().IntVar(&flagPlayDepth, "depth", 20, "Iteration depth per pixel")
	playCmd.Flags().IntVar(&flagPlayWorkers, "workers", 0, "Render workers per frame (0 = one per CPU)")
	playCmd.Flags().IntVar(&flagPlayInterval, "interval", 200, "Frame delay in milliseconds")
	playCmd.Flags().StringVar(&flagPlayPalette, "palette", "heat", "Color palette for the terminal canvas")
}

func runPlay(cmd *cobra.Command, _ []string) {
	p := loadProfile()

	f := cmd.Flags()
	if f.Changed("focus") {
		p.Render.Focus = flagPlayFocus
	}
	if f.Changed("frames") {
		p.Render.Frames = flagPlayFrames
	}
	if f.Changed("recenter") {
		p.Render.RecenterFrames = flagPlayRecenter
	}
	if f.Changed("depth") {
		p.Render.Depth = flagPlayDepth
	}
	if f.Changed("workers") {
		p.Render.Workers = flagPlayWorkers
	}
	if f.Changed("interval") {
		p.Playback.IntervalMS = flagPlayInterval
	}

	// Get terminal size early so the picker and canvas share it
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	params, err := p.Render.SequenceParams()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'mandelzoom landmarks' to see known targets.")
		os.Exit(1)
	}
	params.Res = tui.FitResolution(width, height)

	if flagPick {
		lm, ok, pickErr := tui.RunPicker(width, height)
		if pickErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", pickErr)
			os.Exit(1)
		}
		if !ok {
			return
		}
		params.Focus = lm.Focus
	}

	// The file palette from the profile targets light backgrounds, so the
	// terminal default is resolved separately
	pal := render.Terminal()
	if f.Changed("palette") {
		pal, err = render.Lookup(flagPlayPalette)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	seq, err := fractal.NewSequencer(params)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	interval := time.Duration(p.Playback.IntervalMS) * time.Millisecond
	if err := tui.Run(seq, pal, interval); err != nil {
		fmt.Fprintf(os.Stderr, "Error running playback: %v\n", err)
		os.Exit(1)
	}
}
