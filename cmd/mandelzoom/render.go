package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/benw000/MandelbrotZoom/internal/config"
	"github.com/benw000/MandelbrotZoom/internal/fractal"
	"github.com/benw000/MandelbrotZoom/internal/platform/tui"
	"github.com/benw000/MandelbrotZoom/internal/render"
	"github.com/benw000/MandelbrotZoom/internal/storage"
)

var (
	flagFocus    string
	flagWidth    int
	flagHeight   int
	flagFrames   int
	flagRecenter int
	flagDepth    int
	flagDegree   int
	flagWorkers  int
	flagInterval int
	flagPalette  string
	flagFormat   string
	flagOut      string
	flagPreset   string
	flagPlain    bool
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a zoom animation to disk",
	Long: `Render a zoom sequence into the Mandelbrot set and write it out.

The focus can be a "re,im" coordinate pair or the name of a known landmark
(see 'mandelzoom landmarks'). Output formats:
  gif    - One looping animated GIF
  png    - A directory of numbered PNG frames
  both   - GIF plus the PNG frames

Quality presets:
  draft    - 200x200, 10 frames, depth 10
  standard - 400x400, 20 frames, depth 20
  deep     - 800x800, 40 frames, depth 60

Flags override the loaded profile; presets apply before flags.

Examples:
  mandelzoom render
  mandelzoom render --focus seahorse
  mandelzoom render --focus -0.7435,0.1314 --preset deep
  mandelzoom render --frames 30 --depth 40 --format both
  mandelzoom render --degree 3
  mandelzoom render --out ./renders --palette gray-rev`,
	Args: cobra.NoArgs,
	Run:  runRender,
}

func init() {
	renderCmd.Flags().StringVar(&flagFocus, "focus", "0,0", `Zoom target: "re,im" or a landmark name`)
	renderCmd.Flags().IntVar(&flagWidth, "width", 400, "Frame width in pixels (even, at least 4)")
	renderCmd.Flags().IntVar(&flagHeight, "height", 400, "Frame height in pixels (even, at least 4)")
	renderCmd.Flags().IntVar(&flagFrames, "frames", 20, "Number of frames in the sequence")
	renderCmd.Flags().IntVar(&flagRecenter, "recenter", 5, "Frames spent gliding onto the focus (0 = zoom in place)")
	renderCmd.Flags().IntVar(&flagDepth, "depth", 20, "Iteration depth per pixel")
	renderCmd.Flags().IntVar(&flagDegree, "degree", 2, "Exponent in z^d + c (2 = classic Mandelbrot)")
	renderCmd.Flags().IntVar(&flagWorkers, "workers", 0, "Render workers per frame (0 = one per CPU)")
	renderCmd.Flags().IntVar(&flagInterval, "interval", 200, "Frame delay in milliseconds")
	renderCmd.Flags().StringVar(&flagPalette, "palette", "heat-rev", "Color palette (see render palettes: heat, heat-rev, gray, gray-rev)")
	renderCmd.Flags().StringVar(&flagFormat, "format", "gif", "Output format: gif, png or both")
	renderCmd.Flags().StringVar(&flagOut, "out", "renders", "Output directory")
	renderCmd.Flags().StringVar(&flagPreset, "preset", "", "Quality preset: draft, standard or deep")
	renderCmd.Flags().BoolVar(&flagPlain, "plain", false, "Log progress lines instead of the progress bar")
}

// loadProfile loads the render profile, honoring the global --profile flag.
func loadProfile() config.Profile {
	p, err := config.Load(flagProfile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading profile: %v\n", err)
		os.Exit(1)
	}
	return p
}

// applyRenderFlags overrides profile fields with explicitly set flags.
func applyRenderFlags(cmd *cobra.Command, p *config.Profile) {
	f := cmd.Flags()
	if f.Changed("focus") {
		p.Render.Focus = flagFocus
	}
	if f.Changed("width") {
		p.Render.Width = flagWidth
	}
	if f.Changed("height") {
		p.Render.Height = flagHeight
	}
	if f.Changed("frames") {
		p.Render.Frames = flagFrames
	}
	if f.Changed("recenter") {
		p.Render.RecenterFrames = flagRecenter
	}
	if f.Changed("depth") {
		p.Render.Depth = flagDepth
	}
	if f.Changed("degree") {
		p.Render.Degree = flagDegree
	}
	if f.Changed("workers") {
		p.Render.Workers = flagWorkers
	}
	if f.Changed("interval") {
		p.Playback.IntervalMS = flagInterval
	}
	if f.Changed("palette") {
		p.Output.Palette = flagPalette
	}
	if f.Changed("format") {
		p.Output.Format = flagFormat
	}
	if f.Changed("out") {
		p.Output.Dir = flagOut
	}
}

func runRender(cmd *cobra.Command, _ []string) {
	p := loadProfile()

	if flagPreset != "" {
		if err := config.ApplyPreset(&p, config.QualityPreset(flagPreset)); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
	applyRenderFlags(cmd, &p)

	params, err := p.Render.SequenceParams()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	seq, err := fractal.NewSequencer(params)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	pal, err := render.Lookup(p.Output.Palette)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Resolve output paths up front
	timestamp := time.Now().Format("20060102_150405")
	gifPath := filepath.Join(p.Output.Dir, "zoom_"+timestamp+".gif")
	framesDir := filepath.Join(p.Output.Dir, "frames_"+timestamp)
	interval := time.Duration(p.Playback.IntervalMS) * time.Millisecond

	var outPath string
	var work func(report func(step int)) error
	switch p.Output.Format {
	case "gif":
		outPath = gifPath
		work = func(report func(step int)) error {
			return render.WriteGIF(gifPath, seq, pal, interval, report)
		}
	case "png":
		outPath = framesDir
		work = func(report func(step int)) error {
			_, err := render.WriteFrames(framesDir, seq, pal, report)
			return err
		}
	case "both":
		outPath = gifPath
		work = func(report func(step int)) error {
			return renderBoth(framesDir, gifPath, seq, pal, interval, report)
		}
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown format %q (expected gif, png or both)\n", p.Output.Format)
		os.Exit(1)
	}

	est := config.EstimateDuration(p)
	fmt.Printf("Rendering %d frames at %dx%d, depth %d (estimated %s)\n",
		p.Render.Frames, p.Render.Width, p.Render.Height, p.Render.Depth,
		est.Round(100*time.Millisecond))

	start := time.Now()
	if flagPlain || !term.IsTerminal(int(os.Stdout.Fd())) {
		logger := log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "mandelzoom",
		})
		err = work(func(step int) {
			logger.Info("frame rendered", "frame", step+1, "of", p.Render.Frames)
		})
	} else {
		label := fmt.Sprintf("Rendering zoom into %s", p.Render.Focus)
		err = tui.RunRenderProgress(label, p.Render.Frames, work)
	}
	elapsed := time.Since(start)

	if err != nil {
		if errors.Is(err, tui.ErrRenderCancelled) {
			fmt.Fprintln(os.Stderr, "Render cancelled.")
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}

	fmt.Printf("Wrote %s in %s\n", outPath, elapsed.Round(100*time.Millisecond))
	if p.Output.Format == "both" {
		fmt.Printf("Frames in %s\n", framesDir)
	}

	// Record the render, best effort
	store, storeErr := storage.Open(flagDBPath)
	if storeErr != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open history database: %v\n", storeErr)
		return
	}
	defer store.Close()

	entry := storage.RenderEntry{
		Focus:          params.Focus,
		Width:          p.Render.Width,
		Height:         p.Render.Height,
		Frames:         p.Render.Frames,
		RecenterFrames: p.Render.RecenterFrames,
		Depth:          p.Render.Depth,
		Palette:        p.Output.Palette,
		Format:         p.Output.Format,
		OutputPath:     outPath,
		Duration:       elapsed,
	}
	if _, saveErr := store.SaveRender(entry); saveErr != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not record render: %v\n", saveErr)
	}
}

// renderBoth writes PNG frames and the GIF in a single pass over the
// sequence, so each frame is computed once.
func renderBoth(framesDir, gifPath string, seq *fractal.Sequencer, pal render.Palette, delay time.Duration, report func(step int)) error {
	if err := os.MkdirAll(framesDir, 0o755); err != nil {
		return fmt.Errorf("create output dir %s: %w", framesDir, err)
	}

	enc := render.NewGIFEncoder(pal, delay)
	for step := 0; step < seq.Len(); step++ {
		frame, err := seq.FrameAt(step)
		if err != nil {
			return err
		}
		if err := render.WritePNG(render.FramePath(framesDir, step), render.Image(frame.Grid, pal)); err != nil {
			return err
		}
		enc.Append(frame.Grid)
		if report != nil {
			report(step)
		}
	}

	f, err := os.Create(gifPath)
	if err != nil {
		return fmt.Errorf("create %s: %w", gifPath, err)
	}
	defer f.Close()

	return enc.EncodeTo(f)
}
