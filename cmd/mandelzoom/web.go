package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/benw000/MandelbrotZoom/internal/platform/web"
	"github.com/benw000/MandelbrotZoom/internal/render"
)

var (
	flagHTTPAddr    string
	flagWebFocus    string
	flagWebFrames   int
	flagWebRecenter int
	flagWebDepth    int
	flagWebWidth    int
	flagWebHeight   int
	flagWebWorkers  int
	flagWebInterval int
	flagWebPalette  string
)

var webCmd = &cobra.Command{
	Use:   "web",
	Short: "Start the zoom web server",
	Long: `Start an HTTP server that streams zoom frames to browsers.

The root page shows a live looping zoom over a websocket. Clients can
override the target per connection with query parameters, e.g.
/?focus=seahorse&depth=50, /?focus=-0.7435,0.1314&w=600&h=600 or
/?degree=3 for a multibrot zoom. A single still is available at
/frame.png?step=N.

Examples:
  mandelzoom web                     # Listen on :8080
  mandelzoom web --http :9000
  mandelzoom web --focus elephant --frames 40
  mandelzoom web --width 600 --height 600 --depth 50`,
	Run: runWeb,
}

func init() {
	webCmd.Flags().StringVar(&flagHTTPAddr, "http", ":8080", "HTTP server address (host:port)")
	webCmd.Flags().StringVar(&flagWebFocus, "focus", "0,0", `Zoom target: "re,im" or a landmark name`)
	webCmd.Flags().IntVar(&flagWebFrames, "frames", 20, "Number of frames per zoom")
	webCmd.Flags().IntVar(&flagWebRecenter, "recenter", 5, "Frames spent gliding onto the focus (0 = zoom in place)")
	webCmd.Flags().IntVar(&flagWebDepth, "depth", 20, "Iteration depth per pixel")
	webCmd.Flags().IntVar(&flagWebWidth, "width", 400, "Frame width in pixels (even, at least 4)")
	webCmd.Flags().IntVar(&flagWebHeight, "height", 400, "Frame height in pixels (even, at least 4)")
	webCmd.Flags().IntVar(&flagWebWorkers, "workers", 0, "Render workers per frame (0 = one per CPU)")
	webCmd.Flags().IntVar(&flagWebInterval, "interval", 200, "Frame delay in milliseconds")
	webCmd.Flags().StringVar(&flagWebPalette, "palette", "heat-rev", "Color palette for streamed frames")
}

func runWeb(cmd *cobra.Command, _ []string) {
	p := loadProfile()

	f := cmd.Flags()
	if f.Changed("focus") {
		p.Render.Focus = flagWebFocus
	}
	if f.Changed("frames") {
		p.Render.Frames = flagWebFrames
	}
	if f.Changed("recenter") {
		p.Render.RecenterFrames = flagWebRecenter
	}
	if f.Changed("depth") {
		p.Render.Depth = flagWebDepth
	}
	if f.Changed("width") {
		p.Render.Width = flagWebWidth
	}
	if f.Changed("height") {
		p.Render.Height = flagWebHeight
	}
	if f.Changed("workers") {
		p.Render.Workers = flagWebWorkers
	}
	if f.Changed("interval") {
		p.Playback.IntervalMS = flagWebInterval
	}
	if f.Changed("palette") {
		p.Output.Palette = flagWebPalette
	}

	params, err := p.Render.SequenceParams()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	pal, err := render.Lookup(p.Output.Palette)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg := web.DefaultServerConfig()
	cfg.Address = flagHTTPAddr
	cfg.Focus = params.Focus
	cfg.Frames = params.Frames
	cfg.RecenterFrames = params.RecenterFrames
	cfg.Depth = params.Depth
	cfg.Res = params.Res
	cfg.Rule = params.Rule
	cfg.Workers = params.Workers
	cfg.Interval = time.Duration(p.Playback.IntervalMS) * time.Millisecond
	cfg.Palette = pal

	server, err := web.NewServer(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting zoom web server on %s\n", cfg.Address)
	fmt.Printf("Open http://localhost%s in a browser\n", cfg.Address)
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
