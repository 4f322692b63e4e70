package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/benw000/MandelbrotZoom/internal/platform/tui"
	"github.com/benw000/MandelbrotZoom/internal/render"
)

var (
	flagSSHAddr      string
	flagHostKey      string
	flagIdleTimeout  int
	flagServeFrames  int
	flagServeDepth   int
	flagServeWorkers int
	flagServePalette string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the zoom SSH server",
	Long: `Start an SSH server that lets users watch zooms in their own terminal.

Each SSH connection gets its own session with a landmark picker; the zoom
is rendered at the size of the connecting terminal. Esc returns from a
zoom to the picker.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.mandelzoom/host_key

Examples:
  mandelzoom serve                           # Listen on :2323 with auto-generated key
  mandelzoom serve --ssh :2222               # Listen on port 2222
  mandelzoom serve --host-key ./my_host_key  # Use specific host key
  mandelzoom serve --depth 50 --frames 40    # Deeper, longer zooms

Users can connect with:
  ssh localhost -p 2323`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":2323", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().IntVar(&flagServeFrames, "frames", 30, "Number of frames per zoom")
	serveCmd.Flags().IntVar(&flagServeDepth, "depth", 30, "Iteration depth per pixel")
	serveCmd.Flags().IntVar(&flagServeWorkers, "workers", 0, "Render workers per frame (0 = one per CPU)")
	serveCmd.Flags().StringVar(&flagServePalette, "palette", "heat", "Color palette for session canvases")
}

func runServe(cmd *cobra.Command, _ []string) {
	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagSSHAddr
	cfg.HostKeyPath = flagHostKey
	cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	cfg.Frames = flagServeFrames
	cfg.Depth = flagServeDepth
	cfg.Workers = flagServeWorkers

	pal, err := render.Lookup(flagServePalette)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	cfg.Palette = pal

	// Pace sessions the way the profile does
	p := loadProfile()
	if p.Playback.IntervalMS > 0 {
		cfg.Interval = time.Duration(p.Playback.IntervalMS) * time.Millisecond
	}
	if p.Render.RecenterFrames > 0 {
		cfg.RecenterFrames = p.Render.RecenterFrames
	}

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting zoom SSH server on %s\n", cfg.Address)
	fmt.Println("Connect with: ssh localhost -p 2323")
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
