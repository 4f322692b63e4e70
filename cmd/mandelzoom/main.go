// mandelzoom renders and plays Mandelbrot set zoom animations.
//
// Usage:
//
//	mandelzoom render           - Render a zoom to GIF or PNG frames
//	mandelzoom play             - Play a zoom live in the terminal
//	mandelzoom serve            - Start SSH server for remote playback
//	mandelzoom web              - Start HTTP server streaming frames to browsers
//	mandelzoom history          - Show past renders
//	mandelzoom landmarks        - List known zoom targets
//
// Global flags:
//
//	--profile <path>  - Load a custom render profile YAML
//	--db <path>       - Set history database path (default: ~/.mandelzoom/history.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagProfile string
	flagDBPath  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "mandelzoom",
	Short: "Mandelbrot Zoom - Render and play fractal zooms in your terminal",
	Long: `Mandelbrot Zoom computes escape-time zoom sequences into the Mandelbrot
set and shows them in the terminal, in the browser, or as GIF and PNG files.

Available commands:
  render     - Render a zoom animation to disk
  play       - Play a zoom live in the terminal
  serve      - Start SSH server for remote playback
  web        - Start HTTP server streaming frames to browsers
  history    - View past renders
  landmarks  - List known zoom targets

Examples:
  mandelzoom render --focus seahorse
  mandelzoom play --pick
  mandelzoom render --preset deep --focus -0.7435,0.1314
  mandelzoom serve --ssh :2323
  mandelzoom history --limit 20`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagProfile, "profile", "", "Path to custom render profile YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.mandelzoom/history.db", "Path to render history database")

	// Add subcommands
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(webCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(landmarksCmd)
}
