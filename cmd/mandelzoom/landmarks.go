package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/benw000/MandelbrotZoom/internal/fractal"
)

var landmarksCmd = &cobra.Command{
	Use:   "landmarks",
	Short: "List known zoom targets",
	Long:  `Shows the named regions of the Mandelbrot set available as focus targets.`,
	Run:   runLandmarks,
}

func runLandmarks(cmd *cobra.Command, args []string) {
	landmarks := fractal.Landmarks()

	if len(landmarks) == 0 {
		fmt.Println("No landmarks available.")
		return
	}

	fmt.Println("Known zoom targets:")
	fmt.Println()

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, lm := range landmarks {
		if len(lm.Name) > maxNameLen {
			maxNameLen = len(lm.Name)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %-20s  %s\n", maxNameLen, "Name", "Focus", "Title")
	fmt.Printf("  %-*s  %-20s  %s\n", maxNameLen, "----", "-----", "-----")

	// Print landmarks
	for _, lm := range landmarks {
		focus := fmt.Sprintf("%g%+gi", real(lm.Focus), imag(lm.Focus))
		fmt.Printf("  %-*s  %-20s  %s\n", maxNameLen, lm.Name, focus, lm.Title)
	}

	fmt.Println()
	fmt.Println("Run 'mandelzoom play --focus <name>' to zoom into one.")
}
