package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/benw000/MandelbrotZoom/internal/platform/tui"
	"github.com/benw000/MandelbrotZoom/internal/storage"
)

var (
	flagLimit     int
	flagClear     bool
	flagHistPlain bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show past renders",
	Long: `Display recent renders from the history database, newest first.

Examples:
  mandelzoom history
  mandelzoom history --limit 50
  mandelzoom history --plain
  mandelzoom history --clear`,
	Args: cobra.NoArgs,
	Run:  runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of renders to show")
	historyCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded renders")
	historyCmd.Flags().BoolVar(&flagHistPlain, "plain", false, "Print a plain table instead of the interactive view")
}

func runHistory(cmd *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening history database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		count, countErr := store.RenderCount()
		if countErr != nil {
			count = 0
		}
		if err := store.ClearRenders(); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing history: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Cleared %d renders.\n", count)
		return
	}

	entries, err := store.RecentRenders(flagLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving renders: %v\n", err)
		os.Exit(1)
	}

	stats := storage.RenderStats{}
	if s, statsErr := store.Stats(); statsErr == nil {
		stats = *s
	}

	if flagHistPlain || !term.IsTerminal(int(os.Stdout.Fd())) {
		printHistory(entries, stats)
		return
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	if err := tui.RunHistory(entries, stats, width, height); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// printHistory writes the render log as a plain text table.
func printHistory(entries []storage.RenderEntry, stats storage.RenderStats) {
	fmt.Println("Render History")
	fmt.Println()

	if len(entries) == 0 {
		fmt.Println("No renders recorded yet.")
		fmt.Println()
		fmt.Println("Run 'mandelzoom render' to create the first one!")
		return
	}

	// Print header
	fmt.Printf("  %-16s  %-20s  %-9s  %-6s  %-5s  %-8s  %s\n",
		"Date", "Focus", "Size", "Frames", "Depth", "Time", "Output")
	fmt.Printf("  %-16s  %-20s  %-9s  %-6s  %-5s  %-8s  %s\n",
		"----", "-----", "----", "------", "-----", "----", "------")

	// Print renders
	for _, e := range entries {
		fmt.Printf("  %-16s  %-20s  %-9s  %-6d  %-5d  %-8s  %s\n",
			e.CreatedAt.Format("2006-01-02 15:04"),
			fmt.Sprintf("%g%+gi", real(e.Focus), imag(e.Focus)),
			fmt.Sprintf("%dx%d", e.Width, e.Height),
			e.Frames,
			e.Depth,
			e.Duration.Round(100*time.Millisecond).String(),
			e.OutputPath,
		)
	}

	fmt.Println()
	if stats.Renders > 0 {
		fmt.Printf("Total: %d renders, %d frames, %s\n",
			stats.Renders, stats.TotalFrames, stats.TotalTime.Round(time.Second))
	}
}
