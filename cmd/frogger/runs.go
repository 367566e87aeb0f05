package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-frogger/internal/platform/tui"
	"github.com/vovakirdan/tui-frogger/internal/storage"
)

var (
	flagInteractive bool
	flagRunsLimit   int
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Show recorded runs",
	Long: `List the most recent recorded runs.

With -i, opens an interactive browser. Press Enter on a run to replay and
verify it, x to delete it.

Examples:
  frogger runs
  frogger runs --limit 50
  frogger runs -i`,
	Args: cobra.NoArgs,
	Run:  runRuns,
}

func init() {
	runsCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse runs interactively")
	runsCmd.Flags().IntVar(&flagRunsLimit, "limit", 20, "Maximum number of runs to list")
}

func runRuns(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening run database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagInteractive {
		browseRuns(store)
		return
	}

	runs, err := store.ListRuns(flagRunsLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'frogger play' to record one.")
		return
	}

	color.Yellow("Recorded runs")
	fmt.Println()
	fmt.Printf("  %-5s  %-16s  %-12s  %-6s  %-5s  %-8s  %s\n", "ID", "Date", "Player", "Score", "Lives", "Ticks", "Result")
	fmt.Printf("  %-5s  %-16s  %-12s  %-6s  %-5s  %-8s  %s\n", "--", "----", "------", "-----", "-----", "-----", "------")

	for _, r := range runs {
		player := r.Player
		if player == "" {
			player = "local"
		}
		result := "quit"
		if r.GameOver {
			result = "game over"
		}
		fmt.Printf("  %-5d  %-16s  %-12s  %-6d  %-5d  %-8d  %s\n",
			r.ID, r.CreatedAt.Format("2006-01-02 15:04"), player, r.Score, r.Lives, r.Ticks, result)
	}

	fmt.Println()
	fmt.Println("Run 'frogger replay <id>' to verify a run.")
}

func browseRuns(store *storage.Store) {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	id, err := tui.RunRunsBrowser(store, width, height)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if id == 0 {
		return
	}

	if !replayRun(store, id) {
		os.Exit(1)
	}
}
