package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-frogger/internal/core"
	"github.com/vovakirdan/tui-frogger/internal/replay"
	"github.com/vovakirdan/tui-frogger/internal/storage"
)

var replayCmd = &cobra.Command{
	Use:   "replay <id>",
	Short: "Re-simulate a recorded run",
	Long: `Replay a recorded run headlessly from its seed, config and input log,
then check that it ends with the recorded score, lives and result.

Exits with status 1 when the replay does not match.

Examples:
  frogger replay 12
  frogger replay 12 --db ./runs.db`,
	Args: cobra.ExactArgs(1),
	Run:  runReplay,
}

func runReplay(cmd *cobra.Command, args []string) {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id <= 0 {
		fmt.Fprintf(os.Stderr, "Error: invalid run id %q\n", args[0])
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening run database: %v\n", err)
		os.Exit(1)
	}

	ok := replayRun(store, id)
	store.Close()
	if !ok {
		os.Exit(1)
	}
}

// replayRun verifies one stored run and prints the outcome. It reports
// whether the replay matched.
func replayRun(store *storage.Store, id int64) bool {
	run, inputs, err := store.LoadRun(id)
	if errors.Is(err, storage.ErrRunNotFound) {
		fmt.Fprintf(os.Stderr, "Error: run %d not found\n", id)
		fmt.Fprintln(os.Stderr, "Run 'frogger runs' to see recorded runs.")
		return false
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading run: %v\n", err)
		return false
	}

	color.Cyan("Run %d (%s, seed %d)", run.ID, run.GameID, run.Seed)
	fmt.Printf("  Ticks:   %d\n", run.Ticks)
	fmt.Printf("  Inputs:  %d\n", len(inputs))
	fmt.Println()

	res, err := replay.Verify(run, inputs)
	if err != nil && !errors.Is(err, replay.ErrMismatch) {
		fmt.Fprintf(os.Stderr, "Error replaying run: %v\n", err)
		return false
	}

	s := res.State
	fmt.Printf("  Score:   %d\n", s.Score)
	fmt.Printf("  Lives:   %d\n", s.Lives)
	fmt.Printf("  Over:    %v\n", s.GameOver)
	fmt.Println()

	fmt.Println("  Events:")
	for _, e := range []core.Event{core.EventMoveAccepted, core.EventGoalReached, core.EventLifeLost, core.EventGameOver} {
		fmt.Printf("    %-14s %d\n", e.String(), res.Events[e])
	}
	fmt.Println()

	if err != nil {
		color.Red("MISMATCH: %v", err)
		return false
	}
	color.Green("OK: replay matches the recorded run")
	return true
}
