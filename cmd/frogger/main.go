// frogger is a terminal Frogger: hop across the traffic and the river to
// reach the far bank.
//
// Usage:
//
//	frogger play             - Play locally
//	frogger serve            - Start SSH server for remote play
//	frogger runs             - List recorded runs
//	frogger replay <id>      - Re-simulate a recorded run and verify it
//	frogger list             - List available games
//
// Global flags:
//
//	--fps <rate>        - Redraw rate (default: 60)
//	--seed <value>      - RNG seed for reproducible gameplay
//	--db <path>         - Run log database (default: ~/.arcade/frogger.db)
//	--log-level <lvl>   - debug, info, warn or error
//	--log-file <path>   - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/tui-frogger/internal/games/frogger"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "frogger",
	Short: "Frogger - cross the road and the river in your terminal",
	Long: `Frogger is a terminal lane-crossing game. Hop over four lanes of
traffic, ride the logs across the river, and reach the far bank.

Every local and SSH session is recorded (seed and input only) so it can be
replayed and verified later.

Available commands:
  play     - Play a game locally
  serve    - Start SSH server for remote play
  runs     - Browse recorded runs
  replay   - Re-simulate a recorded run
  list     - Show available games

Examples:
  frogger play
  frogger play --seed 42 --mute
  frogger serve --ssh :2222
  frogger runs -i
  frogger replay 12`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Redraw rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/frogger.db", "Path to run log database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(replayCmd)
}

// newLogger builds the process logger. Without --log-file, fallback is
// used, which lets full-screen commands keep logs off the terminal.
// The returned close function releases the log file.
func newLogger(prefix string, fallback io.Writer) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	w := fallback
	closeFn := func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closeFn = func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
	return logger, closeFn, nil
}
