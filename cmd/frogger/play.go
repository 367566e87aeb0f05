package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-frogger/internal/audio"
	"github.com/vovakirdan/tui-frogger/internal/config"
	"github.com/vovakirdan/tui-frogger/internal/core"
	"github.com/vovakirdan/tui-frogger/internal/games/frogger"
	"github.com/vovakirdan/tui-frogger/internal/platform/tui"
	"github.com/vovakirdan/tui-frogger/internal/registry"
	"github.com/vovakirdan/tui-frogger/internal/storage"
)

var (
	flagConfig string
	flagMute   bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Frogger",
	Long: `Start a local game.

Controls:
  Up/W Down/S Left/A Right/D  - Hop
  P/Esc                       - Pause
  R                           - Restart (after game over)
  Ctrl+S                      - Save a text screenshot
  Q/Ctrl+C                    - Quit

The session is recorded to the run log when you quit.

Examples:
  frogger play
  frogger play --seed 1234
  frogger play --mute
  frogger play --config ./my-frogger.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
}

func runPlay(cmd *cobra.Command, args []string) {
	// Load up front so a broken file is reported before the screen switches.
	cfg, err := config.LoadFrogger(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	config.ApplyMute(&cfg, flagMute)
	frogger.SetConfigPath(flagConfig)

	logger, closeLog, err := newLogger("frogger", io.Discard)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	game, err := registry.Create(frogger.GameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rc := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: core.DefaultConfig().TickRate,
		Seed:     flagSeed,
	}

	sound := audio.New(cfg.Audio, logger)
	defer sound.Close()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open run database, session will not be recorded", "err", err)
		store = nil
	}

	runErr := tui.Run(game, rc, tui.Options{
		Store:  store,
		Sink:   sound,
		Logger: logger,
		FPS:    flagFPS,
	})

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
