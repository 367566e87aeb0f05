package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-frogger/internal/config"
	"github.com/vovakirdan/tui-frogger/internal/core"
	"github.com/vovakirdan/tui-frogger/internal/registry"
	"github.com/vovakirdan/tui-frogger/internal/replay"
	"github.com/vovakirdan/tui-frogger/internal/storage"
)

// Options wires the collaborators of a game session. Every field is optional.
type Options struct {
	Store  *storage.Store // Run log; nil disables recording
	Sink   core.EventSink // Receives simulation events, e.g. audio
	Logger *log.Logger    // Defaults to a discarding logger
	FPS    int            // Redraw rate; the simulation rate is RuntimeConfig.TickRate
	Player string         // Recorded with the run for SSH sessions
}

// configSource is implemented by games that can report the config they run with.
type configSource interface {
	Config() config.FroggerConfig
}

// runState is shared by every copy of a Model so a run is saved once no
// matter which copy ends the session.
type runState struct {
	saved bool
}

// Model is the Bubble Tea model that runs one game session.
// Key presses only queue intents; they reach the simulation at the next
// logical tick, which the stepper derives from wall-clock time.
type Model struct {
	game      registry.Game
	screen    *core.Screen
	opts      Options
	config    core.RuntimeConfig
	stepper   *core.Stepper
	recorder  *replay.Recorder
	keyMapper *KeyMapper
	pending   core.InputFrame
	gameState core.GameState
	quitting  bool
	run       *runState
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	if opts.FPS <= 0 {
		opts.FPS = DefaultFPS
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	return Model{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		opts:      opts,
		config:    cfg,
		stepper:   core.NewStepper(cfg.TickRate),
		recorder:  replay.NewRecorder(),
		keyMapper: NewKeyMapper(),
		pending:   core.NewInputFrame(),
		run:       &runState{},
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.stepper.Reset()
	m.recorder.Reset()
	m.opts.Logger.Debug("session started", "game", m.game.ID(), "seed", m.config.Seed, "tick_rate", m.config.TickRate)

	return tickCmd(m.opts.FPS)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// Only the view changes; the simulation runs in logical units.
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey queues the action for the next logical tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.pending) {
		m.quitting = true
		m.saveRun()
		return m, tea.Quit
	}
	return m, nil
}

// handleTick runs every logical tick that is due. Pending input goes to the
// first of them only.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	n := m.stepper.AdvanceTo(now)

	for i := 0; i < n; i++ {
		result := m.recorder.Step(m.game, m.pending)
		m.gameState = result.State
		core.Dispatch(m.opts.Sink, result.Events)

		for _, e := range result.Events {
			if e == core.EventGameOver {
				m.opts.Logger.Info("game over", "score", m.gameState.Score, "ticks", m.recorder.Steps())
			}
		}

		m.pending.Clear()
	}

	return m, tickCmd(m.opts.FPS)
}

// saveRun stores the session in the run log, once.
func (m *Model) saveRun() {
	if m.run.saved || m.opts.Store == nil || m.recorder.Steps() == 0 {
		return
	}
	m.run.saved = true

	var cfgYAML string
	if src, ok := m.game.(configSource); ok {
		data, err := config.MarshalFrogger(src.Config())
		if err != nil {
			m.opts.Logger.Warn("could not encode game config", "err", err)
		} else {
			cfgYAML = string(data)
		}
	}

	run := m.recorder.Run(m.game.ID(), m.config, cfgYAML)
	run.Player = m.opts.Player

	id, err := m.opts.Store.SaveRun(run, m.recorder.Inputs())
	if err != nil {
		m.opts.Logger.Warn("could not save run", "err", err)
		return
	}
	m.opts.Logger.Info("run saved", "id", id, "score", run.Score, "ticks", run.Ticks)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".arcade", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.opts.Logger.Warn("could not save screenshot", "err", err)
		return
	}
	m.opts.Logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// State returns the last state reported by the game.
func (m Model) State() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program with the given game and blocks until the
// player quits.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("tui: %w", err)
	}

	// Runs ended by a signal never saw the quit key.
	if fm, ok := final.(Model); ok {
		fm.saveRun()
	}
	return nil
}
