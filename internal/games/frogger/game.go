// Package frogger implements a Frogger-style lane crossing game.
// The player hops across a road of traffic and a river of drifting logs to
// reach the goal bank, scoring on each crossing until the lives run out.
package frogger

import (
	"math/rand"

	"github.com/vovakirdan/tui-frogger/internal/config"
	"github.com/vovakirdan/tui-frogger/internal/core"
	"github.com/vovakirdan/tui-frogger/internal/registry"
)

// GameID is the registry identifier of the game.
const GameID = "frogger"

// Game is the simulation context. It owns all entity and session state; the
// platform drives it one logical tick at a time through Step.
type Game struct {
	cfg     config.FroggerConfig
	runtime core.RuntimeConfig
	field   Field
	rng     RandSource

	player    Player
	obstacles []Obstacle

	score    int
	lives    int
	level    int
	gameOver bool
	paused   bool
	tick     uint64

	events []core.Event // Events of the current tick

	fixedCfg *config.FroggerConfig // Set by NewWithConfig, bypasses file loading
	fixedRNG RandSource            // Set by SetRandSource, bypasses seeding
}

// configPath stores the custom config path set via CLI
var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// New creates a new Frogger game instance that loads its config on Reset.
func New() *Game {
	return &Game{}
}

// NewWithConfig creates a game bound to the given configuration.
func NewWithConfig(cfg config.FroggerConfig) *Game {
	return &Game{fixedCfg: &cfg}
}

// SetRandSource injects the random source used for obstacle generation.
// It takes effect on the next Reset and replaces seeding from RuntimeConfig.
func (g *Game) SetRandSource(r RandSource) {
	g.fixedRNG = r
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Frogger"
}

// Config returns the active game configuration.
func (g *Game) Config() config.FroggerConfig {
	return g.cfg
}

// Reset initializes the game: loads config, seeds the random source, and
// starts a fresh session.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	switch {
	case g.fixedCfg != nil:
		g.cfg = *g.fixedCfg
	default:
		cfg, err := config.LoadFrogger(configPath)
		if err != nil {
			cfg = config.DefaultFroggerConfig()
		}
		g.cfg = cfg
	}
	g.field = NewField(g.cfg.Field)

	if g.fixedRNG != nil {
		g.rng = g.fixedRNG
	} else {
		g.rng = rand.New(rand.NewSource(runtime.Seed))
	}

	g.tick = 0
	g.paused = false
	g.Restart()
}

// Restart begins a new session on the same random stream: score and lives
// reset, the player goes home, and the obstacle set is regenerated.
func (g *Game) Restart() {
	g.score = 0
	g.lives = g.cfg.Gameplay.Lives
	g.level = 1
	g.gameOver = false
	g.paused = false
	g.player = NewPlayer(g.cfg.Player)
	g.obstacles = Populate(g.cfg, g.rng)
	g.events = g.events[:0]
}

// Step advances the game by one logical tick.
// Order: restart/pause handling, move intent, hop progress, obstacle motion,
// then collision and zone resolution.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.events = g.events[:0]

	if g.gameOver {
		if in.Has(core.ActionRestart) {
			g.Restart()
		}
		return g.result()
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return g.result()
	}

	g.tick++

	if dir := in.Direction(); dir != core.ActionNone {
		if g.player.TryMove(dir, g.cfg.Player.Step, g.field) {
			g.emit(core.EventMoveAccepted)
		}
	}

	airborne := g.player.Jumping
	g.player.advanceJump()
	AdvanceAll(g.obstacles, g.field.Width)
	g.resolveCollisions(airborne)

	return g.result()
}

func (g *Game) emit(e core.Event) {
	g.events = append(g.events, e)
}

func (g *Game) result() core.StepResult {
	events := make([]core.Event, len(g.events))
	copy(events, g.events)
	return core.StepResult{State: g.State(), Events: events}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Lives:    g.lives,
		Level:    g.level,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// Register the game with the registry
func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}
