package replay

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-frogger/internal/config"
	"github.com/vovakirdan/tui-frogger/internal/core"
	"github.com/vovakirdan/tui-frogger/internal/games/frogger"
	"github.com/vovakirdan/tui-frogger/internal/registry"
	"github.com/vovakirdan/tui-frogger/internal/storage"
)

// ErrMismatch is wrapped when a replay does not reproduce the recorded outcome.
var ErrMismatch = errors.New("replay: outcome mismatch")

// Result is the outcome of re-simulating a run.
type Result struct {
	State    core.GameState
	Steps    uint64
	Snapshot frogger.Snapshot
	Events   map[core.Event]int // Count of every event emitted
}

// Frames groups an input log into one frame per step.
func Frames(inputs []storage.Input) (map[uint64]core.InputFrame, error) {
	frames := make(map[uint64]core.InputFrame)
	for _, in := range inputs {
		a := core.ParseAction(in.Action)
		if a == core.ActionNone {
			return nil, fmt.Errorf("replay: unknown action %q at tick %d", in.Action, in.Tick)
		}
		f, ok := frames[in.Tick]
		if !ok {
			f = core.NewInputFrame()
		}
		f.Set(a)
		frames[in.Tick] = f
	}
	return frames, nil
}

// Simulate resets g with rc and feeds it the input log for steps steps.
func Simulate(g registry.Game, rc core.RuntimeConfig, steps uint64, inputs []storage.Input) (core.GameState, map[core.Event]int, error) {
	frames, err := Frames(inputs)
	if err != nil {
		return core.GameState{}, nil, err
	}

	g.Reset(rc)
	state := g.State()
	events := make(map[core.Event]int)
	empty := core.NewInputFrame()

	for step := uint64(1); step <= steps; step++ {
		in, ok := frames[step]
		if !ok {
			in = empty
		}
		res := g.Step(in)
		state = res.State
		for _, e := range res.Events {
			events[e]++
		}
	}
	return state, events, nil
}

// Run re-simulates a stored frogger run with the config it was recorded with.
func Run(run storage.Run, inputs []storage.Input) (Result, error) {
	if run.GameID != frogger.GameID {
		return Result{}, fmt.Errorf("replay: unsupported game %q", run.GameID)
	}

	cfg := config.DefaultFroggerConfig()
	if run.Config != "" {
		parsed, err := config.ParseFrogger([]byte(run.Config))
		if err != nil {
			return Result{}, fmt.Errorf("replay: run %d config: %w", run.ID, err)
		}
		cfg = parsed
	}

	rc := core.DefaultConfig()
	rc.Seed = run.Seed
	if run.TickRate > 0 {
		rc.TickRate = run.TickRate
	}

	g := frogger.NewWithConfig(cfg)
	state, events, err := Simulate(g, rc, run.Ticks, inputs)
	if err != nil {
		return Result{}, err
	}

	return Result{
		State:    state,
		Steps:    run.Ticks,
		Snapshot: g.Snapshot(),
		Events:   events,
	}, nil
}

// Verify replays a run and checks it ends with the recorded score, lives and
// game-over flag.
func Verify(run storage.Run, inputs []storage.Input) (Result, error) {
	res, err := Run(run, inputs)
	if err != nil {
		return res, err
	}

	s := res.State
	if s.Score != run.Score || s.Lives != run.Lives || s.GameOver != run.GameOver {
		return res, fmt.Errorf("%w: recorded score=%d lives=%d over=%v, replayed score=%d lives=%d over=%v",
			ErrMismatch, run.Score, run.Lives, run.GameOver, s.Score, s.Lives, s.GameOver)
	}
	return res, nil
}
