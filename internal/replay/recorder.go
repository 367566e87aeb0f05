// Package replay records the input of a play session and re-simulates
// recorded runs headlessly. The simulation is deterministic for a given
// seed, config and input log, so a replay must end in the recorded state.
package replay

import (
	"github.com/vovakirdan/tui-frogger/internal/core"
	"github.com/vovakirdan/tui-frogger/internal/registry"
	"github.com/vovakirdan/tui-frogger/internal/storage"
)

// Recorder steps a game and logs every non-empty input frame against the
// step it was applied on. Steps are counted from 1 and include paused and
// game-over steps, so the log lines up with Step calls rather than with the
// game's own tick counter.
type Recorder struct {
	steps  uint64
	inputs []storage.Input
	last   core.GameState
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Step applies in to g and records it.
func (r *Recorder) Step(g registry.Game, in core.InputFrame) core.StepResult {
	r.steps++
	for _, a := range in.Slice() {
		if a == core.ActionQuit {
			continue
		}
		r.inputs = append(r.inputs, storage.Input{Tick: r.steps, Action: a.String()})
	}

	res := g.Step(in)
	r.last = res.State
	return res
}

// Steps returns the number of steps taken.
func (r *Recorder) Steps() uint64 {
	return r.steps
}

// Inputs returns a copy of the input log.
func (r *Recorder) Inputs() []storage.Input {
	out := make([]storage.Input, len(r.inputs))
	copy(out, r.inputs)
	return out
}

// Run builds the run header for the recorded session.
func (r *Recorder) Run(gameID string, rc core.RuntimeConfig, cfgYAML string) storage.Run {
	return storage.Run{
		GameID:   gameID,
		Seed:     rc.Seed,
		TickRate: rc.TickRate,
		Ticks:    r.steps,
		Score:    r.last.Score,
		Lives:    r.last.Lives,
		GameOver: r.last.GameOver,
		Config:   cfgYAML,
	}
}

// Reset discards everything recorded so far.
func (r *Recorder) Reset() {
	r.steps = 0
	r.inputs = r.inputs[:0]
	r.last = core.GameState{}
}
