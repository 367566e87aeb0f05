package frogger

import (
	"reflect"
	"testing"

	"github.com/vovakirdan/tui-frogger/internal/config"
	"github.com/vovakirdan/tui-frogger/internal/core"
	"github.com/vovakirdan/tui-frogger/internal/registry"
)

// newTestGame returns a game on default config with every obstacle parked
// off-screen and a predictable random source.
func newTestGame(t *testing.T) *Game {
	t.Helper()
	g := NewWithConfig(config.DefaultFroggerConfig())
	g.SetRandSource(fixedRand{0})
	g.Reset(core.DefaultConfig())
	return g
}

func input(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func countEvents(events []core.Event, e core.Event) int {
	n := 0
	for _, ev := range events {
		if ev == e {
			n++
		}
	}
	return n
}

func placePlayer(g *Game, x, y float64) {
	g.player.X, g.player.Y = x, y
	g.player.clearJump()
}

func TestGameInitialState(t *testing.T) {
	g := newTestGame(t)
	s := g.State()

	if s.Score != 0 || s.Lives != 3 || s.Level != 1 || s.GameOver || s.Paused {
		t.Errorf("initial state = %+v", s)
	}
	if g.player.X != 380 || g.player.Y != 550 {
		t.Errorf("player at (%v, %v), want (380, 550)", g.player.X, g.player.Y)
	}
	if len(g.obstacles) != 18 {
		t.Errorf("obstacles = %d, want 18", len(g.obstacles))
	}
}

func TestJumpCompletesInTwelveTicks(t *testing.T) {
	g := newTestGame(t)
	g.obstacles = nil

	res := g.Step(input(core.ActionUp))
	if countEvents(res.Events, core.EventMoveAccepted) != 1 {
		t.Fatalf("events = %v, want one move-accepted", res.Events)
	}

	prev := g.Snapshot().Player.Progress
	if !g.player.Jumping || prev <= 0 {
		t.Fatalf("after tick 1: jumping=%v progress=%v", g.player.Jumping, prev)
	}

	for tick := 2; tick <= 11; tick++ {
		g.Step(core.NewInputFrame())
		p := g.Snapshot().Player
		if !p.Jumping {
			t.Fatalf("tick %d: hop ended early", tick)
		}
		if p.Progress <= prev {
			t.Fatalf("tick %d: progress %v did not increase from %v", tick, p.Progress, prev)
		}
		if p.Y >= 550 || p.Y <= 500 {
			t.Fatalf("tick %d: y = %v not between source and destination", tick, p.Y)
		}
		prev = p.Progress
	}

	g.Step(core.NewInputFrame())
	p := g.Snapshot().Player
	if p.Jumping {
		t.Fatal("hop should finish on tick 12")
	}
	if p.X != 380 || p.Y != 500 {
		t.Errorf("landed at (%v, %v), want exactly (380, 500)", p.X, p.Y)
	}
	if p.Progress != 0 {
		t.Errorf("idle progress = %v, want 0", p.Progress)
	}
}

func TestMoveDroppedWhileJumping(t *testing.T) {
	g := newTestGame(t)
	g.obstacles = nil

	g.Step(input(core.ActionUp))
	res := g.Step(input(core.ActionLeft))

	if countEvents(res.Events, core.EventMoveAccepted) != 0 {
		t.Error("move during a hop should be dropped")
	}
	if g.player.ToX != 380 || g.player.ToY != 500 {
		t.Errorf("destination changed to (%v, %v)", g.player.ToX, g.player.ToY)
	}

	for i := 0; i < 10; i++ {
		g.Step(core.NewInputFrame())
	}
	if g.player.X != 380 || g.player.Y != 500 {
		t.Errorf("landed at (%v, %v), want (380, 500)", g.player.X, g.player.Y)
	}
}

func TestMoveRejectedAtBoundary(t *testing.T) {
	tests := []struct {
		name string
		x, y float64
		dir  core.Action
	}{
		{"down from start row", 380, 550, core.ActionDown},
		{"left from left edge", 0, 550, core.ActionLeft},
		{"left would leave field", 30, 550, core.ActionLeft},
		{"right from right edge", 760, 550, core.ActionRight},
		{"up from top", 380, 0, core.ActionUp},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame(t)
			g.obstacles = nil
			g.player.HomeX, g.player.HomeY = tt.x, tt.y
			placePlayer(g, tt.x, tt.y)
			before := g.player
			score := g.score

			res := g.Step(input(tt.dir))

			if countEvents(res.Events, core.EventMoveAccepted) != 0 {
				t.Error("out-of-field move should be rejected")
			}
			if g.player.Jumping || g.player.X != before.X {
				t.Errorf("player changed: %+v", g.player)
			}
			// A rejected move at the top still counts the goal, but never moves.
			if tt.y > 50 && (g.player.Y != before.Y || g.score != score) {
				t.Errorf("player changed: %+v", g.player)
			}
		})
	}
}

func TestMoveAcceptedEachDirection(t *testing.T) {
	tests := []struct {
		dir          core.Action
		wantX, wantY float64
	}{
		{core.ActionUp, 380, 500},
		{core.ActionLeft, 330, 550},
		{core.ActionRight, 430, 550},
	}

	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			g := newTestGame(t)
			g.obstacles = nil

			g.Step(input(tt.dir))
			for i := 0; i < 11; i++ {
				g.Step(core.NewInputFrame())
			}
			if g.player.X != tt.wantX || g.player.Y != tt.wantY {
				t.Errorf("landed at (%v, %v), want (%v, %v)", g.player.X, g.player.Y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestVehicleHitPerOverlap(t *testing.T) {
	tests := []struct {
		name      string
		vehicles  []float64 // X of each vehicle on the player's lane
		wantLives int
		wantOver  bool
	}{
		{"no overlap", []float64{100}, 3, false},
		{"one vehicle", []float64{370}, 2, false},
		{"two vehicles", []float64{330, 390}, 1, false},
		{"three vehicles", []float64{330, 370, 390}, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame(t)
			g.obstacles = nil
			for _, x := range tt.vehicles {
				g.obstacles = append(g.obstacles, Obstacle{
					Kind: KindVehicle, X: x, Y: 300, W: 60, H: 30, WrapMargin: 100,
				})
			}
			placePlayer(g, 380, 300)

			res := g.Step(core.NewInputFrame())
			s := res.State

			if s.Lives != tt.wantLives {
				t.Errorf("lives = %d, want %d", s.Lives, tt.wantLives)
			}
			if s.GameOver != tt.wantOver {
				t.Errorf("gameOver = %v, want %v", s.GameOver, tt.wantOver)
			}
			if got, want := countEvents(res.Events, core.EventLifeLost), 3-tt.wantLives; got != want {
				t.Errorf("life-lost events = %d, want %d", got, want)
			}
			if tt.wantOver {
				if countEvents(res.Events, core.EventGameOver) != 1 {
					t.Error("expected exactly one game-over event")
				}
				if g.player.X != 380 || g.player.Y != 300 {
					t.Errorf("game over should keep position, got (%v, %v)", g.player.X, g.player.Y)
				}
			} else if tt.wantLives < 3 && (g.player.X != 380 || g.player.Y != 550) {
				t.Errorf("player should respawn home, got (%v, %v)", g.player.X, g.player.Y)
			}
		})
	}
}

func TestVehicleEdgeTouchIsNotAHit(t *testing.T) {
	g := newTestGame(t)
	g.obstacles = []Obstacle{{Kind: KindVehicle, X: 320, Y: 300, W: 60, H: 30, WrapMargin: 100}}
	placePlayer(g, 380, 300)

	g.Step(core.NewInputFrame())
	if g.lives != 3 {
		t.Errorf("touching edges should not collide, lives = %d", g.lives)
	}
}

func TestWaterDrowning(t *testing.T) {
	tests := []struct {
		y         float64
		wantLives int
	}{
		{90, 3},  // safe strip above the river
		{100, 2}, // first river lane
		{150, 2},
		{210, 2}, // lowest in-water position
		{220, 3}, // feet on the bank
		{250, 3},
	}

	for _, tt := range tests {
		g := newTestGame(t)
		g.obstacles = nil
		placePlayer(g, 380, tt.y)

		g.Step(core.NewInputFrame())
		if g.lives != tt.wantLives {
			t.Errorf("y=%v: lives = %d, want %d", tt.y, g.lives, tt.wantLives)
		}
	}
}

func TestLogCarry(t *testing.T) {
	t.Run("single log", func(t *testing.T) {
		g := newTestGame(t)
		g.obstacles = []Obstacle{{Kind: KindLog, X: 350, Y: 150, W: 120, H: 30, Speed: 2, WrapMargin: 150}}
		placePlayer(g, 380, 150)

		g.Step(core.NewInputFrame())
		if g.lives != 3 {
			t.Fatalf("riding a log should be safe, lives = %d", g.lives)
		}
		if g.player.X != 382 {
			t.Errorf("x = %v, want 382", g.player.X)
		}
	})

	t.Run("overlapping logs add up", func(t *testing.T) {
		g := newTestGame(t)
		g.obstacles = []Obstacle{
			{Kind: KindLog, X: 300, Y: 150, W: 120, H: 30, Speed: 2, WrapMargin: 150},
			{Kind: KindLog, X: 360, Y: 150, W: 120, H: 30, Speed: -1.5, WrapMargin: 150},
		}
		placePlayer(g, 380, 150)

		g.Step(core.NewInputFrame())
		if g.player.X != 380.5 {
			t.Errorf("x = %v, want 380.5", g.player.X)
		}
	})
}

func TestNoCarryWhileHopping(t *testing.T) {
	g := newTestGame(t)
	g.obstacles = []Obstacle{
		{Kind: KindLog, X: 350, Y: 150, W: 120, H: 30, Speed: 2, WrapMargin: 150},
		{Kind: KindLog, X: 350, Y: 200, W: 120, H: 30, Speed: 2, WrapMargin: 150},
	}
	placePlayer(g, 380, 200)

	g.Step(input(core.ActionUp))
	for i := 0; i < 11; i++ {
		g.Step(core.NewInputFrame())
		if g.player.X != 380 {
			t.Fatalf("hop tick %d: x = %v, player was carried mid-air", i+2, g.player.X)
		}
	}
	if g.player.Y != 150 || g.player.Jumping {
		t.Fatalf("hop should land at y=150, got y=%v jumping=%v", g.player.Y, g.player.Jumping)
	}

	g.Step(core.NewInputFrame())
	if g.player.X != 382 {
		t.Errorf("carry after landing: x = %v, want 382", g.player.X)
	}
	if g.lives != 3 {
		t.Errorf("lives = %d, want 3", g.lives)
	}
}

func TestCarriedOutOfBounds(t *testing.T) {
	g := newTestGame(t)
	g.obstacles = []Obstacle{{Kind: KindLog, X: 700, Y: 150, W: 120, H: 30, Speed: 2, WrapMargin: 150}}
	placePlayer(g, 759, 150)

	res := g.Step(core.NewInputFrame())
	if g.lives != 2 {
		t.Errorf("lives = %d, want 2", g.lives)
	}
	if countEvents(res.Events, core.EventLifeLost) != 1 {
		t.Errorf("events = %v, want one life-lost", res.Events)
	}
	if g.player.X != 380 || g.player.Y != 550 {
		t.Errorf("player should respawn, got (%v, %v)", g.player.X, g.player.Y)
	}
}

func TestGoalReached(t *testing.T) {
	g := newTestGame(t)
	g.obstacles = nil
	placePlayer(g, 380, 100)

	g.Step(input(core.ActionUp))
	var res core.StepResult
	for i := 0; i < 11; i++ {
		res = g.Step(core.NewInputFrame())
		if i < 10 && g.score != 0 {
			t.Fatalf("scored before landing at tick %d", i+2)
		}
	}

	if res.State.Score != 100 {
		t.Errorf("score = %d, want 100", res.State.Score)
	}
	if countEvents(res.Events, core.EventGoalReached) != 1 {
		t.Errorf("events = %v, want goal-reached", res.Events)
	}
	if g.player.X != 380 || g.player.Y != 550 || g.player.Jumping {
		t.Errorf("player should be home and idle, got %+v", g.player)
	}
	if res.State.Lives != 3 {
		t.Errorf("lives = %d, want 3", res.State.Lives)
	}
}

func TestGameOverFreezesAndRestart(t *testing.T) {
	g := newTestGame(t)
	g.obstacles = nil

	var res core.StepResult
	for i := 0; i < 3; i++ {
		placePlayer(g, 380, 150)
		res = g.Step(core.NewInputFrame())
	}

	if !res.State.GameOver || res.State.Lives != 0 {
		t.Fatalf("state = %+v, want game over with 0 lives", res.State)
	}
	if countEvents(res.Events, core.EventGameOver) != 1 {
		t.Errorf("events = %v, want game-over", res.Events)
	}
	if g.player.X != 380 || g.player.Y != 150 {
		t.Errorf("final position = (%v, %v), want (380, 150)", g.player.X, g.player.Y)
	}

	frozen := g.Snapshot()
	for _, in := range []core.InputFrame{input(core.ActionUp), input(core.ActionPause), core.NewInputFrame()} {
		res = g.Step(in)
		if len(res.Events) != 0 {
			t.Errorf("game over emitted %v", res.Events)
		}
	}
	if !reflect.DeepEqual(frozen, g.Snapshot()) {
		t.Error("state changed after game over")
	}

	res = g.Step(input(core.ActionRestart))
	s := res.State
	if s.GameOver || s.Lives != 3 || s.Score != 0 || s.Level != 1 {
		t.Errorf("after restart state = %+v", s)
	}
	if g.player.X != 380 || g.player.Y != 550 {
		t.Errorf("player not home after restart: (%v, %v)", g.player.X, g.player.Y)
	}
	if len(g.obstacles) != 18 {
		t.Errorf("obstacles = %d, want 18 after restart", len(g.obstacles))
	}
}

func TestRestartIgnoredWhilePlaying(t *testing.T) {
	g := newTestGame(t)
	g.score = 300

	g.Step(input(core.ActionRestart))
	if g.score != 300 {
		t.Errorf("restart during play reset score to %d", g.score)
	}
}

func TestPauseToggle(t *testing.T) {
	g := newTestGame(t)

	res := g.Step(input(core.ActionPause))
	if !res.State.Paused {
		t.Fatal("game should be paused")
	}

	before := g.Snapshot()
	g.Step(input(core.ActionUp))
	g.Step(core.NewInputFrame())
	if !reflect.DeepEqual(before, g.Snapshot()) {
		t.Error("paused game advanced")
	}

	res = g.Step(input(core.ActionPause))
	if res.State.Paused {
		t.Error("game should resume")
	}
	if g.Snapshot().Tick != before.Tick+1 {
		t.Errorf("tick = %d, want %d", g.Snapshot().Tick, before.Tick+1)
	}
}

func inputScript(n int) []core.InputFrame {
	dirs := []core.Action{core.ActionUp, core.ActionUp, core.ActionLeft, core.ActionUp, core.ActionRight, core.ActionDown}
	frames := make([]core.InputFrame, n)
	for i := range frames {
		frames[i] = core.NewInputFrame()
		if i%7 == 0 {
			frames[i].Set(dirs[(i/7)%len(dirs)])
		}
		if i%500 == 499 {
			frames[i].Set(core.ActionRestart)
		}
	}
	return frames
}

func TestGameDeterminism(t *testing.T) {
	rc := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 12345}

	g1 := NewWithConfig(config.DefaultFroggerConfig())
	g1.Reset(rc)
	g2 := NewWithConfig(config.DefaultFroggerConfig())
	g2.Reset(rc)

	for i, in := range inputScript(2000) {
		r1 := g1.Step(in)
		r2 := g2.Step(in.Clone())

		if !reflect.DeepEqual(r1, r2) {
			t.Fatalf("tick %d: results differ: %+v vs %+v", i, r1, r2)
		}
		if !reflect.DeepEqual(g1.Snapshot(), g2.Snapshot()) {
			t.Fatalf("tick %d: snapshots differ", i)
		}
	}
}

func TestSeedChangesLayout(t *testing.T) {
	g1 := NewWithConfig(config.DefaultFroggerConfig())
	g1.Reset(core.RuntimeConfig{TickRate: 60, Seed: 1})
	g2 := NewWithConfig(config.DefaultFroggerConfig())
	g2.Reset(core.RuntimeConfig{TickRate: 60, Seed: 2})

	if reflect.DeepEqual(g1.Snapshot().Obstacles, g2.Snapshot().Obstacles) {
		t.Error("different seeds produced the same obstacle layout")
	}
}

func TestScreenSizeIndependence(t *testing.T) {
	rc := core.RuntimeConfig{TickRate: 60, Seed: 99}

	g1 := NewWithConfig(config.DefaultFroggerConfig())
	g1.Reset(rc)
	g2 := NewWithConfig(config.DefaultFroggerConfig())
	g2.Reset(rc)

	small := core.NewScreen(40, 12)
	large := core.NewScreen(200, 60)

	for i, in := range inputScript(600) {
		g1.Step(in)
		g2.Step(in.Clone())
		g1.Render(small)
		g2.Render(large)
		if i%50 == 0 {
			large.Resize(120+i%80, 30+i%30)
		}

		if !reflect.DeepEqual(g1.Snapshot(), g2.Snapshot()) {
			t.Fatalf("tick %d: display size changed the simulation", i)
		}
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	g := newTestGame(t)
	s := g.Snapshot()
	s.Obstacles[0].X = 12345

	if g.obstacles[0].X == 12345 {
		t.Error("snapshot shares obstacle memory with the game")
	}
}

func TestSnapshotStates(t *testing.T) {
	g := newTestGame(t)
	g.obstacles = nil

	if got := g.Snapshot().State; got != StatePlaying {
		t.Errorf("state = %q, want playing", got)
	}
	g.Step(input(core.ActionUp))
	if got := g.Snapshot().State; got != StateJumping {
		t.Errorf("state = %q, want jumping", got)
	}
	g.Step(input(core.ActionPause))
	if got := g.Snapshot().State; got != StatePaused {
		t.Errorf("state = %q, want paused", got)
	}
}

func TestRegistered(t *testing.T) {
	g, err := registry.Create(GameID)
	if err != nil {
		t.Fatalf("Create(%q) failed: %v", GameID, err)
	}
	if g.Title() != "Frogger" {
		t.Errorf("Title() = %q", g.Title())
	}
}
