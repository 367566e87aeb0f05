package frogger

// StateType is the coarse game state reported in snapshots.
type StateType string

const (
	StatePlaying  StateType = "playing"
	StateJumping  StateType = "jumping"
	StatePaused   StateType = "paused"
	StateGameOver StateType = "game_over"
)

// PlayerSnapshot is a read-only copy of the player pose.
type PlayerSnapshot struct {
	X, Y     float64
	W, H     float64
	Jumping  bool
	Progress float64
	ToX, ToY float64 // Hop destination, valid while Jumping
}

// Snapshot captures the complete game state for rendering, determinism
// testing and replay verification. It shares no memory with the game.
type Snapshot struct {
	Tick      uint64
	Level     int
	Score     int
	Lives     int
	State     StateType
	Player    PlayerSnapshot
	Obstacles []Obstacle
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.gameOver:
		state = StateGameOver
	case g.paused:
		state = StatePaused
	case g.player.Jumping:
		state = StateJumping
	}

	obstacles := make([]Obstacle, len(g.obstacles))
	copy(obstacles, g.obstacles)

	p := g.player
	return Snapshot{
		Tick:  g.tick,
		Level: g.level,
		Score: g.score,
		Lives: g.lives,
		State: state,
		Player: PlayerSnapshot{
			X:        p.X,
			Y:        p.Y,
			W:        p.W,
			H:        p.H,
			Jumping:  p.Jumping,
			Progress: p.Progress(),
			ToX:      p.ToX,
			ToY:      p.ToY,
		},
		Obstacles: obstacles,
	}
}
