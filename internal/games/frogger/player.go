package frogger

import (
	"github.com/vovakirdan/tui-frogger/internal/config"
	"github.com/vovakirdan/tui-frogger/internal/core"
)

// Player is the frog. While Jumping is set, X/Y are interpolated between the
// jump source and destination and cannot be changed by input.
type Player struct {
	X, Y         float64 // Logical position (top-left)
	W, H         float64 // Body size
	HomeX, HomeY float64 // Respawn point

	Jumping   bool
	JumpTick  int // Ticks elapsed in the current hop
	JumpTicks int // Ticks a hop takes
	FromX     float64
	FromY     float64
	ToX       float64
	ToY       float64
}

// NewPlayer creates a player resting at its home position.
func NewPlayer(cfg config.PlayerConfig) Player {
	p := Player{
		W:         cfg.Width,
		H:         cfg.Height,
		HomeX:     cfg.HomeX,
		HomeY:     cfg.HomeY,
		JumpTicks: cfg.JumpTicks,
	}
	p.Respawn()
	return p
}

// Rect returns the player's collision box.
func (p Player) Rect() core.Rect {
	return core.NewRect(p.X, p.Y, p.W, p.H)
}

// Progress returns the hop progress in [0, 1). It is 0 when idle.
func (p Player) Progress() float64 {
	if !p.Jumping || p.JumpTicks <= 0 {
		return 0
	}
	return float64(p.JumpTick) / float64(p.JumpTicks)
}

// Respawn puts the player back home and cancels any hop.
func (p *Player) Respawn() {
	p.X, p.Y = p.HomeX, p.HomeY
	p.clearJump()
}

func (p *Player) clearJump() {
	p.Jumping = false
	p.JumpTick = 0
	p.FromX, p.FromY = 0, 0
	p.ToX, p.ToY = 0, 0
}

// Destination returns where a hop in the given direction would land.
func (p Player) Destination(dir core.Action, step float64) (float64, float64) {
	x, y := p.X, p.Y
	switch dir {
	case core.ActionUp:
		y -= step
	case core.ActionDown:
		y += step
	case core.ActionLeft:
		x -= step
	case core.ActionRight:
		x += step
	}
	return x, y
}

// TryMove starts a hop if the player is idle and the destination lies inside
// the field. Rejected requests leave the player untouched.
func (p *Player) TryMove(dir core.Action, step float64, f Field) bool {
	if p.Jumping || !dir.IsDirection() {
		return false
	}

	toX, toY := p.Destination(dir, step)
	if !f.InBoundsX(toX, p.W) || !f.InBoundsY(toY, p.H) {
		return false
	}

	p.FromX, p.FromY = p.X, p.Y
	p.ToX, p.ToY = toX, toY
	p.JumpTick = 0
	p.Jumping = true
	return true
}

// advanceJump moves an active hop forward by one tick. The final tick snaps
// to the destination exactly.
func (p *Player) advanceJump() {
	if !p.Jumping {
		return
	}

	p.JumpTick++
	if p.JumpTick >= p.JumpTicks {
		p.X, p.Y = p.ToX, p.ToY
		p.clearJump()
		return
	}

	t := p.Progress()
	p.X = core.Lerp(p.FromX, p.ToX, t)
	p.Y = core.Lerp(p.FromY, p.ToY, t)
}
