package frogger

import "github.com/vovakirdan/tui-frogger/internal/core"

// collisionReport is everything the zone rules need, measured once from the
// post-motion state of a tick. Outcomes are applied only after the report is
// complete, so a respawn from one rule cannot hide another rule's hit.
type collisionReport struct {
	inRoad      bool
	vehicleHits int // One life per overlapping vehicle

	inWater  bool
	logHits  int
	carry    float64 // Sum of overlapping log speeds; zero when airborne
	drowning bool

	atGoal bool
}

// inspect measures the current tick's collisions without changing state.
// An airborne player (hopping at any point of this tick, including the
// landing tick) is not carried by logs.
func (g *Game) inspect(airborne bool) collisionReport {
	var rep collisionReport

	p := g.player
	box := p.Rect()

	rep.inRoad = g.field.InRoad(p.Y, p.H)
	rep.inWater = g.field.InWater(p.Y, p.H)

	for _, o := range g.obstacles {
		switch {
		case rep.inRoad && o.Kind == KindVehicle:
			if box.Intersects(o.Rect()) {
				rep.vehicleHits++
			}
		case rep.inWater && o.Kind == KindLog:
			if box.Intersects(o.Rect()) {
				rep.logHits++
				rep.carry += o.Speed
			}
		}
	}

	rep.drowning = rep.inWater && rep.logHits == 0
	if airborne {
		rep.carry = 0
	}
	rep.atGoal = g.field.AtGoal(p.Y)
	return rep
}

// resolveCollisions applies the zone rules for this tick: log carry, life
// losses (road hits, drowning, leaving the field), then the goal.
func (g *Game) resolveCollisions(airborne bool) {
	rep := g.inspect(airborne)

	g.player.X += rep.carry

	losses := rep.vehicleHits
	if rep.drowning {
		losses++
	}
	if !g.field.InBoundsX(g.player.X, g.player.W) {
		losses++
	}

	for i := 0; i < losses && !g.gameOver; i++ {
		g.loseLife()
	}
	if losses > 0 && !g.gameOver {
		g.player.Respawn()
	}

	if rep.atGoal && !g.gameOver {
		g.score += g.cfg.Gameplay.GoalPoints
		g.emit(core.EventGoalReached)
		g.player.Respawn()
	}
}

// loseLife takes one life. The last life ends the game; the player stays
// where it died.
func (g *Game) loseLife() {
	g.lives--
	g.emit(core.EventLifeLost)

	if g.lives <= 0 {
		g.lives = 0
		g.gameOver = true
		g.emit(core.EventGameOver)
	}
}
