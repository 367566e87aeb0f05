package frogger

import (
	"github.com/vovakirdan/tui-frogger/internal/config"
	"github.com/vovakirdan/tui-frogger/internal/core"
)

// Kind distinguishes road vehicles from river logs.
type Kind int

const (
	KindVehicle Kind = iota
	KindLog
)

// String returns the kind name.
func (k Kind) String() string {
	if k == KindLog {
		return "log"
	}
	return "vehicle"
}

// Obstacle is a vehicle or log scrolling horizontally along its lane.
// The sign of Speed encodes the direction of travel.
type Obstacle struct {
	Kind       Kind
	Lane       int
	X, Y       float64
	W, H       float64
	Speed      float64
	WrapMargin float64 // Off-screen distance before the obstacle wraps
}

// Rect returns the obstacle's collision box.
func (o Obstacle) Rect() core.Rect {
	return core.NewRect(o.X, o.Y, o.W, o.H)
}

// Advance moves the obstacle by its speed and wraps it to the opposite side
// once it has scrolled fully off the field plus its margin.
func (o *Obstacle) Advance(fieldW float64) {
	o.X += o.Speed

	switch {
	case o.Speed > 0 && o.X > fieldW+o.WrapMargin:
		o.X = -o.W - o.WrapMargin
	case o.Speed < 0 && o.X < -o.W-o.WrapMargin:
		o.X = fieldW + o.WrapMargin
	}
}

// AdvanceAll advances every obstacle by one tick.
func AdvanceAll(obstacles []Obstacle, fieldW float64) {
	for i := range obstacles {
		obstacles[i].Advance(fieldW)
	}
}

// RandSource supplies uniform values in [0, 1). *math/rand.Rand satisfies it.
type RandSource interface {
	Float64() float64
}

// Populate builds a fresh obstacle set: road lanes first, then river lanes.
// Even lanes move right and odd lanes move left. For each lane one value is
// drawn for the speed, then one per obstacle for its stagger jitter.
func Populate(cfg config.FroggerConfig, rng RandSource) []Obstacle {
	road, water := cfg.Lanes.Road, cfg.Lanes.Water
	out := make([]Obstacle, 0, road.Count*road.PerLane+water.Count*water.PerLane)

	out = appendLanes(out, KindVehicle, road, cfg.Field.RoadStart, cfg.Field.Width, rng)
	out = appendLanes(out, KindLog, water, cfg.Field.WaterStart, cfg.Field.Width, rng)
	return out
}

func appendLanes(out []Obstacle, kind Kind, lanes config.LaneGroupConfig, top, fieldW float64, rng RandSource) []Obstacle {
	for lane := 0; lane < lanes.Count; lane++ {
		y := top + float64(lane)*lanes.LaneHeight
		dir := 1.0
		if lane%2 == 1 {
			dir = -1.0
		}
		speed := lanes.MinSpeed + rng.Float64()*(lanes.MaxSpeed-lanes.MinSpeed)

		for i := 0; i < lanes.PerLane; i++ {
			offset := float64(i)*lanes.Spacing + rng.Float64()*lanes.Jitter

			// Start off-screen on the side the lane flows in from.
			x := -lanes.WrapMargin - offset
			if dir < 0 {
				x = fieldW + offset
			}

			out = append(out, Obstacle{
				Kind:       kind,
				Lane:       lane,
				X:          x,
				Y:          y,
				W:          lanes.Width,
				H:          lanes.Height,
				Speed:      speed * dir,
				WrapMargin: lanes.WrapMargin,
			})
		}
	}
	return out
}
