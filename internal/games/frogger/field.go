package frogger

import (
	"github.com/vovakirdan/tui-frogger/internal/config"
)

// Field is the logical play-field geometry. It is derived once from config
// and never changes with the display size.
type Field struct {
	Width, Height float64
	GoalY         float64
	WaterStart    float64
	WaterEnd      float64
	RoadStart     float64
	RoadEnd       float64
}

// NewField builds the field geometry from configuration.
func NewField(cfg config.FieldConfig) Field {
	return Field{
		Width:      cfg.Width,
		Height:     cfg.Height,
		GoalY:      cfg.GoalY,
		WaterStart: cfg.WaterStart,
		WaterEnd:   cfg.WaterEnd,
		RoadStart:  cfg.RoadStart,
		RoadEnd:    cfg.RoadEnd,
	}
}

// InRoad reports whether a body of height h whose top is at y lies in the road band.
func (f Field) InRoad(y, h float64) bool {
	return y >= f.RoadStart && y <= f.RoadEnd-h
}

// InWater reports whether a body of height h whose top is at y lies in the river band.
func (f Field) InWater(y, h float64) bool {
	return y >= f.WaterStart && y <= f.WaterEnd-h
}

// AtGoal reports whether y is at or above the goal line.
func (f Field) AtGoal(y float64) bool {
	return y <= f.GoalY
}

// InBoundsX reports whether a body of width w at x is horizontally inside the field.
func (f Field) InBoundsX(x, w float64) bool {
	return x >= 0 && x <= f.Width-w
}

// InBoundsY reports whether a body of height h at y is vertically inside the field.
func (f Field) InBoundsY(y, h float64) bool {
	return y >= 0 && y <= f.Height-h
}
