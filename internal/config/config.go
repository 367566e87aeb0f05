// Package config provides YAML-based game configuration loading for the
// frogger platform.
package config

import (
	"errors"
	"fmt"
)

// FroggerConfig contains all configuration for the Frogger game.
type FroggerConfig struct {
	Field    FieldConfig    `yaml:"field"`
	Player   PlayerConfig   `yaml:"player"`
	Lanes    LanesConfig    `yaml:"lanes"`
	Gameplay GameplayConfig `yaml:"gameplay"`
	Audio    AudioConfig    `yaml:"audio"`
}

// FieldConfig defines the logical play-field geometry.
// All values are in logical units; display scaling never changes them.
type FieldConfig struct {
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	GoalY      float64 `yaml:"goal_y"`      // Player at or above this line has reached the goal
	WaterStart float64 `yaml:"water_start"` // Top of the river band
	WaterEnd   float64 `yaml:"water_end"`   // Bottom of the river band (exclusive)
	RoadStart  float64 `yaml:"road_start"`  // Top of the road band
	RoadEnd    float64 `yaml:"road_end"`    // Bottom of the road band (exclusive)
}

// PlayerConfig defines the player's body and movement.
type PlayerConfig struct {
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	HomeX     float64 `yaml:"home_x"`
	HomeY     float64 `yaml:"home_y"`
	Step      float64 `yaml:"step"`       // Distance of one hop
	JumpTicks int     `yaml:"jump_ticks"` // Logical ticks one hop takes
}

// LanesConfig groups the road and river lane setups.
type LanesConfig struct {
	Road  LaneGroupConfig `yaml:"road"`
	Water LaneGroupConfig `yaml:"water"`
}

// LaneGroupConfig describes one band of identical lanes.
type LaneGroupConfig struct {
	Count      int     `yaml:"count"`       // Number of lanes in the band
	PerLane    int     `yaml:"per_lane"`    // Obstacles per lane
	LaneHeight float64 `yaml:"lane_height"` // Vertical distance between lanes
	Width      float64 `yaml:"width"`       // Obstacle width
	Height     float64 `yaml:"height"`      // Obstacle height
	MinSpeed   float64 `yaml:"min_speed"`   // Inclusive lower speed bound
	MaxSpeed   float64 `yaml:"max_speed"`   // Exclusive upper speed bound
	Spacing    float64 `yaml:"spacing"`     // Stagger between obstacles of a lane
	Jitter     float64 `yaml:"jitter"`      // Random extra stagger per obstacle, [0, jitter)
	WrapMargin float64 `yaml:"wrap_margin"` // Off-screen distance before wrapping
}

// GameplayConfig defines session rules.
type GameplayConfig struct {
	Lives      int `yaml:"lives"`
	GoalPoints int `yaml:"goal_points"`
}

// AudioConfig controls sound cues.
type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"` // Linear gain multiplier, 0..1
}

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid frogger config")

// Validate checks that the configuration describes a playable field.
func (c FroggerConfig) Validate() error {
	f, p := c.Field, c.Player

	switch {
	case f.Width <= 0 || f.Height <= 0:
		return fmt.Errorf("%w: field size must be positive", ErrInvalidConfig)
	case p.Width <= 0 || p.Height <= 0 || p.Width > f.Width || p.Height > f.Height:
		return fmt.Errorf("%w: player size must fit the field", ErrInvalidConfig)
	case p.Step <= 0:
		return fmt.Errorf("%w: player step must be positive", ErrInvalidConfig)
	case p.JumpTicks <= 0:
		return fmt.Errorf("%w: jump_ticks must be positive", ErrInvalidConfig)
	case p.HomeX < 0 || p.HomeX > f.Width-p.Width || p.HomeY < 0 || p.HomeY > f.Height-p.Height:
		return fmt.Errorf("%w: home position (%v, %v) is outside the field", ErrInvalidConfig, p.HomeX, p.HomeY)
	case f.WaterStart >= f.WaterEnd || f.RoadStart >= f.RoadEnd:
		return fmt.Errorf("%w: band start must be above band end", ErrInvalidConfig)
	case c.Gameplay.Lives <= 0:
		return fmt.Errorf("%w: lives must be positive", ErrInvalidConfig)
	case c.Audio.Volume < 0 || c.Audio.Volume > 1:
		return fmt.Errorf("%w: audio volume must be within [0, 1]", ErrInvalidConfig)
	}

	if err := c.Lanes.Road.validate("road", f.RoadStart, f.RoadEnd); err != nil {
		return err
	}
	return c.Lanes.Water.validate("water", f.WaterStart, f.WaterEnd)
}

func (g LaneGroupConfig) validate(name string, start, end float64) error {
	switch {
	case g.Count < 0 || g.PerLane < 0:
		return fmt.Errorf("%w: %s lane counts must not be negative", ErrInvalidConfig, name)
	case g.Count == 0:
		return nil
	case g.Width <= 0 || g.Height <= 0:
		return fmt.Errorf("%w: %s obstacle size must be positive", ErrInvalidConfig, name)
	case g.MinSpeed <= 0 || g.MaxSpeed < g.MinSpeed:
		return fmt.Errorf("%w: %s speed band [%v, %v) is invalid", ErrInvalidConfig, name, g.MinSpeed, g.MaxSpeed)
	case g.WrapMargin < 0 || g.Jitter < 0 || g.Spacing < 0:
		return fmt.Errorf("%w: %s spacing, jitter and wrap margin must not be negative", ErrInvalidConfig, name)
	case start+float64(g.Count-1)*g.LaneHeight+g.Height > end:
		return fmt.Errorf("%w: %s lanes overflow their band", ErrInvalidConfig, name)
	}
	return nil
}
