package config

import (
	_ "embed"
)

//go:embed defaults/frogger.yaml
var defaultFroggerYAML []byte

// DefaultFroggerConfig returns the default Frogger configuration.
// It mirrors defaults/frogger.yaml and is used when the embedded YAML cannot be parsed.
func DefaultFroggerConfig() FroggerConfig {
	return FroggerConfig{
		Field: FieldConfig{
			Width:      800,
			Height:     600,
			GoalY:      50,
			WaterStart: 100,
			WaterEnd:   250,
			RoadStart:  300,
			RoadEnd:    500,
		},
		Player: PlayerConfig{
			Width:     40,
			Height:    40,
			HomeX:     380,
			HomeY:     550,
			Step:      50,
			JumpTicks: 12,
		},
		Lanes: LanesConfig{
			Road: LaneGroupConfig{
				Count:      4,
				PerLane:    3,
				LaneHeight: 50,
				Width:      60,
				Height:     30,
				MinSpeed:   2,
				MaxSpeed:   4,
				Spacing:    200,
				Jitter:     40,
				WrapMargin: 100,
			},
			Water: LaneGroupConfig{
				Count:      3,
				PerLane:    2,
				LaneHeight: 50,
				Width:      120,
				Height:     30,
				MinSpeed:   1,
				MaxSpeed:   2.5,
				Spacing:    300,
				Jitter:     60,
				WrapMargin: 150,
			},
		},
		Gameplay: GameplayConfig{
			Lives:      3,
			GoalPoints: 100,
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  0.8,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "frogger":
		return defaultFroggerYAML
	default:
		return nil
	}
}
