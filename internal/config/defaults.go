package config

import (
	_ "embed"
)

//go:embed defaults/walljump.yaml
var defaultWallJumpYAML []byte

// DefaultWallJumpConfig returns the hard-coded tuning. It mirrors
// defaults/walljump.yaml and is used when the embedded file cannot be parsed.
func DefaultWallJumpConfig() WallJumpConfig {
	return WallJumpConfig{
		Player: PlayerConfig{
			Size:      30,
			Margin:    10,
			YFraction: 0.75,
		},
		Walls: WallsConfig{
			Thickness: 20,
		},
		Jump: JumpConfig{
			BriskRate:      4.0,
			ControlledRate: 2.5,
			ReturnBand:     60,
			ArcHeight:      40,
		},
		Obstacles: ObstaclesConfig{
			Width:      40,
			Height:     40,
			Speed:      200,
			CullMargin: 100,
		},
		Climb: ClimbConfig{
			Speed:         12,
			StartFraction: 0.9,
		},
		Difficulty: DifficultyConfig{
			Enabled:       true,
			BaseInterval:  1.5,
			MinInterval:   0.3,
			SpeedupFactor: 0.1,
		},
		Display: DisplayConfig{
			CellWidth:  10,
			CellHeight: 20,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultWallJumpYAML
}
