// Package config provides YAML-based tuning for Wall Jump and the
// time-based difficulty manager.
package config

import (
	"errors"
	"fmt"
)

// WallJumpConfig contains all tunable constants for a run.
// Distances are world units; times are seconds.
type WallJumpConfig struct {
	Player     PlayerConfig     `yaml:"player"`
	Walls      WallsConfig      `yaml:"walls"`
	Jump       JumpConfig       `yaml:"jump"`
	Obstacles  ObstaclesConfig  `yaml:"obstacles"`
	Climb      ClimbConfig      `yaml:"climb"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Display    DisplayConfig    `yaml:"display"`
}

// PlayerConfig defines the player square.
type PlayerConfig struct {
	Size      float64 `yaml:"size"`
	Margin    float64 `yaml:"margin"`     // Gap between wall and resting player
	YFraction float64 `yaml:"y_fraction"` // Pinned vertical position, fraction of viewport height
}

// WallsConfig defines the two vertical walls.
type WallsConfig struct {
	Thickness float64 `yaml:"thickness"`
}

// JumpConfig defines jump pacing. Rates are progress units per second.
type JumpConfig struct {
	BriskRate      float64 `yaml:"brisk_rate"`
	ControlledRate float64 `yaml:"controlled_rate"`
	ReturnBand     float64 `yaml:"return_band"` // Width of the midline zone accepting return jumps
	ArcHeight      float64 `yaml:"arc_height"`  // Visual-only lift at mid-jump
}

// ObstaclesConfig defines falling obstacles.
type ObstaclesConfig struct {
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	Speed      float64 `yaml:"speed"`
	CullMargin float64 `yaml:"cull_margin"`
}

// ClimbConfig defines the climbing variant.
type ClimbConfig struct {
	Speed         float64 `yaml:"speed"`
	StartFraction float64 `yaml:"start_fraction"`
}

// DifficultyConfig defines how the spawn interval shrinks over time.
type DifficultyConfig struct {
	Enabled       bool    `yaml:"enabled"`
	BaseInterval  float64 `yaml:"base_interval"`
	MinInterval   float64 `yaml:"min_interval"`
	SpeedupFactor float64 `yaml:"speedup_factor"` // Seconds of interval removed per elapsed second
	HeadStart     float64 `yaml:"head_start"`     // Elapsed seconds already counted at run start
	SpeedScaling  float64 `yaml:"speed_scaling"`  // Extra obstacle speed fraction at max difficulty
}

// DisplayConfig maps world units to terminal cells.
type DisplayConfig struct {
	CellWidth  float64 `yaml:"cell_width"`
	CellHeight float64 `yaml:"cell_height"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI string into a preset.
// Empty input yields an empty preset (use config as loaded).
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "":
		return "", nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// Validate reports the first constant that would make the simulation
// meaningless.
func (c WallJumpConfig) Validate() error {
	var errs []error
	positive := func(name string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", name, v))
		}
	}

	positive("player.size", c.Player.Size)
	positive("walls.thickness", c.Walls.Thickness)
	positive("jump.brisk_rate", c.Jump.BriskRate)
	positive("jump.controlled_rate", c.Jump.ControlledRate)
	positive("obstacles.width", c.Obstacles.Width)
	positive("obstacles.height", c.Obstacles.Height)
	positive("obstacles.speed", c.Obstacles.Speed)
	positive("difficulty.base_interval", c.Difficulty.BaseInterval)
	positive("difficulty.min_interval", c.Difficulty.MinInterval)
	positive("display.cell_width", c.Display.CellWidth)
	positive("display.cell_height", c.Display.CellHeight)

	if c.Player.YFraction < 0 || c.Player.YFraction > 1 {
		errs = append(errs, fmt.Errorf("player.y_fraction must be within [0, 1], got %v", c.Player.YFraction))
	}
	if c.Difficulty.MinInterval > c.Difficulty.BaseInterval {
		errs = append(errs, fmt.Errorf("difficulty.min_interval (%v) exceeds base_interval (%v)",
			c.Difficulty.MinInterval, c.Difficulty.BaseInterval))
	}
	if c.Difficulty.SpeedupFactor < 0 {
		errs = append(errs, fmt.Errorf("difficulty.speedup_factor must not be negative, got %v", c.Difficulty.SpeedupFactor))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid walljump config: %w", errors.Join(errs...))
	}
	return nil
}
