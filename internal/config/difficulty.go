package config

import "math"

// DifficultyManager derives time-based spawn pacing from elapsed run time.
type DifficultyManager struct {
	cfg DifficultyConfig
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{cfg: cfg}
}

// SetEnabled enables or disables difficulty progression.
func (d *DifficultyManager) SetEnabled(enabled bool) {
	d.cfg.Enabled = enabled
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.SpeedupFactor > 0
}

// SpawnInterval returns the minimum gap between obstacle spawns at the given
// elapsed time: max(minInterval, baseInterval - elapsed*speedupFactor).
// It never increases with elapsed time.
func (d *DifficultyManager) SpawnInterval(elapsed float64) float64 {
	if !d.IsEnabled() {
		return d.cfg.BaseInterval
	}
	t := math.Max(elapsed, 0) + d.cfg.HeadStart
	return math.Max(d.cfg.MinInterval, d.cfg.BaseInterval-t*d.cfg.SpeedupFactor)
}

// Level returns how far the spawn interval has shrunk toward its floor,
// from 0.0 (base interval) to 1.0 (min interval).
func (d *DifficultyManager) Level(elapsed float64) float64 {
	span := d.cfg.BaseInterval - d.cfg.MinInterval
	if span <= 0 || !d.IsEnabled() {
		return 0
	}
	return clampF((d.cfg.BaseInterval-d.SpawnInterval(elapsed))/span, 0, 1)
}

// ObstacleSpeed scales the base fall speed by the current level.
// With speed_scaling at 0 the speed stays constant.
func (d *DifficultyManager) ObstacleSpeed(baseSpeed, elapsed float64) float64 {
	return baseSpeed * (1.0 + d.Level(elapsed)*d.cfg.SpeedScaling)
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
