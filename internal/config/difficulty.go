package config

import "math"

// DifficultyManager calculates dynamic siege parameters from kills or elapsed
// ticks.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// SetInitialLevel overrides the initial difficulty level (0.0 to 1.0).
func (d *DifficultyManager) SetInitialLevel(level float64) {
	d.initialLevel = clampF(level, 0.0, 1.0)
}

// SetEnabled enables or disables difficulty progression.
func (d *DifficultyManager) SetEnabled(enabled bool) {
	d.cfg.Enabled = enabled
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty level (0.0 to 1.0) based on kills/ticks.
func (d *DifficultyManager) Level(kills int, ticks float64) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	var progress float64
	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}

	switch d.cfg.Progression.Type {
	case "kills":
		progress = float64(kills) / maxAt
	case "time":
		progress = ticks / maxAt
	default:
		return d.initialLevel
	}

	progress = clampF(progress, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// EnemySpeed scales a suitor's base speed.
func (d *DifficultyManager) EnemySpeed(base float64, kills int, ticks float64) float64 {
	return base * (1.0 + d.Level(kills, ticks)*d.cfg.Scaling.SpeedMultiplier)
}

// EnemyDamage scales a suitor's slash damage.
func (d *DifficultyManager) EnemyDamage(base float64, kills int, ticks float64) float64 {
	return base * (1.0 + d.Level(kills, ticks)*d.cfg.Scaling.DamageMultiplier)
}

// SpawnChance raises the per-point wave spawn chance, capped at 1.
func (d *DifficultyManager) SpawnChance(base float64, kills int, ticks float64) float64 {
	return clampF(base+d.Level(kills, ticks)*d.cfg.Scaling.SpawnChanceBonus, 0, 1)
}

// WaveInterval shortens the time between waves.
func (d *DifficultyManager) WaveInterval(base float64, kills int, ticks float64) float64 {
	cut := clampF(d.Level(kills, ticks)*d.cfg.Scaling.IntervalCut, 0, 0.9)
	return base * (1 - cut)
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
