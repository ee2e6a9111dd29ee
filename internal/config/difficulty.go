package config

import (
	"math"

	"github.com/vovakirdan/snake-extreme/internal/tween"
)

// DifficultyManager calculates dynamic game parameters based on score/turns.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager. An out-of-range
// initial level is clamped.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	d := &DifficultyManager{cfg: cfg}
	d.SetInitialLevel(cfg.InitialLevel)
	return d
}

// SetInitialLevel overrides the initial difficulty level (0.0 to 1.0).
func (d *DifficultyManager) SetInitialLevel(level float64) {
	d.initialLevel = tween.Clamp01(level)
}

// SetEnabled enables or disables difficulty progression.
func (d *DifficultyManager) SetEnabled(enabled bool) {
	d.cfg.Enabled = enabled
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty level (0.0 to 1.0) based on score/turns.
func (d *DifficultyManager) Level(score int, turns int) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	var progress float64
	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}

	switch d.cfg.Progression.Type {
	case "score":
		progress = float64(score) / maxAt
	case "turns":
		progress = float64(turns) / maxAt
	default:
		return d.initialLevel
	}

	// Interpolate from initial level to 1.0
	return tween.Lerp(d.initialLevel, 1.0, tween.Clamp01(progress))
}

// WaitTicks returns the number of strict ticks between turns: a linear ramp
// from initialWait at level 0 down to minWait at level 1.
func (d *DifficultyManager) WaitTicks(turn TurnConfig, score int, turns int) int {
	level := d.Level(score, turns)
	wait := int(math.Round(tween.Lerp(float64(turn.InitialWait), float64(turn.MinWait), level)))
	return max(wait, turn.MinWait, 1)
}
