// Package config provides YAML-based game configuration loading and
// difficulty management for Snake Extreme.
package config

import (
	"errors"
	"fmt"
	"math"
)

// SnakeXConfig contains all configuration for the Snake Extreme game.
type SnakeXConfig struct {
	Level      LevelConfig      `yaml:"level"`
	Snake      SnakeConfig      `yaml:"snake"`
	Timing     TimingConfig     `yaml:"timing"`
	Turn       TurnConfig       `yaml:"turn"`
	Hazards    HazardsConfig    `yaml:"hazards"`
	Input      InputConfig      `yaml:"input"`
	Audio      AudioConfig      `yaml:"audio"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// PointConfig is a level cell in config files.
type PointConfig struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// LevelConfig defines the playfield layout. The HUD rows sit above the
// playable cells; button anchors are absolute map cells.
type LevelConfig struct {
	Width       int         `yaml:"width"`     // playable columns
	Height      int         `yaml:"height"`    // playable rows
	HUDRows     int         `yaml:"hud_rows"`  // rows above the playfield
	TileSize    int         `yaml:"tile_size"` // logical pixels per cell
	Spawn       PointConfig `yaml:"spawn"`
	StartButton PointConfig `yaml:"start_button"`
	PauseButton PointConfig `yaml:"pause_button"`
	ScorePanel  PointConfig `yaml:"score_panel"`
}

// SnakeConfig defines the snake at round start.
type SnakeConfig struct {
	ExtraSegments int    `yaml:"extra_segments"` // segments behind the head
	Direction     string `yaml:"direction"`      // initial travel direction
	MaxLength     int    `yaml:"max_length"`     // growth stops here, 0 = unlimited
}

// TimingConfig defines tick budgets for every animated entity.
type TimingConfig struct {
	TickRate    int     `yaml:"tick_rate"`    // strict ticks per second
	QuickTicks  int     `yaml:"quick_ticks"`  // scale-only transitions
	LongTicks   int     `yaml:"long_ticks"`   // fade + lift transitions
	ShiftTicks  int     `yaml:"shift_ticks"`  // cell-to-cell tween
	PulseTicks  int     `yaml:"pulse_ticks"`  // lightning/shine pulse period
	EffectTicks int     `yaml:"effect_ticks"` // particle cadence
	FlashTicks  int     `yaml:"flash_ticks"`  // score panel flash
	BoardTicks  int     `yaml:"board_ticks"`  // message board slide
	DimTicks    int     `yaml:"dim_ticks"`    // dimmer fade
	VolumeTicks int     `yaml:"volume_ticks"` // music duck tween
	LiftHeight  float64 `yaml:"lift_height"`  // pixels
	FloatPeriod float64 `yaml:"float_period"` // seconds per bob cycle
	FloatHeight float64 `yaml:"float_height"` // pixels
	DimAlpha    float64 `yaml:"dim_alpha"`    // dimmer opacity when paused
}

// TurnConfig defines the wait between turns, in ticks. The difficulty
// level interpolates from InitialWait down to MinWait.
type TurnConfig struct {
	InitialWait int `yaml:"initial_wait"`
	MinWait     int `yaml:"min_wait"`
}

// HazardsConfig defines spawn rules for every hazard family.
type HazardsConfig struct {
	ScorePerLevelUpdate int          `yaml:"score_per_level_update"`
	Obstacles           HazardConfig `yaml:"obstacles"`
	Lightning           HazardConfig `yaml:"lightning"`
	Shine               HazardConfig `yaml:"shine"`
}

// HazardConfig defines one hazard family.
type HazardConfig struct {
	Enabled        bool    `yaml:"enabled"`
	StartThreshold int     `yaml:"start_threshold"`  // first score that spawns a batch
	PerLevelUpdate int     `yaml:"per_level_update"` // batch size
	CapRatio       float64 `yaml:"cap_ratio"`        // population cap as a share of free cells
	Cap            int     `yaml:"cap"`              // absolute population cap
	TurnWait       int     `yaml:"turn_wait"`        // lightning: turns per armed/disarmed phase
}

// Limit returns the population cap for the given number of free cells.
// A zero ratio and a zero cap mean the family never spawns.
func (h HazardConfig) Limit(freeCells int) int {
	limit := -1
	if h.CapRatio > 0 {
		limit = int(math.Floor(float64(freeCells) * h.CapRatio))
	}
	if h.Cap > 0 && (limit < 0 || h.Cap < limit) {
		limit = h.Cap
	}
	return max(limit, 0)
}

// Due reports whether a batch spawns at the given score.
func (h HazardConfig) Due(score int) bool {
	return h.Enabled && h.PerLevelUpdate > 0 && score >= h.StartThreshold
}

// InputConfig defines input buffering.
type InputConfig struct {
	QueueSize int `yaml:"queue_size"` // pending direction presses
}

// AudioConfig defines sound output.
type AudioConfig struct {
	Enabled       bool    `yaml:"enabled"`
	SampleRate    int     `yaml:"sample_rate"`
	Volume        float64 `yaml:"volume"`         // master effect volume 0..1
	MusicVolume   float64 `yaml:"music_volume"`   // music volume while playing 0..1
	DuckVolume    float64 `yaml:"duck_volume"`    // music volume while paused 0..1
	CurveSamples  int     `yaml:"curve_samples"`  // loudness curve resolution
	CurveExponent float64 `yaml:"curve_exponent"` // loudness curve shape, 0 = linear
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
}

// ProgressionConfig defines how difficulty increases over a round.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "turns", or "none"
	MaxAt int    `yaml:"max_at"` // Score/turns at which max difficulty is reached
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.0
	case DifficultyHard:
		return 0.4
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ParsePreset validates a preset name. An empty name selects normal.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", name)
	}
}

// Validate reports every inconsistent value in the configuration.
func (c SnakeXConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	l := c.Level
	check(l.Width > 0 && l.Height > 0, "level: size must be positive, got %dx%d", l.Width, l.Height)
	check(l.HUDRows >= 0, "level: hud_rows must not be negative")
	check(l.TileSize > 0, "level: tile_size must be positive")
	check(l.Spawn.X >= 0 && l.Spawn.X < l.Width && l.Spawn.Y >= l.HUDRows && l.Spawn.Y < l.HUDRows+l.Height,
		"level: spawn (%d,%d) outside the playfield", l.Spawn.X, l.Spawn.Y)

	check(c.Snake.ExtraSegments >= 0, "snake: extra_segments must not be negative")
	check(c.Snake.MaxLength >= 0, "snake: max_length must not be negative")
	switch c.Snake.Direction {
	case "up", "down", "left", "right":
	default:
		errs = append(errs, fmt.Errorf("snake: unknown direction %q", c.Snake.Direction))
	}

	t := c.Timing
	budgets := []struct {
		name string
		v    int
	}{
		{"tick_rate", t.TickRate},
		{"quick_ticks", t.QuickTicks},
		{"long_ticks", t.LongTicks},
		{"shift_ticks", t.ShiftTicks},
		{"pulse_ticks", t.PulseTicks},
		{"effect_ticks", t.EffectTicks},
		{"flash_ticks", t.FlashTicks},
		{"board_ticks", t.BoardTicks},
		{"dim_ticks", t.DimTicks},
		{"volume_ticks", t.VolumeTicks},
	}
	for _, b := range budgets {
		check(b.v >= 1, "timing: %s must be >= 1, got %d", b.name, b.v)
	}

	check(c.Turn.InitialWait >= 1 && c.Turn.MinWait >= 1, "turn: waits must be >= 1")
	check(c.Turn.MinWait <= c.Turn.InitialWait, "turn: min_wait %d exceeds initial_wait %d", c.Turn.MinWait, c.Turn.InitialWait)

	check(c.Hazards.ScorePerLevelUpdate >= 1, "hazards: score_per_level_update must be >= 1")
	check(!c.Hazards.Lightning.Enabled || c.Hazards.Lightning.TurnWait >= 1, "hazards: lightning turn_wait must be >= 1")

	check(c.Input.QueueSize >= 1, "input: queue_size must be >= 1")
	check(c.Audio.CurveSamples >= 2, "audio: curve_samples must be >= 2")

	return errors.Join(errs...)
}
