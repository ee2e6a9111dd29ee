package config

import (
	_ "embed"
)

//go:embed defaults/snakex.yaml
var defaultSnakeXYAML []byte

// DefaultSnakeXConfig returns the default Snake Extreme configuration.
func DefaultSnakeXConfig() SnakeXConfig {
	return SnakeXConfig{
		Level: LevelConfig{
			Width:       16,
			Height:      12,
			HUDRows:     1,
			TileSize:    16,
			Spawn:       PointConfig{X: 4, Y: 6},
			StartButton: PointConfig{X: 7, Y: 0},
			PauseButton: PointConfig{X: 15, Y: 0},
			ScorePanel:  PointConfig{X: 0, Y: 0},
		},
		Snake: SnakeConfig{
			ExtraSegments: 2,
			Direction:     "right",
			MaxLength:     0,
		},
		Timing: TimingConfig{
			TickRate:    30,
			QuickTicks:  4,
			LongTicks:   8,
			ShiftTicks:  4,
			PulseTicks:  30,
			EffectTicks: 10,
			FlashTicks:  8,
			BoardTicks:  8,
			DimTicks:    8,
			VolumeTicks: 15,
			LiftHeight:  8,
			FloatPeriod: 2,
			FloatHeight: 1,
			DimAlpha:    0.6,
		},
		Turn: TurnConfig{
			InitialWait: 9,
			MinWait:     3,
		},
		Hazards: HazardsConfig{
			ScorePerLevelUpdate: 5,
			Obstacles: HazardConfig{
				Enabled:        true,
				StartThreshold: 5,
				PerLevelUpdate: 4,
				CapRatio:       0.20,
			},
			Lightning: HazardConfig{
				Enabled:        true,
				StartThreshold: 10,
				PerLevelUpdate: 2,
				CapRatio:       0.10,
				TurnWait:       5,
			},
			Shine: HazardConfig{
				Enabled:        true,
				StartThreshold: 15,
				PerLevelUpdate: 1,
				Cap:            2,
			},
		},
		Input: InputConfig{
			QueueSize: 3,
		},
		Audio: AudioConfig{
			Enabled:       true,
			SampleRate:    44100,
			Volume:        0.8,
			MusicVolume:   0.5,
			DuckVolume:    0.15,
			CurveSamples:  64,
			CurveExponent: 0,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 60,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "snakex", "snakex_classic":
		return defaultSnakeXYAML
	default:
		return nil
	}
}
