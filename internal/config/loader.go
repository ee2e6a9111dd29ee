package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadSnakeX loads Snake Extreme configuration.
// Search order: customPath -> ~/.snakex/configs/snakex.yaml -> ./configs/snakex.yaml -> embedded default
// Files are decoded over the defaults, so a partial file only overrides
// the keys it names.
func LoadSnakeX(customPath string) (SnakeXConfig, error) {
	cfg := DefaultSnakeXConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("snakex.yaml"); userCfgPath != "" {
		if loaded, ok := tryLoad(userCfgPath); ok {
			return loaded, nil
		}
	}

	// Try local configs directory
	if loaded, ok := tryLoad(filepath.Join("configs", "snakex.yaml")); ok {
		return loaded, nil
	}

	// Use embedded default YAML
	embedded := DefaultSnakeXConfig()
	if err := yaml.Unmarshal(defaultSnakeXYAML, &embedded); err != nil || embedded.Validate() != nil {
		return DefaultSnakeXConfig(), nil // Fallback to hardcoded if embed fails
	}
	return embedded, nil
}

// tryLoad reads an optional config file. Missing or broken files are skipped.
func tryLoad(path string) (SnakeXConfig, bool) {
	cfg := DefaultSnakeXConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, false
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, false
	}
	if cfg.Validate() != nil {
		return cfg, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".snakex", "configs", filename)
}

// ApplySnakeXPreset modifies the config based on a difficulty preset.
func ApplySnakeXPreset(cfg *SnakeXConfig, preset DifficultyPreset) {
	if IsFixedPreset(preset) {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust turn pacing and hazard pressure
	switch preset {
	case DifficultyEasy:
		cfg.Turn.InitialWait = 11
		cfg.Turn.MinWait = 4
		cfg.Hazards.Obstacles.StartThreshold = 10
		cfg.Hazards.Lightning.StartThreshold = 20
		cfg.Hazards.Shine.StartThreshold = 10
	case DifficultyHard:
		cfg.Turn.InitialWait = 7
		cfg.Turn.MinWait = 2
		cfg.Hazards.Obstacles.PerLevelUpdate = 6
		cfg.Hazards.Lightning.StartThreshold = 5
		cfg.Hazards.Shine.StartThreshold = 20
	}
}

// DisableHazards turns the config into classic snake: no obstacles,
// lightning or shine food.
func DisableHazards(cfg *SnakeXConfig) {
	cfg.Hazards.Obstacles.Enabled = false
	cfg.Hazards.Lightning.Enabled = false
	cfg.Hazards.Shine.Enabled = false
}

// MarshalSnakeX renders a config as YAML.
func MarshalSnakeX(cfg SnakeXConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return data, nil
}
