package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configFile = "tiles.yaml"

// Load loads the tiles configuration.
// Search order: customPath -> ~/.tiles/configs/tiles.yaml -> ./configs/tiles.yaml -> embedded default.
// Files only need to set the keys they change; everything else keeps its default.
func Load(customPath string) (TilesConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return TilesConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return TilesConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(configFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", configFile)); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	cfg, err := Parse(defaultTilesYAML)
	if err != nil {
		return DefaultTilesConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML on top of the hardcoded defaults and validates the result.
func Parse(data []byte) (TilesConfig, error) {
	cfg := DefaultTilesConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return TilesConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return TilesConfig{}, err
	}
	return cfg, nil
}

// Marshal encodes the configuration as YAML.
func Marshal(cfg TilesConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return data, nil
}

// Validate reports every out-of-range value in the configuration.
func (c TilesConfig) Validate() error {
	var errs []error

	if c.Playfield.Height <= 0 {
		errs = append(errs, fmt.Errorf("playfield.height must be positive, got %v", c.Playfield.Height))
	}
	if c.Playfield.TileHeight <= 0 || c.Playfield.TileHeight > c.Playfield.Height {
		errs = append(errs, fmt.Errorf("playfield.tile_height must be in (0, height], got %v", c.Playfield.TileHeight))
	}
	if c.Playfield.FadeFrames < 0 {
		errs = append(errs, fmt.Errorf("playfield.fade_frames must not be negative, got %d", c.Playfield.FadeFrames))
	}
	if c.Spawner.IntervalMS <= 0 {
		errs = append(errs, fmt.Errorf("spawner.interval_ms must be positive, got %d", c.Spawner.IntervalMS))
	}
	if c.Spawner.DoubleChance < 0 || c.Spawner.DoubleChance > 1 {
		errs = append(errs, fmt.Errorf("spawner.double_chance must be in [0, 1], got %v", c.Spawner.DoubleChance))
	}
	if c.Difficulty.BaseSpeed <= 0 {
		errs = append(errs, fmt.Errorf("difficulty.base_speed must be positive, got %v", c.Difficulty.BaseSpeed))
	}
	if c.Difficulty.SpeedStep < 0 {
		errs = append(errs, fmt.Errorf("difficulty.speed_step must not be negative, got %v", c.Difficulty.SpeedStep))
	}
	if c.Difficulty.ScorePerStep <= 0 {
		errs = append(errs, fmt.Errorf("difficulty.score_per_step must be positive, got %d", c.Difficulty.ScorePerStep))
	}
	if c.Theme.ScorePerColor <= 0 {
		errs = append(errs, fmt.Errorf("theme.score_per_color must be positive, got %d", c.Theme.ScorePerColor))
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		errs = append(errs, fmt.Errorf("audio.volume must be in [0, 1], got %v", c.Audio.Volume))
	}
	for i, tr := range c.Audio.Playlist {
		if tr.Path == "" && (tr.Tempo <= 0 || tr.Notes == "") {
			errs = append(errs, fmt.Errorf("audio.playlist[%d] %q needs a path or tempo and notes", i, tr.Name))
		}
	}

	return errors.Join(errs...)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".tiles", "configs", filename)
}
