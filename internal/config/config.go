// Package config provides YAML-based configuration loading and difficulty
// presets for the tiles game.
package config

import "time"

// TilesConfig contains all tunables for a run.
type TilesConfig struct {
	Playfield  PlayfieldConfig  `yaml:"playfield"`
	Spawner    SpawnerConfig    `yaml:"spawner"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Audio      AudioConfig      `yaml:"audio"`
	Theme      ThemeConfig      `yaml:"theme"`
}

// PlayfieldConfig defines the logical playfield. Units are abstract; the
// renderer scales them to terminal rows.
type PlayfieldConfig struct {
	Height     float64 `yaml:"height"`
	TileHeight float64 `yaml:"tile_height"`
	FadeFrames int     `yaml:"fade_frames"` // Frames a tapped tile lingers before removal, 0 = immediate
}

// SpawnerConfig defines the spawn clock.
type SpawnerConfig struct {
	IntervalMS   int     `yaml:"interval_ms"`
	DoubleChance float64 `yaml:"double_chance"` // Probability of a second tile per tick
}

// Interval returns the spawn period.
func (s SpawnerConfig) Interval() time.Duration {
	return time.Duration(s.IntervalMS) * time.Millisecond
}

// DifficultyConfig defines the speed step function.
type DifficultyConfig struct {
	BaseSpeed    float64 `yaml:"base_speed"`     // Units per frame at score 0
	SpeedStep    float64 `yaml:"speed_step"`     // Added every ScorePerStep points
	ScorePerStep int     `yaml:"score_per_step"` // Points per speed step
}

// AudioConfig defines background music.
type AudioConfig struct {
	Enabled  bool          `yaml:"enabled"`
	Volume   float64       `yaml:"volume"` // 0..1
	Playlist []TrackConfig `yaml:"playlist"`
}

// TrackConfig describes one playlist entry. A track with a Path is decoded
// from a WAV file; otherwise Notes are synthesized at Tempo.
type TrackConfig struct {
	Name  string `yaml:"name"`
	Path  string `yaml:"path,omitempty"`
	Tempo int    `yaml:"tempo,omitempty"` // Beats per minute, one note per beat
	Notes string `yaml:"notes,omitempty"` // Space separated, e.g. "E4 G4 - B4"
}

// ThemeConfig defines the background color cycle.
type ThemeConfig struct {
	ScorePerColor int      `yaml:"score_per_color"`
	Colors        []string `yaml:"colors"`
}
