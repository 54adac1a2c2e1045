package config

import (
	_ "embed"
)

//go:embed defaults/tiles.yaml
var defaultTilesYAML []byte

// DefaultTilesConfig returns the hardcoded default configuration.
// It mirrors defaults/tiles.yaml and is used if the embedded file is unusable.
func DefaultTilesConfig() TilesConfig {
	return TilesConfig{
		Playfield: PlayfieldConfig{
			Height:     600,
			TileHeight: 150,
			FadeFrames: 12,
		},
		Spawner: SpawnerConfig{
			IntervalMS:   900,
			DoubleChance: 0.3,
		},
		Difficulty: DifficultyConfig{
			BaseSpeed:    10,
			SpeedStep:    0.5,
			ScorePerStep: 8,
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  0.5,
			Playlist: []TrackConfig{
				{Name: "Neon Drift", Tempo: 280, Notes: "E4 G4 B4 E5 D5 B4 G4 B4 A4 C5 E5 A5 G5 E5 C5 E5"},
				{Name: "Arcade Pulse", Tempo: 320, Notes: "C4 C5 G4 C5 A3 A4 E4 A4 F3 F4 C4 F4 G3 G4 D4 G4"},
				{Name: "Sunset Run", Tempo: 240, Notes: "D4 F#4 A4 - B4 A4 F#4 - G4 B4 D5 - C#5 A4 E4 -"},
			},
		},
		Theme: ThemeConfig{
			ScorePerColor: 50,
			Colors:        []string{"#3a7bd5", "#ff416c", "#f7971e", "#56ab2f", "#3a7bd5"},
		},
	}
}
