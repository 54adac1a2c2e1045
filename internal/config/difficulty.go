package config

import (
	"fmt"
	"strings"
)

// Step returns how many speed steps have been earned at the given score.
func (d DifficultyConfig) Step(score int) int {
	if d.ScorePerStep <= 0 || score <= 0 {
		return 0
	}
	return score / d.ScorePerStep
}

// Speed returns the fall speed for a score:
// base + floor(score / scorePerStep) * step.
func (d DifficultyConfig) Speed(score int) float64 {
	return d.BaseSpeed + float64(d.Step(score))*d.SpeedStep
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Presets returns all presets in menu order.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}
}

// ParsePreset converts a flag value to a preset. Empty input yields "".
func ParsePreset(s string) (DifficultyPreset, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return "", nil
	}
	for _, p := range Presets() {
		if string(p) == s {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", s)
}

// Describe returns a short menu description of the preset.
func (p DifficultyPreset) Describe() string {
	switch p {
	case DifficultyEasy:
		return "slow start, gentle ramp"
	case DifficultyNormal:
		return "the classic pace"
	case DifficultyHard:
		return "classic start, steep ramp"
	case DifficultyFixed:
		return "no speed-up"
	default:
		return ""
	}
}

// ApplyPreset modifies the difficulty section for a preset.
// An empty preset leaves the config untouched.
func ApplyPreset(cfg *TilesConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Difficulty.BaseSpeed = 6
		cfg.Difficulty.SpeedStep = 0.5
	case DifficultyNormal:
		cfg.Difficulty.BaseSpeed = 10
		cfg.Difficulty.SpeedStep = 0.5
	case DifficultyHard:
		cfg.Difficulty.BaseSpeed = 10
		cfg.Difficulty.SpeedStep = 0.7
	case DifficultyFixed:
		cfg.Difficulty.SpeedStep = 0
	}
}
