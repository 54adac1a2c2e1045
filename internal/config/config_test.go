package config

import (
	"math"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(defaultTilesYAML)
	if err != nil {
		t.Fatalf("embedded defaults should parse: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultTilesConfig()) {
		t.Errorf("embedded YAML and DefaultTilesConfig differ:\n%+v\n%+v", cfg, DefaultTilesConfig())
	}
}

func TestSpeedStepFunction(t *testing.T) {
	d := DifficultyConfig{BaseSpeed: 6, SpeedStep: 0.7, ScorePerStep: 8}

	tests := []struct {
		score    int
		expected float64
	}{
		{0, 6},
		{7, 6},
		{8, 6.7},
		{15, 6.7},
		{16, 7.4},
		{24, 8.1},
	}

	for _, tc := range tests {
		if got := d.Speed(tc.score); math.Abs(got-tc.expected) > 1e-9 {
			t.Errorf("Speed(%d) = %v, expected %v", tc.score, got, tc.expected)
		}
	}
}

func TestSpeedNonDecreasing(t *testing.T) {
	d := DefaultTilesConfig().Difficulty
	prev := d.Speed(0)
	for score := 1; score < 500; score++ {
		s := d.Speed(score)
		if s < prev {
			t.Fatalf("Speed(%d) = %v dropped below %v", score, s, prev)
		}
		prev = s
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset    DifficultyPreset
		base      float64
		step      float64
		unchanged bool
	}{
		{DifficultyEasy, 6, 0.5, false},
		{DifficultyNormal, 10, 0.5, false},
		{DifficultyHard, 10, 0.7, false},
		{DifficultyFixed, 10, 0, false},
		{"", 10, 0.5, true},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultTilesConfig()
			ApplyPreset(&cfg, tc.preset)
			if cfg.Difficulty.BaseSpeed != tc.base || cfg.Difficulty.SpeedStep != tc.step {
				t.Errorf("got base=%v step=%v, expected base=%v step=%v",
					cfg.Difficulty.BaseSpeed, cfg.Difficulty.SpeedStep, tc.base, tc.step)
			}
			if tc.unchanged && !reflect.DeepEqual(cfg, DefaultTilesConfig()) {
				t.Error("empty preset should not modify the config")
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	p, err := ParsePreset(" Hard ")
	if err != nil || p != DifficultyHard {
		t.Errorf("ParsePreset(Hard) = (%q, %v)", p, err)
	}
	if p, err := ParsePreset(""); err != nil || p != "" {
		t.Errorf("ParsePreset(\"\") = (%q, %v), expected empty", p, err)
	}
	if _, err := ParsePreset("insane"); err == nil {
		t.Error("ParsePreset should reject unknown presets")
	}
}

func TestParsePartialOverride(t *testing.T) {
	cfg, err := Parse([]byte("spawner:\n  interval_ms: 500\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Spawner.IntervalMS != 500 {
		t.Errorf("interval_ms = %d, expected 500", cfg.Spawner.IntervalMS)
	}
	if cfg.Spawner.DoubleChance != 0.3 {
		t.Errorf("double_chance should keep its default, got %v", cfg.Spawner.DoubleChance)
	}
	if cfg.Difficulty.BaseSpeed != 10 {
		t.Errorf("base_speed should keep its default, got %v", cfg.Difficulty.BaseSpeed)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	cfg := DefaultTilesConfig()
	cfg.Playfield.Height = 0
	cfg.Spawner.DoubleChance = 1.5
	cfg.Difficulty.ScorePerStep = 0

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate should fail")
	}
	for _, want := range []string{"playfield.height", "double_chance", "score_per_step"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q should mention %s", err, want)
		}
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	if err := os.WriteFile(path, []byte("difficulty:\n  base_speed: 6\n  speed_step: 0.7\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Difficulty.BaseSpeed != 6 || cfg.Difficulty.SpeedStep != 0.7 {
		t.Errorf("custom values not applied: %+v", cfg.Difficulty)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing custom config should be an error")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("spawner: [not a map"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("malformed custom config should be an error")
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	cfg := DefaultTilesConfig()
	ApplyPreset(&cfg, DifficultyHard)

	data, err := Marshal(cfg)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	back, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !reflect.DeepEqual(cfg, back) {
		t.Errorf("round trip changed config:\n%+v\n%+v", cfg, back)
	}
}
