package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var fromYAML GameConfig
	if err := yaml.Unmarshal(defaultYAML, &fromYAML); err != nil {
		t.Fatalf("Unmarshal() failed: %v", err)
	}

	if !reflect.DeepEqual(DefaultConfig(), fromYAML) {
		t.Errorf("embedded defaults drifted from DefaultConfig():\n got %+v\nwant %+v", fromYAML, DefaultConfig())
	}
}

func TestDefaultConfigValid(t *testing.T) {
	if err := Validate(DefaultConfig()); err != nil {
		t.Errorf("Validate(DefaultConfig()) = %v", err)
	}
}

func TestParsePartialKeepsDefaults(t *testing.T) {
	cfg, err := Parse([]byte("player:\n  max_hp: 250\nwaves:\n  total: 0\n"))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}

	if cfg.Player.MaxHP != 250 {
		t.Errorf("Player.MaxHP = %v, want 250", cfg.Player.MaxHP)
	}
	if cfg.Waves.Total != 0 {
		t.Errorf("Waves.Total = %d, want 0", cfg.Waves.Total)
	}
	if cfg.Player.Dodge != DefaultConfig().Player.Dodge {
		t.Errorf("Player.Dodge = %+v, want default", cfg.Player.Dodge)
	}
	if !reflect.DeepEqual(cfg.Enemy, DefaultConfig().Enemy) {
		t.Errorf("Enemy = %+v, want default", cfg.Enemy)
	}
}

func TestParseRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"malformed", "player: [1, 2"},
		{"zero hp", "player:\n  max_hp: 0\n"},
		{"speed range", "enemy:\n  min_speed: 2\n  max_speed: 1\n"},
		{"empty clip", "animations:\n  idle: {frames: 0, speed: 0.1}\n"},
		{"unbounded arrow", "arrow:\n  max_distance: 0\n"},
		{"unknown athena stat", "blessings:\n  athena:\n    mods:\n      wisdom: 1\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.yaml)); err == nil {
				t.Error("Parse() succeeded, want error")
			}
		})
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	if err := os.WriteFile(path, []byte("arrow:\n  speed: 12\n"), 0o644); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Arrow.Speed != 12 {
		t.Errorf("Arrow.Speed = %v, want 12", cfg.Arrow.Speed)
	}
}

func TestLoadCustomPathMissing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load() of a missing file succeeded")
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset    DifficultyPreset
		enabled   bool
		level     float64
		playerMax float64
	}{
		{DifficultyEasy, true, 0.0, 150},
		{DifficultyNormal, true, 0.3, 100},
		{DifficultyHard, true, 0.7, 75},
		{DifficultyFixed, false, 0.3, 100},
	}

	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			cfg := DefaultConfig()
			ApplyPreset(&cfg, tt.preset)

			if cfg.Difficulty.Enabled != tt.enabled {
				t.Errorf("Difficulty.Enabled = %v, want %v", cfg.Difficulty.Enabled, tt.enabled)
			}
			if cfg.Difficulty.InitialLevel != tt.level {
				t.Errorf("Difficulty.InitialLevel = %v, want %v", cfg.Difficulty.InitialLevel, tt.level)
			}
			if cfg.Player.MaxHP != tt.playerMax {
				t.Errorf("Player.MaxHP = %v, want %v", cfg.Player.MaxHP, tt.playerMax)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	p, ok := ParsePreset("hard")
	if !ok || p != DifficultyHard {
		t.Errorf("ParsePreset(hard) = %q, %v", p, ok)
	}

	if _, ok := ParsePreset("nightmare"); ok {
		t.Error("ParsePreset(nightmare) accepted an unknown preset")
	}
}
