package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/ithaca/internal/combat"
)

// FileName is the config file looked up in the user and local directories.
const FileName = "ithaca.yaml"

// Load loads the game configuration. Fields missing from a YAML source keep
// their DefaultConfig values.
// Search order: customPath -> ~/.ithaca/configs/ithaca.yaml -> ./configs/ithaca.yaml -> embedded default
func Load(customPath string) (GameConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return GameConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return GameConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(FileName); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", FileName)); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultYAML)
	if err != nil {
		return DefaultConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML over DefaultConfig and validates the result.
func Parse(data []byte) (GameConfig, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return GameConfig{}, err
	}
	if err := Validate(cfg); err != nil {
		return GameConfig{}, err
	}
	return cfg, nil
}

// Validate reports tuning values the simulation cannot run with.
func Validate(cfg GameConfig) error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	p := cfg.Player
	check(p.Width > 0 && p.Height > 0, "player: body must have positive size")
	check(p.MaxHP > 0, "player: max_hp must be positive")
	check(p.Bow.ReadyFrame >= 0, "player: bow ready_frame must not be negative")
	check(p.Slash.Size > 0 && p.Thrust.Size > 0, "player: melee hit boxes must have positive size")

	e := cfg.Enemy
	check(e.Width > 0 && e.Height > 0, "enemy: body must have positive size")
	check(e.ColliderWidth > 0 && e.ColliderHeight > 0, "enemy: collider must have positive size")
	check(e.MaxHP > 0, "enemy: max_hp must be positive")
	check(e.MinSpeed <= e.MaxSpeed, "enemy: min_speed %v exceeds max_speed %v", e.MinSpeed, e.MaxSpeed)

	check(cfg.Arrow.MaxDistance > 0, "arrow: max_distance must be positive")
	check(cfg.Waves.MaxAlive >= 0, "waves: max_alive must not be negative")
	check(cfg.Pickups.MinHeal <= cfg.Pickups.MaxHeal, "pickups: min_heal exceeds max_heal")
	check(cfg.FadeRate > 0, "fade_rate must be positive")

	for name := range cfg.Blessings.Athena.Mods {
		_, ok := combat.ParseStat(name)
		check(ok, "blessings: athena mods: unknown stat %q", name)
	}

	for name, clip := range cfg.Animations {
		check(clip.Frames > 0, "animation %q: frames must be positive", name)
		check(clip.Speed > 0, "animation %q: speed must be positive", name)
	}

	return errors.Join(errs...)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".ithaca", "configs", filename)
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *GameConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Player.MaxHP = 150
		cfg.Enemy.SlashDamage = 15
		cfg.Pickups.DropChance = 0.4
	case DifficultyHard:
		cfg.Player.MaxHP = 75
		cfg.Player.SaveChance = 0.1
		cfg.Enemy.SlashDamage = 25
		cfg.Pickups.DropChance = 0.1
	}
}
