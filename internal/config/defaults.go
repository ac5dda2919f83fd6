package config

import (
	_ "embed"
)

//go:embed defaults/ithaca.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in tuning. It matches defaults/ithaca.yaml
// and is used when no YAML source can be parsed.
func DefaultConfig() GameConfig {
	return GameConfig{
		Player: PlayerConfig{
			Width:            9,
			Height:           18,
			MaxHP:            100,
			MaxShield:        100,
			MaxStagger:       50,
			StaggerSpeed:     2,
			HitCooldown:      30,
			SaveChance:       0.2,
			Speed:            1,
			SprintMultiplier: 2.5,
			SprintDrain:      0.5,
			BusySlowdown:     0.5,
			Stamina: StaminaConfig{
				Max:         100,
				RegenMoving: 0.2,
				RegenIdle:   0.5,
				RegenDelay:  50,
			},
			Dodge: DodgeConfig{
				Cooldown: 60,
				Duration: 15,
				Speed:    5,
				Cost:     10,
			},
			SwitchCooldown: 20,
			AttackCooldown: 15,
			Slash: MeleeConfig{
				Damage:  5,
				Pierce:  10,
				Reach:   10,
				Size:    50,
				Nudge:   2,
				Stamina: 2.5,
			},
			Thrust: MeleeConfig{
				Damage:  10,
				Pierce:  2,
				Reach:   20,
				Size:    25,
				Nudge:   3,
				Stamina: 5,
			},
			Bow: BowConfig{
				ShotCooldown: 40,
				ReadyFrame:   4,
				ReleaseSpeed: 1.5,
				Stamina:      5,
			},
		},
		Enemy: EnemyConfig{
			Width:          18,
			Height:         36,
			ColliderWidth:  9,
			ColliderHeight: 9,
			MaxHP:          15,
			MaxStagger:     20,
			StaggerSpeed:   2,
			MinSpeed:       0.5,
			MaxSpeed:       1.2,
			SlashDistance:  40,
			SlashCooldown:  100,
			SlashDamage:    20,
			SlashFrame:     2,
			WaypointRadius: 6,
			Separation:     0.02,
		},
		Arrow: ArrowConfig{
			Speed:       10,
			Damage:      10,
			Pierce:      1,
			MaxDistance: 600,
			Size:        5,
		},
		Waves: WaveConfig{
			Total:         108,
			MaxAlive:      50,
			Interval:      1200,
			InitialChance: 0.5,
			SpawnChance:   0.5,
		},
		Pickups: PickupConfig{
			DropChance: 0.25,
			MinHeal:    5,
			MaxHeal:    10,
			Lifetime:   1000,
			Size:       24,
		},
		Blessings: BlessingsConfig{
			Athena: AthenaConfig{
				Cooldown:   2000,
				Duration:   900,
				SaveChance: 0.6,
				Mods: map[string]float64{
					"speed":         0.2,
					"arrow_dmg":     1,
					"slash_pierce":  0.5,
					"thrust_pierce": 2,
					"dmg_taken":     -0.2,
				},
			},
			Zeus: ZeusConfig{
				Cooldown:    500,
				StrikeFrame: 11,
				Size:        70,
			},
		},
		Animations: DefaultAnimations(),
		FadeRate:   0.02,
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.3,
			Progression: ProgressionConfig{
				Type:  "kills",
				MaxAt: 108,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier:  0.3,
				DamageMultiplier: 0.5,
				SpawnChanceBonus: 0.2,
				IntervalCut:      0.25,
			},
		},
	}
}

// DefaultAnimations returns the built-in clip table.
func DefaultAnimations() map[string]ClipConfig {
	dir := func(frames int, speed float64, loop bool) ClipConfig {
		return ClipConfig{Frames: frames, Speed: speed, Loop: loop, Directional: true}
	}
	return map[string]ClipConfig{
		"idle":         dir(4, 0.08, true),
		"move":         dir(4, 0.15, true),
		"run":          dir(6, 0.15, true),
		"dodge":        dir(1, 0.15, true),
		"hurt":         dir(1, 0.15, true),
		"dead":         dir(2, 0.05, false),
		"draw":         dir(3, 0.2, false),
		"sheath":       dir(3, 0.2, false),
		"shoot":        dir(8, 0.15, false),
		"pol_idle":     dir(4, 0.08, true),
		"pol_move":     dir(4, 0.15, true),
		"pol_dodge":    dir(1, 0.15, true),
		"pol_hurt":     dir(1, 0.15, true),
		"pol_dead":     dir(2, 0.1, false),
		"pol_draw":     dir(3, 0.2, false),
		"pol_sheath":   dir(3, 0.2, false),
		"pol_slash":    dir(4, 0.15, false),
		"pol_thrust_1": dir(3, 0.1, false),
		"pol_thrust_2": dir(3, 0.1, false),
		"suitor_idle":  dir(4, 0.08, true),
		"suitor_walk":  dir(4, 0.15, true),
		"suitor_hurt":  dir(1, 0.15, true),
		"suitor_dead":  dir(2, 0.05, false),
		"suitor_slash": dir(4, 0.07, false),
		"rescue":       {Frames: 8, Speed: 0.3},
		"lightning":    {Frames: 23, Speed: 0.2},
	}
}
