// Package config provides YAML-based tuning for the siege simulation and
// difficulty management.
package config

// GameConfig contains every tunable of a run. Times are in ticks, distances
// in world units, speeds in world units per tick.
type GameConfig struct {
	Player     PlayerConfig          `yaml:"player"`
	Enemy      EnemyConfig           `yaml:"enemy"`
	Arrow      ArrowConfig           `yaml:"arrow"`
	Waves      WaveConfig            `yaml:"waves"`
	Pickups    PickupConfig          `yaml:"pickups"`
	Blessings  BlessingsConfig       `yaml:"blessings"`
	Animations map[string]ClipConfig `yaml:"animations"`
	FadeRate   float64               `yaml:"fade_rate"` // alpha lost per tick by expired actors
	Difficulty DifficultyConfig      `yaml:"difficulty"`
}

// PlayerConfig defines the player's body, vitals and abilities.
type PlayerConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	MaxHP        float64 `yaml:"max_hp"`
	MaxShield    float64 `yaml:"max_shield"`
	MaxStagger   float64 `yaml:"max_stagger"`
	StaggerSpeed float64 `yaml:"stagger_speed"`
	HitCooldown  float64 `yaml:"hit_cooldown"`
	SaveChance   float64 `yaml:"save_chance"`

	Speed            float64 `yaml:"speed"`
	SprintMultiplier float64 `yaml:"sprint_multiplier"`
	SprintDrain      float64 `yaml:"sprint_drain"`
	BusySlowdown     float64 `yaml:"busy_slowdown"` // speed factor while drawing or attacking

	Stamina        StaminaConfig `yaml:"stamina"`
	Dodge          DodgeConfig   `yaml:"dodge"`
	SwitchCooldown float64       `yaml:"switch_cooldown"`
	AttackCooldown float64       `yaml:"attack_cooldown"`
	Slash          MeleeConfig   `yaml:"slash"`
	Thrust         MeleeConfig   `yaml:"thrust"`
	Bow            BowConfig     `yaml:"bow"`
}

// StaminaConfig defines the stamina pool.
type StaminaConfig struct {
	Max         float64 `yaml:"max"`
	RegenMoving float64 `yaml:"regen_moving"`
	RegenIdle   float64 `yaml:"regen_idle"`
	RegenDelay  float64 `yaml:"regen_delay"` // ticks after last use before regen starts
}

// DodgeConfig defines the invulnerable dash.
type DodgeConfig struct {
	Cooldown float64 `yaml:"cooldown"`
	Duration float64 `yaml:"duration"`
	Speed    float64 `yaml:"speed"`
	Cost     float64 `yaml:"cost"`
}

// MeleeConfig defines one polearm attack.
type MeleeConfig struct {
	Damage  float64 `yaml:"damage"`
	Pierce  float64 `yaml:"pierce"`
	Reach   float64 `yaml:"reach"` // hit box center offset ahead of the attacker
	Size    float64 `yaml:"size"`  // hit box side
	Nudge   float64 `yaml:"nudge"` // forward speed while swinging
	Stamina float64 `yaml:"stamina"`
}

// BowConfig defines the draw/hold/release cycle.
type BowConfig struct {
	ShotCooldown float64 `yaml:"shot_cooldown"`
	ReadyFrame   int     `yaml:"ready_frame"`
	ReleaseSpeed float64 `yaml:"release_speed"` // release clip speed relative to the draw
	Stamina      float64 `yaml:"stamina"`
}

// EnemyConfig defines the suitors.
type EnemyConfig struct {
	Width          float64 `yaml:"width"`
	Height         float64 `yaml:"height"`
	ColliderWidth  float64 `yaml:"collider_width"`
	ColliderHeight float64 `yaml:"collider_height"`
	MaxHP          float64 `yaml:"max_hp"`
	MaxStagger     float64 `yaml:"max_stagger"`
	StaggerSpeed   float64 `yaml:"stagger_speed"`
	MinSpeed       float64 `yaml:"min_speed"`
	MaxSpeed       float64 `yaml:"max_speed"`
	SlashDistance  float64 `yaml:"slash_distance"`
	SlashCooldown  float64 `yaml:"slash_cooldown"`
	SlashDamage    float64 `yaml:"slash_damage"`
	SlashFrame     int     `yaml:"slash_frame"`
	WaypointRadius float64 `yaml:"waypoint_radius"`
	Separation     float64 `yaml:"separation"` // push speed away from overlapping peers
}

// ArrowConfig defines player arrows.
type ArrowConfig struct {
	Speed       float64 `yaml:"speed"`
	Damage      float64 `yaml:"damage"`
	Pierce      float64 `yaml:"pierce"`
	MaxDistance float64 `yaml:"max_distance"`
	Size        float64 `yaml:"size"`
}

// WaveConfig defines enemy spawning and the win condition.
type WaveConfig struct {
	Total         int     `yaml:"total"` // kills needed to win; 0 means endless
	MaxAlive      int     `yaml:"max_alive"`
	Interval      float64 `yaml:"interval"`
	InitialChance float64 `yaml:"initial_chance"`
	SpawnChance   float64 `yaml:"spawn_chance"`
}

// PickupConfig defines food drops.
type PickupConfig struct {
	DropChance float64 `yaml:"drop_chance"`
	MinHeal    int     `yaml:"min_heal"`
	MaxHeal    int     `yaml:"max_heal"`
	Lifetime   float64 `yaml:"lifetime"`
	Size       float64 `yaml:"size"`
}

// BlessingsConfig defines the two god powers.
type BlessingsConfig struct {
	Athena AthenaConfig `yaml:"athena"`
	Zeus   ZeusConfig   `yaml:"zeus"`
}

// AthenaConfig defines the timed buff. Mods maps stat names to additive
// modifiers applied on activation and removed on expiry.
type AthenaConfig struct {
	Cooldown   float64            `yaml:"cooldown"`
	Duration   float64            `yaml:"duration"`
	SaveChance float64            `yaml:"save_chance"`
	Mods       map[string]float64 `yaml:"mods"`
}

// ZeusConfig defines the lightning strike.
type ZeusConfig struct {
	Cooldown    float64 `yaml:"cooldown"`
	StrikeFrame int     `yaml:"strike_frame"`
	Size        float64 `yaml:"size"`
}

// ClipConfig describes one animation clip. Directional clips are expanded
// per facing by the game.
type ClipConfig struct {
	Frames      int     `yaml:"frames"`
	Speed       float64 `yaml:"speed"` // frames advanced per tick
	Loop        bool    `yaml:"loop"`
	Directional bool    `yaml:"directional"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over a run.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "kills", "time", or "none"
	MaxAt int    `yaml:"max_at"` // kills/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes at level 1.0.
type ScalingConfig struct {
	SpeedMultiplier  float64 `yaml:"speed_multiplier"`  // added to enemy speed factor
	DamageMultiplier float64 `yaml:"damage_multiplier"` // added to enemy damage factor
	SpawnChanceBonus float64 `yaml:"spawn_chance_bonus"`
	IntervalCut      float64 `yaml:"interval_cut"` // fraction shaved off the wave interval
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a flag value to a preset. Unknown names return false.
func ParsePreset(s string) (DifficultyPreset, bool) {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, true
	default:
		return "", false
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
