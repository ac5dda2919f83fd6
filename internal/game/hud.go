package game

import "math"

// HUD is the player-facing summary of a tick. Cooldowns are remaining ticks,
// zero when ready.
type HUD struct {
	HP, MaxHP           float64
	Shield, MaxShield   float64
	Stamina, MaxStamina float64
	Stance              string

	Kills   int
	Total   int // 0 when endless
	Alive   int
	Elapsed float64 // seconds at 60 ticks per second

	ShotCooldown   float64
	AttackCooldown float64
	DodgeCooldown  float64
	AthenaCooldown float64
	ZeusCooldown   float64
	BuffRemaining  float64

	Difficulty float64
}

// HUD summarizes the world for display.
func (w *World) HUD() HUD {
	p := w.player
	pc := w.cfg.Player
	bc := w.cfg.Blessings

	h := HUD{
		HP:         p.Vitals.HP,
		MaxHP:      p.Vitals.MaxHP,
		Shield:     p.Vitals.Shield,
		MaxShield:  p.Vitals.MaxShield,
		Stamina:    p.Stamina,
		MaxStamina: pc.Stamina.Max,
		Stance:     p.Stance.String(),

		Kills:   w.kills,
		Total:   w.total,
		Alive:   w.aliveEnemies(),
		Elapsed: w.now / 60,

		ShotCooldown:   remaining(p.lastShot+pc.Bow.ShotCooldown, w.now),
		AttackCooldown: remaining(p.lastAttack+pc.AttackCooldown, w.now),
		DodgeCooldown:  remaining(p.lastDodge+pc.Dodge.Cooldown, w.now),
		AthenaCooldown: remaining(w.blessing.lastAthena+bc.Athena.Cooldown, w.now),
		ZeusCooldown:   remaining(w.blessing.lastZeus+bc.Zeus.Cooldown, w.now),

		Difficulty: w.DifficultyLevel(),
	}
	if w.blessing.active {
		h.BuffRemaining = remaining(w.blessing.athenaEnd, w.now)
	}
	return h
}

func remaining(readyAt, now float64) float64 {
	return math.Max(readyAt-now, 0)
}
