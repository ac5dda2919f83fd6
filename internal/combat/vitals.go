package combat

import (
	"math"

	"github.com/vovakirdan/ithaca/internal/core"
)

// Roller supplies uniform samples in [0, 1). *rand.Rand satisfies it.
type Roller interface {
	Float64() float64
}

// Result classifies what a hit did.
type Result uint8

const (
	// Ignored means the target was invulnerable or inside its iframe window.
	Ignored Result = iota
	// Saved means the save roll negated the hit.
	Saved
	// Applied means damage was dealt.
	Applied
)

func (r Result) String() string {
	switch r {
	case Ignored:
		return "ignored"
	case Saved:
		return "saved"
	case Applied:
		return "applied"
	default:
		return "unknown"
	}
}

// Strike is one incoming hit.
type Strike struct {
	Damage float64
	Angle  float64 // direction the blow travels, from attacker to target
}

// Lethal returns a strike that kills regardless of hit points and shield.
func Lethal(angle float64) Strike {
	return Strike{Damage: math.Inf(1), Angle: angle}
}

// Outcome reports the effect of Vitals.Hit.
type Outcome struct {
	Result    Result
	Damage    float64 // after the damage-taken multiplier
	Staggered bool    // a new stagger started
	Killed    bool    // hit points crossed to zero on this hit
}

// Vitals tracks hit points, shield, stagger and invulnerability for one actor.
// Times are absolute ticks on the world clock.
type Vitals struct {
	HP, MaxHP         float64
	Shield, MaxShield float64

	MaxStagger   float64 // stagger length for a hit of maxHP/3 or more
	Staggered    bool
	StaggerEnd   float64
	StaggerAngle float64

	HitCooldown  float64 // iframe window after an applied hit
	LastHit      float64
	HurtAngle    float64 // angle of the last applied hit
	Invulnerable bool    // set while dodging

	SaveChance float64 // probability a hit is negated outright
}

// NewVitals returns full-health vitals with no shield, no iframes and no
// save chance.
func NewVitals(maxHP, maxStagger float64) Vitals {
	return Vitals{
		HP:         maxHP,
		MaxHP:      maxHP,
		MaxStagger: maxStagger,
		StaggerEnd: math.Inf(-1),
		LastHit:    math.Inf(-1),
	}
}

// Dead reports whether hit points are exhausted.
func (v *Vitals) Dead() bool {
	return v.HP <= 0
}

// InIframes reports whether now falls inside the post-hit window.
func (v *Vitals) InIframes(now float64) bool {
	return v.LastHit+v.HitCooldown > now
}

// StaggerThreshold is the smallest damage that can stagger.
func (v *Vitals) StaggerThreshold() float64 {
	return v.MaxHP / 20
}

// Hit applies s at time now. takenMul scales incoming damage. rng is only
// consulted when SaveChance is positive.
//
// A hit landing while already staggered does not extend or restart the
// stagger.
func (v *Vitals) Hit(now float64, s Strike, takenMul float64, rng Roller) Outcome {
	if v.Invulnerable || v.InIframes(now) {
		return Outcome{Result: Ignored}
	}
	if v.SaveChance > 0 && rng != nil && rng.Float64() < v.SaveChance {
		return Outcome{Result: Saved}
	}

	dmg := s.Damage * takenMul
	wasAlive := !v.Dead()

	v.LastHit = now
	v.HurtAngle = s.Angle
	if v.Shield > 0 {
		v.Shield -= dmg
		if v.Shield < 0 {
			v.HP += v.Shield
			v.Shield = 0
		}
	} else {
		v.HP -= dmg
	}
	if v.Dead() {
		v.HP = 0
	}

	out := Outcome{Result: Applied, Damage: dmg, Killed: wasAlive && v.Dead()}
	if v.Staggered || dmg < v.StaggerThreshold() {
		return out
	}
	v.Staggered = true
	v.StaggerEnd = now + core.ClampF(dmg/(v.MaxHP/3), 0, 1)*v.MaxStagger
	v.StaggerAngle = s.Angle
	out.Staggered = true
	return out
}

// UpdateStagger clears the stagger once its window has elapsed.
func (v *Vitals) UpdateStagger(now float64) {
	if v.Staggered && now >= v.StaggerEnd {
		v.Staggered = false
	}
}

// CancelStagger ends any stagger immediately.
func (v *Vitals) CancelStagger() {
	v.Staggered = false
	v.StaggerEnd = math.Inf(-1)
}

// Knockback returns the stagger push for this tick: speed*dt along the
// stagger angle, eased out over the remaining stagger time.
func (v *Vitals) Knockback(now, speed, dt float64) core.Vec2 {
	if v.MaxStagger <= 0 {
		return core.Vec2{}
	}
	ease := core.EaseOutCubic((v.StaggerEnd - now) / v.MaxStagger)
	return core.Vec2{}.Project(v.StaggerAngle, speed*dt).Scale(ease)
}

// Heal adds amount to hit points, capped at MaxHP. Dead actors stay dead.
func (v *Vitals) Heal(amount float64) {
	if v.Dead() {
		return
	}
	v.HP = math.Min(v.HP+amount, v.MaxHP)
}
