package game

import (
	"math"

	"github.com/vovakirdan/ithaca/internal/combat"
	"github.com/vovakirdan/ithaca/internal/config"
	"github.com/vovakirdan/ithaca/internal/core"
)

// diagonalScale keeps diagonal walking as fast as axial walking.
const diagonalScale = 0.7071

// Player is Odysseus: directly controlled, two stances, a stamina pool and
// a dodge.
type Player struct {
	animState

	ID      ActorID
	Rect    core.Rect
	Vitals  combat.Vitals
	Stats   combat.Stats
	Stance  Stance
	Stamina float64

	cfg       config.PlayerConfig
	action    pendingAction
	vel       core.Vec2
	lastVel   core.Vec2
	dying     bool
	fullyDead bool

	lastAttack     float64
	lastShot       float64
	lastSwitch     float64
	lastDodge      float64
	lastStaminaUse float64
	dodgeAngle     float64
	dodgeDir       core.Direction
	baseSave       float64
}

func newPlayer(id ActorID, pos core.Vec2, cfg config.PlayerConfig, arrow config.ArrowConfig) *Player {
	never := math.Inf(-1)
	p := &Player{
		ID:             id,
		Rect:           core.RectFromCenter(pos, cfg.Width, cfg.Height),
		Vitals:         combat.NewVitals(cfg.MaxHP, cfg.MaxStagger),
		Stamina:        cfg.Stamina.Max,
		cfg:            cfg,
		lastAttack:     never,
		lastShot:       never,
		lastSwitch:     never,
		lastDodge:      never,
		lastStaminaUse: never,
		baseSave:       cfg.SaveChance,
	}
	p.Vitals.MaxShield = cfg.MaxShield
	p.Vitals.HitCooldown = cfg.HitCooldown
	p.Vitals.SaveChance = cfg.SaveChance

	p.Stats.Set(combat.Speed, cfg.Speed)
	p.Stats.Set(combat.ArrowDamage, arrow.Damage)
	p.Stats.Set(combat.ArrowPierce, arrow.Pierce)
	p.Stats.Set(combat.SlashDamage, cfg.Slash.Damage)
	p.Stats.Set(combat.SlashPierce, cfg.Slash.Pierce)
	p.Stats.Set(combat.ThrustDamage, cfg.Thrust.Damage)
	p.Stats.Set(combat.ThrustPierce, cfg.Thrust.Pierce)
	p.Stats.Set(combat.DamageTaken, 1)
	return p
}

// Center returns the center of the player's body.
func (p *Player) Center() core.Vec2 { return p.Rect.Center() }

// FullyDead reports whether the death clip has finished.
func (p *Player) FullyDead() bool { return p.fullyDead }

// Dodging reports whether a dash is in progress.
func (p *Player) Dodging(now float64) bool {
	return p.lastDodge+p.cfg.Dodge.Duration > now
}

// Attacking reports whether a melee swing is in progress.
func (p *Player) Attacking() bool { return p.action.kind == actAttack }

// Switching reports whether a stance change is in progress.
func (p *Player) Switching() bool { return p.action.kind == actSwitch }

// Drawing reports whether the bow is being drawn or held.
func (p *Player) Drawing() bool { return p.action.kind == actDraw }

// Releasing reports whether the release frames are playing.
func (p *Player) Releasing() bool { return p.action.kind == actRelease }

// ShotReady reports whether the drawn bow sits on its ready frame.
func (p *Player) ShotReady() bool {
	return p.action.kind == actDraw && p.anim.Frame() == p.cfg.Bow.ReadyFrame
}

// free reports whether nothing blocks a blessing.
func (p *Player) free(now float64) bool {
	return !p.Vitals.Staggered && !p.Dodging(now) && p.action.kind == actNone
}

// advanceClip steps the current clip and resolves the pending action when
// the clip reaches a frame or completes.
func (p *Player) advanceClip(w *World, dt float64) {
	p.anim.step(dt)

	switch p.action.kind {
	case actAttack:
		if p.anim.Done() {
			p.action = pendingAction{}
			p.lastAttack = w.now
		}
	case actDraw:
		if !p.anim.Held() && p.anim.Frame() >= p.cfg.Bow.ReadyFrame {
			p.anim.pos = float64(p.cfg.Bow.ReadyFrame)
			p.anim.Hold()
		}
	case actRelease:
		if p.anim.Done() {
			p.action = pendingAction{}
		}
	case actSwitch:
		if !p.anim.Done() {
			break
		}
		if !p.action.drawing {
			p.action.drawing = true
			p.play(w, p.ID, dirClip(p.Stance.clip("draw"), p.action.dir), true)
			break
		}
		p.action = pendingAction{}
		p.lastSwitch = w.now
	}
}

func (p *Player) update(w *World, in *core.InputFrame, dt float64) {
	now := w.now
	p.advanceClip(w, dt)

	// Raw input direction.
	p.vel = core.Vec2{}
	if in.Down(core.ActionUp) {
		p.vel.Y--
	}
	if in.Down(core.ActionDown) {
		p.vel.Y++
	}
	if in.Down(core.ActionLeft) {
		p.vel.X--
	}
	if in.Down(core.ActionRight) {
		p.vel.X++
	}
	dir := p.vel.Direction(p.lastVel.Direction(core.Down))
	p.vel = p.vel.Scale(dt * p.Stats.Get(combat.Speed))

	if p.Vitals.Dead() {
		p.updateDead(w)
		return
	}

	// Stagger.
	p.Vitals.UpdateStagger(now)
	staggered := p.Vitals.Staggered
	if staggered {
		if p.action.kind == actSwitch {
			p.lastSwitch = now
		}
		p.action = pendingAction{}
		p.play(w, p.ID, dirClip(p.Stance.clip("hurt"), core.AngleDirection(p.Vitals.StaggerAngle+math.Pi)), false)
		p.vel = p.Vitals.Knockback(now, p.cfg.StaggerSpeed, dt)
	}

	pointer := in.Pointer()
	aim := p.Center().AngleTo(pointer)
	aimDir := core.AngleDirection(aim)
	dodging := p.Dodging(now)

	// Melee.
	if p.Stance == StancePolearm && !staggered && p.action.kind == actNone && !dodging &&
		p.lastAttack+p.cfg.AttackCooldown < now &&
		(in.Pressed(core.ActionPrimary) || in.Pressed(core.ActionSecondary)) {
		p.startMelee(w, in.Pressed(core.ActionPrimary), aim, aimDir)
	}
	if p.action.kind == actAttack {
		p.swing(w, dt)
	}

	// Bow.
	shooting := !staggered && p.Stance == StanceBow && in.Down(core.ActionPrimary) &&
		(p.action.kind == actNone || p.action.kind == actDraw) &&
		p.lastShot+p.cfg.Bow.ShotCooldown < now && !dodging
	switch {
	case shooting:
		p.drawBow(w, aimDir)
	case p.ShotReady():
		p.loose(w, aim, aimDir)
	case p.action.kind == actDraw:
		p.action = pendingAction{}
	}

	// Dodge.
	if in.Down(core.ActionDodge) && p.Stamina > p.cfg.Dodge.Cost && p.lastDodge+p.cfg.Dodge.Cooldown < now &&
		p.action.kind != actRelease && p.action.kind != actSwitch && !staggered {
		p.Stamina -= p.cfg.Dodge.Cost
		p.lastStaminaUse = now
		p.lastDodge = now
		if p.vel.IsZero() {
			p.dodgeAngle = dir.Angle()
		} else {
			p.dodgeAngle = p.vel.Angle()
		}
		p.dodgeDir = dir
		if p.action.kind == actAttack || p.action.kind == actDraw {
			p.action = pendingAction{}
		}
		w.emit(Event{Kind: EventDodge, Actor: p.ID, Pos: p.Center()})
	}
	dodging = p.Dodging(now)
	p.Vitals.Invulnerable = false
	if dodging && !staggered {
		p.Vitals.Invulnerable = true
		p.vel = core.Polar(p.dodgeAngle).Scale(p.cfg.Dodge.Speed * dt)
		if p.action.kind != actSwitch {
			p.play(w, p.ID, dirClip(p.Stance.clip("dodge"), p.dodgeDir), false)
		}
	}

	// Locomotion.
	if !dodging && !shooting && !staggered && p.action.kind != actAttack {
		p.walk(w, in, dir, dt)
	}
	if shooting || p.action.kind == actAttack {
		p.vel = p.vel.Scale(p.cfg.BusySlowdown)
	}
	if !p.vel.IsZero() {
		p.lastVel = p.vel
	}
	if !dodging && p.vel.X != 0 && p.vel.Y != 0 {
		p.vel = p.vel.Scale(diagonalScale)
	}

	// Stamina regen.
	if !dodging && p.lastStaminaUse+p.cfg.Stamina.RegenDelay < now {
		regen := p.cfg.Stamina.RegenMoving
		if p.vel.IsZero() {
			regen = p.cfg.Stamina.RegenIdle
		}
		p.Stamina = math.Min(p.Stamina+regen*dt, p.cfg.Stamina.Max)
	}

	// Stance switch.
	if in.Pressed(core.ActionSwitch) && p.action.kind != actSwitch && p.lastSwitch+p.cfg.SwitchCooldown < now && !staggered {
		p.action = pendingAction{kind: actSwitch, dir: dir}
		p.play(w, p.ID, dirClip(p.Stance.clip("sheath"), dir), true)
		p.Stance = p.Stance.other()
		w.emit(Event{Kind: EventStanceSwitch, Actor: p.ID, Pos: p.Center()})
	}

	// Blessings.
	if p.free(now) {
		if in.Pressed(core.ActionBlessing) {
			w.invokeAthena()
		}
		if in.Pressed(core.ActionSmite) {
			w.invokeZeus(pointer)
		}
	}

	resolveWalls(&p.Rect, &p.vel, w.walls)
	p.Rect.Translate(p.vel)
	p.Rect.ClampInto(w.bounds)
}

func (p *Player) updateDead(w *World) {
	p.Vitals.Invulnerable = false
	if p.fullyDead {
		return
	}
	if !p.dying {
		p.dying = true
		p.action = pendingAction{}
		p.play(w, p.ID, dirClip(p.Stance.clip("dead"), core.AngleDirection(p.Vitals.HurtAngle+math.Pi)), true)
		return
	}
	if p.anim.Done() {
		p.fullyDead = true
		w.emit(Event{Kind: EventPlayerDown, Actor: p.ID, Pos: p.Center()})
	}
}

func (p *Player) startMelee(w *World, slash bool, aim float64, aimDir core.Direction) {
	kind, clip, cost := meleeSlash, "pol_slash", p.cfg.Slash.Stamina
	if !slash {
		kind, clip, cost = meleeThrust, "pol_thrust_1", p.cfg.Thrust.Stamina
		if w.rng.Float64() > 0.5 {
			clip = "pol_thrust_2"
		}
	}

	p.Stamina = math.Max(p.Stamina-cost, 0)
	p.lastStaminaUse = w.now
	p.action = pendingAction{
		kind:  actAttack,
		melee: kind,
		angle: aim,
		hit:   make(map[ActorID]struct{}),
	}
	p.play(w, p.ID, dirClip(clip, aimDir), true)
}

// swing nudges the player forward and damages enemies inside the hit box,
// at most pierce distinct enemies per swing.
func (p *Player) swing(w *World, dt float64) {
	a := &p.action
	mc := p.cfg.Slash
	dmg, pierce := p.Stats.Get(combat.SlashDamage), p.Stats.Get(combat.SlashPierce)
	if a.melee == meleeThrust {
		mc = p.cfg.Thrust
		dmg, pierce = p.Stats.Get(combat.ThrustDamage), p.Stats.Get(combat.ThrustPierce)
	}

	p.vel = p.vel.Project(a.angle, mc.Nudge*dt)

	box := core.RectFromCenter(p.Center().Project(a.angle, mc.Reach), mc.Size, mc.Size)
	for _, e := range w.enemies {
		if e.Vitals.Dead() {
			continue
		}
		if _, seen := a.hit[e.ID]; seen || float64(len(a.hit)) >= pierce || !box.Intersects(e.Rect) {
			continue
		}
		a.hit[e.ID] = struct{}{}
		w.hitEnemy(e, combat.Strike{Damage: dmg, Angle: a.angle})
	}
}

// drawBow starts or continues the draw, facing the pointer.
func (p *Player) drawBow(w *World, aimDir core.Direction) {
	clip := dirClip("shoot", aimDir)
	if p.action.kind != actDraw {
		p.action = pendingAction{kind: actDraw}
		p.play(w, p.ID, clip, true)
		return
	}
	if p.anim.Name != clip {
		// Turning keeps the draw progress.
		frame, held := p.anim.Frame(), p.anim.Held()
		p.playFrom(w, p.ID, clip, frame, 1)
		if held {
			p.anim.Hold()
		}
	}
}

// loose fires an arrow from a ready bow.
func (p *Player) loose(w *World, aim float64, aimDir core.Direction) {
	w.spawnArrow(ProjectileSpec{
		Origin:      p.Center(),
		Angle:       aim,
		Speed:       w.cfg.Arrow.Speed,
		Damage:      p.Stats.Get(combat.ArrowDamage),
		Pierce:      p.Stats.Get(combat.ArrowPierce),
		MaxDistance: w.cfg.Arrow.MaxDistance,
		Size:        w.cfg.Arrow.Size,
	})
	p.lastShot = w.now
	p.Stamina = math.Max(p.Stamina-p.cfg.Bow.Stamina, 0)
	p.lastStaminaUse = w.now

	p.action = pendingAction{kind: actRelease}
	p.playFrom(w, p.ID, dirClip("shoot", aimDir), p.cfg.Bow.ReadyFrame, p.cfg.Bow.ReleaseSpeed)
}

// walk picks the locomotion clip and applies sprint.
func (p *Player) walk(w *World, in *core.InputFrame, dir core.Direction, dt float64) {
	animate := p.action.kind != actRelease && p.action.kind != actSwitch

	if p.vel.IsZero() {
		if animate {
			p.play(w, p.ID, dirClip(p.Stance.clip("idle"), dir), false)
		}
		return
	}

	cost := p.cfg.SprintDrain * dt
	if in.Down(core.ActionSprint) && p.Stamina > cost && p.action.kind != actSwitch {
		if p.action.kind != actRelease {
			p.play(w, p.ID, dirClip("run", dir), false)
		}
		p.vel = p.vel.Scale(p.cfg.SprintMultiplier)
		p.Stamina -= cost
		p.lastStaminaUse = w.now
		return
	}
	if animate {
		p.play(w, p.ID, dirClip(p.Stance.clip("move"), dir), false)
	}
}
