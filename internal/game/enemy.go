package game

import (
	"math"

	"github.com/vovakirdan/ithaca/internal/combat"
	"github.com/vovakirdan/ithaca/internal/config"
	"github.com/vovakirdan/ithaca/internal/core"
)

// Enemy is a suitor. It keeps two bodies: Rect is the larger hit body that
// weapons test against, Collider is the smaller foot box that walls stop.
// Both share a bottom edge and a horizontal center.
type Enemy struct {
	animState

	ID       ActorID
	Rect     core.Rect
	Collider core.Rect
	Vitals   combat.Vitals
	Speed    float64
	Alpha    float64

	cfg         config.EnemyConfig
	vel         core.Vec2
	facing      core.Direction
	slashing    bool
	slashAngle  float64
	slashLanded bool
	lastSlash   float64
	dying       bool
}

func newEnemy(id ActorID, pos core.Vec2, speed float64, cfg config.EnemyConfig) *Enemy {
	e := &Enemy{
		ID:        id,
		Collider:  core.RectFromCenter(pos, cfg.ColliderWidth, cfg.ColliderHeight),
		Vitals:    combat.NewVitals(cfg.MaxHP, cfg.MaxStagger),
		Speed:     speed,
		Alpha:     1,
		cfg:       cfg,
		lastSlash: math.Inf(-1),
	}
	e.Rect = core.NewRect(0, 0, cfg.Width, cfg.Height)
	e.syncRect()
	return e
}

func (e *Enemy) syncRect() {
	c := e.Collider.Center()
	e.Rect.SetCenter(core.V(c.X, e.Collider.Bottom()-e.Rect.H/2))
}

// Center returns the center of the hit body.
func (e *Enemy) Center() core.Vec2 { return e.Rect.Center() }

// Slashing reports whether a slash is in progress.
func (e *Enemy) Slashing() bool { return e.slashing }

// Expired reports whether the enemy is dead and fully faded.
func (e *Enemy) Expired() bool {
	return e.Vitals.Dead() && e.Alpha <= 0
}

func (e *Enemy) cancelSlash() {
	e.slashing = false
	e.slashLanded = false
}

func (e *Enemy) update(w *World, dt float64) {
	if e.Vitals.Dead() {
		if !e.dying {
			e.dying = true
			e.cancelSlash()
			e.play(w, e.ID, dirClip("suitor_dead", core.AngleDirection(e.Vitals.HurtAngle+math.Pi)), true)
		}
		e.anim.step(dt)
		if e.anim.Done() {
			e.Alpha = math.Max(e.Alpha-w.cfg.FadeRate*dt, 0)
		}
		return
	}

	e.advanceSlash(w, dt)

	pl := w.player
	target := pl.Center()
	e.vel = core.Vec2{}

	e.Vitals.UpdateStagger(w.now)
	switch {
	case e.Vitals.Staggered:
		e.cancelSlash()
		e.facing = core.AngleDirection(e.Vitals.StaggerAngle + math.Pi)
		e.play(w, e.ID, dirClip("suitor_hurt", e.facing), false)
		e.vel = e.Vitals.Knockback(w.now, e.cfg.StaggerSpeed, dt)

	case e.slashing:
		// Rooted until the swing ends.

	case pl.Vitals.Dead():
		e.play(w, e.ID, dirClip("suitor_idle", e.facing), false)

	case e.Center().Distance(target) < e.cfg.SlashDistance && e.lastSlash+e.cfg.SlashCooldown < w.now:
		e.slashing = true
		e.slashLanded = false
		e.slashAngle = e.Center().AngleTo(target)
		e.facing = core.AngleDirection(e.slashAngle)
		e.play(w, e.ID, dirClip("suitor_slash", e.facing), true)

	default:
		e.chase(w, target, dt)
	}

	e.separate(w, dt)
	resolveWalls(&e.Collider, &e.vel, w.walls)
	e.Collider.Translate(e.vel)
	e.syncRect()
}

// advanceSlash steps the clip; the slash lands once on its strike frame if
// the player is still within reach.
func (e *Enemy) advanceSlash(w *World, dt float64) {
	e.anim.step(dt)
	if !e.slashing {
		return
	}

	pl := w.player
	if !e.slashLanded && e.anim.Frame() >= e.cfg.SlashFrame {
		e.slashLanded = true
		if !pl.Vitals.Dead() && e.Center().Distance(pl.Center()) < e.cfg.SlashDistance {
			dmg := w.difficulty.EnemyDamage(e.cfg.SlashDamage, w.kills, w.now)
			w.hitPlayer(combat.Strike{Damage: dmg, Angle: e.Center().AngleTo(pl.Center())})
		}
	}
	if e.anim.Done() {
		e.cancelSlash()
		e.lastSlash = w.now
	}
}

// chase follows the cached grid path to target, steering at the center of
// the next waypoint cell.
func (e *Enemy) chase(w *World, target core.Vec2, dt float64) {
	path := w.paths.FindWorldPath(e.Collider.Center(), target)
	if len(path) < 2 {
		e.play(w, e.ID, dirClip("suitor_idle", e.facing), false)
		return
	}

	half := w.paths.Grid().CellSize() / 2
	next := path[1].Add(core.V(half, half))
	if len(path) > 2 && e.Collider.Center().Distance(next) < e.cfg.WaypointRadius {
		next = path[2].Add(core.V(half, half))
	}

	angle := e.Collider.Center().AngleTo(next)
	e.vel = core.Polar(angle).Scale(e.Speed * dt)
	e.facing = e.vel.Direction(e.facing)
	e.play(w, e.ID, dirClip("suitor_walk", e.facing), false)
}

// separate nudges the enemy away from living peers whose hit bodies overlap.
func (e *Enemy) separate(w *World, dt float64) {
	for _, o := range w.enemies {
		if o == e || o.Vitals.Dead() || !e.Rect.Intersects(o.Rect) {
			continue
		}
		e.vel = e.vel.Project(e.Center().AngleTo(o.Center()), -e.cfg.Separation*dt)
	}
}
