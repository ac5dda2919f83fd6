package game

import (
	"errors"

	"github.com/vovakirdan/ithaca/internal/combat"
	"github.com/vovakirdan/ithaca/internal/core"
)

// ErrUnboundedProjectile is returned when a projectile has neither a maximum
// distance nor a maximum lifetime.
var ErrUnboundedProjectile = errors.New("game: projectile needs a max distance or a max lifetime")

// ProjectileSpec describes a projectile at spawn. A zero MaxDistance or
// MaxTime means that bound is unset; at least one must be set.
type ProjectileSpec struct {
	Origin      core.Vec2
	Angle       float64
	Speed       float64
	Damage      float64
	Pierce      float64
	MaxDistance float64
	MaxTime     float64
	Size        float64
	Hostile     bool // damages the player instead of enemies
}

// Projectile is an arrow in flight.
type Projectile struct {
	ID    ActorID
	Spec  ProjectileSpec
	Pos   core.Vec2
	Rect  core.Rect
	Alpha float64

	born    float64
	wallHit bool
	hit     map[ActorID]struct{}
}

// NewProjectile validates spec and places a projectile at its origin.
func NewProjectile(id ActorID, spec ProjectileSpec, now float64) (*Projectile, error) {
	if spec.MaxDistance <= 0 && spec.MaxTime <= 0 {
		return nil, ErrUnboundedProjectile
	}
	if spec.Pierce <= 0 {
		spec.Pierce = 1
	}
	return &Projectile{
		ID:    id,
		Spec:  spec,
		Pos:   spec.Origin,
		Rect:  core.RectFromCenter(spec.Origin, spec.Size, spec.Size),
		Alpha: 1,
		born:  now,
		hit:   make(map[ActorID]struct{}),
	}, nil
}

// Expired reports whether the projectile is spent: it flew past its range,
// outlived its lifetime, used up its pierce, or struck a wall.
func (p *Projectile) Expired(now float64) bool {
	switch {
	case p.wallHit:
		return true
	case p.Spec.MaxDistance > 0 && p.Pos.Distance(p.Spec.Origin) > p.Spec.MaxDistance:
		return true
	case p.Spec.MaxTime > 0 && now-p.born > p.Spec.MaxTime:
		return true
	case float64(len(p.hit)) >= p.Spec.Pierce:
		return true
	}
	return false
}

// HitCount returns how many distinct targets the projectile has damaged.
func (p *Projectile) HitCount() int {
	return len(p.hit)
}

// canHit reports whether id may still be damaged by this projectile.
func (p *Projectile) canHit(id ActorID) bool {
	_, seen := p.hit[id]
	return !seen && float64(len(p.hit)) < p.Spec.Pierce
}

func (p *Projectile) update(w *World, dt float64) {
	strike := combat.Strike{Damage: p.Spec.Damage, Angle: p.Spec.Angle}

	if p.Spec.Hostile {
		pl := w.player
		if !pl.Vitals.Dead() && p.canHit(pl.ID) && p.Rect.Intersects(pl.Rect) {
			p.hit[pl.ID] = struct{}{}
			w.hitPlayer(strike)
		}
	} else {
		for _, e := range w.enemies {
			if e.Vitals.Dead() || !p.canHit(e.ID) || !p.Rect.Intersects(e.Rect) {
				continue
			}
			p.hit[e.ID] = struct{}{}
			w.hitEnemy(e, strike)
		}
	}

	for _, wall := range w.walls {
		if p.Rect.Intersects(wall) {
			p.wallHit = true
			break
		}
	}

	p.Pos = p.Pos.Project(p.Spec.Angle, p.Spec.Speed*dt)
	p.Rect.SetCenter(p.Pos)
}
