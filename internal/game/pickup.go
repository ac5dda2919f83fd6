package game

import (
	"math"

	"github.com/vovakirdan/ithaca/internal/core"
)

// Pickup is food dropped by a fallen suitor.
type Pickup struct {
	ID    ActorID
	Rect  core.Rect
	Heal  float64
	Alpha float64

	born  float64
	taken bool
}

// Expired reports whether the pickup was eaten or outlived its lifetime.
func (p *Pickup) Expired(now, lifetime float64) bool {
	return p.taken || now-p.born > lifetime
}

// maybeDrop rolls the drop chance for a suitor that just fell at pos.
func (w *World) maybeDrop(pos core.Vec2) {
	cfg := w.cfg.Pickups
	if w.rng.Float64() >= cfg.DropChance {
		return
	}
	heal := cfg.MinHeal
	if span := cfg.MaxHeal - cfg.MinHeal; span > 0 {
		heal += w.rng.Intn(span + 1)
	}
	w.pickups = append(w.pickups, &Pickup{
		ID:    w.newID(),
		Rect:  core.RectFromCenter(pos, cfg.Size, cfg.Size),
		Heal:  float64(heal),
		Alpha: 1,
		born:  w.now,
	})
}

func (w *World) updatePickups(dt float64) {
	pl := w.player
	lifetime := w.cfg.Pickups.Lifetime

	for _, p := range w.pickups {
		if p.Expired(w.now, lifetime) {
			p.Alpha = math.Max(p.Alpha-w.cfg.FadeRate*dt, 0)
			continue
		}
		if pl.Vitals.Dead() || !p.Rect.Intersects(pl.Rect) {
			continue
		}
		p.taken = true
		pl.Vitals.Heal(p.Heal)
		w.emit(Event{Kind: EventPickup, Actor: p.ID, Pos: p.Rect.Center(), Value: p.Heal})
	}
}
