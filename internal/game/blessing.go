package game

import (
	"math"
	"sort"

	"github.com/vovakirdan/ithaca/internal/combat"
	"github.com/vovakirdan/ithaca/internal/core"
)

// EffectKind selects a transient visual that may carry gameplay.
type EffectKind uint8

const (
	EffectRescue    EffectKind = iota // a saved hit
	EffectLightning                   // Zeus; strikes on its strike frame
)

func (k EffectKind) String() string {
	if k == EffectLightning {
		return "lightning"
	}
	return "rescue"
}

// Effect is a one-shot clip placed in the world.
type Effect struct {
	animState

	ID     ActorID
	Kind   EffectKind
	Rect   core.Rect
	struck bool
}

// Done reports whether the effect's clip has finished.
func (e *Effect) Done() bool { return e.anim.Done() }

// statMod is one Athena modifier in application order.
type statMod struct {
	stat  combat.Stat
	value float64
}

// blessingState tracks the two god powers.
type blessingState struct {
	lastAthena float64
	lastZeus   float64
	athenaEnd  float64
	active     bool
	mods       []statMod
}

func newBlessingState(mods map[string]float64) blessingState {
	b := blessingState{
		lastAthena: math.Inf(-1),
		lastZeus:   math.Inf(-1),
	}
	for name, v := range mods {
		if s, ok := combat.ParseStat(name); ok {
			b.mods = append(b.mods, statMod{stat: s, value: v})
		}
	}
	sort.Slice(b.mods, func(i, j int) bool { return b.mods[i].stat < b.mods[j].stat })
	return b
}

// AthenaActive reports whether the buff is running.
func (w *World) AthenaActive() bool { return w.blessing.active }

func (w *World) invokeAthena() {
	cfg := w.cfg.Blessings.Athena
	b := &w.blessing
	if b.active || b.lastAthena+cfg.Cooldown >= w.now {
		return
	}

	p := w.player
	for _, m := range b.mods {
		p.Stats.Mod(m.stat, m.value)
	}
	p.Vitals.SaveChance = cfg.SaveChance
	p.Vitals.Shield = p.Vitals.MaxShield

	b.active = true
	b.lastAthena = w.now
	b.athenaEnd = w.now + cfg.Duration
	w.emit(Event{Kind: EventAthena, Actor: p.ID, Pos: p.Center(), Value: cfg.Duration})
	w.logger.Debug("athena invoked", "tick", w.ticks)
}

// expireAthena removes exactly what invokeAthena applied.
func (w *World) expireAthena() {
	b := &w.blessing
	if !b.active || w.now < b.athenaEnd {
		return
	}

	p := w.player
	for _, m := range b.mods {
		p.Stats.Demod(m.stat, m.value)
	}
	p.Vitals.SaveChance = p.baseSave
	p.Vitals.Shield = 0
	b.active = false
	w.emit(Event{Kind: EventAthenaEnd, Actor: p.ID, Pos: p.Center()})
}

func (w *World) invokeZeus(at core.Vec2) {
	cfg := w.cfg.Blessings.Zeus
	b := &w.blessing
	if b.lastZeus+cfg.Cooldown >= w.now {
		return
	}
	b.lastZeus = w.now

	e := w.addEffect(EffectLightning, core.RectFromCenter(at, cfg.Size, cfg.Size), "lightning")
	w.emit(Event{Kind: EventZeus, Actor: e.ID, Pos: at})
}

func (w *World) addEffect(kind EffectKind, rect core.Rect, clip string) *Effect {
	e := &Effect{ID: w.newID(), Kind: kind, Rect: rect}
	e.play(w, e.ID, clip, true)
	w.effects = append(w.effects, e)
	return e
}

func (w *World) updateEffects(dt float64) {
	strikeFrame := w.cfg.Blessings.Zeus.StrikeFrame

	for _, fx := range w.effects {
		fx.anim.step(dt)
		if fx.Kind == EffectRescue {
			fx.Rect.SetCenter(w.player.Center())
		}
		if fx.Kind != EffectLightning || fx.struck || fx.anim.Frame() < strikeFrame {
			continue
		}

		fx.struck = true
		n := 0
		for _, en := range w.enemies {
			if en.Vitals.Dead() || !fx.Rect.Intersects(en.Rect) {
				continue
			}
			w.hitEnemy(en, combat.Lethal(fx.Rect.Center().AngleTo(en.Center())))
			n++
		}
		w.emit(Event{Kind: EventLightning, Actor: fx.ID, Pos: fx.Rect.Center(), Value: float64(n)})
	}

	live := w.effects[:0]
	for _, fx := range w.effects {
		if !fx.Done() {
			live = append(live, fx)
		}
	}
	clear(w.effects[len(live):])
	w.effects = live
}
