package game

import (
	"encoding/binary"
	"hash/fnv"
	"math"
)

// Snapshot is the complete observable state of a World at one tick.
// It uses primitive types only so traces encode stably.
type Snapshot struct {
	Tick     int     `msgpack:"tick"`
	Time     float64 `msgpack:"time"`
	Kills    int     `msgpack:"kills"`
	GameOver bool    `msgpack:"game_over"`
	Won      bool    `msgpack:"won"`

	Player  ActorSnapshot    `msgpack:"player"`
	Enemies []ActorSnapshot  `msgpack:"enemies"`
	Arrows  []ArrowSnapshot  `msgpack:"arrows"`
	Pickups []PickupSnapshot `msgpack:"pickups"`
	Effects []EffectSnapshot `msgpack:"effects"`
}

// ActorSnapshot is one player or enemy.
type ActorSnapshot struct {
	ID        uint32  `msgpack:"id"`
	X         float64 `msgpack:"x"`
	Y         float64 `msgpack:"y"`
	HP        float64 `msgpack:"hp"`
	Shield    float64 `msgpack:"shield,omitempty"`
	Stamina   float64 `msgpack:"stamina,omitempty"`
	Staggered bool    `msgpack:"staggered,omitempty"`
	Clip      string  `msgpack:"clip"`
	Frame     int     `msgpack:"frame"`
	Alpha     float64 `msgpack:"alpha"`
}

// ArrowSnapshot is one projectile.
type ArrowSnapshot struct {
	ID      uint32  `msgpack:"id"`
	X       float64 `msgpack:"x"`
	Y       float64 `msgpack:"y"`
	Angle   float64 `msgpack:"angle"`
	Hits    int     `msgpack:"hits"`
	Hostile bool    `msgpack:"hostile,omitempty"`
	Alpha   float64 `msgpack:"alpha"`
}

// PickupSnapshot is one food drop.
type PickupSnapshot struct {
	ID    uint32  `msgpack:"id"`
	X     float64 `msgpack:"x"`
	Y     float64 `msgpack:"y"`
	Heal  float64 `msgpack:"heal"`
	Alpha float64 `msgpack:"alpha"`
}

// EffectSnapshot is one running effect.
type EffectSnapshot struct {
	ID    uint32  `msgpack:"id"`
	Kind  string  `msgpack:"kind"`
	X     float64 `msgpack:"x"`
	Y     float64 `msgpack:"y"`
	Frame int     `msgpack:"frame"`
}

// Snapshot captures the world's current state.
func (w *World) Snapshot() Snapshot {
	p := w.player
	pc := p.Center()
	s := Snapshot{
		Tick:     w.ticks,
		Time:     w.now,
		Kills:    w.kills,
		GameOver: w.state.GameOver,
		Won:      w.state.Won,
		Player: ActorSnapshot{
			ID:        uint32(p.ID),
			X:         pc.X,
			Y:         pc.Y,
			HP:        p.Vitals.HP,
			Shield:    p.Vitals.Shield,
			Stamina:   p.Stamina,
			Staggered: p.Vitals.Staggered,
			Clip:      p.Clip(),
			Frame:     p.anim.Frame(),
			Alpha:     1,
		},
		Enemies: make([]ActorSnapshot, len(w.enemies)),
		Arrows:  make([]ArrowSnapshot, len(w.arrows)),
		Pickups: make([]PickupSnapshot, len(w.pickups)),
		Effects: make([]EffectSnapshot, len(w.effects)),
	}

	for i, e := range w.enemies {
		c := e.Center()
		s.Enemies[i] = ActorSnapshot{
			ID:        uint32(e.ID),
			X:         c.X,
			Y:         c.Y,
			HP:        e.Vitals.HP,
			Staggered: e.Vitals.Staggered,
			Clip:      e.Clip(),
			Frame:     e.anim.Frame(),
			Alpha:     e.Alpha,
		}
	}
	for i, a := range w.arrows {
		s.Arrows[i] = ArrowSnapshot{
			ID:      uint32(a.ID),
			X:       a.Pos.X,
			Y:       a.Pos.Y,
			Angle:   a.Spec.Angle,
			Hits:    a.HitCount(),
			Hostile: a.Spec.Hostile,
			Alpha:   a.Alpha,
		}
	}
	for i, pk := range w.pickups {
		c := pk.Rect.Center()
		s.Pickups[i] = PickupSnapshot{ID: uint32(pk.ID), X: c.X, Y: c.Y, Heal: pk.Heal, Alpha: pk.Alpha}
	}
	for i, fx := range w.effects {
		c := fx.Rect.Center()
		s.Effects[i] = EffectSnapshot{ID: uint32(fx.ID), Kind: fx.Kind.String(), X: c.X, Y: c.Y, Frame: fx.anim.Frame()}
	}
	return s
}

// Hash returns a 64-bit FNV-1a digest of the snapshot. Two worlds with the
// same seed, level, config and input produce equal hashes at every tick.
func (s Snapshot) Hash() uint64 {
	h := fnv.New64a()
	var buf [8]byte
	num := func(v float64) {
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
		h.Write(buf[:])
	}
	str := func(v string) {
		h.Write([]byte(v))
		h.Write([]byte{0})
	}
	flag := func(v bool) {
		if v {
			num(1)
		} else {
			num(0)
		}
	}
	actor := func(a ActorSnapshot) {
		num(float64(a.ID))
		num(a.X)
		num(a.Y)
		num(a.HP)
		num(a.Shield)
		num(a.Stamina)
		flag(a.Staggered)
		str(a.Clip)
		num(float64(a.Frame))
		num(a.Alpha)
	}

	num(float64(s.Tick))
	num(s.Time)
	num(float64(s.Kills))
	flag(s.GameOver)
	flag(s.Won)
	actor(s.Player)

	num(float64(len(s.Enemies)))
	for _, e := range s.Enemies {
		actor(e)
	}
	num(float64(len(s.Arrows)))
	for _, a := range s.Arrows {
		num(float64(a.ID))
		num(a.X)
		num(a.Y)
		num(a.Angle)
		num(float64(a.Hits))
		flag(a.Hostile)
		num(a.Alpha)
	}
	num(float64(len(s.Pickups)))
	for _, p := range s.Pickups {
		num(float64(p.ID))
		num(p.X)
		num(p.Y)
		num(p.Heal)
		num(p.Alpha)
	}
	num(float64(len(s.Effects)))
	for _, fx := range s.Effects {
		num(float64(fx.ID))
		str(fx.Kind)
		num(fx.X)
		num(fx.Y)
		num(float64(fx.Frame))
	}
	return h.Sum64()
}
