package game

import "github.com/vovakirdan/ithaca/internal/core"

// ActorID identifies an actor within one World.
type ActorID uint32

// Stance is the player's weapon set.
type Stance uint8

const (
	StanceBow Stance = iota
	StancePolearm
)

func (s Stance) String() string {
	if s == StancePolearm {
		return "polearm"
	}
	return "bow"
}

// clip returns the stance-specific name of a base clip.
func (s Stance) clip(base string) string {
	if s == StancePolearm {
		return "pol_" + base
	}
	return base
}

func (s Stance) other() Stance {
	if s == StanceBow {
		return StancePolearm
	}
	return StanceBow
}

// actionKind tags the player's pending action.
type actionKind uint8

const (
	actNone    actionKind = iota
	actAttack             // melee swing in progress
	actDraw               // bow being drawn or held at the ready frame
	actRelease            // arrow loosed, release frames playing
	actSwitch             // sheathing the old weapon, then drawing the new one
)

// meleeKind selects the polearm attack.
type meleeKind uint8

const (
	meleeSlash meleeKind = iota
	meleeThrust
)

// pendingAction is the single timed sub-state the player may be in. Its
// completion is detected by polling the current clip each tick.
type pendingAction struct {
	kind actionKind

	// actAttack
	melee meleeKind
	angle float64
	hit   map[ActorID]struct{}

	// actSwitch
	drawing bool // second phase
	dir     core.Direction
}

// resolveWalls applies axis-separated collision to vel for a body at rect.
// A body already inside a wall is first pushed out along the axis of least
// penetration. Then each axis is tested alone; on contact the body is placed
// flush against the wall and that axis is zeroed.
func resolveWalls(rect *core.Rect, vel *core.Vec2, walls []core.Rect) {
	for _, w := range walls {
		depenetrate(rect, w)
	}
	if vel.IsZero() {
		return
	}

	h := rect.Translated(core.V(vel.X, 0))
	for _, w := range walls {
		if !h.Intersects(w) {
			continue
		}
		if vel.X > 0 {
			rect.X = w.X - rect.W
		} else if vel.X < 0 {
			rect.X = w.Right()
		}
		vel.X = 0
	}

	v := rect.Translated(core.V(0, vel.Y))
	for _, w := range walls {
		if !v.Intersects(w) {
			continue
		}
		if vel.Y > 0 {
			rect.Y = w.Y - rect.H
		} else if vel.Y < 0 {
			rect.Y = w.Bottom()
		}
		vel.Y = 0
	}
}

// depenetrate moves rect out of w along the shallower axis. A diagonal step
// onto a convex corner passes both axis tests and leaves such an overlap.
func depenetrate(rect *core.Rect, w core.Rect) {
	if !rect.Intersects(w) {
		return
	}
	ox := min(rect.Right(), w.Right()) - max(rect.X, w.X)
	oy := min(rect.Bottom(), w.Bottom()) - max(rect.Y, w.Y)
	rc, wc := rect.Center(), w.Center()

	if ox <= oy {
		if rc.X < wc.X {
			rect.X = w.X - rect.W
		} else {
			rect.X = w.Right()
		}
		return
	}
	if rc.Y < wc.Y {
		rect.Y = w.Y - rect.H
	} else {
		rect.Y = w.Bottom()
	}
}
