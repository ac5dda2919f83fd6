package replay

import (
	"fmt"
	"math"
	"sort"

	"github.com/vovakirdan/ithaca/internal/core"
	"github.com/vovakirdan/ithaca/internal/game"
)

// Driver chooses the input for the next tick of a headless run.
type Driver func(w *game.World) core.InputFrame

var drivers = map[string]Driver{
	"idle":   Idle,
	"archer": Archer,
}

// Idle never touches the controls.
func Idle(*game.World) core.InputFrame {
	return core.NewInputFrame()
}

// Archer stands still with the bow drawn at the nearest living suitor.
func Archer(w *game.World) core.InputFrame {
	in := core.NewInputFrame()
	pc := w.Player().Center()

	best := math.Inf(1)
	var target core.Vec2
	for _, e := range w.Enemies() {
		if e.Vitals.Dead() {
			continue
		}
		if d := pc.Distance(e.Center()); d < best {
			best, target = d, e.Center()
		}
	}
	if math.IsInf(best, 1) {
		return in
	}

	in.SetPointer(target)
	in.Hold(core.ActionPrimary)
	return in
}

// LookupDriver returns the driver registered under name.
func LookupDriver(name string) (Driver, error) {
	d, ok := drivers[name]
	if !ok {
		return nil, fmt.Errorf("replay: unknown driver %q (have %v)", name, DriverNames())
	}
	return d, nil
}

// DriverNames lists the registered drivers, sorted.
func DriverNames() []string {
	names := make([]string, 0, len(drivers))
	for name := range drivers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Simulate steps w with drive until the run ends or limit ticks have passed.
// Every every-th tick is passed to record when record is non-nil.
func Simulate(w *game.World, drive Driver, limit, every int, record func(game.Snapshot) error) (core.GameState, error) {
	every = max(every, 1)
	state := w.State()
	for w.Ticks() < limit && !state.GameOver {
		state = w.Step(drive(w)).State
		if record == nil || w.Ticks()%every != 0 {
			continue
		}
		if err := record(w.Snapshot()); err != nil {
			return state, err
		}
	}
	return state, nil
}
