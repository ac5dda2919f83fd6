package game

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/ithaca/internal/combat"
	"github.com/vovakirdan/ithaca/internal/core"
)

func hold(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Hold(a)
	}
	return in
}

func TestPlayerWalks(t *testing.T) {
	tests := []struct {
		name    string
		actions []core.Action
		want    core.Vec2
		clip    string
	}{
		{"right", []core.Action{core.ActionRight}, core.V(1, 0), "move_right"},
		{"up", []core.Action{core.ActionUp}, core.V(0, -1), "move_up"},
		{"diagonal", []core.Action{core.ActionRight, core.ActionDown}, core.V(0.7071, 0.7071), "move_down"},
		{"sprint", []core.Action{core.ActionLeft, core.ActionSprint}, core.V(-2.5, 0), "run_left"},
		{"idle", nil, core.Vec2{}, "idle_down"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWorld(t, openRoom, testConfig())
			p := w.Player()
			start := p.Center()

			run(w, 1, hold(tt.actions...))

			got := p.Center().Sub(start)
			assert.InDelta(t, tt.want.X, got.X, 1e-9)
			assert.InDelta(t, tt.want.Y, got.Y, 1e-9)
			assert.Equal(t, tt.clip, p.Clip())
		})
	}
}

func TestSprintDrainsStamina(t *testing.T) {
	w := newTestWorld(t, openRoom, testConfig())
	p := w.Player()

	run(w, 10, hold(core.ActionRight, core.ActionSprint))

	assert.InDelta(t, 95.0, p.Stamina, 1e-9)
}

func TestStaminaRegen(t *testing.T) {
	w := newTestWorld(t, openRoom, testConfig())
	p := w.Player()
	p.Stamina = 50

	run(w, 10, core.NewInputFrame())
	assert.InDelta(t, 55.0, p.Stamina, 1e-9, "standing regenerates 0.5 per tick")

	run(w, 10, hold(core.ActionLeft))
	assert.InDelta(t, 57.0, p.Stamina, 1e-9, "moving regenerates 0.2 per tick")

	p.lastStaminaUse = w.Now()
	run(w, 10, core.NewInputFrame())
	assert.InDelta(t, 57.0, p.Stamina, 1e-9, "no regen inside the delay")
}

func TestPlayerClampedToBounds(t *testing.T) {
	w := newTestWorld(t, openRoom, testConfig())
	p := w.Player()
	p.Rect.SetCenter(core.V(-20, 31.5))

	run(w, 1, hold(core.ActionLeft))

	assert.Equal(t, 0.0, p.Rect.X)
}

func TestBowDrawHoldRelease(t *testing.T) {
	w := newTestWorld(t, openRoom, testConfig())
	p := w.Player()

	in := hold(core.ActionPrimary)
	in.SetPointer(core.V(130, 31.5))
	run(w, 40, in)

	require.True(t, p.ShotReady())
	assert.Equal(t, "shoot_right", p.Clip())
	assert.Empty(t, w.Projectiles())

	release := core.NewInputFrame()
	release.SetPointer(core.V(130, 31.5))
	events := run(w, 1, release)

	require.Len(t, w.Projectiles(), 1)
	arrow := w.Projectiles()[0]
	assert.Equal(t, 10.0, arrow.Spec.Damage)
	assert.InDelta(t, 0, arrow.Spec.Angle, 1e-9)
	assert.Equal(t, 1, countEvents(events, EventArrow))
	assert.True(t, p.Releasing())
	assert.InDelta(t, 95.0, p.Stamina, 1e-9)
	assert.Equal(t, 40.0, w.HUD().ShotCooldown)

	run(w, 20, release)
	assert.False(t, p.Releasing())
}

func TestBowDrawCancelledByEarlyRelease(t *testing.T) {
	w := newTestWorld(t, openRoom, testConfig())
	p := w.Player()

	run(w, 10, hold(core.ActionPrimary))
	require.True(t, p.Drawing())
	run(w, 1, core.NewInputFrame())

	assert.False(t, p.Drawing())
	assert.Empty(t, w.Projectiles())
}

func TestBowSlowsWalking(t *testing.T) {
	w := newTestWorld(t, openRoom, testConfig())
	p := w.Player()
	start := p.Center()

	run(w, 1, hold(core.ActionPrimary, core.ActionRight))

	assert.InDelta(t, 0.5, p.Center().X-start.X, 1e-9)
}

func TestPolearmSlash(t *testing.T) {
	w := newTestWorld(t, openRoom, testConfig())
	p := w.Player()
	p.Stance = StancePolearm
	e := w.spawnEnemy(core.V(80, 31.5))

	in := core.NewInputFrame()
	in.Press(core.ActionPrimary)
	in.SetPointer(core.V(130, 31.5))
	events := run(w, 10, in)

	assert.Equal(t, 10.0, e.Vitals.HP, "a swing hits each target once")
	assert.Equal(t, 1, countEvents(events, EventEnemyHit))
	assert.True(t, p.Attacking())
	assert.Equal(t, "pol_slash_right", p.Clip())
	assert.InDelta(t, 97.5, p.Stamina, 1e-9)
}

func TestPolearmThrustPierce(t *testing.T) {
	w := newTestWorld(t, openRoom, testConfig())
	p := w.Player()
	p.Stance = StancePolearm
	var targets []*Enemy
	for range 3 {
		targets = append(targets, w.spawnEnemy(core.V(87.5, 40)))
	}

	in := core.NewInputFrame()
	in.Press(core.ActionSecondary)
	in.SetPointer(core.V(130, 31.5))
	run(w, 1, in)

	hit := 0
	for _, e := range targets {
		if e.Vitals.HP == 5 {
			hit++
		}
	}
	assert.Equal(t, 2, hit)
	assert.True(t, strings.HasPrefix(p.Clip(), "pol_thrust_"))
}

func TestBowStanceIgnoresMeleeButtons(t *testing.T) {
	w := newTestWorld(t, openRoom, testConfig())
	p := w.Player()

	in := core.NewInputFrame()
	in.Press(core.ActionSecondary)
	run(w, 1, in)

	assert.False(t, p.Attacking())
}

func TestDodgeGrantsIframes(t *testing.T) {
	w := newTestWorld(t, openRoom, testConfig())
	p := w.Player()
	start := p.Center()

	events := run(w, 1, hold(core.ActionDodge, core.ActionRight))

	assert.Equal(t, 1, countEvents(events, EventDodge))
	assert.True(t, p.Dodging(w.Now()))
	assert.True(t, p.Vitals.Invulnerable)
	assert.InDelta(t, 5.0, p.Center().X-start.X, 1e-9)
	assert.InDelta(t, 90.0, p.Stamina, 1e-9)
	assert.Equal(t, "dodge_right", p.Clip())

	w.hitPlayer(combat.Strike{Damage: 50})
	assert.Equal(t, 100.0, p.Vitals.HP)

	// Holding the key does not chain dodges inside the cooldown.
	events = run(w, 30, hold(core.ActionDodge, core.ActionRight))
	assert.Zero(t, countEvents(events, EventDodge))
	assert.False(t, p.Vitals.Invulnerable)
}

func TestDodgeNeedsStamina(t *testing.T) {
	w := newTestWorld(t, openRoom, testConfig())
	p := w.Player()
	p.Stamina = 10

	events := run(w, 1, hold(core.ActionDodge))

	assert.Zero(t, countEvents(events, EventDodge))
}

func TestStaggerKnocksBackAndCancelsAttack(t *testing.T) {
	w := newTestWorld(t, openRoom, testConfig())
	p := w.Player()
	p.Stance = StancePolearm

	in := core.NewInputFrame()
	in.Press(core.ActionPrimary)
	run(w, 1, in)
	require.True(t, p.Attacking())

	start := p.Center()
	w.hitPlayer(combat.Strike{Damage: 40, Angle: 0})
	require.True(t, p.Vitals.Staggered)
	run(w, 1, core.NewInputFrame())

	assert.False(t, p.Attacking())
	assert.Greater(t, p.Center().X, start.X)
	assert.Equal(t, "pol_hurt_left", p.Clip())
}

func TestSaveSpawnsRescue(t *testing.T) {
	cfg := testConfig()
	cfg.Player.SaveChance = 1
	w := newTestWorld(t, openRoom, cfg)
	p := w.Player()

	w.hitPlayer(combat.Strike{Damage: 30})

	assert.Equal(t, 100.0, p.Vitals.HP)
	require.Len(t, w.Effects(), 1)
	assert.Equal(t, EffectRescue, w.Effects()[0].Kind)
	assert.Equal(t, 1, countEvents(w.Events(), EventSaved))
}

func TestStaggerBlocksSwitchAndDodge(t *testing.T) {
	tests := []struct {
		name   string
		action core.Action
	}{
		{"switch", core.ActionSwitch},
		{"dodge", core.ActionDodge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWorld(t, openRoom, testConfig())
			p := w.Player()
			w.hitPlayer(combat.Strike{Damage: 40})
			require.True(t, p.Vitals.Staggered)

			in := core.NewInputFrame()
			in.Press(tt.action)
			events := run(w, 1, in)

			assert.False(t, p.Switching())
			assert.Equal(t, StanceBow, p.Stance)
			assert.Zero(t, countEvents(events, EventStanceSwitch))
			assert.Zero(t, countEvents(events, EventDodge))
		})
	}
}

func TestDodgeBlockedByBusyAction(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T, w *World)
	}{
		{
			name: "bow release",
			setup: func(t *testing.T, w *World) {
				in := hold(core.ActionPrimary)
				in.SetPointer(core.V(130, 31.5))
				run(w, 40, in)
				run(w, 1, core.NewInputFrame())
				require.True(t, w.Player().Releasing())
			},
		},
		{
			name: "stance switch",
			setup: func(t *testing.T, w *World) {
				in := core.NewInputFrame()
				in.Press(core.ActionSwitch)
				run(w, 1, in)
				require.True(t, w.Player().Switching())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWorld(t, openRoom, testConfig())
			tt.setup(t, w)

			events := run(w, 1, hold(core.ActionDodge, core.ActionRight))

			assert.Zero(t, countEvents(events, EventDodge))
			assert.False(t, w.Player().Dodging(w.Now()))
		})
	}
}

func TestStanceSwitchCycle(t *testing.T) {
	w := newTestWorld(t, openRoom, testConfig())
	p := w.Player()
	press := core.NewInputFrame()
	press.Press(core.ActionSwitch)

	events := run(w, 1, press)
	require.True(t, p.Switching())
	assert.Equal(t, StancePolearm, p.Stance, "stance flips when the sheath starts")
	assert.Equal(t, "sheath_down", p.Clip())
	assert.Equal(t, 1, countEvents(events, EventStanceSwitch))

	sawDraw := false
	for i := 0; i < 100 && p.Switching(); i++ {
		run(w, 1, core.NewInputFrame())
		if p.Switching() && p.Clip() == "pol_draw_down" {
			sawDraw = true
		}
	}
	require.False(t, p.Switching())
	assert.True(t, sawDraw, "the new stance is drawn after the sheath")
	assert.Equal(t, w.Now(), p.lastSwitch)

	press = core.NewInputFrame()
	press.Press(core.ActionSwitch)
	events = run(w, 1, press)
	assert.False(t, p.Switching(), "inside the cooldown")
	assert.Equal(t, StancePolearm, p.Stance)
	assert.Zero(t, countEvents(events, EventStanceSwitch))

	run(w, 20, core.NewInputFrame())
	press = core.NewInputFrame()
	press.Press(core.ActionSwitch)
	events = run(w, 1, press)
	assert.True(t, p.Switching())
	assert.Equal(t, StanceBow, p.Stance)
	assert.Equal(t, "pol_sheath_down", p.Clip())
	assert.Equal(t, 1, countEvents(events, EventStanceSwitch))
}

func TestStaggerInterruptsSwitch(t *testing.T) {
	w := newTestWorld(t, openRoom, testConfig())
	p := w.Player()
	press := core.NewInputFrame()
	press.Press(core.ActionSwitch)
	run(w, 1, press)
	require.True(t, p.Switching())

	w.hitPlayer(combat.Strike{Damage: 40, Angle: 0})
	run(w, 1, core.NewInputFrame())

	assert.False(t, p.Switching())
	assert.Equal(t, StancePolearm, p.Stance, "the flipped stance is kept without a draw")
	assert.Equal(t, w.Now(), p.lastSwitch, "an interrupted switch still starts the cooldown")
	assert.Equal(t, "pol_hurt_left", p.Clip())
}
