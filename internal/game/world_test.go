package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/ithaca/internal/combat"
	"github.com/vovakirdan/ithaca/internal/config"
	"github.com/vovakirdan/ithaca/internal/core"
	"github.com/vovakirdan/ithaca/internal/level"
)

// openRoom has no spawn points, so only tests add enemies.
const openRoom = `
################
#..............#
#..............#
#......P.......#
#..............#
#..............#
################
`

// testConfig removes randomness that would make exact assertions flaky.
func testConfig() config.GameConfig {
	cfg := config.DefaultConfig()
	cfg.Difficulty.Enabled = false
	cfg.Difficulty.InitialLevel = 0
	cfg.Player.SaveChance = 0
	cfg.Pickups.DropChance = 0
	return cfg
}

func newTestWorld(t *testing.T, src string, cfg config.GameConfig) *World {
	t.Helper()
	lvl, err := level.ParseMap(src)
	require.NoError(t, err)
	lvl.ID = "test"
	w, err := NewWorld(Options{Config: cfg, Level: lvl, Seed: 7})
	require.NoError(t, err)
	return w
}

// run advances w by ticks with in, clearing presses after the first tick,
// and returns every event emitted.
func run(w *World, ticks int, in core.InputFrame) []Event {
	var events []Event
	for range ticks {
		w.Advance(in, 1)
		events = append(events, w.Events()...)
		in.EndFrame()
	}
	return events
}

func countEvents(events []Event, kind EventKind) int {
	n := 0
	for _, e := range events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

func TestNewWorldRejectsInvalidConfig(t *testing.T) {
	cfg := testConfig()
	cfg.FadeRate = 0
	lvl, err := level.ParseMap(openRoom)
	require.NoError(t, err)

	_, err = NewWorld(Options{Config: cfg, Level: lvl})
	assert.Error(t, err)
}

func TestNewWorldPlacesPlayer(t *testing.T) {
	w := newTestWorld(t, openRoom, testConfig())

	assert.Equal(t, core.V(67.5, 31.5), w.Player().Center())
	assert.Equal(t, "idle_down", w.Player().Clip())
	assert.Empty(t, w.Enemies())
	assert.Equal(t, 108, w.Total())
}

func TestEndlessLevelNeverWins(t *testing.T) {
	lvl, err := level.ParseMap(openRoom)
	require.NoError(t, err)
	lvl.Endless = true
	w, err := NewWorld(Options{Config: testConfig(), Level: lvl})
	require.NoError(t, err)

	w.kills = 1000
	run(w, 1, core.NewInputFrame())

	assert.Zero(t, w.Total())
	assert.False(t, w.State().GameOver)
}

func TestDeterministicReplay(t *testing.T) {
	lvl, err := level.Get("arena")
	require.NoError(t, err)

	newWorld := func() *World {
		w, err := NewWorld(Options{Config: config.DefaultConfig(), Level: lvl, Seed: 42})
		require.NoError(t, err)
		return w
	}
	a, b := newWorld(), newWorld()

	for tick := range 900 {
		in := scriptedInput(tick)
		a.Advance(in, 1)
		b.Advance(in.Clone(), 1)
		require.Equal(t, a.Snapshot().Hash(), b.Snapshot().Hash(), "diverged at tick %d", tick)
	}
}

func scriptedInput(tick int) core.InputFrame {
	in := core.NewInputFrame()
	switch (tick / 60) % 4 {
	case 0:
		in.Hold(core.ActionRight)
	case 1:
		in.Hold(core.ActionDown)
	case 2:
		in.Hold(core.ActionLeft)
	case 3:
		in.Hold(core.ActionUp)
	}
	if tick%90 == 0 {
		in.Press(core.ActionSwitch)
	}
	if tick%45 < 30 {
		in.Hold(core.ActionPrimary)
	}
	if tick%37 == 0 {
		in.Press(core.ActionSecondary)
	}
	if tick%200 == 0 {
		in.Hold(core.ActionDodge)
	}
	in.SetPointer(core.V(float64(tick%150), 30))
	return in
}

func TestFatalDamageClampsAndCountsOnce(t *testing.T) {
	w := newTestWorld(t, openRoom, testConfig())
	e := w.spawnEnemy(core.V(20, 30))
	e.Vitals.HP = 10

	w.hitEnemy(e, combat.Strike{Damage: 25})

	assert.Equal(t, 0.0, e.Vitals.HP)
	assert.True(t, e.Vitals.Dead())
	assert.Equal(t, 1, w.Kills())

	w.hitEnemy(e, combat.Strike{Damage: 25})
	assert.Equal(t, 1, w.Kills())
	assert.Equal(t, 0.0, e.Vitals.HP)
}

func TestDeadEnemiesFadeAndArePruned(t *testing.T) {
	w := newTestWorld(t, openRoom, testConfig())
	e := w.spawnEnemy(core.V(20, 30))
	w.hitEnemy(e, combat.Lethal(0))

	// dead clip (2 frames at 0.05) then 50 ticks of fade
	run(w, 200, core.NewInputFrame())

	assert.Empty(t, w.Enemies())
}

func TestWinStrikesDownRemainingSuitors(t *testing.T) {
	lvl, err := level.ParseMap(openRoom)
	require.NoError(t, err)
	lvl.Suitors = 2
	w, err := NewWorld(Options{Config: testConfig(), Level: lvl})
	require.NoError(t, err)

	var es []*Enemy
	for i := range 4 {
		es = append(es, w.spawnEnemy(core.V(20+float64(i)*25, 50)))
	}
	for _, e := range es[:3] {
		w.hitEnemy(e, combat.Lethal(0))
	}

	events := run(w, 1, core.NewInputFrame())

	st := w.State()
	assert.True(t, st.GameOver)
	assert.True(t, st.Won)
	assert.Equal(t, 3, st.Kills)
	assert.True(t, es[3].Vitals.Dead())
	assert.Equal(t, 1, countEvents(events, EventWon))

	hp := w.Player().Vitals.HP
	w.hitPlayer(combat.Strike{Damage: 50})
	assert.Equal(t, hp, w.Player().Vitals.HP, "a won siege leaves the player untouchable")

	ticks := w.Ticks()
	run(w, 5, core.NewInputFrame())
	assert.Equal(t, ticks+5, w.Ticks(), "a won world keeps running")
}

func TestLossFreezesWorld(t *testing.T) {
	w := newTestWorld(t, openRoom, testConfig())
	w.Player().Vitals.HP = 1
	w.hitPlayer(combat.Strike{Damage: 50})

	events := run(w, 80, core.NewInputFrame())

	assert.True(t, w.Player().FullyDead())
	st := w.State()
	assert.True(t, st.GameOver)
	assert.False(t, st.Won)
	assert.Equal(t, 1, countEvents(events, EventPlayerDown))

	ticks := w.Ticks()
	run(w, 5, core.NewInputFrame())
	assert.Equal(t, ticks, w.Ticks())
}

func TestPauseToggle(t *testing.T) {
	w := newTestWorld(t, openRoom, testConfig())

	in := core.NewInputFrame()
	in.Press(core.ActionPause)
	w.Step(in)
	require.True(t, w.State().Paused)

	w.Step(core.NewInputFrame())
	w.Step(core.NewInputFrame())
	assert.Zero(t, w.Ticks())

	in = core.NewInputFrame()
	in.Press(core.ActionPause)
	w.Step(in)
	assert.False(t, w.State().Paused)
	assert.Equal(t, 1, w.Ticks())
}

func TestTimeScale(t *testing.T) {
	lvl, err := level.ParseMap(openRoom)
	require.NoError(t, err)
	w, err := NewWorld(Options{Config: testConfig(), Level: lvl, TimeScale: 0.5})
	require.NoError(t, err)

	in := core.NewInputFrame()
	in.Hold(core.ActionRight)
	start := w.Player().Center()
	for range 10 {
		w.Step(in)
	}

	assert.InDelta(t, 5.0, w.Now(), 1e-9)
	assert.InDelta(t, start.X+5, w.Player().Center().X, 1e-9)
}

const waveRoom = `
##########
#S......S#
#........#
#...P....#
#........#
#S......S#
##########
`

func TestWavesRespectMaxAlive(t *testing.T) {
	cfg := testConfig()
	cfg.Waves.InitialChance = 0
	cfg.Waves.SpawnChance = 1
	cfg.Waves.Interval = 10
	cfg.Waves.MaxAlive = 3
	w := newTestWorld(t, waveRoom, cfg)
	require.Empty(t, w.Enemies())

	events := run(w, 10, core.NewInputFrame())
	assert.Len(t, w.Enemies(), 3)
	assert.Equal(t, 1, countEvents(events, EventWave))
	assert.Equal(t, 3, countEvents(events, EventSpawn))

	run(w, 20, core.NewInputFrame())
	assert.Len(t, w.Enemies(), 3)
}

func TestInitialSpawnRollsEachPoint(t *testing.T) {
	cfg := testConfig()
	cfg.Waves.InitialChance = 1
	w := newTestWorld(t, waveRoom, cfg)

	assert.Len(t, w.Enemies(), 4)
	for _, e := range w.Enemies() {
		assert.GreaterOrEqual(t, e.Speed, cfg.Enemy.MinSpeed)
		assert.Less(t, e.Speed, cfg.Enemy.MaxSpeed)
	}
}

func TestPickupHeals(t *testing.T) {
	cfg := testConfig()
	cfg.Pickups.DropChance = 1
	w := newTestWorld(t, openRoom, cfg)
	p := w.Player()
	p.Vitals.HP = 50

	w.maybeDrop(p.Center())
	require.Len(t, w.Pickups(), 1)
	heal := w.Pickups()[0].Heal
	assert.GreaterOrEqual(t, heal, 5.0)
	assert.LessOrEqual(t, heal, 10.0)

	events := run(w, 1, core.NewInputFrame())

	assert.Equal(t, 50+heal, p.Vitals.HP)
	assert.Equal(t, 1, countEvents(events, EventPickup))
	assert.True(t, w.Pickups()[0].Expired(w.Now(), cfg.Pickups.Lifetime))
}

func TestPickupExpires(t *testing.T) {
	cfg := testConfig()
	cfg.Pickups.DropChance = 1
	cfg.Pickups.Lifetime = 10
	w := newTestWorld(t, openRoom, cfg)
	w.maybeDrop(core.V(20, 20))

	run(w, 11+60, core.NewInputFrame())

	assert.Empty(t, w.Pickups())
}

func TestSnapshotTracksState(t *testing.T) {
	w := newTestWorld(t, openRoom, testConfig())
	w.spawnEnemy(core.V(20, 30))

	before := w.Snapshot()
	assert.Len(t, before.Enemies, 1)
	assert.Equal(t, 100.0, before.Player.HP)
	assert.Equal(t, before.Hash(), w.Snapshot().Hash())

	in := core.NewInputFrame()
	in.Hold(core.ActionRight)
	run(w, 1, in)

	after := w.Snapshot()
	assert.Equal(t, 1, after.Tick)
	assert.NotEqual(t, before.Hash(), after.Hash())
}

func TestHUD(t *testing.T) {
	w := newTestWorld(t, openRoom, testConfig())

	h := w.HUD()
	assert.Equal(t, 100.0, h.HP)
	assert.Equal(t, 100.0, h.Stamina)
	assert.Equal(t, "bow", h.Stance)
	assert.Zero(t, h.ShotCooldown)
	assert.Zero(t, h.AthenaCooldown)
	assert.Zero(t, h.BuffRemaining)
	assert.Zero(t, h.Difficulty)
}
