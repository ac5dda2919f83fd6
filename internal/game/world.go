// Package game runs the siege of Ithaca: one player against waves of
// suitors on a static level, advanced in fixed ticks.
//
// A World owns every actor, projectile and the clock; nothing in the package
// is global. It is not safe for concurrent use. Each SSH session or headless
// run gets its own World.
package game

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/ithaca/internal/combat"
	"github.com/vovakirdan/ithaca/internal/config"
	"github.com/vovakirdan/ithaca/internal/core"
	"github.com/vovakirdan/ithaca/internal/level"
	"github.com/vovakirdan/ithaca/internal/nav"
)

// Options configures a new World.
type Options struct {
	Config config.GameConfig
	Level  level.Level
	Seed   int64

	// TimeScale multiplies the dt of every Step. Zero means 1.
	TimeScale float64

	// Difficulty overrides the manager built from Config.Difficulty.
	Difficulty *config.DifficultyManager

	Logger   *log.Logger // nil discards
	Animator Animator    // nil for headless runs
}

// World is the frame driver and sole owner of simulation state.
type World struct {
	cfg        config.GameConfig
	level      level.Level
	seed       int64
	clips      Clips
	animator   Animator
	logger     *log.Logger
	rng        *rand.Rand
	difficulty *config.DifficultyManager
	paths      *nav.Pathfinder
	walls      []core.Rect
	bounds     core.Rect
	spawns     []core.Vec2

	now       float64
	ticks     int
	timeScale float64
	nextID    ActorID
	lastWave  float64

	player   *Player
	enemies  []*Enemy
	arrows   []*Projectile
	pickups  []*Pickup
	effects  []*Effect
	blessing blessingState

	kills  int
	total  int
	state  core.GameState
	events []Event
}

// NewWorld builds a world for opts.Level, places the player on the level
// start and rolls the initial spawn.
func NewWorld(opts Options) (*World, error) {
	if err := config.Validate(opts.Config); err != nil {
		return nil, fmt.Errorf("game: invalid config: %w", err)
	}
	if opts.Level.Cols == 0 || opts.Level.Rows == 0 {
		return nil, fmt.Errorf("game: level %q has no cells", opts.Level.ID)
	}

	cfg := opts.Config
	w := &World{
		cfg:        cfg,
		level:      opts.Level,
		seed:       opts.Seed,
		clips:      NewClips(cfg.Animations),
		animator:   opts.Animator,
		logger:     opts.Logger,
		rng:        rand.New(rand.NewSource(opts.Seed)), //#nosec G404 -- deterministic simulation RNG
		difficulty: opts.Difficulty,
		paths:      nav.NewPathfinder(opts.Level.Grid()),
		walls:      opts.Level.Walls(),
		bounds:     opts.Level.Bounds(),
		spawns:     opts.Level.SpawnPositions(),
		timeScale:  opts.TimeScale,
		blessing:   newBlessingState(cfg.Blessings.Athena.Mods),
	}
	if w.logger == nil {
		w.logger = discardLogger()
	}
	if w.difficulty == nil {
		w.difficulty = config.NewDifficultyManager(cfg.Difficulty)
	}
	if w.timeScale <= 0 {
		w.timeScale = 1
	}

	w.total = cfg.Waves.Total
	if opts.Level.Suitors > 0 {
		w.total = opts.Level.Suitors
	}
	if opts.Level.Endless {
		w.total = 0
	}

	w.player = newPlayer(w.newID(), opts.Level.StartPosition(), cfg.Player, cfg.Arrow)
	w.player.play(w, w.player.ID, dirClip("idle", core.Down), false)

	n := w.spawnWave(cfg.Waves.InitialChance)
	w.logger.Info("siege begins", "level", opts.Level.ID, "suitors", w.total, "spawned", n, "seed", opts.Seed)
	return w, nil
}

func (w *World) newID() ActorID {
	w.nextID++
	return w.nextID
}

// Step toggles pause on ActionPause and otherwise advances one tick of
// TimeScale length.
func (w *World) Step(in core.InputFrame) core.StepResult {
	if in.Pressed(core.ActionPause) && !w.state.GameOver {
		w.state.Paused = !w.state.Paused
	}
	if w.state.Paused {
		w.events = w.events[:0]
		return core.StepResult{State: w.State()}
	}
	return w.Advance(in, w.timeScale)
}

// Advance runs one tick of dt. A lost world is frozen; a won world keeps
// running so the fallen fade out.
func (w *World) Advance(in core.InputFrame, dt float64) core.StepResult {
	w.events = w.events[:0]
	if w.state.GameOver && !w.state.Won {
		return core.StepResult{State: w.State()}
	}

	w.now += dt
	w.ticks++

	w.expireAthena()
	w.player.update(w, &in, dt)

	if !w.player.fullyDead || w.state.Won {
		for _, e := range w.enemies {
			e.update(w, dt)
		}
	}

	w.updateArrows(dt)
	w.updatePickups(dt)
	w.updateEffects(dt)
	w.updateWaves()
	w.checkOutcome()
	w.prune()

	return core.StepResult{State: w.State()}
}

func (w *World) updateArrows(dt float64) {
	for _, a := range w.arrows {
		if a.Expired(w.now) {
			a.Alpha = math.Max(a.Alpha-w.cfg.FadeRate*dt, 0)
			continue
		}
		a.update(w, dt)
	}
}

func (w *World) spawnArrow(spec ProjectileSpec) {
	a, err := NewProjectile(w.newID(), spec, w.now)
	if err != nil {
		w.logger.Error("arrow rejected", "err", err)
		return
	}
	w.arrows = append(w.arrows, a)
	w.emit(Event{Kind: EventArrow, Actor: a.ID, Pos: spec.Origin, Value: spec.Angle})
}

// hitPlayer lands strike on the player. A won siege makes the player
// untouchable.
func (w *World) hitPlayer(strike combat.Strike) {
	if w.state.Won {
		return
	}
	p := w.player
	out := p.Vitals.Hit(w.now, strike, p.Stats.Get(combat.DamageTaken), w.rng)

	switch out.Result {
	case combat.Saved:
		w.addEffect(EffectRescue, core.RectFromCenter(p.Center(), p.Rect.W, p.Rect.H), "rescue")
		w.emit(Event{Kind: EventSaved, Actor: p.ID, Pos: p.Center()})
	case combat.Applied:
		if out.Staggered && p.action.kind == actAttack {
			p.action = pendingAction{}
		}
		w.emit(Event{Kind: EventPlayerHit, Actor: p.ID, Pos: p.Center(), Value: out.Damage})
		if out.Killed {
			w.logger.Info("odysseus has fallen", "kills", w.kills, "tick", w.ticks)
		}
	}
}

// hitEnemy lands strike on e, counting the kill when it falls.
func (w *World) hitEnemy(e *Enemy, strike combat.Strike) {
	out := e.Vitals.Hit(w.now, strike, 1, nil)
	if out.Result != combat.Applied {
		return
	}
	if out.Staggered {
		e.cancelSlash()
	}
	w.emit(Event{Kind: EventEnemyHit, Actor: e.ID, Pos: e.Center(), Value: out.Damage})
	if !out.Killed {
		return
	}

	w.kills++
	w.emit(Event{Kind: EventKill, Actor: e.ID, Pos: e.Center(), Value: float64(w.kills)})
	w.logger.Debug("suitor slain", "id", e.ID, "kills", w.kills)
	if !w.state.Won {
		w.maybeDrop(e.Center())
	}
}

func (w *World) checkOutcome() {
	if w.state.GameOver {
		return
	}

	if w.total > 0 && w.kills > w.total {
		w.state.GameOver = true
		w.state.Won = true
		for _, e := range w.enemies {
			if !e.Vitals.Dead() {
				e.Vitals.Hit(w.now, combat.Lethal(0), 1, nil)
			}
		}
		w.emit(Event{Kind: EventWon, Actor: w.player.ID, Pos: w.player.Center(), Value: float64(w.kills)})
		w.logger.Info("the hall is cleared", "kills", w.kills, "tick", w.ticks)
		return
	}

	if w.player.fullyDead {
		w.state.GameOver = true
		w.logger.Info("siege lost", "kills", w.kills, "tick", w.ticks)
	}
}

// prune drops actors that have fully faded.
func (w *World) prune() {
	enemies := w.enemies[:0]
	for _, e := range w.enemies {
		if !e.Expired() {
			enemies = append(enemies, e)
		}
	}
	clear(w.enemies[len(enemies):])
	w.enemies = enemies

	arrows := w.arrows[:0]
	for _, a := range w.arrows {
		if a.Alpha > 0 {
			arrows = append(arrows, a)
		}
	}
	clear(w.arrows[len(arrows):])
	w.arrows = arrows

	pickups := w.pickups[:0]
	for _, p := range w.pickups {
		if p.Alpha > 0 {
			pickups = append(pickups, p)
		}
	}
	clear(w.pickups[len(pickups):])
	w.pickups = pickups
}

// State returns the run status.
func (w *World) State() core.GameState {
	s := w.state
	s.Kills = w.kills
	return s
}

// Events returns what happened during the last tick. The slice is reused by
// the next tick.
func (w *World) Events() []Event { return w.events }

// Now returns the world clock in ticks of dt.
func (w *World) Now() float64 { return w.now }

// Ticks returns how many ticks have run.
func (w *World) Ticks() int { return w.ticks }

// Seed returns the RNG seed the world was built with.
func (w *World) Seed() int64 { return w.seed }

// Level returns the level being played.
func (w *World) Level() level.Level { return w.level }

// Kills returns the number of suitors slain.
func (w *World) Kills() int { return w.kills }

// Total returns the kills needed to win; 0 means endless.
func (w *World) Total() int { return w.total }

// Player returns the player.
func (w *World) Player() *Player { return w.player }

// Enemies returns every enemy still present, fading ones included.
func (w *World) Enemies() []*Enemy { return w.enemies }

// Projectiles returns every projectile still present.
func (w *World) Projectiles() []*Projectile { return w.arrows }

// Pickups returns every pickup still present.
func (w *World) Pickups() []*Pickup { return w.pickups }

// Effects returns the running effects.
func (w *World) Effects() []*Effect { return w.effects }

// Walls returns the wall rectangles.
func (w *World) Walls() []core.Rect { return w.walls }

// Bounds returns the playable area.
func (w *World) Bounds() core.Rect { return w.bounds }

// PathStats returns path cache counters.
func (w *World) PathStats() nav.CacheStats { return w.paths.Stats() }

// DifficultyLevel returns the current difficulty in [0, 1].
func (w *World) DifficultyLevel() float64 { return w.difficulty.Level(w.kills, w.now) }

// SetTimeScale changes the dt used by Step. Values <= 0 are ignored.
func (w *World) SetTimeScale(s float64) {
	if s > 0 {
		w.timeScale = s
	}
}
