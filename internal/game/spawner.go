package game

import (
	"github.com/vovakirdan/ithaca/internal/core"
)

// aliveEnemies counts suitors still standing.
func (w *World) aliveEnemies() int {
	n := 0
	for _, e := range w.enemies {
		if !e.Vitals.Dead() {
			n++
		}
	}
	return n
}

// spawnWave rolls chance once per spawn point and returns how many suitors
// entered. The MaxAlive cap is never exceeded.
func (w *World) spawnWave(chance float64) int {
	limit := w.cfg.Waves.MaxAlive
	alive := w.aliveEnemies()
	half := w.paths.Grid().CellSize() / 2

	spawned := 0
	for _, pt := range w.spawns {
		if w.rng.Float64() >= chance {
			continue
		}
		if alive >= limit {
			break
		}
		w.spawnEnemy(pt.Add(core.V(half, half)))
		alive++
		spawned++
	}
	return spawned
}

func (w *World) spawnEnemy(pos core.Vec2) *Enemy {
	cfg := w.cfg.Enemy
	base := cfg.MinSpeed + w.rng.Float64()*(cfg.MaxSpeed-cfg.MinSpeed)
	speed := w.difficulty.EnemySpeed(base, w.kills, w.now)

	e := newEnemy(w.newID(), pos, speed, cfg)
	e.play(w, e.ID, dirClip("suitor_idle", core.Down), false)
	w.enemies = append(w.enemies, e)
	w.emit(Event{Kind: EventSpawn, Actor: e.ID, Pos: pos, Value: speed})
	return e
}

// updateWaves sends a new wave once the interval has elapsed. The interval
// and per-point chance follow the difficulty level.
func (w *World) updateWaves() {
	if w.state.Won {
		return
	}
	interval := w.difficulty.WaveInterval(w.cfg.Waves.Interval, w.kills, w.now)
	if w.now-w.lastWave < interval {
		return
	}
	w.lastWave = w.now

	chance := w.difficulty.SpawnChance(w.cfg.Waves.SpawnChance, w.kills, w.now)
	n := w.spawnWave(chance)
	w.emit(Event{Kind: EventWave, Pos: w.player.Center(), Value: float64(n)})
	w.logger.Info("wave spawned", "count", n, "alive", w.aliveEnemies(), "tick", w.ticks)
}
