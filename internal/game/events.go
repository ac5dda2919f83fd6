package game

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/ithaca/internal/core"
)

// EventKind classifies something that happened during a tick.
type EventKind uint8

const (
	EventSpawn EventKind = iota
	EventWave
	EventEnemyHit
	EventKill
	EventPlayerHit
	EventSaved
	EventDodge
	EventStanceSwitch
	EventArrow
	EventPickup
	EventAthena
	EventAthenaEnd
	EventZeus
	EventLightning
	EventPlayerDown
	EventWon
)

var eventNames = [...]string{
	EventSpawn:        "spawn",
	EventWave:         "wave",
	EventEnemyHit:     "enemy_hit",
	EventKill:         "kill",
	EventPlayerHit:    "player_hit",
	EventSaved:        "saved",
	EventDodge:        "dodge",
	EventStanceSwitch: "stance_switch",
	EventArrow:        "arrow",
	EventPickup:       "pickup",
	EventAthena:       "athena",
	EventAthenaEnd:    "athena_end",
	EventZeus:         "zeus",
	EventLightning:    "lightning",
	EventPlayerDown:   "player_down",
	EventWon:          "won",
}

func (k EventKind) String() string {
	if int(k) < len(eventNames) {
		return eventNames[k]
	}
	return "unknown"
}

// Event is one notable occurrence. Value carries a kind-specific number:
// damage for hits, heal for pickups, enemy count for waves.
type Event struct {
	Kind  EventKind
	Actor ActorID
	Pos   core.Vec2
	Value float64
}

func (w *World) emit(e Event) {
	w.events = append(w.events, e)
}

func discardLogger() *log.Logger {
	return log.New(io.Discard)
}
