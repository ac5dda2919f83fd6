// Package level describes siege arenas: the collision grid, wall geometry,
// enemy spawn points and the player's start cell.
//
// Levels are written as YAML files carrying an ASCII map. Built-in levels are
// embedded and registered at init; more can be loaded from disk.
package level

import (
	"errors"

	"github.com/vovakirdan/ithaca/internal/core"
	"github.com/vovakirdan/ithaca/internal/nav"
)

// DefaultCellSize is the world size of one map character.
const DefaultCellSize = 9.0

var (
	// ErrNoPlayerStart is returned when a map has no 'P' cell.
	ErrNoPlayerStart = errors.New("level: map has no player start")
	// ErrUnknownLevel is returned by Get for an unregistered ID.
	ErrUnknownLevel = errors.New("level: unknown level")
)

// Level is a parsed arena.
type Level struct {
	ID       string
	Name     string
	Cols     int
	Rows     int
	CellSize float64
	Suitors  int  // kills needed to win; 0 uses the configured total
	Endless  bool // never won, played for kills
	Blocked  []nav.Point
	Spawns   []nav.Point
	Start    nav.Point
	FilePath string // empty for built-in levels
}

// Grid builds the occupancy grid used by the pathfinder.
func (l *Level) Grid() *nav.Grid {
	return nav.NewGrid(l.Cols, l.Rows, l.CellSize, l.Blocked)
}

// Walls returns one rectangle per blocked cell.
func (l *Level) Walls() []core.Rect {
	walls := make([]core.Rect, len(l.Blocked))
	for i, p := range l.Blocked {
		walls[i] = core.NewRect(float64(p.Col)*l.CellSize, float64(p.Row)*l.CellSize, l.CellSize, l.CellSize)
	}
	return walls
}

// Bounds returns the world rectangle covered by the map.
func (l *Level) Bounds() core.Rect {
	return core.NewRect(0, 0, float64(l.Cols)*l.CellSize, float64(l.Rows)*l.CellSize)
}

// SpawnPositions returns the top-left corner of every spawn cell.
func (l *Level) SpawnPositions() []core.Vec2 {
	out := make([]core.Vec2, len(l.Spawns))
	for i, p := range l.Spawns {
		out[i] = core.V(float64(p.Col)*l.CellSize, float64(p.Row)*l.CellSize)
	}
	return out
}

// StartPosition returns the center of the player start cell.
func (l *Level) StartPosition() core.Vec2 {
	return core.V((float64(l.Start.Col)+0.5)*l.CellSize, (float64(l.Start.Row)+0.5)*l.CellSize)
}
