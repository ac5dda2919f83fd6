// Package nav implements grid pathfinding for agents chasing a moving target.
//
// The occupancy grid is built once from level collision data and never
// changes afterwards, which is what makes the permanent path cache in
// Pathfinder sound.
package nav

import (
	"fmt"
	"math"

	"github.com/vovakirdan/ithaca/internal/core"
)

// Point is an integer grid coordinate.
type Point struct {
	Col, Row int
}

// String formats the point as "(col,row)".
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.Col, p.Row)
}

// Manhattan returns the 4-directional distance between p and o.
func (p Point) Manhattan(o Point) int {
	return abs(p.Col-o.Col) + abs(p.Row-o.Row)
}

// neighborOffsets lists expansion order: right, down, left, up.
var neighborOffsets = [4]Point{{1, 0}, {0, 1}, {-1, 0}, {0, -1}}

// Grid is an immutable binary occupancy map.
type Grid struct {
	cols, rows int
	cellSize   float64
	blocked    []bool
}

// NewGrid builds a grid of cols x rows cells, each cellSize world units wide,
// with the listed cells blocked. Blocked points outside the grid are ignored.
// Non-positive dimensions are a programmer error and panic.
func NewGrid(cols, rows int, cellSize float64, blocked []Point) *Grid {
	if cols <= 0 || rows <= 0 {
		panic(fmt.Sprintf("nav: grid must have positive dimensions, got %dx%d", cols, rows))
	}
	if cellSize <= 0 {
		panic(fmt.Sprintf("nav: cell size must be positive, got %v", cellSize))
	}

	g := &Grid{
		cols:     cols,
		rows:     rows,
		cellSize: cellSize,
		blocked:  make([]bool, cols*rows),
	}
	for _, p := range blocked {
		if g.InBounds(p) {
			g.blocked[g.index(p)] = true
		}
	}
	return g
}

// Cols returns the grid width in cells.
func (g *Grid) Cols() int { return g.cols }

// Rows returns the grid height in cells.
func (g *Grid) Rows() int { return g.rows }

// CellSize returns the world-space size of one cell.
func (g *Grid) CellSize() float64 { return g.cellSize }

// InBounds reports whether p lies inside the grid.
func (g *Grid) InBounds(p Point) bool {
	return p.Col >= 0 && p.Row >= 0 && p.Col < g.cols && p.Row < g.rows
}

// Blocked reports whether p is impassable. Points outside the grid are blocked.
func (g *Grid) Blocked(p Point) bool {
	if !g.InBounds(p) {
		return true
	}
	return g.blocked[g.index(p)]
}

// BlockedCount returns the number of blocked cells.
func (g *Grid) BlockedCount() int {
	n := 0
	for _, b := range g.blocked {
		if b {
			n++
		}
	}
	return n
}

// WorldToCell converts a world position to the cell containing it.
func (g *Grid) WorldToCell(v core.Vec2) Point {
	return Point{
		Col: int(math.Floor(v.X / g.cellSize)),
		Row: int(math.Floor(v.Y / g.cellSize)),
	}
}

// CellToWorld returns the top-left corner of the cell in world space.
func (g *Grid) CellToWorld(p Point) core.Vec2 {
	return core.V(float64(p.Col)*g.cellSize, float64(p.Row)*g.cellSize)
}

// CellRect returns the world-space rectangle covered by the cell.
func (g *Grid) CellRect(p Point) core.Rect {
	c := g.CellToWorld(p)
	return core.NewRect(c.X, c.Y, g.cellSize, g.cellSize)
}

// Bounds returns the world-space rectangle covered by the whole grid.
func (g *Grid) Bounds() core.Rect {
	return core.NewRect(0, 0, float64(g.cols)*g.cellSize, float64(g.rows)*g.cellSize)
}

func (g *Grid) index(p Point) int {
	return p.Row*g.cols + p.Col
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
