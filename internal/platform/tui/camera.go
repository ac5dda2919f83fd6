package tui

import (
	"math"

	"github.com/vovakirdan/ithaca/internal/core"
	"github.com/vovakirdan/ithaca/internal/level"
)

// Camera maps level cells to screen cells, one character per map cell.
// A level smaller than the viewport is centered; a larger one scrolls with
// the focus point and stops at the level edges.
type Camera struct {
	CellSize float64
	Col, Row int // map cell drawn at the viewport's top-left corner
	Top      int // first screen row of the viewport
	Width    int
	Height   int
}

// NewCamera frames lvl in a width x height viewport starting at screen row
// top, following focus when the level does not fit.
func NewCamera(lvl level.Level, focus core.Vec2, width, height, top int) Camera {
	cs := lvl.CellSize
	if cs <= 0 {
		cs = level.DefaultCellSize
	}
	return Camera{
		CellSize: cs,
		Col:      frameAxis(lvl.Cols, width, int(math.Floor(focus.X/cs))),
		Row:      frameAxis(lvl.Rows, height, int(math.Floor(focus.Y/cs))),
		Top:      top,
		Width:    width,
		Height:   height,
	}
}

func frameAxis(size, view, focus int) int {
	if size <= view {
		return -(view - size) / 2
	}
	return core.Clamp(focus-view/2, 0, size-view)
}

// ToScreen returns the screen cell covering world point p.
func (c Camera) ToScreen(p core.Vec2) (x, y int) {
	col := int(math.Floor(p.X / c.CellSize))
	row := int(math.Floor(p.Y / c.CellSize))
	return col - c.Col, row - c.Row + c.Top
}

// ToWorld returns the world point at the center of screen cell (x, y).
func (c Camera) ToWorld(x, y int) core.Vec2 {
	col := x + c.Col
	row := y - c.Top + c.Row
	return core.V((float64(col)+0.5)*c.CellSize, (float64(row)+0.5)*c.CellSize)
}

// Visible reports whether screen cell (x, y) lies inside the viewport.
func (c Camera) Visible(x, y int) bool {
	return x >= 0 && x < c.Width && y >= c.Top && y < c.Top+c.Height
}
