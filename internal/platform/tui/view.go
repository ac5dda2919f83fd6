package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/ithaca/internal/core"
	"github.com/vovakirdan/ithaca/internal/game"
	"github.com/vovakirdan/ithaca/internal/level"
	"github.com/vovakirdan/ithaca/internal/nav"
)

// hudRows is the number of screen rows below the map.
const hudRows = 2

// terrain is the static part of a level, prepared once per run.
type terrain struct {
	cols, rows int
	cells      []core.Cell
}

func newTerrain(lvl level.Level) terrain {
	t := terrain{cols: lvl.Cols, rows: lvl.Rows, cells: make([]core.Cell, lvl.Cols*lvl.Rows)}
	for i := range t.cells {
		t.cells[i] = core.Cell{Rune: '·', Color: core.ColorDim}
	}
	mark := func(ps []nav.Point, c core.Cell) {
		for _, p := range ps {
			if p.Col >= 0 && p.Col < t.cols && p.Row >= 0 && p.Row < t.rows {
				t.cells[p.Row*t.cols+p.Col] = c
			}
		}
	}
	mark(lvl.Spawns, core.Cell{Rune: '+', Color: core.ColorSpawn})
	mark(lvl.Blocked, core.Cell{Rune: '#', Color: core.ColorWall})
	return t
}

func (t terrain) at(col, row int) (core.Cell, bool) {
	if col < 0 || col >= t.cols || row < 0 || row >= t.rows {
		return core.Cell{}, false
	}
	return t.cells[row*t.cols+col], true
}

// DrawWorld draws the terrain and every entity of snap into s through cam.
func DrawWorld(s *core.Screen, t terrain, snap game.Snapshot, cam Camera) {
	for y := cam.Top; y < cam.Top+cam.Height; y++ {
		for x := 0; x < cam.Width; x++ {
			if c, ok := t.at(x+cam.Col, y-cam.Top+cam.Row); ok {
				s.SetColored(x, y, c.Rune, c.Color)
			}
		}
	}

	put := func(px, py float64, r rune, c core.Color) {
		x, y := cam.ToScreen(core.V(px, py))
		if cam.Visible(x, y) {
			s.SetColored(x, y, r, c)
		}
	}

	for _, pk := range snap.Pickups {
		c := core.ColorFood
		if pk.Alpha < 1 {
			c = core.ColorDim
		}
		put(pk.X, pk.Y, '%', c)
	}

	// Corpses first so living suitors draw over them.
	for _, e := range snap.Enemies {
		if e.HP <= 0 {
			put(e.X, e.Y, 'x', core.ColorCorpse)
		}
	}
	for _, e := range snap.Enemies {
		if e.HP <= 0 {
			continue
		}
		r, c := 's', core.ColorSuitor
		if strings.HasPrefix(e.Clip, "suitor_slash") {
			r = 'S'
		}
		if e.Staggered {
			c = core.ColorHurt
		}
		put(e.X, e.Y, r, c)
	}

	for _, a := range snap.Arrows {
		c := core.ColorArrow
		switch {
		case a.Alpha < 1:
			c = core.ColorDim
		case a.Hostile:
			c = core.ColorHostile
		}
		put(a.X, a.Y, arrowGlyph(a.Angle), c)
	}

	p := snap.Player
	pr, pc := '@', core.ColorPlayer
	if strings.HasPrefix(p.Clip, "pol_") {
		pc = core.ColorPolearm
	}
	if p.Staggered {
		pc = core.ColorHurt
	}
	if p.HP <= 0 {
		pr = 'X'
	}
	put(p.X, p.Y, pr, pc)

	for _, fx := range snap.Effects {
		switch fx.Kind {
		case "lightning":
			put(fx.X, fx.Y, 'Z', core.ColorLightning)
			if fx.Frame >= 8 {
				d := 2 * cam.CellSize
				for _, o := range [4]core.Vec2{{X: -d, Y: -d}, {X: d, Y: -d}, {X: -d, Y: d}, {X: d, Y: d}} {
					put(fx.X+o.X, fx.Y+o.Y, '*', core.ColorLightning)
				}
			}
		case "rescue":
			put(fx.X, fx.Y-cam.CellSize, '+', core.ColorRescue)
		}
	}
}

// arrowGlyph picks a line character for a flight angle. Screen y grows
// downward, so a positive angle leans right-down.
func arrowGlyph(angle float64) rune {
	a := math.Mod(angle, math.Pi)
	if a < 0 {
		a += math.Pi
	}
	switch {
	case a < math.Pi/8 || a >= 7*math.Pi/8:
		return '-'
	case a < 3*math.Pi/8:
		return '\\'
	case a < 5*math.Pi/8:
		return '|'
	default:
		return '/'
	}
}

// DrawHUD draws gauges and counters on the two rows starting at y.
func DrawHUD(s *core.Screen, y int, h game.HUD) {
	x := 0
	gauge := func(label string, v, maxV float64, c core.Color) {
		s.DrawText(x, y, label, core.ColorDefault)
		x += len(label) + 1
		frac := 0.0
		if maxV > 0 {
			frac = v / maxV
		}
		s.DrawBar(x, y, 10, frac, c)
		x += 11
		txt := fmt.Sprintf("%3.0f", v)
		s.DrawText(x, y, txt, c)
		x += len(txt) + 2
	}
	gauge("HP", h.HP, h.MaxHP, core.ColorHP)
	if h.MaxShield > 0 {
		gauge("SH", h.Shield, h.MaxShield, core.ColorShield)
	}
	gauge("ST", h.Stamina, h.MaxStamina, core.ColorStamina)
	s.DrawText(x, y, strings.ToUpper(h.Stance), core.ColorTitle)

	kills := fmt.Sprintf("Kills %d", h.Kills)
	if h.Total > 0 {
		kills += fmt.Sprintf("/%d", h.Total)
	}
	secs := int(h.Elapsed)
	parts := []string{
		kills,
		fmt.Sprintf("Alive %d", h.Alive),
		fmt.Sprintf("%02d:%02d", secs/60, secs%60),
		"Athena " + cooldown(h.AthenaCooldown),
		"Zeus " + cooldown(h.ZeusCooldown),
	}
	if h.BuffRemaining > 0 {
		parts = append(parts, fmt.Sprintf("Blessed %.0fs", h.BuffRemaining/60))
	}
	s.DrawText(0, y+1, strings.Join(parts, "  "), core.ColorDefault)
}

func cooldown(ticks float64) string {
	if ticks <= 0 {
		return "ready"
	}
	return fmt.Sprintf("%.0fs", math.Ceil(ticks/60))
}

// drawBanner centers a message over the map.
func drawBanner(s *core.Screen, cam Camera, lines ...string) {
	y := cam.Top + cam.Height/2 - len(lines)/2
	for i, l := range lines {
		c := core.ColorDefault
		if i == 0 {
			c = core.ColorAlert
		}
		s.DrawTextCentered(y+i, " "+l+" ", c)
	}
}
