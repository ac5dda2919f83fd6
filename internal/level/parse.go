package level

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/ithaca/internal/nav"
)

// Map characters.
const (
	TileFloor  = '.'
	TileWall   = '#'
	TileSpawn  = 'S'
	TilePlayer = 'P'
)

// YAMLLevel is the on-disk level format.
type YAMLLevel struct {
	ID       string  `yaml:"id"`
	Name     string  `yaml:"name"`
	CellSize float64 `yaml:"cell_size,omitempty"`
	Suitors  int     `yaml:"suitors,omitempty"`
	Endless  bool    `yaml:"endless,omitempty"`
	Map      string  `yaml:"map"`
}

// Parse decodes a YAML level file.
func Parse(data []byte) (Level, error) {
	var yl YAMLLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Level{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if yl.ID == "" {
		return Level{}, fmt.Errorf("level: missing id")
	}

	lvl, err := ParseMap(yl.Map)
	if err != nil {
		return Level{}, fmt.Errorf("level %s: %w", yl.ID, err)
	}

	lvl.ID = yl.ID
	lvl.Name = yl.Name
	if lvl.Name == "" {
		lvl.Name = yl.ID
	}
	if yl.CellSize > 0 {
		lvl.CellSize = yl.CellSize
	}
	lvl.Suitors = yl.Suitors
	lvl.Endless = yl.Endless
	return lvl, nil
}

// ParseMap reads an ASCII map. Rows shorter than the widest are padded with
// floor. A space counts as floor. Exactly one player start is required.
func ParseMap(src string) (Level, error) {
	lines := strings.Split(strings.Trim(src, "\n"), "\n")
	for i := range lines {
		lines[i] = strings.TrimRight(lines[i], " \t\r")
	}

	cols := 0
	for _, line := range lines {
		cols = max(cols, len(line))
	}
	if cols == 0 {
		return Level{}, fmt.Errorf("empty map")
	}

	lvl := Level{Cols: cols, Rows: len(lines), CellSize: DefaultCellSize}
	hasStart := false

	for row, line := range lines {
		for col, ch := range []byte(line) {
			p := nav.Point{Col: col, Row: row}
			switch ch {
			case TileFloor, ' ':
			case TileWall:
				lvl.Blocked = append(lvl.Blocked, p)
			case TileSpawn:
				lvl.Spawns = append(lvl.Spawns, p)
			case TilePlayer:
				if hasStart {
					return Level{}, fmt.Errorf("second player start at %v", p)
				}
				hasStart = true
				lvl.Start = p
			default:
				return Level{}, fmt.Errorf("unknown tile %q at %v", ch, p)
			}
		}
	}

	if !hasStart {
		return Level{}, ErrNoPlayerStart
	}
	return lvl, nil
}
