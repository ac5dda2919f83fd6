package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/ithaca/internal/core"
)

// colorStyles maps cell roles to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:   lipgloss.NewStyle(),
	core.ColorDim:       lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	core.ColorWall:      lipgloss.NewStyle().Foreground(lipgloss.Color("180")),
	core.ColorSpawn:     lipgloss.NewStyle().Foreground(lipgloss.Color("94")),
	core.ColorPlayer:    lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true),
	core.ColorPolearm:   lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true),
	core.ColorHurt:      lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
	core.ColorSuitor:    lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorCorpse:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	core.ColorArrow:     lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorHostile:   lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorFood:      lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorLightning: lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Bold(true),
	core.ColorRescue:    lipgloss.NewStyle().Foreground(lipgloss.Color("117")).Bold(true),
	core.ColorHP:        lipgloss.NewStyle().Foreground(lipgloss.Color("160")),
	core.ColorShield:    lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
	core.ColorStamina:   lipgloss.NewStyle().Foreground(lipgloss.Color("142")),
	core.ColorTitle:     lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Bold(true),
	core.ColorAlert:     lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")).Bold(true),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells sharing a role are rendered as one run.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			run.Reset()
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
