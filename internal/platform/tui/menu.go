package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/ithaca/internal/config"
	"github.com/vovakirdan/ithaca/internal/level"
	"github.com/vovakirdan/ithaca/internal/storage"
)

var menuPresets = []config.DifficultyPreset{
	config.DifficultyEasy,
	config.DifficultyNormal,
	config.DifficultyHard,
	config.DifficultyFixed,
}

// MenuItem is a selectable level.
type MenuItem struct {
	Level     level.Info
	BestKills int
}

// MenuModel is the Bubble Tea model for the level picker.
type MenuModel struct {
	items      []MenuItem
	cursor     int
	preset     int
	width      int
	height     int
	keyMapper  *KeyMapper
	quitting   bool
	selected   *MenuItem
	openBoard  bool
	standalone bool
}

// NewMenuModel lists every registered level with its best kill count.
func NewMenuModel(store *storage.Store, width, height int, difficulty config.DifficultyPreset) MenuModel {
	infos := level.List()
	items := make([]MenuItem, len(infos))
	for i, info := range infos {
		items[i] = MenuItem{Level: info}
		if store != nil {
			if best, err := store.BestKills(info.ID); err == nil {
				items[i].BestKills = best
			}
		}
	}

	preset := 1
	for i, p := range menuPresets {
		if p == difficulty {
			preset = i
		}
	}

	return MenuModel{
		items:     items,
		preset:    preset,
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(0),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}

	return m, nil
}

func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionLeft:
		m.preset = (m.preset + len(menuPresets) - 1) % len(menuPresets)

	case MenuActionRight:
		m.preset = (m.preset + 1) % len(menuPresets)

	case MenuActionSelect:
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
			return m, m.exit()
		}

	case MenuActionBoard:
		m.openBoard = true
		return m, m.exit()
	}

	return m, nil
}

// exit quits a standalone program; inside a session the parent model takes
// over.
func (m MenuModel) exit() tea.Cmd {
	if m.standalone {
		return tea.Quit
	}
	return nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	activeStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(titleStyle.Render(centerText("  I T H A C A  ", m.width)))
	b.WriteString("\n\n")
	b.WriteString(dimStyle.Render(centerText("Choose the ground for the reckoning", m.width)))
	b.WriteString("\n\n")

	for i, item := range m.items {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		goal := fmt.Sprintf("%d suitors", item.Level.Suitors)
		switch {
		case item.Level.Endless:
			goal = "endless"
		case item.Level.Suitors == 0:
			goal = "full siege"
		}
		line := fmt.Sprintf("%s%-28s %-12s best %d", cursor, item.Level.Name, goal, item.BestKills)
		line = centerText(line, m.width)
		if i == m.cursor {
			line = titleStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	tabs := make([]string, len(menuPresets))
	for i, p := range menuPresets {
		if i == m.preset {
			tabs[i] = activeStyle.Render(" " + string(p) + " ")
		} else {
			tabs[i] = dimStyle.Render(" " + string(p) + " ")
		}
	}
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, strings.Join(tabs, " ")))
	b.WriteString("\n\n")

	controls := "Up/Down: level  |  Left/Right: difficulty  |  Enter: play  |  Tab: runs  |  Q: quit"
	b.WriteString(dimStyle.Render(centerText(controls, m.width)))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// Difficulty returns the preset chosen in the menu.
func (m MenuModel) Difficulty() config.DifficultyPreset {
	return menuPresets[m.preset]
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsBoard returns true if user requested the run board.
func (m MenuModel) WantsBoard() bool {
	return m.openBoard
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	n := lipgloss.Width(text)
	if n >= width {
		return text
	}
	return strings.Repeat(" ", (width-n)/2) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	LevelID    string
	Difficulty config.DifficultyPreset
	Width      int
	Height     int
	WantsBoard bool
	Quit       bool
}

// RunMenu runs the level picker and returns the selection.
func RunMenu(store *storage.Store, width, height int, difficulty config.DifficultyPreset) (MenuResult, error) {
	model := NewMenuModel(store, width, height, difficulty)
	model.standalone = true

	p := tea.NewProgram(model, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return MenuResult{Quit: true}, err
	}

	m, ok := final.(MenuModel)
	if !ok {
		return MenuResult{Quit: true}, nil
	}

	result := MenuResult{
		Difficulty: m.Difficulty(),
		Width:      m.width,
		Height:     m.height,
	}
	switch {
	case m.WantsBoard():
		result.WantsBoard = true
	case m.IsQuitting() || m.Selected() == nil:
		result.Quit = true
	default:
		result.LevelID = m.Selected().Level.ID
	}
	return result, nil
}
