package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/ithaca/internal/core"
	"github.com/vovakirdan/ithaca/internal/level"
	"github.com/vovakirdan/ithaca/internal/replay"
)

// PlaybackModel shows a recorded trace frame by frame.
type PlaybackModel struct {
	trace    replay.Trace
	lvl      level.Level
	terrain  terrain
	screen   *core.Screen
	tickRate int
	loop     int64
	index    int
	paused   bool
	quitting bool
}

// NewPlaybackModel prepares a trace recorded on lvl.
func NewPlaybackModel(trace replay.Trace, lvl level.Level, width, height, tickRate int) PlaybackModel {
	return PlaybackModel{
		trace:    trace,
		lvl:      lvl,
		terrain:  newTerrain(lvl),
		screen:   core.NewScreen(width, height),
		tickRate: tickRate,
		loop:     newLoopID(),
	}
}

// frameRate plays one snapshot per recorded interval at real speed.
func (m PlaybackModel) frameRate() int {
	every := max(m.trace.Header.Every, 1)
	return max(m.tickRate/every, 1)
}

// Init starts playback.
func (m PlaybackModel) Init() tea.Cmd {
	return tickCmd(m.frameRate(), m.loop)
}

// Update handles playback controls.
func (m PlaybackModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	last := len(m.trace.Snapshots) - 1

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.quitting = true
			return m, tea.Quit
		case " ", "p":
			m.paused = !m.paused
		case "right", "l":
			m.index = min(m.index+1, max(last, 0))
		case "left", "h":
			m.index = max(m.index-1, 0)
		case "home", "g":
			m.index = 0
		}

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, msg.Height)

	case TickMsg:
		if msg.Loop != m.loop {
			return m, nil
		}
		if !m.paused && m.index < last {
			m.index++
		}
		return m, tickCmd(m.frameRate(), m.loop)
	}

	return m, nil
}

// View draws the current snapshot.
func (m PlaybackModel) View() string {
	if m.quitting {
		return ""
	}
	m.screen.Clear()
	if len(m.trace.Snapshots) == 0 {
		m.screen.DrawTextCentered(m.screen.Height()/2, "empty trace", core.ColorAlert)
		return RenderScreen(m.screen)
	}

	snap := m.trace.Snapshots[m.index]
	h := max(m.screen.Height()-hudRows, 0)
	cam := NewCamera(m.lvl, core.V(snap.Player.X, snap.Player.Y), m.screen.Width(), h, 0)
	DrawWorld(m.screen, m.terrain, snap, cam)

	y := cam.Top + cam.Height
	m.screen.DrawText(0, y, fmt.Sprintf("Replay %s  seed %d  %s", m.trace.Header.Level, m.trace.Header.Seed, m.trace.Header.Difficulty), core.ColorTitle)
	status := fmt.Sprintf("Tick %d  Kills %d  HP %.0f  [%d/%d]", snap.Tick, snap.Kills, snap.Player.HP, m.index+1, len(m.trace.Snapshots))
	if m.paused {
		status += "  paused"
	}
	m.screen.DrawText(0, y+1, status+"  Space: pause  Left/Right: step  Q: quit", core.ColorDefault)
	return RenderScreen(m.screen)
}

// RunPlayback plays trace in the local terminal.
func RunPlayback(trace replay.Trace, lvl level.Level, width, height, tickRate int) error {
	p := tea.NewProgram(NewPlaybackModel(trace, lvl, width, height, tickRate), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
