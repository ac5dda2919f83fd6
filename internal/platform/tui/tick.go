// Package tui runs the siege in a terminal with Bubble Tea: the fixed-rate
// tick loop, key and mouse mapping, the colored map renderer, the level menu,
// the run board and the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a simulation tick. Loop identifies the tick
// chain so a model ignores ticks still in flight from a previous screen.
type TickMsg struct {
	At   time.Time
	Loop int64
}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int, loop int64) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{At: t, Loop: loop}
	})
}

// newLoopID returns an identifier for a fresh tick chain.
func newLoopID() int64 {
	return time.Now().UnixNano()
}
