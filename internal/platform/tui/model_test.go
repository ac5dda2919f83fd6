package tui

import (
	"io"
	"math"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/ithaca/internal/config"
	"github.com/vovakirdan/ithaca/internal/core"
	"github.com/vovakirdan/ithaca/internal/level"
	"github.com/vovakirdan/ithaca/internal/storage"
)

const modelRoom = `
##########
#........#
#...P....#
#........#
##########
`

func testSettings() Settings {
	rt := core.DefaultConfig()
	rt.Seed = 5
	return Settings{
		Runtime: rt,
		Game:    config.DefaultConfig(),
		Logger:  log.New(io.Discard),
	}
}

func newTestModel(t *testing.T, store *storage.Store) Model {
	t.Helper()
	lvl, err := level.ParseMap(modelRoom)
	if err != nil {
		t.Fatalf("ParseMap() failed: %v", err)
	}
	lvl.ID = "room"
	m, err := NewModel(lvl, store, testSettings())
	if err != nil {
		t.Fatalf("NewModel() failed: %v", err)
	}
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	out, ok := next.(Model)
	if !ok {
		t.Fatalf("Update() returned %T, want Model", next)
	}
	return out
}

func tick(t *testing.T, m Model, n int) Model {
	t.Helper()
	for range n {
		m = update(t, m, TickMsg{Loop: m.loop})
	}
	return m
}

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestModelTicksOnlyItsOwnLoop(t *testing.T) {
	m := newTestModel(t, nil)

	m = tick(t, m, 3)
	if got := m.World().Ticks(); got != 3 {
		t.Fatalf("Ticks() = %d, want 3", got)
	}

	m = update(t, m, TickMsg{Loop: m.loop + 1})
	if got := m.World().Ticks(); got != 3 {
		t.Errorf("Ticks() = %d, stale ticks are ignored", got)
	}
}

func TestModelHeldKeyMovesPlayer(t *testing.T) {
	m := newTestModel(t, nil)
	start := m.World().Player().Center()

	m = update(t, m, runeKey("d"))
	m = tick(t, m, 5)

	if got := m.World().Player().Center().X; math.Abs(got-(start.X+5)) > 1e-9 {
		t.Errorf("player X = %v, want %v", got, start.X+5)
	}
}

func TestModelQuitRecordsRun(t *testing.T) {
	store := openStore(t)
	m := newTestModel(t, store)

	m = tick(t, m, 10)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	m = next.(Model)

	if !m.IsQuitting() || cmd == nil {
		t.Fatal("ctrl+c should quit with a command")
	}

	runs, err := store.RecentRuns(10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("got %d runs, want 1", len(runs))
	}
	r := runs[0]
	if r.LevelID != "room" || r.Outcome != storage.OutcomeQuit || r.Ticks != 10 || r.Seed != 5 {
		t.Errorf("recorded run = %+v", r)
	}
}

func TestModelQuitBeforeFirstTickRecordsNothing(t *testing.T) {
	store := openStore(t)
	m := newTestModel(t, store)

	update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})

	runs, err := store.RecentRuns(10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("got %d runs, want none", len(runs))
	}
}

func TestModelBackNeedsPause(t *testing.T) {
	m := newTestModel(t, nil)
	m = tick(t, m, 1)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.BackToMenu() {
		t.Error("esc during play does nothing")
	}

	m = update(t, m, runeKey("p"))
	m = tick(t, m, 1)
	if !m.World().State().Paused {
		t.Fatal("p should pause")
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.BackToMenu() {
		t.Error("esc while paused should return to the menu")
	}
}

func TestModelView(t *testing.T) {
	m := newTestModel(t, nil)
	m = update(t, m, tea.WindowSizeMsg{Width: 40, Height: 12})

	view := m.View()

	for _, want := range []string{"@", "Kills 0/108"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q", want)
		}
	}
}

func TestSettingsApplyPreset(t *testing.T) {
	s := testSettings()
	s.Difficulty = config.DifficultyHard

	cfg := s.GameConfig()

	if cfg.Player.MaxHP != 75 {
		t.Errorf("preset MaxHP = %v, want 75", cfg.Player.MaxHP)
	}
	if s.Game.Player.MaxHP != 100 {
		t.Errorf("base MaxHP = %v, the base config is untouched", s.Game.Player.MaxHP)
	}
}

func TestSessionFlow(t *testing.T) {
	store := openStore(t)
	s := testSettings()
	s.Runtime.ScreenW, s.Runtime.ScreenH = 100, 30
	var m tea.Model = NewSessionModel(store, s)

	step := func(msg tea.Msg) {
		t.Helper()
		m, _ = m.Update(msg)
	}

	step(tea.KeyMsg{Type: tea.KeyTab})
	if got := m.(SessionModel).screen; got != screenBoard {
		t.Fatalf("tab: screen = %v, want board", got)
	}
	if !strings.Contains(m.View(), "No runs recorded yet") {
		t.Error("empty board should say so")
	}

	step(tea.KeyMsg{Type: tea.KeyEsc})
	if got := m.(SessionModel).screen; got != screenMenu {
		t.Fatalf("esc: screen = %v, want menu", got)
	}

	step(tea.KeyMsg{Type: tea.KeyEnter})
	sess := m.(SessionModel)
	if sess.screen != screenGame {
		t.Fatalf("enter: screen = %v, want game", sess.screen)
	}
	if want := level.List()[0].ID; sess.game.lvl.ID != want {
		t.Errorf("started level %q, want %q", sess.game.lvl.ID, want)
	}

	step(tea.KeyMsg{Type: tea.KeyCtrlC})
	if !m.(SessionModel).quitting {
		t.Error("ctrl+c should quit the session")
	}
}
