package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/ithaca/internal/config"
	"github.com/vovakirdan/ithaca/internal/core"
	"github.com/vovakirdan/ithaca/internal/game"
	"github.com/vovakirdan/ithaca/internal/level"
	"github.com/vovakirdan/ithaca/internal/storage"
)

// Settings are shared by every run started from one process or SSH server.
type Settings struct {
	Runtime    core.RuntimeConfig
	Game       config.GameConfig // before the difficulty preset is applied
	Difficulty config.DifficultyPreset
	HoldTicks  int
	Logger     *log.Logger
}

// GameConfig returns the game config with the difficulty preset applied.
func (s Settings) GameConfig() config.GameConfig {
	cfg := s.Game
	if s.Difficulty != "" {
		config.ApplyPreset(&cfg, s.Difficulty)
	}
	return cfg
}

func (s Settings) logger() *log.Logger {
	if s.Logger == nil {
		return log.Default()
	}
	return s.Logger
}

// NewWorld starts a run of lvl with the given seed.
func (s Settings) NewWorld(lvl level.Level, seed int64) (*game.World, error) {
	return game.NewWorld(game.Options{
		Config:    s.GameConfig(),
		Level:     lvl,
		Seed:      seed,
		TimeScale: s.Runtime.TimeScale,
		Logger:    s.Logger,
	})
}

// Model is the Bubble Tea model for one player's siege.
type Model struct {
	settings Settings
	lvl      level.Level
	terrain  terrain
	world    *game.World
	screen   *core.Screen
	store    *storage.Store
	keys     *KeyMapper
	state    core.GameState

	loop       int64
	standalone bool // quit the program instead of returning to a menu
	saved      bool
	quitting   bool
	backToMenu bool
}

// NewModel builds a model with a fresh world for lvl.
func NewModel(lvl level.Level, store *storage.Store, settings Settings) (Model, error) {
	seed := settings.Runtime.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	world, err := settings.NewWorld(lvl, seed)
	if err != nil {
		return Model{}, err
	}

	return Model{
		settings: settings,
		lvl:      lvl,
		terrain:  newTerrain(lvl),
		world:    world,
		screen:   core.NewScreen(settings.Runtime.ScreenW, settings.Runtime.ScreenH),
		store:    store,
		keys:     NewKeyMapper(settings.HoldTicks),
		state:    world.State(),
		loop:     newLoopID(),
	}, nil
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.settings.Runtime.TickRate, m.loop)
}

// Update handles messages and advances the world on ticks.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.keys.HandleMouse(msg)
		return m, nil

	case tea.WindowSizeMsg:
		m.settings.Runtime.ScreenW = msg.Width
		m.settings.Runtime.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		if msg.Loop != m.loop {
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.state.GameOver {
		switch msg.String() {
		case "r", "enter":
			return m.restart()
		}
	}

	switch m.keys.HandleKey(msg) {
	case core.ActionQuit:
		m.recordRun(storage.OutcomeQuit)
		m.quitting = true
		return m, tea.Quit
	case core.ActionBack:
		if m.state.GameOver || m.state.Paused {
			m.recordRun(storage.OutcomeQuit)
			m.backToMenu = true
			if m.standalone {
				return m, tea.Quit
			}
		}
	}
	return m, nil
}

func (m Model) restart() (tea.Model, tea.Cmd) {
	world, err := m.settings.NewWorld(m.lvl, time.Now().UnixNano())
	if err != nil {
		m.settings.logger().Error("cannot restart", "level", m.lvl.ID, "error", err)
		return m, nil
	}
	m.world = world
	m.state = world.State()
	m.saved = false
	m.keys.Reset()
	return m, nil
}

func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting || m.backToMenu {
		return m, nil
	}

	in := m.keys.Frame(m.camera(), m.aim())
	result := m.world.Step(in)
	m.state = result.State

	if m.state.GameOver {
		outcome := storage.OutcomeLost
		if m.state.Won {
			outcome = storage.OutcomeWon
		}
		m.recordRun(outcome)
	}

	return m, tickCmd(m.settings.Runtime.TickRate, m.loop)
}

// recordRun saves the run once. Quitting before the first tick records
// nothing.
func (m *Model) recordRun(outcome storage.Outcome) {
	if m.saved || m.world.Ticks() == 0 {
		return
	}
	m.saved = true
	if m.store == nil {
		return
	}

	difficulty := string(m.settings.Difficulty)
	_, err := m.store.SaveRun(storage.Run{
		LevelID:    m.lvl.ID,
		Difficulty: difficulty,
		Outcome:    outcome,
		Kills:      m.world.Kills(),
		Ticks:      m.world.Ticks(),
		Seed:       m.world.Seed(),
	})
	if err != nil {
		m.settings.logger().Warn("could not save run", "level", m.lvl.ID, "error", err)
	}
}

// aim is the keyboard pointer: the nearest living suitor, or a point ahead
// of the player when none is left.
func (m Model) aim() core.Vec2 {
	pc := m.world.Player().Center()
	best, found := core.Vec2{}, false
	bestDist := 0.0
	for _, e := range m.world.Enemies() {
		if e.Vitals.Dead() {
			continue
		}
		if d := pc.Distance(e.Center()); !found || d < bestDist {
			best, bestDist, found = e.Center(), d, true
		}
	}
	if found {
		return best
	}
	return pc.Add(core.V(m.lvl.CellSize*4, 0))
}

func (m Model) camera() Camera {
	h := max(m.screen.Height()-hudRows, 0)
	return NewCamera(m.lvl, m.world.Player().Center(), m.screen.Width(), h, 0)
}

func (m *Model) draw() {
	m.screen.Clear()
	cam := m.camera()
	DrawWorld(m.screen, m.terrain, m.world.Snapshot(), cam)
	DrawHUD(m.screen, cam.Top+cam.Height, m.world.HUD())

	switch {
	case m.state.GameOver && m.state.Won:
		drawBanner(m.screen, cam, "ITHACA IS FREE",
			fmt.Sprintf("%d suitors slain", m.state.Kills), "R: again  Esc: menu  Ctrl+C: quit")
	case m.state.GameOver:
		drawBanner(m.screen, cam, "ODYSSEUS HAS FALLEN",
			fmt.Sprintf("%d suitors slain", m.state.Kills), "R: again  Esc: menu  Ctrl+C: quit")
	case m.state.Paused:
		drawBanner(m.screen, cam, "PAUSED", "P: resume  Esc: menu")
	}
}

// saveScreenshot writes the current frame as plain text.
func (m *Model) saveScreenshot() {
	m.draw()

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".ithaca", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.lvl.ID, timestamp))
	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current frame.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	m.draw()
	return RenderScreen(m.screen)
}

// World returns the running world.
func (m Model) World() *game.World { return m.world }

// IsQuitting returns true if the user asked to quit entirely.
func (m Model) IsQuitting() bool { return m.quitting }

// BackToMenu returns true if the user asked to return to the menu.
func (m Model) BackToMenu() bool { return m.backToMenu }

// programOptions are shared by local and SSH programs.
func programOptions() []tea.ProgramOption {
	return []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	}
}

// Run plays lvl in the local terminal until the user quits or returns to the
// menu. It reports whether the user asked for the menu.
func Run(lvl level.Level, store *storage.Store, settings Settings) (backToMenu bool, err error) {
	model, err := NewModel(lvl, store, settings)
	if err != nil {
		return false, err
	}
	model.standalone = true

	p := tea.NewProgram(model, programOptions()...)
	final, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(Model)
	return ok && m.BackToMenu(), nil
}
