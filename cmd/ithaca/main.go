// ithaca is a terminal action game: Odysseus against the suitors, one tick at
// a time.
//
// Usage:
//
//	ithaca levels              - List available levels
//	ithaca play <level>        - Play a level
//	ithaca menu                - Pick levels interactively
//	ithaca sim <level>         - Run a level headless, optionally recording a trace
//	ithaca replay <trace>      - Watch or verify a recorded trace
//	ithaca runs [level]        - Show the run history
//	ithaca serve               - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible runs
//	--db <path>           - Set database path (default: ~/.ithaca/runs.db)
//	--config <path>       - Custom game config YAML
//	--difficulty <preset> - easy, normal, hard or fixed
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/ithaca/internal/config"
	"github.com/vovakirdan/ithaca/internal/core"
	"github.com/vovakirdan/ithaca/internal/level"
	"github.com/vovakirdan/ithaca/internal/platform/tui"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagTimeScale  float64
	flagLogLevel   string
	flagConfig     string
	flagDifficulty string
	flagHoldTicks  int
	flagLevelDir   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "ithaca",
	Short: "Ithaca - clear the hall of suitors in your terminal",
	Long: `Ithaca is a top-down action game for the terminal. Odysseus has come
home; the suitors have not left.

Available commands:
  levels   - Show all available levels
  play     - Play a specific level directly
  menu     - Interactive level picker
  sim      - Run a level headless
  replay   - Watch or verify a recorded trace
  runs     - View the run history
  serve    - Start SSH server for remote play

Examples:
  ithaca levels
  ithaca play hall
  ithaca play hall --difficulty hard
  ithaca sim hall --ticks 3600 --trace hall.trace
  ithaca replay hall.trace
  ithaca serve --ssh :2222`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		if flagLevelDir == "" {
			return nil
		}
		return registerLevelDir(flagLevelDir)
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "~/.ithaca/runs.db", "Path to run history database")
	pf.Float64Var(&flagTimeScale, "time-scale", 1, "Time dilation applied to every tick")
	pf.StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	pf.StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	pf.IntVar(&flagHoldTicks, "hold-ticks", tui.DefaultHoldTicks, "Ticks a key stays held after its last key event")
	pf.StringVar(&flagLevelDir, "levels", "", "Directory with extra level YAML files")

	// Add subcommands
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(serveCmd)
}

// newLogger builds the process logger from --log-level.
func newLogger(prefix string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(strings.ToLower(flagLogLevel))
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           lvl,
	}), nil
}

// loadSettings resolves the global flags into TUI settings.
func loadSettings(logger *log.Logger) (tui.Settings, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return tui.Settings{}, err
	}

	preset := config.DifficultyNormal
	if flagDifficulty != "" {
		p, ok := config.ParsePreset(flagDifficulty)
		if !ok {
			return tui.Settings{}, fmt.Errorf("unknown difficulty %q", flagDifficulty)
		}
		preset = p
	}

	width, height := terminalSize()
	return tui.Settings{
		Runtime: core.RuntimeConfig{
			ScreenW:   width,
			ScreenH:   height,
			TickRate:  flagFPS,
			Seed:      flagSeed,
			TimeScale: flagTimeScale,
		},
		Game:       cfg,
		Difficulty: preset,
		HoldTicks:  flagHoldTicks,
		Logger:     logger,
	}, nil
}

func terminalSize() (int, int) {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return width, height
}

// registerLevelDir adds every level under dir that is not already known.
func registerLevelDir(dir string) error {
	levels, err := level.LoadDir(dir)
	if err != nil {
		return err
	}
	for _, l := range levels {
		if level.Exists(l.ID) {
			fmt.Fprintf(os.Stderr, "Warning: skipping %s, level %q already exists\n", l.FilePath, l.ID)
			continue
		}
		level.Register(l)
	}
	return nil
}

func unknownLevel(id string) error {
	return fmt.Errorf("unknown level %q; run 'ithaca levels' to see available levels", id)
}
