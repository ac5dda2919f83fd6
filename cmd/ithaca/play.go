package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/ithaca/internal/level"
	"github.com/vovakirdan/ithaca/internal/platform/tui"
	"github.com/vovakirdan/ithaca/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play <level>",
	Short: "Play a level",
	Long: `Start a siege on the specified level.

Controls:
  WASD/Arrows       - Move (hold Shift to sprint)
  Mouse             - Aim
  J/F/Left click    - Shoot (bow) or slash (polearm)
  K/G/Right click   - Thrust (polearm)
  Space             - Dodge
  R/Tab             - Switch between bow and polearm
  E                 - Athena's blessing
  Q                 - Zeus' lightning at the pointer
  P                 - Pause
  Esc               - Back (while paused or after the run)
  R/Enter           - Restart (after the run)
  Ctrl+S            - Screenshot
  Ctrl+C            - Quit

Difficulty options:
  easy   - Suitors start weak and grow stronger
  normal - Suitors start at 30% strength
  hard   - Suitors start at 70% strength, Odysseus has less health
  fixed  - No progression

Examples:
  ithaca play hall
  ithaca play courtyard --difficulty easy
  ithaca play hall --seed 42 --time-scale 0.5
  ithaca play hall --config ./my-ithaca.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, args []string) {
	levelID := args[0]

	lvl, err := level.Get(levelID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", unknownLevel(levelID))
		os.Exit(1)
	}

	logger, err := newLogger("ithaca")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	settings, err := loadSettings(logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Open run storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open run database: %v\n", err)
		// Continue without storage - the siege still works
		store = nil
	}

	_, runErr := tui.Run(lvl, store, settings)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
