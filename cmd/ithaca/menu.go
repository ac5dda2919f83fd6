package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/ithaca/internal/level"
	"github.com/vovakirdan/ithaca/internal/platform/tui"
	"github.com/vovakirdan/ithaca/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a level picker menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to pick a level, left/right to change difficulty,
Enter to start the siege. Esc after a run returns to the menu.

Controls:
  Up/Down/j/k     - Navigate menu
  Left/Right/h/l  - Change difficulty
  Enter/Space     - Select level
  Tab             - Run board
  Q               - Quit

Examples:
  ithaca menu
  ithaca menu --fps 30
  ithaca menu --db ./runs.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
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
		store = nil
	}

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(store, settings.Runtime.ScreenW, settings.Runtime.ScreenH, settings.Difficulty)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		// Keep any size and difficulty changes
		settings.Runtime.ScreenW = menuResult.Width
		settings.Runtime.ScreenH = menuResult.Height
		settings.Difficulty = menuResult.Difficulty

		if menuResult.Quit {
			break
		}

		if menuResult.WantsBoard {
			goBack, boardErr := tui.RunBoard(store, settings.Runtime.ScreenW, settings.Runtime.ScreenH)
			if boardErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", boardErr)
			}
			if goBack {
				continue // Back to menu
			}
			break // User quit from the board
		}

		lvl, err := level.Get(menuResult.LevelID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			continue
		}

		// Fresh seed for each run unless one was given
		if flagSeed == 0 {
			settings.Runtime.Seed = time.Now().UnixNano()
		}

		backToMenu, err := tui.Run(lvl, store, settings)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}
		if !backToMenu {
			break
		}
	}

	// Cleanup
	if store != nil {
		store.Close()
	}
}
