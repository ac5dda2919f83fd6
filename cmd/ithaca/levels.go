package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/ithaca/internal/level"
	"github.com/vovakirdan/ithaca/internal/storage"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List all available levels",
	Long: `Shows every built-in level plus those loaded with --levels, with the
recorded run statistics for each.`,
	Run: runLevels,
}

func runLevels(_ *cobra.Command, _ []string) {
	levels := level.List()

	if len(levels) == 0 {
		fmt.Println("No levels available.")
		return
	}

	// Stats are optional
	var stats map[string]*storage.LevelStats
	if store, err := storage.Open(flagDBPath); err == nil {
		stats, _ = store.GetAllLevelStats()
		store.Close()
	}

	fmt.Println("Available levels:")
	fmt.Println()

	// Calculate column widths
	maxIDLen, maxNameLen := 2, 4 // "ID", "Name" headers
	for _, l := range levels {
		maxIDLen = max(maxIDLen, len(l.ID))
		maxNameLen = max(maxNameLen, len(l.Name))
	}

	// Print header
	fmt.Printf("  %-*s  %-*s  %-10s  %s\n", maxIDLen, "ID", maxNameLen, "Name", "Goal", "Runs")
	fmt.Printf("  %-*s  %-*s  %-10s  %s\n", maxIDLen, "--", maxNameLen, "----", "----", "----")

	// Print levels
	for _, l := range levels {
		goal := "endless"
		if !l.Endless {
			goal = fmt.Sprintf("%d suitors", l.Suitors)
			if l.Suitors == 0 {
				goal = "full siege"
			}
		}
		runs := "-"
		if s, ok := stats[l.ID]; ok && s.Runs > 0 {
			runs = fmt.Sprintf("%d played, %d won, best %d kills", s.Runs, s.Wins, s.BestKills)
		}
		fmt.Printf("  %-*s  %-*s  %-10s  %s\n", maxIDLen, l.ID, maxNameLen, l.Name, goal, runs)
	}

	fmt.Println()
	fmt.Println("Run 'ithaca play <id>' to play a level.")
}
