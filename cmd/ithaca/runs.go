package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/ithaca/internal/level"
	"github.com/vovakirdan/ithaca/internal/storage"
)

var (
	flagRunsLimit int
	flagRunsClear bool
)

var runsCmd = &cobra.Command{
	Use:   "runs [level]",
	Short: "Show the run history",
	Long: `Without a level, list the most recent runs on every level. With a level,
list its best runs: victories first, then the fastest, then the most kills.

Examples:
  ithaca runs
  ithaca runs hall
  ithaca runs hall --limit 20
  ithaca runs hall --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runRuns,
}

func init() {
	runsCmd.Flags().IntVar(&flagRunsLimit, "limit", 10, "Number of runs to show")
	runsCmd.Flags().BoolVar(&flagRunsClear, "clear", false, "Delete the level's run history")
}

func runRuns(_ *cobra.Command, args []string) {
	if len(args) == 1 && !level.Exists(args[0]) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", unknownLevel(args[0]))
		os.Exit(1)
	}

	// Open run storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening run database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if len(args) == 0 {
		if flagRunsClear {
			fmt.Fprintln(os.Stderr, "Error: --clear needs a level")
			return
		}
		runs, err := store.RecentRuns(flagRunsLimit)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
			return
		}
		fmt.Println("Recent runs")
		fmt.Println()
		printRuns(runs, true)
		return
	}

	levelID := args[0]
	if flagRunsClear {
		if err := store.ClearRuns(levelID); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		fmt.Printf("Cleared the run history of %s.\n", levelID)
		return
	}

	runs, err := store.TopRuns(levelID, flagRunsLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		return
	}

	lvl, _ := level.Get(levelID)
	fmt.Printf("Best runs - %s\n", lvl.Name)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'ithaca play %s' to start the siege!\n", levelID)
		return
	}
	printRuns(runs, false)

	if stats, err := store.GetLevelStats(levelID); err == nil {
		fmt.Println()
		fmt.Printf("Runs: %d  Wins: %d  Best: %d kills  Avg: %.1f kills", stats.Runs, stats.Wins, stats.BestKills, stats.AvgKills)
		if stats.FastestWin > 0 {
			fmt.Printf("  Fastest win: %s", formatTicks(stats.FastestWin, flagFPS))
		}
		fmt.Println()
	}
}

func printRuns(runs []storage.Run, withLevel bool) {
	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		return
	}

	// Print header
	if withLevel {
		fmt.Printf("  %-4s  %-10s  ", "Rank", "Level")
	} else {
		fmt.Printf("  %-4s  ", "Rank")
	}
	fmt.Printf("%-7s  %-5s  %-6s  %-10s  %s\n", "Outcome", "Kills", "Time", "Difficulty", "Date")

	// Print runs
	for i, r := range runs {
		if withLevel {
			fmt.Printf("  %-4d  %-10s  ", i+1, r.LevelID)
		} else {
			fmt.Printf("  %-4d  ", i+1)
		}
		fmt.Printf("%-7s  %-5d  %-6s  %-10s  %s\n",
			r.Outcome, r.Kills, formatTicks(r.Ticks, flagFPS), r.Difficulty, r.CreatedAt.Format("2006-01-02 15:04"))
	}
}
