package main

import (
	"bufio"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/ithaca/internal/game"
	"github.com/vovakirdan/ithaca/internal/level"
	"github.com/vovakirdan/ithaca/internal/replay"
	"github.com/vovakirdan/ithaca/internal/storage"
)

var (
	flagSimTicks  int
	flagSimTrace  string
	flagSimEvery  int
	flagSimDriver string
	flagSimNoSave bool
)

var simCmd = &cobra.Command{
	Use:   "sim <level>",
	Short: "Run a level headless",
	Long: `Run a level without a terminal UI until the siege ends or the tick
limit is reached, then print a summary.

Drivers:
  idle    - Odysseus stands still
  archer  - Odysseus holds the bow drawn at the nearest suitor

Finished runs are saved to the run history unless --no-save is given.
With --trace, every Nth tick (--every) is written as a msgpack snapshot
that 'ithaca replay' can play back or verify.

Examples:
  ithaca sim hall --seed 7
  ithaca sim hall --driver idle --ticks 600
  ithaca sim courtyard --seed 7 --trace courtyard.trace --every 2`,
	Args: cobra.ExactArgs(1),
	Run:  runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagSimTicks, "ticks", 60*60*10, "Maximum ticks to simulate")
	simCmd.Flags().StringVar(&flagSimTrace, "trace", "", "Write a snapshot trace to this file")
	simCmd.Flags().IntVar(&flagSimEvery, "every", 1, "Ticks between recorded snapshots")
	simCmd.Flags().StringVar(&flagSimDriver, "driver", "archer", "Input driver: archer, idle")
	simCmd.Flags().BoolVar(&flagSimNoSave, "no-save", false, "Do not save the run to the history")
}

func runSim(_ *cobra.Command, args []string) {
	if err := simulate(args[0]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func simulate(levelID string) error {
	lvl, err := level.Get(levelID)
	if err != nil {
		return unknownLevel(levelID)
	}
	drive, err := replay.LookupDriver(flagSimDriver)
	if err != nil {
		return err
	}

	logger, err := newLogger("ithaca-sim")
	if err != nil {
		return err
	}
	settings, err := loadSettings(logger)
	if err != nil {
		return err
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	world, err := settings.NewWorld(lvl, seed)
	if err != nil {
		return err
	}

	var record func(game.Snapshot) error
	var trace *replay.Writer
	if flagSimTrace != "" {
		f, err := os.Create(flagSimTrace)
		if err != nil {
			return fmt.Errorf("cannot create trace: %w", err)
		}
		defer f.Close()

		buf := bufio.NewWriter(f)
		defer buf.Flush()

		trace, err = replay.NewWriter(buf, replay.Header{
			Level:      lvl.ID,
			Seed:       seed,
			Difficulty: string(settings.Difficulty),
			Every:      flagSimEvery,
			Driver:     flagSimDriver,
			TimeScale:  settings.Runtime.TimeScale,
		})
		if err != nil {
			return err
		}
		record = trace.Write
	}

	start := time.Now()
	state, err := replay.Simulate(world, drive, flagSimTicks, flagSimEvery, record)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	outcome := "unfinished"
	switch {
	case state.GameOver && state.Won:
		outcome = string(storage.OutcomeWon)
	case state.GameOver:
		outcome = string(storage.OutcomeLost)
	}

	fmt.Printf("Level:    %s (%s)\n", lvl.Name, lvl.ID)
	fmt.Printf("Seed:     %d\n", seed)
	fmt.Printf("Driver:   %s\n", flagSimDriver)
	fmt.Printf("Outcome:  %s\n", outcome)
	fmt.Printf("Kills:    %d/%d\n", world.Kills(), world.Total())
	fmt.Printf("Ticks:    %d (%s game time)\n", world.Ticks(), formatTicks(world.Ticks(), flagFPS))
	fmt.Printf("HP:       %.0f\n", world.Player().Vitals.HP)
	stats := world.PathStats()
	fmt.Printf("Paths:    %d hits, %d misses\n", stats.Hits, stats.Misses)
	fmt.Printf("Wall:     %s\n", elapsed.Round(time.Millisecond))
	if trace != nil {
		fmt.Printf("Trace:    %s (%d snapshots)\n", flagSimTrace, trace.Count())
	}

	if !state.GameOver || flagSimNoSave {
		return nil
	}
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open run database", "error", err)
		return nil
	}
	defer store.Close()

	_, err = store.SaveRun(storage.Run{
		LevelID:    lvl.ID,
		Difficulty: string(settings.Difficulty),
		Outcome:    storage.Outcome(outcome),
		Kills:      world.Kills(),
		Ticks:      world.Ticks(),
		Seed:       seed,
	})
	return err
}

// formatTicks renders a tick count as mm:ss of game time.
func formatTicks(ticks, fps int) string {
	fps = max(fps, 1)
	secs := ticks / fps
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}
