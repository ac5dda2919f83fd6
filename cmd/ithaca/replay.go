package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/ithaca/internal/config"
	"github.com/vovakirdan/ithaca/internal/game"
	"github.com/vovakirdan/ithaca/internal/level"
	"github.com/vovakirdan/ithaca/internal/platform/tui"
	"github.com/vovakirdan/ithaca/internal/replay"
)

var flagReplayVerify bool

var replayCmd = &cobra.Command{
	Use:   "replay <trace>",
	Short: "Watch or verify a recorded trace",
	Long: `Play back a trace written by 'ithaca sim --trace'.

Controls:
  Space/P      - Pause
  Left/Right   - Step one snapshot
  Home/G       - Back to the start
  Q/Esc        - Quit

With --verify the run is simulated again from the trace header and every
recorded snapshot is compared by hash. The config must match the one used
for recording (see --config).

Examples:
  ithaca replay hall.trace
  ithaca replay hall.trace --verify`,
	Args: cobra.ExactArgs(1),
	Run:  runReplay,
}

func init() {
	replayCmd.Flags().BoolVar(&flagReplayVerify, "verify", false, "Re-simulate and compare instead of playing back")
}

func runReplay(_ *cobra.Command, args []string) {
	if err := replayTrace(args[0]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func replayTrace(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("cannot open trace: %w", err)
	}
	trace, err := replay.ReadTrace(bufio.NewReader(f))
	f.Close()
	if err != nil {
		return err
	}

	lvl, err := level.Get(trace.Header.Level)
	if err != nil {
		return unknownLevel(trace.Header.Level)
	}

	if flagReplayVerify {
		return verifyTrace(trace, lvl)
	}

	width, height := terminalSize()
	return tui.RunPlayback(trace, lvl, width, height, flagFPS)
}

func verifyTrace(trace replay.Trace, lvl level.Level) error {
	h := trace.Header
	if len(trace.Snapshots) == 0 {
		return fmt.Errorf("trace %s has no snapshots", h.Level)
	}
	drive, err := replay.LookupDriver(h.Driver)
	if err != nil {
		return err
	}

	logger, err := newLogger("ithaca-replay")
	if err != nil {
		return err
	}
	settings, err := loadSettings(logger)
	if err != nil {
		return err
	}
	if preset, ok := config.ParsePreset(h.Difficulty); ok {
		settings.Difficulty = preset
	}
	settings.Runtime.TimeScale = h.TimeScale

	world, err := settings.NewWorld(lvl, h.Seed)
	if err != nil {
		return err
	}

	last := trace.Snapshots[len(trace.Snapshots)-1].Tick
	var got []game.Snapshot
	if _, err := replay.Simulate(world, drive, last, h.Every, func(s game.Snapshot) error {
		got = append(got, s)
		return nil
	}); err != nil {
		return err
	}

	if tick, ok := replay.FirstDivergence(trace.Snapshots, got); !ok {
		return fmt.Errorf("replay diverges at tick %d", tick)
	}
	fmt.Printf("OK: %d snapshots of %s (seed %d) match\n", len(got), lvl.ID, h.Seed)
	return nil
}
