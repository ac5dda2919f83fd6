package core

// RuntimeConfig contains configuration passed to the simulation at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW   int     // Screen width in characters
	ScreenH   int     // Screen height in characters
	TickRate  int     // Simulation ticks per second (default 60)
	Seed      int64   // RNG seed for deterministic gameplay
	TimeScale float64 // Global time dilation applied to every tick's dt
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:   80,
		ScreenH:   24,
		TickRate:  60,
		Seed:      0, // 0 means use current time in platform layer
		TimeScale: 1,
	}
}

// GameState represents the current state of a run.
type GameState struct {
	Kills    int  // Suitors slain so far
	GameOver bool // Whether the run has ended
	Won      bool // Whether the run ended in victory
	Paused   bool // Whether the run is paused
}

// StepResult is returned after each simulation tick.
type StepResult struct {
	State GameState
}
