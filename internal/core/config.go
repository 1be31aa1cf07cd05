package core

// RuntimeConfig contains configuration passed to the game at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second
	Seed     int64 // RNG seed for deterministic gameplay (0 = time based)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
// 64 ticks per second matches the fixed update rate the physics constants were tuned for.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 64,
	}
}

// GameState is the platform-facing summary of the game after a tick.
type GameState struct {
	Playing bool // False while the menu is shown
	Ticks   int  // Ticks simulated since the game was reset
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState

	// Transitioned is set when the tick moved between menu and playing.
	Transitioned bool
}
