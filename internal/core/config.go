package core

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Viewport width in characters
	ScreenH  int   // Viewport height in characters
	TickRate int   // Host frame rate; the simulation keeps its own fixed tick
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
type GameState struct {
	Score     int  // Current round score
	HighScore int  // Best score known to the game
	GameOver  bool // A round has ended and no new one has started
	Paused    bool // Whether the game is paused
}

// StepResult is returned by Game.Step() after each host frame.
type StepResult struct {
	State GameState

	// Sounds lists the one-shot cues raised during the frame, in order.
	Sounds []Sound

	// MusicVolume is the background music gain in [0, 1].
	MusicVolume float64
}
