package core

import "time"

// RuntimeConfig contains configuration passed to the session and UI at startup.
type RuntimeConfig struct {
	ScreenW    int           // Screen width in characters
	ScreenH    int           // Screen height in characters
	Size       int           // Board dimension
	MaxHistory int           // Undoable states
	TickRate   time.Duration // Delay between automatic moves
	Seed       int64         // RNG seed for deterministic gameplay
	AutoStart  bool          // Skip the start screen with the automatic player
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:    80,
		ScreenH:    24,
		Size:       4,
		MaxHistory: 5,
		TickRate:   100 * time.Millisecond,
		Seed:       0, // 0 means use current time in the session
	}
}
