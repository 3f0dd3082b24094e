// Package config provides YAML-based configuration loading for tile2048.
package config

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config contains all configuration for the game and its commands.
type Config struct {
	Board     BoardConfig     `yaml:"board"`
	Autoplay  AutoplayConfig  `yaml:"autoplay"`
	BestScore BestScoreConfig `yaml:"best_score"`
	Log       LogConfig       `yaml:"log"`
}

// BoardConfig defines the board and undo depth.
type BoardConfig struct {
	Size       int `yaml:"size"`
	MaxHistory int `yaml:"max_history"`
}

// AutoplayConfig defines how the automatic player is driven.
type AutoplayConfig struct {
	TickRate time.Duration `yaml:"tick_rate"` // Delay between automatic moves in the TUI
	MaxMoves int           `yaml:"max_moves"` // Headless move cap per game; 0 = until game over
}

// BestScoreConfig selects the best-score backend.
type BestScoreConfig struct {
	Backend string `yaml:"backend"` // "file" or "sqlite"
	Path    string `yaml:"path"`
}

// LogConfig defines logger output.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`  // Log file used while the TUI owns the terminal
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	switch {
	case c.Board.Size < 2:
		return fmt.Errorf("%w: board.size must be at least 2, got %d", ErrInvalidConfig, c.Board.Size)
	case c.Board.MaxHistory < 0:
		return fmt.Errorf("%w: board.max_history must not be negative, got %d", ErrInvalidConfig, c.Board.MaxHistory)
	case c.Autoplay.TickRate <= 0:
		return fmt.Errorf("%w: autoplay.tick_rate must be positive, got %s", ErrInvalidConfig, c.Autoplay.TickRate)
	case c.Autoplay.MaxMoves < 0:
		return fmt.Errorf("%w: autoplay.max_moves must not be negative, got %d", ErrInvalidConfig, c.Autoplay.MaxMoves)
	case c.BestScore.Backend != "file" && c.BestScore.Backend != "sqlite":
		return fmt.Errorf("%w: best_score.backend must be file or sqlite, got %q", ErrInvalidConfig, c.BestScore.Backend)
	case c.BestScore.Path == "":
		return fmt.Errorf("%w: best_score.path is empty", ErrInvalidConfig)
	}
	return nil
}
