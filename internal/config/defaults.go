package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/tile2048.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Board: BoardConfig{
			Size:       4,
			MaxHistory: 5,
		},
		Autoplay: AutoplayConfig{
			TickRate: 100 * time.Millisecond,
			MaxMoves: 0,
		},
		BestScore: BestScoreConfig{
			Backend: "file",
			Path:    "~/.tile2048/best_score.txt",
		},
		Log: LogConfig{
			Level: "info",
			File:  "~/.tile2048/tile2048.log",
		},
	}
}
