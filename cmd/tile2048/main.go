// tile2048 is the 2048 sliding-tile puzzle for the terminal, with an
// automatic player.
//
// Usage:
//
//	tile2048 play            - Play interactively (start screen)
//	tile2048 play --auto     - Watch the automatic player
//	tile2048 autoplay        - Run automatic games headless and print a summary
//	tile2048 best            - Show the stored best score
//	tile2048 config          - Print the effective configuration
//
// Global flags:
//
//	--config <path>     - Config file (default search: ~/.tile2048/config.yaml, ./configs/tile2048.yaml)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--log-level <level> - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tile2048",
	Short: "2048 in your terminal, with an automatic player",
	Long: `tile2048 is the 2048 sliding-tile puzzle for the terminal.
Slide tiles, merge equal values and chase the best score, or let the
automatic player take over.

Available commands:
  play      - Play interactively or watch the automatic player
  autoplay  - Run automatic games headless and print a summary
  best      - Show or clear the stored best score
  config    - Print the effective configuration

Examples:
  tile2048 play
  tile2048 play --auto
  tile2048 autoplay --games 20 --parallel 4
  tile2048 best --clear`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error (overrides config)")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(autoplayCmd)
	rootCmd.AddCommand(bestCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig loads the configuration selected by --config.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
	return cfg, nil
}

// newLogger creates a logger writing to w at the configured level.
func newLogger(w io.Writer, level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "tile2048",
		Level:           lvl,
	}), nil
}

// openStore opens the configured best-score store.
func openStore(cfg config.Config) (storage.BestScore, error) {
	return storage.Open(cfg.BestScore.Backend, cfg.BestScore.Path)
}

// expandHome replaces a leading ~ with the user's home directory.
func expandHome(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}
