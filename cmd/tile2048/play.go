package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/platform/tui"
	"github.com/vovakirdan/tui-2048/internal/t2048"
)

var (
	flagAuto bool
	flagSize int
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play 2048",
	Long: `Start the interactive game.

Controls:
  Arrows/WASD  - Slide tiles
  U            - Undo
  R            - New game
  C            - Clear best score
  Enter        - Play (start screen) / play again (game over)
  Space/I      - Watch the automatic player (start screen)
  Esc/B        - Back to the start screen
  Q/Ctrl+C     - Quit

Examples:
  tile2048 play
  tile2048 play --auto
  tile2048 play --size 5 --seed 42`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagAuto, "auto", false, "Start directly with the automatic player")
	playCmd.Flags().IntVar(&flagSize, "size", 0, "Board size (overrides config)")
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if flagSize != 0 {
		cfg.Board.Size = flagSize
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	// The TUI owns the terminal, so logs go to a file
	logOut, closeLog := openLogFile(cfg)
	defer closeLog()

	logger, err := newLogger(logOut, cfg.Log.Level)
	if err != nil {
		return err
	}

	// Open best-score storage; the game still works without it
	var store t2048.BestScoreStore
	bestStore, err := openStore(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open best score storage: %v\n", err)
	} else {
		defer bestStore.Close()
		store = bestStore
	}

	// Get terminal size for the initial layout
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rc := core.RuntimeConfig{
		ScreenW:    width,
		ScreenH:    height,
		Size:       cfg.Board.Size,
		MaxHistory: cfg.Board.MaxHistory,
		TickRate:   cfg.Autoplay.TickRate,
		Seed:       flagSeed,
		AutoStart:  flagAuto,
	}

	game := t2048.New(t2048.Options{
		Size:       rc.Size,
		MaxHistory: rc.MaxHistory,
		Seed:       rc.Seed,
		Store:      store,
		Logger:     logger,
	})

	logger.Info("starting", "size", rc.Size, "auto", rc.AutoStart, "backend", cfg.BestScore.Backend)

	if err := tui.Run(game, rc, logger); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

// openLogFile opens the configured log file for appending.
// Falls back to discarding logs if the file cannot be opened.
func openLogFile(cfg config.Config) (io.Writer, func()) {
	path, err := expandHome(cfg.Log.File)
	if err != nil || path == "" {
		return io.Discard, func() {}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return io.Discard, func() {}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return io.Discard, func() {}
	}
	return f, func() { f.Close() }
}
