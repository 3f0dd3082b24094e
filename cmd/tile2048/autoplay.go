package main

import (
	"fmt"
	"os"
	"os/signal"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/autoplay"
)

var (
	flagGames    int
	flagParallel int
	flagMaxMoves int
	flagNoSave   bool
)

var autoplayCmd = &cobra.Command{
	Use:   "autoplay",
	Short: "Run automatic games headless",
	Long: `Play several games with the automatic player, without a terminal UI,
and print a per-game table and summary. A new best score is saved unless
--no-save is given.

Examples:
  tile2048 autoplay
  tile2048 autoplay --games 50 --parallel 8
  tile2048 autoplay --games 5 --max-moves 200 --seed 7`,
	Args: cobra.NoArgs,
	RunE: runAutoplay,
}

func init() {
	autoplayCmd.Flags().IntVar(&flagGames, "games", 10, "Number of games to play")
	autoplayCmd.Flags().IntVar(&flagParallel, "parallel", 0, "Games to run at once (0 = number of CPUs)")
	autoplayCmd.Flags().IntVar(&flagMaxMoves, "max-moves", -1, "Move cap per game (-1 = use config, 0 = no cap)")
	autoplayCmd.Flags().IntVar(&flagSize, "size", 0, "Board size (overrides config)")
	autoplayCmd.Flags().BoolVar(&flagNoSave, "no-save", false, "Do not update the stored best score")
}

func runAutoplay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if flagSize != 0 {
		cfg.Board.Size = flagSize
	}
	if flagMaxMoves >= 0 {
		cfg.Autoplay.MaxMoves = flagMaxMoves
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := newLogger(os.Stderr, cfg.Log.Level)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	results, err := autoplay.Run(ctx, autoplay.Config{
		Games:      flagGames,
		Parallel:   flagParallel,
		Size:       cfg.Board.Size,
		MaxHistory: cfg.Board.MaxHistory,
		MaxMoves:   cfg.Autoplay.MaxMoves,
		Seed:       flagSeed,
	}, logger)
	if err != nil {
		return err
	}

	summary := autoplay.Summarize(results)
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, resultsTable(results))
	fmt.Fprintln(out, summaryTable(summary))

	if flagNoSave {
		return nil
	}

	store, err := openStore(cfg)
	if err != nil {
		logger.Warn("could not open best score storage", "error", err)
		return nil
	}
	defer store.Close()

	best, err := store.Load()
	if err != nil {
		logger.Warn("could not load best score", "error", err)
	}
	if summary.BestScore > best {
		if err := store.Save(summary.BestScore); err != nil {
			logger.Warn("could not save best score", "error", err)
			return nil
		}
		fmt.Fprintf(out, "New best score: %d\n", summary.BestScore)
	}
	return nil
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	numberStyle = cellStyle.Align(lipgloss.Right)
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// resultsTable renders one row per game.
func resultsTable(results []autoplay.Result) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		Headers("Game", "Seed", "Score", "Max tile", "Moves", "Result").
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == 5:
				return cellStyle
			default:
				return numberStyle
			}
		})

	for _, r := range results {
		status := "game over"
		if !r.Finished {
			status = "move cap"
		}
		t.Row(
			strconv.Itoa(r.Game+1),
			strconv.FormatInt(r.Seed, 10),
			strconv.Itoa(r.Score),
			strconv.Itoa(r.MaxTile),
			strconv.Itoa(r.Moves),
			status,
		)
	}
	return t.String()
}

// summaryTable renders aggregate statistics and the max-tile distribution.
func summaryTable(s autoplay.Summary) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		Headers("Summary", "").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			if col == 1 {
				return numberStyle
			}
			return cellStyle
		})

	t.Row("Games", strconv.Itoa(s.Games))
	t.Row("Finished", strconv.Itoa(s.Finished))
	t.Row("Best score", strconv.Itoa(s.BestScore))
	t.Row("Mean score", fmt.Sprintf("%.1f", s.MeanScore))
	t.Row("Max tile", strconv.Itoa(s.MaxTile))
	for _, tile := range s.Tiles() {
		pct := 100 * float64(s.TileCount[tile]) / float64(s.Games)
		t.Row(fmt.Sprintf("Reached %d", tile), fmt.Sprintf("%d (%.0f%%)", s.TileCount[tile], pct))
	}
	return t.String()
}
