package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var flagClear bool

var bestCmd = &cobra.Command{
	Use:   "best",
	Short: "Show the stored best score",
	Long: `Display the best score kept by the configured backend.

Examples:
  tile2048 best
  tile2048 best --clear`,
	Args: cobra.NoArgs,
	RunE: runBest,
}

func init() {
	bestCmd.Flags().BoolVar(&flagClear, "clear", false, "Reset the best score to 0")
}

func runBest(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	store, err := openStore(cfg)
	if err != nil {
		return fmt.Errorf("opening best score storage: %w", err)
	}
	defer store.Close()

	out := cmd.OutOrStdout()

	if flagClear {
		if err := store.Save(0); err != nil {
			return err
		}
		fmt.Fprintln(out, "Best score cleared.")
		return nil
	}

	best, err := store.Load()
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Best score: %d\n", best)
	fmt.Fprintf(out, "Storage:    %s (%s)\n", cfg.BestScore.Path, cfg.BestScore.Backend)
	return nil
}
