package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration after applying the search order:
--config, ~/.tile2048/config.yaml, ./configs/tile2048.yaml, built-in defaults.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		data, err := config.Marshal(cfg)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}
