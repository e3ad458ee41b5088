package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/devlens/devsurvey/internal/config"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "devsurvey",
	Short: "Developer-survey analysis pipeline",
	Long:  "Loads the annual developer survey and a cost-of-living reference, cleans and aggregates them, and renders the full chart battery to PNG files.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
