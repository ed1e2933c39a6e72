package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pulsemetrics/healthscore-cli/internal/config"
	"github.com/pulsemetrics/healthscore-cli/internal/scorer"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "healthscore",
	Short: "Customer health score calculator",
	Long:  "Converts payment, engagement, contract, and support telemetry into a 0-100 health score with risk classification and per-factor breakdowns for the workshop dashboard.",
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

// newEngine builds the scoring engine from the loaded configuration.
func newEngine() *scorer.Engine {
	return scorer.NewEngine(cfg.Engine)
}
