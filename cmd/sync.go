package cmd

import (
	"context"
	"fmt"

	"marketsync/core/config"
	"marketsync/core/logger"

	"github.com/spf13/cobra"
)

var syncTargetFlag string

// syncCmd runs one full synchronization and exits.
var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Run one stock and price synchronization",
	Long: `Fetch the remnants feed once, then reconcile and push stock and price
updates to every enabled marketplace target, sequentially.

A failing target is logged and the remaining targets still run; the command
exits nonzero if any target failed.

Examples:
  # Sync all enabled targets
  marketsync sync

  # Sync only the Ozon store
  marketsync sync --target ozon`,
	RunE: runSync,
}

func init() {
	syncCmd.Flags().StringVar(&syncTargetFlag, "target", "", "Sync only this target (ozon, market-fbs, market-dbs)")
	RootCmd.AddCommand(syncCmd)
}

func runSync(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer l.Sync()

	l.Info("Starting synchronization")
	return newRunner(cfg, l).RunAll(context.Background(), syncTargetFlag)
}
