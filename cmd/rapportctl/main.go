package main

import (
	"fmt"
	"os"

	"github.com/KATBlackCoder/rapportflow/internal/bootstrap"
	"github.com/KATBlackCoder/rapportflow/internal/config"
	"github.com/KATBlackCoder/rapportflow/internal/shared/apperror"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	cfg    *config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:           "rapportctl",
	Short:         "Administer a RapportFlow installation",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if cfg, err = config.LoadTooling(); err != nil {
			return err
		}
		if logger, err = bootstrap.NewLogger(cfg.IsProduction()); err != nil {
			return err
		}
		apperror.Init()
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func main() {
	rootCmd.AddCommand(migrateCmd, provisionCmd, policyCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
