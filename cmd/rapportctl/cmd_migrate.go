package main

import (
	"fmt"

	"github.com/KATBlackCoder/rapportflow/internal/app"
	"github.com/KATBlackCoder/rapportflow/internal/shared/connection"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := connection.ConnectDatabase(cfg.Database, 5)
		if err != nil {
			return err
		}
		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		defer sqlDB.Close()

		if err := app.Migrate(cmd.Context(), db, logger); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "schema up to date")
		return nil
	},
}
