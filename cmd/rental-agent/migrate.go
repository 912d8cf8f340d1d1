package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/joestump/rental-agent/internal/db"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			database, _, err := openArchive()
			if err != nil {
				return err
			}
			defer closeDB(database)

			version, err := db.Version(database, cfg.DB.Driver)
			if err != nil {
				return fmt.Errorf("read schema version: %w", err)
			}
			slog.Info("migrations complete", "driver", cfg.DB.Driver, "version", version)
			return nil
		},
	}
}
