package main

import (
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/donationDB/Donation-Web/internal/database"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or extend the service tables",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, db, err := connectDB()
			if err != nil {
				return err
			}
			defer closeDB(db)

			start := time.Now()
			if err := database.Migrate(db, programColumns(db).ID); err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), commandOutput{
				Command:    "migrate",
				RunID:      uuid.NewString(),
				DurationMS: time.Since(start).Milliseconds(),
				Result:     "ok",
			})
		},
	}
}
