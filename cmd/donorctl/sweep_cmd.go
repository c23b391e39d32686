package main

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/donationDB/Donation-Web/internal/maintenance"
	"github.com/donationDB/Donation-Web/internal/store"
)

func newSweepCmd() *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Run the program status sweep once",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, db, err := connectDB()
			if err != nil {
				return err
			}
			defer closeDB(db)

			today := time.Now().In(cfg.Location())
			if date != "" {
				if today, err = time.ParseInLocation("2006-01-02", date, cfg.Location()); err != nil {
					return fmt.Errorf("invalid --date: %w", err)
				}
			}

			start := time.Now()
			report, err := maintenance.Sweep(cmd.Context(), store.NewGormSweeper(db, programColumns(db)), today)
			if werr := writeJSON(cmd.OutOrStdout(), commandOutput{
				Command:    "sweep",
				RunID:      uuid.NewString(),
				DurationMS: time.Since(start).Milliseconds(),
				Result:     report,
			}); werr != nil {
				return werr
			}
			return err
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Sweep as of this date (YYYY-MM-DD), default today in TIMEZONE")
	return cmd
}
