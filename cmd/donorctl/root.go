package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/donationDB/Donation-Web/internal/config"
	"github.com/donationDB/Donation-Web/internal/database"
	"github.com/donationDB/Donation-Web/internal/logging"
	"github.com/donationDB/Donation-Web/internal/store"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "donorctl",
		Short:         "Donation admin maintenance tools",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	cmd.AddCommand(newMigrateCmd())
	cmd.AddCommand(newSweepCmd())
	cmd.AddCommand(newSeedCmd())
	return cmd
}

func execute() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// connectDB loads the environment configuration and opens the primary store.
func connectDB() (*config.Config, *gorm.DB, error) {
	cfg := config.Load()
	logging.Setup(cfg.LogLevel)
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, nil, err
	}
	return cfg, db, nil
}

func closeDB(db *gorm.DB) {
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

// programColumns resolves the program table's column names, falling back to
// the defaults when the table cannot be inspected.
func programColumns(db *gorm.DB) store.ProgramColumns {
	cols, err := store.ResolveProgramColumns(db)
	if err != nil {
		slog.Warn("could not read program columns, using defaults", "error", err)
	}
	return cols
}
