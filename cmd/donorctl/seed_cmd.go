package main

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/donationDB/Donation-Web/internal/models"
	"github.com/donationDB/Donation-Web/internal/store"
)

type seedResult struct {
	Inserted map[string]int `json:"inserted"`
	Skipped  map[string]int `json:"skipped"`
}

func newSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Copy the built-in sample data into the database",
		Long:  "Copy the built-in sample data into the database. Rows whose key already exists are skipped.",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, db, err := connectDB()
			if err != nil {
				return err
			}
			defer closeDB(db)

			sample, err := store.LoadSample()
			if err != nil {
				return err
			}

			start := time.Now()
			ctx := cmd.Context()
			res := seedResult{Inserted: map[string]int{}, Skipped: map[string]int{}}
			if err := copyRows(ctx, "categories", sample.Categories, store.NewGormTable[models.Category](db, "category_id"), &res); err != nil {
				return err
			}
			if err := copyRows(ctx, "companies", sample.Companies, store.NewGormTable[models.Company](db, "company_id"), &res); err != nil {
				return err
			}
			if err := copyRows(ctx, "programs", sample.Programs, store.NewGormPrograms(db, programColumns(db)), &res); err != nil {
				return err
			}
			if err := copyRows(ctx, "donors", sample.Donors, store.NewGormDonors(db), &res); err != nil {
				return err
			}

			return writeJSON(cmd.OutOrStdout(), commandOutput{
				Command:    "seed",
				RunID:      uuid.NewString(),
				DurationMS: time.Since(start).Milliseconds(),
				Result:     res,
			})
		},
	}
}

func copyRows[T any](ctx context.Context, name string, from, to store.Repository[T], res *seedResult) error {
	rows, err := from.List(ctx)
	if err != nil {
		return err
	}
	for i := range rows {
		err := to.Insert(ctx, &rows[i])
		switch {
		case err == nil:
			res.Inserted[name]++
		case errors.Is(err, store.ErrDuplicate):
			res.Skipped[name]++
		default:
			return err
		}
	}
	return nil
}
