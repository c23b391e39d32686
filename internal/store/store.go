// Package store holds the primary (GORM) and sample (in-memory) stores. Both
// implement the same Repository capability so services can swap one for the
// other when the database is unreachable or empty.
package store

import (
	"context"
	"errors"

	"github.com/donationDB/Donation-Web/internal/models"
)

var (
	ErrNotFound     = errors.New("record not found")
	ErrDuplicate    = errors.New("duplicate key")
	ErrNotSupported = errors.New("operation not supported")
)

// Repository is the read/write capability shared by both stores.
type Repository[T any] interface {
	List(ctx context.Context) ([]T, error)
	Get(ctx context.Context, id string) (*T, error)
	Insert(ctx context.Context, v *T) error
	Update(ctx context.Context, v *T) error
	Delete(ctx context.Context, id string) error
}

// DonorRepository adds the login lookup.
type DonorRepository interface {
	Repository[models.Donor]
	FindByEmail(ctx context.Context, email string) (*models.Donor, error)
}

// SweepSteps are the three bulk statements of the maintenance sweep. Dates
// are "2006-01-02" strings. Each returns the number of rows it touched.
type SweepSteps interface {
	StartDue(ctx context.Context, today string) (int64, error)
	FinishEnded(ctx context.Context, today string) (int64, error)
	PurgeEndedBefore(ctx context.Context, cutoff string) (int64, error)
}

// Sweeper pins one connection for the duration of fn and releases it when fn
// returns, whatever the outcome.
type Sweeper interface {
	Hold(ctx context.Context, fn func(SweepSteps) error) error
}
