package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/donationDB/Donation-Web/internal/metrics"
	"github.com/donationDB/Donation-Web/internal/store"
)

// Fallback pairs the primary store with the sample store. Reads go to the
// primary first and use the sample store when it fails or has no rows.
// Writes go to the primary first and are mirrored into the sample store; if
// the primary fails the write lands in the sample store alone and succeeds.
// sample may be nil, in which case primary errors are returned as is.
type Fallback[T any] struct {
	entity  string
	primary store.Repository[T]
	sample  store.Repository[T]
}

func NewFallback[T any](entity string, primary, sample store.Repository[T]) *Fallback[T] {
	return &Fallback[T]{entity: entity, primary: primary, sample: sample}
}

func (f *Fallback[T]) List(ctx context.Context) ([]T, error) {
	rows, err := f.primary.List(ctx)
	if f.sample == nil {
		return rows, err
	}
	switch {
	case err != nil:
		f.degradedRead(ctx, metrics.ReasonError, err)
	case len(rows) == 0:
		f.degradedRead(ctx, metrics.ReasonEmpty, nil)
	default:
		return rows, nil
	}
	return f.sample.List(ctx)
}

// Get also consults the sample store when the primary has no such row, so
// rows written during an outage stay reachable.
func (f *Fallback[T]) Get(ctx context.Context, id string) (*T, error) {
	v, err := f.primary.Get(ctx, id)
	if err == nil || f.sample == nil {
		return v, err
	}
	if !errors.Is(err, store.ErrNotFound) {
		f.degradedRead(ctx, metrics.ReasonError, err)
	}
	return f.sample.Get(ctx, id)
}

func (f *Fallback[T]) Insert(ctx context.Context, v *T) error {
	err := f.primary.Insert(ctx, v)
	switch {
	case err == nil:
		f.mirror(ctx, "insert", func() error {
			c := *v
			err := f.sample.Insert(ctx, &c)
			if errors.Is(err, store.ErrDuplicate) {
				err = f.sample.Update(ctx, &c)
			}
			return err
		})
		return nil
	case errors.Is(err, store.ErrDuplicate), f.sample == nil:
		return err
	}
	f.degradedWrite(ctx, "insert", err)
	return f.sample.Insert(ctx, v)
}

func (f *Fallback[T]) Update(ctx context.Context, v *T) error {
	err := f.primary.Update(ctx, v)
	switch {
	case err == nil:
		f.mirror(ctx, "update", func() error {
			c := *v
			err := f.sample.Update(ctx, &c)
			if errors.Is(err, store.ErrNotFound) {
				err = f.sample.Insert(ctx, &c)
			}
			return err
		})
		return nil
	case f.sample == nil, errors.Is(err, store.ErrNotSupported):
		return err
	case !errors.Is(err, store.ErrNotFound):
		f.degradedWrite(ctx, "update", err)
	}
	return f.sample.Update(ctx, v)
}

func (f *Fallback[T]) Delete(ctx context.Context, id string) error {
	err := f.primary.Delete(ctx, id)
	switch {
	case err == nil:
		f.mirror(ctx, "delete", func() error {
			if err := f.sample.Delete(ctx, id); !errors.Is(err, store.ErrNotFound) {
				return err
			}
			return nil
		})
		return nil
	case f.sample == nil:
		return err
	case !errors.Is(err, store.ErrNotFound):
		f.degradedWrite(ctx, "delete", err)
	}
	return f.sample.Delete(ctx, id)
}

func (f *Fallback[T]) mirror(ctx context.Context, op string, fn func() error) {
	if f.sample == nil {
		return
	}
	if err := fn(); err != nil {
		slog.WarnContext(ctx, "sample store mirror failed", "operation", f.entity+"."+op, "error", err)
	}
}

func (f *Fallback[T]) degradedRead(ctx context.Context, reason string, err error) {
	metrics.FallbackReads.WithLabelValues(f.entity, reason).Inc()
	if err != nil {
		slog.WarnContext(ctx, "primary read failed, serving sample data", "operation", f.entity+".list", "error", err)
	}
}

func (f *Fallback[T]) degradedWrite(ctx context.Context, op string, err error) {
	metrics.FallbackWrites.WithLabelValues(f.entity, op).Inc()
	slog.WarnContext(ctx, "primary write failed, writing sample data", "operation", f.entity+"."+op, "error", err)
}
