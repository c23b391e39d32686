package store

import (
	"context"
	"errors"
)

// ErrOffline is returned by every Offline call.
var ErrOffline = errors.New("primary store offline")

// Offline stands in for the primary store when the database could not be
// reached at startup. Every call fails, so reads and writes land on the
// sample store.
type Offline[T any] struct{}

func (Offline[T]) List(context.Context) ([]T, error)               { return nil, ErrOffline }
func (Offline[T]) Get(context.Context, string) (*T, error)         { return nil, ErrOffline }
func (Offline[T]) Insert(context.Context, *T) error                { return ErrOffline }
func (Offline[T]) Update(context.Context, *T) error                { return ErrOffline }
func (Offline[T]) Delete(context.Context, string) error            { return ErrOffline }
func (Offline[T]) FindByEmail(context.Context, string) (*T, error) { return nil, ErrOffline }

// Hold fails without running fn.
func (Offline[T]) Hold(context.Context, func(SweepSteps) error) error { return ErrOffline }

// Ping always fails.
func (Offline[T]) Ping(context.Context) error { return ErrOffline }
