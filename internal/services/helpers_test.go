package services

import (
	"context"
	"errors"
	"time"

	"gorm.io/datatypes"

	"github.com/donationDB/Donation-Web/internal/models"
	"github.com/donationDB/Donation-Web/internal/store"
)

var errBoom = errors.New("dial tcp 127.0.0.1:5432: connect: connection refused")

// downRepo is a primary store that fails every call.
type downRepo[T any] struct{}

func (downRepo[T]) List(context.Context) ([]T, error)       { return nil, errBoom }
func (downRepo[T]) Get(context.Context, string) (*T, error) { return nil, errBoom }
func (downRepo[T]) Insert(context.Context, *T) error        { return errBoom }
func (downRepo[T]) Update(context.Context, *T) error        { return errBoom }
func (downRepo[T]) Delete(context.Context, string) error    { return errBoom }
func (downRepo[T]) FindByEmail(context.Context, string) (*models.Donor, error) {
	return nil, errBoom
}

func programTable(rows ...models.Program) *store.MemTable[models.Program] {
	return store.NewMemTable(rows, func(p models.Program) string { return p.ProgramID }, nil)
}

func categoryTable(rows ...models.Category) *store.MemTable[models.Category] {
	return store.NewMemTable(rows, func(c models.Category) string { return c.CategoryID }, nil)
}

func companyTable(rows ...models.Company) *store.MemTable[models.Company] {
	return store.NewMemTable(rows, func(c models.Company) string { return c.CompanyID }, nil)
}

func day(s string) *datatypes.Date {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	d := datatypes.Date(t)
	return &d
}

func strPtr(s string) *string { return &s }
