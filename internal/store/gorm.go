package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// GormTable is a Repository over one GORM model keyed by a single column.
type GormTable[T any] struct {
	db *gorm.DB
	pk string
}

func NewGormTable[T any](db *gorm.DB, pk string) *GormTable[T] {
	return &GormTable[T]{db: db, pk: pk}
}

func (t *GormTable[T]) List(ctx context.Context) ([]T, error) {
	var out []T
	if err := t.db.WithContext(ctx).Find(&out).Error; err != nil {
		return nil, translate(err)
	}
	return out, nil
}

func (t *GormTable[T]) Get(ctx context.Context, id string) (*T, error) {
	var v T
	if err := t.db.WithContext(ctx).Where(t.pk+" = ?", id).First(&v).Error; err != nil {
		return nil, translate(err)
	}
	return &v, nil
}

func (t *GormTable[T]) Insert(ctx context.Context, v *T) error {
	return translate(t.db.WithContext(ctx).Create(v).Error)
}

func (t *GormTable[T]) Update(ctx context.Context, v *T) error {
	res := t.db.WithContext(ctx).Model(v).Select("*").Updates(v)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (t *GormTable[T]) Delete(ctx context.Context, id string) error {
	res := t.db.WithContext(ctx).Where(t.pk+" = ?", id).Delete(new(T))
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// translate maps GORM errors onto the store sentinels. The connection must be
// opened with TranslateError so duplicate keys surface as gorm.ErrDuplicatedKey.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%w: %v", ErrDuplicate, err)
	default:
		return err
	}
}
