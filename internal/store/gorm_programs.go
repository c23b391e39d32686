package store

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/donationDB/Donation-Web/internal/models"
	"github.com/donationDB/Donation-Web/internal/normalize"
)

// GormPrograms reads program rows as raw column maps so rows written by
// either schema generation come back in canonical form. Writes address the
// columns named by cols.
type GormPrograms struct {
	db   *gorm.DB
	cols ProgramColumns
}

func NewGormPrograms(db *gorm.DB, cols ProgramColumns) *GormPrograms {
	return &GormPrograms{db: db, cols: cols}
}

func (s *GormPrograms) List(ctx context.Context) ([]models.Program, error) {
	var rows []map[string]any
	if err := s.db.WithContext(ctx).Table("program").Find(&rows).Error; err != nil {
		return nil, translate(err)
	}
	lookup := s.categoryLookup(ctx)
	out := make([]models.Program, 0, len(rows))
	for _, row := range rows {
		out = append(out, normalize.Program(row, lookup))
	}
	return out, nil
}

func (s *GormPrograms) Get(ctx context.Context, id string) (*models.Program, error) {
	var rows []map[string]any
	err := s.db.WithContext(ctx).Table("program").Where(s.db.Statement.Quote(s.cols.ID)+" = ?", id).Limit(1).Find(&rows).Error
	if err != nil {
		return nil, translate(err)
	}
	if len(rows) == 0 {
		return nil, ErrNotFound
	}
	p := normalize.Program(rows[0], s.categoryLookup(ctx))
	return &p, nil
}

func (s *GormPrograms) Insert(ctx context.Context, p *models.Program) error {
	return translate(s.db.WithContext(ctx).Create(p).Error)
}

// Update persists the lifecycle fields of p, which are the only ones the
// admin API changes.
func (s *GormPrograms) Update(ctx context.Context, p *models.Program) error {
	now := time.Now()
	if p.UpdatedAt != nil {
		now = *p.UpdatedAt
	}
	values := map[string]any{s.cols.Status: p.Status}
	if s.cols.UpdatedAt != "" {
		values[s.cols.UpdatedAt] = now
	}
	res := s.db.WithContext(ctx).Table("program").
		Where(s.db.Statement.Quote(s.cols.ID)+" = ?", p.ProgramID).
		Updates(values)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *GormPrograms) Delete(ctx context.Context, id string) error {
	res := s.db.WithContext(ctx).Where(s.db.Statement.Quote(s.cols.ID)+" = ?", id).Delete(&models.Program{})
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// categoryLookup resolves numeric category ids. A failed read only loses the
// labels, so it yields a nil lookup instead of an error.
func (s *GormPrograms) categoryLookup(ctx context.Context) normalize.CategoryLookup {
	var categories []models.Category
	if err := s.db.WithContext(ctx).Find(&categories).Error; err != nil {
		return nil
	}
	return normalize.LookupFromCategories(categories)
}
