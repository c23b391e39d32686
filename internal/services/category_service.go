package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/donationDB/Donation-Web/internal/dto"
	"github.com/donationDB/Donation-Web/internal/listing"
	"github.com/donationDB/Donation-Web/internal/models"
	"github.com/donationDB/Donation-Web/internal/store"
)

var (
	ErrCategoryExists   = errors.New("이미 존재하는 카테고리 ID입니다.")
	ErrCategoryNotFound = errors.New("카테고리를 찾을 수 없습니다.")
)

type CategoryService struct {
	categories *Fallback[models.Category]
}

// NewCategoryService builds the service. sample may be nil.
func NewCategoryService(primary, sample store.Repository[models.Category]) *CategoryService {
	return &CategoryService{categories: NewFallback[models.Category]("categories", primary, sample)}
}

// List never fails; with no store available it is empty.
func (s *CategoryService) List(ctx context.Context, q listing.FieldQuery) []models.Category {
	categories, err := s.categories.List(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "category list unavailable", "operation", "categories.list", "error", err)
		return []models.Category{}
	}
	return listing.Categories(categories, q)
}

// Create adds a category. Without an id the next numeric id is used.
func (s *CategoryService) Create(ctx context.Context, req *dto.CreateCategoryRequest) (*models.Category, error) {
	category := &models.Category{
		CategoryID:   string(req.CategoryID),
		CategoryName: strings.TrimSpace(req.CategoryName),
		Description:  strings.TrimSpace(req.Description),
	}
	if category.CategoryID == "" {
		existing := s.List(ctx, listing.FieldQuery{})
		ids := make([]string, len(existing))
		for i, c := range existing {
			ids[i] = c.CategoryID
		}
		category.CategoryID = nextID(ids, "")
	}

	if err := s.categories.Insert(ctx, category); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return nil, ErrCategoryExists
		}
		return nil, fmt.Errorf("create category: %w", err)
	}
	return category, nil
}

func (s *CategoryService) Delete(ctx context.Context, id string) error {
	if err := s.categories.Delete(ctx, strings.TrimSpace(id)); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrCategoryNotFound
		}
		return fmt.Errorf("delete category: %w", err)
	}
	return nil
}
