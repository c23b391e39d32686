package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/donationDB/Donation-Web/internal/dto"
	"github.com/donationDB/Donation-Web/internal/listing"
	"github.com/donationDB/Donation-Web/internal/models"
	"github.com/donationDB/Donation-Web/internal/store"
)

var (
	ErrCompanyExists   = errors.New("이미 존재하는 기관 ID입니다.")
	ErrCompanyNotFound = errors.New("기관을 찾을 수 없습니다.")
	ErrCompanyInUse    = errors.New("프로그램이 연결된 기관은 삭제할 수 없습니다.")
)

type CompanyService struct {
	companies *Fallback[models.Company]
	programs  *ProgramService
}

// NewCompanyService builds the service. sample may be nil.
func NewCompanyService(primary, sample store.Repository[models.Company], programs *ProgramService) *CompanyService {
	return &CompanyService{
		companies: NewFallback[models.Company]("companies", primary, sample),
		programs:  programs,
	}
}

// List returns companies matching keyword with their programs attached.
// Companies and programs are read concurrently.
func (s *CompanyService) List(ctx context.Context, keyword string) []models.Company {
	var (
		companies []models.Company
		programs  []models.Program
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		companies, err = s.companies.List(gctx)
		return err
	})
	g.Go(func() error {
		programs = s.programs.all(gctx)
		return nil
	})
	if err := g.Wait(); err != nil {
		slog.ErrorContext(ctx, "company list unavailable", "operation", "companies.list", "error", err)
		return []models.Company{}
	}
	return listing.Companies(companies, programs, keyword)
}

// Create adds a company. Without an id the next "C<n>" id is used.
func (s *CompanyService) Create(ctx context.Context, req *dto.CreateCompanyRequest) (*models.Company, error) {
	company := &models.Company{
		CompanyID:   string(req.CompanyID),
		CompanyName: strings.TrimSpace(req.CompanyName),
		Contact:     strings.TrimSpace(req.Contact),
		Address:     strings.TrimSpace(req.Address),
	}
	if company.CompanyID == "" {
		existing, err := s.companies.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("create company: %w", err)
		}
		ids := make([]string, len(existing))
		for i, c := range existing {
			ids[i] = c.CompanyID
		}
		company.CompanyID = nextID(ids, "C")
	}

	if err := s.companies.Insert(ctx, company); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return nil, ErrCompanyExists
		}
		return nil, fmt.Errorf("create company: %w", err)
	}
	company.Programs = []models.Program{}
	return company, nil
}

// Delete removes a company that owns no programs.
func (s *CompanyService) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if _, err := s.companies.Get(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrCompanyNotFound
		}
		return fmt.Errorf("delete company: %w", err)
	}
	for _, p := range s.programs.all(ctx) {
		if p.CompanyID != nil && *p.CompanyID == id {
			return ErrCompanyInUse
		}
	}
	if err := s.companies.Delete(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrCompanyNotFound
		}
		return fmt.Errorf("delete company: %w", err)
	}
	return nil
}
