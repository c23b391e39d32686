package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/donationDB/Donation-Web/internal/dto"
	"github.com/donationDB/Donation-Web/internal/listing"
	"github.com/donationDB/Donation-Web/internal/metrics"
	"github.com/donationDB/Donation-Web/internal/models"
	"github.com/donationDB/Donation-Web/internal/store"
)

var (
	ErrEmailTaken = errors.New("이미 등록된 이메일입니다.")
)

type DonorService struct {
	primary store.DonorRepository
	sample  store.DonorRepository
	writes  *Fallback[models.Donor]
	codec   PasswordCodec
}

// NewDonorService builds the service. sample may be nil.
func NewDonorService(primary, sample store.DonorRepository, codec PasswordCodec) *DonorService {
	return &DonorService{
		primary: primary,
		sample:  sample,
		writes:  NewFallback[models.Donor]("donors", primary, sample),
		codec:   codec,
	}
}

// List returns the filtered donor list. Unlike the other lists, a primary
// failure is returned to the caller; only an empty primary falls back.
func (s *DonorService) List(ctx context.Context, q listing.FieldQuery) ([]models.Donor, error) {
	donors, err := s.primary.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list donors: %w", err)
	}
	if len(donors) == 0 && s.sample != nil {
		metrics.FallbackReads.WithLabelValues("donors", metrics.ReasonEmpty).Inc()
		if donors, err = s.sample.List(ctx); err != nil {
			return nil, fmt.Errorf("list sample donors: %w", err)
		}
	}
	return listing.Donors(donors, q), nil
}

// Create registers a donor. An empty email is stored as null.
func (s *DonorService) Create(ctx context.Context, req *dto.CreateDonorRequest) (*models.Donor, error) {
	password, err := s.codec.Hash(req.Password)
	if err != nil {
		return nil, err
	}
	donor := &models.Donor{
		Name:     strings.TrimSpace(req.Name),
		Email:    blankToNil(req.Email),
		Phone:    blankToNil(req.Phone),
		Password: password,
	}

	if err := s.writes.Insert(ctx, donor); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("create donor: %w", err)
	}
	return donor, nil
}

func blankToNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
