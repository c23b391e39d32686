package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/donationDB/Donation-Web/internal/listing"
	"github.com/donationDB/Donation-Web/internal/models"
	"github.com/donationDB/Donation-Web/internal/normalize"
	"github.com/donationDB/Donation-Web/internal/store"
)

var (
	ErrMissingID         = errors.New("프로그램 ID가 필요합니다.")
	ErrProgramNotFound   = errors.New("프로그램을 찾을 수 없습니다.")
	ErrInvalidStatus     = errors.New("유효하지 않은 상태 값입니다.")
	ErrInvalidTransition = errors.New("현재 상태에서는 변경할 수 없습니다.")
	ErrNotDeletable      = errors.New("승인 전 프로그램만 삭제할 수 있습니다.")
)

// adminTransitions are the status changes an admin may make. The sweep
// drives every other move.
var adminTransitions = map[string][]string{
	normalize.StatusPlanned:  {normalize.StatusRunning, normalize.StatusRejected},
	normalize.StatusRejected: {normalize.StatusPlanned},
}

type ProgramService struct {
	programs *Fallback[models.Program]
	now      func() time.Time
}

// NewProgramService builds the service. sample may be nil.
func NewProgramService(primary, sample store.Repository[models.Program]) *ProgramService {
	return &ProgramService{
		programs: NewFallback[models.Program]("programs", primary, sample),
		now:      time.Now,
	}
}

// List returns the filtered, sorted program list. It never fails: when no
// store can answer the list is empty.
func (s *ProgramService) List(ctx context.Context, q listing.ProgramQuery) []models.Program {
	return listing.Programs(s.all(ctx), q)
}

func (s *ProgramService) all(ctx context.Context) []models.Program {
	programs, err := s.programs.List(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "program list unavailable", "operation", "programs.list", "error", err)
		return []models.Program{}
	}
	out := make([]models.Program, len(programs))
	for i, p := range programs {
		out[i] = normalize.Renormalize(p)
	}
	return out
}

func (s *ProgramService) Get(ctx context.Context, id string) (*models.Program, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, ErrMissingID
	}
	p, err := s.programs.Get(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrProgramNotFound
		}
		return nil, fmt.Errorf("get program: %w", err)
	}
	canonical := normalize.Renormalize(*p)
	return &canonical, nil
}

// UpdateStatus applies an admin approve, reject or revert.
func (s *ProgramService) UpdateStatus(ctx context.Context, id, rawStatus string) (*models.Program, error) {
	if strings.TrimSpace(rawStatus) == "" {
		return nil, ErrInvalidStatus
	}
	target := normalize.Status(rawStatus)
	if !normalize.IsStatus(target.Code) {
		return nil, ErrInvalidStatus
	}

	p, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !allowedTransition(p.Status, target.Code) {
		return nil, fmt.Errorf("%w: %s → %s", ErrInvalidTransition, p.Status, target.Code)
	}

	now := s.now()
	p.Status, p.StatusLabel = target.Code, target.Label
	p.UpdatedAt = &now
	if err := s.programs.Update(ctx, p); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrProgramNotFound
		}
		return nil, fmt.Errorf("update program status: %w", err)
	}
	return p, nil
}

// Delete removes a program that is still planned.
func (s *ProgramService) Delete(ctx context.Context, id string) error {
	p, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if p.Status != normalize.StatusPlanned {
		return ErrNotDeletable
	}
	if err := s.programs.Delete(ctx, p.ProgramID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrProgramNotFound
		}
		return fmt.Errorf("delete program: %w", err)
	}
	return nil
}

func allowedTransition(from, to string) bool {
	for _, next := range adminTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
