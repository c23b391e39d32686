package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/donationDB/Donation-Web/internal/config"
	"github.com/donationDB/Donation-Web/internal/dto"
	"github.com/donationDB/Donation-Web/internal/models"
	"github.com/donationDB/Donation-Web/internal/store"
)

var (
	ErrInvalidCredentials = errors.New("이메일 또는 비밀번호가 올바르지 않습니다.")
)

// Roles carried in the login response and the token.
const (
	RoleAdmin = "admin"
	RoleDonor = "donor"
)

// AuthService checks a login against the configured admin principal first
// and the donor table second.
type AuthService struct {
	cfg     *config.Config
	primary store.DonorRepository
	sample  store.DonorRepository
	codec   PasswordCodec
	now     func() time.Time
}

// NewAuthService builds the service. sample may be nil.
func NewAuthService(cfg *config.Config, primary, sample store.DonorRepository, codec PasswordCodec) *AuthService {
	return &AuthService{cfg: cfg, primary: primary, sample: sample, codec: codec, now: time.Now}
}

// Login returns the authenticated principal. A failed primary lookup is
// returned as an error rather than retried against the sample store, so an
// outage surfaces as a server error; a donor missing from the primary is
// still looked up in the sample store.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	email := strings.TrimSpace(req.Email)

	if s.cfg.AdminConfigured() && strings.EqualFold(email, s.cfg.AdminEmail) {
		if !(PlainCodec{}).Verify(s.cfg.AdminPassword, req.Password) {
			return nil, ErrInvalidCredentials
		}
		adminEmail := s.cfg.AdminEmail
		resp := &dto.LoginResponse{Name: s.cfg.AdminName, Email: &adminEmail, Role: RoleAdmin}
		return resp, s.attachToken(resp, "admin", adminEmail)
	}

	donor, err := s.findDonor(ctx, email)
	if err != nil {
		return nil, err
	}
	if !s.codec.Verify(donor.Password, req.Password) {
		return nil, ErrInvalidCredentials
	}

	id := donor.DonorID
	created := donor.CreatedAt
	resp := &dto.LoginResponse{
		DonorID:   &id,
		Name:      donor.Name,
		Email:     donor.Email,
		Phone:     donor.Phone,
		CreatedAt: &created,
		Role:      RoleDonor,
	}
	return resp, s.attachToken(resp, strconv.FormatInt(id, 10), email)
}

func (s *AuthService) findDonor(ctx context.Context, email string) (*models.Donor, error) {
	donor, err := s.primary.FindByEmail(ctx, email)
	if err == nil {
		return donor, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("find donor: %w", err)
	}
	if s.sample != nil {
		if donor, err := s.sample.FindByEmail(ctx, email); err == nil {
			return donor, nil
		}
	}
	return nil, ErrInvalidCredentials
}

// attachToken signs an HS256 token when JWT_SECRET is set.
func (s *AuthService) attachToken(resp *dto.LoginResponse, subject, email string) error {
	if s.cfg.JWTSecret == "" {
		return nil
	}
	now := s.now()
	expires := now.Add(s.cfg.JWTExpiry)
	claims := jwt.MapClaims{
		"sub":   subject,
		"email": email,
		"role":  resp.Role,
		"iat":   now.Unix(),
		"exp":   expires.Unix(),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return fmt.Errorf("failed to sign token: %w", err)
	}
	resp.AccessToken = token
	resp.ExpiresAt = &expires
	return nil
}
