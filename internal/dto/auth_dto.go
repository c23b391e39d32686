package dto

import (
	"time"

	"github.com/donationDB/Donation-Web/internal/models"
)

type CreateDonorRequest struct {
	Name     string  `json:"name" validate:"required"`
	Email    *string `json:"email"`
	Phone    *string `json:"phone"`
	Password string  `json:"password" validate:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse is the donor (or admin) record without its password, plus
// the role and, when tokens are enabled, a bearer token.
type LoginResponse struct {
	DonorID     *int64     `json:"donor_id,omitempty"`
	Name        string     `json:"name"`
	Email       *string    `json:"email"`
	Phone       *string    `json:"phone,omitempty"`
	CreatedAt   *time.Time `json:"created_at,omitempty"`
	Role        string     `json:"role"`
	AccessToken string     `json:"access_token,omitempty"`
	ExpiresAt   *time.Time `json:"expires_at,omitempty"`
}

// DonorResponse is a donor record as the admin list and signup return it.
type DonorResponse struct {
	DonorID   int64     `json:"donor_id"`
	Name      string    `json:"name"`
	Email     *string   `json:"email"`
	Phone     *string   `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
}

func NewDonorResponse(d models.Donor) DonorResponse {
	return DonorResponse{
		DonorID:   d.DonorID,
		Name:      d.Name,
		Email:     d.Email,
		Phone:     d.Phone,
		CreatedAt: d.CreatedAt,
	}
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type HealthResponse struct {
	OK bool `json:"ok"`
}
