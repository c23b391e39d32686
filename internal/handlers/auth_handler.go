package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/donationDB/Donation-Web/internal/dto"
	"github.com/donationDB/Donation-Web/internal/services"
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "잘못된 요청 형식입니다.")
	}
	if err := dto.Validate(&req); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, err.Error())
	}

	resp, err := h.authService.Login(c.UserContext(), &req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			return errorJSON(c, fiber.StatusUnauthorized, err.Error())
		}
		return serverError(c, "auth.login", err)
	}

	return c.JSON(resp)
}
