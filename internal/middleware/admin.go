package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"

	"github.com/donationDB/Donation-Web/internal/config"
	"github.com/donationDB/Donation-Web/internal/dto"
)

// AdminRequired guards the admin routes. With no JWT_SECRET configured it
// lets every request through; otherwise it needs a valid token whose role
// claim is "admin".
func AdminRequired(cfg *config.Config) fiber.Handler {
	if cfg.JWTSecret == "" {
		return func(c *fiber.Ctx) error { return c.Next() }
	}
	return JWTProtected(cfg, requireAdminRole)
}

func requireAdminRole(c *fiber.Ctx) error {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok || token == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "인증이 필요합니다."})
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "인증이 필요합니다."})
	}
	if role, _ := claims["role"].(string); role != "admin" {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Error: "관리자 권한이 필요합니다."})
	}
	return c.Next()
}
