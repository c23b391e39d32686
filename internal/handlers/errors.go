package handlers

import (
	"errors"
	"log/slog"
	"net/url"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/donationDB/Donation-Web/internal/dto"
)

const internalErrorMessage = "서버 오류가 발생했습니다."

func errorJSON(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(dto.ErrorResponse{Error: message})
}

// serverError logs err with the operation and request id and answers 500
// without exposing err.
func serverError(c *fiber.Ctx, operation string, err error) error {
	slog.ErrorContext(c.UserContext(), "request failed",
		"operation", operation,
		"request_id", requestID(c),
		"method", c.Method(),
		"path", c.Path(),
		"error", err,
	)
	return errorJSON(c, fiber.StatusInternalServerError, internalErrorMessage)
}

func requestID(c *fiber.Ctx) string {
	if id, ok := c.Locals("requestid").(string); ok {
		return id
	}
	return c.GetRespHeader(fiber.HeaderXRequestID)
}

// param returns the unescaped, trimmed path parameter.
func param(c *fiber.Ctx, name string) string {
	raw := c.Params(name)
	if v, err := url.PathUnescape(raw); err == nil {
		raw = v
	}
	return strings.TrimSpace(raw)
}

// sortParam reads sortField, falling back to sort.
func sortParam(c *fiber.Ctx) string {
	if v := c.Query("sortField"); v != "" {
		return v
	}
	return c.Query("sort")
}

// ErrorHandler answers errors no handler turned into a response.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := internalErrorMessage
	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
		message = e.Message
	}

	// Only expose error details for client errors (4xx), not server errors (5xx)
	if code >= 500 {
		slog.Error("unhandled server error", "method", c.Method(), "path", c.Path(),
			"request_id", requestID(c), "error", err.Error())
		message = internalErrorMessage
	}

	return errorJSON(c, code, message)
}
