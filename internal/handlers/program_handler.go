package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/donationDB/Donation-Web/internal/dto"
	"github.com/donationDB/Donation-Web/internal/listing"
	"github.com/donationDB/Donation-Web/internal/services"
)

type ProgramHandler struct {
	programService *services.ProgramService
}

func NewProgramHandler(programService *services.ProgramService) *ProgramHandler {
	return &ProgramHandler{programService: programService}
}

func (h *ProgramHandler) List(c *fiber.Ctx) error {
	programs := h.programService.List(c.UserContext(), listing.ProgramQuery{
		Keyword:  c.Query("keyword"),
		Category: c.Query("category"),
		Status:   c.Query("status"),
		Sort:     listing.ParseProgramSort(sortParam(c)),
	})
	return c.JSON(programs)
}

func (h *ProgramHandler) Get(c *fiber.Ctx) error {
	program, err := h.programService.Get(c.UserContext(), param(c, "id"))
	if err != nil {
		return h.fail(c, "programs.get", err)
	}
	return c.JSON(program)
}

func (h *ProgramHandler) UpdateStatus(c *fiber.Ctx) error {
	var req dto.UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "잘못된 요청 형식입니다.")
	}
	if err := dto.Validate(&req); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, err.Error())
	}

	program, err := h.programService.UpdateStatus(c.UserContext(), param(c, "id"), req.Status)
	if err != nil {
		return h.fail(c, "programs.update_status", err)
	}
	return c.JSON(program)
}

func (h *ProgramHandler) Delete(c *fiber.Ctx) error {
	if err := h.programService.Delete(c.UserContext(), param(c, "id")); err != nil {
		return h.fail(c, "programs.delete", err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *ProgramHandler) fail(c *fiber.Ctx, operation string, err error) error {
	switch {
	case errors.Is(err, services.ErrMissingID):
		return errorJSON(c, fiber.StatusBadRequest, services.ErrMissingID.Error())
	case errors.Is(err, services.ErrInvalidStatus):
		return errorJSON(c, fiber.StatusBadRequest, services.ErrInvalidStatus.Error())
	case errors.Is(err, services.ErrProgramNotFound):
		return errorJSON(c, fiber.StatusNotFound, services.ErrProgramNotFound.Error())
	case errors.Is(err, services.ErrInvalidTransition):
		return errorJSON(c, fiber.StatusConflict, services.ErrInvalidTransition.Error())
	case errors.Is(err, services.ErrNotDeletable):
		return errorJSON(c, fiber.StatusConflict, services.ErrNotDeletable.Error())
	default:
		return serverError(c, operation, err)
	}
}
