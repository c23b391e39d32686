package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/donationDB/Donation-Web/internal/dto"
	"github.com/donationDB/Donation-Web/internal/listing"
	"github.com/donationDB/Donation-Web/internal/services"
)

type DonorHandler struct {
	donorService *services.DonorService
}

func NewDonorHandler(donorService *services.DonorService) *DonorHandler {
	return &DonorHandler{donorService: donorService}
}

func (h *DonorHandler) List(c *fiber.Ctx) error {
	donors, err := h.donorService.List(c.UserContext(), listing.FieldQuery{
		Keyword:     c.Query("keyword"),
		SearchField: c.Query("searchField"),
		SortField:   sortParam(c),
	})
	if err != nil {
		return serverError(c, "donors.list", err)
	}

	out := make([]dto.DonorResponse, len(donors))
	for i, d := range donors {
		out[i] = dto.NewDonorResponse(d)
	}
	return c.JSON(out)
}

func (h *DonorHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateDonorRequest
	if err := c.BodyParser(&req); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "잘못된 요청 형식입니다.")
	}
	if err := dto.Validate(&req); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, err.Error())
	}

	donor, err := h.donorService.Create(c.UserContext(), &req)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			return errorJSON(c, fiber.StatusConflict, err.Error())
		}
		return serverError(c, "donors.create", err)
	}

	return c.Status(fiber.StatusCreated).JSON(dto.NewDonorResponse(*donor))
}
