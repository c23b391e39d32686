package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/donationDB/Donation-Web/internal/dto"
	"github.com/donationDB/Donation-Web/internal/listing"
	"github.com/donationDB/Donation-Web/internal/services"
)

type CategoryHandler struct {
	categoryService *services.CategoryService
}

func NewCategoryHandler(categoryService *services.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

func (h *CategoryHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.categoryService.List(c.UserContext(), listing.FieldQuery{
		Keyword:     c.Query("keyword"),
		SearchField: c.Query("searchField"),
		SortField:   sortParam(c),
	}))
}

func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "잘못된 요청 형식입니다.")
	}
	if err := dto.Validate(&req); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, err.Error())
	}

	category, err := h.categoryService.Create(c.UserContext(), &req)
	if err != nil {
		if errors.Is(err, services.ErrCategoryExists) {
			return errorJSON(c, fiber.StatusConflict, err.Error())
		}
		return serverError(c, "categories.create", err)
	}
	return c.Status(fiber.StatusCreated).JSON(category)
}

func (h *CategoryHandler) Delete(c *fiber.Ctx) error {
	if err := h.categoryService.Delete(c.UserContext(), param(c, "id")); err != nil {
		if errors.Is(err, services.ErrCategoryNotFound) {
			return errorJSON(c, fiber.StatusNotFound, err.Error())
		}
		return serverError(c, "categories.delete", err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

type CompanyHandler struct {
	companyService *services.CompanyService
}

func NewCompanyHandler(companyService *services.CompanyService) *CompanyHandler {
	return &CompanyHandler{companyService: companyService}
}

func (h *CompanyHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.companyService.List(c.UserContext(), c.Query("keyword")))
}

func (h *CompanyHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateCompanyRequest
	if err := c.BodyParser(&req); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "잘못된 요청 형식입니다.")
	}
	if err := dto.Validate(&req); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, err.Error())
	}

	company, err := h.companyService.Create(c.UserContext(), &req)
	if err != nil {
		if errors.Is(err, services.ErrCompanyExists) {
			return errorJSON(c, fiber.StatusConflict, err.Error())
		}
		return serverError(c, "companies.create", err)
	}
	return c.Status(fiber.StatusCreated).JSON(company)
}

func (h *CompanyHandler) Delete(c *fiber.Ctx) error {
	err := h.companyService.Delete(c.UserContext(), param(c, "id"))
	switch {
	case err == nil:
		return c.SendStatus(fiber.StatusNoContent)
	case errors.Is(err, services.ErrCompanyNotFound):
		return errorJSON(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrCompanyInUse):
		return errorJSON(c, fiber.StatusConflict, err.Error())
	default:
		return serverError(c, "companies.delete", err)
	}
}
