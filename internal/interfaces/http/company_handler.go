package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/asxpathway/pathway-api/internal/application/dto"
	"github.com/asxpathway/pathway-api/internal/application/timeline"
	"github.com/asxpathway/pathway-api/internal/application/usecase"
	"github.com/asxpathway/pathway-api/internal/metrics"
)

// CompanyHandler handles HTTP requests for companies, including the
// timeline patch.
type CompanyHandler struct {
	uc         *usecase.CompanyUseCase
	timelineUC *timeline.UseCase
	collector  *metrics.Collector
}

// NewCompanyHandler builds the handler injecting both use cases.
func NewCompanyHandler(uc *usecase.CompanyUseCase, timelineUC *timeline.UseCase, collector *metrics.Collector) *CompanyHandler {
	return &CompanyHandler{uc: uc, timelineUC: timelineUC, collector: collector}
}

// List godoc
// @Summary      List companies
// @Tags         companies
// @Produce      json
// @Success      200  {array}  dto.CompanyResponse
// @Router       /api/companies [get]
func (h *CompanyHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Get a company by id
// @Tags         companies
// @Produce      json
// @Param        id   path  string  true  "Company id"
// @Success      200  {object}  dto.CompanyResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/companies/{id} [get]
func (h *CompanyHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	if out == nil {
		return writeNotFound(c, "company not found")
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Register a company
// @Tags         companies
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCompanyRequest  true  "Company data"
// @Success      201   {object}  dto.CompanyResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/companies [post]
func (h *CompanyHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCompanyRequest
	if err := c.BodyParser(&in); err != nil {
		return writeInvalidBody(c)
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Update a company (partial, non-timeline fields)
// @Tags         companies
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "Company id"
// @Param        body  body  dto.UpdateCompanyRequest  true  "Fields to update"
// @Success      200   {object}  dto.CompanyResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/companies/{id} [put]
func (h *CompanyHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateCompanyRequest
	if err := c.BodyParser(&in); err != nil {
		return writeInvalidBody(c)
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	if out == nil {
		return writeNotFound(c, "company not found")
	}
	return c.JSON(out)
}

// UpdateTimeline godoc
// @Summary      Patch a company's listing stage and target date
// @Tags         companies
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "Company id"
// @Param        body  body  dto.UpdateTimelineRequest  true  "Timeline patch"
// @Success      200   {object}  dto.CompanyResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/companies/{id}/timeline [patch]
func (h *CompanyHandler) UpdateTimeline(c *fiber.Ctx) error {
	var in dto.UpdateTimelineRequest
	if err := c.BodyParser(&in); err != nil {
		return writeInvalidBody(c)
	}
	out, err := h.timelineUC.Update(c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	h.collector.RecordTimelinePatch()
	return c.JSON(out)
}
