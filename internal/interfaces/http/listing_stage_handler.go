package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/asxpathway/pathway-api/internal/application/dto"
	"github.com/asxpathway/pathway-api/internal/application/usecase"
)

// ListingStageHandler handles HTTP requests for the journey stages.
type ListingStageHandler struct {
	uc *usecase.ListingStageUseCase
}

// NewListingStageHandler builds the handler injecting the use case.
func NewListingStageHandler(uc *usecase.ListingStageUseCase) *ListingStageHandler {
	return &ListingStageHandler{uc: uc}
}

// List godoc
// @Summary      List listing stages in journey order
// @Tags         listing-stages
// @Produce      json
// @Success      200  {array}  dto.ListingStageResponse
// @Router       /api/listing-stages [get]
func (h *ListingStageHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Create a listing stage
// @Tags         listing-stages
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateListingStageRequest  true  "Stage data"
// @Success      201   {object}  dto.ListingStageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/listing-stages [post]
func (h *ListingStageHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateListingStageRequest
	if err := c.BodyParser(&in); err != nil {
		return writeInvalidBody(c)
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
