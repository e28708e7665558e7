package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/asxpathway/pathway-api/internal/application/dto"
	"github.com/asxpathway/pathway-api/internal/application/usecase"
	"github.com/asxpathway/pathway-api/internal/domain/repository"
)

// ResourceHandler handles HTTP requests for the resource centre.
type ResourceHandler struct {
	uc *usecase.ResourceUseCase
}

// NewResourceHandler builds the handler injecting the use case.
func NewResourceHandler(uc *usecase.ResourceUseCase) *ResourceHandler {
	return &ResourceHandler{uc: uc}
}

// List godoc
// @Summary      List resources
// @Tags         resources
// @Produce      json
// @Param        type      query  string  false  "Filter by type"
// @Param        category  query  string  false  "Filter by category"
// @Success      200  {array}  dto.ResourceResponse
// @Router       /api/resources [get]
func (h *ResourceHandler) List(c *fiber.Ctx) error {
	filter := repository.ResourceFilter{
		Type:     c.Query("type"),
		Category: c.Query("category"),
	}
	out, err := h.uc.List(filter)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Get a resource by id
// @Tags         resources
// @Produce      json
// @Param        id   path  string  true  "Resource id"
// @Success      200  {object}  dto.ResourceResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/resources/{id} [get]
func (h *ResourceHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	if out == nil {
		return writeNotFound(c, "resource not found")
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Create a resource
// @Tags         resources
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateResourceRequest  true  "Resource data"
// @Success      201   {object}  dto.ResourceResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/resources [post]
func (h *ResourceHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateResourceRequest
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
// @Summary      Update a resource (partial)
// @Tags         resources
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "Resource id"
// @Param        body  body  dto.UpdateResourceRequest  true  "Fields to update"
// @Success      200   {object}  dto.ResourceResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/resources/{id} [put]
func (h *ResourceHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateResourceRequest
	if err := c.BodyParser(&in); err != nil {
		return writeInvalidBody(c)
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	if out == nil {
		return writeNotFound(c, "resource not found")
	}
	return c.JSON(out)
}
