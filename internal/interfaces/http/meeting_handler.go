package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/asxpathway/pathway-api/internal/application/dto"
	"github.com/asxpathway/pathway-api/internal/application/usecase"
)

// MeetingHandler handles HTTP requests for adviser meeting requests.
type MeetingHandler struct {
	uc *usecase.MeetingUseCase
}

// NewMeetingHandler builds the handler injecting the use case.
func NewMeetingHandler(uc *usecase.MeetingUseCase) *MeetingHandler {
	return &MeetingHandler{uc: uc}
}

// List godoc
// @Summary      List meeting requests
// @Tags         meetings
// @Produce      json
// @Param        userId  query  string  false  "Filter by requesting user"
// @Success      200  {array}  dto.MeetingRequestResponse
// @Router       /api/meeting-requests [get]
func (h *MeetingHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Query("userId"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Request a meeting with an adviser
// @Tags         meetings
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateMeetingRequest  true  "Meeting request"
// @Success      201   {object}  dto.MeetingRequestResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/meeting-requests [post]
func (h *MeetingHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateMeetingRequest
	if err := c.BodyParser(&in); err != nil {
		return writeInvalidBody(c)
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
