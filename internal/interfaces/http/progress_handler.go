package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/asxpathway/pathway-api/internal/application/dto"
	"github.com/asxpathway/pathway-api/internal/application/progress"
	"github.com/asxpathway/pathway-api/internal/application/usecase"
	"github.com/asxpathway/pathway-api/internal/domain/entity"
	"github.com/asxpathway/pathway-api/internal/metrics"
)

// ProgressHandler handles HTTP requests for per-user task progress. The
// user path segment accepts an id or a username; both resolve to the same
// records.
type ProgressHandler struct {
	uc        *progress.UseCase
	users     *usecase.UserUseCase
	collector *metrics.Collector
}

// NewProgressHandler builds the handler injecting its use cases.
func NewProgressHandler(uc *progress.UseCase, users *usecase.UserUseCase, collector *metrics.Collector) *ProgressHandler {
	return &ProgressHandler{uc: uc, users: users, collector: collector}
}

func (h *ProgressHandler) resolveUser(c *fiber.Ctx) (*entity.User, error) {
	return h.users.Resolve(c.Params("userIdOrUsername"))
}

// List godoc
// @Summary      List a user's progress records
// @Tags         progress
// @Produce      json
// @Param        userIdOrUsername  path  string  true  "User id or username"
// @Success      200  {array}   dto.ProgressResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/users/{userIdOrUsername}/progress [get]
func (h *ProgressHandler) List(c *fiber.Ctx) error {
	user, err := h.resolveUser(c)
	if err != nil {
		return writeError(c, err)
	}
	if user == nil {
		return writeNotFound(c, "user not found")
	}
	out, err := h.uc.GetForUser(user.ID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Set godoc
// @Summary      Set completion state for one task
// @Tags         progress
// @Accept       json
// @Produce      json
// @Param        userIdOrUsername  path  string  true  "User id or username"
// @Param        taskId            path  string  true  "Task id"
// @Param        body  body  dto.SetProgressRequest  true  "Completion state"
// @Success      200   {object}  dto.ProgressResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/users/{userIdOrUsername}/progress/{taskId} [post]
func (h *ProgressHandler) Set(c *fiber.Ctx) error {
	user, err := h.resolveUser(c)
	if err != nil {
		return writeError(c, err)
	}
	if user == nil {
		return writeNotFound(c, "user not found")
	}
	var in dto.SetProgressRequest
	if err := c.BodyParser(&in); err != nil {
		return writeInvalidBody(c)
	}
	out, err := h.uc.Set(user.ID, c.Params("taskId"), in)
	if err != nil {
		return writeError(c, err)
	}
	h.collector.RecordProgressWrite()
	return c.JSON(out)
}
