package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/asxpathway/pathway-api/internal/application/auth"
	"github.com/asxpathway/pathway-api/internal/application/dto"
	"github.com/asxpathway/pathway-api/internal/domain"
	"github.com/asxpathway/pathway-api/internal/metrics"
)

// AuthHandler handles token issuing.
type AuthHandler struct {
	uc        *auth.UseCase
	collector *metrics.Collector
}

// NewAuthHandler builds the handler injecting the use case.
func NewAuthHandler(uc *auth.UseCase, collector *metrics.Collector) *AuthHandler {
	return &AuthHandler{uc: uc, collector: collector}
}

// Login godoc
// @Summary      Log in and receive a Bearer token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "Credentials"
// @Success      200   {object}  dto.LoginResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return writeInvalidBody(c)
	}
	out, err := h.uc.Login(in)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			h.collector.RecordLogin("failure")
		}
		return writeError(c, err)
	}
	h.collector.RecordLogin("success")
	return c.JSON(out)
}
