package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/asxpathway/pathway-api/internal/application/dto"
	"github.com/asxpathway/pathway-api/internal/application/usecase"
	"github.com/asxpathway/pathway-api/internal/domain/repository"
)

// MarketHandler handles HTTP requests for the market intelligence surface:
// ASX snapshots, the IPO calendar and daily sentiment.
type MarketHandler struct {
	uc *usecase.MarketUseCase
}

// NewMarketHandler builds the handler injecting the use case.
func NewMarketHandler(uc *usecase.MarketUseCase) *MarketHandler {
	return &MarketHandler{uc: uc}
}

// ListMarketData godoc
// @Summary      List market snapshots
// @Tags         market
// @Produce      json
// @Param        sector  query  string  false  "Filter by sector"
// @Param        limit   query  int     false  "Max rows"
// @Success      200  {array}  dto.MarketDataResponse
// @Router       /api/market-data [get]
func (h *MarketHandler) ListMarketData(c *fiber.Ctx) error {
	filter := repository.MarketDataFilter{
		Sector: c.Query("sector"),
		Limit:  c.QueryInt("limit", 0),
	}
	out, err := h.uc.ListMarketData(filter)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// CreateMarketData godoc
// @Summary      Store a market snapshot
// @Tags         market
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateMarketDataRequest  true  "Snapshot"
// @Success      201   {object}  dto.MarketDataResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/market-data [post]
func (h *MarketHandler) CreateMarketData(c *fiber.Ctx) error {
	var in dto.CreateMarketDataRequest
	if err := c.BodyParser(&in); err != nil {
		return writeInvalidBody(c)
	}
	out, err := h.uc.CreateMarketData(in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UpdateMarketData godoc
// @Summary      Patch a symbol's market snapshot
// @Tags         market
// @Accept       json
// @Produce      json
// @Param        symbol  path  string  true  "ASX ticker"
// @Param        body    body  dto.UpdateMarketDataRequest  true  "Fields to update"
// @Success      200   {object}  dto.MarketDataResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/market-data/{symbol} [put]
func (h *MarketHandler) UpdateMarketData(c *fiber.Ctx) error {
	var in dto.UpdateMarketDataRequest
	if err := c.BodyParser(&in); err != nil {
		return writeInvalidBody(c)
	}
	out, err := h.uc.UpdateMarketData(c.Params("symbol"), in)
	if err != nil {
		return writeError(c, err)
	}
	if out == nil {
		return writeNotFound(c, "symbol not found")
	}
	return c.JSON(out)
}

// ListIpoCalendar godoc
// @Summary      List IPO calendar entries
// @Tags         market
// @Produce      json
// @Param        status  query  string  false  "Filter by status"
// @Param        limit   query  int     false  "Max rows"
// @Success      200  {array}  dto.IpoCalendarResponse
// @Router       /api/ipo-calendar [get]
func (h *MarketHandler) ListIpoCalendar(c *fiber.Ctx) error {
	filter := repository.IpoCalendarFilter{
		Status: c.Query("status"),
		Limit:  c.QueryInt("limit", 0),
	}
	out, err := h.uc.ListIpoCalendar(filter)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// CreateIpoCalendarEntry godoc
// @Summary      Store an IPO calendar entry
// @Tags         market
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateIpoCalendarRequest  true  "Calendar entry"
// @Success      201   {object}  dto.IpoCalendarResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/ipo-calendar [post]
func (h *MarketHandler) CreateIpoCalendarEntry(c *fiber.Ctx) error {
	var in dto.CreateIpoCalendarRequest
	if err := c.BodyParser(&in); err != nil {
		return writeInvalidBody(c)
	}
	out, err := h.uc.CreateIpoCalendarEntry(in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UpdateIpoCalendarEntry godoc
// @Summary      Patch an IPO calendar entry
// @Tags         market
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "Entry id"
// @Param        body  body  dto.UpdateIpoCalendarRequest  true  "Fields to update"
// @Success      200   {object}  dto.IpoCalendarResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/ipo-calendar/{id} [put]
func (h *MarketHandler) UpdateIpoCalendarEntry(c *fiber.Ctx) error {
	var in dto.UpdateIpoCalendarRequest
	if err := c.BodyParser(&in); err != nil {
		return writeInvalidBody(c)
	}
	out, err := h.uc.UpdateIpoCalendarEntry(c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	if out == nil {
		return writeNotFound(c, "calendar entry not found")
	}
	return c.JSON(out)
}

// ListMarketSentiment godoc
// @Summary      List sentiment snapshots, newest first
// @Tags         market
// @Produce      json
// @Param        limit  query  int  false  "Max rows"
// @Success      200  {array}  dto.MarketSentimentResponse
// @Router       /api/market-sentiment [get]
func (h *MarketHandler) ListMarketSentiment(c *fiber.Ctx) error {
	out, err := h.uc.ListMarketSentiment(c.QueryInt("limit", 0))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// LatestMarketSentiment godoc
// @Summary      Get the newest sentiment snapshot
// @Tags         market
// @Produce      json
// @Success      200  {object}  dto.MarketSentimentResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/market-sentiment/latest [get]
func (h *MarketHandler) LatestMarketSentiment(c *fiber.Ctx) error {
	out, err := h.uc.LatestMarketSentiment()
	if err != nil {
		return writeError(c, err)
	}
	if out == nil {
		return writeNotFound(c, "no sentiment data")
	}
	return c.JSON(out)
}

// CreateMarketSentiment godoc
// @Summary      Store a sentiment snapshot
// @Tags         market
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateMarketSentimentRequest  true  "Snapshot"
// @Success      201   {object}  dto.MarketSentimentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/market-sentiment [post]
func (h *MarketHandler) CreateMarketSentiment(c *fiber.Ctx) error {
	var in dto.CreateMarketSentimentRequest
	if err := c.BodyParser(&in); err != nil {
		return writeInvalidBody(c)
	}
	out, err := h.uc.CreateMarketSentiment(in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
