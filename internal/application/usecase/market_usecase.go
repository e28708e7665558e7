package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/asxpathway/pathway-api/internal/application/dto"
	"github.com/asxpathway/pathway-api/internal/domain/entity"
	"github.com/asxpathway/pathway-api/internal/domain/repository"
)

// MarketUseCase serves the market intelligence dashboards: ASX snapshots,
// the IPO calendar and daily sentiment. Read-mostly reference data with no
// invariants beyond field typing.
type MarketUseCase struct {
	dataRepo      repository.MarketDataRepository
	calendarRepo  repository.IpoCalendarRepository
	sentimentRepo repository.MarketSentimentRepository
}

// NewMarketUseCase builds the use case with its persistence ports.
func NewMarketUseCase(
	dataRepo repository.MarketDataRepository,
	calendarRepo repository.IpoCalendarRepository,
	sentimentRepo repository.MarketSentimentRepository,
) *MarketUseCase {
	return &MarketUseCase{
		dataRepo:      dataRepo,
		calendarRepo:  calendarRepo,
		sentimentRepo: sentimentRepo,
	}
}

// CreateMarketData stores one market snapshot row.
func (uc *MarketUseCase) CreateMarketData(in dto.CreateMarketDataRequest) (*dto.MarketDataResponse, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	data := &entity.MarketData{
		ID:                 uuid.New().String(),
		Symbol:             in.Symbol,
		Name:               in.Name,
		Sector:             in.Sector,
		MarketCap:          in.MarketCap,
		SharePrice:         in.SharePrice,
		PriceChange:        in.PriceChange,
		PriceChangePercent: in.PriceChangePercent,
		Volume:             in.Volume,
		PERatio:            in.PERatio,
		DividendYield:      in.DividendYield,
		LastUpdated:        time.Now(),
	}
	if err := uc.dataRepo.Create(data); err != nil {
		return nil, err
	}
	return marketDataToResponse(data), nil
}

// ListMarketData returns snapshots, newest first, optionally filtered.
func (uc *MarketUseCase) ListMarketData(filter repository.MarketDataFilter) ([]dto.MarketDataResponse, error) {
	list, err := uc.dataRepo.List(filter)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MarketDataResponse, 0, len(list))
	for _, d := range list {
		out = append(out, *marketDataToResponse(d))
	}
	return out, nil
}

// UpdateMarketData patches one symbol's snapshot; nil when the symbol is
// unknown. last_updated is refreshed by the store.
func (uc *MarketUseCase) UpdateMarketData(symbol string, in dto.UpdateMarketDataRequest) (*dto.MarketDataResponse, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	patch := &entity.MarketData{
		SharePrice:         in.SharePrice,
		PriceChange:        in.PriceChange,
		PriceChangePercent: in.PriceChangePercent,
		PERatio:            in.PERatio,
		DividendYield:      in.DividendYield,
	}
	if in.Name != nil {
		patch.Name = *in.Name
	}
	if in.Sector != nil {
		patch.Sector = *in.Sector
	}
	if in.MarketCap != nil {
		patch.MarketCap = *in.MarketCap
	}
	if in.Volume != nil {
		patch.Volume = *in.Volume
	}
	updated, err := uc.dataRepo.UpdateBySymbol(symbol, patch)
	if err != nil {
		return nil, err
	}
	return marketDataToResponse(updated), nil
}

// CreateIpoCalendarEntry stores a calendar entry; status defaults to announced.
func (uc *MarketUseCase) CreateIpoCalendarEntry(in dto.CreateIpoCalendarRequest) (*dto.IpoCalendarResponse, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	status := in.Status
	if status == "" {
		status = entity.IpoStatusAnnounced
	}
	entry := &entity.IpoCalendarEntry{
		ID:                  uuid.New().String(),
		CompanyName:         in.CompanyName,
		Sector:              in.Sector,
		ExpectedListingDate: in.ExpectedListingDate,
		OfferPriceRange:     in.OfferPriceRange,
		SharesOffered:       in.SharesOffered,
		ExpectedMarketCap:   in.ExpectedMarketCap,
		LeadUnderwriter:     in.LeadUnderwriter,
		Status:              status,
		CreatedAt:           time.Now(),
	}
	if err := uc.calendarRepo.Create(entry); err != nil {
		return nil, err
	}
	return ipoEntryToResponse(entry), nil
}

// ListIpoCalendar returns calendar entries, optionally filtered by status.
func (uc *MarketUseCase) ListIpoCalendar(filter repository.IpoCalendarFilter) ([]dto.IpoCalendarResponse, error) {
	list, err := uc.calendarRepo.List(filter)
	if err != nil {
		return nil, err
	}
	out := make([]dto.IpoCalendarResponse, 0, len(list))
	for _, e := range list {
		out = append(out, *ipoEntryToResponse(e))
	}
	return out, nil
}

// UpdateIpoCalendarEntry patches a calendar entry; nil when absent.
func (uc *MarketUseCase) UpdateIpoCalendarEntry(id string, in dto.UpdateIpoCalendarRequest) (*dto.IpoCalendarResponse, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	entry, err := uc.calendarRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, nil
	}
	if in.CompanyName != nil {
		entry.CompanyName = *in.CompanyName
	}
	if in.Sector != nil {
		entry.Sector = *in.Sector
	}
	if in.ExpectedListingDate != nil {
		entry.ExpectedListingDate = in.ExpectedListingDate
	}
	if in.OfferPriceRange != nil {
		entry.OfferPriceRange = *in.OfferPriceRange
	}
	if in.SharesOffered != nil {
		entry.SharesOffered = *in.SharesOffered
	}
	if in.ExpectedMarketCap != nil {
		entry.ExpectedMarketCap = *in.ExpectedMarketCap
	}
	if in.LeadUnderwriter != nil {
		entry.LeadUnderwriter = *in.LeadUnderwriter
	}
	if in.Status != nil {
		entry.Status = *in.Status
	}
	if err := uc.calendarRepo.Update(entry); err != nil {
		return nil, err
	}
	return ipoEntryToResponse(entry), nil
}

// CreateMarketSentiment stores one daily sentiment snapshot, dated now.
func (uc *MarketUseCase) CreateMarketSentiment(in dto.CreateMarketSentimentRequest) (*dto.MarketSentimentResponse, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	s := &entity.MarketSentiment{
		ID:                 uuid.New().String(),
		Date:               time.Now(),
		ASXIndex:           in.ASXIndex,
		IndexChange:        in.IndexChange,
		IndexChangePercent: in.IndexChangePercent,
		TradingVolume:      in.TradingVolume,
		AdvancingStocks:    in.AdvancingStocks,
		DecliningStocks:    in.DecliningStocks,
		SentimentScore:     in.SentimentScore,
		VolatilityIndex:    in.VolatilityIndex,
		Notes:              in.Notes,
	}
	if err := uc.sentimentRepo.Create(s); err != nil {
		return nil, err
	}
	return sentimentToResponse(s), nil
}

// ListMarketSentiment returns snapshots, newest first; limit 0 means all.
func (uc *MarketUseCase) ListMarketSentiment(limit int) ([]dto.MarketSentimentResponse, error) {
	list, err := uc.sentimentRepo.List(limit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MarketSentimentResponse, 0, len(list))
	for _, s := range list {
		out = append(out, *sentimentToResponse(s))
	}
	return out, nil
}

// LatestMarketSentiment returns the newest snapshot; nil when none exist.
func (uc *MarketUseCase) LatestMarketSentiment() (*dto.MarketSentimentResponse, error) {
	s, err := uc.sentimentRepo.Latest()
	if err != nil {
		return nil, err
	}
	return sentimentToResponse(s), nil
}

func marketDataToResponse(d *entity.MarketData) *dto.MarketDataResponse {
	if d == nil {
		return nil
	}
	return &dto.MarketDataResponse{
		ID:                 d.ID,
		Symbol:             d.Symbol,
		Name:               d.Name,
		Sector:             d.Sector,
		MarketCap:          d.MarketCap,
		SharePrice:         d.SharePrice,
		PriceChange:        d.PriceChange,
		PriceChangePercent: d.PriceChangePercent,
		Volume:             d.Volume,
		PERatio:            d.PERatio,
		DividendYield:      d.DividendYield,
		LastUpdated:        d.LastUpdated,
	}
}

func ipoEntryToResponse(e *entity.IpoCalendarEntry) *dto.IpoCalendarResponse {
	if e == nil {
		return nil
	}
	return &dto.IpoCalendarResponse{
		ID:                  e.ID,
		CompanyName:         e.CompanyName,
		Sector:              e.Sector,
		ExpectedListingDate: e.ExpectedListingDate,
		OfferPriceRange:     e.OfferPriceRange,
		SharesOffered:       e.SharesOffered,
		ExpectedMarketCap:   e.ExpectedMarketCap,
		LeadUnderwriter:     e.LeadUnderwriter,
		Status:              e.Status,
		CreatedAt:           e.CreatedAt,
	}
}

func sentimentToResponse(s *entity.MarketSentiment) *dto.MarketSentimentResponse {
	if s == nil {
		return nil
	}
	return &dto.MarketSentimentResponse{
		ID:                 s.ID,
		Date:               s.Date,
		ASXIndex:           s.ASXIndex,
		IndexChange:        s.IndexChange,
		IndexChangePercent: s.IndexChangePercent,
		TradingVolume:      s.TradingVolume,
		AdvancingStocks:    s.AdvancingStocks,
		DecliningStocks:    s.DecliningStocks,
		SentimentScore:     s.SentimentScore,
		VolatilityIndex:    s.VolatilityIndex,
		Notes:              s.Notes,
	}
}
