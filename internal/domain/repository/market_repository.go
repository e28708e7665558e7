package repository

import "github.com/asxpathway/pathway-api/internal/domain/entity"

// MarketDataFilter narrows market data listings.
type MarketDataFilter struct {
	Sector string
	Limit  int // 0 = no limit
}

// MarketDataRepository defines the persistence port for MarketData (DIP).
// UpdateBySymbol patches an existing symbol and refreshes last_updated;
// nil return means the symbol is unknown.
type MarketDataRepository interface {
	Create(data *entity.MarketData) error
	List(filter MarketDataFilter) ([]*entity.MarketData, error)
	UpdateBySymbol(symbol string, data *entity.MarketData) (*entity.MarketData, error)
}

// IpoCalendarFilter narrows IPO calendar listings.
type IpoCalendarFilter struct {
	Status string
	Limit  int // 0 = no limit
}

// IpoCalendarRepository defines the persistence port for IpoCalendarEntry (DIP).
type IpoCalendarRepository interface {
	Create(entry *entity.IpoCalendarEntry) error
	GetByID(id string) (*entity.IpoCalendarEntry, error)
	List(filter IpoCalendarFilter) ([]*entity.IpoCalendarEntry, error)
	Update(entry *entity.IpoCalendarEntry) error
}

// MarketSentimentRepository defines the persistence port for MarketSentiment (DIP).
// List returns snapshots newest first; limit 0 means all.
type MarketSentimentRepository interface {
	Create(s *entity.MarketSentiment) error
	List(limit int) ([]*entity.MarketSentiment, error)
	Latest() (*entity.MarketSentiment, error)
}
