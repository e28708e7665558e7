package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/asxpathway/pathway-api/internal/application/validation"
	"github.com/asxpathway/pathway-api/internal/domain/entity"
)

// CreateMarketDataRequest input for one market snapshot row.
type CreateMarketDataRequest struct {
	Symbol             string              `json:"symbol"`
	Name               string              `json:"name"`
	Sector             string              `json:"sector"`
	MarketCap          string              `json:"marketCap"`
	SharePrice         decimal.NullDecimal `json:"sharePrice"`
	PriceChange        decimal.NullDecimal `json:"priceChange"`
	PriceChangePercent decimal.NullDecimal `json:"priceChangePercent"`
	Volume             string              `json:"volume"`
	PERatio            decimal.NullDecimal `json:"peRatio"`
	DividendYield      decimal.NullDecimal `json:"dividendYield"`
}

// Validate checks required fields.
func (r CreateMarketDataRequest) Validate() error {
	var v validation.Error
	v.Required("symbol", r.Symbol)
	v.Required("name", r.Name)
	v.Required("sector", r.Sector)
	return v.Err()
}

// UpdateMarketDataRequest partial update keyed by symbol.
type UpdateMarketDataRequest struct {
	Name               *string             `json:"name"`
	Sector             *string             `json:"sector"`
	MarketCap          *string             `json:"marketCap"`
	SharePrice         decimal.NullDecimal `json:"sharePrice"`
	PriceChange        decimal.NullDecimal `json:"priceChange"`
	PriceChangePercent decimal.NullDecimal `json:"priceChangePercent"`
	Volume             *string             `json:"volume"`
	PERatio            decimal.NullDecimal `json:"peRatio"`
	DividendYield      decimal.NullDecimal `json:"dividendYield"`
}

// Validate keeps per-field rules without requiredness.
func (r UpdateMarketDataRequest) Validate() error {
	var v validation.Error
	if r.Name != nil {
		v.Required("name", *r.Name)
	}
	if r.Sector != nil {
		v.Required("sector", *r.Sector)
	}
	return v.Err()
}

// MarketDataResponse market data output.
type MarketDataResponse struct {
	ID                 string              `json:"id"`
	Symbol             string              `json:"symbol"`
	Name               string              `json:"name"`
	Sector             string              `json:"sector"`
	MarketCap          string              `json:"marketCap,omitempty"`
	SharePrice         decimal.NullDecimal `json:"sharePrice"`
	PriceChange        decimal.NullDecimal `json:"priceChange"`
	PriceChangePercent decimal.NullDecimal `json:"priceChangePercent"`
	Volume             string              `json:"volume,omitempty"`
	PERatio            decimal.NullDecimal `json:"peRatio"`
	DividendYield      decimal.NullDecimal `json:"dividendYield"`
	LastUpdated        time.Time           `json:"lastUpdated"`
}

// CreateIpoCalendarRequest input for an IPO calendar entry.
// Status defaults to announced when omitted.
type CreateIpoCalendarRequest struct {
	CompanyName         string     `json:"companyName"`
	Sector              string     `json:"sector"`
	ExpectedListingDate *time.Time `json:"expectedListingDate"`
	OfferPriceRange     string     `json:"offerPriceRange"`
	SharesOffered       string     `json:"sharesOffered"`
	ExpectedMarketCap   string     `json:"expectedMarketCap"`
	LeadUnderwriter     string     `json:"leadUnderwriter"`
	Status              string     `json:"status"`
}

// Validate checks required fields and the status enum.
func (r CreateIpoCalendarRequest) Validate() error {
	var v validation.Error
	v.Required("companyName", r.CompanyName)
	v.Required("sector", r.Sector)
	v.OneOf("status", r.Status, entity.IpoStatuses)
	return v.Err()
}

// UpdateIpoCalendarRequest partial update for an IPO calendar entry.
type UpdateIpoCalendarRequest struct {
	CompanyName         *string    `json:"companyName"`
	Sector              *string    `json:"sector"`
	ExpectedListingDate *time.Time `json:"expectedListingDate"`
	OfferPriceRange     *string    `json:"offerPriceRange"`
	SharesOffered       *string    `json:"sharesOffered"`
	ExpectedMarketCap   *string    `json:"expectedMarketCap"`
	LeadUnderwriter     *string    `json:"leadUnderwriter"`
	Status              *string    `json:"status"`
}

// Validate keeps per-field rules without requiredness.
func (r UpdateIpoCalendarRequest) Validate() error {
	var v validation.Error
	if r.CompanyName != nil {
		v.Required("companyName", *r.CompanyName)
	}
	if r.Status != nil {
		v.OneOf("status", *r.Status, entity.IpoStatuses)
	}
	return v.Err()
}

// IpoCalendarResponse IPO calendar output.
type IpoCalendarResponse struct {
	ID                  string     `json:"id"`
	CompanyName         string     `json:"companyName"`
	Sector              string     `json:"sector"`
	ExpectedListingDate *time.Time `json:"expectedListingDate"`
	OfferPriceRange     string     `json:"offerPriceRange,omitempty"`
	SharesOffered       string     `json:"sharesOffered,omitempty"`
	ExpectedMarketCap   string     `json:"expectedMarketCap,omitempty"`
	LeadUnderwriter     string     `json:"leadUnderwriter,omitempty"`
	Status              string     `json:"status"`
	CreatedAt           time.Time  `json:"createdAt"`
}

// CreateMarketSentimentRequest input for a daily sentiment snapshot.
type CreateMarketSentimentRequest struct {
	ASXIndex           string              `json:"asxIndex"`
	IndexChange        decimal.NullDecimal `json:"indexChange"`
	IndexChangePercent decimal.NullDecimal `json:"indexChangePercent"`
	TradingVolume      string              `json:"tradingVolume"`
	AdvancingStocks    *int                `json:"advancingStocks"`
	DecliningStocks    *int                `json:"decliningStocks"`
	SentimentScore     *int                `json:"marketSentimentScore"`
	VolatilityIndex    string              `json:"volatilityIndex"`
	Notes              string              `json:"notes"`
}

// Validate keeps the sentiment score inside its 1..100 band.
func (r CreateMarketSentimentRequest) Validate() error {
	var v validation.Error
	if r.SentimentScore != nil {
		v.Range("marketSentimentScore", *r.SentimentScore, 1, 100)
	}
	return v.Err()
}

// MarketSentimentResponse sentiment output.
type MarketSentimentResponse struct {
	ID                 string              `json:"id"`
	Date               time.Time           `json:"date"`
	ASXIndex           string              `json:"asxIndex,omitempty"`
	IndexChange        decimal.NullDecimal `json:"indexChange"`
	IndexChangePercent decimal.NullDecimal `json:"indexChangePercent"`
	TradingVolume      string              `json:"tradingVolume,omitempty"`
	AdvancingStocks    *int                `json:"advancingStocks"`
	DecliningStocks    *int                `json:"decliningStocks"`
	SentimentScore     *int                `json:"marketSentimentScore"`
	VolatilityIndex    string              `json:"volatilityIndex,omitempty"`
	Notes              string              `json:"notes,omitempty"`
}
