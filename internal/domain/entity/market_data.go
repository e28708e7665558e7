package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// MarketData is one listed company's snapshot for the market intelligence
// dashboards. Price figures are NUMERIC in the database and nullable; the
// pool registers the shopspring codec so they scan straight into decimals.
type MarketData struct {
	ID                 string
	Symbol             string
	Name               string
	Sector             string
	MarketCap          string
	SharePrice         decimal.NullDecimal
	PriceChange        decimal.NullDecimal
	PriceChangePercent decimal.NullDecimal
	Volume             string
	PERatio            decimal.NullDecimal
	DividendYield      decimal.NullDecimal
	LastUpdated        time.Time
}
