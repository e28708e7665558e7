package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// MarketSentiment is a daily market mood snapshot.
// SentimentScore is 1..100 when present.
type MarketSentiment struct {
	ID                 string
	Date               time.Time
	ASXIndex           string
	IndexChange        decimal.NullDecimal
	IndexChangePercent decimal.NullDecimal
	TradingVolume      string
	AdvancingStocks    *int
	DecliningStocks    *int
	SentimentScore     *int
	VolatilityIndex    string
	Notes              string
}
