package entity

import "time"

// IPO calendar entry statuses.
const (
	IpoStatusAnnounced = "announced"
	IpoStatusPricing   = "pricing"
	IpoStatusListed    = "listed"
	IpoStatusPostponed = "postponed"
	IpoStatusWithdrawn = "withdrawn"
)

// IpoStatuses lists every valid IPO calendar status.
var IpoStatuses = []string{
	IpoStatusAnnounced, IpoStatusPricing, IpoStatusListed,
	IpoStatusPostponed, IpoStatusWithdrawn,
}

// IpoCalendarEntry is an upcoming or recent float on the exchange.
type IpoCalendarEntry struct {
	ID                  string
	CompanyName         string
	Sector              string
	ExpectedListingDate *time.Time
	OfferPriceRange     string
	SharesOffered       string
	ExpectedMarketCap   string
	LeadUnderwriter     string
	Status              string
	CreatedAt           time.Time
}
