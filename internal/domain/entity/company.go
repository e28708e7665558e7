package entity

import (
	"encoding/json"
	"time"
)

// Company represents an organisation working toward an ASX listing.
// ListingStage is always one of the values in timeline.Stages.
type Company struct {
	ID                string
	Name              string
	ABN               string
	Industry          string
	Size              string // startup, small, medium, large
	ListingStage      string // exploration, preparation, application, listed
	TargetListingDate *time.Time
	KeyMetrics        json.RawMessage
	CreatedAt         time.Time
}
