package repository

import "github.com/asxpathway/pathway-api/internal/domain/entity"

// ListingStageRepository defines the persistence port for ListingStage (DIP).
// List returns stages sorted by their journey order.
type ListingStageRepository interface {
	Create(stage *entity.ListingStage) error
	List() ([]*entity.ListingStage, error)
}
