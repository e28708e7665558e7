package usecase

import (
	"github.com/google/uuid"

	"github.com/asxpathway/pathway-api/internal/application/dto"
	"github.com/asxpathway/pathway-api/internal/domain/entity"
	"github.com/asxpathway/pathway-api/internal/domain/repository"
)

// ListingStageUseCase applies business rules for journey stages.
type ListingStageUseCase struct {
	repo repository.ListingStageRepository
}

// NewListingStageUseCase builds the use case with the persistence port.
func NewListingStageUseCase(repo repository.ListingStageRepository) *ListingStageUseCase {
	return &ListingStageUseCase{repo: repo}
}

// Create defines a new journey stage.
func (uc *ListingStageUseCase) Create(in dto.CreateListingStageRequest) (*dto.ListingStageResponse, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	stage := &entity.ListingStage{
		ID:           uuid.New().String(),
		Name:         in.Name,
		Description:  in.Description,
		Order:        in.Order,
		RoleSpecific: in.RoleSpecific,
	}
	if err := uc.repo.Create(stage); err != nil {
		return nil, err
	}
	return stageToResponse(stage), nil
}

// List returns stages in journey order.
func (uc *ListingStageUseCase) List() ([]dto.ListingStageResponse, error) {
	stages, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.ListingStageResponse, 0, len(stages))
	for _, s := range stages {
		out = append(out, *stageToResponse(s))
	}
	return out, nil
}

func stageToResponse(s *entity.ListingStage) *dto.ListingStageResponse {
	if s == nil {
		return nil
	}
	return &dto.ListingStageResponse{
		ID:           s.ID,
		Name:         s.Name,
		Description:  s.Description,
		Order:        s.Order,
		RoleSpecific: s.RoleSpecific,
	}
}
