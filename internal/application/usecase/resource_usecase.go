package usecase

import (
	"github.com/google/uuid"

	"github.com/asxpathway/pathway-api/internal/application/dto"
	"github.com/asxpathway/pathway-api/internal/domain/entity"
	"github.com/asxpathway/pathway-api/internal/domain/repository"
)

// ResourceUseCase applies business rules for resource-centre entries.
type ResourceUseCase struct {
	repo repository.ResourceRepository
}

// NewResourceUseCase builds the use case with the persistence port.
func NewResourceUseCase(repo repository.ResourceRepository) *ResourceUseCase {
	return &ResourceUseCase{repo: repo}
}

// Create publishes a resource. IsPublic defaults to true when omitted.
func (uc *ResourceUseCase) Create(in dto.CreateResourceRequest) (*dto.ResourceResponse, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	isPublic := true
	if in.IsPublic != nil {
		isPublic = *in.IsPublic
	}
	res := &entity.Resource{
		ID:          uuid.New().String(),
		Title:       in.Title,
		Type:        in.Type,
		Category:    in.Category,
		TargetRoles: in.TargetRoles,
		URL:         in.URL,
		Content:     in.Content,
		Tags:        in.Tags,
		IsPublic:    isPublic,
	}
	if err := uc.repo.Create(res); err != nil {
		return nil, err
	}
	return resourceToResponse(res), nil
}

// GetByID fetches a resource; nil when absent.
func (uc *ResourceUseCase) GetByID(id string) (*dto.ResourceResponse, error) {
	res, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return resourceToResponse(res), nil
}

// List returns resources, optionally filtered by type and category.
func (uc *ResourceUseCase) List(filter repository.ResourceFilter) ([]dto.ResourceResponse, error) {
	list, err := uc.repo.List(filter)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ResourceResponse, 0, len(list))
	for _, r := range list {
		out = append(out, *resourceToResponse(r))
	}
	return out, nil
}

// Update applies a partial update; nil when the resource does not exist.
func (uc *ResourceUseCase) Update(id string, in dto.UpdateResourceRequest) (*dto.ResourceResponse, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	res, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if res == nil {
		return nil, nil
	}
	if in.Title != nil {
		res.Title = *in.Title
	}
	if in.Type != nil {
		res.Type = *in.Type
	}
	if in.Category != nil {
		res.Category = *in.Category
	}
	if in.TargetRoles != nil {
		res.TargetRoles = in.TargetRoles
	}
	if in.URL != nil {
		res.URL = *in.URL
	}
	if in.Content != nil {
		res.Content = *in.Content
	}
	if in.Tags != nil {
		res.Tags = in.Tags
	}
	if in.IsPublic != nil {
		res.IsPublic = *in.IsPublic
	}
	if err := uc.repo.Update(res); err != nil {
		return nil, err
	}
	return resourceToResponse(res), nil
}

func resourceToResponse(r *entity.Resource) *dto.ResourceResponse {
	if r == nil {
		return nil
	}
	return &dto.ResourceResponse{
		ID:          r.ID,
		Title:       r.Title,
		Type:        r.Type,
		Category:    r.Category,
		TargetRoles: r.TargetRoles,
		URL:         r.URL,
		Content:     r.Content,
		Tags:        r.Tags,
		IsPublic:    r.IsPublic,
	}
}
