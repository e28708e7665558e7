package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/asxpathway/pathway-api/internal/application/dto"
	"github.com/asxpathway/pathway-api/internal/domain/entity"
	"github.com/asxpathway/pathway-api/internal/domain/repository"
	"github.com/asxpathway/pathway-api/internal/domain/timeline"
)

// CompanyUseCase applies business rules for companies. Journey-stage
// mutations go through the timeline package, not here.
type CompanyUseCase struct {
	repo repository.CompanyRepository
}

// NewCompanyUseCase builds the use case with the persistence port.
func NewCompanyUseCase(repo repository.CompanyRepository) *CompanyUseCase {
	return &CompanyUseCase{repo: repo}
}

// Create registers a company. The journey always starts at exploration
// unless the caller supplies a valid stage.
func (uc *CompanyUseCase) Create(in dto.CreateCompanyRequest) (*dto.CompanyResponse, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	stage := in.ListingStage
	if stage == "" {
		stage = timeline.StageExploration
	}
	company := &entity.Company{
		ID:                uuid.New().String(),
		Name:              in.Name,
		ABN:               in.ABN,
		Industry:          in.Industry,
		Size:              in.Size,
		ListingStage:      stage,
		TargetListingDate: in.TargetListingDate,
		KeyMetrics:        in.KeyMetrics,
		CreatedAt:         time.Now(),
	}
	if err := uc.repo.Create(company); err != nil {
		return nil, err
	}
	return ToCompanyResponse(company), nil
}

// GetByID fetches a company; nil when absent.
func (uc *CompanyUseCase) GetByID(id string) (*dto.CompanyResponse, error) {
	company, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return ToCompanyResponse(company), nil
}

// List returns every company, newest first.
func (uc *CompanyUseCase) List() ([]dto.CompanyResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.CompanyResponse, 0, len(list))
	for _, c := range list {
		out = append(out, *ToCompanyResponse(c))
	}
	return out, nil
}

// Update applies a partial non-timeline update; nil when the company does
// not exist.
func (uc *CompanyUseCase) Update(id string, in dto.UpdateCompanyRequest) (*dto.CompanyResponse, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	company, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, nil
	}
	if in.Name != nil {
		company.Name = *in.Name
	}
	if in.ABN != nil {
		company.ABN = *in.ABN
	}
	if in.Industry != nil {
		company.Industry = *in.Industry
	}
	if in.Size != nil {
		company.Size = *in.Size
	}
	if in.KeyMetrics != nil {
		company.KeyMetrics = in.KeyMetrics
	}
	if err := uc.repo.Update(company); err != nil {
		return nil, err
	}
	return ToCompanyResponse(company), nil
}

// ToCompanyResponse maps the entity to its response shape.
func ToCompanyResponse(c *entity.Company) *dto.CompanyResponse {
	if c == nil {
		return nil
	}
	return &dto.CompanyResponse{
		ID:                c.ID,
		Name:              c.Name,
		ABN:               c.ABN,
		Industry:          c.Industry,
		Size:              c.Size,
		ListingStage:      c.ListingStage,
		TargetListingDate: c.TargetListingDate,
		KeyMetrics:        c.KeyMetrics,
		CreatedAt:         c.CreatedAt,
	}
}
