// Package timeline implements the company timeline mutator: a validated
// partial patch of a company's listing stage and target listing date.
package timeline

import (
	"github.com/asxpathway/pathway-api/internal/application/dto"
	"github.com/asxpathway/pathway-api/internal/application/usecase"
	"github.com/asxpathway/pathway-api/internal/application/validation"
	"github.com/asxpathway/pathway-api/internal/domain"
	"github.com/asxpathway/pathway-api/internal/domain/repository"
	stages "github.com/asxpathway/pathway-api/internal/domain/timeline"
)

// UseCase applies the timeline patch rules.
type UseCase struct {
	companyRepo repository.CompanyRepository

	// strictProgression rejects patches that move the company to an earlier
	// stage in the journey order. Off by default; driven by config.
	strictProgression bool
}

// NewUseCase builds the use case with the persistence port.
func NewUseCase(companyRepo repository.CompanyRepository, strictProgression bool) *UseCase {
	return &UseCase{companyRepo: companyRepo, strictProgression: strictProgression}
}

// Update patches a company's timeline. Validation runs before any read:
// an empty patch, an unknown stage or a non-future target date never reach
// the store. Only the supplied fields change; everything else on the row
// stays as it was. Returns domain.ErrNotFound for an unknown company.
func (uc *UseCase) Update(companyID string, in dto.UpdateTimelineRequest) (*dto.CompanyResponse, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	company, err := uc.companyRepo.GetByID(companyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}

	if uc.strictProgression && in.ListingStage != nil &&
		stages.IsBackward(company.ListingStage, *in.ListingStage) {
		var v validation.Error
		v.Add("listingStage", "cannot move the company back to an earlier stage")
		return nil, v.Err()
	}

	updated, err := uc.companyRepo.UpdateTimeline(companyID, in.ListingStage, in.TargetListingDate)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		// The row vanished between the read and the patch.
		return nil, domain.ErrNotFound
	}
	return usecase.ToCompanyResponse(updated), nil
}
