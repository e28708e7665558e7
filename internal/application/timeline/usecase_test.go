package timeline

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asxpathway/pathway-api/internal/application/dto"
	"github.com/asxpathway/pathway-api/internal/application/validation"
	"github.com/asxpathway/pathway-api/internal/domain"
	"github.com/asxpathway/pathway-api/internal/domain/entity"
	"github.com/asxpathway/pathway-api/internal/domain/repository"
	stages "github.com/asxpathway/pathway-api/internal/domain/timeline"
)

type fakeCompanyRepo struct {
	companies map[string]*entity.Company
}

func newFakeCompanyRepo(companies ...*entity.Company) *fakeCompanyRepo {
	f := &fakeCompanyRepo{companies: make(map[string]*entity.Company)}
	for _, c := range companies {
		f.companies[c.ID] = c
	}
	return f
}

func (f *fakeCompanyRepo) Create(c *entity.Company) error { f.companies[c.ID] = c; return nil }
func (f *fakeCompanyRepo) GetByID(id string) (*entity.Company, error) {
	c, ok := f.companies[id]
	if !ok {
		return nil, nil
	}
	copied := *c
	return &copied, nil
}
func (f *fakeCompanyRepo) List() ([]*entity.Company, error) { return nil, nil }
func (f *fakeCompanyRepo) Update(c *entity.Company) error   { f.companies[c.ID] = c; return nil }
func (f *fakeCompanyRepo) UpdateTimeline(id string, stage *string, targetDate *time.Time) (*entity.Company, error) {
	c, ok := f.companies[id]
	if !ok {
		return nil, nil
	}
	if stage != nil {
		c.ListingStage = *stage
	}
	if targetDate != nil {
		c.TargetListingDate = targetDate
	}
	copied := *c
	return &copied, nil
}

var _ repository.CompanyRepository = (*fakeCompanyRepo)(nil)

func demoCompany() *entity.Company {
	return &entity.Company{
		ID:           "company-1",
		Name:         "Southern Cross Mining Ltd",
		ListingStage: stages.StagePreparation,
		CreatedAt:    time.Now(),
	}
}

func violationFields(t *testing.T, err error) []string {
	t.Helper()
	var verr *validation.Error
	require.True(t, errors.As(err, &verr), "expected a validation error, got %v", err)
	fields := make([]string, 0, len(verr.Violations))
	for _, v := range verr.Violations {
		fields = append(fields, v.Field)
	}
	return fields
}

func TestUpdateRejectsEmptyPatch(t *testing.T) {
	uc := NewUseCase(newFakeCompanyRepo(demoCompany()), false)

	resp, err := uc.Update("company-1", dto.UpdateTimelineRequest{})
	assert.Nil(t, resp)
	assert.Contains(t, violationFields(t, err), "patch")
}

func TestUpdateRejectsPastTargetDate(t *testing.T) {
	uc := NewUseCase(newFakeCompanyRepo(demoCompany()), false)

	past := time.Now().Add(-24 * time.Hour)
	resp, err := uc.Update("company-1", dto.UpdateTimelineRequest{TargetListingDate: &past})
	assert.Nil(t, resp)
	assert.Contains(t, violationFields(t, err), "targetListingDate")
}

func TestUpdateRejectsUnknownStage(t *testing.T) {
	uc := NewUseCase(newFakeCompanyRepo(demoCompany()), false)

	bad := "floated"
	resp, err := uc.Update("company-1", dto.UpdateTimelineRequest{ListingStage: &bad})
	assert.Nil(t, resp)
	assert.Contains(t, violationFields(t, err), "listingStage")
}

func TestUpdatePersistsFutureDate(t *testing.T) {
	repo := newFakeCompanyRepo(demoCompany())
	uc := NewUseCase(repo, false)

	future := time.Now().Add(90 * 24 * time.Hour)
	resp, err := uc.Update("company-1", dto.UpdateTimelineRequest{TargetListingDate: &future})
	require.NoError(t, err)
	require.NotNil(t, resp.TargetListingDate)
	assert.True(t, resp.TargetListingDate.Equal(future))
	// The untouched field keeps its value.
	assert.Equal(t, stages.StagePreparation, resp.ListingStage)
}

func TestUpdateMergesStageOnly(t *testing.T) {
	uc := NewUseCase(newFakeCompanyRepo(demoCompany()), false)

	next := stages.StageApplication
	resp, err := uc.Update("company-1", dto.UpdateTimelineRequest{ListingStage: &next})
	require.NoError(t, err)
	assert.Equal(t, stages.StageApplication, resp.ListingStage)
	assert.Nil(t, resp.TargetListingDate)
}

func TestUpdateUnknownCompany(t *testing.T) {
	uc := NewUseCase(newFakeCompanyRepo(), false)

	next := stages.StageListed
	resp, err := uc.Update("no-such-company", dto.UpdateTimelineRequest{ListingStage: &next})
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdateStrictProgression(t *testing.T) {
	uc := NewUseCase(newFakeCompanyRepo(demoCompany()), true)

	back := stages.StageExploration
	resp, err := uc.Update("company-1", dto.UpdateTimelineRequest{ListingStage: &back})
	assert.Nil(t, resp)
	assert.Contains(t, violationFields(t, err), "listingStage")

	// Forward moves still pass with the flag on.
	forward := stages.StageApplication
	resp, err = uc.Update("company-1", dto.UpdateTimelineRequest{ListingStage: &forward})
	require.NoError(t, err)
	assert.Equal(t, stages.StageApplication, resp.ListingStage)
}
