package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/asxpathway/pathway-api/internal/application/dto"
	"github.com/asxpathway/pathway-api/internal/domain"
	"github.com/asxpathway/pathway-api/internal/domain/entity"
	"github.com/asxpathway/pathway-api/internal/domain/repository"
)

// MeetingUseCase applies business rules for adviser meeting requests.
type MeetingUseCase struct {
	repo     repository.MeetingRequestRepository
	userRepo repository.UserRepository
}

// NewMeetingUseCase builds the use case with its persistence ports.
func NewMeetingUseCase(repo repository.MeetingRequestRepository, userRepo repository.UserRepository) *MeetingUseCase {
	return &MeetingUseCase{repo: repo, userRepo: userRepo}
}

// Create books a meeting request. The preferred date is re-validated
// server-side and new requests always start pending.
func (uc *MeetingUseCase) Create(in dto.CreateMeetingRequest) (*dto.MeetingRequestResponse, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	user, err := uc.userRepo.GetByID(in.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	req := &entity.MeetingRequest{
		ID:            uuid.New().String(),
		UserID:        in.UserID,
		MeetingType:   in.MeetingType,
		PreferredDate: in.PreferredDate,
		Notes:         in.Notes,
		Status:        entity.MeetingStatusPending,
		CreatedAt:     time.Now(),
	}
	if err := uc.repo.Create(req); err != nil {
		return nil, err
	}
	return meetingToResponse(req), nil
}

// List returns meeting requests, newest first, optionally for one user.
func (uc *MeetingUseCase) List(userID string) ([]dto.MeetingRequestResponse, error) {
	list, err := uc.repo.List(userID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MeetingRequestResponse, 0, len(list))
	for _, m := range list {
		out = append(out, *meetingToResponse(m))
	}
	return out, nil
}

func meetingToResponse(m *entity.MeetingRequest) *dto.MeetingRequestResponse {
	if m == nil {
		return nil
	}
	return &dto.MeetingRequestResponse{
		ID:            m.ID,
		UserID:        m.UserID,
		MeetingType:   m.MeetingType,
		PreferredDate: m.PreferredDate,
		Notes:         m.Notes,
		Status:        m.Status,
		CreatedAt:     m.CreatedAt,
	}
}
