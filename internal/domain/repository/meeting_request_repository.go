package repository

import "github.com/asxpathway/pathway-api/internal/domain/entity"

// MeetingRequestRepository defines the persistence port for MeetingRequest (DIP).
// List with an empty userID returns every request, newest first.
type MeetingRequestRepository interface {
	Create(req *entity.MeetingRequest) error
	List(userID string) ([]*entity.MeetingRequest, error)
}
