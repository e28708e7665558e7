// Package progress implements the progress tracker: the per-(user, task)
// completion state behind the role dashboards. Writes funnel through a single
// atomic upsert so concurrent clients can never leave two records for the
// same pair.
package progress

import (
	"time"

	"github.com/google/uuid"

	"github.com/asxpathway/pathway-api/internal/application/dto"
	"github.com/asxpathway/pathway-api/internal/domain"
	"github.com/asxpathway/pathway-api/internal/domain/entity"
	"github.com/asxpathway/pathway-api/internal/domain/repository"
)

// UseCase applies business rules for user progress records.
type UseCase struct {
	progressRepo repository.UserProgressRepository
	taskRepo     repository.TaskRepository
}

// NewUseCase builds the use case with its persistence ports.
func NewUseCase(progressRepo repository.UserProgressRepository, taskRepo repository.TaskRepository) *UseCase {
	return &UseCase{progressRepo: progressRepo, taskRepo: taskRepo}
}

// GetForUser returns every progress record for a user. A user with no
// records, including an unknown id, yields an empty slice.
func (uc *UseCase) GetForUser(userID string) ([]dto.ProgressResponse, error) {
	records, err := uc.progressRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProgressResponse, 0, len(records))
	for _, rec := range records {
		out = append(out, *toResponse(rec))
	}
	return out, nil
}

// Set records the completion state of one (user, task) pair.
//
// The write is a single upsert against the composite unique index, so the
// pair holds at most one record no matter how many clients race on it.
// Completion keeps the first completedAt stamp across repeated true writes;
// a false write clears it. Notes persist until a non-nil value overwrites
// them. The task must exist; an unknown taskID is domain.ErrNotFound rather
// than a dangling progress row.
func (uc *UseCase) Set(userID, taskID string, in dto.SetProgressRequest) (*dto.ProgressResponse, error) {
	task, err := uc.taskRepo.GetByID(taskID)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, domain.ErrNotFound
	}

	rec := &entity.UserProgress{
		ID:        uuid.New().String(),
		UserID:    userID,
		TaskID:    taskID,
		Completed: in.Completed,
		Notes:     in.Notes,
	}
	if in.Completed {
		now := time.Now()
		rec.CompletedAt = &now
	}

	saved, err := uc.progressRepo.Upsert(rec)
	if err != nil {
		return nil, err
	}
	return toResponse(saved), nil
}

func toResponse(rec *entity.UserProgress) *dto.ProgressResponse {
	if rec == nil {
		return nil
	}
	return &dto.ProgressResponse{
		ID:          rec.ID,
		UserID:      rec.UserID,
		TaskID:      rec.TaskID,
		Completed:   rec.Completed,
		CompletedAt: rec.CompletedAt,
		Notes:       rec.Notes,
	}
}
