package repository

import "github.com/asxpathway/pathway-api/internal/domain/entity"

// UserProgressRepository defines the persistence port for UserProgress (DIP).
//
// Upsert must be atomic: concurrent calls for the same (UserID, TaskID) pair
// may not leave two rows behind. The Postgres adapter uses a single
// INSERT ... ON CONFLICT against the composite unique index. Semantics:
//   - rec.ID is used only when the pair is new;
//   - a true Completed keeps the already-stored CompletedAt if one exists,
//     a false Completed clears it;
//   - a nil rec.Notes keeps the stored notes.
//
// The returned record is the post-write row.
type UserProgressRepository interface {
	ListByUser(userID string) ([]*entity.UserProgress, error)
	Upsert(rec *entity.UserProgress) (*entity.UserProgress, error)
}
