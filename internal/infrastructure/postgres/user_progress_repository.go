package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/asxpathway/pathway-api/internal/domain/entity"
	"github.com/asxpathway/pathway-api/internal/domain/repository"
)

var _ repository.UserProgressRepository = (*UserProgressRepo)(nil)

// UserProgressRepo implements the UserProgressRepository port over PostgreSQL.
type UserProgressRepo struct {
	pool *pgxpool.Pool
}

// NewUserProgressRepository builds the persistence adapter for progress records.
func NewUserProgressRepository(pool *pgxpool.Pool) *UserProgressRepo {
	return &UserProgressRepo{pool: pool}
}

// ListByUser returns every progress record of one user.
func (r *UserProgressRepo) ListByUser(userID string) ([]*entity.UserProgress, error) {
	query := `
		SELECT id, user_id, task_id, completed, completed_at, notes
		FROM user_progress WHERE user_id = $1`
	rows, err := r.pool.Query(context.Background(), query, userID)
	if err != nil {
		return nil, fmt.Errorf("list progress: %w", err)
	}
	defer rows.Close()

	var list []*entity.UserProgress
	for rows.Next() {
		var p entity.UserProgress
		if err := rows.Scan(&p.ID, &p.UserID, &p.TaskID, &p.Completed, &p.CompletedAt, &p.Notes); err != nil {
			return nil, fmt.Errorf("scan progress: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Upsert writes the completion state of one (user, task) pair atomically.
// The ON CONFLICT arm against the composite unique key is the whole
// concurrency story: racing writers collapse onto one row. The CASE keeps
// the first completed_at stamp across repeated completions and clears it
// when the pair goes back to incomplete; notes survive a NULL input.
func (r *UserProgressRepo) Upsert(rec *entity.UserProgress) (*entity.UserProgress, error) {
	query := `
		INSERT INTO user_progress (id, user_id, task_id, completed, completed_at, notes)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (user_id, task_id) DO UPDATE SET
			completed    = EXCLUDED.completed,
			completed_at = CASE WHEN EXCLUDED.completed
			                    THEN COALESCE(user_progress.completed_at, EXCLUDED.completed_at)
			                    ELSE NULL END,
			notes        = COALESCE(EXCLUDED.notes, user_progress.notes)
		RETURNING id, user_id, task_id, completed, completed_at, notes`
	var p entity.UserProgress
	err := r.pool.QueryRow(context.Background(), query,
		rec.ID, rec.UserID, rec.TaskID, rec.Completed, rec.CompletedAt, rec.Notes,
	).Scan(&p.ID, &p.UserID, &p.TaskID, &p.Completed, &p.CompletedAt, &p.Notes)
	if err != nil {
		return nil, fmt.Errorf("upsert progress: %w", err)
	}
	return &p, nil
}
