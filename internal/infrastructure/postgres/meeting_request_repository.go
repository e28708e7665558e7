package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/asxpathway/pathway-api/internal/domain/entity"
	"github.com/asxpathway/pathway-api/internal/domain/repository"
)

var _ repository.MeetingRequestRepository = (*MeetingRequestRepo)(nil)

// MeetingRequestRepo implements the MeetingRequestRepository port over PostgreSQL.
type MeetingRequestRepo struct {
	pool *pgxpool.Pool
}

// NewMeetingRequestRepository builds the persistence adapter for meeting requests.
func NewMeetingRequestRepository(pool *pgxpool.Pool) *MeetingRequestRepo {
	return &MeetingRequestRepo{pool: pool}
}

// Create persists a new meeting request.
func (r *MeetingRequestRepo) Create(req *entity.MeetingRequest) error {
	query := `
		INSERT INTO meeting_requests (id, user_id, meeting_type, preferred_date, notes, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.pool.Exec(context.Background(), query,
		req.ID, req.UserID, req.MeetingType, req.PreferredDate,
		req.Notes, req.Status, req.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert meeting request: %w", err)
	}
	return nil
}

// List returns meeting requests newest first; an empty userID returns all.
func (r *MeetingRequestRepo) List(userID string) ([]*entity.MeetingRequest, error) {
	query := `
		SELECT id, user_id, meeting_type, preferred_date, notes, status, created_at
		FROM meeting_requests
		WHERE ($1 = '' OR user_id = $1)
		ORDER BY created_at DESC`
	rows, err := r.pool.Query(context.Background(), query, userID)
	if err != nil {
		return nil, fmt.Errorf("list meeting requests: %w", err)
	}
	defer rows.Close()

	var list []*entity.MeetingRequest
	for rows.Next() {
		var m entity.MeetingRequest
		if err := rows.Scan(&m.ID, &m.UserID, &m.MeetingType, &m.PreferredDate,
			&m.Notes, &m.Status, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan meeting request: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
