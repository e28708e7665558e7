package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/asxpathway/pathway-api/internal/domain/entity"
	"github.com/asxpathway/pathway-api/internal/domain/repository"
)

var _ repository.ListingStageRepository = (*ListingStageRepo)(nil)

// ListingStageRepo implements the ListingStageRepository port over PostgreSQL.
type ListingStageRepo struct {
	pool *pgxpool.Pool
}

// NewListingStageRepository builds the persistence adapter for listing stages.
func NewListingStageRepository(pool *pgxpool.Pool) *ListingStageRepo {
	return &ListingStageRepo{pool: pool}
}

// Create persists a new listing stage.
func (r *ListingStageRepo) Create(stage *entity.ListingStage) error {
	query := `
		INSERT INTO listing_stages (id, name, description, "order", role_specific)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.pool.Exec(context.Background(), query,
		stage.ID, stage.Name, stage.Description, stage.Order, stage.RoleSpecific,
	)
	if err != nil {
		return fmt.Errorf("insert listing stage: %w", err)
	}
	return nil
}

// List returns every stage sorted by journey order.
func (r *ListingStageRepo) List() ([]*entity.ListingStage, error) {
	query := `
		SELECT id, name, description, "order", role_specific
		FROM listing_stages ORDER BY "order"`
	rows, err := r.pool.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list listing stages: %w", err)
	}
	defer rows.Close()

	var list []*entity.ListingStage
	for rows.Next() {
		var s entity.ListingStage
		if err := rows.Scan(&s.ID, &s.Name, &s.Description, &s.Order, &s.RoleSpecific); err != nil {
			return nil, fmt.Errorf("scan listing stage: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
