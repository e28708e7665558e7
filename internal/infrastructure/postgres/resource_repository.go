package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/asxpathway/pathway-api/internal/domain/entity"
	"github.com/asxpathway/pathway-api/internal/domain/repository"
)

var _ repository.ResourceRepository = (*ResourceRepo)(nil)

// ResourceRepo implements the ResourceRepository port over PostgreSQL.
type ResourceRepo struct {
	pool *pgxpool.Pool
}

// NewResourceRepository builds the persistence adapter for resources.
func NewResourceRepository(pool *pgxpool.Pool) *ResourceRepo {
	return &ResourceRepo{pool: pool}
}

// Create persists a new resource.
func (r *ResourceRepo) Create(resource *entity.Resource) error {
	query := `
		INSERT INTO resources (id, title, type, category, target_roles, url, content, tags, is_public)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.pool.Exec(context.Background(), query,
		resource.ID, resource.Title, resource.Type, resource.Category,
		resource.TargetRoles, resource.URL, resource.Content, resource.Tags, resource.IsPublic,
	)
	if err != nil {
		return fmt.Errorf("insert resource: %w", err)
	}
	return nil
}

// GetByID fetches a resource by id; nil when absent.
func (r *ResourceRepo) GetByID(id string) (*entity.Resource, error) {
	query := `
		SELECT id, title, type, category, target_roles, url, content, tags, is_public
		FROM resources WHERE id = $1`
	var res entity.Resource
	err := r.pool.QueryRow(context.Background(), query, id).Scan(
		&res.ID, &res.Title, &res.Type, &res.Category, &res.TargetRoles,
		&res.URL, &res.Content, &res.Tags, &res.IsPublic,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get resource: %w", err)
	}
	return &res, nil
}

// List returns resources, optionally filtered by type and category.
func (r *ResourceRepo) List(filter repository.ResourceFilter) ([]*entity.Resource, error) {
	query := `
		SELECT id, title, type, category, target_roles, url, content, tags, is_public
		FROM resources
		WHERE ($1 = '' OR type = $1)
		  AND ($2 = '' OR category = $2)
		ORDER BY title`
	rows, err := r.pool.Query(context.Background(), query, filter.Type, filter.Category)
	if err != nil {
		return nil, fmt.Errorf("list resources: %w", err)
	}
	defer rows.Close()

	var list []*entity.Resource
	for rows.Next() {
		var res entity.Resource
		if err := rows.Scan(&res.ID, &res.Title, &res.Type, &res.Category, &res.TargetRoles,
			&res.URL, &res.Content, &res.Tags, &res.IsPublic); err != nil {
			return nil, fmt.Errorf("scan resource: %w", err)
		}
		list = append(list, &res)
	}
	return list, rows.Err()
}

// Update rewrites an existing resource row.
func (r *ResourceRepo) Update(resource *entity.Resource) error {
	query := `
		UPDATE resources SET title = $2, type = $3, category = $4, target_roles = $5, url = $6, content = $7, tags = $8, is_public = $9
		WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query,
		resource.ID, resource.Title, resource.Type, resource.Category,
		resource.TargetRoles, resource.URL, resource.Content, resource.Tags, resource.IsPublic,
	)
	if err != nil {
		return fmt.Errorf("update resource: %w", err)
	}
	return nil
}
