package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/asxpathway/pathway-api/internal/domain/entity"
	"github.com/asxpathway/pathway-api/internal/domain/repository"
)

var _ repository.CompanyRepository = (*CompanyRepo)(nil)

// CompanyRepo implements the CompanyRepository port over PostgreSQL.
type CompanyRepo struct {
	pool *pgxpool.Pool
}

// NewCompanyRepository builds the persistence adapter for companies.
func NewCompanyRepository(pool *pgxpool.Pool) *CompanyRepo {
	return &CompanyRepo{pool: pool}
}

// Create persists a new company.
func (r *CompanyRepo) Create(company *entity.Company) error {
	query := `
		INSERT INTO companies (id, name, abn, industry, size, listing_stage, target_listing_date, key_metrics, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.pool.Exec(context.Background(), query,
		company.ID, company.Name, company.ABN, company.Industry, company.Size,
		company.ListingStage, company.TargetListingDate, company.KeyMetrics, company.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert company: %w", err)
	}
	return nil
}

// GetByID fetches a company by id; nil when absent.
func (r *CompanyRepo) GetByID(id string) (*entity.Company, error) {
	query := `
		SELECT id, name, abn, industry, size, listing_stage, target_listing_date, key_metrics, created_at
		FROM companies WHERE id = $1`
	var c entity.Company
	err := r.pool.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.Name, &c.ABN, &c.Industry, &c.Size,
		&c.ListingStage, &c.TargetListingDate, &c.KeyMetrics, &c.CreatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company: %w", err)
	}
	return &c, nil
}

// List returns every company, newest first.
func (r *CompanyRepo) List() ([]*entity.Company, error) {
	query := `
		SELECT id, name, abn, industry, size, listing_stage, target_listing_date, key_metrics, created_at
		FROM companies ORDER BY created_at DESC`
	rows, err := r.pool.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	defer rows.Close()

	var list []*entity.Company
	for rows.Next() {
		var c entity.Company
		if err := rows.Scan(&c.ID, &c.Name, &c.ABN, &c.Industry, &c.Size,
			&c.ListingStage, &c.TargetListingDate, &c.KeyMetrics, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan company: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Update rewrites an existing company row. Timeline fields go through
// UpdateTimeline.
func (r *CompanyRepo) Update(company *entity.Company) error {
	query := `
		UPDATE companies SET name = $2, abn = $3, industry = $4, size = $5, key_metrics = $6
		WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query,
		company.ID, company.Name, company.ABN, company.Industry, company.Size, company.KeyMetrics,
	)
	if err != nil {
		return fmt.Errorf("update company: %w", err)
	}
	return nil
}

// UpdateTimeline patches only the supplied timeline fields in one statement
// and returns the post-update row; nil when the id does not exist.
func (r *CompanyRepo) UpdateTimeline(id string, stage *string, targetDate *time.Time) (*entity.Company, error) {
	query := `
		UPDATE companies
		SET listing_stage       = COALESCE($2, listing_stage),
		    target_listing_date = COALESCE($3, target_listing_date)
		WHERE id = $1
		RETURNING id, name, abn, industry, size, listing_stage, target_listing_date, key_metrics, created_at`
	var c entity.Company
	err := r.pool.QueryRow(context.Background(), query, id, stage, targetDate).Scan(
		&c.ID, &c.Name, &c.ABN, &c.Industry, &c.Size,
		&c.ListingStage, &c.TargetListingDate, &c.KeyMetrics, &c.CreatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("update company timeline: %w", err)
	}
	return &c, nil
}
