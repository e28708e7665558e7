package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/asxpathway/pathway-api/internal/domain/entity"
	"github.com/asxpathway/pathway-api/internal/domain/repository"
)

var _ repository.IpoCalendarRepository = (*IpoCalendarRepo)(nil)

// IpoCalendarRepo implements the IpoCalendarRepository port over PostgreSQL.
type IpoCalendarRepo struct {
	pool *pgxpool.Pool
}

// NewIpoCalendarRepository builds the persistence adapter for the IPO calendar.
func NewIpoCalendarRepository(pool *pgxpool.Pool) *IpoCalendarRepo {
	return &IpoCalendarRepo{pool: pool}
}

// Create persists a new calendar entry.
func (r *IpoCalendarRepo) Create(entry *entity.IpoCalendarEntry) error {
	query := `
		INSERT INTO ipo_calendar (id, company_name, sector, expected_listing_date, offer_price_range, shares_offered, expected_market_cap, lead_underwriter, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.pool.Exec(context.Background(), query,
		entry.ID, entry.CompanyName, entry.Sector, entry.ExpectedListingDate,
		entry.OfferPriceRange, entry.SharesOffered, entry.ExpectedMarketCap,
		entry.LeadUnderwriter, entry.Status, entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert ipo calendar entry: %w", err)
	}
	return nil
}

// GetByID fetches a calendar entry by id; nil when absent.
func (r *IpoCalendarRepo) GetByID(id string) (*entity.IpoCalendarEntry, error) {
	query := `
		SELECT id, company_name, sector, expected_listing_date, offer_price_range, shares_offered, expected_market_cap, lead_underwriter, status, created_at
		FROM ipo_calendar WHERE id = $1`
	var e entity.IpoCalendarEntry
	err := r.pool.QueryRow(context.Background(), query, id).Scan(
		&e.ID, &e.CompanyName, &e.Sector, &e.ExpectedListingDate,
		&e.OfferPriceRange, &e.SharesOffered, &e.ExpectedMarketCap,
		&e.LeadUnderwriter, &e.Status, &e.CreatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get ipo calendar entry: %w", err)
	}
	return &e, nil
}

// List returns entries ordered by expected listing date, nulls last,
// optionally filtered by status.
func (r *IpoCalendarRepo) List(filter repository.IpoCalendarFilter) ([]*entity.IpoCalendarEntry, error) {
	query := `
		SELECT id, company_name, sector, expected_listing_date, offer_price_range, shares_offered, expected_market_cap, lead_underwriter, status, created_at
		FROM ipo_calendar
		WHERE ($1 = '' OR status = $1)
		ORDER BY expected_listing_date NULLS LAST
		LIMIT CASE WHEN $2 > 0 THEN $2 END`
	rows, err := r.pool.Query(context.Background(), query, filter.Status, filter.Limit)
	if err != nil {
		return nil, fmt.Errorf("list ipo calendar: %w", err)
	}
	defer rows.Close()

	var list []*entity.IpoCalendarEntry
	for rows.Next() {
		var e entity.IpoCalendarEntry
		if err := rows.Scan(&e.ID, &e.CompanyName, &e.Sector, &e.ExpectedListingDate,
			&e.OfferPriceRange, &e.SharesOffered, &e.ExpectedMarketCap,
			&e.LeadUnderwriter, &e.Status, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan ipo calendar entry: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

// Update rewrites an existing calendar entry.
func (r *IpoCalendarRepo) Update(entry *entity.IpoCalendarEntry) error {
	query := `
		UPDATE ipo_calendar SET company_name = $2, sector = $3, expected_listing_date = $4, offer_price_range = $5, shares_offered = $6, expected_market_cap = $7, lead_underwriter = $8, status = $9
		WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query,
		entry.ID, entry.CompanyName, entry.Sector, entry.ExpectedListingDate,
		entry.OfferPriceRange, entry.SharesOffered, entry.ExpectedMarketCap,
		entry.LeadUnderwriter, entry.Status,
	)
	if err != nil {
		return fmt.Errorf("update ipo calendar entry: %w", err)
	}
	return nil
}
