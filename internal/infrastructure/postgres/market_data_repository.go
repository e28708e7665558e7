package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/asxpathway/pathway-api/internal/domain/entity"
	"github.com/asxpathway/pathway-api/internal/domain/repository"
)

var _ repository.MarketDataRepository = (*MarketDataRepo)(nil)

// MarketDataRepo implements the MarketDataRepository port over PostgreSQL.
// The numeric columns rely on the shopspring codec registered on the pool.
type MarketDataRepo struct {
	pool *pgxpool.Pool
}

// NewMarketDataRepository builds the persistence adapter for market data.
func NewMarketDataRepository(pool *pgxpool.Pool) *MarketDataRepo {
	return &MarketDataRepo{pool: pool}
}

// Create persists a new market snapshot.
func (r *MarketDataRepo) Create(data *entity.MarketData) error {
	query := `
		INSERT INTO market_data (id, symbol, name, sector, market_cap, share_price, price_change, price_change_percent, volume, pe_ratio, dividend_yield, last_updated)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.pool.Exec(context.Background(), query,
		data.ID, data.Symbol, data.Name, data.Sector, data.MarketCap,
		data.SharePrice, data.PriceChange, data.PriceChangePercent,
		data.Volume, data.PERatio, data.DividendYield, data.LastUpdated,
	)
	if err != nil {
		return fmt.Errorf("insert market data: %w", err)
	}
	return nil
}

// List returns snapshots ordered by symbol, optionally filtered by sector.
func (r *MarketDataRepo) List(filter repository.MarketDataFilter) ([]*entity.MarketData, error) {
	query := `
		SELECT id, symbol, name, sector, market_cap, share_price, price_change, price_change_percent, volume, pe_ratio, dividend_yield, last_updated
		FROM market_data
		WHERE ($1 = '' OR sector = $1)
		ORDER BY symbol
		LIMIT CASE WHEN $2 > 0 THEN $2 END`
	rows, err := r.pool.Query(context.Background(), query, filter.Sector, filter.Limit)
	if err != nil {
		return nil, fmt.Errorf("list market data: %w", err)
	}
	defer rows.Close()

	var list []*entity.MarketData
	for rows.Next() {
		var d entity.MarketData
		if err := rows.Scan(&d.ID, &d.Symbol, &d.Name, &d.Sector, &d.MarketCap,
			&d.SharePrice, &d.PriceChange, &d.PriceChangePercent,
			&d.Volume, &d.PERatio, &d.DividendYield, &d.LastUpdated); err != nil {
			return nil, fmt.Errorf("scan market data: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}

// UpdateBySymbol patches one symbol's snapshot and refreshes last_updated.
// Empty strings and null decimals in data keep the stored values. Returns
// nil when the symbol is unknown.
func (r *MarketDataRepo) UpdateBySymbol(symbol string, data *entity.MarketData) (*entity.MarketData, error) {
	query := `
		UPDATE market_data SET
			name                 = CASE WHEN $2  = '' THEN name       ELSE $2  END,
			sector               = CASE WHEN $3  = '' THEN sector     ELSE $3  END,
			market_cap           = CASE WHEN $4  = '' THEN market_cap ELSE $4  END,
			share_price          = COALESCE($5, share_price),
			price_change         = COALESCE($6, price_change),
			price_change_percent = COALESCE($7, price_change_percent),
			volume               = CASE WHEN $8  = '' THEN volume     ELSE $8  END,
			pe_ratio             = COALESCE($9, pe_ratio),
			dividend_yield       = COALESCE($10, dividend_yield),
			last_updated         = now()
		WHERE symbol = $1
		RETURNING id, symbol, name, sector, market_cap, share_price, price_change, price_change_percent, volume, pe_ratio, dividend_yield, last_updated`
	var d entity.MarketData
	err := r.pool.QueryRow(context.Background(), query,
		symbol, data.Name, data.Sector, data.MarketCap,
		data.SharePrice, data.PriceChange, data.PriceChangePercent,
		data.Volume, data.PERatio, data.DividendYield,
	).Scan(&d.ID, &d.Symbol, &d.Name, &d.Sector, &d.MarketCap,
		&d.SharePrice, &d.PriceChange, &d.PriceChangePercent,
		&d.Volume, &d.PERatio, &d.DividendYield, &d.LastUpdated)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("update market data: %w", err)
	}
	return &d, nil
}
