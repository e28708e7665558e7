package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/asxpathway/pathway-api/internal/domain/entity"
	"github.com/asxpathway/pathway-api/internal/domain/repository"
)

var _ repository.MarketSentimentRepository = (*MarketSentimentRepo)(nil)

// MarketSentimentRepo implements the MarketSentimentRepository port over PostgreSQL.
type MarketSentimentRepo struct {
	pool *pgxpool.Pool
}

// NewMarketSentimentRepository builds the persistence adapter for sentiment snapshots.
func NewMarketSentimentRepository(pool *pgxpool.Pool) *MarketSentimentRepo {
	return &MarketSentimentRepo{pool: pool}
}

// Create persists a new sentiment snapshot.
func (r *MarketSentimentRepo) Create(s *entity.MarketSentiment) error {
	query := `
		INSERT INTO market_sentiment (id, date, asx_index, index_change, index_change_percent, trading_volume, advancing_stocks, declining_stocks, market_sentiment_score, volatility_index, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.pool.Exec(context.Background(), query,
		s.ID, s.Date, s.ASXIndex, s.IndexChange, s.IndexChangePercent,
		s.TradingVolume, s.AdvancingStocks, s.DecliningStocks,
		s.SentimentScore, s.VolatilityIndex, s.Notes,
	)
	if err != nil {
		return fmt.Errorf("insert market sentiment: %w", err)
	}
	return nil
}

// List returns snapshots newest first; limit 0 means all.
func (r *MarketSentimentRepo) List(limit int) ([]*entity.MarketSentiment, error) {
	query := `
		SELECT id, date, asx_index, index_change, index_change_percent, trading_volume, advancing_stocks, declining_stocks, market_sentiment_score, volatility_index, notes
		FROM market_sentiment
		ORDER BY date DESC
		LIMIT CASE WHEN $1 > 0 THEN $1 END`
	rows, err := r.pool.Query(context.Background(), query, limit)
	if err != nil {
		return nil, fmt.Errorf("list market sentiment: %w", err)
	}
	defer rows.Close()

	var list []*entity.MarketSentiment
	for rows.Next() {
		var s entity.MarketSentiment
		if err := rows.Scan(&s.ID, &s.Date, &s.ASXIndex, &s.IndexChange, &s.IndexChangePercent,
			&s.TradingVolume, &s.AdvancingStocks, &s.DecliningStocks,
			&s.SentimentScore, &s.VolatilityIndex, &s.Notes); err != nil {
			return nil, fmt.Errorf("scan market sentiment: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// Latest returns the newest snapshot; nil when the table is empty.
func (r *MarketSentimentRepo) Latest() (*entity.MarketSentiment, error) {
	query := `
		SELECT id, date, asx_index, index_change, index_change_percent, trading_volume, advancing_stocks, declining_stocks, market_sentiment_score, volatility_index, notes
		FROM market_sentiment
		ORDER BY date DESC LIMIT 1`
	var s entity.MarketSentiment
	err := r.pool.QueryRow(context.Background(), query).Scan(
		&s.ID, &s.Date, &s.ASXIndex, &s.IndexChange, &s.IndexChangePercent,
		&s.TradingVolume, &s.AdvancingStocks, &s.DecliningStocks,
		&s.SentimentScore, &s.VolatilityIndex, &s.Notes,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get latest market sentiment: %w", err)
	}
	return &s, nil
}
