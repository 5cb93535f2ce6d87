package repository

import (
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/prakanlife/meta-ads-sync/infrastructure/database/postgres"
	"github.com/prakanlife/meta-ads-sync/internal/domain"
)

type AdPerformanceRepository interface {
	UpsertBatch(rows []*domain.AdPerformance) error
}

type adPerformanceRepository struct {
	conn *postgres.Connection
}

func NewAdPerformanceRepository(conn *postgres.Connection) AdPerformanceRepository {
	return &adPerformanceRepository{
		conn: conn,
	}
}

// UpsertBatch writes all rows in one statement. Re-running for the same
// (date, ad_id, product_code) replaces spend, leads and status instead of
// accumulating them.
func (r *adPerformanceRepository) UpsertBatch(rows []*domain.AdPerformance) error {
	if len(rows) == 0 {
		return nil
	}

	query := squirrel.StatementBuilder.
		Insert("ad_performances").
		Columns("date", "ad_id", "product_code", "ad_name", "status", "image_url", "spend", "meta_leads").
		PlaceholderFormat(squirrel.Dollar)

	for _, row := range rows {
		query = query.Values(
			row.Date,
			row.AdID,
			row.ProductCode,
			row.AdName,
			row.Status,
			nullIfEmpty(row.ImageURL),
			row.Spend,
			row.MetaLeads,
		)
	}

	query = query.Suffix(`
		ON CONFLICT (date, ad_id, product_code) DO UPDATE SET
			ad_name = EXCLUDED.ad_name,
			status = EXCLUDED.status,
			image_url = EXCLUDED.image_url,
			spend = EXCLUDED.spend,
			meta_leads = EXCLUDED.meta_leads,
			updated_at = NOW()
	`)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("building query: %w", err)
	}

	_, err = r.conn.Exec(sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("executing query: %w", err)
	}

	return nil
}

// nullIfEmpty maps "" to NULL for nullable text columns
func nullIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
