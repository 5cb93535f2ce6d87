package repository

import (
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/prakanlife/meta-ads-sync/infrastructure/database/postgres"
	"github.com/prakanlife/meta-ads-sync/internal/domain"
)

type ProductPerformanceRepository interface {
	UpsertBatch(rows []*domain.ProductPerformance) error
}

type productPerformanceRepository struct {
	conn *postgres.Connection
}

func NewProductPerformanceRepository(conn *postgres.Connection) ProductPerformanceRepository {
	return &productPerformanceRepository{
		conn: conn,
	}
}

func (r *productPerformanceRepository) UpsertBatch(rows []*domain.ProductPerformance) error {
	if len(rows) == 0 {
		return nil
	}

	query := squirrel.StatementBuilder.
		Insert("product_performances").
		Columns("date", "product_code", "spend", "meta_leads").
		PlaceholderFormat(squirrel.Dollar)

	for _, row := range rows {
		query = query.Values(
			row.Date,
			row.ProductCode,
			row.Spend,
			row.MetaLeads,
		)
	}

	query = query.Suffix(`
		ON CONFLICT (date, product_code) DO UPDATE SET
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
