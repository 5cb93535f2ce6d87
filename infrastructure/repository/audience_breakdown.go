package repository

import (
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/prakanlife/meta-ads-sync/infrastructure/database/postgres"
	"github.com/prakanlife/meta-ads-sync/internal/domain"
)

type AudienceBreakdownRepository interface {
	UpsertBatch(rows []*domain.AudienceBreakdown) error
}

type audienceBreakdownRepository struct {
	conn *postgres.Connection
}

func NewAudienceBreakdownRepository(conn *postgres.Connection) AudienceBreakdownRepository {
	return &audienceBreakdownRepository{
		conn: conn,
	}
}

func (r *audienceBreakdownRepository) UpsertBatch(rows []*domain.AudienceBreakdown) error {
	if len(rows) == 0 {
		return nil
	}

	query := squirrel.StatementBuilder.
		Insert("audience_breakdowns").
		Columns("date", "product_code", "age_range", "gender", "spend", "meta_leads").
		PlaceholderFormat(squirrel.Dollar)

	for _, row := range rows {
		query = query.Values(
			row.Date,
			row.ProductCode,
			row.AgeRange,
			row.Gender,
			row.Spend,
			row.MetaLeads,
		)
	}

	query = query.Suffix(`
		ON CONFLICT (date, product_code, age_range, gender) DO UPDATE SET
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
