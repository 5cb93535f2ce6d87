package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/prakanlife/meta-ads-sync/infrastructure/database/postgres"
	"github.com/prakanlife/meta-ads-sync/internal/domain"
)

const credentialsTable = "integration_credentials ic"

type CredentialRepository interface {
	GetByProviderAndType(provider string, tokenType domain.TokenType) (*domain.Credential, error)
	Upsert(credential *domain.Credential) error
}

type credentialRepository struct {
	conn *postgres.Connection
}

func NewCredentialRepository(conn *postgres.Connection) CredentialRepository {
	return &credentialRepository{
		conn: conn,
	}
}

// GetByProviderAndType returns the most recent credential row for the
// provider and token type, or nil when none exists
func (r *credentialRepository) GetByProviderAndType(provider string, tokenType domain.TokenType) (*domain.Credential, error) {
	query, args, err := squirrel.
		Select("ic.id, ic.provider, ic.token_type, ic.access_token, ic.updated_at").
		From(credentialsTable).
		Where(squirrel.Eq{"ic.provider": provider, "ic.token_type": string(tokenType)}).
		OrderBy("ic.updated_at DESC").
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)

	credential := &domain.Credential{}
	var tokenTypeStr string
	err = row.Scan(
		&credential.ID,
		&credential.Provider,
		&tokenTypeStr,
		&credential.AccessToken,
		&credential.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("scanning credential: %w", err)
	}
	credential.TokenType = domain.TokenType(tokenTypeStr)

	return credential, nil
}

// Upsert writes the credential keyed by provider, updating the existing row
// in place when one exists
func (r *credentialRepository) Upsert(credential *domain.Credential) error {
	query := squirrel.StatementBuilder.
		Insert("integration_credentials").
		Columns("provider", "token_type", "access_token").
		Values(
			credential.Provider,
			string(credential.TokenType),
			credential.AccessToken,
		).
		Suffix(`
			ON CONFLICT (provider) DO UPDATE SET
				token_type = EXCLUDED.token_type,
				access_token = EXCLUDED.access_token,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar)

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
