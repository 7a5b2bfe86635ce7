package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/statement_ingestion/internal/apperrors"
	"github.com/SscSPs/statement_ingestion/internal/core/domain"
	portsrepo "github.com/SscSPs/statement_ingestion/internal/core/ports/repositories"
	"github.com/SscSPs/statement_ingestion/internal/models"
	"github.com/SscSPs/statement_ingestion/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxAccountRepository struct {
	pool *pgxpool.Pool
}

// newPgxAccountRepository creates a new repository for account data.
func newPgxAccountRepository(pool *pgxpool.Pool) portsrepo.AccountReader {
	return &PgxAccountRepository{pool: pool}
}

// Ensure PgxAccountRepository implements portsrepo.AccountReader
var _ portsrepo.AccountReader = (*PgxAccountRepository)(nil)

// FindAccountByID retrieves an account by its ID.
func (r *PgxAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	query := `
		SELECT account_id, name, is_active, created_at, created_by, last_updated_at, last_updated_by
		FROM accounts
		WHERE account_id = $1;
	`
	var modelAcc models.Account
	err := r.pool.QueryRow(ctx, query, accountID).Scan(
		&modelAcc.AccountID,
		&modelAcc.Name,
		&modelAcc.IsActive,
		&modelAcc.CreatedAt,
		&modelAcc.CreatedBy,
		&modelAcc.LastUpdatedAt,
		&modelAcc.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: account %s", apperrors.ErrNotFound, accountID)
		}
		return nil, fmt.Errorf("failed to find account by ID %s: %w", accountID, err)
	}

	domainAcc := mapping.ToDomainAccount(modelAcc)
	return &domainAcc, nil
}

type PgxCardRepository struct {
	pool *pgxpool.Pool
}

// newPgxCardRepository creates a new repository for the card registry.
func newPgxCardRepository(pool *pgxpool.Pool) portsrepo.CardReader {
	return &PgxCardRepository{pool: pool}
}

var _ portsrepo.CardReader = (*PgxCardRepository)(nil)

// FindCardsByLastFour returns the cards of an account ending in lastFour, oldest first.
func (r *PgxCardRepository) FindCardsByLastFour(ctx context.Context, lastFour string, accountID string) ([]domain.Card, error) {
	query := `
		SELECT card_id, account_id, last_four_digits, holder_name, created_at, created_by, last_updated_at, last_updated_by
		FROM cards
		WHERE account_id = $1 AND last_four_digits = $2
		ORDER BY created_at, card_id;
	`
	rows, err := r.pool.Query(ctx, query, accountID, lastFour)
	if err != nil {
		return nil, fmt.Errorf("failed to query cards ending in %s: %w", lastFour, err)
	}
	defer rows.Close()

	cards := []models.Card{}
	for rows.Next() {
		var c models.Card
		if err := rows.Scan(
			&c.CardID,
			&c.AccountID,
			&c.LastFourDigits,
			&c.HolderName,
			&c.CreatedAt,
			&c.CreatedBy,
			&c.LastUpdatedAt,
			&c.LastUpdatedBy,
		); err != nil {
			return nil, fmt.Errorf("failed to scan card row: %w", err)
		}
		cards = append(cards, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating card rows: %w", err)
	}

	return mapping.ToDomainCardSlice(cards), nil
}
