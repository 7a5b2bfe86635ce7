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

const mappingColumns = `mapping_id, account_id, original_description, normalized_description,
		simplified_description, category, created_at, created_by, last_updated_at, last_updated_by`

type PgxMappingRepository struct {
	BaseRepository
}

// newPgxMappingRepository creates a new repository for description mappings.
func newPgxMappingRepository(pool *pgxpool.Pool) portsrepo.MappingRepositoryWithTx {
	return &PgxMappingRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.MappingRepositoryWithTx = (*PgxMappingRepository)(nil)

func scanMapping(row pgx.Row) (models.DescriptionMapping, error) {
	var m models.DescriptionMapping
	err := row.Scan(
		&m.MappingID,
		&m.AccountID,
		&m.OriginalDescription,
		&m.NormalizedDescription,
		&m.SimplifiedDescription,
		&m.Category,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// ListMappingsByAccount returns every mapping of the account.
func (r *PgxMappingRepository) ListMappingsByAccount(ctx context.Context, accountID string) ([]domain.DescriptionMapping, error) {
	query := `SELECT ` + mappingColumns + `
		FROM description_mappings
		WHERE account_id = $1
		ORDER BY normalized_description;`

	rows, err := r.Pool.Query(ctx, query, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to query mappings for account %s: %w", accountID, err)
	}
	defer rows.Close()

	mappings := []models.DescriptionMapping{}
	for rows.Next() {
		m, err := scanMapping(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan mapping row: %w", err)
		}
		mappings = append(mappings, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating mapping rows: %w", err)
	}
	return mapping.ToDomainDescriptionMappingSlice(mappings), nil
}

// FindMappingByID retrieves a mapping by its ID.
func (r *PgxMappingRepository) FindMappingByID(ctx context.Context, mappingID string) (*domain.DescriptionMapping, error) {
	query := `SELECT ` + mappingColumns + ` FROM description_mappings WHERE mapping_id = $1;`

	m, err := scanMapping(r.Pool.QueryRow(ctx, query, mappingID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: mapping %s", apperrors.ErrNotFound, mappingID)
		}
		return nil, fmt.Errorf("failed to find mapping %s: %w", mappingID, err)
	}
	d := mapping.ToDomainDescriptionMapping(m)
	return &d, nil
}

// FindMappingByNormalizedDescription retrieves the account's mapping for a normalized description.
func (r *PgxMappingRepository) FindMappingByNormalizedDescription(ctx context.Context, accountID, normalizedDescription string) (*domain.DescriptionMapping, error) {
	query := `SELECT ` + mappingColumns + `
		FROM description_mappings
		WHERE account_id = $1 AND normalized_description = $2;`

	m, err := scanMapping(r.Pool.QueryRow(ctx, query, accountID, normalizedDescription))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: mapping %q of account %s", apperrors.ErrNotFound, normalizedDescription, accountID)
		}
		return nil, fmt.Errorf("failed to find mapping %q: %w", normalizedDescription, err)
	}
	d := mapping.ToDomainDescriptionMapping(m)
	return &d, nil
}

// SaveMappingsInTx bulk-inserts new mappings with a single batch round trip.
// A key another import mapped first is skipped and reported back.
func (r *PgxMappingRepository) SaveMappingsInTx(ctx context.Context, tx pgx.Tx, mappings []domain.DescriptionMapping) ([]string, error) {
	if len(mappings) == 0 {
		return nil, nil
	}

	query := `
		INSERT INTO description_mappings (` + mappingColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (account_id, normalized_description) DO NOTHING;
	`
	batch := &pgx.Batch{}
	for _, d := range mappings {
		m := mapping.ToModelDescriptionMapping(d)
		batch.Queue(query,
			m.MappingID,
			m.AccountID,
			m.OriginalDescription,
			m.NormalizedDescription,
			m.SimplifiedDescription,
			m.Category,
			m.CreatedAt,
			m.CreatedBy,
			m.LastUpdatedAt,
			m.LastUpdatedBy,
		)
	}

	br := tx.SendBatch(ctx, batch)
	defer br.Close()

	var taken []string
	for _, d := range mappings {
		cmdTag, err := br.Exec()
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to insert description mapping "+d.MappingID, err)
		}
		if cmdTag.RowsAffected() == 0 {
			taken = append(taken, d.NormalizedDescription)
		}
	}
	if err := br.Close(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to insert description mappings", err)
	}
	return taken, nil
}

// UpdateMappingInTx stores the user-editable fields of a mapping.
func (r *PgxMappingRepository) UpdateMappingInTx(ctx context.Context, tx pgx.Tx, d domain.DescriptionMapping) error {
	m := mapping.ToModelDescriptionMapping(d)
	query := `
		UPDATE description_mappings
		SET simplified_description = $1, category = $2, last_updated_at = $3, last_updated_by = $4
		WHERE mapping_id = $5;
	`
	cmdTag, err := tx.Exec(ctx, query, m.SimplifiedDescription, m.Category, m.LastUpdatedAt, m.LastUpdatedBy, m.MappingID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update mapping "+m.MappingID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%w: mapping %s", apperrors.ErrNotFound, m.MappingID)
	}
	return nil
}
