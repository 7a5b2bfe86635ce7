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

const importRecordColumns = `import_id, account_id, file_name, format, total_rows, imported_rows, skipped_rows,
		error_message, created_at, created_by, last_updated_at, last_updated_by`

const insertImportRecord = `
	INSERT INTO import_records (` + importRecordColumns + `)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
`

type PgxImportRecordRepository struct {
	pool *pgxpool.Pool
}

// newPgxImportRecordRepository creates a new repository for the import history.
func newPgxImportRecordRepository(pool *pgxpool.Pool) portsrepo.ImportRecordRepositoryFacade {
	return &PgxImportRecordRepository{pool: pool}
}

var _ portsrepo.ImportRecordRepositoryFacade = (*PgxImportRecordRepository)(nil)

func scanImportRecord(row pgx.Row) (models.ImportRecord, error) {
	var m models.ImportRecord
	err := row.Scan(
		&m.ImportID,
		&m.AccountID,
		&m.FileName,
		&m.Format,
		&m.TotalRows,
		&m.ImportedRows,
		&m.SkippedRows,
		&m.ErrorMessage,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func importRecordArgs(d domain.ImportRecord) []any {
	m := mapping.ToModelImportRecord(d)
	return []any{
		m.ImportID,
		m.AccountID,
		m.FileName,
		m.Format,
		m.TotalRows,
		m.ImportedRows,
		m.SkippedRows,
		m.ErrorMessage,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	}
}

// FindImportRecordByID retrieves an import record by its ID.
func (r *PgxImportRecordRepository) FindImportRecordByID(ctx context.Context, importID string) (*domain.ImportRecord, error) {
	query := `SELECT ` + importRecordColumns + ` FROM import_records WHERE import_id = $1;`

	m, err := scanImportRecord(r.pool.QueryRow(ctx, query, importID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: import %s", apperrors.ErrNotFound, importID)
		}
		return nil, fmt.Errorf("failed to find import %s: %w", importID, err)
	}
	d := mapping.ToDomainImportRecord(m)
	return &d, nil
}

// ListImportRecordsByAccount returns the newest records of an account,
// keyset-paginated on (created_at, import_id).
func (r *PgxImportRecordRepository) ListImportRecordsByAccount(ctx context.Context, accountID string, limit int, after *domain.ImportCursor) ([]domain.ImportRecord, error) {
	query := `SELECT ` + importRecordColumns + `
		FROM import_records
		WHERE account_id = $1`
	args := []any{accountID}
	if after != nil {
		query += ` AND (created_at, import_id) < ($2, $3)`
		args = append(args, after.CreatedAt, after.ImportID)
	}
	query += fmt.Sprintf(`
		ORDER BY created_at DESC, import_id DESC
		LIMIT $%d;`, len(args)+1)
	args = append(args, limit)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query imports for account %s: %w", accountID, err)
	}
	defer rows.Close()

	records := []models.ImportRecord{}
	for rows.Next() {
		m, err := scanImportRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan import row: %w", err)
		}
		records = append(records, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating import rows: %w", err)
	}
	return mapping.ToDomainImportRecordSlice(records), nil
}

// SaveImportRecordInTx inserts an import record within the import's transaction.
func (r *PgxImportRecordRepository) SaveImportRecordInTx(ctx context.Context, tx pgx.Tx, record domain.ImportRecord) error {
	_, err := tx.Exec(ctx, insertImportRecord, importRecordArgs(record)...)
	return r.saveError(record.ImportID, err)
}

// SaveImportRecord inserts an import record outside any transaction.
func (r *PgxImportRecordRepository) SaveImportRecord(ctx context.Context, record domain.ImportRecord) error {
	_, err := r.pool.Exec(ctx, insertImportRecord, importRecordArgs(record)...)
	return r.saveError(record.ImportID, err)
}

func (r *PgxImportRecordRepository) saveError(importID string, err error) error {
	if err == nil {
		return nil
	}
	if isUniqueViolation(err, "") {
		return fmt.Errorf("%w: import %s already recorded", apperrors.ErrDuplicate, importID)
	}
	return apperrors.NewAppError(500, "failed to save import record "+importID, err)
}

// DeleteImportRecordInTx removes an import record within the given transaction.
func (r *PgxImportRecordRepository) DeleteImportRecordInTx(ctx context.Context, tx pgx.Tx, importID string) error {
	cmdTag, err := tx.Exec(ctx, `DELETE FROM import_records WHERE import_id = $1;`, importID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete import record "+importID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%w: import %s", apperrors.ErrNotFound, importID)
	}
	return nil
}
