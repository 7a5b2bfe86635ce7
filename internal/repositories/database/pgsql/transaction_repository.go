package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/statement_ingestion/internal/apperrors"
	"github.com/SscSPs/statement_ingestion/internal/core/domain"
	portsrepo "github.com/SscSPs/statement_ingestion/internal/core/ports/repositories"
	"github.com/SscSPs/statement_ingestion/internal/models"
	"github.com/SscSPs/statement_ingestion/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const transactionColumns = `transaction_id, account_id, card_id, import_id, transaction_date, description,
		normalized_description, simplified_description, category, amount, responsible_users, source,
		raw_fingerprint, normalized_fingerprint, is_reversal, related_transaction_id,
		installment_current, installment_total, created_at, created_by, last_updated_at, last_updated_by`

type PgxTransactionRepository struct {
	BaseRepository
}

// newPgxTransactionRepository creates a new repository for ledger transactions.
func newPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepositoryWithTx {
	return &PgxTransactionRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxTransactionRepository implements portsrepo.TransactionRepositoryWithTx
var _ portsrepo.TransactionRepositoryWithTx = (*PgxTransactionRepository)(nil)

func scanTransaction(row pgx.Row) (models.Transaction, error) {
	var m models.Transaction
	err := row.Scan(
		&m.TransactionID,
		&m.AccountID,
		&m.CardID,
		&m.ImportID,
		&m.TransactionDate,
		&m.Description,
		&m.NormalizedDescription,
		&m.SimplifiedDescription,
		&m.Category,
		&m.Amount,
		&m.ResponsibleUsers,
		&m.Source,
		&m.RawFingerprint,
		&m.NormalizedFingerprint,
		&m.IsReversal,
		&m.RelatedTransactionID,
		&m.InstallmentCurrent,
		&m.InstallmentTotal,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxTransactionRepository) queryTransactions(ctx context.Context, query string, args ...any) ([]domain.Transaction, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	txns := []models.Transaction{}
	for rows.Next() {
		m, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		txns = append(txns, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transaction rows: %w", err)
	}
	return mapping.ToDomainTransactionSlice(txns), nil
}

// ExistsByRawFingerprint reports whether any transaction carries the raw fingerprint.
func (r *PgxTransactionRepository) ExistsByRawFingerprint(ctx context.Context, rawFingerprint string) (bool, error) {
	var exists bool
	err := r.Pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM transactions WHERE raw_fingerprint = $1);`, rawFingerprint,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check raw fingerprint: %w", err)
	}
	return exists, nil
}

// ExistsByNormalizedFingerprint reports whether any transaction carries the normalized fingerprint.
func (r *PgxTransactionRepository) ExistsByNormalizedFingerprint(ctx context.Context, normalizedFingerprint string) (bool, error) {
	var exists bool
	err := r.Pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM transactions WHERE normalized_fingerprint = $1);`, normalizedFingerprint,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check normalized fingerprint: %w", err)
	}
	return exists, nil
}

// FindTransactionByID retrieves a transaction by its ID.
func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE transaction_id = $1;`

	m, err := scanTransaction(r.Pool.QueryRow(ctx, query, transactionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: transaction %s", apperrors.ErrNotFound, transactionID)
		}
		return nil, fmt.Errorf("failed to find transaction %s: %w", transactionID, err)
	}
	d := mapping.ToDomainTransaction(m)
	return &d, nil
}

// FindReversalCandidates returns unflagged rows carrying exactly search.Amount in the date window.
func (r *PgxTransactionRepository) FindReversalCandidates(ctx context.Context, search domain.ReversalSearch) ([]domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + `
		FROM transactions
		WHERE account_id = $1
		  AND transaction_date BETWEEN $2 AND $3
		  AND transaction_id <> $4
		  AND amount = $5
		  AND is_reversal = false
		  AND ($6::text IS NULL OR card_id = $6)
		ORDER BY transaction_date, transaction_id;`

	return r.queryTransactions(ctx, query,
		search.AccountID,
		search.From,
		search.To,
		search.ExcludeID,
		search.Amount,
		mapping.ToNullString(search.CardID),
	)
}

// ListTransactionsByAccount returns every transaction of the account ordered by date then id.
func (r *PgxTransactionRepository) ListTransactionsByAccount(ctx context.Context, accountID string) ([]domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + `
		FROM transactions
		WHERE account_id = $1
		ORDER BY transaction_date, transaction_id;`

	return r.queryTransactions(ctx, query, accountID)
}

// SaveTransactionsInTx bulk-inserts transactions with a single batch round trip.
// A row colliding on either fingerprint with one stored since the dedup gate ran
// is skipped, not failed; only the inserted rows are returned.
func (r *PgxTransactionRepository) SaveTransactionsInTx(ctx context.Context, tx pgx.Tx, transactions []domain.Transaction) ([]domain.Transaction, error) {
	if len(transactions) == 0 {
		return []domain.Transaction{}, nil
	}

	query := `
		INSERT INTO transactions (` + transactionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22)
		ON CONFLICT DO NOTHING;
	`
	batch := &pgx.Batch{}
	for _, txn := range transactions {
		m := mapping.ToModelTransaction(txn)
		batch.Queue(query,
			m.TransactionID,
			m.AccountID,
			m.CardID,
			m.ImportID,
			m.TransactionDate,
			m.Description,
			m.NormalizedDescription,
			m.SimplifiedDescription,
			m.Category,
			m.Amount,
			m.ResponsibleUsers,
			m.Source,
			m.RawFingerprint,
			m.NormalizedFingerprint,
			m.IsReversal,
			m.RelatedTransactionID,
			m.InstallmentCurrent,
			m.InstallmentTotal,
			m.CreatedAt,
			m.CreatedBy,
			m.LastUpdatedAt,
			m.LastUpdatedBy,
		)
	}

	br := tx.SendBatch(ctx, batch)
	defer br.Close()

	stored := make([]domain.Transaction, 0, len(transactions))
	for _, txn := range transactions {
		cmdTag, err := br.Exec()
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to insert transaction "+txn.TransactionID, err)
		}
		if cmdTag.RowsAffected() == 1 {
			stored = append(stored, txn)
		}
	}
	if err := br.Close(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to insert transaction batch", err)
	}
	return stored, nil
}

// LinkReversalPair flags both rows as each other's reversal in one statement.
// The is_reversal = false guard makes it a compare-and-swap: unless both rows
// were still free the transaction is rolled back and ErrConflict returned.
func (r *PgxTransactionRepository) LinkReversalPair(ctx context.Context, firstID, secondID string, userID string, now time.Time) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	query := `
		UPDATE transactions
		SET is_reversal = true,
		    related_transaction_id = CASE WHEN transaction_id = $1 THEN $2 ELSE $1 END,
		    last_updated_at = $3,
		    last_updated_by = $4
		WHERE transaction_id IN ($1, $2) AND is_reversal = false;
	`
	cmdTag, err := tx.Exec(ctx, query, firstID, secondID, now, userID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to link reversal pair", err)
	}
	if cmdTag.RowsAffected() != 2 {
		return fmt.Errorf("%w: reversal pair %s/%s changed concurrently", apperrors.ErrConflict, firstID, secondID)
	}

	return r.Commit(ctx, tx)
}

// CascadeMappingInTx copies a mapping's edited fields to every matching transaction of its account.
func (r *PgxTransactionRepository) CascadeMappingInTx(ctx context.Context, tx pgx.Tx, d domain.DescriptionMapping) (int64, error) {
	m := mapping.ToModelDescriptionMapping(d)
	query := `
		UPDATE transactions
		SET simplified_description = $1, category = $2, last_updated_at = $3, last_updated_by = $4
		WHERE account_id = $5 AND normalized_description = $6;
	`
	cmdTag, err := tx.Exec(ctx, query,
		m.SimplifiedDescription,
		m.Category,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
		m.AccountID,
		m.NormalizedDescription,
	)
	if err != nil {
		return 0, apperrors.NewAppError(500, "failed to apply mapping "+m.MappingID+" to transactions", err)
	}
	return cmdTag.RowsAffected(), nil
}

// DeleteTransactionsByImportInTx removes an import's rows after unflagging
// reversal partners that live outside the import.
func (r *PgxTransactionRepository) DeleteTransactionsByImportInTx(ctx context.Context, tx pgx.Tx, importID string) (int64, error) {
	unlink := `
		UPDATE transactions AS partner
		SET is_reversal = false, related_transaction_id = NULL
		FROM transactions AS imported
		WHERE imported.import_id = $1
		  AND partner.related_transaction_id = imported.transaction_id
		  AND partner.import_id IS DISTINCT FROM $1;
	`
	if _, err := tx.Exec(ctx, unlink, importID); err != nil {
		return 0, apperrors.NewAppError(500, "failed to unlink reversal partners of import "+importID, err)
	}

	cmdTag, err := tx.Exec(ctx, `DELETE FROM transactions WHERE import_id = $1;`, importID)
	if err != nil {
		return 0, apperrors.NewAppError(500, "failed to delete transactions of import "+importID, err)
	}
	return cmdTag.RowsAffected(), nil
}
