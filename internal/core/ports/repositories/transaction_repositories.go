package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/statement_ingestion/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// FingerprintReader is what the deduplication gate needs from storage.
type FingerprintReader interface {
	// ExistsByRawFingerprint reports whether a live transaction carries the raw fingerprint.
	ExistsByRawFingerprint(ctx context.Context, rawFingerprint string) (bool, error)

	// ExistsByNormalizedFingerprint reports whether a live transaction carries the normalized fingerprint.
	ExistsByNormalizedFingerprint(ctx context.Context, normalizedFingerprint string) (bool, error)
}

// TransactionReader defines read operations for transaction data
type TransactionReader interface {
	FingerprintReader

	// FindTransactionByID retrieves a transaction by its unique identifier.
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// FindReversalCandidates returns the rows of search.AccountID dated within
	// [search.From, search.To] carrying exactly search.Amount, excluding
	// search.ExcludeID and rows already flagged as reversals, ordered by date
	// then transaction id. When search.CardID is set only rows of that card match.
	FindReversalCandidates(ctx context.Context, search domain.ReversalSearch) ([]domain.Transaction, error)

	// ListTransactionsByAccount returns every transaction of the account ordered by date then id.
	ListTransactionsByAccount(ctx context.Context, accountID string) ([]domain.Transaction, error)
}

// TransactionWriter defines write operations for transaction data
type TransactionWriter interface {
	// SaveTransactionsInTx bulk-inserts transactions within the given transaction.
	// Rows whose fingerprint is already stored are left out; the rows actually
	// inserted are returned in input order.
	SaveTransactionsInTx(ctx context.Context, tx pgx.Tx, transactions []domain.Transaction) ([]domain.Transaction, error)

	// LinkReversalPair flags both rows as reversals of each other atomically.
	// It only updates rows that are not flagged yet; if either row was flagged
	// concurrently nothing is changed and apperrors.ErrConflict is returned.
	LinkReversalPair(ctx context.Context, firstID, secondID string, userID string, now time.Time) error

	// CascadeMappingInTx copies a mapping's simplified description and category to
	// every transaction of the account sharing its normalized description.
	CascadeMappingInTx(ctx context.Context, tx pgx.Tx, mapping domain.DescriptionMapping) (int64, error)

	// DeleteTransactionsByImportInTx deletes the rows created by an import. Reversal
	// partners outside the import are unflagged first so no link is left dangling.
	DeleteTransactionsByImportInTx(ctx context.Context, tx pgx.Tx, importID string) (int64, error)
}

// TransactionRepositoryFacade combines all transaction-related repository interfaces
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}

// TransactionRepositoryWithTx extends TransactionRepositoryFacade with transaction capabilities
type TransactionRepositoryWithTx interface {
	TransactionRepositoryFacade
	TransactionManager
}
