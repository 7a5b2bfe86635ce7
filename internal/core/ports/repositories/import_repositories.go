package repositories

import (
	"context"

	"github.com/SscSPs/statement_ingestion/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// ImportRecordReader defines read operations for the import history
type ImportRecordReader interface {
	// FindImportRecordByID retrieves an import record by its unique identifier.
	FindImportRecordByID(ctx context.Context, importID string) (*domain.ImportRecord, error)

	// ListImportRecordsByAccount returns up to limit records of the account, newest
	// first. When after is not nil only records ordered after it are returned.
	ListImportRecordsByAccount(ctx context.Context, accountID string, limit int, after *domain.ImportCursor) ([]domain.ImportRecord, error)
}

// ImportRecordWriter defines write operations for the import history
type ImportRecordWriter interface {
	// SaveImportRecordInTx inserts an import record within the given transaction.
	SaveImportRecordInTx(ctx context.Context, tx pgx.Tx, record domain.ImportRecord) error

	// SaveImportRecord inserts an import record on its own, used for failed imports.
	SaveImportRecord(ctx context.Context, record domain.ImportRecord) error

	// DeleteImportRecordInTx removes an import record within the given transaction.
	DeleteImportRecordInTx(ctx context.Context, tx pgx.Tx, importID string) error
}

// ImportRecordRepositoryFacade combines all import history repository interfaces
type ImportRecordRepositoryFacade interface {
	ImportRecordReader
	ImportRecordWriter
}
