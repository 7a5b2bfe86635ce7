package services

import (
	"context"
	"io"

	"github.com/SscSPs/statement_ingestion/internal/core/domain"
)

// ImportSvc runs uploaded statements through the ingestion pipeline.
type ImportSvc interface {
	// ImportStatement parses, deduplicates and persists one statement file.
	// Per-line failures are skipped and counted; whole-file failures return an error.
	ImportStatement(ctx context.Context, req domain.ImportRequest) (*domain.ImportResult, error)

	// RollbackImport deletes every transaction created by an import together with its history record.
	RollbackImport(ctx context.Context, accountID, importID, userID string) error

	// ListImports returns the import history of an account, newest first,
	// starting after the given cursor when it is not nil.
	ListImports(ctx context.Context, accountID string, limit int, after *domain.ImportCursor) ([]domain.ImportRecord, error)
}

// TextExtractor turns a binary document into plain text lines.
type TextExtractor interface {
	// ExtractText returns a reader over the document text. Failures wrap apperrors.ErrExtraction.
	ExtractText(ctx context.Context, document io.Reader) (io.Reader, error)
}
