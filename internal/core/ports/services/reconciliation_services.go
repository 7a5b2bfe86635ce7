package services

import (
	"context"

	"github.com/SscSPs/statement_ingestion/internal/core/domain"
)

// ReversalSvc links refunds to the charges they reverse.
type ReversalSvc interface {
	// Detect looks for the reversal partner of a negative transaction and links both rows.
	// It returns the partner, or nil when nothing was linked.
	Detect(ctx context.Context, transactionID string, userID string) (*domain.Transaction, error)

	// DetectForAccount runs Detect after checking the transaction belongs to accountID.
	DetectForAccount(ctx context.Context, accountID, transactionID, userID string) (*domain.Transaction, error)
}

// DuplicateSvc reports likely duplicates between manual and imported entries.
type DuplicateSvc interface {
	FindDuplicateGroups(ctx context.Context, accountID string) ([]domain.DuplicateGroup, error)
}
