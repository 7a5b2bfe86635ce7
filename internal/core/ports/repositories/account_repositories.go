package repositories

import (
	"context"

	"github.com/SscSPs/statement_ingestion/internal/core/domain"
)

// AccountReader defines read operations for account data
type AccountReader interface {
	// FindAccountByID retrieves a specific account by its unique identifier.
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)
}

// CardReader is the card registry lookup used to bind statement sections to cards.
type CardReader interface {
	// FindCardsByLastFour returns every card of the account ending in lastFour,
	// ordered by creation. An empty slice means no card is registered.
	FindCardsByLastFour(ctx context.Context, lastFour string, accountID string) ([]domain.Card, error)
}
