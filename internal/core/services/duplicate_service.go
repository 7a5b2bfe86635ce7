package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/SscSPs/statement_ingestion/internal/core/domain"
	portsrepo "github.com/SscSPs/statement_ingestion/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/statement_ingestion/internal/core/ports/services"
)

const DefaultDuplicateWindowDays = 3

// DuplicateService reports manual entries that were probably imported as well.
type DuplicateService struct {
	BaseService
	txnRepo portsrepo.TransactionReader
	window  time.Duration
}

// NewDuplicateService creates a DuplicateService; windowDays <= 0 means ±3 days.
func NewDuplicateService(txnRepo portsrepo.TransactionReader, windowDays int) *DuplicateService {
	if windowDays <= 0 {
		windowDays = DefaultDuplicateWindowDays
	}
	return &DuplicateService{
		txnRepo: txnRepo,
		window:  time.Duration(windowDays) * 24 * time.Hour,
	}
}

var _ portssvc.DuplicateSvc = (*DuplicateService)(nil)

// FindDuplicateGroups loads every transaction of the account and groups them.
func (s *DuplicateService) FindDuplicateGroups(ctx context.Context, accountID string) ([]domain.DuplicateGroup, error) {
	txns, err := s.txnRepo.ListTransactionsByAccount(ctx, accountID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions for duplicate grouping", slog.String("account_id", accountID))
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	groups := GroupCrossSourceDuplicates(txns, s.window)
	s.LogDebug(ctx, "Duplicate groups computed",
		slog.String("account_id", accountID),
		slog.Int("transactions", len(txns)),
		slog.Int("groups", len(groups)))
	return groups, nil
}

// GroupCrossSourceDuplicates sorts txns by (date, id) and attaches each one to
// the first group whose first member has exactly the same signed amount and a
// date within ±window. Only groups with more than one member mixing manual and
// imported rows are returned.
func GroupCrossSourceDuplicates(txns []domain.Transaction, window time.Duration) []domain.DuplicateGroup {
	sorted := make([]domain.Transaction, len(txns))
	copy(sorted, txns)
	sort.SliceStable(sorted, func(i, j int) bool {
		if !sorted[i].Date.Equal(sorted[j].Date) {
			return sorted[i].Date.Before(sorted[j].Date)
		}
		return sorted[i].TransactionID < sorted[j].TransactionID
	})

	var groups []domain.DuplicateGroup
	for _, txn := range sorted {
		placed := false
		for i := range groups {
			rep := groups[i].Transactions[0]
			if !rep.Amount.Equal(txn.Amount) || absDuration(txn.Date.Sub(rep.Date)) > window {
				continue
			}
			groups[i].Transactions = append(groups[i].Transactions, txn)
			placed = true
			break
		}
		if !placed {
			groups = append(groups, domain.DuplicateGroup{
				Date:         txn.Date,
				Amount:       txn.Amount,
				Transactions: []domain.Transaction{txn},
			})
		}
	}

	result := make([]domain.DuplicateGroup, 0)
	for _, g := range groups {
		if len(g.Transactions) > 1 && g.HasMixedSources() {
			result = append(result, g)
		}
	}
	return result
}

func absDuration(d time.Duration) time.Duration {
	if d < 0 {
		return -d
	}
	return d
}
