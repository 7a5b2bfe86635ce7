package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/statement_ingestion/internal/apperrors"
	"github.com/SscSPs/statement_ingestion/internal/core/domain"
	portsrepo "github.com/SscSPs/statement_ingestion/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/statement_ingestion/internal/core/ports/services"
	"github.com/SscSPs/statement_ingestion/internal/utils/similarity"
)

const (
	DefaultReversalWindowDays          = 90
	DefaultReversalSimilarityThreshold = 0.6
)

// ReversalOptions tunes the reversal search.
type ReversalOptions struct {
	WindowDays          int
	SimilarityThreshold float64
}

// ReversalDetector links an expense to the refund that cancels it.
type ReversalDetector struct {
	BaseService
	txnRepo   portsrepo.TransactionRepositoryFacade
	locks     *keyedMutex
	window    time.Duration
	threshold float64
	now       func() time.Time
}

// NewReversalDetector creates a detector. Zero options fall back to a ±90 day
// window and a 0.6 similarity threshold.
func NewReversalDetector(txnRepo portsrepo.TransactionRepositoryFacade, opts ReversalOptions) *ReversalDetector {
	if opts.WindowDays <= 0 {
		opts.WindowDays = DefaultReversalWindowDays
	}
	if opts.SimilarityThreshold <= 0 {
		opts.SimilarityThreshold = DefaultReversalSimilarityThreshold
	}
	return &ReversalDetector{
		txnRepo:   txnRepo,
		locks:     newKeyedMutex(),
		window:    time.Duration(opts.WindowDays) * 24 * time.Hour,
		threshold: opts.SimilarityThreshold,
		now:       time.Now,
	}
}

var _ portssvc.ReversalSvc = (*ReversalDetector)(nil)

// Detect searches a reversal partner for a negative, unflagged transaction and
// links both rows. It returns (nil, nil) when the transaction is already linked,
// is not an expense, or no candidate is similar enough. Link failures leave both
// rows untouched and wrap apperrors.ErrRetryable.
func (d *ReversalDetector) Detect(ctx context.Context, transactionID string, userID string) (*domain.Transaction, error) {
	txn, err := d.txnRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			d.LogError(ctx, err, "Failed to load transaction for reversal detection", slog.String("transaction_id", transactionID))
		}
		return nil, err
	}

	unlock := d.locks.Lock(txn.AccountID)
	defer unlock()

	// Reload under the lock: another detection may have flagged the row meanwhile.
	txn, err = d.txnRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	if txn.IsReversal || !txn.Amount.IsNegative() {
		return nil, nil
	}

	search := domain.ReversalSearch{
		AccountID: txn.AccountID,
		CardID:    txn.CardID,
		From:      txn.Date.Add(-d.window),
		To:        txn.Date.Add(d.window),
		ExcludeID: txn.TransactionID,
		Amount:    txn.Amount.Neg(),
	}
	candidates, err := d.txnRepo.FindReversalCandidates(ctx, search)
	if err != nil {
		d.LogError(ctx, err, "Failed to search reversal candidates", slog.String("transaction_id", transactionID))
		return nil, fmt.Errorf("failed to search reversal candidates: %w", err)
	}

	partner := d.firstMatch(*txn, candidates)
	if partner == nil {
		d.LogDebug(ctx, "No reversal partner found",
			slog.String("transaction_id", transactionID), slog.Int("candidates", len(candidates)))
		return nil, nil
	}

	if err := d.txnRepo.LinkReversalPair(ctx, txn.TransactionID, partner.TransactionID, userID, d.now()); err != nil {
		d.LogError(ctx, err, "Failed to link reversal pair",
			slog.String("transaction_id", txn.TransactionID), slog.String("partner_id", partner.TransactionID))
		return nil, fmt.Errorf("%w: linking %s and %s: %w", apperrors.ErrRetryable, txn.TransactionID, partner.TransactionID, err)
	}

	partner.IsReversal = true
	partner.RelatedTransactionID = &txn.TransactionID
	d.LogInfo(ctx, "Reversal pair linked",
		slog.String("transaction_id", txn.TransactionID), slog.String("partner_id", partner.TransactionID))
	return partner, nil
}

func (d *ReversalDetector) DetectForAccount(ctx context.Context, accountID, transactionID, userID string) (*domain.Transaction, error) {
	txn, err := d.txnRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	if txn.AccountID != accountID {
		return nil, fmt.Errorf("transaction %s does not belong to account %s: %w", transactionID, accountID, apperrors.ErrNotFound)
	}
	return d.Detect(ctx, transactionID, userID)
}

// firstMatch returns the first candidate, in search order, that carries the
// opposite amount and a similar enough description.
func (d *ReversalDetector) firstMatch(txn domain.Transaction, candidates []domain.Transaction) *domain.Transaction {
	want := txn.Amount.Neg()
	for i := range candidates {
		c := &candidates[i]
		if c.IsReversal || c.TransactionID == txn.TransactionID || !c.Amount.Equal(want) {
			continue
		}
		if similarity.Ratio(txn.Description, c.Description) >= d.threshold {
			return c
		}
	}
	return nil
}
