package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// Source tells how a transaction entered the ledger.
type Source string

const (
	SourceManual   Source = "MANUAL"
	SourceImported Source = "IMPORTED"
)

// Transaction is a persisted ledger row. Amount is signed: negative values are
// expenses, positive values are income or refunds.
type Transaction struct {
	TransactionID         string          `json:"transactionID"` // Primary Key (e.g., UUID)
	AccountID             string          `json:"accountID"`     // FK -> accounts.account_id (Not Null)
	CardID                *string         `json:"cardID,omitempty"`
	ImportID              *string         `json:"importID,omitempty"` // Nullable for manual entries
	Date                  time.Time       `json:"date"`
	Description           string          `json:"description"`
	NormalizedDescription string          `json:"normalizedDescription"`
	SimplifiedDescription *string         `json:"simplifiedDescription,omitempty"`
	Category              *string         `json:"category,omitempty"`
	Amount                decimal.Decimal `json:"amount"`
	ResponsibleUsers      []string        `json:"responsibleUsers"`
	Source                Source          `json:"source"`
	RawFingerprint        string          `json:"rawFingerprint"`                  // Globally unique (Not Null)
	NormalizedFingerprint *string         `json:"normalizedFingerprint,omitempty"` // Unique when present
	IsReversal            bool            `json:"isReversal"`
	RelatedTransactionID  *string         `json:"relatedTransactionID,omitempty"`
	InstallmentCurrent    *int            `json:"installmentCurrent,omitempty"`
	InstallmentTotal      *int            `json:"installmentTotal,omitempty"`
	AuditFields
}

// IsExpense reports whether the transaction takes money out of the account.
func (t Transaction) IsExpense() bool {
	return t.Amount.IsNegative()
}

// Validate checks the reversal pairing invariant on a single row.
func (t Transaction) Validate() error {
	if t.RawFingerprint == "" {
		return errors.New("raw fingerprint is required")
	}
	if t.IsReversal && (t.RelatedTransactionID == nil || *t.RelatedTransactionID == "") {
		return errors.New("reversal transaction must reference its related transaction")
	}
	if !t.IsReversal && t.RelatedTransactionID != nil {
		return errors.New("related transaction is only allowed on reversals")
	}
	if t.RelatedTransactionID != nil && *t.RelatedTransactionID == t.TransactionID {
		return errors.New("transaction cannot be its own reversal")
	}
	return nil
}

// ReversalSearch narrows the persisted rows a reversal partner is looked for in.
type ReversalSearch struct {
	AccountID string
	CardID    *string // Optional: only rows of the same card
	From      time.Time
	To        time.Time
	ExcludeID string
	Amount    decimal.Decimal // Exact signed amount the partner must carry
}
