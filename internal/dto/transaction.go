package dto

import (
	"time"

	"github.com/SscSPs/statement_ingestion/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TransactionResponse defines the data returned for a ledger transaction.
type TransactionResponse struct {
	TransactionID         string          `json:"transactionID"`
	AccountID             string          `json:"accountID"`
	CardID                *string         `json:"cardID,omitempty"`
	ImportID              *string         `json:"importID,omitempty"`
	Date                  time.Time       `json:"date"`
	Description           string          `json:"description"`
	SimplifiedDescription *string         `json:"simplifiedDescription,omitempty"`
	Category              *string         `json:"category,omitempty"`
	Amount                decimal.Decimal `json:"amount"`
	ResponsibleUsers      []string        `json:"responsibleUsers"`
	Source                domain.Source   `json:"source"`
	IsReversal            bool            `json:"isReversal"`
	RelatedTransactionID  *string         `json:"relatedTransactionID,omitempty"`
	InstallmentCurrent    *int            `json:"installmentCurrent,omitempty"`
	InstallmentTotal      *int            `json:"installmentTotal,omitempty"`
	CreatedAt             time.Time       `json:"createdAt"`
	CreatedBy             string          `json:"createdBy"`
}

// ToTransactionResponse converts a domain.Transaction to TransactionResponse DTO.
// Fingerprints stay internal.
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	users := txn.ResponsibleUsers
	if users == nil {
		users = []string{}
	}
	return TransactionResponse{
		TransactionID:         txn.TransactionID,
		AccountID:             txn.AccountID,
		CardID:                txn.CardID,
		ImportID:              txn.ImportID,
		Date:                  txn.Date,
		Description:           txn.Description,
		SimplifiedDescription: txn.SimplifiedDescription,
		Category:              txn.Category,
		Amount:                txn.Amount,
		ResponsibleUsers:      users,
		Source:                txn.Source,
		IsReversal:            txn.IsReversal,
		RelatedTransactionID:  txn.RelatedTransactionID,
		InstallmentCurrent:    txn.InstallmentCurrent,
		InstallmentTotal:      txn.InstallmentTotal,
		CreatedAt:             txn.CreatedAt,
		CreatedBy:             txn.CreatedBy,
	}
}

// ToTransactionResponses converts a slice of domain.Transaction to []TransactionResponse.
func ToTransactionResponses(txns []domain.Transaction) []TransactionResponse {
	responses := make([]TransactionResponse, len(txns))
	for i := range txns {
		responses[i] = ToTransactionResponse(&txns[i])
	}
	return responses
}

// ReversalResponse is returned by on-demand reversal detection.
type ReversalResponse struct {
	Linked  bool                 `json:"linked"`
	Partner *TransactionResponse `json:"partner,omitempty"`
}
