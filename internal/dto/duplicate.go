package dto

import (
	"time"

	"github.com/SscSPs/statement_ingestion/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DuplicateGroupResponse is one group of probable duplicates awaiting review.
type DuplicateGroupResponse struct {
	Date         time.Time             `json:"date"`
	Amount       decimal.Decimal       `json:"amount"`
	Transactions []TransactionResponse `json:"transactions"`
}

// ListDuplicatesResponse wraps the duplicate groups of an account.
type ListDuplicatesResponse struct {
	Groups []DuplicateGroupResponse `json:"groups"`
}

// ToListDuplicatesResponse converts domain groups to the response DTO.
func ToListDuplicatesResponse(groups []domain.DuplicateGroup) ListDuplicatesResponse {
	res := ListDuplicatesResponse{Groups: make([]DuplicateGroupResponse, len(groups))}
	for i, g := range groups {
		res.Groups[i] = DuplicateGroupResponse{
			Date:         g.Date,
			Amount:       g.Amount,
			Transactions: ToTransactionResponses(g.Transactions),
		}
	}
	return res
}
