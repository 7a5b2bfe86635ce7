package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionSource mirrors the source column of transactions.
type TransactionSource string

const (
	SourceManual   TransactionSource = "MANUAL"
	SourceImported TransactionSource = "IMPORTED"
)

// Transaction represents a row of the transactions table.
type Transaction struct {
	TransactionID         string            `db:"transaction_id"`
	AccountID             string            `db:"account_id"`
	CardID                sql.NullString    `db:"card_id"`
	ImportID              sql.NullString    `db:"import_id"`
	TransactionDate       time.Time         `db:"transaction_date"`
	Description           string            `db:"description"`
	NormalizedDescription string            `db:"normalized_description"`
	SimplifiedDescription sql.NullString    `db:"simplified_description"`
	Category              sql.NullString    `db:"category"`
	Amount                decimal.Decimal   `db:"amount"` // Signed; negative is an expense
	ResponsibleUsers      []string          `db:"responsible_users"`
	Source                TransactionSource `db:"source"`
	RawFingerprint        string            `db:"raw_fingerprint"`
	NormalizedFingerprint sql.NullString    `db:"normalized_fingerprint"`
	IsReversal            bool              `db:"is_reversal"`
	RelatedTransactionID  sql.NullString    `db:"related_transaction_id"`
	InstallmentCurrent    sql.NullInt32     `db:"installment_current"`
	InstallmentTotal      sql.NullInt32     `db:"installment_total"`
	AuditFields
}
