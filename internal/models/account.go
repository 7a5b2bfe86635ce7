package models

// Account represents a ledger account statements are imported into.
type Account struct {
	AccountID string `db:"account_id"`
	Name      string `db:"name"`
	IsActive  bool   `db:"is_active"`
	AuditFields
}

// Card represents a payment card registered under an account.
type Card struct {
	CardID         string `db:"card_id"`
	AccountID      string `db:"account_id"`
	LastFourDigits string `db:"last_four_digits"`
	HolderName     string `db:"holder_name"`
	AuditFields
}
