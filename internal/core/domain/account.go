package domain

// Account is the ledger account statements are imported into.
type Account struct {
	AccountID string `json:"accountID"` // Primary Key (e.g., UUID)
	Name      string `json:"name"`
	IsActive  bool   `json:"isActive"`
	AuditFields
}

// Card is a payment card registered under an account. Several cards may share
// the same last four digits (e.g. a holder and an additional card).
type Card struct {
	CardID         string `json:"cardID"`
	AccountID      string `json:"accountID"`      // FK -> accounts.account_id
	LastFourDigits string `json:"lastFourDigits"` // Matches the section header suffix of card statements
	HolderName     string `json:"holderName"`
	AuditFields
}
