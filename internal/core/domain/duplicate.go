package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DuplicateGroup is a set of same-amount, near-date transactions mixing manual
// and imported entries, reported for manual review. Date and Amount come from
// the first member.
type DuplicateGroup struct {
	Date         time.Time       `json:"date"`
	Amount       decimal.Decimal `json:"amount"`
	Transactions []Transaction   `json:"transactions"`
}

// HasMixedSources reports whether the group holds both manual and imported rows.
func (g DuplicateGroup) HasMixedSources() bool {
	var manual, imported bool
	for _, t := range g.Transactions {
		switch t.Source {
		case SourceManual:
			manual = true
		case SourceImported:
			imported = true
		}
	}
	return manual && imported
}
