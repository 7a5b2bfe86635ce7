package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Candidate is a parsed, not yet persisted statement line.
type Candidate struct {
	Date               time.Time
	Description        string
	Amount             decimal.Decimal
	InstallmentCurrent *int
	InstallmentTotal   *int
	CardSuffix         string
	HolderName         string
	RawLine            string
}

// HasInstallment reports whether the line carried a current/total installment token.
func (c Candidate) HasInstallment() bool {
	return c.InstallmentCurrent != nil && c.InstallmentTotal != nil
}

// Section groups the candidates printed under one card header of a statement.
type Section struct {
	CardSuffix string
	HolderName string
	Candidates []Candidate
}
