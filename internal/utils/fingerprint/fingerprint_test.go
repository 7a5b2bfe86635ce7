package fingerprint_test

import (
	"testing"
	"time"

	"github.com/SscSPs/statement_ingestion/internal/utils/fingerprint"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

var day = time.Date(2024, 11, 12, 0, 0, 0, 0, time.UTC)

func TestRaw(t *testing.T) {
	line := "12/11/2024;NETFLIX;-39,90;0"

	got := fingerprint.Raw(line)
	assert.Len(t, got, 64)
	assert.Equal(t, got, fingerprint.Raw("  "+line+"\t"), "surrounding whitespace is ignored")
	assert.NotEqual(t, got, fingerprint.Raw("12/11/2024;NETFLIX;-39,91;0"))
}

func TestNormalized_ScaleInvariant(t *testing.T) {
	a := fingerprint.Normalized(day, "NETFLIX", decimal.NewFromInt(100), "acc-1")
	b := fingerprint.Normalized(day, "NETFLIX", decimal.RequireFromString("100.00"), "acc-1")
	c := fingerprint.Normalized(day, "NETFLIX", decimal.RequireFromString("100.0000"), "acc-1")

	assert.Equal(t, a, b)
	assert.Equal(t, a, c)
}

func TestNormalized_SignInvariant(t *testing.T) {
	expense := fingerprint.Normalized(day, "NETFLIX", decimal.RequireFromString("-39.90"), "acc-1")
	refund := fingerprint.Normalized(day, "NETFLIX", decimal.RequireFromString("39.90"), "acc-1")

	assert.Equal(t, expense, refund)
}

func TestNormalized_CaseAndSpacingInvariant(t *testing.T) {
	a := fingerprint.Normalized(day, "NETFLIX 12/11 14h30 SP", decimal.RequireFromString("39.90"), "acc-1")
	b := fingerprint.Normalized(day, "netflix   sp", decimal.RequireFromString("39.9"), "acc-1")

	assert.Equal(t, a, b)
}

func TestNormalized_CrossFormatIdentity(t *testing.T) {
	// A delimited export line and a card statement line for the same purchase.
	fromDelimited := fingerprint.Normalized(day, `"NETFLIX.COM"`, decimal.RequireFromString("-39.90"), "acc-1")
	fromStatement := fingerprint.Normalized(day, "NETFLIX.COM", decimal.RequireFromString("39.90"), "acc-1")

	assert.Equal(t, fromDelimited, fromStatement)
}

func TestNormalized_Distinguishes(t *testing.T) {
	base := fingerprint.Normalized(day, "NETFLIX", decimal.RequireFromString("39.90"), "acc-1")

	assert.NotEqual(t, base, fingerprint.Normalized(day.AddDate(0, 0, 1), "NETFLIX", decimal.RequireFromString("39.90"), "acc-1"), "different date")
	assert.NotEqual(t, base, fingerprint.Normalized(day, "SPOTIFY", decimal.RequireFromString("39.90"), "acc-1"), "different description")
	assert.NotEqual(t, base, fingerprint.Normalized(day, "NETFLIX", decimal.RequireFromString("39.91"), "acc-1"), "different amount")
	assert.NotEqual(t, base, fingerprint.Normalized(day, "NETFLIX", decimal.RequireFromString("39.90"), "acc-2"), "different account")
}

func TestNormalized_InstallmentMarkerIsNotPartOfIdentity(t *testing.T) {
	// NN/NN reads as a date token, so installments printed with the original
	// purchase date collapse to one normalized fingerprint.
	second := fingerprint.Normalized(day, "LOJA 02/10", decimal.RequireFromString("125.00"), "acc-1")
	third := fingerprint.Normalized(day, "LOJA 03/10", decimal.RequireFromString("125.00"), "acc-1")

	assert.Equal(t, second, third)
	assert.NotEqual(t, fingerprint.Raw("12/11/2024 LOJA 02/10 125,00"), fingerprint.Raw("12/11/2024 LOJA 03/10 125,00"))
}
