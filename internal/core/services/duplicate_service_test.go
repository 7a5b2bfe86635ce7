package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/statement_ingestion/internal/core/domain"
	"github.com/SscSPs/statement_ingestion/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const threeDays = 3 * 24 * time.Hour

func dupTxn(id string, source domain.Source, amount string, date time.Time) domain.Transaction {
	return domain.Transaction{
		TransactionID:  id,
		AccountID:      "acc-1",
		Date:           date,
		Description:    "MERCADO " + id,
		Amount:         decimal.RequireFromString(amount),
		Source:         source,
		RawFingerprint: "raw-" + id,
	}
}

func groupIDs(groups []domain.DuplicateGroup) [][]string {
	out := make([][]string, 0, len(groups))
	for _, g := range groups {
		ids := make([]string, 0, len(g.Transactions))
		for _, t := range g.Transactions {
			ids = append(ids, t.TransactionID)
		}
		out = append(out, ids)
	}
	return out
}

func TestGroupCrossSourceDuplicates(t *testing.T) {
	day := time.Date(2024, 11, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		txns []domain.Transaction
		want [][]string
	}{
		{
			name: "manual and imported on the same day",
			txns: []domain.Transaction{
				dupTxn("a", domain.SourceManual, "-120.00", day),
				dupTxn("b", domain.SourceImported, "-120.00", day),
			},
			want: [][]string{{"a", "b"}},
		},
		{
			name: "two imported rows are not reported",
			txns: []domain.Transaction{
				dupTxn("a", domain.SourceImported, "-120.00", day),
				dupTxn("b", domain.SourceImported, "-120.00", day),
			},
			want: [][]string{},
		},
		{
			name: "window is inclusive",
			txns: []domain.Transaction{
				dupTxn("a", domain.SourceManual, "-120.00", day),
				dupTxn("b", domain.SourceImported, "-120.00", day.AddDate(0, 0, 3)),
				dupTxn("c", domain.SourceImported, "-120.00", day.AddDate(0, 0, 4)),
			},
			want: [][]string{{"a", "b"}},
		},
		{
			name: "amount must match exactly including sign",
			txns: []domain.Transaction{
				dupTxn("a", domain.SourceManual, "-120.00", day),
				dupTxn("b", domain.SourceImported, "120.00", day),
				dupTxn("c", domain.SourceImported, "-120.01", day),
			},
			want: [][]string{},
		},
		{
			name: "scale does not matter",
			txns: []domain.Transaction{
				dupTxn("a", domain.SourceManual, "-120", day),
				dupTxn("b", domain.SourceImported, "-120.00", day.AddDate(0, 0, 1)),
			},
			want: [][]string{{"a", "b"}},
		},
		{
			name: "representative is the first member",
			txns: []domain.Transaction{
				dupTxn("a", domain.SourceManual, "-10.00", day),
				dupTxn("b", domain.SourceImported, "-10.00", day.AddDate(0, 0, 3)),
				dupTxn("c", domain.SourceImported, "-10.00", day.AddDate(0, 0, 5)),
			},
			want: [][]string{{"a", "b"}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			groups := services.GroupCrossSourceDuplicates(tt.txns, threeDays)
			assert.Equal(t, tt.want, groupIDs(groups))
		})
	}
}

func TestGroupCrossSourceDuplicates_OrderIndependent(t *testing.T) {
	day := time.Date(2024, 11, 10, 0, 0, 0, 0, time.UTC)
	a := dupTxn("a", domain.SourceManual, "-50.00", day)
	b := dupTxn("b", domain.SourceImported, "-50.00", day.AddDate(0, 0, 2))
	c := dupTxn("c", domain.SourceImported, "-50.00", day.AddDate(0, 0, 4))
	d := dupTxn("d", domain.SourceManual, "-50.00", day.AddDate(0, 0, 5))

	forward := services.GroupCrossSourceDuplicates([]domain.Transaction{a, b, c, d}, threeDays)
	backward := services.GroupCrossSourceDuplicates([]domain.Transaction{d, c, b, a}, threeDays)

	assert.Equal(t, [][]string{{"a", "b"}, {"c", "d"}}, groupIDs(forward))
	assert.Equal(t, groupIDs(forward), groupIDs(backward))

	require.Len(t, forward, 2)
	assert.True(t, forward[0].Date.Equal(day))
	assert.True(t, forward[0].Amount.Equal(decimal.RequireFromString("-50")))
}

func TestDuplicateService_FindDuplicateGroups(t *testing.T) {
	day := time.Date(2024, 11, 10, 0, 0, 0, 0, time.UTC)
	store := newMemStore("acc-1", "acc-2")
	other := dupTxn("x", domain.SourceImported, "-75.00", day)
	other.AccountID = "acc-2"
	store.put(
		dupTxn("a", domain.SourceManual, "-75.00", day),
		dupTxn("b", domain.SourceImported, "-75.00", day.AddDate(0, 0, 1)),
		other,
	)

	groups, err := services.NewDuplicateService(store, 0).FindDuplicateGroups(context.Background(), "acc-1")

	require.NoError(t, err)
	assert.Equal(t, [][]string{{"a", "b"}}, groupIDs(groups))
	assert.True(t, groups[0].HasMixedSources())
}
