package services

import (
	"context"
	"log/slog"
	"strings"

	"github.com/SscSPs/statement_ingestion/internal/core/domain"
	portsrepo "github.com/SscSPs/statement_ingestion/internal/core/ports/repositories"
)

// CardResolver binds statement sections to registered cards.
type CardResolver struct {
	BaseService
	cardRepo portsrepo.CardReader
}

// NewCardResolver creates a new CardResolver.
func NewCardResolver(cardRepo portsrepo.CardReader) *CardResolver {
	return &CardResolver{cardRepo: cardRepo}
}

// Resolve returns the card a section was printed for, or nil when the account has
// no card with that suffix. It never fails: lookup errors are logged and the
// section is imported without a card.
func (r *CardResolver) Resolve(ctx context.Context, accountID string, section domain.Section) *domain.Card {
	attrs := []any{
		slog.String("account_id", accountID),
		slog.String("card_suffix", section.CardSuffix),
	}

	cards, err := r.cardRepo.FindCardsByLastFour(ctx, section.CardSuffix, accountID)
	if err != nil {
		r.LogError(ctx, err, "Card lookup failed, importing section without card", attrs...)
		return nil
	}

	switch len(cards) {
	case 0:
		r.LogWarn(ctx, "No card registered for statement section", attrs...)
		return nil
	case 1:
		return &cards[0]
	}

	for i := range cards {
		if holderMatches(cards[i].HolderName, section.HolderName) {
			return &cards[i]
		}
	}

	r.LogWarn(ctx, "Several cards share the suffix and none matches the holder, using the first",
		append(attrs, slog.String("holder_name", section.HolderName), slog.Int("cards", len(cards)))...)
	return &cards[0]
}

// holderMatches compares two holder names after uppercasing and collapsing
// whitespace. Names match when equal, or when both the first and the last
// tokens agree ("JOHN A SMITH" and "JOHN SMITH").
func holderMatches(a, b string) bool {
	ta := strings.Fields(strings.ToUpper(a))
	tb := strings.Fields(strings.ToUpper(b))
	if len(ta) == 0 || len(tb) == 0 {
		return false
	}
	if strings.Join(ta, " ") == strings.Join(tb, " ") {
		return true
	}
	return ta[0] == tb[0] && ta[len(ta)-1] == tb[len(tb)-1]
}
