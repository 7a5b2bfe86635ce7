// Package parsers holds the pieces shared by the statement parsers.
package parsers

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

var amountCleaner = strings.NewReplacer(
	"R$", "",
	" ", "",
	"\u00a0", "",
	".", "",
)

// ParseAmount reads a Brazilian formatted amount such as "R$ -1.234,56".
// "." is a thousands separator and "," the decimal separator. A trailing
// minus sign ("39,90-") is accepted as well.
func ParseAmount(raw string) (decimal.Decimal, error) {
	s := amountCleaner.Replace(strings.TrimSpace(raw))
	if strings.HasSuffix(s, "-") && !strings.HasPrefix(s, "-") {
		s = "-" + strings.TrimSuffix(s, "-")
	}
	s = strings.Replace(s, ",", ".", 1)
	if s == "" || s == "-" {
		return decimal.Zero, fmt.Errorf("empty amount %q", raw)
	}

	amount, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q: %w", raw, err)
	}
	return amount, nil
}
