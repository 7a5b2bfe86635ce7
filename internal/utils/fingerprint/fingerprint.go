// Package fingerprint computes the content hashes used to keep statement lines
// from being ingested twice.
package fingerprint

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/statement_ingestion/internal/utils/normalize"
	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

// Raw hashes the trimmed source line. It catches byte-identical re-imports of
// the same line.
func Raw(line string) string {
	return hash(strings.TrimSpace(line))
}

// Normalized hashes the economic identity of a transaction:
// SHA256("{date}|{normalized description}|{abs amount, 2dp}|{account}").
// The amount is taken in absolute value and fixed to two decimals, so 100,
// 100.00 and -100.00 hash identically.
func Normalized(date time.Time, description string, amount decimal.Decimal, accountID string) string {
	input := fmt.Sprintf("%s|%s|%s|%s",
		date.Format(dateLayout),
		normalize.Description(description),
		amount.Abs().StringFixed(2),
		accountID,
	)
	return hash(input)
}

func hash(input string) string {
	sum := sha256.Sum256([]byte(input))
	return hex.EncodeToString(sum[:])
}
