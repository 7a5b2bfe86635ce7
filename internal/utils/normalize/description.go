// Package normalize turns free-text merchant descriptions into canonical keys.
package normalize

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	// DD/MM, DD/MM/YY, DD/MM/YYYY and ISO YYYY-MM-DD
	dateToken = regexp.MustCompile(`\b\d{4}-\d{2}-\d{2}\b|\b\d{1,2}/\d{1,2}(?:/\d{2,4})?\b`)
	// HHhMM and HHh
	timeToken   = regexp.MustCompile(`\b\d{1,2}h(?:\d{2})?\b`)
	nonAlnum    = regexp.MustCompile(`[^a-z0-9]+`)
	whitespaces = regexp.MustCompile(`\s+`)
)

// Description returns the canonical key of a merchant description. Two
// descriptions that differ only by embedded timestamps, case, accents,
// punctuation or spacing share the same key. Empty input yields "".
func Description(text string) string {
	if strings.TrimSpace(text) == "" {
		return ""
	}

	key := foldDiacritics(strings.ToLower(text))
	key = dateToken.ReplaceAllString(key, " ")
	key = timeToken.ReplaceAllString(key, " ")
	key = nonAlnum.ReplaceAllString(key, " ")
	key = whitespaces.ReplaceAllString(key, " ")
	return strings.TrimSpace(key)
}

func foldDiacritics(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return folded
}
