// Package textfold normalizes user-supplied Spanish/English text for the
// heuristic matching the import engine runs on headers, sheet names and
// reference labels.
package textfold

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var stripAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Fold lowercases, trims and strips diacritics: "Póliza " -> "poliza".
func Fold(s string) string {
	folded, _, err := transform.String(stripAccents, s)
	if err != nil {
		folded = s
	}
	return strings.ToLower(strings.TrimSpace(folded))
}

// Key normalizes a natural key: trim + lowercase, accents kept.
func Key(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Identification normalizes an identification number by dropping every
// non-alphanumeric rune and lowercasing, so "V-12.345.678" == "v12345678".
func Identification(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
