package normalize

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/aseguralo/backoffice/pkg/textfold"
)

// Money parses a locale-tolerant decimal amount. Monetary fields default to
// zero on unparseable input rather than failing the row.
func Money(raw string) decimal.Decimal {
	v, ok := parseLocaleNumber(raw)
	if !ok {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(v)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// Number parses a locale-tolerant float and reports whether the input was
// numeric at all, so required numeric fields can surface a validation error
// instead of silently becoming zero.
func Number(raw string) (float64, bool) {
	v, ok := parseLocaleNumber(raw)
	if !ok {
		return 0, false
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// parseLocaleNumber strips currency noise and normalizes both "1.234,56" and
// "1,234.56" to "1234.56".
func parseLocaleNumber(raw string) (string, bool) {
	v := strings.TrimSpace(raw)
	if v == "" {
		return "", false
	}

	var b strings.Builder
	for _, r := range v {
		switch {
		case r >= '0' && r <= '9', r == '.', r == ',', r == '-':
			b.WriteRune(r)
		}
	}
	v = b.String()
	if v == "" || v == "-" {
		return "", false
	}

	lastDot := strings.LastIndex(v, ".")
	lastComma := strings.LastIndex(v, ",")
	switch {
	case lastComma > lastDot:
		// comma is the decimal separator
		v = strings.ReplaceAll(v, ".", "")
		lc := strings.LastIndex(v, ",")
		v = strings.ReplaceAll(v[:lc], ",", "") + "." + v[lc+1:]
	default:
		v = strings.ReplaceAll(v, ",", "")
		if strings.Count(v, ".") > 1 {
			// several dots can only be thousands separators
			v = strings.ReplaceAll(v, ".", "")
		}
	}

	if _, err := strconv.ParseFloat(v, 64); err != nil {
		return "", false
	}
	return v, true
}

var affirmative = map[string]bool{
	"si": true, "yes": true, "true": true, "1": true, "x": true, "verdadero": true,
}

// Bool maps a fixed affirmative token set to true; everything else is false.
func Bool(raw string) bool {
	return affirmative[textfold.Fold(raw)]
}
