// Package rates resolves the price of a phone number against a rate
// deck using longest-prefix matching. Resolution is deterministic,
// side-effect free and safe for concurrent use.
package rates

import (
	"strings"

	"ovoky.com/billing/models"
)

// Resolve picks the best-matching rate row for a number. Rows matching
// the number's country and type (case-insensitive) are tried first;
// when none of them match the number's prefix the whole deck is
// retried ignoring country and type. Ties on prefix length resolve to
// the first row in storage order. A zero-length prefix is a catch-all
// that only wins when nothing longer matches. A miss returns
// (nil, false), never an error.
func Resolve(number, country, numberType string, rows []models.RateRow) (*models.RateRow, bool) {
	normalized := NormalizeNumber(number)

	filtered := make([]models.RateRow, 0, len(rows))
	for _, row := range rows {
		if strings.EqualFold(row.Country, country) && strings.EqualFold(row.NumberType, numberType) {
			filtered = append(filtered, row)
		}
	}

	if match := longestPrefixMatch(normalized, filtered); match != nil {
		return match, true
	}
	if match := longestPrefixMatch(normalized, rows); match != nil {
		return match, true
	}
	return nil, false
}

// ResolveForNumber adapts Resolve to a phone number model
func ResolveForNumber(number models.PhoneNumber, rows []models.RateRow) (*models.RateRow, bool) {
	return Resolve(number.Number, number.Country, number.NumberType, rows)
}

func longestPrefixMatch(number string, rows []models.RateRow) *models.RateRow {
	var best *models.RateRow
	bestLen := -1
	for i := range rows {
		prefix := NormalizeNumber(rows[i].Prefix)
		if !strings.HasPrefix(number, prefix) {
			continue
		}
		if len(prefix) > bestLen {
			best = &rows[i]
			bestLen = len(prefix)
		}
	}
	return best
}

// NormalizeNumber strips a leading + and all whitespace
func NormalizeNumber(number string) string {
	trimmed := strings.Join(strings.Fields(number), "")
	return strings.TrimPrefix(trimmed, "+")
}
