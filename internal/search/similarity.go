package search

import (
	"strings"
	"unicode/utf8"
)

// Similarity computes a normalized text similarity in [0,1] between a query
// and a candidate field. Containment of the whole query scores 1.0, otherwise
// the score is the fraction of query tokens (longer than 2 runes) contained in
// the candidate. Tokens of 2 runes or fewer never count, but they stay in the
// denominator.
func Similarity(query, text string) float64 {
	query = strings.ToLower(query)
	text = strings.ToLower(text)

	if strings.Contains(text, query) {
		return 1.0
	}

	words := strings.Fields(query)
	if len(words) == 0 {
		return 0
	}

	matched := 0
	for _, w := range words {
		if utf8.RuneCountInString(w) > 2 && strings.Contains(text, w) {
			matched++
		}
	}

	return float64(matched) / float64(len(words))
}

// normalizeQuery canonicalizes a query for classification and cache keys.
func normalizeQuery(query string) string {
	return strings.ToLower(strings.TrimSpace(query))
}
