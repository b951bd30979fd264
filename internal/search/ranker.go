package search

import (
	"fmt"
	"sort"
)

// noResultFormat quotes the raw query so users can see exactly what found
// nothing, including whitespace oddities.
const noResultFormat = `We couldn't find any securities matching "%s". Try a different search term.`

// NoResult builds the empty-result sentinel for query. Callers surface it in
// place of an empty list so downstream consumers always see at least one row.
func NoResult(query string) *SearchResult {
	return &SearchResult{
		ID:          NoResultID,
		Name:        "No matching funds or stocks found",
		Type:        TypeMutualFund,
		MatchScore:  0,
		Explanation: fmt.Sprintf(noResultFormat, query),
	}
}

// Rank orders results by score descending. The sort is stable, so candidates
// with equal scores keep the order their strategy emitted them in. An empty
// candidate list ranks to the no-results sentinel.
func Rank(results []*SearchResult, query string) []*SearchResult {
	if len(results) == 0 {
		return []*SearchResult{NoResult(query)}
	}
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].MatchScore > results[j].MatchScore
	})
	return results
}
