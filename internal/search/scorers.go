package search

import (
	"fmt"

	"github.com/quantrail/fundlens/internal/catalog"
)

// Fixed scoring policy. These weights and the retention threshold are part of
// the engine contract and are deliberately not configurable at runtime.
const (
	fundNameWeight     = 0.6
	fundHouseWeight    = 0.3
	fundCategoryWeight = 0.1

	stockNameWeight   = 0.7
	stockSymbolWeight = 0.3

	genericScoreThreshold = 0.2
)

// scoreFund computes the generic relevance score of a fund for a query.
func scoreFund(query string, f *catalog.Fund) float64 {
	return Similarity(query, f.Name)*fundNameWeight +
		Similarity(query, f.FundHouse)*fundHouseWeight +
		Similarity(query, f.Category)*fundCategoryWeight
}

// scoreStock computes the generic relevance score of a stock for a query.
func scoreStock(query string, s *catalog.Stock) float64 {
	return Similarity(query, s.Name)*stockNameWeight +
		Similarity(query, s.Symbol)*stockSymbolWeight
}

// fundResult builds a generic-match result for a fund.
func fundResult(f *catalog.Fund, score float64) *SearchResult {
	return &SearchResult{
		ID:   f.ID,
		Name: f.Name,
		Type: TypeMutualFund,
		Metadata: Metadata{
			FundHouse: f.FundHouse,
			Category:  f.Category,
			Returns:   f.Returns,
			AUM:       f.AUM,
		},
		MatchScore:  score,
		Explanation: fmt.Sprintf("Matched based on fund name and %s fund house", f.FundHouse),
	}
}

// stockResult builds a generic-match result for a stock.
func stockResult(s *catalog.Stock, score float64) *SearchResult {
	return &SearchResult{
		ID:   s.ID,
		Name: s.Name,
		Type: TypeStock,
		Metadata: Metadata{
			Symbol:   s.Symbol,
			Sector:   s.Sector,
			Industry: s.Industry,
		},
		MatchScore:  score,
		Explanation: fmt.Sprintf("Matched based on stock name and %s symbol", s.Symbol),
	}
}
