// Package search implements the query understanding and ranking engine:
// a raw natural-language query is classified into exactly one intent, executed
// by the bound strategy against an immutable catalog snapshot, and the scored,
// explained candidates are ranked into an ordered result list.
package search

import (
	"github.com/quantrail/fundlens/internal/catalog"
)

// ResultType identifies what kind of instrument a result refers to.
type ResultType string

const (
	// TypeMutualFund marks a result backed by a catalog.Fund.
	TypeMutualFund ResultType = "mutual_fund"
	// TypeStock marks a result backed by a catalog.Stock.
	TypeStock ResultType = "stock"
)

// NoResultID is the sentinel id of the canonical empty-result response.
// Callers must treat a result carrying this id as "found nothing", not a match.
const NoResultID = "no-result"

// Intent is the classified purpose of a query. Exactly one intent is selected
// per query; unrecognized queries carry IntentGeneric.
type Intent string

const (
	IntentRetirement   Intent = "retirement"
	IntentDividend     Intent = "dividend"
	IntentLowExpense   Intent = "low_expense"
	IntentCompare      Intent = "compare"
	IntentTaxSaving    Intent = "tax_saving"
	IntentHighReturn   Intent = "high_return"
	IntentLowRisk      Intent = "low_risk"
	IntentCategory     Intent = "category"
	IntentAUMThreshold Intent = "aum_threshold"
	IntentHolding      Intent = "holding_lookup"
	IntentSector       Intent = "sector_lookup"
	IntentGeneric      Intent = "generic"
)

// HoldingDetail describes a single fund-to-stock position in result metadata.
type HoldingDetail struct {
	Stock      string  `json:"stock"`
	Percentage float64 `json:"percentage"`
}

// SectorExposure describes indirect sector exposure through a held stock.
type SectorExposure struct {
	Stock      string  `json:"stock"`
	Sector     string  `json:"sector"`
	Percentage float64 `json:"percentage"`
}

// Metadata is the strategy-dependent payload attached to a result. It is a
// closed set of optional fields, one shape per strategy, so the presentation
// contract stays statically checkable while fields remain sparse. Zero values
// are omitted from JSON output.
type Metadata struct {
	FundHouse   string `json:"fundHouse,omitempty"`
	Category    string `json:"category,omitempty"`
	SubCategory string `json:"subCategory,omitempty"`

	Symbol   string `json:"symbol,omitempty"`
	Sector   string `json:"sector,omitempty"`
	Industry string `json:"industry,omitempty"`

	Returns *catalog.Returns `json:"returns,omitempty"`
	AUM     *float64         `json:"aum,omitempty"`

	TaxSaving     bool            `json:"taxSaving,omitempty"`
	RiskRating    string          `json:"riskRating,omitempty"`
	ExpenseRatio  *float64        `json:"expenseRatio,omitempty"`
	DividendYield *float64        `json:"dividendYield,omitempty"`
	Holding       *HoldingDetail  `json:"holding,omitempty"`
	Exposure      *SectorExposure `json:"sectorExposure,omitempty"`
	ForComparison bool            `json:"forComparison,omitempty"`
}

// SearchResult is the engine's sole output unit. Results are created fresh per
// query, never mutated after construction, and owned by the caller once
// returned.
type SearchResult struct {
	// ID is the matched entity's catalog id, or NoResultID for the sentinel.
	ID string `json:"id"`

	// Name is the matched entity's display name.
	Name string `json:"name"`

	// Type identifies the kind of instrument.
	Type ResultType `json:"type"`

	// Metadata carries the strategy-dependent payload; sparse per field.
	Metadata Metadata `json:"metadata"`

	// MatchScore orders results within one query's output. Higher is more
	// relevant; scores are not comparable across queries.
	MatchScore float64 `json:"matchScore"`

	// Explanation is a human-readable sentence saying why this matched.
	// Never empty.
	Explanation string `json:"explanation"`
}

// IsNoResult reports whether this result is the empty-result sentinel.
func (r *SearchResult) IsNoResult() bool {
	return r.ID == NoResultID
}

// Strategy is a self-contained candidate-generation and scoring routine bound
// to one intent. Search returns an unordered candidate list; the ranker always
// sorts afterward, so any strategy-local ordering only matters for tie-breaks.
type Strategy interface {
	// Intent identifies which intent this strategy serves.
	Intent() Intent

	// Search generates scored, explained candidates for the query.
	Search(snap *catalog.Snapshot, query string) []*SearchResult
}

// Classifier selects the strategy for a query. Implementations must be total:
// every query classifies to exactly one strategy, falling back to generic
// scoring when no specialized intent applies.
type Classifier interface {
	Classify(query string) Strategy
}
