package search

import (
	"fmt"
	"strings"

	"github.com/quantrail/fundlens/internal/catalog"
)

// HoldingLookupStrategy finds the funds holding a given stock, scored by how
// concentrated the position is: a 10% holding scores 1.0, a 15% holding 1.5.
type HoldingLookupStrategy struct {
	StockID string
}

func (HoldingLookupStrategy) Intent() Intent { return IntentHolding }

func (s HoldingLookupStrategy) Search(snap *catalog.Snapshot, _ string) []*SearchResult {
	stock := snap.StockByID(s.StockID)
	if stock == nil {
		return nil
	}

	var results []*SearchResult
	for _, h := range snap.HoldingsForStock(s.StockID) {
		fund := snap.FundByID(h.FundID)
		if fund == nil {
			continue
		}
		results = append(results, &SearchResult{
			ID:   fund.ID,
			Name: fund.Name,
			Type: TypeMutualFund,
			Metadata: Metadata{
				FundHouse: fund.FundHouse,
				Category:  fund.Category,
				Holding: &HoldingDetail{
					Stock:      stock.Name,
					Percentage: h.Percentage,
				},
			},
			MatchScore: h.Percentage / 10,
			Explanation: fmt.Sprintf("This fund holds %s%% in %s",
				formatNum(h.Percentage), stock.Name),
		})
	}
	return results
}

// SectorLookupStrategy finds funds exposed to a sector, two ways: directly via
// their own category (phase A), and indirectly via holdings in stocks of that
// sector (phase B). Direct focus outranks indirect exposure.
type SectorLookupStrategy struct {
	Keyword string
}

func (SectorLookupStrategy) Intent() Intent { return IntentSector }

func (s SectorLookupStrategy) Search(snap *catalog.Snapshot, _ string) []*SearchResult {
	terms := synonymsFor(s.Keyword)

	var results []*SearchResult
	seen := make(map[string]bool)

	// Phase A: funds whose own category or sub-category names the sector.
	funds := snap.Funds()
	for i := range funds {
		f := &funds[i]
		if !matchesAnyTerm(f, terms) {
			continue
		}
		seen[f.ID] = true
		results = append(results, &SearchResult{
			ID:   f.ID,
			Name: f.Name,
			Type: TypeMutualFund,
			Metadata: Metadata{
				FundHouse:   f.FundHouse,
				Category:    f.Category,
				SubCategory: f.SubCategory,
			},
			MatchScore:  0.85,
			Explanation: fmt.Sprintf("Fund focused on the %s sector", subCategoryOrCategory(f)),
		})
	}

	// Phase B: funds holding stocks of the sector, unless already matched.
	stocks := snap.Stocks()
	for i := range stocks {
		st := &stocks[i]
		if !stockInSector(st, terms) {
			continue
		}
		for _, h := range snap.HoldingsForStock(st.ID) {
			fund := snap.FundByID(h.FundID)
			if fund == nil || seen[fund.ID] {
				continue
			}
			seen[fund.ID] = true
			results = append(results, &SearchResult{
				ID:   fund.ID,
				Name: fund.Name,
				Type: TypeMutualFund,
				Metadata: Metadata{
					FundHouse: fund.FundHouse,
					Category:  fund.Category,
					Exposure: &SectorExposure{
						Stock:      st.Name,
						Sector:     st.Sector,
						Percentage: h.Percentage,
					},
				},
				MatchScore: 0.7,
				Explanation: fmt.Sprintf("Fund has %s%% exposure to %s sector through %s",
					formatNum(h.Percentage), st.Sector, st.Name),
			})
		}
	}

	return results
}

func matchesAnyTerm(f *catalog.Fund, terms []string) bool {
	for _, t := range terms {
		if categoryContains(f, t) {
			return true
		}
	}
	return false
}

func stockInSector(st *catalog.Stock, terms []string) bool {
	sector := strings.ToLower(st.Sector)
	industry := strings.ToLower(st.Industry)
	for _, t := range terms {
		lt := strings.ToLower(t)
		if (sector != "" && strings.Contains(sector, lt)) ||
			(industry != "" && strings.Contains(industry, lt)) {
			return true
		}
	}
	return false
}
