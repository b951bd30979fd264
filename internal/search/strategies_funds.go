package search

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/quantrail/fundlens/internal/catalog"
)

// formatNum renders a figure the way it appears in the catalog: no trailing
// zeros, no forced precision ("15.3", "2200").
func formatNum(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// categoryContains reports whether a fund's category or sub-category contains
// the term, case-insensitively.
func categoryContains(f *catalog.Fund, term string) bool {
	t := strings.ToLower(term)
	return strings.Contains(strings.ToLower(f.Category), t) ||
		strings.Contains(strings.ToLower(f.SubCategory), t)
}

// subCategoryOrCategory prefers the more specific label for explanations.
func subCategoryOrCategory(f *catalog.Fund) string {
	if f.SubCategory != "" {
		return f.SubCategory
	}
	return f.Category
}

// TaxSavingStrategy finds Section 80C eligible (ELSS) funds.
type TaxSavingStrategy struct{}

func (TaxSavingStrategy) Intent() Intent { return IntentTaxSaving }

func (TaxSavingStrategy) Search(snap *catalog.Snapshot, _ string) []*SearchResult {
	var results []*SearchResult
	funds := snap.Funds()
	for i := range funds {
		f := &funds[i]
		if !f.IsTaxSaving && f.SubCategory != "ELSS" {
			continue
		}
		results = append(results, &SearchResult{
			ID:   f.ID,
			Name: f.Name,
			Type: TypeMutualFund,
			Metadata: Metadata{
				FundHouse: f.FundHouse,
				Category:  f.Category,
				Returns:   f.Returns,
				TaxSaving: true,
			},
			MatchScore:  0.9,
			Explanation: "Matched as this is a tax-saving ELSS fund",
		})
	}
	return results
}

// HighReturnStrategy returns the top five funds by three-year return.
type HighReturnStrategy struct{}

func (HighReturnStrategy) Intent() Intent { return IntentHighReturn }

func (HighReturnStrategy) Search(snap *catalog.Snapshot, _ string) []*SearchResult {
	funds := snap.Funds()
	var ranked []*catalog.Fund
	for i := range funds {
		if _, ok := funds[i].ThreeYearReturn(); ok {
			ranked = append(ranked, &funds[i])
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		ri, _ := ranked[i].ThreeYearReturn()
		rj, _ := ranked[j].ThreeYearReturn()
		return ri > rj
	})
	if len(ranked) > 5 {
		ranked = ranked[:5]
	}

	results := make([]*SearchResult, 0, len(ranked))
	for _, f := range ranked {
		threeYear, _ := f.ThreeYearReturn()
		results = append(results, &SearchResult{
			ID:   f.ID,
			Name: f.Name,
			Type: TypeMutualFund,
			Metadata: Metadata{
				FundHouse: f.FundHouse,
				Category:  f.Category,
				Returns:   f.Returns,
			},
			MatchScore:  0.8,
			Explanation: fmt.Sprintf("High-performing fund with %s%% 3-year returns", formatNum(threeYear)),
		})
	}
	return results
}

// AUMThresholdStrategy finds funds whose AUM exceeds a minimum, in crores.
type AUMThresholdStrategy struct {
	Min float64
}

func (AUMThresholdStrategy) Intent() Intent { return IntentAUMThreshold }

func (s AUMThresholdStrategy) Search(snap *catalog.Snapshot, _ string) []*SearchResult {
	var results []*SearchResult
	funds := snap.Funds()
	for i := range funds {
		f := &funds[i]
		if f.AUM == nil || *f.AUM <= s.Min {
			continue
		}
		results = append(results, &SearchResult{
			ID:   f.ID,
			Name: f.Name,
			Type: TypeMutualFund,
			Metadata: Metadata{
				FundHouse: f.FundHouse,
				Category:  f.Category,
				AUM:       f.AUM,
			},
			MatchScore: 0.85,
			Explanation: fmt.Sprintf("Fund with AUM of ₹%s crores, exceeding your criteria of ₹%s crores",
				formatNum(*f.AUM), formatNum(s.Min)),
		})
	}

	// Scores are all equal, so the stable global ranker preserves this order.
	sort.SliceStable(results, func(i, j int) bool {
		return *results[i].Metadata.AUM > *results[j].Metadata.AUM
	})
	return results
}

// CategoryStrategy finds funds in a named category, best performers first.
type CategoryStrategy struct {
	Name string
}

func (CategoryStrategy) Intent() Intent { return IntentCategory }

func (s CategoryStrategy) Search(snap *catalog.Snapshot, _ string) []*SearchResult {
	var results []*SearchResult
	funds := snap.Funds()
	for i := range funds {
		f := &funds[i]
		if !categoryContains(f, s.Name) {
			continue
		}
		results = append(results, &SearchResult{
			ID:   f.ID,
			Name: f.Name,
			Type: TypeMutualFund,
			Metadata: Metadata{
				FundHouse:   f.FundHouse,
				Category:    f.Category,
				SubCategory: f.SubCategory,
				Returns:     f.Returns,
				AUM:         f.AUM,
			},
			MatchScore:  0.9,
			Explanation: fmt.Sprintf("Fund in the %s category", s.Name),
		})
	}

	// Equal scores; order by three-year return, treating missing as zero.
	sort.SliceStable(results, func(i, j int) bool {
		return threeYearOrZero(results[i].Metadata.Returns) > threeYearOrZero(results[j].Metadata.Returns)
	})
	return results
}

func threeYearOrZero(r *catalog.Returns) float64 {
	if r == nil || r.ThreeYear == nil {
		return 0
	}
	return *r.ThreeYear
}

// lowRiskCategories are the fund categories treated as capital-preserving.
var lowRiskCategories = []string{
	"Debt", "Liquid", "Ultra Short Duration", "Low Duration", "Money Market", "Overnight",
}

// LowRiskStrategy finds funds in capital-preserving categories.
type LowRiskStrategy struct{}

func (LowRiskStrategy) Intent() Intent { return IntentLowRisk }

func (LowRiskStrategy) Search(snap *catalog.Snapshot, _ string) []*SearchResult {
	var results []*SearchResult
	funds := snap.Funds()
	for i := range funds {
		f := &funds[i]
		matched := false
		for _, cat := range lowRiskCategories {
			if categoryContains(f, cat) {
				matched = true
				break
			}
		}
		if !matched {
			continue
		}
		results = append(results, &SearchResult{
			ID:   f.ID,
			Name: f.Name,
			Type: TypeMutualFund,
			Metadata: Metadata{
				FundHouse:  f.FundHouse,
				Category:   f.Category,
				Returns:    f.Returns,
				RiskRating: "Low",
			},
			MatchScore:  0.9,
			Explanation: fmt.Sprintf("Low-risk %s fund suited for stable returns", subCategoryOrCategory(f)),
		})
	}
	return results
}

// retirementCategories are the fund categories suited to retirement planning.
var retirementCategories = []string{
	"Debt", "Hybrid", "Conservative Hybrid", "Balanced Advantage",
}

// RetirementStrategy finds funds suited to retirement planning: conservative
// categories plus anything explicitly named a pension or retirement scheme.
type RetirementStrategy struct{}

func (RetirementStrategy) Intent() Intent { return IntentRetirement }

func (RetirementStrategy) Search(snap *catalog.Snapshot, _ string) []*SearchResult {
	var results []*SearchResult
	funds := snap.Funds()
	for i := range funds {
		f := &funds[i]
		if !isRetirementFund(f) {
			continue
		}
		results = append(results, &SearchResult{
			ID:   f.ID,
			Name: f.Name,
			Type: TypeMutualFund,
			Metadata: Metadata{
				FundHouse: f.FundHouse,
				Category:  f.Category,
				Returns:   f.Returns,
			},
			MatchScore:  0.9,
			Explanation: fmt.Sprintf("Suited for retirement goals as a %s fund", subCategoryOrCategory(f)),
		})
	}
	return results
}

func isRetirementFund(f *catalog.Fund) bool {
	name := strings.ToLower(f.Name)
	if strings.Contains(name, "pension") || strings.Contains(name, "retirement") {
		return true
	}
	for _, cat := range retirementCategories {
		if categoryContains(f, cat) {
			return true
		}
	}
	return false
}
