package search

import (
	"fmt"
	"sort"
	"strings"

	"github.com/quantrail/fundlens/internal/catalog"
)

// dividendSectors and dividendIndustries identify the stocks treated as
// dividend payers in this catalog.
var (
	dividendSectors    = []string{"Financial Services", "Energy"}
	dividendIndustries = []string{"Utilities"}
)

// DividendStrategy finds dividend-paying stocks, highest estimated yield
// first. Yields are synthesized by the estimator seam since the catalog does
// not carry them.
type DividendStrategy struct {
	Estimator Estimator
}

func (DividendStrategy) Intent() Intent { return IntentDividend }

func (s DividendStrategy) Search(snap *catalog.Snapshot, _ string) []*SearchResult {
	var results []*SearchResult
	stocks := snap.Stocks()
	for i := range stocks {
		st := &stocks[i]
		if !isDividendStock(st) {
			continue
		}
		yield := s.Estimator.DividendYield(st)
		results = append(results, &SearchResult{
			ID:   st.ID,
			Name: st.Name,
			Type: TypeStock,
			Metadata: Metadata{
				Symbol:        st.Symbol,
				Sector:        st.Sector,
				Industry:      st.Industry,
				DividendYield: &yield,
			},
			MatchScore: 0.85,
			Explanation: fmt.Sprintf("%s sector stock with an estimated %.1f%% dividend yield",
				st.Sector, yield),
		})
	}

	// Scores are all equal, so the stable global ranker preserves this order.
	sort.SliceStable(results, func(i, j int) bool {
		return *results[i].Metadata.DividendYield > *results[j].Metadata.DividendYield
	})
	return results
}

func isDividendStock(st *catalog.Stock) bool {
	for _, sec := range dividendSectors {
		if strings.EqualFold(st.Sector, sec) {
			return true
		}
	}
	for _, ind := range dividendIndustries {
		if strings.EqualFold(st.Industry, ind) {
			return true
		}
	}
	return false
}

// maxExpenseRatio is the retention cutoff for the low-expense strategy.
const maxExpenseRatio = 1.2

// LowExpenseStrategy finds cheap funds by synthesized expense ratio. The score
// decreases linearly with the ratio, so the global ranker orders results
// cheapest-first without a strategy-local sort.
type LowExpenseStrategy struct {
	Estimator Estimator
}

func (LowExpenseStrategy) Intent() Intent { return IntentLowExpense }

func (s LowExpenseStrategy) Search(snap *catalog.Snapshot, _ string) []*SearchResult {
	var results []*SearchResult
	funds := snap.Funds()
	for i := range funds {
		f := &funds[i]
		ratio := s.Estimator.ExpenseRatio(f)
		if ratio >= maxExpenseRatio {
			continue
		}
		results = append(results, &SearchResult{
			ID:   f.ID,
			Name: f.Name,
			Type: TypeMutualFund,
			Metadata: Metadata{
				FundHouse:    f.FundHouse,
				Category:     f.Category,
				Returns:      f.Returns,
				ExpenseRatio: &ratio,
			},
			MatchScore:  1 - ratio/2.5,
			Explanation: fmt.Sprintf("Low-cost fund with an estimated expense ratio of %.2f%%", ratio),
		})
	}
	return results
}

// compareTopFunds is how many funds per house the comparison strategy keeps.
const compareTopFunds = 3

// CompareStrategy compares fund houses named in the query: for each
// recognized house, its top funds by three-year return. Requires at least two
// distinct houses; otherwise there is nothing to compare and the ranker emits
// the no-results sentinel.
type CompareStrategy struct {
	Houses []string
}

func (CompareStrategy) Intent() Intent { return IntentCompare }

func (s CompareStrategy) Search(snap *catalog.Snapshot, _ string) []*SearchResult {
	if len(s.Houses) < 2 {
		return nil
	}

	var results []*SearchResult
	funds := snap.Funds()
	for _, house := range s.Houses {
		var houseFunds []*catalog.Fund
		for i := range funds {
			if funds[i].FundHouse == house {
				houseFunds = append(houseFunds, &funds[i])
			}
		}
		sort.SliceStable(houseFunds, func(i, j int) bool {
			ri, _ := houseFunds[i].ThreeYearReturn()
			rj, _ := houseFunds[j].ThreeYearReturn()
			return ri > rj
		})
		if len(houseFunds) > compareTopFunds {
			houseFunds = houseFunds[:compareTopFunds]
		}

		for _, f := range houseFunds {
			threeYear, _ := f.ThreeYearReturn()
			results = append(results, &SearchResult{
				ID:   f.ID,
				Name: f.Name,
				Type: TypeMutualFund,
				Metadata: Metadata{
					FundHouse:     f.FundHouse,
					Category:      f.Category,
					Returns:       f.Returns,
					AUM:           f.AUM,
					ForComparison: true,
				},
				MatchScore: 0.9,
				Explanation: fmt.Sprintf("One of %s's top funds with %s%% 3-year returns",
					f.FundHouse, formatNum(threeYear)),
			})
		}
	}
	return results
}
