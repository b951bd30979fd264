package search

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/quantrail/fundlens/internal/catalog"

	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultClassifierCacheSize bounds the intent cache. Queries repeat heavily
// in interactive sessions, so even a small cache absorbs most lookups.
const DefaultClassifierCacheSize = 256

// aumPattern extracts the numeric threshold from queries like
// "funds with aum greater than 1000 cr".
var aumPattern = regexp.MustCompile(`(\d+)\s*cr`)

// aumSignals must accompany the "aum" keyword for a threshold query.
var aumSignals = []string{"greater", ">"}

// rule is one row of the classification table. match returns a bound
// strategy, or nil to fall through to the next row.
type rule struct {
	name  string
	match func(q string) Strategy
}

// RuleClassifier maps a raw query to a search strategy by scanning an
// ordered rule table. The first matching rule wins. Rules that need catalog
// data (holding and sector lookups) bind against the snapshot the classifier
// was built with, so a new classifier is constructed on every catalog swap.
type RuleClassifier struct {
	snap      *catalog.Snapshot
	estimator Estimator
	rules     []rule
	cache     *lru.Cache[string, Strategy]
}

// NewRuleClassifier builds a classifier over snap. The estimator feeds the
// dividend and expense strategies. cacheSize <= 0 selects the default.
func NewRuleClassifier(snap *catalog.Snapshot, estimator Estimator, cacheSize int) (*RuleClassifier, error) {
	if cacheSize <= 0 {
		cacheSize = DefaultClassifierCacheSize
	}
	cache, err := lru.New[string, Strategy](cacheSize)
	if err != nil {
		return nil, err
	}
	c := &RuleClassifier{
		snap:      snap,
		estimator: estimator,
		cache:     cache,
	}
	c.rules = []rule{
		{"retirement", c.matchRetirement},
		{"dividend", c.matchDividend},
		{"low-expense", c.matchLowExpense},
		{"compare", c.matchCompare},
		{"tax-saving", c.matchTaxSaving},
		{"high-return", c.matchHighReturn},
		{"low-risk", c.matchLowRisk},
		{"large-cap", matchCategory("Large Cap", "large cap", "largecap")},
		{"mid-cap", matchCategory("Mid Cap", "mid cap", "midcap")},
		{"small-cap", matchCategory("Small Cap", "small cap", "smallcap")},
		{"debt", c.matchDebt},
		{"aum-threshold", c.matchAUM},
		{"holding-lookup", c.matchHolding},
		{"sector-lookup", c.matchSector},
	}
	return c, nil
}

// Classify resolves query to a strategy, consulting the rule table in order
// and falling back to the generic fuzzy scorer when nothing matches.
func (c *RuleClassifier) Classify(query string) Strategy {
	q := normalizeQuery(query)
	if s, ok := c.cache.Get(q); ok {
		return s
	}
	strategy := c.classify(q)
	c.cache.Add(q, strategy)
	return strategy
}

func (c *RuleClassifier) classify(q string) Strategy {
	for _, r := range c.rules {
		if s := r.match(q); s != nil {
			return s
		}
	}
	return GenericStrategy{}
}

func containsAny(q string, terms ...string) bool {
	for _, t := range terms {
		if strings.Contains(q, t) {
			return true
		}
	}
	return false
}

func (c *RuleClassifier) matchRetirement(q string) Strategy {
	if containsAny(q, "retirement", "pension") {
		return RetirementStrategy{}
	}
	return nil
}

func (c *RuleClassifier) matchDividend(q string) Strategy {
	if containsAny(q, "dividend", "yield") {
		return DividendStrategy{Estimator: c.estimator}
	}
	return nil
}

func (c *RuleClassifier) matchLowExpense(q string) Strategy {
	if containsAny(q, "expense ratio", "fee", "cheap") {
		return LowExpenseStrategy{Estimator: c.estimator}
	}
	return nil
}

func (c *RuleClassifier) matchCompare(q string) Strategy {
	if containsAny(q, "compare", "vs", "versus") {
		return CompareStrategy{Houses: housesInQuery(q)}
	}
	return nil
}

func (c *RuleClassifier) matchTaxSaving(q string) Strategy {
	if containsAny(q, "tax", "elss") {
		return TaxSavingStrategy{}
	}
	return nil
}

func (c *RuleClassifier) matchHighReturn(q string) Strategy {
	if containsAny(q, "high return", "best performing") {
		return HighReturnStrategy{}
	}
	return nil
}

func (c *RuleClassifier) matchLowRisk(q string) Strategy {
	if containsAny(q, "safe", "low risk", "stable") {
		return LowRiskStrategy{}
	}
	return nil
}

// matchCategory binds the category when any of its trigger keywords appears,
// so spaced and unspaced forms like "mid cap" and "midcap" both qualify.
func matchCategory(category string, keywords ...string) func(string) Strategy {
	return func(q string) Strategy {
		if containsAny(q, keywords...) {
			return CategoryStrategy{Name: category}
		}
		return nil
	}
}

func (c *RuleClassifier) matchDebt(q string) Strategy {
	if containsAny(q, "debt", "bond") {
		return CategoryStrategy{Name: "Debt"}
	}
	return nil
}

// matchAUM requires the "aum" keyword plus a comparison signal plus a
// parseable "N cr" amount. A missing or malformed amount falls through
// rather than guessing a threshold.
func (c *RuleClassifier) matchAUM(q string) Strategy {
	if !strings.Contains(q, "aum") || !containsAny(q, aumSignals...) {
		return nil
	}
	m := aumPattern.FindStringSubmatch(q)
	if m == nil {
		return nil
	}
	min, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return nil
	}
	return AUMThresholdStrategy{Min: min}
}

// matchHolding scans the catalog for a stock whose name or symbol appears in
// the query. No recognized stock means the row falls through.
func (c *RuleClassifier) matchHolding(q string) Strategy {
	if !strings.Contains(q, "holding") {
		return nil
	}
	stocks := c.snap.Stocks()
	for i := range stocks {
		s := &stocks[i]
		if strings.Contains(q, strings.ToLower(s.Name)) || strings.Contains(q, strings.ToLower(s.Symbol)) {
			return HoldingLookupStrategy{StockID: s.ID}
		}
	}
	return nil
}

// matchSector binds the first recognized sector keyword. Keywords are ordered
// longest-first so "technology" wins over its "tech" prefix.
func (c *RuleClassifier) matchSector(q string) Strategy {
	if !containsAny(q, "sector", "industry") {
		return nil
	}
	for _, kw := range sectorKeywords {
		if strings.Contains(q, kw) {
			return SectorLookupStrategy{Keyword: kw}
		}
	}
	return nil
}
