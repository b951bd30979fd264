package search

import (
	"hash/fnv"
	"math/rand"
	"strings"
	"sync"

	"github.com/quantrail/fundlens/internal/catalog"
)

// Synthesized-figure ranges. Dividend yields and expense ratios are not part
// of the catalog, so the engine estimates them; index funds draw from the
// cheaper expense band.
const (
	dividendYieldMin = 1.0
	dividendYieldMax = 6.0

	indexExpenseMin  = 0.1
	indexExpenseMax  = 0.6
	activeExpenseMin = 0.5
	activeExpenseMax = 2.0
)

// Estimator supplies the synthesized dividend-yield and expense-ratio figures
// used by the dividend and low-expense strategies. The seam exists so the
// engine stays reproducible: the default estimator is deterministic, and tests
// can fix it entirely.
type Estimator interface {
	// DividendYield estimates a stock's dividend yield in percent, in [1,6].
	DividendYield(s *catalog.Stock) float64

	// ExpenseRatio estimates a fund's expense ratio in percent: index funds
	// in [0.1,0.6], actively managed funds in [0.5,2.0].
	ExpenseRatio(f *catalog.Fund) float64
}

// isIndexFund reports whether a fund sits in the index category band.
func isIndexFund(f *catalog.Fund) bool {
	return strings.Contains(strings.ToLower(f.Category), "index") ||
		strings.Contains(strings.ToLower(f.SubCategory), "index")
}

// HashEstimator derives figures from an FNV-1a hash of the entity id: stable
// across runs and processes, uniform over the target range. This is the
// default estimator, keeping query output idempotent.
type HashEstimator struct{}

// DividendYield implements Estimator.
func (HashEstimator) DividendYield(s *catalog.Stock) float64 {
	return scaleHash(s.ID, dividendYieldMin, dividendYieldMax)
}

// ExpenseRatio implements Estimator.
func (HashEstimator) ExpenseRatio(f *catalog.Fund) float64 {
	if isIndexFund(f) {
		return scaleHash(f.ID, indexExpenseMin, indexExpenseMax)
	}
	return scaleHash(f.ID, activeExpenseMin, activeExpenseMax)
}

// scaleHash maps the FNV-1a hash of key uniformly into [lo, hi).
func scaleHash(key string, lo, hi float64) float64 {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	frac := float64(h.Sum32()%10000) / 10000
	return lo + frac*(hi-lo)
}

// RandomEstimator draws figures from a seeded source, preserving the
// randomized demo flavor of the original system behind an explicit seed.
// Safe for concurrent use.
type RandomEstimator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandomEstimator creates a RandomEstimator with the given seed.
func NewRandomEstimator(seed int64) *RandomEstimator {
	return &RandomEstimator{rng: rand.New(rand.NewSource(seed))}
}

// DividendYield implements Estimator.
func (r *RandomEstimator) DividendYield(*catalog.Stock) float64 {
	return r.draw(dividendYieldMin, dividendYieldMax)
}

// ExpenseRatio implements Estimator.
func (r *RandomEstimator) ExpenseRatio(f *catalog.Fund) float64 {
	if isIndexFund(f) {
		return r.draw(indexExpenseMin, indexExpenseMax)
	}
	return r.draw(activeExpenseMin, activeExpenseMax)
}

func (r *RandomEstimator) draw(lo, hi float64) float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return lo + r.rng.Float64()*(hi-lo)
}
