package search

import (
	"github.com/quantrail/fundlens/internal/catalog"

	"golang.org/x/sync/errgroup"
)

// GenericStrategy is the classifier's fallback: weighted fuzzy scoring over
// every fund and stock, keeping candidates above the retention threshold.
// Funds and stocks are scored concurrently; the snapshot is immutable, so the
// two passes share it without locking. The union preserves catalog order
// (funds first, then stocks) for deterministic tie-breaking in the ranker.
type GenericStrategy struct{}

func (GenericStrategy) Intent() Intent { return IntentGeneric }

func (GenericStrategy) Search(snap *catalog.Snapshot, query string) []*SearchResult {
	var fundResults, stockResults []*SearchResult

	var g errgroup.Group
	g.Go(func() error {
		funds := snap.Funds()
		for i := range funds {
			f := &funds[i]
			if score := scoreFund(query, f); score > genericScoreThreshold {
				fundResults = append(fundResults, fundResult(f, score))
			}
		}
		return nil
	})
	g.Go(func() error {
		stocks := snap.Stocks()
		for i := range stocks {
			s := &stocks[i]
			if score := scoreStock(query, s); score > genericScoreThreshold {
				stockResults = append(stockResults, stockResult(s, score))
			}
		}
		return nil
	})
	_ = g.Wait() // Both passes are infallible.

	return append(fundResults, stockResults...)
}
