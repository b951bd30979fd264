package catalog

import (
	"fmt"

	"github.com/quantrail/fundlens/internal/errors"
)

// Snapshot is a validated, immutable view of the catalog plus the derived
// lookup indices the engine needs. Concurrent readers need no locking; a
// hot reload publishes a whole new Snapshot instead of mutating this one.
type Snapshot struct {
	funds    []Fund
	stocks   []Stock
	holdings []Holding

	fundsByID       map[string]*Fund
	stocksByID      map[string]*Stock
	holdingsByStock map[string][]Holding
}

// NewSnapshot validates the three record sets and builds the derived indices.
// Any inconsistency is a construction-time failure: the engine must never be
// handed a partially loaded catalog.
func NewSnapshot(funds []Fund, stocks []Stock, holdings []Holding) (*Snapshot, error) {
	s := &Snapshot{
		funds:           funds,
		stocks:          stocks,
		holdings:        holdings,
		fundsByID:       make(map[string]*Fund, len(funds)),
		stocksByID:      make(map[string]*Stock, len(stocks)),
		holdingsByStock: make(map[string][]Holding, len(stocks)),
	}

	seenSymbols := make(map[string]string, len(stocks))

	for i := range s.funds {
		f := &s.funds[i]
		if f.ID == "" || f.Name == "" {
			return nil, errors.CatalogError(fmt.Sprintf("fund #%d missing id or name", i), nil)
		}
		if _, dup := s.fundsByID[f.ID]; dup {
			return nil, errors.CatalogError(fmt.Sprintf("duplicate fund id %q", f.ID), nil)
		}
		if f.AUM != nil && *f.AUM < 0 {
			return nil, errors.CatalogError(fmt.Sprintf("fund %q has negative AUM", f.ID), nil)
		}
		s.fundsByID[f.ID] = f
	}

	for i := range s.stocks {
		st := &s.stocks[i]
		if st.ID == "" || st.Name == "" || st.Symbol == "" {
			return nil, errors.CatalogError(fmt.Sprintf("stock #%d missing id, name or symbol", i), nil)
		}
		if _, dup := s.stocksByID[st.ID]; dup {
			return nil, errors.CatalogError(fmt.Sprintf("duplicate stock id %q", st.ID), nil)
		}
		if prev, dup := seenSymbols[st.Symbol]; dup {
			return nil, errors.CatalogError(
				fmt.Sprintf("stocks %q and %q share symbol %q", prev, st.ID, st.Symbol), nil)
		}
		if st.MarketCap != nil && *st.MarketCap < 0 {
			return nil, errors.CatalogError(fmt.Sprintf("stock %q has negative market cap", st.ID), nil)
		}
		seenSymbols[st.Symbol] = st.ID
		s.stocksByID[st.ID] = st
	}

	for i, h := range s.holdings {
		if _, ok := s.fundsByID[h.FundID]; !ok {
			return nil, errors.CatalogError(
				fmt.Sprintf("holding #%d references unknown fund %q", i, h.FundID), nil)
		}
		if _, ok := s.stocksByID[h.StockID]; !ok {
			return nil, errors.CatalogError(
				fmt.Sprintf("holding #%d references unknown stock %q", i, h.StockID), nil)
		}
		if h.Percentage < 0 || h.Percentage > 100 {
			return nil, errors.CatalogError(
				fmt.Sprintf("holding #%d has percentage %.2f outside [0,100]", i, h.Percentage), nil)
		}
		s.holdingsByStock[h.StockID] = append(s.holdingsByStock[h.StockID], s.holdings[i])
	}

	return s, nil
}

// Funds returns the funds in catalog insertion order.
// The returned slice must be treated as read-only.
func (s *Snapshot) Funds() []Fund { return s.funds }

// Stocks returns the stocks in catalog insertion order.
// The returned slice must be treated as read-only.
func (s *Snapshot) Stocks() []Stock { return s.stocks }

// Holdings returns all holding rows in catalog insertion order.
// The returned slice must be treated as read-only.
func (s *Snapshot) Holdings() []Holding { return s.holdings }

// FundByID returns the fund with the given id, or nil.
func (s *Snapshot) FundByID(id string) *Fund { return s.fundsByID[id] }

// StockByID returns the stock with the given id, or nil.
func (s *Snapshot) StockByID(id string) *Stock { return s.stocksByID[id] }

// HoldingsForStock returns every holding row for the given stock.
// Lookup is O(1) via the index built at construction time.
func (s *Snapshot) HoldingsForStock(stockID string) []Holding {
	return s.holdingsByStock[stockID]
}

// Stats summarizes the snapshot for status surfaces.
type Stats struct {
	Funds    int `json:"funds"`
	Stocks   int `json:"stocks"`
	Holdings int `json:"holdings"`
}

// Stats returns record counts for this snapshot.
func (s *Snapshot) Stats() Stats {
	return Stats{Funds: len(s.funds), Stocks: len(s.stocks), Holdings: len(s.holdings)}
}
