package search

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/quantrail/fundlens/internal/catalog"
)

func fp(v float64) *float64 { return &v }

func returns(threeYear float64) *catalog.Returns {
	return &catalog.Returns{ThreeYear: fp(threeYear)}
}

// newTestSnapshot builds a small catalog exercising every strategy:
// an ELSS fund, a sector fund, large and small AUM, a debt fund, a retirement
// scheme, an index fund, and stocks with holdings across them.
func newTestSnapshot(t *testing.T) *catalog.Snapshot {
	t.Helper()

	funds := []catalog.Fund{
		{ID: "f1", Name: "Alpha Tax Saver", FundHouse: "HDFC Mutual Fund",
			Category: "Equity", SubCategory: "ELSS", IsTaxSaving: true,
			AUM: fp(2200), Returns: returns(14.0)},
		{ID: "f2", Name: "Beta Technology Fund", FundHouse: "SBI Mutual Fund",
			Category: "Equity", SubCategory: "Technology",
			AUM: fp(850), Returns: returns(21.5)},
		{ID: "f3", Name: "Gamma Large Cap", FundHouse: "ICICI Prudential",
			Category: "Equity", SubCategory: "Large Cap",
			AUM: fp(1500), Returns: returns(12.1)},
		{ID: "f4", Name: "Delta Corporate Bond", FundHouse: "ICICI Prudential",
			Category: "Debt", SubCategory: "Corporate Bond",
			AUM: fp(900), Returns: returns(6.5)},
		{ID: "f5", Name: "Epsilon Retirement Benefit", FundHouse: "SBI Mutual Fund",
			Category: "Solution Oriented", SubCategory: "Retirement",
			AUM: fp(700), Returns: returns(10.0)},
		{ID: "f6", Name: "Zeta Nifty Index", FundHouse: "UTI Mutual Fund",
			Category: "Equity", SubCategory: "Index",
			AUM: fp(1100), Returns: returns(11.8)},
		{ID: "f7", Name: "Eta Small Cap", FundHouse: "Nippon India",
			Category: "Equity", SubCategory: "Small Cap",
			AUM: fp(450), Returns: returns(24.2)},
	}
	stocks := []catalog.Stock{
		{ID: "s1", Name: "HDFC Bank", Symbol: "HDFCBANK",
			Sector: "Financial Services", Industry: "Banking"},
		{ID: "s2", Name: "Tata Consultancy Services", Symbol: "TCS",
			Sector: "Technology", Industry: "IT Services"},
		{ID: "s3", Name: "Reliance Industries", Symbol: "RELIANCE",
			Sector: "Oil & Gas", Industry: "Refining"},
		{ID: "s4", Name: "Power Grid Corporation", Symbol: "POWERGRID",
			Sector: "Energy", Industry: "Utilities"},
	}
	holdings := []catalog.Holding{
		{FundID: "f1", StockID: "s1", Percentage: 8.5},
		{FundID: "f3", StockID: "s1", Percentage: 7.2},
		{FundID: "f3", StockID: "s3", Percentage: 9.0},
		{FundID: "f2", StockID: "s2", Percentage: 12.0},
		{FundID: "f4", StockID: "s4", Percentage: 5.0},
	}

	snap, err := catalog.NewSnapshot(funds, stocks, holdings)
	require.NoError(t, err)
	return snap
}

// fixedEstimator returns the same figures for every instrument, making
// strategy scores predictable in tests.
type fixedEstimator struct {
	yield float64
	ratio float64
}

func (e fixedEstimator) DividendYield(*catalog.Stock) float64 { return e.yield }
func (e fixedEstimator) ExpenseRatio(*catalog.Fund) float64   { return e.ratio }

func resultIDs(results []*SearchResult) []string {
	ids := make([]string, 0, len(results))
	for _, r := range results {
		ids = append(ids, r.ID)
	}
	return ids
}
