package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantrail/fundlens/internal/catalog"
	"github.com/quantrail/fundlens/internal/search"
)

func fp(v float64) *float64 { return &v }

func sampleResult() *search.SearchResult {
	return &search.SearchResult{
		ID:   "f1",
		Name: "Alpha Tax Saver",
		Type: search.TypeMutualFund,
		Metadata: search.Metadata{
			FundHouse: "HDFC Mutual Fund",
			Category:  "Equity",
			Returns:   &catalog.Returns{ThreeYear: fp(16.8)},
			AUM:       fp(2200),
			TaxSaving: true,
		},
		MatchScore:  0.9,
		Explanation: "Matched as this is a tax-saving ELSS fund",
	}
}

// =============================================================================
// JSON Rendering Tests
// =============================================================================

func TestRenderJSON(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf, true)

	require.NoError(t, r.RenderJSON([]*search.SearchResult{sampleResult()}))

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 1)
	assert.Equal(t, "f1", decoded[0]["id"])
	assert.Equal(t, "mutual_fund", decoded[0]["type"])
	assert.Equal(t, 0.9, decoded[0]["matchScore"])

	// Sparse metadata: absent fields are omitted entirely.
	meta, ok := decoded[0]["metadata"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, meta, "fundHouse")
	assert.NotContains(t, meta, "symbol")
	assert.NotContains(t, meta, "dividendYield")
}

// =============================================================================
// Pretty Rendering Tests
// =============================================================================

func TestRenderPretty(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf, true)

	r.RenderPretty([]*search.SearchResult{sampleResult()})

	out := buf.String()
	assert.Contains(t, out, "1. Alpha Tax Saver")
	assert.Contains(t, out, "FUND")
	assert.Contains(t, out, "score 0.90")
	assert.Contains(t, out, "Matched as this is a tax-saving ELSS fund")
	assert.Contains(t, out, "HDFC Mutual Fund")
	assert.Contains(t, out, "3y 16.8%")
	assert.Contains(t, out, "AUM ₹2200 cr")
	assert.Contains(t, out, "tax saving")
}

func TestRenderPrettySentinel(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf, true)

	r.RenderPretty([]*search.SearchResult{search.NoResult("gold bonds")})

	out := buf.String()
	assert.Contains(t, out, `We couldn't find any securities matching "gold bonds".`)
	assert.NotContains(t, out, "score")
}

func TestRenderPrettyStock(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf, true)

	r.RenderPretty([]*search.SearchResult{{
		ID:   "s1",
		Name: "HDFC Bank",
		Type: search.TypeStock,
		Metadata: search.Metadata{
			Symbol:        "HDFCBANK",
			Sector:        "Financial Services",
			DividendYield: fp(3.2),
		},
		MatchScore:  0.85,
		Explanation: "Financial Services sector stock with an estimated 3.2% dividend yield",
	}})

	out := buf.String()
	assert.Contains(t, out, "STOCK")
	assert.Contains(t, out, "HDFCBANK")
	assert.Contains(t, out, "yield 3.2%")
}

// =============================================================================
// Metadata Flattening Tests
// =============================================================================

func TestMetadataLines(t *testing.T) {
	assert.Empty(t, metadataLines(&search.Metadata{}))

	lines := metadataLines(&search.Metadata{
		FundHouse: "SBI Mutual Fund",
		Category:  "Equity",
		Holding:   &search.HoldingDetail{Stock: "HDFC Bank", Percentage: 8.5},
	})
	assert.Equal(t, []string{"SBI Mutual Fund", "Equity", "holds 8.5% HDFC Bank"}, lines)

	lines = metadataLines(&search.Metadata{
		Exposure: &search.SectorExposure{Stock: "TCS", Sector: "Technology", Percentage: 12},
	})
	assert.Equal(t, []string{"12% Technology via TCS"}, lines)
}

func TestSummaryAndErrorf(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf, true)

	r.Summary("%d results in %dms", 3, 12)
	r.Errorf("catalog missing: %s", "cat.yaml")

	assert.Contains(t, buf.String(), "3 results in 12ms")
	assert.Contains(t, buf.String(), "catalog missing: cat.yaml")
}
