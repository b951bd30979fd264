package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// =============================================================================
// Similarity Tests
// =============================================================================

func TestSimilarity(t *testing.T) {
	tests := []struct {
		name  string
		query string
		text  string
		want  float64
	}{
		{
			name:  "whole query contained",
			query: "tax saver",
			text:  "Alpha Tax Saver",
			want:  1.0,
		},
		{
			name:  "case insensitive containment",
			query: "ALPHA TAX",
			text:  "alpha tax saver",
			want:  1.0,
		},
		{
			name:  "partial token match",
			query: "icici small cap",
			text:  "ICICI Prudential Infrastructure Fund",
			want:  1.0 / 3,
		},
		{
			name:  "token prefix counts as containment",
			query: "icici infra",
			text:  "ICICI Prudential Infrastructure Fund",
			want:  1.0,
		},
		{
			name:  "short tokens never match",
			query: "hd fc it",
			text:  "HDFC Information Technology",
			want:  0,
		},
		{
			name:  "short tokens still count in the denominator",
			query: "of alpha",
			text:  "Alpha Fund",
			want:  0.5,
		},
		{
			name:  "short tokens counted in runes not bytes",
			query: "éa alpha",
			text:  "Alpha éa Growth", // "éa" is 3 bytes but only 2 runes
			want:  0.5,
		},
		{
			name:  "no overlap",
			query: "pharma",
			text:  "Alpha Tax Saver",
			want:  0,
		},
		{
			name:  "empty query",
			query: "",
			text:  "Alpha Tax Saver",
			want:  1.0, // every string contains the empty string
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Similarity(tt.query, tt.text), 0.0001)
		})
	}
}

func TestNormalizeQuery(t *testing.T) {
	assert.Equal(t, "tax saving funds", normalizeQuery("  Tax Saving FUNDS  "))
	assert.Equal(t, "", normalizeQuery("   "))
}

// =============================================================================
// Generic Scoring Tests
// =============================================================================

func TestScoreFundWeights(t *testing.T) {
	snap := newTestSnapshot(t)
	f := snap.FundByID("f1") // Alpha Tax Saver, HDFC Mutual Fund, Equity

	// Name containment only: 1.0*0.6.
	assert.InDelta(t, 0.6, scoreFund("alpha tax saver", f), 0.0001)

	// House containment only: 1.0*0.3.
	assert.InDelta(t, 0.3, scoreFund("hdfc", f), 0.0001)

	// Category containment only: 1.0*0.1.
	assert.InDelta(t, 0.1, scoreFund("equity", f), 0.0001)
}

func TestScoreStockWeights(t *testing.T) {
	snap := newTestSnapshot(t)
	st := snap.StockByID("s1") // HDFC Bank, HDFCBANK

	// Symbol-only match: the symbol has no space, the name does.
	assert.InDelta(t, 0.3, scoreStock("hdfcbank", st), 0.0001)

	// Both tokens appear in the name and in the symbol: 0.7 + 0.3.
	assert.InDelta(t, 1.0, scoreStock("hdfc bank", st), 0.0001)
}
