package mcp

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantrail/fundlens/internal/catalog"
	"github.com/quantrail/fundlens/internal/search"
	"github.com/quantrail/fundlens/internal/telemetry"
)

func fp(v float64) *float64 { return &v }

func newTestServer(t *testing.T) (*Server, *telemetry.Metrics) {
	t.Helper()

	snap, err := catalog.NewSnapshot(
		[]catalog.Fund{
			{ID: "f1", Name: "Alpha Tax Saver", FundHouse: "HDFC Mutual Fund",
				Category: "Equity", SubCategory: "ELSS", IsTaxSaving: true, AUM: fp(2200)},
			{ID: "f2", Name: "Beta Large Cap", FundHouse: "SBI Mutual Fund",
				Category: "Equity", SubCategory: "Large Cap", AUM: fp(1500)},
		},
		[]catalog.Stock{
			{ID: "s1", Name: "HDFC Bank", Symbol: "HDFCBANK", Sector: "Financial Services"},
		},
		[]catalog.Holding{
			{FundID: "f1", StockID: "s1", Percentage: 8.5},
		},
	)
	require.NoError(t, err)

	metrics := telemetry.NewMetrics()
	engine, err := search.New(snap, search.WithMetrics(metrics))
	require.NoError(t, err)

	srv, err := NewServer(engine, metrics)
	require.NoError(t, err)
	return srv, metrics
}

// =============================================================================
// Construction Tests
// =============================================================================

func TestNewServerRequiresEngine(t *testing.T) {
	srv, err := NewServer(nil, nil)
	require.Error(t, err)
	assert.Nil(t, srv)
}

// =============================================================================
// search_catalog Tests
// =============================================================================

func TestHandleSearch(t *testing.T) {
	srv, _ := newTestServer(t)

	_, out, err := srv.handleSearch(context.Background(), nil, SearchInput{Query: "tax saving funds"})
	require.NoError(t, err)
	require.Len(t, out.Results, 1)
	assert.Equal(t, "f1", out.Results[0].ID)
	assert.NotEmpty(t, out.Results[0].Explanation)
}

func TestHandleSearchEmptyQuery(t *testing.T) {
	srv, _ := newTestServer(t)

	_, _, err := srv.handleSearch(context.Background(), nil, SearchInput{})
	require.Error(t, err)

	merr, ok := err.(*MCPError)
	require.True(t, ok)
	assert.Equal(t, ErrCodeInvalidParams, merr.Code)
}

func TestHandleSearchBlankQueryMapsEngineError(t *testing.T) {
	srv, _ := newTestServer(t)

	_, _, err := srv.handleSearch(context.Background(), nil, SearchInput{Query: "   "})
	require.Error(t, err)

	merr, ok := err.(*MCPError)
	require.True(t, ok)
	assert.Equal(t, ErrCodeInvalidParams, merr.Code)
}

func TestHandleSearchAppliesLimit(t *testing.T) {
	srv, _ := newTestServer(t)

	// "hdfc" matches both the fund house and the stock.
	_, out, err := srv.handleSearch(context.Background(), nil, SearchInput{Query: "hdfc", Limit: 1})
	require.NoError(t, err)
	assert.Len(t, out.Results, 1)
}

func TestHandleSearchSentinelForNoMatches(t *testing.T) {
	srv, _ := newTestServer(t)

	_, out, err := srv.handleSearch(context.Background(), nil, SearchInput{Query: "xyzzy"})
	require.NoError(t, err)
	require.Len(t, out.Results, 1)
	assert.True(t, out.Results[0].IsNoResult())
}

// =============================================================================
// catalog_status and query_stats Tests
// =============================================================================

func TestHandleStatus(t *testing.T) {
	srv, _ := newTestServer(t)

	_, out, err := srv.handleStatus(context.Background(), nil, StatusInput{})
	require.NoError(t, err)
	assert.Equal(t, 2, out.Funds)
	assert.Equal(t, 1, out.Stocks)
	assert.Equal(t, 1, out.Holdings)
	assert.NotEmpty(t, out.Version)
}

func TestHandleStats(t *testing.T) {
	srv, metrics := newTestServer(t)

	_, _, err := srv.handleSearch(context.Background(), nil, SearchInput{Query: "tax saving funds"})
	require.NoError(t, err)

	_, report, err := srv.handleStats(context.Background(), nil, StatsInput{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), report.TotalQueries)
	assert.Equal(t, metrics.Snapshot().TotalQueries, report.TotalQueries)
}

func TestHandleStatsWithoutMetrics(t *testing.T) {
	srv, _ := newTestServer(t)
	srv.metrics = nil

	_, report, err := srv.handleStats(context.Background(), nil, StatsInput{})
	require.NoError(t, err)
	assert.Zero(t, report.TotalQueries)
}

// =============================================================================
// Limit Clamping Tests
// =============================================================================

func TestClampLimit(t *testing.T) {
	assert.Equal(t, defaultLimit, clampLimit(0))
	assert.Equal(t, defaultLimit, clampLimit(-3))
	assert.Equal(t, 25, clampLimit(25))
	assert.Equal(t, maxLimit, clampLimit(maxLimit))
	assert.Equal(t, maxLimit, clampLimit(maxLimit+1))
}

func TestGenerateRequestID(t *testing.T) {
	a := generateRequestID()
	b := generateRequestID()
	assert.Len(t, a, 8)
	assert.NotEqual(t, a, b)
}
