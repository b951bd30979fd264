package search

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantrail/fundlens/internal/catalog"
	lenserr "github.com/quantrail/fundlens/internal/errors"
	"github.com/quantrail/fundlens/internal/telemetry"
)

func newTestEngine(t *testing.T, opts ...Option) *Engine {
	t.Helper()
	eng, err := New(newTestSnapshot(t), opts...)
	require.NoError(t, err)
	return eng
}

// =============================================================================
// Construction Tests
// =============================================================================

func TestNewRequiresSnapshot(t *testing.T) {
	eng, err := New(nil)
	require.Error(t, err)
	assert.Nil(t, eng)

	var lerr *lenserr.LensError
	require.ErrorAs(t, err, &lerr)
	assert.Equal(t, lenserr.ErrCodeInternal, lerr.Code)
}

// =============================================================================
// ProcessQuery Tests
// =============================================================================

func TestProcessQueryEmptyRejected(t *testing.T) {
	eng := newTestEngine(t)

	for _, q := range []string{"", "   ", "\t\n"} {
		results, err := eng.ProcessQuery(context.Background(), q)
		require.Error(t, err)
		assert.Nil(t, results)

		var lerr *lenserr.LensError
		require.ErrorAs(t, err, &lerr)
		assert.Equal(t, lenserr.ErrCodeQueryEmpty, lerr.Code)
		assert.Equal(t, lenserr.CategoryQuery, lerr.Category)
	}
}

func TestProcessQueryCancelledContext(t *testing.T) {
	eng := newTestEngine(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := eng.ProcessQuery(ctx, "tax saving funds")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestProcessQueryRoutesToStrategy(t *testing.T) {
	eng := newTestEngine(t)

	results, err := eng.ProcessQuery(context.Background(), "tax saving funds")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "f1", results[0].ID)
}

func TestProcessQuerySentinelForGibberish(t *testing.T) {
	eng := newTestEngine(t)

	results, err := eng.ProcessQuery(context.Background(), "xyzzy plugh")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.True(t, results[0].IsNoResult())
	assert.Contains(t, results[0].Explanation, `"xyzzy plugh"`)
}

func TestProcessQueryIdempotent(t *testing.T) {
	eng := newTestEngine(t)

	first, err := eng.ProcessQuery(context.Background(), "dividend stocks")
	require.NoError(t, err)
	second, err := eng.ProcessQuery(context.Background(), "dividend stocks")
	require.NoError(t, err)

	require.Equal(t, resultIDs(first), resultIDs(second))
	for i := range first {
		assert.Equal(t, first[i].MatchScore, second[i].MatchScore)
	}
}

// =============================================================================
// Reload Tests
// =============================================================================

func TestReloadSwapsSnapshot(t *testing.T) {
	eng := newTestEngine(t)

	replacement, err := catalog.NewSnapshot(
		[]catalog.Fund{{ID: "g1", Name: "Omega Tax Shield", FundHouse: "Axis Mutual Fund",
			Category: "Equity", SubCategory: "ELSS", IsTaxSaving: true}},
		nil, nil)
	require.NoError(t, err)

	require.NoError(t, eng.Reload(replacement))
	assert.Same(t, replacement, eng.Snapshot())

	results, err := eng.ProcessQuery(context.Background(), "tax saving funds")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "g1", results[0].ID)
}

// =============================================================================
// Telemetry Tests
// =============================================================================

func TestProcessQueryRecordsMetrics(t *testing.T) {
	metrics := telemetry.NewMetrics()
	eng := newTestEngine(t, WithMetrics(metrics))

	_, err := eng.ProcessQuery(context.Background(), "tax saving funds")
	require.NoError(t, err)
	_, err = eng.ProcessQuery(context.Background(), "xyzzy plugh")
	require.NoError(t, err)

	report := metrics.Snapshot()
	assert.Equal(t, int64(2), report.TotalQueries)
	assert.Equal(t, int64(1), report.QueriesByIntent["tax_saving"])
	assert.Equal(t, int64(1), report.QueriesByIntent["generic"])
	assert.Equal(t, int64(1), report.ZeroResultCount)
	assert.Contains(t, report.ZeroResultSample, "xyzzy plugh")
}
