package catalog

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// SQLite Round-Trip Tests
// =============================================================================

func TestSQLiteRoundTrip(t *testing.T) {
	source, err := Parse([]byte(sampleCatalogYAML))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "catalog.db")
	require.NoError(t, ExportSQLite(source, path))

	loaded, err := LoadSQLite(path)
	require.NoError(t, err)
	assert.Equal(t, source.Stats(), loaded.Stats())

	f := loaded.FundByID("f1")
	require.NotNil(t, f)
	assert.Equal(t, "Alpha Tax Saver", f.Name)
	assert.Equal(t, "HDFC Mutual Fund", f.FundHouse)
	assert.Equal(t, "ELSS", f.SubCategory)
	assert.True(t, f.IsTaxSaving)
	require.NotNil(t, f.AUM)
	assert.Equal(t, 2200.0, *f.AUM)

	require.NotNil(t, f.Returns)
	require.NotNil(t, f.Returns.OneYear)
	assert.Equal(t, 14.2, *f.Returns.OneYear)
	require.NotNil(t, f.Returns.ThreeYear)
	assert.Equal(t, 16.8, *f.Returns.ThreeYear)
	assert.Nil(t, f.Returns.FiveYear)

	st := loaded.StockByID("s1")
	require.NotNil(t, st)
	assert.Equal(t, "HDFCBANK", st.Symbol)
	assert.Equal(t, "Banking", st.Industry)
	assert.Nil(t, st.MarketCap)

	holdings := loaded.HoldingsForStock("s1")
	require.Len(t, holdings, 1)
	assert.Equal(t, "f1", holdings[0].FundID)
	assert.Equal(t, 8.5, holdings[0].Percentage)
}

func TestExportSQLiteReplacesExistingRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.db")

	first, err := Parse([]byte(sampleCatalogYAML))
	require.NoError(t, err)
	require.NoError(t, ExportSQLite(first, path))

	second, err := NewSnapshot(
		[]Fund{{ID: "f9", Name: "Replacement Fund", FundHouse: "UTI Mutual Fund", Category: "Debt"}},
		nil, nil)
	require.NoError(t, err)
	require.NoError(t, ExportSQLite(second, path))

	loaded, err := LoadSQLite(path)
	require.NoError(t, err)
	assert.Equal(t, Stats{Funds: 1}, loaded.Stats())
	assert.Nil(t, loaded.FundByID("f1"))
	require.NotNil(t, loaded.FundByID("f9"))
	assert.Nil(t, loaded.FundByID("f9").Returns)
}

func TestLoadSQLiteMissingFile(t *testing.T) {
	_, err := LoadSQLite(filepath.Join(t.TempDir(), "absent.db"))
	assert.Error(t, err)
}
