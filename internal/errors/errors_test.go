package errors

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// Construction Tests
// =============================================================================

func TestNewDerivesCategoryAndSeverity(t *testing.T) {
	tests := []struct {
		name     string
		code     string
		category Category
		severity Severity
	}{
		{"config", ErrCodeConfigInvalid, CategoryConfig, SeverityFatal},
		{"config not found", ErrCodeConfigNotFound, CategoryConfig, SeverityFatal},
		{"catalog load", ErrCodeCatalogLoad, CategoryCatalog, SeverityFatal},
		{"catalog invalid", ErrCodeCatalogInvalid, CategoryCatalog, SeverityFatal},
		{"query", ErrCodeQueryEmpty, CategoryQuery, SeverityError},
		{"internal", ErrCodeInternal, CategoryInternal, SeverityError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New(tt.code, "boom", nil)
			assert.Equal(t, tt.category, err.Category)
			assert.Equal(t, tt.severity, err.Severity)
		})
	}
}

func TestErrorFormatting(t *testing.T) {
	err := New(ErrCodeQueryEmpty, "query must not be empty", nil)
	assert.Equal(t, "[ERR_301_QUERY_EMPTY] query must not be empty", err.Error())
}

func TestWrap(t *testing.T) {
	cause := stderrors.New("disk on fire")
	err := Wrap(ErrCodeCatalogLoad, cause)

	require.NotNil(t, err)
	assert.Equal(t, "disk on fire", err.Message)
	assert.ErrorIs(t, err, cause)

	assert.Nil(t, Wrap(ErrCodeCatalogLoad, nil))
}

func TestConstructorShorthands(t *testing.T) {
	assert.Equal(t, ErrCodeConfigInvalid, ConfigError("m", nil).Code)
	assert.Equal(t, ErrCodeCatalogInvalid, CatalogError("m", nil).Code)
	assert.Equal(t, ErrCodeQueryEmpty, QueryError("m", nil).Code)
	assert.Equal(t, ErrCodeInternal, InternalError("m", nil).Code)
}

// =============================================================================
// Matching and Unwrapping Tests
// =============================================================================

func TestIsMatchesByCode(t *testing.T) {
	a := QueryError("first", nil)
	b := QueryError("second", nil)
	c := InternalError("other", nil)

	assert.ErrorIs(t, a, b)
	assert.NotErrorIs(t, a, c)
}

func TestUnwrapChain(t *testing.T) {
	root := stderrors.New("root cause")
	wrapped := CatalogError("loading", root)

	assert.ErrorIs(t, wrapped, root)

	var lerr *LensError
	require.ErrorAs(t, error(wrapped), &lerr)
	assert.Equal(t, ErrCodeCatalogInvalid, lerr.Code)
}

// =============================================================================
// Detail and Severity Tests
// =============================================================================

func TestWithDetail(t *testing.T) {
	err := CatalogError("bad fund", nil).
		WithDetail("fund_id", "f1").
		WithDetail("field", "aum")

	assert.Equal(t, "f1", err.Details["fund_id"])
	assert.Equal(t, "aum", err.Details["field"])
}

func TestIsFatal(t *testing.T) {
	assert.True(t, IsFatal(CatalogError("bad", nil)))
	assert.True(t, IsFatal(ConfigError("bad", nil)))
	assert.False(t, IsFatal(QueryError("bad", nil)))
	assert.False(t, IsFatal(stderrors.New("plain")))
	assert.False(t, IsFatal(nil))
}
