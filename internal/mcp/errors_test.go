package mcp

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	lenserr "github.com/quantrail/fundlens/internal/errors"
)

// =============================================================================
// Error Mapping Tests
// =============================================================================

func TestMapError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantMsg  string
	}{
		{
			name:     "query errors map to invalid params",
			err:      lenserr.QueryError("query must not be empty", nil),
			wantCode: ErrCodeInvalidParams,
			wantMsg:  "query must not be empty",
		},
		{
			name:     "catalog errors map to catalog unavailable",
			err:      lenserr.CatalogError("catalog failed validation", nil),
			wantCode: ErrCodeCatalogUnavailable,
			wantMsg:  "catalog failed validation",
		},
		{
			name:     "internal errors map to internal error",
			err:      lenserr.InternalError("boom", nil),
			wantCode: ErrCodeInternalError,
			wantMsg:  "boom",
		},
		{
			name:     "wrapped structured errors unwrap",
			err:      fmt.Errorf("handler: %w", lenserr.QueryError("bad query", nil)),
			wantCode: ErrCodeInvalidParams,
			wantMsg:  "bad query",
		},
		{
			name:     "deadline exceeded maps to timeout",
			err:      context.DeadlineExceeded,
			wantCode: ErrCodeTimeout,
			wantMsg:  "Request timed out.",
		},
		{
			name:     "cancellation maps to timeout",
			err:      context.Canceled,
			wantCode: ErrCodeTimeout,
			wantMsg:  "Request was canceled.",
		},
		{
			name:     "plain errors map to internal error",
			err:      errors.New("something else"),
			wantCode: ErrCodeInternalError,
			wantMsg:  "Internal server error.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			merr := MapError(tt.err)
			require.NotNil(t, merr)
			assert.Equal(t, tt.wantCode, merr.Code)
			assert.Equal(t, tt.wantMsg, merr.Message)
		})
	}
}

func TestMapErrorNil(t *testing.T) {
	assert.Nil(t, MapError(nil))
}

func TestMCPErrorFormatting(t *testing.T) {
	err := NewInvalidParamsError("query parameter is required")
	assert.Equal(t, "MCP error -32602: query parameter is required", err.Error())

	nf := NewMethodNotFoundError("nuke_catalog")
	assert.Equal(t, ErrCodeMethodNotFound, nf.Code)
	assert.Contains(t, nf.Message, "nuke_catalog")
}
