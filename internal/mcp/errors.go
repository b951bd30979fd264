// Package mcp implements the Model Context Protocol (MCP) server for
// FundLens, exposing catalog search to AI clients over stdio.
package mcp

import (
	"context"
	"errors"
	"fmt"

	lenserr "github.com/quantrail/fundlens/internal/errors"
)

// MCP error codes. The -326xx range follows JSON-RPC; -32001 onward are
// FundLens-specific.
const (
	ErrCodeCatalogUnavailable = -32001
	ErrCodeTimeout            = -32003

	ErrCodeMethodNotFound = -32601
	ErrCodeInvalidParams  = -32602
	ErrCodeInternalError  = -32603
)

// MCPError represents an MCP protocol error with code and message.
type MCPError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface.
func (e *MCPError) Error() string {
	return fmt.Sprintf("MCP error %d: %s", e.Code, e.Message)
}

// MapError converts internal errors to MCP errors.
func MapError(err error) *MCPError {
	if err == nil {
		return nil
	}

	var le *lenserr.LensError
	if errors.As(err, &le) {
		switch le.Category {
		case lenserr.CategoryQuery:
			return &MCPError{Code: ErrCodeInvalidParams, Message: le.Message}
		case lenserr.CategoryCatalog:
			return &MCPError{Code: ErrCodeCatalogUnavailable, Message: le.Message}
		default:
			return &MCPError{Code: ErrCodeInternalError, Message: le.Message}
		}
	}

	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return &MCPError{Code: ErrCodeTimeout, Message: "Request timed out."}
	case errors.Is(err, context.Canceled):
		return &MCPError{Code: ErrCodeTimeout, Message: "Request was canceled."}
	default:
		return &MCPError{Code: ErrCodeInternalError, Message: "Internal server error."}
	}
}

// NewInvalidParamsError creates an error for invalid parameters.
func NewInvalidParamsError(msg string) *MCPError {
	return &MCPError{Code: ErrCodeInvalidParams, Message: msg}
}

// NewMethodNotFoundError creates an error for unknown tools.
func NewMethodNotFoundError(name string) *MCPError {
	return &MCPError{Code: ErrCodeMethodNotFound, Message: fmt.Sprintf("Tool '%s' not found.", name)}
}
