package mcp

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log/slog"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/quantrail/fundlens/internal/search"
	"github.com/quantrail/fundlens/internal/telemetry"
	"github.com/quantrail/fundlens/pkg/version"
)

const (
	defaultLimit = 10
	maxLimit     = 50
)

// Server is the MCP server for FundLens. It bridges AI clients with the
// query engine over stdio.
type Server struct {
	mcp     *mcp.Server
	engine  *search.Engine
	metrics *telemetry.Metrics
	logger  *slog.Logger
}

// SearchInput defines the input schema for the search_catalog tool.
type SearchInput struct {
	Query string `json:"query" jsonschema:"the natural-language query to execute"`
	Limit int    `json:"limit,omitempty" jsonschema:"maximum number of results, default 10"`
}

// SearchOutput defines the output schema for the search_catalog tool.
type SearchOutput struct {
	Results []*search.SearchResult `json:"results" jsonschema:"ranked search results with explanations"`
}

// StatusInput is the (empty) input schema for the catalog_status tool.
type StatusInput struct{}

// StatusOutput defines the output schema for the catalog_status tool.
type StatusOutput struct {
	Funds    int    `json:"funds" jsonschema:"number of funds in the catalog"`
	Stocks   int    `json:"stocks" jsonschema:"number of stocks in the catalog"`
	Holdings int    `json:"holdings" jsonschema:"number of holding relationships"`
	Version  string `json:"version" jsonschema:"server version"`
}

// StatsInput is the (empty) input schema for the query_stats tool.
type StatsInput struct{}

// NewServer creates a new MCP server around an engine. metrics may be nil.
func NewServer(engine *search.Engine, metrics *telemetry.Metrics) (*Server, error) {
	if engine == nil {
		return nil, fmt.Errorf("search engine is required")
	}

	s := &Server{
		engine:  engine,
		metrics: metrics,
		logger:  slog.Default(),
	}
	s.mcp = mcp.NewServer(
		&mcp.Implementation{
			Name:    "FundLens",
			Version: version.Version,
		},
		nil,
	)
	s.registerTools()
	return s, nil
}

func (s *Server) registerTools() {
	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "search_catalog",
		Description: "Search mutual funds and stocks with a natural-language query. Understands intents like tax saving, high returns, AUM thresholds, sector exposure, fund holdings, and fund-house comparison. Every result carries an explanation of why it matched.",
	}, s.handleSearch)

	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "catalog_status",
		Description: "Report how many funds, stocks, and holding relationships the catalog currently contains.",
	}, s.handleStatus)

	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "query_stats",
		Description: "Report query telemetry: totals, per-intent counts, latency, and recent queries that found nothing.",
	}, s.handleStats)

	s.logger.Debug("MCP tools registered", slog.Int("count", 3))
}

func (s *Server) handleSearch(ctx context.Context, _ *mcp.CallToolRequest, input SearchInput) (
	*mcp.CallToolResult,
	SearchOutput,
	error,
) {
	if input.Query == "" {
		return nil, SearchOutput{}, NewInvalidParamsError("query parameter is required")
	}
	limit := clampLimit(input.Limit)

	start := time.Now()
	requestID := generateRequestID()
	s.logger.Info("search_catalog started",
		slog.String("request_id", requestID),
		slog.String("query", input.Query),
		slog.Int("limit", limit))

	results, err := s.engine.ProcessQuery(ctx, input.Query)
	if err != nil {
		s.logger.Error("search_catalog failed",
			slog.String("request_id", requestID),
			slog.String("error", err.Error()))
		return nil, SearchOutput{}, MapError(err)
	}
	if len(results) > limit {
		results = results[:limit]
	}

	s.logger.Info("search_catalog completed",
		slog.String("request_id", requestID),
		slog.Duration("duration", time.Since(start)),
		slog.Int("result_count", len(results)))

	return nil, SearchOutput{Results: results}, nil
}

func (s *Server) handleStatus(_ context.Context, _ *mcp.CallToolRequest, _ StatusInput) (
	*mcp.CallToolResult,
	StatusOutput,
	error,
) {
	stats := s.engine.Snapshot().Stats()
	return nil, StatusOutput{
		Funds:    stats.Funds,
		Stocks:   stats.Stocks,
		Holdings: stats.Holdings,
		Version:  version.Version,
	}, nil
}

func (s *Server) handleStats(_ context.Context, _ *mcp.CallToolRequest, _ StatsInput) (
	*mcp.CallToolResult,
	telemetry.Report,
	error,
) {
	if s.metrics == nil {
		return nil, telemetry.Report{}, nil
	}
	return nil, s.metrics.Snapshot(), nil
}

// Serve runs the server on stdio until ctx is cancelled.
func (s *Server) Serve(ctx context.Context) error {
	s.logger.Info("Starting MCP server", slog.String("transport", "stdio"))
	err := s.mcp.Run(ctx, &mcp.StdioTransport{})
	if err != nil && err != context.Canceled {
		s.logger.Error("MCP server stopped with error", slog.String("error", err.Error()))
		return err
	}
	s.logger.Info("MCP server stopped gracefully")
	return nil
}

func clampLimit(n int) int {
	switch {
	case n <= 0:
		return defaultLimit
	case n > maxLimit:
		return maxLimit
	default:
		return n
	}
}

// generateRequestID creates a short unique request ID for log correlation.
func generateRequestID() string {
	b := make([]byte, 4)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}
