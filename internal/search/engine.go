package search

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/quantrail/fundlens/internal/catalog"
	lenserr "github.com/quantrail/fundlens/internal/errors"
	"github.com/quantrail/fundlens/internal/telemetry"
)

// Engine is the top-level query facade. It owns the classifier and the
// current catalog snapshot; both are swapped together on reload so a query
// never sees a classifier bound to a stale catalog.
type Engine struct {
	state     atomic.Pointer[engineState]
	estimator Estimator
	metrics   *telemetry.Metrics
	log       *slog.Logger
	cacheSize int
}

// engineState pairs a snapshot with the classifier built over it.
type engineState struct {
	snap       *catalog.Snapshot
	classifier Classifier
}

// Option configures an Engine at construction time.
type Option func(*Engine)

// WithEstimator overrides the estimator used for synthesized dividend-yield
// and expense-ratio figures. The default is the deterministic hash estimator.
func WithEstimator(e Estimator) Option {
	return func(eng *Engine) { eng.estimator = e }
}

// WithMetrics attaches a telemetry sink. Nil disables recording.
func WithMetrics(m *telemetry.Metrics) Option {
	return func(eng *Engine) { eng.metrics = m }
}

// WithLogger overrides the engine's logger.
func WithLogger(l *slog.Logger) Option {
	return func(eng *Engine) { eng.log = l }
}

// WithClassifierCacheSize sets the intent cache capacity.
func WithClassifierCacheSize(n int) Option {
	return func(eng *Engine) { eng.cacheSize = n }
}

// New builds an engine over snap. snap must be non-nil.
func New(snap *catalog.Snapshot, opts ...Option) (*Engine, error) {
	if snap == nil {
		return nil, lenserr.InternalError("engine requires a catalog snapshot", nil)
	}
	eng := &Engine{
		estimator: HashEstimator{},
		log:       slog.Default(),
	}
	for _, opt := range opts {
		opt(eng)
	}
	if err := eng.Reload(snap); err != nil {
		return nil, err
	}
	return eng, nil
}

// Reload swaps in a new catalog snapshot. The classifier is rebuilt so
// holding and sector rules bind against the new data. In-flight queries keep
// the state they started with.
func (e *Engine) Reload(snap *catalog.Snapshot) error {
	classifier, err := NewRuleClassifier(snap, e.estimator, e.cacheSize)
	if err != nil {
		return lenserr.InternalError("building classifier", err)
	}
	e.state.Store(&engineState{snap: snap, classifier: classifier})
	return nil
}

// Snapshot returns the catalog the engine is currently serving.
func (e *Engine) Snapshot() *catalog.Snapshot {
	return e.state.Load().snap
}

// ProcessQuery answers one free-text query. Whitespace-only queries are
// rejected; a query that matches nothing still succeeds and returns the
// no-results sentinel as its single row.
func (e *Engine) ProcessQuery(ctx context.Context, query string) ([]*SearchResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	trimmed := normalizeQuery(query)
	if trimmed == "" {
		return nil, lenserr.QueryError("query must not be empty", nil)
	}

	start := time.Now()
	st := e.state.Load()
	strategy := st.classifier.Classify(query)
	results := Rank(strategy.Search(st.snap, trimmed), query)
	elapsed := time.Since(start)

	zeroResults := len(results) == 1 && results[0].IsNoResult()
	if e.metrics != nil {
		e.metrics.Record(string(strategy.Intent()), elapsed, len(results), zeroResults, query)
	}
	e.log.Debug("query processed",
		"intent", strategy.Intent(),
		"results", len(results),
		"zero_results", zeroResults,
		"duration_ms", elapsed.Milliseconds(),
	)
	return results, nil
}
