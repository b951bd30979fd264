package cmd

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/quantrail/fundlens/internal/catalog"
	"github.com/quantrail/fundlens/internal/config"
	"github.com/quantrail/fundlens/internal/search"
	"github.com/quantrail/fundlens/internal/telemetry"
)

// loadSnapshot loads the catalog named by cfg, routing on the configured
// format. A .db or .sqlite extension implies the sqlite format regardless of
// config, so --catalog works without extra flags.
func loadSnapshot(cfg *config.Config) (*catalog.Snapshot, error) {
	path := cfg.Catalog.Path
	if cfg.Catalog.Format == "sqlite" || isSQLitePath(path) {
		return catalog.LoadSQLite(path)
	}
	return catalog.Load(path)
}

func isSQLitePath(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite", ".sqlite3":
		return true
	}
	return false
}

// buildEngine assembles the query engine from configuration.
func buildEngine(cfg *config.Config) (*search.Engine, *telemetry.Metrics, error) {
	snap, err := loadSnapshot(cfg)
	if err != nil {
		return nil, nil, err
	}

	var estimator search.Estimator = search.HashEstimator{}
	if cfg.Estimates.Mode == "random" {
		seed := cfg.Estimates.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		estimator = search.NewRandomEstimator(seed)
	}

	metrics := telemetry.NewMetrics()
	engine, err := search.New(snap,
		search.WithEstimator(estimator),
		search.WithMetrics(metrics),
		search.WithClassifierCacheSize(cfg.Search.ClassifierCacheSize),
	)
	if err != nil {
		return nil, nil, err
	}
	return engine, metrics, nil
}
