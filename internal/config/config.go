// Package config loads FundLens configuration. Values are applied in order
// of increasing precedence: hardcoded defaults, the user config file
// (~/.config/fundlens/config.yaml), a project-local .fundlens.yaml, then
// FUNDLENS_* environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/quantrail/fundlens/internal/errors"
)

// Config represents the complete FundLens configuration.
type Config struct {
	Version   int             `yaml:"version" json:"version"`
	Catalog   CatalogConfig   `yaml:"catalog" json:"catalog"`
	Search    SearchConfig    `yaml:"search" json:"search"`
	Estimates EstimatesConfig `yaml:"estimates" json:"estimates"`
	Server    ServerConfig    `yaml:"server" json:"server"`
	Output    OutputConfig    `yaml:"output" json:"output"`
}

// CatalogConfig configures where the instrument catalog is loaded from.
type CatalogConfig struct {
	// Path is the catalog file. Empty loads the embedded default dataset.
	Path string `yaml:"path" json:"path"`

	// Format selects the catalog source format: "yaml" or "sqlite".
	Format string `yaml:"format" json:"format"`

	// Watch reloads the catalog when the file changes on disk.
	Watch bool `yaml:"watch" json:"watch"`

	// WatchDebounce coalesces rapid file events (e.g. "200ms").
	WatchDebounce string `yaml:"watch_debounce" json:"watch_debounce"`
}

// SearchConfig configures query processing.
type SearchConfig struct {
	// MaxResults caps the number of results returned per query.
	// 0 means unlimited.
	MaxResults int `yaml:"max_results" json:"max_results"`

	// ClassifierCacheSize is the intent cache capacity.
	ClassifierCacheSize int `yaml:"classifier_cache_size" json:"classifier_cache_size"`

	// DemoDelay artificially delays each interactive query (e.g. "500ms")
	// to mimic a remote backend in demos. Zero disables it.
	DemoDelay string `yaml:"demo_delay" json:"demo_delay"`
}

// EstimatesConfig configures synthesized dividend-yield and expense-ratio
// figures for instruments the catalog carries no real data for.
type EstimatesConfig struct {
	// Mode is "hash" (deterministic per instrument) or "random".
	Mode string `yaml:"mode" json:"mode"`

	// Seed seeds random mode. 0 seeds from the current time.
	Seed int64 `yaml:"seed" json:"seed"`
}

// ServerConfig configures the MCP server and logging.
type ServerConfig struct {
	LogLevel string `yaml:"log_level" json:"log_level"`
}

// OutputConfig configures CLI rendering.
type OutputConfig struct {
	// Format is "pretty" or "json".
	Format string `yaml:"format" json:"format"`

	// NoColor disables ANSI styling even on a TTY.
	NoColor bool `yaml:"no_color" json:"no_color"`
}

// NewConfig creates a Config with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Version: 1,
		Catalog: CatalogConfig{
			Format:        "yaml",
			WatchDebounce: "200ms",
		},
		Search: SearchConfig{
			MaxResults:          20,
			ClassifierCacheSize: 256,
			DemoDelay:           "0s",
		},
		Estimates: EstimatesConfig{
			Mode: "hash",
		},
		Server: ServerConfig{
			LogLevel: "info",
		},
		Output: OutputConfig{
			Format: "pretty",
		},
	}
}

// GetUserConfigPath returns the path to the user configuration file,
// following the XDG Base Directory convention.
func GetUserConfigPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "fundlens", "config.yaml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), ".config", "fundlens", "config.yaml")
	}
	return filepath.Join(home, ".config", "fundlens", "config.yaml")
}

// Load loads configuration, layering the user config file, a project-local
// .fundlens.yaml under dir, and environment overrides over the defaults.
func Load(dir string) (*Config, error) {
	cfg := NewConfig()

	if path := GetUserConfigPath(); fileExists(path) {
		if err := cfg.loadYAML(path); err != nil {
			return nil, err
		}
	}
	for _, name := range []string{".fundlens.yaml", ".fundlens.yml"} {
		path := filepath.Join(dir, name)
		if fileExists(path) {
			if err := cfg.loadYAML(path); err != nil {
				return nil, err
			}
			break
		}
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) loadYAML(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.ConfigError(fmt.Sprintf("read config file %s", path), err)
	}
	var parsed Config
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return errors.ConfigError(fmt.Sprintf("parse config file %s", path), err)
	}
	c.mergeWith(&parsed)
	return nil
}

// mergeWith overlays non-zero values from other onto c. Zero values keep the
// lower-precedence setting, so a sparse config file only overrides what it
// names.
func (c *Config) mergeWith(other *Config) {
	if other.Version != 0 {
		c.Version = other.Version
	}
	if other.Catalog.Path != "" {
		c.Catalog.Path = other.Catalog.Path
	}
	if other.Catalog.Format != "" {
		c.Catalog.Format = other.Catalog.Format
	}
	if other.Catalog.Watch {
		c.Catalog.Watch = true
	}
	if other.Catalog.WatchDebounce != "" {
		c.Catalog.WatchDebounce = other.Catalog.WatchDebounce
	}
	if other.Search.MaxResults != 0 {
		c.Search.MaxResults = other.Search.MaxResults
	}
	if other.Search.ClassifierCacheSize != 0 {
		c.Search.ClassifierCacheSize = other.Search.ClassifierCacheSize
	}
	if other.Search.DemoDelay != "" {
		c.Search.DemoDelay = other.Search.DemoDelay
	}
	if other.Estimates.Mode != "" {
		c.Estimates.Mode = other.Estimates.Mode
	}
	if other.Estimates.Seed != 0 {
		c.Estimates.Seed = other.Estimates.Seed
	}
	if other.Server.LogLevel != "" {
		c.Server.LogLevel = other.Server.LogLevel
	}
	if other.Output.Format != "" {
		c.Output.Format = other.Output.Format
	}
	if other.Output.NoColor {
		c.Output.NoColor = true
	}
}

// applyEnvOverrides applies FUNDLENS_* environment variables, the highest
// precedence layer.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("FUNDLENS_CATALOG"); v != "" {
		c.Catalog.Path = v
	}
	if v := os.Getenv("FUNDLENS_CATALOG_FORMAT"); v != "" {
		c.Catalog.Format = v
	}
	if v := os.Getenv("FUNDLENS_WATCH"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Catalog.Watch = b
		}
	}
	if v := os.Getenv("FUNDLENS_MAX_RESULTS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Search.MaxResults = n
		}
	}
	if v := os.Getenv("FUNDLENS_DEMO_DELAY"); v != "" {
		c.Search.DemoDelay = v
	}
	if v := os.Getenv("FUNDLENS_ESTIMATES_MODE"); v != "" {
		c.Estimates.Mode = v
	}
	if v := os.Getenv("FUNDLENS_ESTIMATES_SEED"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Estimates.Seed = n
		}
	}
	if v := os.Getenv("FUNDLENS_LOG_LEVEL"); v != "" {
		c.Server.LogLevel = v
	}
	if v := os.Getenv("FUNDLENS_FORMAT"); v != "" {
		c.Output.Format = v
	}
	if v := os.Getenv("FUNDLENS_NO_COLOR"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Output.NoColor = b
		}
	}
}

// Validate checks the final configuration for contradictions.
func (c *Config) Validate() error {
	switch c.Catalog.Format {
	case "yaml", "sqlite":
	default:
		return errors.ConfigError(
			fmt.Sprintf("catalog.format must be yaml or sqlite, got %q", c.Catalog.Format), nil)
	}
	if c.Catalog.Format == "sqlite" && c.Catalog.Path == "" {
		return errors.ConfigError("catalog.format sqlite requires catalog.path", nil)
	}
	if c.Catalog.Watch && c.Catalog.Path == "" {
		return errors.ConfigError("catalog.watch requires catalog.path", nil)
	}
	switch c.Estimates.Mode {
	case "hash", "random":
	default:
		return errors.ConfigError(
			fmt.Sprintf("estimates.mode must be hash or random, got %q", c.Estimates.Mode), nil)
	}
	switch c.Output.Format {
	case "pretty", "json":
	default:
		return errors.ConfigError(
			fmt.Sprintf("output.format must be pretty or json, got %q", c.Output.Format), nil)
	}
	if c.Search.MaxResults < 0 {
		return errors.ConfigError("search.max_results must be >= 0", nil)
	}
	if _, err := c.DemoDelay(); err != nil {
		return errors.ConfigError("search.demo_delay is not a valid duration", err)
	}
	if _, err := c.WatchDebounce(); err != nil {
		return errors.ConfigError("catalog.watch_debounce is not a valid duration", err)
	}
	return nil
}

// DemoDelay parses the configured demo delay.
func (c *Config) DemoDelay() (time.Duration, error) {
	if c.Search.DemoDelay == "" {
		return 0, nil
	}
	return time.ParseDuration(c.Search.DemoDelay)
}

// WatchDebounce parses the configured watch debounce window.
func (c *Config) WatchDebounce() (time.Duration, error) {
	if c.Catalog.WatchDebounce == "" {
		return 0, nil
	}
	return time.ParseDuration(c.Catalog.WatchDebounce)
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
