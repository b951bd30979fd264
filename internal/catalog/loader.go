package catalog

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/quantrail/fundlens/internal/errors"
)

//go:embed data/catalog.yaml
var defaultCatalog []byte

// File is the on-disk YAML shape of a catalog.
type File struct {
	Funds    []Fund    `yaml:"funds"`
	Stocks   []Stock   `yaml:"stocks"`
	Holdings []Holding `yaml:"holdings"`
}

// Load reads a catalog from the given YAML file and materializes a Snapshot.
// An empty path loads the embedded default dataset.
func Load(path string) (*Snapshot, error) {
	if path == "" {
		return Parse(defaultCatalog)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.CatalogError(fmt.Sprintf("read catalog %s", path), err)
	}
	snap, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return snap, nil
}

// Parse decodes YAML catalog data and materializes a Snapshot.
func Parse(data []byte) (*Snapshot, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, errors.CatalogError("decode catalog YAML", err)
	}
	if len(f.Funds) == 0 && len(f.Stocks) == 0 {
		return nil, errors.CatalogError("catalog contains no funds or stocks", nil)
	}
	return NewSnapshot(f.Funds, f.Stocks, f.Holdings)
}
