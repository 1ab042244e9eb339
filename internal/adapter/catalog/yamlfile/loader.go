package yamlfile

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"farmstead/internal/domain/farm"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalog []byte

// Load reads a catalog file. An empty path loads the built-in catalog.
func Load(path string) (*farm.Catalog, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return c, nil
}

func Default() (*farm.Catalog, error) {
	return Parse(defaultCatalog)
}

// Parse decodes and validates catalog YAML. Unknown keys are rejected and a
// missing max_energy falls back to farm.DefaultMaxEnergy.
func Parse(data []byte) (*farm.Catalog, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var c farm.Catalog
	if err := dec.Decode(&c); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("empty catalog: %w", farm.ErrInvalidCatalog)
		}
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	if c.MaxEnergy == 0 {
		c.MaxEnergy = farm.DefaultMaxEnergy
	}
	if c.BuyPrices == nil {
		c.BuyPrices = map[string]int{}
	}
	if c.EnergyCosts == nil {
		c.EnergyCosts = map[farm.Action]int{}
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}
