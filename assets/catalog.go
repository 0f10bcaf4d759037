package assets

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/stormfell/bombrush/spots"
)

//go:embed catalog.json
var catalogJSON []byte

// LoadCatalog decodes the embedded theme catalog.
func LoadCatalog() (*spots.Catalog, error) {
	var c spots.Catalog
	if err := json.Unmarshal(catalogJSON, &c); err != nil {
		return nil, fmt.Errorf("decode theme catalog: %w", err)
	}
	if len(c.Themes) == 0 {
		return nil, errors.New("theme catalog is empty")
	}
	return &c, nil
}
