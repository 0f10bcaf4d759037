package assets

import (
	"testing"

	"github.com/stormfell/bombrush/spots"
)

func TestLoadCatalog(t *testing.T) {
	c, err := LoadCatalog()
	if err != nil {
		t.Fatalf("LoadCatalog: %v", err)
	}
	if len(c.Themes) == 0 {
		t.Fatal("catalog has no themes")
	}

	seen := map[spots.LevelType]bool{}
	for _, th := range c.Themes {
		if th.Type == spots.LevelTypeNone {
			t.Errorf("theme %q uses the reserved zero level type", th.Name)
		}
		if seen[th.Type] {
			t.Errorf("duplicate level type %d in catalog", th.Type)
		}
		seen[th.Type] = true

		if th.Name == "" {
			t.Errorf("theme with level type %d has no name", th.Type)
		}
		if th.Backdrop == "" {
			t.Errorf("theme %q has no backdrop path", th.Name)
		}
	}
}
