package spots

import "testing"

func testCatalog() *Catalog {
	return &Catalog{Themes: []ThemeInfo{
		{Type: themeRuins, Name: "Ruins"},
		{Type: themeHarbor, Name: "Harbor"},
		{Type: themeGlacier, Name: "Glacier"},
	}}
}

func TestCatalog_ThemeByType(t *testing.T) {
	c := testCatalog()

	th, ok := c.ThemeByType(themeHarbor)
	if !ok || th.Name != "Harbor" {
		t.Fatalf("expected Harbor, got %q (ok=%v)", th.Name, ok)
	}
	if _, ok := c.ThemeByType(LevelTypeNone); ok {
		t.Fatal("LevelTypeNone should not resolve to a theme")
	}
}

func TestCatalog_ShiftWrapsBothWays(t *testing.T) {
	c := testCatalog()

	th, ok := c.Shift(themeGlacier, 1)
	if !ok || th.Type != themeRuins {
		t.Fatalf("shifting past the last theme should wrap to Ruins, got %q", th.Name)
	}
	th, ok = c.Shift(themeRuins, -1)
	if !ok || th.Type != themeGlacier {
		t.Fatalf("shifting back from the first theme should wrap to Glacier, got %q", th.Name)
	}
}

func TestCatalog_ShiftUnknownTypeAnchorsToFirst(t *testing.T) {
	c := testCatalog()

	th, ok := c.Shift(LevelTypeNone, 1)
	if !ok || th.Type != themeRuins {
		t.Fatalf("unknown type should anchor to the first theme, got %q", th.Name)
	}
}

func TestCatalog_ShiftEmpty(t *testing.T) {
	if _, ok := (&Catalog{}).Shift(themeRuins, 1); ok {
		t.Fatal("an empty catalog has nothing to shift to")
	}
	var nilCatalog *Catalog
	if _, ok := nilCatalog.Shift(themeRuins, 1); ok {
		t.Fatal("nil catalog must report not found, not panic")
	}
}
