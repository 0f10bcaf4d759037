package spots

// ThemeInfo describes one selectable level theme of the main menu.
type ThemeInfo struct {
	Type     LevelType `json:"type"`
	Name     string    `json:"name"`
	Backdrop string    `json:"backdrop"`
	Music    string    `json:"music"`
}

// Catalog is the ordered list of themes the menu can cycle through. It is
// decoded from an embedded asset once per session and attached to the
// registry so teardown drops it in one place.
type Catalog struct {
	Themes []ThemeInfo `json:"themes"`
}

// ThemeByType returns the theme with the given level type.
func (c *Catalog) ThemeByType(lt LevelType) (ThemeInfo, bool) {
	if c == nil {
		return ThemeInfo{}, false
	}
	for _, th := range c.Themes {
		if th.Type == lt {
			return th, true
		}
	}
	return ThemeInfo{}, false
}

// Shift returns the theme a number of steps away from lt in catalog order,
// wrapping around. An unknown lt resolves to the first theme, which is the
// reconciliation anchor theme switching relies on.
func (c *Catalog) Shift(lt LevelType, step int) (ThemeInfo, bool) {
	if c == nil || len(c.Themes) == 0 {
		return ThemeInfo{}, false
	}
	pos := -1
	for i, th := range c.Themes {
		if th.Type == lt {
			pos = i
			break
		}
	}
	if pos < 0 {
		return c.Themes[0], true
	}
	n := len(c.Themes)
	return c.Themes[((pos+step)%n+n)%n], true
}
