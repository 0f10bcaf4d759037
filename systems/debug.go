package systems

import (
	"fmt"
	"log"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/stormfell/bombrush/components"
	cfg "github.com/stormfell/bombrush/config"
	"github.com/stormfell/bombrush/spots"
	"github.com/yohamta/donburi/ecs"
)

// BuildSpotReport renders a plain-text diagnostic dump of the registry as
// seen from the given theme.
func BuildSpotReport(reg *spots.Registry, theme spots.LevelType) string {
	var b strings.Builder
	b.WriteString("bombrush menu spot report\n")
	fmt.Fprintf(&b, "theme=%d active_row=%d registered=%d\n", theme, reg.ActiveRow(), reg.Len())

	for i, s := range reg.SpotsByLevelType(theme) {
		marker := " "
		if s.RowIndex() == reg.ActiveRow() {
			marker = "*"
		}
		fmt.Fprintf(&b, "%s pos=%d row=%d\n", marker, i, s.RowIndex())
	}
	return b.String()
}

// NewUpdateDebug copies a spot diagnostics report to the clipboard on F3.
func NewUpdateDebug(reg *spots.Registry) ecs.System {
	return func(e *ecs.ECS) {
		input := getOrCreateInput(e)
		if !GetAction(input, cfg.ActionDebugReport).JustPressed {
			return
		}

		theme := spots.LevelTypeNone
		if entry, ok := components.Theme.First(e.World); ok {
			theme = components.Theme.Get(entry).Current
		}

		report := BuildSpotReport(reg, theme)
		if err := clipboard.WriteAll(report); err != nil {
			log.Printf("[debug] clipboard copy failed: %v", err)
			return
		}
		log.Printf("[debug] copied spot report (%d bytes)", len(report))
	}
}
