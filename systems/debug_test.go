package systems

import (
	"strings"
	"testing"

	"github.com/stormfell/bombrush/spots"
)

type reportSpot struct {
	lt  spots.LevelType
	row int
}

func (s reportSpot) LevelType() spots.LevelType { return s.lt }
func (s reportSpot) RowIndex() int              { return s.row }
func (s reportSpot) EnterIdle()                 {}
func (s reportSpot) StopPresentation()          {}

func TestBuildSpotReport(t *testing.T) {
	reg := spots.NewRegistry()
	reg.Add(reportSpot{lt: 1, row: 2})
	reg.Add(reportSpot{lt: 1, row: 0})
	reg.Add(reportSpot{lt: 1, row: 1})
	reg.Add(reportSpot{lt: 2, row: 0})
	reg.SetActiveRow(1)

	got := BuildSpotReport(reg, 1)

	want := "bombrush menu spot report\n" +
		"theme=1 active_row=1 registered=4\n" +
		"  pos=0 row=0\n" +
		"* pos=1 row=1\n" +
		"  pos=2 row=2\n"
	if got != want {
		t.Errorf("report mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestBuildSpotReportEmptyTheme(t *testing.T) {
	reg := spots.NewRegistry()
	reg.Add(reportSpot{lt: 1, row: 0})

	got := BuildSpotReport(reg, 7)
	if !strings.Contains(got, "theme=7 active_row=0 registered=1") {
		t.Errorf("unexpected header in report:\n%s", got)
	}
	if strings.Contains(got, "pos=") {
		t.Errorf("report lists spots for a theme that has none:\n%s", got)
	}
}
