package spots

import (
	"errors"
	"fmt"
	"testing"
)

const (
	themeRuins   LevelType = 1
	themeHarbor  LevelType = 2
	themeGlacier LevelType = 3
)

// fakeSpot records presentation signals so tests can assert call ordering.
type fakeSpot struct {
	lt    LevelType
	row   int
	calls *[]string
}

func newFakeSpot(lt LevelType, row int, calls *[]string) *fakeSpot {
	return &fakeSpot{lt: lt, row: row, calls: calls}
}

func (s *fakeSpot) LevelType() LevelType { return s.lt }
func (s *fakeSpot) RowIndex() int        { return s.row }

func (s *fakeSpot) EnterIdle() {
	if s.calls != nil {
		*s.calls = append(*s.calls, fmt.Sprintf("idle:%d", s.row))
	}
}

func (s *fakeSpot) StopPresentation() {
	if s.calls != nil {
		*s.calls = append(*s.calls, fmt.Sprintf("stop:%d", s.row))
	}
}

// seedRegistry registers spots with rows 10, 20, 30 under themeRuins and
// returns them alongside the shared call log.
func seedRegistry(r *Registry) (s10, s20, s30 *fakeSpot, calls *[]string) {
	calls = &[]string{}
	s10 = newFakeSpot(themeRuins, 10, calls)
	s20 = newFakeSpot(themeRuins, 20, calls)
	s30 = newFakeSpot(themeRuins, 30, calls)
	r.Add(s10)
	r.Add(s20)
	r.Add(s30)
	return s10, s20, s30, calls
}

func TestRegistry_AddIsIdempotent(t *testing.T) {
	r := NewRegistry()
	s := newFakeSpot(themeRuins, 1, nil)

	r.Add(s)
	r.Add(s)

	if r.Len() != 1 {
		t.Fatalf("adding the same spot twice should keep one entry, got %d", r.Len())
	}
}

func TestRegistry_RemoveAbsentIsNoop(t *testing.T) {
	r := NewRegistry()
	kept := newFakeSpot(themeRuins, 1, nil)
	r.Add(kept)

	r.Remove(newFakeSpot(themeRuins, 2, nil))

	if r.Len() != 1 {
		t.Fatalf("removing an unknown spot should not alter the registry, got %d spots", r.Len())
	}
	r.Remove(kept)
	if r.Len() != 0 {
		t.Fatalf("removing a known spot should empty the registry, got %d spots", r.Len())
	}
}

func TestRegistry_SpotsByLevelTypeSortsByRow(t *testing.T) {
	r := NewRegistry()
	r.Add(newFakeSpot(themeRuins, 3, nil))
	r.Add(newFakeSpot(themeRuins, 1, nil))
	r.Add(newFakeSpot(themeRuins, 2, nil))
	r.Add(newFakeSpot(themeHarbor, 0, nil)) // different theme, must be filtered out

	got := r.SpotsByLevelType(themeRuins)
	want := []int{1, 2, 3}
	if len(got) != len(want) {
		t.Fatalf("expected %d spots, got %d", len(want), len(got))
	}
	for i, s := range got {
		if s.RowIndex() != want[i] {
			t.Fatalf("position %d: expected row %d, got %d", i, want[i], s.RowIndex())
		}
	}
}

func TestRegistry_SpotsByLevelTypeDedupsByRow(t *testing.T) {
	r := NewRegistry()
	r.Add(newFakeSpot(themeRuins, 5, nil))
	r.Add(newFakeSpot(themeRuins, 5, nil)) // distinct handle, same (theme, row)

	got := r.SpotsByLevelType(themeRuins)
	if len(got) != 1 {
		t.Fatalf("two handles sharing a row should collapse to one entry, got %d", len(got))
	}
}

func TestRegistry_ActiveSpot(t *testing.T) {
	r := NewRegistry()
	seedRegistry(r)

	r.SetActiveRow(20)
	s, ok := r.ActiveSpot()
	if !ok {
		t.Fatal("expected an active spot at row 20")
	}
	if s.RowIndex() != 20 {
		t.Fatalf("expected active row 20, got %d", s.RowIndex())
	}

	r.SetActiveRow(99)
	if _, ok := r.ActiveSpot(); ok {
		t.Fatal("row 99 is registered nowhere, ActiveSpot should report not found")
	}
}

func TestRegistry_MoveActiveStepsForward(t *testing.T) {
	r := NewRegistry()
	seedRegistry(r)
	r.SetActiveRow(20)

	next, err := r.MoveActiveIn(1, themeRuins)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if next.RowIndex() != 30 {
		t.Fatalf("expected next row 30, got %d", next.RowIndex())
	}
	if r.ActiveRow() != 30 {
		t.Fatalf("active row should now be 30, got %d", r.ActiveRow())
	}
}

func TestRegistry_MoveActiveWrapsForward(t *testing.T) {
	r := NewRegistry()
	seedRegistry(r)
	r.SetActiveRow(30)

	next, err := r.MoveActiveIn(1, themeRuins)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if next.RowIndex() != 10 {
		t.Fatalf("stepping past the last row should wrap to 10, got %d", next.RowIndex())
	}
}

func TestRegistry_MoveActiveWrapsBackward(t *testing.T) {
	r := NewRegistry()
	seedRegistry(r)
	r.SetActiveRow(10)

	next, err := r.MoveActiveIn(-1, themeRuins)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if next.RowIndex() != 30 {
		t.Fatalf("stepping back from the first row should wrap to 30, got %d", next.RowIndex())
	}
}

func TestRegistry_MoveActiveStaleRowFails(t *testing.T) {
	r := NewRegistry()
	_, _, _, calls := seedRegistry(r)
	r.SetActiveRow(99)

	next, err := r.MoveActiveIn(1, themeRuins)
	if !errors.Is(err, ErrStaleActiveRow) {
		t.Fatalf("expected ErrStaleActiveRow, got %v", err)
	}
	if next != nil {
		t.Fatalf("failed move should return no spot, got row %d", next.RowIndex())
	}
	if r.ActiveRow() != 99 {
		t.Fatalf("failed move must not mutate the active row, got %d", r.ActiveRow())
	}
	if len(*calls) != 0 {
		t.Fatalf("failed move must not signal any spot, got %v", *calls)
	}
}

func TestRegistry_MoveActiveEmptyThemeFails(t *testing.T) {
	r := NewRegistry()
	seedRegistry(r)
	r.SetActiveRow(10)

	_, err := r.MoveActiveIn(1, themeGlacier)
	if !errors.Is(err, ErrNoSpots) {
		t.Fatalf("expected ErrNoSpots for an empty theme, got %v", err)
	}
	if r.ActiveRow() != 10 {
		t.Fatalf("failed move must not mutate the active row, got %d", r.ActiveRow())
	}
}

func TestRegistry_MoveActiveStopsOldBeforeIdlingNew(t *testing.T) {
	r := NewRegistry()
	_, _, _, calls := seedRegistry(r)
	r.SetActiveRow(20)

	if _, err := r.MoveActiveIn(1, themeRuins); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"stop:20", "idle:30"}
	if len(*calls) != len(want) {
		t.Fatalf("expected calls %v, got %v", want, *calls)
	}
	for i := range want {
		if (*calls)[i] != want[i] {
			t.Fatalf("expected calls %v, got %v", want, *calls)
		}
	}
}

func TestRegistry_MoveActiveUsesProvider(t *testing.T) {
	current := themeRuins
	r := NewRegistry(WithCurrentLevelType(func() LevelType { return current }))
	seedRegistry(r)
	r.Add(newFakeSpot(themeHarbor, 7, nil))
	r.SetActiveRow(10)

	next, err := r.MoveActive(1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if next.RowIndex() != 20 {
		t.Fatalf("provider-scoped move should stay in ruins rows, got %d", next.RowIndex())
	}

	// Provider now reports a theme whose rows do not contain the active row.
	current = themeHarbor
	if _, err := r.MoveActive(1); !errors.Is(err, ErrStaleActiveRow) {
		t.Fatalf("expected ErrStaleActiveRow after theme switch, got %v", err)
	}
}

func TestRegistry_ObserversFireInRegistrationOrder(t *testing.T) {
	r := NewRegistry()
	seedRegistry(r)
	r.SetActiveRow(10)

	var order []string
	r.OnActiveChanged(func(prev, next Spot) {
		order = append(order, fmt.Sprintf("first:%d->%d", prev.RowIndex(), next.RowIndex()))
	})
	r.OnActiveChanged(func(prev, next Spot) {
		order = append(order, "second")
	})

	if _, err := r.MoveActiveIn(1, themeRuins); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(order) != 2 || order[0] != "first:10->20" || order[1] != "second" {
		t.Fatalf("observers should run in registration order, got %v", order)
	}
}

func TestRegistry_ObserversSkippedOnFailure(t *testing.T) {
	r := NewRegistry()
	seedRegistry(r)
	r.SetActiveRow(99)

	fired := false
	r.OnActiveChanged(func(prev, next Spot) { fired = true })

	if _, err := r.MoveActiveIn(1, themeRuins); err == nil {
		t.Fatal("expected a stale-row failure")
	}
	if fired {
		t.Fatal("observers must not fire on a failed move")
	}
}

func TestRegistry_ResetIsIdempotent(t *testing.T) {
	r := NewRegistry()
	seedRegistry(r)
	r.SetCatalog(&Catalog{Themes: []ThemeInfo{{Type: themeRuins, Name: "Ruins"}}})

	r.Reset()
	if r.Len() != 0 {
		t.Fatalf("reset should drop all spots, got %d", r.Len())
	}
	if r.Catalog() != nil {
		t.Fatal("reset should drop the catalog handle")
	}
	r.Reset() // second reset must not panic or resurrect anything
	if r.Len() != 0 {
		t.Fatalf("second reset changed the registry, got %d spots", r.Len())
	}
}
