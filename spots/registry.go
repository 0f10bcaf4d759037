package spots

import (
	"errors"
	"fmt"
	"log"
	"sort"
)

// Navigation failures. Both leave the registry untouched.
var (
	// ErrStaleActiveRow means the active row is not among the rows of the
	// requested level type. Happens when the theme switched before the caller
	// re-seated the active row; the caller reconciles and retries.
	ErrStaleActiveRow = errors.New("spots: active row not present in level type")

	// ErrNoSpots means no spots are registered for the requested level type.
	ErrNoSpots = errors.New("spots: no spots registered for level type")
)

// Observer is called after the active spot changed, in registration order, on
// the same goroutine that triggered the move.
type Observer func(prev, next Spot)

// Option configures a Registry.
type Option func(*Registry)

// WithCurrentLevelType injects the provider MoveActive uses to scope
// navigation when the caller does not pass a level type explicitly.
func WithCurrentLevelType(provider func() LevelType) Option {
	return func(r *Registry) {
		r.current = provider
	}
}

// Registry tracks the known showcase spots and which one is active, and
// computes cyclic navigation among the spots of one theme.
//
// Every method must be called from the update goroutine. The menu runs a
// single cooperative loop, so there is no locking here; if spots ever get
// registered from a loader goroutine, all reads and writes need to move
// behind one mutex because MoveActive is a read-modify-write sequence.
type Registry struct {
	spots     []Spot
	activeRow int
	current   func() LevelType
	observers []Observer
	catalog   *Catalog
}

// NewRegistry creates an empty registry.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		current: func() LevelType { return LevelTypeNone },
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Add registers a spot. Adding the same spot twice is a no-op.
func (r *Registry) Add(s Spot) {
	if s == nil {
		log.Printf("[spots] ignoring nil spot")
		return
	}
	for _, known := range r.spots {
		if known == s {
			return
		}
	}
	r.spots = append(r.spots, s)
}

// Remove unregisters a spot. Removing an unknown spot is a no-op.
func (r *Registry) Remove(s Spot) {
	for i, known := range r.spots {
		if known == s {
			last := len(r.spots) - 1
			r.spots[i] = r.spots[last]
			r.spots[last] = nil
			r.spots = r.spots[:last]
			return
		}
	}
}

// Len returns the number of registered spots across all themes.
func (r *Registry) Len() int {
	return len(r.spots)
}

// ActiveRow returns the row of the currently active spot.
func (r *Registry) ActiveRow() int {
	return r.activeRow
}

// SetActiveRow re-seats the active row. Theme switching calls this with the
// first row of the new theme so that navigation has a valid anchor again.
func (r *Registry) SetActiveRow(row int) {
	r.activeRow = row
}

// ActiveSpot returns the first registered spot whose row matches the active
// row, or false when the active row resolves to nothing.
func (r *Registry) ActiveSpot() (Spot, bool) {
	for _, s := range r.spots {
		if s.RowIndex() == r.activeRow {
			return s, true
		}
	}
	return nil, false
}

// rankedSpot pairs a spot with its row so navigation never juggles two
// parallel slices that could drift apart.
type rankedSpot struct {
	spot Spot
	row  int
}

func (r *Registry) rankedSpots(lt LevelType) []rankedSpot {
	var ranked []rankedSpot
	for _, s := range r.spots {
		if s.LevelType() != lt {
			continue
		}
		row := s.RowIndex()
		dup := false
		for _, c := range ranked {
			if c.row == row {
				dup = true
				break
			}
		}
		if !dup {
			ranked = append(ranked, rankedSpot{spot: s, row: row})
		}
	}
	sort.Slice(ranked, func(i, j int) bool {
		return ranked[i].row < ranked[j].row
	})
	return ranked
}

// SpotsByLevelType returns the spots of one theme, deduplicated by row and
// sorted ascending by row. Navigation depends on this ordering.
func (r *Registry) SpotsByLevelType(lt LevelType) []Spot {
	ranked := r.rankedSpots(lt)
	out := make([]Spot, len(ranked))
	for i, c := range ranked {
		out[i] = c.spot
	}
	return out
}

// MoveActive steps the active spot within the current level type, wrapping
// around in both directions. Negative steps go backward.
func (r *Registry) MoveActive(step int) (Spot, error) {
	return r.MoveActiveIn(step, r.current())
}

// MoveActiveIn is MoveActive scoped to an explicit level type.
//
// On success the previous spot receives StopPresentation before the new spot
// receives EnterIdle, then observers fire. On failure nothing is mutated and
// no spot is signaled.
func (r *Registry) MoveActiveIn(step int, lt LevelType) (Spot, error) {
	ranked := r.rankedSpots(lt)
	n := len(ranked)
	if n == 0 {
		return nil, fmt.Errorf("level type %d: %w", lt, ErrNoSpots)
	}

	activePos := -1
	for i, c := range ranked {
		if c.row == r.activeRow {
			activePos = i
			break
		}
	}
	if activePos < 0 {
		// The theme switched under us and nobody re-seated the active row
		// yet. Bail out without touching anything; the caller reconciles.
		return nil, fmt.Errorf("active row %d in level type %d: %w", r.activeRow, lt, ErrStaleActiveRow)
	}

	prev := ranked[activePos].spot
	prev.StopPresentation()

	newPos := ((activePos+step)%n + n) % n
	next := ranked[newPos].spot
	r.activeRow = ranked[newPos].row
	next.EnterIdle()

	for _, fn := range r.observers {
		fn(prev, next)
	}
	return next, nil
}

// OnActiveChanged registers an observer for active-spot changes. Observers
// run synchronously in registration order.
func (r *Registry) OnActiveChanged(fn Observer) {
	if fn == nil {
		return
	}
	r.observers = append(r.observers, fn)
}

// SetCatalog attaches the theme catalog backing this menu session.
func (r *Registry) SetCatalog(c *Catalog) {
	r.catalog = c
}

// Catalog returns the attached theme catalog, nil when none is set.
func (r *Registry) Catalog() *Catalog {
	return r.catalog
}

// Reset drops all registered spots and the catalog handle. Idempotent; scene
// teardown calls it once.
func (r *Registry) Reset() {
	r.spots = nil
	r.catalog = nil
}
