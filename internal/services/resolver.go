package services

import (
	"context"
	"log"
	"strings"
	"sync"
	"time"

	"traffic-nav-service/internal/domain"
	"traffic-nav-service/internal/ports"
)

const (
	// Quiet period measured from the last keystroke before a suggestion
	// lookup is issued.
	DebounceInterval = 300 * time.Millisecond

	// Suggestion lists are capped to this many entries.
	MaxSuggestions = 5
)

// noCursor marks "nothing highlighted" in the suggestion list.
const noCursor = -1

// Resolution is the outcome of confirming the resolver's input.
// Place is non-nil when a suggestion was chosen: its coordinates are already
// known and no further geocoding is needed. Otherwise Query carries the raw
// text for downstream geocoding.
type Resolution struct {
	Place *domain.PlaceSuggestion
	Query string
}

// Resolver owns one destination-input session: the query text, the debounced
// suggestion lookup, and a bounded cursor over the results.
//
// Each lookup carries a sequence number taken at issue time; a completion
// whose sequence is no longer current is discarded, so a slow response can
// never clobber the results of a later keystroke.
type Resolver struct {
	geocoder ports.Geocoder
	debounce time.Duration

	mu          sync.Mutex
	query       string
	suggestions []domain.PlaceSuggestion
	cursor      int
	open        bool
	seq         uint64
	timer       *time.Timer
}

func NewResolver(geocoder ports.Geocoder) *Resolver {
	return &Resolver{
		geocoder: geocoder,
		debounce: DebounceInterval,
		cursor:   noCursor,
	}
}

// Input records a keystroke. A pending lookup is cancelled and the debounce
// window restarts; in-flight lookups are invalidated by the sequence bump.
// Empty or whitespace input clears the suggestion list without a lookup.
func (r *Resolver) Input(ctx context.Context, query string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.query = query
	r.seq++
	r.stopTimerLocked()

	if strings.TrimSpace(query) == "" {
		r.suggestions = nil
		r.cursor = noCursor
		r.open = false
		return
	}

	r.timer = time.AfterFunc(r.debounce, func() { r.fire(ctx) })
}

// Flush runs any pending debounced lookup immediately.
func (r *Resolver) Flush(ctx context.Context) {
	r.mu.Lock()
	pending := r.timer != nil && r.timer.Stop()
	r.timer = nil
	r.mu.Unlock()

	if pending {
		r.fire(ctx)
	}
}

// fire issues the lookup for the query current at call time. The lock is not
// held across the network call; the sequence check afterwards decides whether
// the response still applies.
func (r *Resolver) fire(ctx context.Context) {
	r.mu.Lock()
	query := r.query
	seq := r.seq
	r.timer = nil
	r.mu.Unlock()

	if strings.TrimSpace(query) == "" {
		return
	}

	results, err := r.geocoder.Suggest(ctx, query, MaxSuggestions)

	r.mu.Lock()
	defer r.mu.Unlock()

	if seq != r.seq {
		// A newer keystroke or selection superseded this lookup.
		return
	}
	if err != nil {
		// Failures leave the displayed state unchanged.
		log.Printf("suggest lookup failed: query=%q err=%v", query, err)
		return
	}

	if len(results) > MaxSuggestions {
		results = results[:MaxSuggestions]
	}
	r.suggestions = results
	r.cursor = noCursor
	r.open = len(results) > 0
}

// CursorDown moves the highlight toward the end of the list, clamped at the
// last entry. It never wraps.
func (r *Resolver) CursorDown() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.open || len(r.suggestions) == 0 {
		return
	}
	if r.cursor < len(r.suggestions)-1 {
		r.cursor++
	}
}

// CursorUp moves the highlight toward the start, clamped at the first entry.
func (r *Resolver) CursorUp() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.open || len(r.suggestions) == 0 {
		return
	}
	if r.cursor > 0 {
		r.cursor--
	}
}

// Confirm finalizes the session (Enter key). With a highlighted suggestion
// it behaves like Select; otherwise the raw text is handed downstream for
// geocoding there.
func (r *Resolver) Confirm() Resolution {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.seq++
	r.stopTimerLocked()

	if r.open && r.cursor >= 0 && r.cursor < len(r.suggestions) {
		s := r.suggestions[r.cursor]
		r.query = s.Name
		r.dismissLocked()
		return Resolution{Place: &s, Query: s.Name}
	}

	r.dismissLocked()
	return Resolution{Query: r.query}
}

// Select finalizes the session with the i-th suggestion (pointer action or
// keyboard confirmation): the query text becomes the suggestion's full name
// and its coordinates are yielded with no second network round trip.
func (r *Resolver) Select(i int) (Resolution, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if i < 0 || i >= len(r.suggestions) {
		return Resolution{}, false
	}

	s := r.suggestions[i]
	r.query = s.Name
	r.seq++
	r.dismissLocked()

	return Resolution{Place: &s, Query: s.Name}, true
}

// Dismiss closes the suggestion list without clearing the typed text
// (Escape, or pointer-down outside the control).
func (r *Resolver) Dismiss() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.seq++
	r.stopTimerLocked()
	r.dismissLocked()
}

func (r *Resolver) dismissLocked() {
	r.suggestions = nil
	r.cursor = noCursor
	r.open = false
}

func (r *Resolver) stopTimerLocked() {
	if r.timer != nil {
		r.timer.Stop()
		r.timer = nil
	}
}

func (r *Resolver) Query() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.query
}

func (r *Resolver) Open() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.open
}

func (r *Resolver) Cursor() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.cursor
}

func (r *Resolver) Suggestions() []domain.PlaceSuggestion {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]domain.PlaceSuggestion, len(r.suggestions))
	copy(out, r.suggestions)
	return out
}
