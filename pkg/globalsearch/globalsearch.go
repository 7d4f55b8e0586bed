// Package globalsearch implements the debounced typeahead that fans a single
// query out across customers, alerts, cases and documents.
package globalsearch

import (
	"context"
	"sync"
	"time"
)

const (
	// MinQueryLength is the shortest input that triggers a request.
	MinQueryLength = 2
	// DebounceDelay is the trailing-edge pause before a request fires.
	DebounceDelay = 300 * time.Millisecond
)

// Hit is one matched record, carrying enough to render a label and to build a
// deep link into the owning list page.
type Hit struct {
	Id    string
	Code  string
	Label string
	Badge string
}

// Results holds the four entity sequences returned by the search endpoint.
type Results struct {
	Customers []Hit
	Alerts    []Hit
	Cases     []Hit
	Documents []Hit
}

func (r *Results) empty() bool {
	return len(r.Customers)+len(r.Alerts)+len(r.Cases)+len(r.Documents) == 0
}

// Group is a display section for one entity kind.
type Group struct {
	Kind  string
	Title string
	Hits  []Hit
}

// Selection is the deep-link handoff produced when a hit is chosen. The target
// list page highlights the row identified by Code.
type Selection struct {
	Kind string
	Code string
}

// SearchFunc performs the cross-entity search request.
type SearchFunc func(ctx context.Context, query string) (*Results, error)

// CancelFunc stops a scheduled fire; it reports whether the fire was averted.
type CancelFunc func() bool

// Scheduler defers fire by the given delay. Tests substitute a manual clock.
type Scheduler func(delay time.Duration, fire func()) CancelFunc

func timerScheduler(delay time.Duration, fire func()) CancelFunc {
	t := time.AfterFunc(delay, fire)
	return t.Stop
}

// Aggregator owns the typeahead state. Each keystroke restarts the debounce
// timer; only the timer that survives uncancelled issues a request, and a
// sequence token discards responses superseded while in flight.
type Aggregator struct {
	mu        sync.Mutex
	search    SearchFunc
	schedule  Scheduler
	delay     time.Duration
	cancel    CancelFunc
	query     string
	results   *Results
	open      bool
	loading   bool
	noResults bool
	seq       uint64
}

type Option func(*Aggregator)

// WithScheduler replaces the real timer, used by tests to fire deterministically.
func WithScheduler(s Scheduler) Option {
	return func(a *Aggregator) {
		a.schedule = s
	}
}

func WithDelay(d time.Duration) Option {
	return func(a *Aggregator) {
		a.delay = d
	}
}

func New(search SearchFunc, opts ...Option) *Aggregator {
	a := &Aggregator{
		search:   search,
		schedule: timerScheduler,
		delay:    DebounceDelay,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// SetQuery records a keystroke. Short input clears everything without a
// request; otherwise the debounce timer restarts.
func (a *Aggregator) SetQuery(ctx context.Context, query string) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.stopTimerLocked()
	a.query = query

	if len(query) < MinQueryLength {
		a.seq++
		a.resetLocked()
		return
	}

	fireQuery := query
	a.cancel = a.schedule(a.delay, func() {
		a.run(ctx, fireQuery)
	})
}

func (a *Aggregator) run(ctx context.Context, query string) {
	a.mu.Lock()
	if a.query != query {
		a.mu.Unlock()
		return
	}
	a.seq++
	token := a.seq
	a.loading = true
	a.mu.Unlock()

	results, err := a.search(ctx, query)

	a.mu.Lock()
	defer a.mu.Unlock()
	if token != a.seq {
		return
	}
	a.loading = false
	a.open = true
	if err != nil || results == nil {
		// A failed search reads as empty, the input must stay usable.
		a.results = nil
		a.noResults = true
		return
	}
	a.results = results
	a.noResults = results.empty()
}

// Groups returns the non-empty sections in fixed display order.
func (a *Aggregator) Groups() []Group {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.results == nil {
		return nil
	}
	var groups []Group
	for _, g := range []Group{
		{Kind: "customers", Title: "Customers", Hits: a.results.Customers},
		{Kind: "alerts", Title: "Alerts", Hits: a.results.Alerts},
		{Kind: "cases", Title: "Cases", Hits: a.results.Cases},
		{Kind: "documents", Title: "Documents", Hits: a.results.Documents},
	} {
		if len(g.Hits) > 0 {
			groups = append(groups, g)
		}
	}
	return groups
}

// Select closes the dropdown, clears the query and returns the deep link for
// the chosen hit.
func (a *Aggregator) Select(kind string, hit Hit) Selection {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.stopTimerLocked()
	a.seq++
	a.query = ""
	a.resetLocked()
	return Selection{Kind: kind, Code: hit.Code}
}

// Dismiss closes the dropdown and clears transient state. Escape, outside
// clicks and route changes all land here.
func (a *Aggregator) Dismiss() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.stopTimerLocked()
	a.seq++
	a.query = ""
	a.resetLocked()
}

func (a *Aggregator) Query() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.query
}

func (a *Aggregator) Open() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.open
}

func (a *Aggregator) Loading() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.loading
}

func (a *Aggregator) NoResults() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.noResults
}

func (a *Aggregator) stopTimerLocked() {
	if a.cancel != nil {
		a.cancel()
		a.cancel = nil
	}
}

func (a *Aggregator) resetLocked() {
	a.results = nil
	a.open = false
	a.loading = false
	a.noResults = false
}
