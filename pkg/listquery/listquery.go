// Package listquery drives the search/filter/sort/paginate pipeline shared by
// every entity list view. The server returns the full filtered set; paging is
// sliced locally over that set with a fixed page size.
package listquery

import (
	"context"
	"net/url"
	"strings"
	"sync"
)

const PageSize = 15

const (
	OrderAsc  = "asc"
	OrderDesc = "desc"
)

// FetchFunc retrieves the full result set for the given query parameters.
type FetchFunc[T any] func(ctx context.Context, query url.Values) ([]T, error)

// Schema describes one entity list: which columns exist, which filter keys the
// backend accepts, and the sort applied before the user touches anything.
type Schema struct {
	Entity           string
	FilterKeys       []string
	DefaultSortBy    string
	DefaultSortOrder string
}

type Sort struct {
	Column string
	Order  string
}

// Controller owns the query state for a single list view. All mutating methods
// re-issue the fetch; a sequence token ensures only the latest response is
// applied when requests resolve out of order.
type Controller[T any] struct {
	mu      sync.Mutex
	schema  Schema
	fetch   FetchFunc[T]
	search  string
	filters map[string][]string
	sort    Sort
	page    int
	results []T
	loading bool
	err     error
	seq     uint64
}

type Option[T any] func(*Controller[T])

// WithSearch pre-seeds the search term, used by deep links from global search.
func WithSearch[T any](term string) Option[T] {
	return func(c *Controller[T]) {
		c.search = term
	}
}

func NewController[T any](schema Schema, fetch FetchFunc[T], opts ...Option[T]) *Controller[T] {
	if schema.DefaultSortOrder == "" {
		schema.DefaultSortOrder = OrderAsc
	}
	c := &Controller[T]{
		schema:  schema,
		fetch:   fetch,
		filters: make(map[string][]string),
		sort:    Sort{Column: schema.DefaultSortBy, Order: schema.DefaultSortOrder},
		page:    1,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Query serializes the current state into outgoing request parameters. Empty
// search and empty filter categories are omitted; sort is always present.
func (c *Controller[T]) Query() url.Values {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.queryLocked()
}

func (c *Controller[T]) queryLocked() url.Values {
	values := url.Values{}
	if c.search != "" {
		values.Set("search", c.search)
	}
	for _, key := range c.schema.FilterKeys {
		if selected := c.filters[key]; len(selected) > 0 {
			values.Set(key, strings.Join(selected, ","))
		}
	}
	values.Set("sort_by", c.sort.Column)
	values.Set("sort_order", c.sort.Order)
	return values
}

// SetSearch replaces the search term, resets to page 1 and refetches.
func (c *Controller[T]) SetSearch(ctx context.Context, term string) error {
	c.mu.Lock()
	c.search = term
	c.page = 1
	c.mu.Unlock()
	return c.Refresh(ctx)
}

// ToggleFilter adds the value to a filter category, or removes it if already
// selected. Any filter change resets to page 1 and refetches.
func (c *Controller[T]) ToggleFilter(ctx context.Context, key, value string) error {
	c.mu.Lock()
	selected := c.filters[key]
	found := false
	for i, v := range selected {
		if v == value {
			c.filters[key] = append(selected[:i], selected[i+1:]...)
			found = true
			break
		}
	}
	if !found {
		c.filters[key] = append(selected, value)
	}
	c.page = 1
	c.mu.Unlock()
	return c.Refresh(ctx)
}

// ClearFilters drops every selected filter value and refetches.
func (c *Controller[T]) ClearFilters(ctx context.Context) error {
	c.mu.Lock()
	c.filters = make(map[string][]string)
	c.page = 1
	c.mu.Unlock()
	return c.Refresh(ctx)
}

// SortBy sets the sort column. Selecting the active column flips the order,
// selecting a new column starts ascending.
func (c *Controller[T]) SortBy(ctx context.Context, column string) error {
	c.mu.Lock()
	if c.sort.Column == column {
		if c.sort.Order == OrderAsc {
			c.sort.Order = OrderDesc
		} else {
			c.sort.Order = OrderAsc
		}
	} else {
		c.sort = Sort{Column: column, Order: OrderAsc}
	}
	c.mu.Unlock()
	return c.Refresh(ctx)
}

// SetPage moves to the requested page, clamped to [1, TotalPages]. Paging is
// local, no fetch is issued.
func (c *Controller[T]) SetPage(page int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.page = clamp(page, 1, totalPages(len(c.results)))
}

// Refresh issues a fetch for the current state. A response is discarded when a
// newer request was started while it was in flight.
func (c *Controller[T]) Refresh(ctx context.Context) error {
	c.mu.Lock()
	c.seq++
	token := c.seq
	c.loading = true
	query := c.queryLocked()
	c.mu.Unlock()

	results, err := c.fetch(ctx, query)

	c.mu.Lock()
	defer c.mu.Unlock()
	if token != c.seq {
		// Superseded by a newer request, its outcome wins.
		return nil
	}
	c.loading = false
	if err != nil {
		c.results = nil
		c.err = err
		return err
	}
	c.err = nil
	c.results = results
	// A shrunken result set can leave the page past the end.
	c.page = clamp(c.page, 1, totalPages(len(results)))
	return nil
}

// Retry re-issues the last query after a failed fetch.
func (c *Controller[T]) Retry(ctx context.Context) error {
	return c.Refresh(ctx)
}

// Page returns the records for the current page.
func (c *Controller[T]) Page() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	start := (c.page - 1) * PageSize
	if start >= len(c.results) {
		return nil
	}
	end := start + PageSize
	if end > len(c.results) {
		end = len(c.results)
	}
	return c.results[start:end]
}

func (c *Controller[T]) PageNumber() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.page
}

func (c *Controller[T]) TotalPages() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return totalPages(len(c.results))
}

func (c *Controller[T]) TotalCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.results)
}

func (c *Controller[T]) Sort() Sort {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sort
}

func (c *Controller[T]) SearchTerm() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.search
}

// FilterCount reports how many values are selected for one filter category.
func (c *Controller[T]) FilterCount(key string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.filters[key])
}

func (c *Controller[T]) Loading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loading
}

func (c *Controller[T]) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.err
}

func totalPages(n int) int {
	if n == 0 {
		return 1
	}
	return (n + PageSize - 1) / PageSize
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
